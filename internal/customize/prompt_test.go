package customize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PromptSuite struct {
	suite.Suite
}

func TestPromptSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PromptSuite))
}

func (s *PromptSuite) TestFieldDescriptionsSkipEmptyValues() {
	// arrange
	fields := []Field{
		{FieldKey: "agent_name", Label: "Agent Name", FieldType: "text"},
		{FieldKey: "phone", Label: "Phone", FieldType: "phone"},
		{FieldKey: "accent_color", Label: "Accent", FieldType: "color"},
	}

	// act
	got := FieldDescriptions(fields, map[string]string{
		"agent_name":   "Jane Doe",
		"phone":        "",
		"accent_color": "#ff0000",
	})

	// assert
	s.Equal("- Agent Name (agent_name, type: text): \"Jane Doe\"\n- Accent (accent_color, type: color): \"#ff0000\"", got)
}

func (s *PromptSuite) TestBuildPromptWithoutUserPrompt() {
	// act
	prompt := BuildPrompt("<p>x</p>", "- A (a, type: text): \"v\"", "")

	// assert
	s.Contains(prompt, "<template>\n<p>x</p>\n</template>")
	s.Contains(prompt, "Here are the field values to incorporate:\n- A (a, type: text): \"v\"")
	s.NotContains(prompt, "User's additional instructions")
	s.NotContains(prompt, "8. CRITICALLY IMPORTANT")
	s.True(strings.HasSuffix(prompt, "just the raw HTML."))
}

func (s *PromptSuite) TestBuildPromptWithUserPrompt() {
	// act
	prompt := BuildPrompt("<p>x</p>", "", "Make it warmer")

	// assert
	s.NotContains(prompt, "Here are the field values")
	s.Contains(prompt, "IMPORTANT - User's additional instructions:\n\"Make it warmer\"")
	s.Contains(prompt, "8. CRITICALLY IMPORTANT")
}

func (s *PromptSuite) TestCleanOutputStripsFences() {
	// arrange
	document := "<html><body><h1>Welcome home to 12 Elm Street</h1></body></html>"

	// act
	fencedHtml := CleanOutput("```html\n"+document+"\n```", "original")
	fenced := CleanOutput("  ```\n"+document+"```  ", "original")

	// assert
	s.Equal(document, fencedHtml)
	s.Equal(document, fenced)
}

func (s *PromptSuite) TestCleanOutputFallsBackOnShortResults() {
	// act
	empty := CleanOutput("```html\n```", "original")
	short := CleanOutput("<p>too short</p>", "original")

	// assert
	s.Equal("original", empty)
	s.Equal("original", short)
}

func (s *PromptSuite) TestCacheKeyIsStable() {
	// arrange
	request := Request{
		HtmlContent: "<p>x</p>",
		Values:      map[string]string{"b": "2", "a": "1"},
	}
	reordered := Request{
		HtmlContent: "<p>x</p>",
		Values:      map[string]string{"a": "1", "b": "2"},
	}

	// act
	first, err := CacheKey("anthropic", request)
	s.Require().NoError(err)
	second, err := CacheKey("anthropic", reordered)
	s.Require().NoError(err)
	other, err := CacheKey("openai", request)
	s.Require().NoError(err)

	// assert
	s.Equal(first, second)
	s.NotEqual(first, other)
	s.True(strings.HasPrefix(first, "ai:customize:"))
}
