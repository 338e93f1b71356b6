package commands

import (
	"Listline/internal/config"
	"Listline/internal/htmledit"
	"Listline/internal/jsonTypes"
	"Listline/internal/repositories"
	repositoryMocks "Listline/internal/repositories/mocks"
	"Listline/internal/services/ai"
	aiMocks "Listline/internal/services/ai/mocks"
	"Listline/internal/services/icons"
	iconMocks "Listline/internal/services/icons/mocks"
	"Listline/utils"
	"strings"
	"testing"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AiEditCommandSuite struct {
	suite.Suite
}

func TestAiEditCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AiEditCommandSuite))
}

func (s *AiEditCommandSuite) TestAppliesToolCalls() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	appSetting := repositories.NewAppSetting(jsonTypes.AiSettingsKey, jsonTypes.JsonDocument(`{"provider":"openai","systemPrompt":"Keep it formal"}`))
	appSettingRepository := repositoryMocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(appSetting, nil)

	calls := []ai.ToolCall{
		{Id: "1", Name: htmledit.ToolReplaceText, Input: map[string]any{"find": "Jane", "replace": "John"}},
		{Id: "2", Name: htmledit.ToolChangeColor, Input: map[string]any{"target": "heading", "old_color": "#ff0000", "new_color": "#00ff00"}},
	}
	provider := aiMocks.NewMockProvider(ctrl)
	provider.EXPECT().CompleteWithTools(gomock.Any(), gomock.Cond(func(x ai.ToolRequest) bool {
		return x.MaxTokens == 1024 &&
			len(x.Tools) == 6 &&
			x.Prompt == "use John" &&
			strings.Contains(x.System, "ADDITIONAL GUIDELINES:\nKeep it formal")
	})).Return(calls, nil)

	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(config.AiProviderOpenAi).Return(provider, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic})
		register[repositories.AppSettingRepository](dc, appSettingRepository)
		register[ai.Registry](dc, registry)
		register[icons.Service](dc, iconMocks.NewMockService(ctrl))
	})

	// act
	resp, err := HandleAiEdit(ctx, AiEdit{
		HtmlContent: `<h1 style="color: #ff0000">Jane</h1>`,
		UserPrompt:  "use John",
	})

	// assert
	s.Require().NoError(err)
	s.Equal(`<h1 style="color: #00ff00">John</h1>`, resp.Html)
	s.Require().Len(resp.Changes, 2)
	s.Equal(htmledit.ToolReplaceText, resp.Changes[0].Tool)
	s.Empty(resp.Message)
}

func (s *AiEditCommandSuite) TestNoToolCalls() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	appSettingRepository := repositoryMocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, nil)

	provider := aiMocks.NewMockProvider(ctrl)
	provider.EXPECT().CompleteWithTools(gomock.Any(), gomock.Any()).Return(nil, nil)
	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(config.AiProviderAnthropic).Return(provider, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic})
		register[repositories.AppSettingRepository](dc, appSettingRepository)
		register[ai.Registry](dc, registry)
	})

	// act
	resp, err := HandleAiEdit(ctx, AiEdit{HtmlContent: "<p>x</p>", UserPrompt: "nothing"})

	// assert
	s.Require().NoError(err)
	s.Equal("<p>x</p>", resp.Html)
	s.Empty(resp.Changes)
	s.NotNil(resp.Changes)
	s.Equal("No changes detected", resp.Message)
}

func (s *AiEditCommandSuite) TestMissingPromptIsBadRequest() {
	// arrange
	ctx := newTestContext(s.T(), regularUser(), nil)

	// act
	_, err := HandleAiEdit(ctx, AiEdit{HtmlContent: "<p>x</p>"})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
	s.Equal("HTML content and prompt are required", err.Error())
}
