package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TemplateServiceSuite struct {
	suite.Suite
}

func TestTemplateServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TemplateServiceSuite))
}

func (s *TemplateServiceSuite) TestCustomizationPublished() {
	// arrange
	service, err := NewTemplateService()
	s.Require().NoError(err)

	// act
	body, err := service.Template(CustomizationPublishedMailTemplate, CustomizationPublishedMailData{
		DisplayName:       "Jane <Doe>",
		CustomizationName: "Open House",
		PublishedUrl:      "https://files.example.com/published/1.html",
	})

	// assert
	s.Require().NoError(err)
	s.Contains(body, "Jane &lt;Doe&gt;")
	s.Contains(body, "Open House")
	s.Contains(body, `href="https://files.example.com/published/1.html"`)
}

func (s *TemplateServiceSuite) TestUnknownTemplate() {
	// arrange
	service, err := NewTemplateService()
	s.Require().NoError(err)

	// act
	_, err = service.Template("missing", nil)

	// assert
	s.Error(err)
}
