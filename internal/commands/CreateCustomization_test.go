package commands

import (
	"Listline/internal/jsonTypes"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/utils"
	"testing"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreateCustomizationCommandSuite struct {
	suite.Suite
}

func TestCreateCustomizationCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CreateCustomizationCommandSuite))
}

func (s *CreateCustomizationCommandSuite) activeTemplate() *repositories.Template {
	template := repositories.NewTemplate("Open House", "<p>{{agent}}</p>")
	template.SetIsActive(true)
	template.Mock(time.Now())
	return template
}

func (s *CreateCustomizationCommandSuite) TestHappyPath() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	user := regularUser()
	template := s.activeTemplate()

	templateRepository := mocks.NewMockTemplateRepository(ctrl)
	templateRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(template, nil)

	field := repositories.NewTemplateField(template.Id(), "agent", "Agent", repositories.TemplateFieldTypeText)
	field.SetIsRequired(true)
	templateFieldRepository := mocks.NewMockTemplateFieldRepository(ctrl)
	templateFieldRepository.EXPECT().List(gomock.Any(), gomock.Cond(func(x repositories.TemplateFieldFilter) bool {
		return x.GetTemplateId() == template.Id()
	})).Return([]*repositories.TemplateField{field}, 1, nil)

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x *repositories.Customization) bool {
		return x.Name() == "My Open House" &&
			x.UserId() == user.UserId &&
			x.TemplateId() == template.Id() &&
			x.Status() == repositories.CustomizationStatusDraft &&
			x.Values().Get("agent") == "Jane"
	})).Return(nil)

	ctx := newTestContext(s.T(), user, func(dc *ioc.DependencyCollection) {
		register[repositories.TemplateRepository](dc, templateRepository)
		register[repositories.TemplateFieldRepository](dc, templateFieldRepository)
		register[repositories.CustomizationRepository](dc, customizationRepository)
	})

	// act
	resp, err := HandleCreateCustomization(ctx, CreateCustomization{
		TemplateId: template.Id(),
		Values:     jsonTypes.FieldValues{"agent": "Jane"},
	})

	// assert
	s.Require().NoError(err)
	s.Equal("My Open House", resp.Name)
	s.Equal(repositories.CustomizationStatusDraft, resp.Status)
}

func (s *CreateCustomizationCommandSuite) TestInactiveTemplateIsNotAvailable() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	template := repositories.NewTemplate("Old", "<p></p>")
	template.SetIsActive(false)
	templateRepository := mocks.NewMockTemplateRepository(ctrl)
	templateRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(template, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.TemplateRepository](dc, templateRepository)
	})

	// act
	resp, err := HandleCreateCustomization(ctx, CreateCustomization{TemplateId: template.Id()})

	// assert
	s.Require().ErrorIs(err, utils.ErrTemplateNotAvailable)
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
	s.Nil(resp)
}

func (s *CreateCustomizationCommandSuite) TestMissingTemplateIsNotFound() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	templateRepository := mocks.NewMockTemplateRepository(ctrl)
	templateRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(nil, utils.ErrTemplateNotFound)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.TemplateRepository](dc, templateRepository)
	})

	// act
	_, err := HandleCreateCustomization(ctx, CreateCustomization{TemplateId: uuid.New()})

	// assert
	s.Require().ErrorIs(err, utils.ErrResourceNotFound)
}

func (s *CreateCustomizationCommandSuite) TestInvalidValuesAreRejected() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	template := s.activeTemplate()
	templateRepository := mocks.NewMockTemplateRepository(ctrl)
	templateRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(template, nil)

	field := repositories.NewTemplateField(template.Id(), "email", "Email", repositories.TemplateFieldTypeEmail)
	templateFieldRepository := mocks.NewMockTemplateFieldRepository(ctrl)
	templateFieldRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*repositories.TemplateField{field}, 1, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.TemplateRepository](dc, templateRepository)
		register[repositories.TemplateFieldRepository](dc, templateFieldRepository)
	})

	// act
	_, err := HandleCreateCustomization(ctx, CreateCustomization{
		TemplateId: template.Id(),
		Name:       "Mine",
		Values:     jsonTypes.FieldValues{"email": "nope", "extra": "x"},
	})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
	s.Contains(err.Error(), "email: ")
	s.Contains(err.Error(), "extra: unknown field")
}
