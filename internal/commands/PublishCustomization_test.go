package commands

import (
	"Listline/internal/events"
	"Listline/internal/jsonTypes"
	"Listline/internal/mediator"
	mediatorMocks "Listline/internal/mediator/mocks"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/internal/services/storage"
	storageMocks "Listline/internal/services/storage/mocks"
	"Listline/utils"
	"errors"
	"io"
	"testing"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublishCustomizationCommandSuite struct {
	suite.Suite
}

func TestPublishCustomizationCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PublishCustomizationCommandSuite))
}

func (s *PublishCustomizationCommandSuite) TestPublishesRenderedHtml() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	user := regularUser()
	template := repositories.NewTemplate("Flyer", "<p>{{agent}}</p>")
	customization := repositories.NewCustomization(user.UserId, template.Id(), "Mine", jsonTypes.FieldValues{})
	customization.SetRenderedHtml(utils.Ptr("<p>edited</p>"))
	key := "published/" + customization.Id().String() + ".html"

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Cond(func(x repositories.CustomizationFilter) bool {
		return x.GetId() == customization.Id() && x.GetUserId() == user.UserId
	})).Return(customization, nil)
	customizationRepository.EXPECT().Update(gomock.Any(), gomock.Cond(func(x *repositories.Customization) bool {
		return x.Status() == repositories.CustomizationStatusPublished &&
			*x.PublishedUrl() == "https://cdn.example.com/"+key
	})).Return(nil)

	store := storageMocks.NewMockStore(ctrl)
	store.EXPECT().Put(gomock.Any(), key, "text/html", gomock.Cond(func(x io.Reader) bool {
		content, err := io.ReadAll(x)
		return err == nil && string(content) == "<p>edited</p>"
	}), int64(len("<p>edited</p>"))).Return("https://cdn.example.com/"+key, nil)

	m := mediatorMocks.NewMockMediator(ctrl)
	m.EXPECT().SendEvent(gomock.Any(), gomock.Cond(func(x any) bool {
		evt, ok := x.(events.CustomizationPublishedEvent)
		return ok && evt.CustomizationId == customization.Id()
	}), gomock.Any()).Return(nil)

	ctx := newTestContext(s.T(), user, func(dc *ioc.DependencyCollection) {
		register[repositories.CustomizationRepository](dc, customizationRepository)
		register[storage.Store](dc, store)
		register[mediator.Mediator](dc, m)
	})

	// act
	resp, err := HandlePublishCustomization(ctx, PublishCustomization{CustomizationId: customization.Id()})

	// assert
	s.Require().NoError(err)
	s.Equal(repositories.CustomizationStatusPublished, resp.Status)
	s.Equal("https://cdn.example.com/"+key, *resp.PublishedUrl)
}

func (s *PublishCustomizationCommandSuite) TestFallsBackToPlaceholderRendering() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	user := regularUser()
	template := repositories.NewTemplate("Flyer", "<p>{{ agent }}</p>")
	customization := repositories.NewCustomization(user.UserId, template.Id(), "Mine", jsonTypes.FieldValues{"agent": "Jane & Co"})

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(customization, nil)
	customizationRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	templateRepository := mocks.NewMockTemplateRepository(ctrl)
	templateRepository.EXPECT().Single(gomock.Any(), gomock.Cond(func(x repositories.TemplateFilter) bool {
		return x.GetId() == template.Id()
	})).Return(template, nil)

	field := repositories.NewTemplateField(template.Id(), "agent", "Agent", repositories.TemplateFieldTypeText)
	templateFieldRepository := mocks.NewMockTemplateFieldRepository(ctrl)
	templateFieldRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*repositories.TemplateField{field}, 1, nil)

	store := storageMocks.NewMockStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Cond(func(x io.Reader) bool {
		content, err := io.ReadAll(x)
		return err == nil && string(content) == "<p>Jane &amp; Co</p>"
	}), gomock.Any()).Return("https://cdn.example.com/x.html", nil)

	m := mediatorMocks.NewMockMediator(ctrl)
	m.EXPECT().SendEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := newTestContext(s.T(), user, func(dc *ioc.DependencyCollection) {
		register[repositories.CustomizationRepository](dc, customizationRepository)
		register[repositories.TemplateRepository](dc, templateRepository)
		register[repositories.TemplateFieldRepository](dc, templateFieldRepository)
		register[storage.Store](dc, store)
		register[mediator.Mediator](dc, m)
	})

	// act
	_, err := HandlePublishCustomization(ctx, PublishCustomization{CustomizationId: customization.Id()})

	// assert
	s.Require().NoError(err)
}

func (s *PublishCustomizationCommandSuite) TestStorageFailureKeepsDraft() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	user := regularUser()
	customization := repositories.NewCustomization(user.UserId, repositories.NewTemplate("t", "x").Id(), "Mine", nil)
	customization.SetRenderedHtml(utils.Ptr("<p>x</p>"))

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(customization, nil)

	store := storageMocks.NewMockStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("error"))

	ctx := newTestContext(s.T(), user, func(dc *ioc.DependencyCollection) {
		register[repositories.CustomizationRepository](dc, customizationRepository)
		register[storage.Store](dc, store)
	})

	// act
	resp, err := HandlePublishCustomization(ctx, PublishCustomization{CustomizationId: customization.Id()})

	// assert
	s.Require().Error(err)
	s.Nil(resp)
	s.Equal(repositories.CustomizationStatusDraft, customization.Status())
}

func (s *PublishCustomizationCommandSuite) TestForeignCustomizationIsNotFound() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(nil, utils.ErrCustomizationNotFound)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.CustomizationRepository](dc, customizationRepository)
	})

	// act
	_, err := HandlePublishCustomization(ctx, PublishCustomization{})

	// assert
	s.Require().ErrorIs(err, utils.ErrResourceNotFound)
}
