package events

import (
	"Listline/internal/authentication/roles"
	"Listline/internal/jsonTypes"
	"Listline/internal/messages"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/internal/services"
	serviceMocks "Listline/internal/services/mocks"
	"Listline/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomizationPublishedSuite struct {
	suite.Suite
}

func TestCustomizationPublishedSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CustomizationPublishedSuite))
}

func (s *CustomizationPublishedSuite) createContext(
	customizationRepository repositories.CustomizationRepository,
	profileRepository repositories.ProfileRepository,
	outboxMessageRepository repositories.OutboxMessageRepository,
	templateService services.TemplateService,
) context.Context {
	dc := ioc.NewDependencyCollection()

	if customizationRepository != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) repositories.CustomizationRepository {
			return customizationRepository
		})
	}

	if profileRepository != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) repositories.ProfileRepository {
			return profileRepository
		})
	}

	if outboxMessageRepository != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) repositories.OutboxMessageRepository {
			return outboxMessageRepository
		})
	}

	if templateService != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) services.TemplateService {
			return templateService
		})
	}

	scope := dc.BuildProvider()
	s.T().Cleanup(func() {
		utils.PanicOnError(scope.Close, "closing scope")
	})

	return middlewares.ContextWithScope(s.T().Context(), scope)
}

func (s *CustomizationPublishedSuite) TestQueuesMail() {
	// arrange
	ctrl := gomock.NewController(s.T())
	now := time.Now()

	userId := uuid.New()
	customization := repositories.NewCustomization(userId, uuid.New(), "Open House", jsonTypes.FieldValues{})
	customization.Mock(now)
	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Cond(func(x repositories.CustomizationFilter) bool {
		return x.GetId() == customization.Id()
	})).Return(customization, nil)

	profile := repositories.NewProfile(userId, "jane@example.com", utils.Ptr("Jane"), roles.User)
	profileRepository := mocks.NewMockProfileRepository(ctrl)
	profileRepository.EXPECT().First(gomock.Any(), gomock.Cond(func(x repositories.ProfileFilter) bool {
		return x.GetId() == userId
	})).Return(profile, nil)

	templateService := serviceMocks.NewMockTemplateService(ctrl)
	templateService.EXPECT().Template(services.CustomizationPublishedMailTemplate, gomock.Cond(func(x any) bool {
		data, ok := x.(services.CustomizationPublishedMailData)
		return ok && data.PublishedUrl == "https://cdn/published/x.html" && data.DisplayName == "Jane"
	})).Return("<p>body</p>", nil)

	outboxMessageRepository := mocks.NewMockOutboxMessageRepository(ctrl)
	outboxMessageRepository.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x *repositories.OutboxMessage) bool {
		var message messages.SendEmailMessage
		return x.Type() == repositories.SendMailOutboxMessageType &&
			x.Details().Decode(&message) == nil &&
			message.To == "jane@example.com" &&
			message.HtmlBody == "<p>body</p>"
	})).Return(nil)

	ctx := s.createContext(customizationRepository, profileRepository, outboxMessageRepository, templateService)

	// act
	err := QueuePublishedMailOnCustomizationPublishedEvent(ctx, CustomizationPublishedEvent{
		CustomizationId: customization.Id(),
		PublishedUrl:    "https://cdn/published/x.html",
	})

	// assert
	s.Require().NoError(err)
}

func (s *CustomizationPublishedSuite) TestMissingProfileSkipsMail() {
	// arrange
	ctrl := gomock.NewController(s.T())

	customization := repositories.NewCustomization(uuid.New(), uuid.New(), "Open House", jsonTypes.FieldValues{})
	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(customization, nil)

	profileRepository := mocks.NewMockProfileRepository(ctrl)
	profileRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, nil)

	ctx := s.createContext(customizationRepository, profileRepository, nil, nil)

	// act
	err := QueuePublishedMailOnCustomizationPublishedEvent(ctx, CustomizationPublishedEvent{
		CustomizationId: customization.Id(),
	})

	// assert
	s.Require().NoError(err)
}

func (s *CustomizationPublishedSuite) TestCustomizationError() {
	// arrange
	ctrl := gomock.NewController(s.T())

	customizationRepository := mocks.NewMockCustomizationRepository(ctrl)
	customizationRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

	ctx := s.createContext(customizationRepository, nil, nil, nil)

	// act
	err := QueuePublishedMailOnCustomizationPublishedEvent(ctx, CustomizationPublishedEvent{})

	// assert
	s.Require().Error(err)
}
