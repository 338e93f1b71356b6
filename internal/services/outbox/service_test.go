package outbox

import (
	"Listline/internal/messages"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/services"
	serviceMocks "Listline/internal/services/mocks"
	"Listline/internal/services/outbox/mocks"
	"Listline/utils"
	"context"
	"errors"
	"testing"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type unknownDetails struct{}

func (unknownDetails) OutboxMessageType() repositories.OutboxMessageType {
	return "carrier_pigeon"
}

type OutboxSuite struct {
	suite.Suite
}

func TestOutboxSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OutboxSuite))
}

func (s *OutboxSuite) createContext(
	mailService services.MailService,
	broker MessageBroker,
) context.Context {
	dc := ioc.NewDependencyCollection()

	if mailService != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) services.MailService {
			return mailService
		})
	}

	if broker != nil {
		ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) MessageBroker {
			return broker
		})
	}

	scope := dc.BuildProvider()
	s.T().Cleanup(func() {
		utils.PanicOnError(scope.Close, "closing scope")
	})

	return middlewares.ContextWithScope(s.T().Context(), scope)
}

func (s *OutboxSuite) TestDistributeSendsMail() {
	// arrange
	ctrl := gomock.NewController(s.T())
	mailService := serviceMocks.NewMockMailService(ctrl)
	mailService.EXPECT().Send(gomock.Any(), gomock.Cond(func(m services.Mail) bool {
		return m.To == "agent@example.com" &&
			m.DisplayName == "Agent" &&
			m.Subject == "Published" &&
			m.HtmlBody == "<p>done</p>"
	})).Return(nil)

	ctx := s.createContext(mailService, nil)

	message, err := repositories.NewOutboxMessage(&messages.SendEmailMessage{
		To:          "agent@example.com",
		DisplayName: "Agent",
		Subject:     "Published",
		HtmlBody:    "<p>done</p>",
	})
	s.Require().NoError(err)

	// act
	err = NewMessageBroker().Distribute(ctx, message)

	// assert
	s.NoError(err)
}

func (s *OutboxSuite) TestDistributeReturnsMailFailure() {
	// arrange
	ctrl := gomock.NewController(s.T())
	mailService := serviceMocks.NewMockMailService(ctrl)
	mailService.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	ctx := s.createContext(mailService, nil)

	message, err := repositories.NewOutboxMessage(&messages.SendEmailMessage{To: "agent@example.com"})
	s.Require().NoError(err)

	// act
	err = NewMessageBroker().Distribute(ctx, message)

	// assert
	s.ErrorContains(err, "smtp down")
}

func (s *OutboxSuite) TestDistributeRejectsUnknownType() {
	// arrange
	ctx := s.createContext(nil, nil)

	message, err := repositories.NewOutboxMessage(unknownDetails{})
	s.Require().NoError(err)

	// act
	err = NewMessageBroker().Distribute(ctx, message)

	// assert
	s.ErrorContains(err, "unsupported message type")
}

func (s *OutboxSuite) TestInProcessDeliveryUsesBroker() {
	// arrange
	ctrl := gomock.NewController(s.T())
	broker := mocks.NewMockMessageBroker(ctrl)

	message, err := repositories.NewOutboxMessage(&messages.SendEmailMessage{To: "agent@example.com"})
	s.Require().NoError(err)
	broker.EXPECT().Distribute(gomock.Any(), message).Return(nil)

	ctx := s.createContext(nil, broker)

	// act
	err = NewInProcessDeliveryService().Deliver(ctx, message)

	// assert
	s.NoError(err)
}

func (s *OutboxSuite) TestNoopDeliveryDiscards() {
	// act
	err := NewNoopDeliveryService().Deliver(s.T().Context(), nil)

	// assert
	s.NoError(err)
}
