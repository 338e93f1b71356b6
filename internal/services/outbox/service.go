package outbox

import (
	"Listline/internal/logging"
	"Listline/internal/messages"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/services"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

//go:generate mockgen -destination=./mocks/mock_deliveryService.go -package=mocks . DeliveryService
type DeliveryService interface {
	Deliver(ctx context.Context, message *repositories.OutboxMessage) error
}

//go:generate mockgen -destination=./mocks/mock_messageBroker.go -package=mocks . MessageBroker
type MessageBroker interface {
	Distribute(ctx context.Context, message *repositories.OutboxMessage) error
}

// messageHandler processes one decoded outbox message with services from scope.
type messageHandler func(ctx context.Context, scope *ioc.DependencyProvider, message *repositories.OutboxMessage) error

type messageBroker struct {
	handlers map[repositories.OutboxMessageType]messageHandler
}

func NewMessageBroker() MessageBroker {
	return &messageBroker{
		handlers: map[repositories.OutboxMessageType]messageHandler{
			repositories.SendMailOutboxMessageType: sendMail,
		},
	}
}

func (m *messageBroker) Distribute(ctx context.Context, message *repositories.OutboxMessage) error {
	handler, ok := m.handlers[message.Type()]
	if !ok {
		return fmt.Errorf("unsupported message type: %s", message.Type())
	}

	logging.Logger.Debugw("distributing message", "message_type", message.Type(), "message_id", message.Id())

	return handler(ctx, middlewares.GetScope(ctx), message)
}

func sendMail(ctx context.Context, scope *ioc.DependencyProvider, message *repositories.OutboxMessage) error {
	var details messages.SendEmailMessage
	err := message.Details().Decode(&details)
	if err != nil {
		return fmt.Errorf("decoding send email details: %w", err)
	}

	mailService := ioc.GetDependency[services.MailService](scope)
	err = mailService.Send(ctx, services.Mail{
		To:          details.To,
		DisplayName: details.DisplayName,
		Subject:     details.Subject,
		HtmlBody:    details.HtmlBody,
	})
	if err != nil {
		return fmt.Errorf("sending email to %s: %w", details.To, err)
	}

	return nil
}
