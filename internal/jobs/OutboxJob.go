package jobs

import (
	"Listline/internal/logging"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/services/outbox"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

// OutboxSendingJob delivers queued messages. Delivered messages are deleted,
// failed ones stay queued for the next run.
func OutboxSendingJob(dp *ioc.DependencyProvider) JobFn {
	return func(ctx context.Context) error {
		scope := dp.NewScope()
		defer utils.PanicOnError(scope.Close, "failed to close scope")
		ctx = middlewares.ContextWithScope(ctx, scope)

		outboxMessageRepository := ioc.GetDependency[repositories.OutboxMessageRepository](scope)
		deliveryService := ioc.GetDependency[outbox.DeliveryService](scope)

		outboxMessages, err := outboxMessageRepository.List(ctx, repositories.NewOutboxMessageFilter())
		if err != nil {
			return fmt.Errorf("failed to list outbox messages: %w", err)
		}

		failed := 0
		for _, message := range outboxMessages {
			err = handleMessage(ctx, message, deliveryService, outboxMessageRepository)
			if err != nil {
				failed++
				logging.Logger.Errorw("failed handling outbox message",
					"message_id", message.Id(),
					"message_type", message.Type(),
					"error", err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d outbox messages failed", failed, len(outboxMessages))
		}

		return nil
	}
}

func handleMessage(
	ctx context.Context,
	message *repositories.OutboxMessage,
	deliveryService outbox.DeliveryService,
	repository repositories.OutboxMessageRepository,
) error {
	err := deliveryService.Deliver(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to deliver message: %w", err)
	}

	err = repository.Delete(ctx, message.Id())
	if err != nil {
		return fmt.Errorf("failed to delete message in database: %w", err)
	}

	return nil
}
