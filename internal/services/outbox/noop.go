package outbox

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"context"
)

type discardDeliveryService struct{}

// NewNoopDeliveryService drops every message. Dropped messages are still
// removed from the outbox by the sending job.
func NewNoopDeliveryService() DeliveryService {
	return &discardDeliveryService{}
}

func (*discardDeliveryService) Deliver(_ context.Context, message *repositories.OutboxMessage) error {
	if message != nil {
		logging.Logger.Debugw("discarding outbox message", "message_type", message.Type(), "message_id", message.Id())
	}
	return nil
}
