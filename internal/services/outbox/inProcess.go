package outbox

import (
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"

	"github.com/The127/ioc"
)

type inProcessDeliveryService struct{}

// NewInProcessDeliveryService hands messages to the MessageBroker of the
// calling scope on the current goroutine.
func NewInProcessDeliveryService() DeliveryService {
	return &inProcessDeliveryService{}
}

func (*inProcessDeliveryService) Deliver(ctx context.Context, message *repositories.OutboxMessage) error {
	broker := ioc.GetDependency[MessageBroker](middlewares.GetScope(ctx))
	return broker.Distribute(ctx, message)
}
