package setup

import (
	"Listline/internal/config"
	"Listline/internal/services/outbox"
	"fmt"

	"github.com/The127/ioc"
)

// Outbox registers how queued messages leave the service.
func Outbox(dc *ioc.DependencyCollection, queueMode config.QueueMode) error {
	var deliveryService outbox.DeliveryService

	switch queueMode {
	case config.QueueModeNoop:
		deliveryService = outbox.NewNoopDeliveryService()

	case config.QueueModeInProcess:
		deliveryService = outbox.NewInProcessDeliveryService()

	default:
		return fmt.Errorf("queue mode %q missing or not supported", queueMode)
	}

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) outbox.DeliveryService {
		return deliveryService
	})
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) outbox.MessageBroker {
		return outbox.NewMessageBroker()
	})

	return nil
}
