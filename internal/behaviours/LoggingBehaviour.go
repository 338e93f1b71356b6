package behaviours

import (
	"Listline/internal/logging"
	"Listline/internal/mediator"
	"context"
	"time"
)

type Loggable interface {
	LogRequest() bool
	LogResponse() bool
	GetRequestName() string
}

func LoggingBehaviour(ctx context.Context, request Loggable, next mediator.Next) error {
	if !request.LogRequest() {
		return next()
	}

	start := time.Now()
	logging.Logger.Infof("handling %s", request.GetRequestName())

	err := next()
	if err != nil {
		logging.Logger.Infof("%s failed after %s: %v", request.GetRequestName(), time.Since(start), err)
		return err
	}

	if request.LogResponse() {
		logging.Logger.Infof("handled %s in %s", request.GetRequestName(), time.Since(start))
	}

	return nil
}
