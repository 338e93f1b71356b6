package audit

import (
	"Listline/internal/behaviours"
	"Listline/internal/logging"
	"context"
)

// NewConsoleAuditLogger writes every policy decision to the application log.
func NewConsoleAuditLogger() behaviours.AuditLogger {
	return &consoleAuditLogger{}
}

type consoleAuditLogger struct{}

func (*consoleAuditLogger) Log(_ context.Context, policy behaviours.Policy, result behaviours.PolicyResult) error {
	if !result.IsAllowed() {
		logging.Logger.Infow("request denied",
			"request", policy.GetRequestName(),
			"user_id", result.UserId(),
		)
		return nil
	}

	logging.Logger.Debugw("request allowed",
		"request", policy.GetRequestName(),
		"user_id", result.UserId(),
		"reason", result.Reason().String(),
	)
	return nil
}
