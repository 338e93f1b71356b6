package logging

import (
	"Listline/internal/config"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init is called.
var Logger = zap.NewNop().Sugar()

func Init() {
	logger, err := New(config.C.Logging)
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}

	Logger = logger.Sugar()
}

// New builds a zap logger writing to stderr at the configured level.
func New(c config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", c.Level, err)
	}

	zc := zap.NewDevelopmentConfig()
	if c.Json {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
