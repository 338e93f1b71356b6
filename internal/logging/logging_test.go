package logging

import (
	"Listline/internal/config"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggingSuite struct {
	suite.Suite
}

func TestLoggingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LoggingSuite))
}

func (s *LoggingSuite) TestNewUsesConfiguredLevel() {
	// act
	logger, err := New(config.LoggingConfig{Level: "warn", Json: true})

	// assert
	s.Require().NoError(err)
	s.False(logger.Core().Enabled(zapcore.InfoLevel))
	s.True(logger.Core().Enabled(zapcore.WarnLevel))
}

func (s *LoggingSuite) TestNewRejectsUnknownLevel() {
	// act
	_, err := New(config.LoggingConfig{Level: "chatty"})

	// assert
	s.ErrorContains(err, `parsing log level "chatty"`)
}
