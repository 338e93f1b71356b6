package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BackoffSuite struct {
	suite.Suite
}

func TestBackoffSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BackoffSuite))
}

var errTransient = errors.New("transient")
var errFatal = errors.New("fatal")

func (s *BackoffSuite) TestSucceedsAfterRetries() {
	// arrange
	b := Backoff{Attempts: 3, Initial: time.Millisecond}
	calls := 0

	// act
	err := b.Do(s.T().Context(), func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	}, nil)

	// assert
	s.Require().NoError(err)
	s.Equal(3, calls)
}

func (s *BackoffSuite) TestReturnsLastErrorWhenAttemptsAreUsedUp() {
	// arrange
	b := Backoff{Attempts: 2, Initial: time.Millisecond}
	calls := 0

	// act
	err := b.Do(s.T().Context(), func() error {
		calls++
		return errTransient
	}, nil)

	// assert
	s.ErrorIs(err, errTransient)
	s.Equal(2, calls)
}

func (s *BackoffSuite) TestStopsOnNonRetryableError() {
	// arrange
	b := Backoff{Attempts: 5, Initial: time.Millisecond}
	calls := 0

	// act
	err := b.Do(s.T().Context(), func() error {
		calls++
		return errFatal
	}, func(err error) bool {
		return errors.Is(err, errTransient)
	})

	// assert
	s.ErrorIs(err, errFatal)
	s.Equal(1, calls)
}

func (s *BackoffSuite) TestHonoursCancelledContext() {
	// arrange
	b := Backoff{Attempts: 3, Initial: time.Hour}
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	// act
	err := b.Do(ctx, func() error {
		return errTransient
	}, nil)

	// assert
	s.ErrorIs(err, context.Canceled)
}

func (s *BackoffSuite) TestZeroAttemptsStillCallsOnce() {
	// arrange
	b := Backoff{Initial: time.Millisecond}
	calls := 0

	// act
	err := b.Do(s.T().Context(), func() error {
		calls++
		return errTransient
	}, nil)

	// assert
	s.ErrorIs(err, errTransient)
	s.Equal(1, calls)
}
