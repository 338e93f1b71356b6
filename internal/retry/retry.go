package retry

import (
	"Listline/internal/logging"
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

func FiveTimes(f func() error, msg string) {
	var err error
	for i := 0; i < 5; i++ {
		err = f()
		if err == nil {
			return
		}

		logging.Logger.Warnf("%s: %v", msg, err)
		logging.Logger.Infof("retrying in 5 seconds (attempt %d/5)", i+1)
		time.Sleep(5 * time.Second)
	}

	panic(err)
}

// Backoff describes an exponential retry policy.
type Backoff struct {
	Attempts int
	Initial  time.Duration
}

// Default is three attempts starting at one second.
var Default = Backoff{
	Attempts: 3,
	Initial:  time.Second,
}

func (b Backoff) policy(ctx context.Context) backoff.BackOffContext {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = b.Initial
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0
	exponential.MaxElapsedTime = 0

	retries := max(b.Attempts, 1) - 1
	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(retries)), ctx)
}

// Do calls f until it succeeds, shouldRetry rejects the error or the attempts
// are used up. The last error is returned. The wait doubles after every attempt
// and is cut short when ctx is done.
func (b Backoff) Do(ctx context.Context, f func() error, shouldRetry func(error) bool) error {
	return backoff.Retry(func() error {
		err := f()
		if err != nil && shouldRetry != nil && !shouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b.policy(ctx))
}
