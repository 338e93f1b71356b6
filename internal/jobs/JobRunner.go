package jobs

import (
	"Listline/internal/metrics"
	"context"
	"fmt"
	"sync"
	"time"
)

// JobFn is one run of a job. The context is cancelled when the run times out
// or the scheduler stops.
type JobFn func(ctx context.Context) error

const defaultInterval = time.Second

type scheduledJob struct {
	name       string
	fn         JobFn
	interval   time.Duration
	timeout    time.Duration
	runOnStart bool
}

type JobOption func(*scheduledJob)

// WithStartImmediate runs the job once as soon as the scheduler starts
// instead of waiting for the first tick.
func WithStartImmediate() JobOption {
	return func(j *scheduledJob) {
		j.runOnStart = true
	}
}

func WithTimeout(timeout time.Duration) JobOption {
	return func(j *scheduledJob) {
		j.timeout = timeout
	}
}

// Scheduler runs named jobs at fixed intervals while started. Each job runs
// on its own goroutine, so a slow run delays only that job's next tick.
type Scheduler struct {
	jobs    []*scheduledJob
	onError func(error)

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

type SchedulerOption func(*Scheduler)

func WithOnError(onError func(error)) SchedulerOption {
	return func(s *Scheduler) {
		s.onError = onError
	}
}

func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		onError: func(error) {},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Every registers fn to run each interval. It panics once the scheduler is started.
func (s *Scheduler) Every(name string, interval time.Duration, fn JobFn, opts ...JobOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		panic(fmt.Sprintf("scheduling job %s on a started scheduler", name))
	}

	if interval <= 0 {
		interval = defaultInterval
	}

	j := &scheduledJob{
		name:     name,
		fn:       fn,
		interval: interval,
	}
	for _, opt := range opts {
		opt(j)
	}

	s.jobs = append(s.jobs, j)
}

// Start launches all jobs. Calling Start on a started scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)

	for _, j := range s.jobs {
		s.running.Add(1)
		go s.loop(ctx, j)
	}
}

// Stop cancels in-flight runs and waits for every job goroutine to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	s.running.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j *scheduledJob) {
	defer s.running.Done()

	if j.runOnStart {
		s.run(ctx, j)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.run(ctx, j)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, j *scheduledJob) {
	if ctx.Err() != nil {
		return
	}

	var runCtx context.Context
	var cancel context.CancelFunc
	if j.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, j.timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	err := recoverJob(runCtx, j.fn)
	metrics.JobRuns.WithLabelValues(j.name, metrics.Outcome(err)).Inc()

	if err != nil {
		s.onError(fmt.Errorf("job %s: %w", j.name, err))
	}
}

// recoverJob turns a panic of fn into an error.
func recoverJob(ctx context.Context, fn JobFn) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn(ctx)
}
