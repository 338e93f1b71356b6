package jobs

import (
	"Listline/internal/messages"
	"Listline/internal/repositories"
	repositoryMocks "Listline/internal/repositories/mocks"
	renderingMocks "Listline/internal/services/rendering/mocks"
	"Listline/internal/services/outbox"
	outboxMocks "Listline/internal/services/outbox/mocks"
	"Listline/utils"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobsSuite struct {
	suite.Suite
}

func TestJobsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JobsSuite))
}

func (s *JobsSuite) outboxMessage(to string) *repositories.OutboxMessage {
	message, err := repositories.NewOutboxMessage(&messages.SendEmailMessage{
		To:      to,
		Subject: "Spring Open House is published",
	})
	s.Require().NoError(err)
	message.Mock(time.Now())
	return message
}

func (s *JobsSuite) provider(repository repositories.OutboxMessageRepository, deliveryService outbox.DeliveryService) *ioc.DependencyProvider {
	dc := ioc.NewDependencyCollection()
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) repositories.OutboxMessageRepository {
		return repository
	})
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) outbox.DeliveryService {
		return deliveryService
	})
	dp := dc.BuildProvider()
	s.T().Cleanup(func() {
		utils.PanicOnError(dp.Close, "closing provider")
	})
	return dp
}

func (s *JobsSuite) TestOutboxDeliversAndDeletes() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	message := s.outboxMessage("jane@example.com")

	repository := repositoryMocks.NewMockOutboxMessageRepository(ctrl)
	repository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*repositories.OutboxMessage{message}, nil)
	repository.EXPECT().Delete(gomock.Any(), message.Id()).Return(nil)

	deliveryService := outboxMocks.NewMockDeliveryService(ctrl)
	deliveryService.EXPECT().Deliver(gomock.Any(), message).Return(nil)

	job := OutboxSendingJob(s.provider(repository, deliveryService))

	// act
	err := job(context.Background())

	// assert
	s.Require().NoError(err)
}

func (s *JobsSuite) TestOutboxKeepsFailedMessages() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	failing := s.outboxMessage("broken@example.com")
	working := s.outboxMessage("jane@example.com")

	repository := repositoryMocks.NewMockOutboxMessageRepository(ctrl)
	repository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*repositories.OutboxMessage{failing, working}, nil)
	repository.EXPECT().Delete(gomock.Any(), working.Id()).Return(nil)

	deliveryService := outboxMocks.NewMockDeliveryService(ctrl)
	deliveryService.EXPECT().Deliver(gomock.Any(), failing).Return(errors.New("smtp down"))
	deliveryService.EXPECT().Deliver(gomock.Any(), working).Return(nil)

	job := OutboxSendingJob(s.provider(repository, deliveryService))

	// act
	err := job(context.Background())

	// assert
	s.Require().Error(err)
	s.Contains(err.Error(), "1 of 2")
}

func (s *JobsSuite) TestRendererHealthJobPings() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	renderer := renderingMocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Ping(gomock.Any()).Return(errors.New("browser gone"))

	// act
	err := RendererHealthJob(renderer)(context.Background())

	// assert
	s.Require().Error(err)
}

func (s *JobsSuite) TestSchedulerReportsErrorsAndPanics() {
	// arrange
	var mu sync.Mutex
	var reported []error
	done := make(chan struct{}, 2)

	scheduler := NewScheduler(WithOnError(func(err error) {
		mu.Lock()
		reported = append(reported, err)
		mu.Unlock()
		done <- struct{}{}
	}))

	scheduler.Every("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("failed")
	}, WithStartImmediate())
	scheduler.Every("panicking", time.Hour, func(ctx context.Context) error {
		panic("boom")
	}, WithStartImmediate())

	// act
	scheduler.Start(context.Background())
	defer scheduler.Stop()

	for range 2 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.FailNow("job errors were not reported")
		}
	}

	// assert
	mu.Lock()
	defer mu.Unlock()
	s.Len(reported, 2)
	errorMessages := []string{reported[0].Error(), reported[1].Error()}
	s.Contains(errorMessages, "job failing: failed")
	s.Contains(errorMessages, "job panicking: panic: boom")
}

func (s *JobsSuite) TestStopCancelsRunningJobAndWaits() {
	// arrange
	started := make(chan struct{})
	var finished atomic.Bool

	scheduler := NewScheduler()
	scheduler.Every("blocking", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		finished.Store(true)
		return ctx.Err()
	}, WithStartImmediate())

	scheduler.Start(context.Background())
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		s.FailNow("job did not start")
	}

	// act
	scheduler.Stop()

	// assert
	s.True(finished.Load())
}

func (s *JobsSuite) TestEveryPanicsOnceStarted() {
	// arrange
	scheduler := NewScheduler()
	scheduler.Start(context.Background())
	defer scheduler.Stop()

	// act & assert
	s.Panics(func() {
		scheduler.Every("late", time.Minute, func(context.Context) error { return nil })
	})
}
