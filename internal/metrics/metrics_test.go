package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type MetricsSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MetricsSuite))
}

func (s *MetricsSuite) TestOutcome() {
	s.Equal("success", Outcome(nil))
	s.Equal("error", Outcome(errors.New("boom")))
}

func (s *MetricsSuite) TestJobRunsAreCountedPerOutcome() {
	// arrange
	before := testutil.ToFloat64(JobRuns.WithLabelValues("metrics_test", "success"))

	// act
	JobRuns.WithLabelValues("metrics_test", Outcome(nil)).Inc()

	// assert
	s.InDelta(before+1, testutil.ToFloat64(JobRuns.WithLabelValues("metrics_test", "success")), 0.001)
}

func (s *MetricsSuite) TestInitCanBeCalledTwice() {
	s.NotPanics(func() {
		Init()
		Init()
	})
}
