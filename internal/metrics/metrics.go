package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "http_requests_total",
		Help:      "Number of handled http requests.",
	}, []string{"method", "route", "status"})

	HttpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "listline",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of handled http requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	AiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "ai_requests_total",
		Help:      "Number of requests sent to ai providers.",
	}, []string{"provider", "outcome"})

	AiDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "listline",
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of requests sent to ai providers.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 120},
	}, []string{"provider"})

	AiCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "ai_cache_hits_total",
		Help:      "Number of ai customizations served from the cache.",
	})

	RenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "listline",
		Name:      "render_duration_seconds",
		Help:      "Duration of headless browser renders.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"kind"})

	RenderFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "render_failures_total",
		Help:      "Number of failed headless browser renders.",
	}, []string{"kind"})

	HandlerPanics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "http_handler_panics_total",
		Help:      "Number of http handlers that panicked.",
	}, []string{"method", "route"})

	JobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listline",
		Name:      "job_runs_total",
		Help:      "Number of background job runs.",
	}, []string{"job", "outcome"})
)

var registerOnce sync.Once

// Init registers all collectors with the default registry.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HttpRequests,
			HttpDuration,
			AiRequests,
			AiDuration,
			AiCacheHits,
			RenderDuration,
			RenderFailures,
			HandlerPanics,
			JobRuns,
		)
	})
}

// Outcome maps an error to the outcome label value.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveSince records the time passed since start on the given observer.
func ObserveSince(o prometheus.Observer, start time.Time) {
	o.Observe(time.Since(start).Seconds())
}
