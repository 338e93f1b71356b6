package middlewares

import (
	"Listline/internal/logging"
	"Listline/internal/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := NewStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			route := routeTemplate(r)
			duration := time.Since(start)
			metrics.HttpRequests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.Status())).Inc()
			metrics.HttpDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

			logging.Logger.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", recorder.Status(),
				"duration", duration)
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}

	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}

	return template
}
