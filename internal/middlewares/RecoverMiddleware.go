package middlewares

import (
	"Listline/internal/logging"
	"Listline/internal/metrics"
	"Listline/utils"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

// RecoverMiddleware answers a panicking handler with a json 500 and counts
// the panic per route.
func RecoverMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				metrics.HandlerPanics.WithLabelValues(r.Method, routeTemplate(r)).Inc()
				logging.Logger.Errorw("handler panicked",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", recovered,
					"stack", string(debug.Stack()),
				)
				utils.WriteJsonError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
