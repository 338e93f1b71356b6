package middlewares

import (
	"net/http"
)

// NoSniffMiddleware stops browsers from guessing a content type other than the one served.
func NoSniffMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}
