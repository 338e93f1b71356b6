package middlewares

import (
	"Listline/internal/database"
	"Listline/internal/logging"
	"Listline/utils"
	"context"
	"net/http"

	"github.com/The127/ioc"
	"github.com/gorilla/mux"
)

type scopeKeyType string

const ScopeKey scopeKeyType = "scope"

// ScopeMiddleware opens one dependency scope per request. The scope's
// transaction is rolled back when the response status is an error.
func ScopeMiddleware(dp *ioc.DependencyProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := dp.NewScope()
			defer utils.PanicOnError(scope.Close, "failed to close scope")

			recorder := NewStatusRecorder(w)
			r = r.WithContext(ContextWithScope(r.Context(), scope))
			next.ServeHTTP(recorder, r)

			if recorder.Status() >= http.StatusBadRequest {
				dbService := ioc.GetDependency[database.DbService](scope)
				err := dbService.Rollback()
				if err != nil {
					logging.Logger.Errorf("rolling back failed request: %v", err)
				}
			}
		})
	}
}

func GetScope(ctx context.Context) *ioc.DependencyProvider {
	return ctx.Value(ScopeKey).(*ioc.DependencyProvider)
}

func ContextWithScope(ctx context.Context, scope *ioc.DependencyProvider) context.Context {
	return context.WithValue(ctx, ScopeKey, scope)
}
