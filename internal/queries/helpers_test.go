package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/roles"
	"Listline/internal/middlewares"
	"Listline/utils"
	"context"
	"testing"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

func register[T any](dc *ioc.DependencyCollection, value T) {
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) T {
		return value
	})
}

func newTestContext(t *testing.T, user authentication.CurrentUser, build func(dc *ioc.DependencyCollection)) context.Context {
	dc := ioc.NewDependencyCollection()
	if build != nil {
		build(dc)
	}

	scope := dc.BuildProvider()
	t.Cleanup(func() {
		utils.PanicOnError(scope.Close, "closing scope")
	})

	ctx := middlewares.ContextWithScope(t.Context(), scope)
	return authentication.ContextWithCurrentUser(ctx, user)
}

func adminUser() authentication.CurrentUser {
	return authentication.NewCurrentUserWithRole(uuid.New(), "admin@example.com", roles.Admin)
}

func regularUser() authentication.CurrentUser {
	return authentication.NewCurrentUserWithRole(uuid.New(), "user@example.com", roles.User)
}
