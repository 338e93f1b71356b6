package authentication

import (
	"Listline/internal/authentication/roles"
	"Listline/internal/logging"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/The127/ioc"
	"github.com/gorilla/mux"
)

// Middleware authenticates every request with the bearer token and loads the
// caller's profile, creating it on first sight.
func Middleware(verifier *TokenVerifier, initialAdmins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := extractClaimsFromBearerToken(verifier, r.Header.Get("Authorization"))
			if err != nil {
				logging.Logger.Debugf("rejecting request: %v", err)
				utils.HandleHttpError(w, err)
				return
			}

			currentUser, err := loadCurrentUser(ctx, claims, initialAdmins)
			if err != nil {
				utils.HandleHttpError(w, fmt.Errorf("loading current user: %w", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithCurrentUser(ctx, currentUser)))
		})
	}
}

func extractClaimsFromBearerToken(verifier *TokenVerifier, authorizationHeader string) (Claims, error) {
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return Claims{}, utils.ErrHttpUnauthorized
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	if tokenString == "" {
		return Claims{}, utils.ErrHttpUnauthorized
	}

	return verifier.Verify(tokenString)
}

func loadCurrentUser(ctx context.Context, claims Claims, initialAdmins []string) (CurrentUser, error) {
	scope := middlewares.GetScope(ctx)
	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)

	userId, err := claims.UserId()
	if err != nil {
		return CurrentUser{}, utils.ErrHttpUnauthorized
	}

	profile, err := profileRepository.First(ctx, repositories.NewProfileFilter().Id(userId))
	if err != nil {
		return CurrentUser{}, fmt.Errorf("getting profile: %w", err)
	}

	if profile == nil {
		role := roles.User
		if claims.Email != "" && slices.Contains(initialAdmins, strings.ToLower(claims.Email)) {
			role = roles.Admin
		}

		profile = repositories.NewProfile(userId, claims.Email, utils.NilIfBlank(&claims.UserMetadata.FullName), role)
		err = profileRepository.Insert(ctx, profile)
		switch {
		case errors.Is(err, repositories.ErrProfileExists):
			// a concurrent first request created it
			profile, err = profileRepository.First(ctx, repositories.NewProfileFilter().Id(userId))
			if err != nil {
				return CurrentUser{}, fmt.Errorf("getting profile: %w", err)
			}
			if profile == nil {
				return CurrentUser{}, fmt.Errorf("creating profile: %w", repositories.ErrProfileExists)
			}

		case err != nil:
			return CurrentUser{}, fmt.Errorf("creating profile: %w", err)

		default:
			logging.Logger.Infof("created profile %s with role %s", userId, role)
		}
	}

	return NewCurrentUserWithRole(profile.Id(), profile.Email(), profile.Role()), nil
}
