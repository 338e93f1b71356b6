package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type GetProfile struct{}

func (a GetProfile) LogRequest() bool {
	return true
}

func (a GetProfile) LogResponse() bool {
	return false
}

func (a GetProfile) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.ProfileView)
}

func (a GetProfile) GetRequestName() string {
	return "GetProfile"
}

type GetProfileResponse struct {
	Id        uuid.UUID
	Email     string
	FullName  *string
	Role      roles.Role
	CreatedAt time.Time
}

func HandleGetProfile(ctx context.Context, _ GetProfile) (*GetProfileResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)
	profile, err := profileRepository.Single(ctx, repositories.NewProfileFilter().Id(currentUser.UserId))
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &GetProfileResponse{
		Id:        profile.Id(),
		Email:     profile.Email(),
		FullName:  profile.FullName(),
		Role:      profile.Role(),
		CreatedAt: profile.AuditCreatedAt(),
	}, nil
}
