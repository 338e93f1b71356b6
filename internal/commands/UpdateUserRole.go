package commands

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type UpdateUserRole struct {
	UserId uuid.UUID
	Role   roles.Role
}

func (a UpdateUserRole) LogRequest() bool {
	return true
}

func (a UpdateUserRole) LogResponse() bool {
	return true
}

func (a UpdateUserRole) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.UserManage)
}

func (a UpdateUserRole) GetRequestName() string {
	return "UpdateUserRole"
}

type UpdateUserRoleResponse struct {
	Id   uuid.UUID
	Role roles.Role
}

func HandleUpdateUserRole(ctx context.Context, command UpdateUserRole) (*UpdateUserRoleResponse, error) {
	if !command.Role.IsAssignable() {
		return nil, fmt.Errorf("unknown role %q: %w", command.Role, utils.ErrHttpBadRequest)
	}

	currentUser := authentication.GetCurrentUser(ctx)
	if command.UserId == currentUser.UserId && command.Role != roles.Admin {
		return nil, fmt.Errorf("admins cannot demote themselves: %w", utils.ErrHttpConflict)
	}

	scope := middlewares.GetScope(ctx)
	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)
	profile, err := profileRepository.Single(ctx, repositories.NewProfileFilter().Id(command.UserId))
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	if profile.Role() != command.Role {
		profile.SetRole(command.Role)
		err = profileRepository.Update(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("updating profile: %w", err)
		}
	}

	return &UpdateUserRoleResponse{
		Id:   profile.Id(),
		Role: profile.Role(),
	}, nil
}
