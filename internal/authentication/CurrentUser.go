package authentication

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"context"

	"github.com/google/uuid"
)

type PermissionAssignment struct {
	Permission  permissions.Permission
	SourceRoles []roles.Role
}

type CurrentUser struct {
	UserId      uuid.UUID
	Email       string
	Role        roles.Role
	Permissions map[permissions.Permission]PermissionAssignment
}

func NewCurrentUser(userId uuid.UUID) CurrentUser {
	return CurrentUser{
		UserId:      userId,
		Permissions: make(map[permissions.Permission]PermissionAssignment),
	}
}

// NewCurrentUserWithRole creates a user holding all permissions of role.
func NewCurrentUserWithRole(userId uuid.UUID, email string, role roles.Role) CurrentUser {
	user := NewCurrentUser(userId)
	user.Email = email
	user.Role = role
	assignPermissionsToUser(&user, role)
	return user
}

func (c CurrentUser) IsAuthenticated() bool {
	return c.UserId != uuid.Nil
}

type HasPermissionResult struct {
	HasPermission bool
	SourceRoles   []roles.Role
}

func (r HasPermissionResult) IsSuccess() bool {
	return r.HasPermission
}

func (c CurrentUser) HasPermission(permission permissions.Permission) HasPermissionResult {
	assignment, ok := c.Permissions[permission]
	if !ok {
		return HasPermissionResult{
			HasPermission: false,
		}
	}

	return HasPermissionResult{
		HasPermission: true,
		SourceRoles:   assignment.SourceRoles,
	}
}

func assignPermissionsToUser(currentUser *CurrentUser, role roles.Role) {
	rolePermissions, ok := roles.AllRoles[role]
	if !ok {
		return
	}

	for _, permission := range rolePermissions {
		permissionAssignment, ok := currentUser.Permissions[permission]
		if !ok {
			permissionAssignment = PermissionAssignment{
				Permission:  permission,
				SourceRoles: make([]roles.Role, 0),
			}
		}
		permissionAssignment.SourceRoles = append(permissionAssignment.SourceRoles, role)
		currentUser.Permissions[permission] = permissionAssignment
	}
}

type currentUserContextKeyType struct{}

var currentUserContextKey = currentUserContextKeyType{}

func ContextWithCurrentUser(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserContextKey, user)
}

func GetCurrentUser(ctx context.Context) CurrentUser {
	value, ok := ctx.Value(currentUserContextKey).(CurrentUser)
	if !ok {
		panic("current user not found")
	}
	return value
}

func SystemUser() CurrentUser {
	user := NewCurrentUser(uuid.Nil)
	user.Role = roles.SystemUser
	assignPermissionsToUser(&user, roles.SystemUser)
	return user
}
