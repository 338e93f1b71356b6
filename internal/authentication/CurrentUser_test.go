package authentication

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CurrentUserSuite struct {
	suite.Suite
}

func TestCurrentUserSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CurrentUserSuite))
}

func (s *CurrentUserSuite) TestAdminHasUserPermissions() {
	// act
	user := NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.Admin)

	// assert
	for _, permission := range roles.UserPermissions {
		s.True(user.HasPermission(permission).IsSuccess(), permission)
	}
	s.Equal([]roles.Role{roles.Admin}, user.HasPermission(permissions.SettingsManage).SourceRoles)
}

func (s *CurrentUserSuite) TestUserLacksAdminPermissions() {
	// act
	user := NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.User)

	// assert
	s.False(user.HasPermission(permissions.SettingsManage).IsSuccess())
	s.False(user.HasPermission(permissions.UserManage).IsSuccess())
	s.True(user.IsAuthenticated())
}

func (s *CurrentUserSuite) TestSystemUser() {
	// act
	user := SystemUser()

	// assert
	s.True(user.HasPermission(permissions.SystemUser).IsSuccess())
	s.False(user.IsAuthenticated())
}

func (s *CurrentUserSuite) TestContextRoundTrip() {
	// arrange
	user := NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.User)

	// act
	ctx := ContextWithCurrentUser(s.T().Context(), user)

	// assert
	s.Equal(user.UserId, GetCurrentUser(ctx).UserId)
	s.Panics(func() {
		GetCurrentUser(s.T().Context())
	})
}
