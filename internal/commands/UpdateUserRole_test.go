package commands

import (
	"Listline/internal/authentication/roles"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/utils"
	"testing"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UpdateUserRoleCommandSuite struct {
	suite.Suite
}

func TestUpdateUserRoleCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UpdateUserRoleCommandSuite))
}

func (s *UpdateUserRoleCommandSuite) TestPromotesUser() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	profile := repositories.NewProfile(uuid.New(), "joe@example.com", nil, roles.User)
	profileRepository := mocks.NewMockProfileRepository(ctrl)
	profileRepository.EXPECT().Single(gomock.Any(), gomock.Cond(func(x repositories.ProfileFilter) bool {
		return x.GetId() == profile.Id()
	})).Return(profile, nil)
	profileRepository.EXPECT().Update(gomock.Any(), gomock.Cond(func(x *repositories.Profile) bool {
		return x.Role() == roles.Admin
	})).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.ProfileRepository](dc, profileRepository)
	})

	// act
	resp, err := HandleUpdateUserRole(ctx, UpdateUserRole{UserId: profile.Id(), Role: roles.Admin})

	// assert
	s.Require().NoError(err)
	s.Equal(roles.Admin, resp.Role)
}

func (s *UpdateUserRoleCommandSuite) TestSelfDemotionIsConflict() {
	// arrange
	admin := adminUser()
	ctx := newTestContext(s.T(), admin, nil)

	// act
	resp, err := HandleUpdateUserRole(ctx, UpdateUserRole{UserId: admin.UserId, Role: roles.User})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpConflict)
	s.Nil(resp)
}

func (s *UpdateUserRoleCommandSuite) TestUnknownRoleIsBadRequest() {
	// arrange
	ctx := newTestContext(s.T(), adminUser(), nil)

	// act
	_, err := HandleUpdateUserRole(ctx, UpdateUserRole{UserId: uuid.New(), Role: roles.SystemUser})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
}
