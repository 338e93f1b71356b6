package behaviours_test

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"Listline/internal/behaviours"
	"Listline/internal/behaviours/mocks"
	"Listline/internal/middlewares"
	"Listline/utils"
	"context"
	"testing"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type settingsRequest struct{}

func (settingsRequest) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.SettingsManage)
}

func (settingsRequest) GetRequestName() string {
	return "settingsRequest"
}

type PolicyBehaviourSuite struct {
	suite.Suite
}

func TestPolicyBehaviourSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PolicyBehaviourSuite))
}

func (s *PolicyBehaviourSuite) createContext(auditLogger behaviours.AuditLogger, user authentication.CurrentUser) context.Context {
	dc := ioc.NewDependencyCollection()
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) behaviours.AuditLogger {
		return auditLogger
	})

	scope := dc.BuildProvider()
	s.T().Cleanup(func() {
		utils.PanicOnError(scope.Close, "closing scope")
	})

	ctx := middlewares.ContextWithScope(s.T().Context(), scope)
	return authentication.ContextWithCurrentUser(ctx, user)
}

func (s *PolicyBehaviourSuite) TestAllowedRequestCallsNext() {
	// arrange
	ctrl := gomock.NewController(s.T())
	auditLogger := mocks.NewMockAuditLogger(ctrl)
	auditLogger.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Cond(func(x behaviours.PolicyResult) bool {
		return x.IsAllowed()
	})).Return(nil)

	ctx := s.createContext(auditLogger, authentication.NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.Admin))
	called := false

	// act
	err := behaviours.PolicyBehaviour(ctx, settingsRequest{}, func() error {
		called = true
		return nil
	})

	// assert
	s.Require().NoError(err)
	s.True(called)
}

func (s *PolicyBehaviourSuite) TestDeniedRequestIsForbidden() {
	// arrange
	ctrl := gomock.NewController(s.T())
	auditLogger := mocks.NewMockAuditLogger(ctrl)
	auditLogger.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Cond(func(x behaviours.PolicyResult) bool {
		return !x.IsAllowed()
	})).Return(nil)

	ctx := s.createContext(auditLogger, authentication.NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.User))
	called := false

	// act
	err := behaviours.PolicyBehaviour(ctx, settingsRequest{}, func() error {
		called = true
		return nil
	})

	// assert
	s.ErrorIs(err, utils.ErrHttpForbidden)
	s.False(called)
}

func (s *PolicyBehaviourSuite) TestSystemUserBypassesPolicy() {
	// arrange
	ctrl := gomock.NewController(s.T())
	auditLogger := mocks.NewMockAuditLogger(ctrl)
	auditLogger.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := s.createContext(auditLogger, authentication.SystemUser())

	// act
	err := behaviours.PolicyBehaviour(ctx, settingsRequest{}, func() error {
		return nil
	})

	// assert
	s.NoError(err)
}

func (s *PolicyBehaviourSuite) TestAuthenticatedPolicy() {
	// arrange
	ctx := authentication.ContextWithCurrentUser(s.T().Context(), authentication.NewCurrentUser(uuid.Nil))

	// act
	result, err := behaviours.AuthenticatedPolicy(ctx)

	// assert
	s.Require().NoError(err)
	s.False(result.IsAllowed())
}

func (s *PolicyBehaviourSuite) TestAnonymousRequestIsUnauthorized() {
	// arrange
	ctrl := gomock.NewController(s.T())
	auditLogger := mocks.NewMockAuditLogger(ctrl)
	auditLogger.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := s.createContext(auditLogger, authentication.NewCurrentUser(uuid.Nil))

	// act
	err := behaviours.PolicyBehaviour(ctx, settingsRequest{}, func() error {
		return nil
	})

	// assert
	s.ErrorIs(err, utils.ErrHttpUnauthorized)
}

func (s *PolicyBehaviourSuite) TestPermissionReasonNamesSourceRoles() {
	// arrange
	ctx := authentication.ContextWithCurrentUser(
		s.T().Context(),
		authentication.NewCurrentUserWithRole(uuid.New(), "a@b.c", roles.Admin),
	)

	// act
	result, err := behaviours.PermissionBasedPolicy(ctx, permissions.SettingsManage)

	// assert
	s.Require().NoError(err)
	s.Equal(behaviours.ReasonPermission, result.Reason().Kind)
	s.Contains(result.Reason().SourceRoles, roles.Admin)
	s.Contains(result.Reason().String(), string(permissions.SettingsManage))
}
