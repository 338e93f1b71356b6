package behaviours

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./mocks/audit_logger.go -package=mocks Listline/internal/behaviours AuditLogger
type AuditLogger interface {
	Log(ctx context.Context, policy Policy, result PolicyResult) error
}

// Policy is implemented by every request that goes through the mediator.
type Policy interface {
	IsAllowed(ctx context.Context) (PolicyResult, error)
	GetRequestName() string
}

type ReasonKind string

const (
	ReasonAuthenticated ReasonKind = "authenticated"
	ReasonPermission    ReasonKind = "permission"
)

// AllowReason explains which grant let a request through. Permission and
// SourceRoles are only set for ReasonPermission.
type AllowReason struct {
	Kind        ReasonKind
	Permission  permissions.Permission
	SourceRoles []roles.Role
}

func (r AllowReason) String() string {
	if r.Kind == ReasonPermission {
		return fmt.Sprintf("permission %s via %v", r.Permission, r.SourceRoles)
	}
	return string(r.Kind)
}

type PolicyResult struct {
	allowed       bool
	authenticated bool
	userId        uuid.UUID
	reason        AllowReason
}

func (p PolicyResult) IsAllowed() bool {
	return p.allowed
}

func (p PolicyResult) UserId() uuid.UUID {
	return p.userId
}

// Reason is the zero value for denied results.
func (p PolicyResult) Reason() AllowReason {
	return p.reason
}

func Allowed(user authentication.CurrentUser, reason AllowReason) PolicyResult {
	return PolicyResult{
		allowed:       true,
		authenticated: true,
		userId:        user.UserId,
		reason:        reason,
	}
}

func Denied(user authentication.CurrentUser) PolicyResult {
	return PolicyResult{
		authenticated: user.IsAuthenticated(),
		userId:        user.UserId,
	}
}

// PolicyBehaviour audits the decision of request's policy and only calls next
// when it allows the request. Anonymous callers get 401, signed-in ones 403.
func PolicyBehaviour(ctx context.Context, request Policy, next mediator.Next) error {
	result, err := evaluatePolicy(ctx, request)
	if err != nil {
		return fmt.Errorf("evaluating policy of %s: %w", request.GetRequestName(), err)
	}

	auditLogger := ioc.GetDependency[AuditLogger](middlewares.GetScope(ctx))
	err = auditLogger.Log(ctx, request, result)
	if err != nil {
		return fmt.Errorf("auditing %s: %w", request.GetRequestName(), err)
	}

	switch {
	case result.allowed:
		return next()
	case !result.authenticated:
		return fmt.Errorf("request %s needs a signed-in user: %w", request.GetRequestName(), utils.ErrHttpUnauthorized)
	default:
		return fmt.Errorf("request %s not allowed: %w", request.GetRequestName(), utils.ErrHttpForbidden)
	}
}

// PermissionBasedPolicy allows the request when the current user holds permission.
func PermissionBasedPolicy(ctx context.Context, permission permissions.Permission) (PolicyResult, error) {
	currentUser := authentication.GetCurrentUser(ctx)

	grant := currentUser.HasPermission(permission)
	if !grant.IsSuccess() {
		return Denied(currentUser), nil
	}

	return Allowed(currentUser, AllowReason{
		Kind:        ReasonPermission,
		Permission:  permission,
		SourceRoles: grant.SourceRoles,
	}), nil
}

// AuthenticatedPolicy allows the request for every signed-in user.
func AuthenticatedPolicy(ctx context.Context) (PolicyResult, error) {
	currentUser := authentication.GetCurrentUser(ctx)
	if !currentUser.IsAuthenticated() {
		return Denied(currentUser), nil
	}

	return Allowed(currentUser, AllowReason{Kind: ReasonAuthenticated}), nil
}

func evaluatePolicy(ctx context.Context, request Policy) (PolicyResult, error) {
	result, err := PermissionBasedPolicy(ctx, permissions.SystemUser)
	if err != nil || result.IsAllowed() {
		return result, err
	}

	return request.IsAllowed(ctx)
}
