package queries

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/authentication/roles"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

var userOrderColumns = map[string]string{
	"email":      "email",
	"full_name":  "full_name",
	"role":       "role",
	"created_at": "audit_created_at",
}

type ListUsers struct {
	PagedQuery
	OrderedQuery
	Role *roles.Role
}

func (a ListUsers) LogRequest() bool {
	return true
}

func (a ListUsers) LogResponse() bool {
	return false
}

func (a ListUsers) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.UserManage)
}

func (a ListUsers) GetRequestName() string {
	return "ListUsers"
}

type ListUsersResponse struct {
	PagedResponse[ListUsersResponseItem]
}

type ListUsersResponseItem struct {
	Id        uuid.UUID
	Email     string
	FullName  *string
	Role      roles.Role
	CreatedAt time.Time
}

func HandleListUsers(ctx context.Context, query ListUsers) (*ListUsersResponse, error) {
	scope := middlewares.GetScope(ctx)

	profileFilter := repositories.NewProfileFilter().
		Pagination(query.Page, query.PageSize)
	if query.Role != nil {
		profileFilter = profileFilter.Role(*query.Role)
	}
	if column, ok := query.Column(userOrderColumns); ok {
		profileFilter = profileFilter.Order(column, query.OrderDir)
	}

	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)
	profiles, total, err := profileRepository.List(ctx, profileFilter)
	if err != nil {
		return nil, fmt.Errorf("getting profiles: %w", err)
	}

	items := utils.MapSlice(profiles, func(p *repositories.Profile) ListUsersResponseItem {
		return ListUsersResponseItem{
			Id:        p.Id(),
			Email:     p.Email(),
			FullName:  p.FullName(),
			Role:      p.Role(),
			CreatedAt: p.AuditCreatedAt(),
		}
	})

	return &ListUsersResponse{
		PagedResponse: NewPagedResponse(items, total),
	}, nil
}
