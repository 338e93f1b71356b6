package handlers

import (
	"Listline/internal/authentication/roles"
	"Listline/internal/commands"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/queries"
	"Listline/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type AdminStatsDto struct {
	Templates               int `json:"templates"`
	ActiveTemplates         int `json:"activeTemplates"`
	Customizations          int `json:"customizations"`
	PublishedCustomizations int `json:"publishedCustomizations"`
	Users                   int `json:"users"`
}

type ProfileDto struct {
	Id        uuid.UUID  `json:"id"`
	FullName  *string    `json:"full_name"`
	Email     string     `json:"email"`
	Role      roles.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

type UpdateUserRoleRequestDto struct {
	Role roles.Role `json:"role" validate:"required,oneof=admin user"`
}

type UserRoleDto struct {
	Id   uuid.UUID  `json:"id"`
	Role roles.Role `json:"role"`
}

// GetAdminStats returns dashboard counts
// @Summary Admin stats
// @Tags Admin
// @Produce json
// @Success 200 {object} DataResponseDto[AdminStatsDto]
// @Failure 403
// @Failure 500
// @Router /api/admin/stats [get]
func GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	stats, err := mediator.Send[*queries.GetAdminStatsResponse](ctx, m, queries.GetAdminStats{})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(AdminStatsDto{
		Templates:               stats.Templates,
		ActiveTemplates:         stats.ActiveTemplates,
		Customizations:          stats.Customizations,
		PublishedCustomizations: stats.PublishedCustomizations,
		Users:                   stats.Users,
	}))
}

// ListUsers lists user profiles
// @Summary List users
// @Description Newest first.
// @Tags Admin
// @Produce json
// @Param role query string false "Role (admin|user)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param orderBy query string false "Order by field (email|full_name|role|created_at)"
// @Param orderDir query string false "Order direction (asc|desc)"
// @Success 200 {object} DataResponseDto[[]ProfileDto]
// @Failure 400
// @Failure 403
// @Failure 500
// @Router /api/admin/users [get]
func ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queryOps, err := ParseQueryOps(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	query := queries.ListUsers{
		PagedQuery:   queryOps.ToPagedQuery(),
		OrderedQuery: queryOps.ToOrderedQuery(),
	}

	if value := r.Form.Get("role"); value != "" {
		role := roles.Role(value)
		if !role.IsAssignable() {
			utils.HandleHttpError(w, fmt.Errorf("unknown role %q: %w", value, utils.ErrHttpBadRequest))
			return
		}
		query.Role = &role
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	users, err := mediator.Send[*queries.ListUsersResponse](ctx, m, query)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	items := utils.MapSlice(users.Items, func(x queries.ListUsersResponseItem) ProfileDto {
		return ProfileDto{
			Id:        x.Id,
			FullName:  x.FullName,
			Email:     x.Email,
			Role:      x.Role,
			CreatedAt: x.CreatedAt,
		}
	})

	writeJson(w, http.StatusOK, NewPagedDataResponseDto(items, queryOps, users.TotalCount))
}

// UpdateUserRole changes the role of a user
// @Summary Update user role
// @Description Admins cannot demote themselves.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body UpdateUserRoleRequestDto true "New role"
// @Success 200 {object} DataResponseDto[UserRoleDto]
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /api/admin/users/{id}/role [put]
func UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	var dto UpdateUserRoleRequestDto
	err = decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	err = utils.ValidateDto(dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.UpdateUserRoleResponse](ctx, m, commands.UpdateUserRole{
		UserId: userId,
		Role:   dto.Role,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(UserRoleDto{
		Id:   response.Id,
		Role: response.Role,
	}))
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Success 200 {object} DataResponseDto[ProfileDto]
// @Failure 401
// @Failure 500
// @Router /api/profile [get]
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	profile, err := mediator.Send[*queries.GetProfileResponse](ctx, m, queries.GetProfile{})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(ProfileDto{
		Id:        profile.Id,
		FullName:  profile.FullName,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	}))
}
