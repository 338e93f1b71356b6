package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
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

var templateOrderColumns = map[string]string{
	"name":       "name",
	"created_at": "audit_created_at",
	"updated_at": "audit_updated_at",
}

type ListTemplates struct {
	PagedQuery
	OrderedQuery
	IncludeInactive bool
	CampaignId      *uuid.UUID
	SearchText      string
}

func (a ListTemplates) LogRequest() bool {
	return true
}

func (a ListTemplates) LogResponse() bool {
	return false
}

func (a ListTemplates) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.TemplateView)
}

func (a ListTemplates) GetRequestName() string {
	return "ListTemplates"
}

type ListTemplatesResponse struct {
	PagedResponse[ListTemplatesResponseItem]
}

type ListTemplatesResponseItem struct {
	Id           uuid.UUID
	Name         string
	Description  *string
	HtmlContent  string
	ThumbnailUrl *string
	IsActive     bool
	CampaignId   *uuid.UUID
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func HandleListTemplates(ctx context.Context, query ListTemplates) (*ListTemplatesResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	templateFilter := repositories.NewTemplateFilter().
		Pagination(query.Page, query.PageSize)

	canSeeInactive := query.IncludeInactive && currentUser.HasPermission(permissions.TemplateManage).IsSuccess()
	if !canSeeInactive {
		templateFilter = templateFilter.ActiveOnly()
	}

	if query.CampaignId != nil {
		templateFilter = templateFilter.CampaignId(*query.CampaignId)
	}

	if query.SearchText != "" {
		templateFilter = templateFilter.Search(repositories.NewContainsSearchFilter(query.SearchText))
	}

	if column, ok := query.Column(templateOrderColumns); ok {
		templateFilter = templateFilter.Order(column, query.OrderDir)
	}

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	templates, total, err := templateRepository.List(ctx, templateFilter)
	if err != nil {
		return nil, fmt.Errorf("getting templates: %w", err)
	}

	items := utils.MapSlice(templates, func(t *repositories.Template) ListTemplatesResponseItem {
		return ListTemplatesResponseItem{
			Id:           t.Id(),
			Name:         t.Name(),
			Description:  t.Description(),
			HtmlContent:  t.HtmlContent(),
			ThumbnailUrl: t.ThumbnailUrl(),
			IsActive:     t.IsActive(),
			CampaignId:   t.CampaignId(),
			CreatedBy:    t.CreatedBy(),
			CreatedAt:    t.AuditCreatedAt(),
			UpdatedAt:    t.AuditUpdatedAt(),
		}
	})

	return &ListTemplatesResponse{
		PagedResponse: NewPagedResponse(items, total),
	}, nil
}
