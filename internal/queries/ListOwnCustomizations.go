package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type ListOwnCustomizations struct {
	PagedQuery
	TemplateId *uuid.UUID
	Status     *repositories.CustomizationStatus
}

func (a ListOwnCustomizations) LogRequest() bool {
	return true
}

func (a ListOwnCustomizations) LogResponse() bool {
	return false
}

func (a ListOwnCustomizations) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a ListOwnCustomizations) GetRequestName() string {
	return "ListOwnCustomizations"
}

type ListOwnCustomizationsResponse struct {
	PagedResponse[ListOwnCustomizationsResponseItem]
}

type ListOwnCustomizationsResponseItem struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	TemplateId   uuid.UUID
	Name         string
	Values       jsonTypes.FieldValues
	RenderedHtml *string
	Status       repositories.CustomizationStatus
	PublishedUrl *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Template     *CustomizationTemplateSummary
}

type CustomizationTemplateSummary struct {
	Id           uuid.UUID
	Name         string
	ThumbnailUrl *string
}

func HandleListOwnCustomizations(ctx context.Context, query ListOwnCustomizations) (*ListOwnCustomizationsResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	customizationFilter := repositories.NewCustomizationFilter().
		UserId(currentUser.UserId).
		Pagination(query.Page, query.PageSize)
	if query.TemplateId != nil {
		customizationFilter = customizationFilter.TemplateId(*query.TemplateId)
	}
	if query.Status != nil {
		customizationFilter = customizationFilter.Status(*query.Status)
	}

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	customizations, total, err := customizationRepository.List(ctx, customizationFilter)
	if err != nil {
		return nil, fmt.Errorf("getting customizations: %w", err)
	}

	summaries, err := loadTemplateSummaries(ctx, customizations)
	if err != nil {
		return nil, err
	}

	items := utils.MapSlice(customizations, func(c *repositories.Customization) ListOwnCustomizationsResponseItem {
		return ListOwnCustomizationsResponseItem{
			Id:           c.Id(),
			UserId:       c.UserId(),
			TemplateId:   c.TemplateId(),
			Name:         c.Name(),
			Values:       c.Values(),
			RenderedHtml: c.RenderedHtml(),
			Status:       c.Status(),
			PublishedUrl: c.PublishedUrl(),
			CreatedAt:    c.AuditCreatedAt(),
			UpdatedAt:    c.AuditUpdatedAt(),
			Template:     summaries[c.TemplateId()],
		}
	})

	return &ListOwnCustomizationsResponse{
		PagedResponse: NewPagedResponse(items, total),
	}, nil
}

func loadTemplateSummaries(ctx context.Context, customizations []*repositories.Customization) (map[uuid.UUID]*CustomizationTemplateSummary, error) {
	summaries := make(map[uuid.UUID]*CustomizationTemplateSummary)
	if len(customizations) == 0 {
		return summaries, nil
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(customizations))
	for _, c := range customizations {
		if _, ok := seen[c.TemplateId()]; ok {
			continue
		}
		seen[c.TemplateId()] = struct{}{}
		ids = append(ids, c.TemplateId())
	}

	scope := middlewares.GetScope(ctx)
	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	templates, _, err := templateRepository.List(ctx, repositories.NewTemplateFilter().Ids(ids))
	if err != nil {
		return nil, fmt.Errorf("getting templates: %w", err)
	}

	for _, t := range templates {
		summaries[t.Id()] = &CustomizationTemplateSummary{
			Id:           t.Id(),
			Name:         t.Name(),
			ThumbnailUrl: t.ThumbnailUrl(),
		}
	}

	return summaries, nil
}
