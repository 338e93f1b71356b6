package queries

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

type GetAdminStats struct{}

func (a GetAdminStats) LogRequest() bool {
	return true
}

func (a GetAdminStats) LogResponse() bool {
	return true
}

func (a GetAdminStats) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.DashboardView)
}

func (a GetAdminStats) GetRequestName() string {
	return "GetAdminStats"
}

type GetAdminStatsResponse struct {
	Templates               int
	ActiveTemplates         int
	Customizations          int
	PublishedCustomizations int
	Users                   int
}

func HandleGetAdminStats(ctx context.Context, _ GetAdminStats) (*GetAdminStatsResponse, error) {
	scope := middlewares.GetScope(ctx)
	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)

	// a single row is enough, the total comes from count(*) over()
	_, templates, err := templateRepository.List(ctx, repositories.NewTemplateFilter().Pagination(1, 1))
	if err != nil {
		return nil, fmt.Errorf("counting templates: %w", err)
	}

	_, activeTemplates, err := templateRepository.List(ctx, repositories.NewTemplateFilter().ActiveOnly().Pagination(1, 1))
	if err != nil {
		return nil, fmt.Errorf("counting active templates: %w", err)
	}

	_, customizations, err := customizationRepository.List(ctx, repositories.NewCustomizationFilter().Pagination(1, 1))
	if err != nil {
		return nil, fmt.Errorf("counting customizations: %w", err)
	}

	publishedFilter := repositories.NewCustomizationFilter().
		Status(repositories.CustomizationStatusPublished).
		Pagination(1, 1)
	_, publishedCustomizations, err := customizationRepository.List(ctx, publishedFilter)
	if err != nil {
		return nil, fmt.Errorf("counting published customizations: %w", err)
	}

	_, users, err := profileRepository.List(ctx, repositories.NewProfileFilter().Pagination(1, 1))
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	return &GetAdminStatsResponse{
		Templates:               templates,
		ActiveTemplates:         activeTemplates,
		Customizations:          customizations,
		PublishedCustomizations: publishedCustomizations,
		Users:                   users,
	}, nil
}
