package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type GetCustomization struct {
	CustomizationId uuid.UUID
}

func (a GetCustomization) LogRequest() bool {
	return true
}

func (a GetCustomization) LogResponse() bool {
	return false
}

func (a GetCustomization) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a GetCustomization) GetRequestName() string {
	return "GetCustomization"
}

type GetCustomizationResponse struct {
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

// HandleGetCustomization returns the customization if the current user owns it.
// Users allowed to view any customization may read foreign ones as well.
func HandleGetCustomization(ctx context.Context, query GetCustomization) (*GetCustomizationResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	customizationFilter := repositories.NewCustomizationFilter().Id(query.CustomizationId)
	if !currentUser.HasPermission(permissions.CustomizationViewAny).IsSuccess() {
		customizationFilter = customizationFilter.UserId(currentUser.UserId)
	}

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	customization, err := customizationRepository.Single(ctx, customizationFilter)
	if err != nil {
		return nil, fmt.Errorf("getting customization: %w", err)
	}

	summaries, err := loadTemplateSummaries(ctx, []*repositories.Customization{customization})
	if err != nil {
		return nil, err
	}

	return &GetCustomizationResponse{
		Id:           customization.Id(),
		UserId:       customization.UserId(),
		TemplateId:   customization.TemplateId(),
		Name:         customization.Name(),
		Values:       customization.Values(),
		RenderedHtml: customization.RenderedHtml(),
		Status:       customization.Status(),
		PublishedUrl: customization.PublishedUrl(),
		CreatedAt:    customization.AuditCreatedAt(),
		UpdatedAt:    customization.AuditUpdatedAt(),
		Template:     summaries[customization.TemplateId()],
	}, nil
}
