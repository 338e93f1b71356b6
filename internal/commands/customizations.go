package commands

import (
	"Listline/internal/authentication"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type CustomizationResponse struct {
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
}

func newCustomizationResponse(c *repositories.Customization) CustomizationResponse {
	return CustomizationResponse{
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
	}
}

// getOwnCustomization loads a customization of the current user. Foreign
// customizations are reported as not found.
func getOwnCustomization(ctx context.Context, customizationId uuid.UUID) (*repositories.Customization, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	customizationFilter := repositories.NewCustomizationFilter().
		Id(customizationId).
		UserId(currentUser.UserId)
	customization, err := customizationRepository.Single(ctx, customizationFilter)
	if err != nil {
		return nil, fmt.Errorf("getting customization: %w", err)
	}

	return customization, nil
}

func getTemplateFields(ctx context.Context, templateId uuid.UUID) ([]*repositories.TemplateField, error) {
	scope := middlewares.GetScope(ctx)
	templateFieldRepository := ioc.GetDependency[repositories.TemplateFieldRepository](scope)
	templateFields, _, err := templateFieldRepository.List(ctx, repositories.NewTemplateFieldFilter().TemplateId(templateId))
	if err != nil {
		return nil, fmt.Errorf("getting template fields: %w", err)
	}

	return templateFields, nil
}
