package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/fields"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type UpdateCustomization struct {
	CustomizationId uuid.UUID
	Name            *string
	Values          *jsonTypes.FieldValues
	RenderedHtml    *string
}

func (a UpdateCustomization) LogRequest() bool {
	return true
}

func (a UpdateCustomization) LogResponse() bool {
	return false
}

func (a UpdateCustomization) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a UpdateCustomization) GetRequestName() string {
	return "UpdateCustomization"
}

type UpdateCustomizationResponse struct {
	CustomizationResponse
}

func HandleUpdateCustomization(ctx context.Context, command UpdateCustomization) (*UpdateCustomizationResponse, error) {
	customization, err := getOwnCustomization(ctx, command.CustomizationId)
	if err != nil {
		return nil, err
	}

	if command.Name != nil && strings.TrimSpace(*command.Name) != "" {
		customization.SetName(strings.TrimSpace(*command.Name))
	}

	if command.Values != nil {
		templateFields, err := getTemplateFields(ctx, customization.TemplateId())
		if err != nil {
			return nil, err
		}

		err = fields.ValidateValues(templateFields, *command.Values)
		if err != nil {
			return nil, err
		}

		customization.SetValues(*command.Values)
	}

	if command.RenderedHtml != nil {
		customization.SetRenderedHtml(command.RenderedHtml)
	}

	if !customization.HasChanges() {
		return &UpdateCustomizationResponse{
			CustomizationResponse: newCustomizationResponse(customization),
		}, nil
	}

	scope := middlewares.GetScope(ctx)
	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	err = customizationRepository.Update(ctx, customization)
	if err != nil {
		return nil, fmt.Errorf("updating customization: %w", err)
	}

	return &UpdateCustomizationResponse{
		CustomizationResponse: newCustomizationResponse(customization),
	}, nil
}
