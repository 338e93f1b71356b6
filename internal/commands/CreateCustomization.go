package commands

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/fields"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type CreateCustomization struct {
	TemplateId uuid.UUID
	Name       string
	Values     jsonTypes.FieldValues
}

func (a CreateCustomization) LogRequest() bool {
	return true
}

func (a CreateCustomization) LogResponse() bool {
	return true
}

func (a CreateCustomization) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a CreateCustomization) GetRequestName() string {
	return "CreateCustomization"
}

type CreateCustomizationResponse struct {
	CustomizationResponse
}

func HandleCreateCustomization(ctx context.Context, command CreateCustomization) (*CreateCustomizationResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	template, err := templateRepository.Single(ctx, repositories.NewTemplateFilter().Id(command.TemplateId))
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	if !template.IsActive() {
		return nil, utils.ErrTemplateNotAvailable
	}

	name := strings.TrimSpace(command.Name)
	if name == "" {
		name = fmt.Sprintf("My %s", template.Name())
	}

	values := command.Values
	if values == nil {
		values = jsonTypes.FieldValues{}
	}

	templateFields, err := getTemplateFields(ctx, template.Id())
	if err != nil {
		return nil, err
	}

	err = fields.ValidateValues(templateFields, values)
	if err != nil {
		return nil, err
	}

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	customization := repositories.NewCustomization(currentUser.UserId, template.Id(), name, values)
	err = customizationRepository.Insert(ctx, customization)
	if err != nil {
		return nil, fmt.Errorf("inserting customization: %w", err)
	}

	return &CreateCustomizationResponse{
		CustomizationResponse: newCustomizationResponse(customization),
	}, nil
}
