package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type DeleteCustomization struct {
	CustomizationId uuid.UUID
}

func (a DeleteCustomization) LogRequest() bool {
	return true
}

func (a DeleteCustomization) LogResponse() bool {
	return true
}

func (a DeleteCustomization) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a DeleteCustomization) GetRequestName() string {
	return "DeleteCustomization"
}

type DeleteCustomizationResponse struct {
	Id uuid.UUID
}

func HandleDeleteCustomization(ctx context.Context, command DeleteCustomization) (*DeleteCustomizationResponse, error) {
	customization, err := getOwnCustomization(ctx, command.CustomizationId)
	if err != nil {
		return nil, err
	}

	scope := middlewares.GetScope(ctx)
	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	err = customizationRepository.Delete(ctx, customization.Id())
	if err != nil {
		return nil, fmt.Errorf("deleting customization: %w", err)
	}

	return &DeleteCustomizationResponse{
		Id: customization.Id(),
	}, nil
}
