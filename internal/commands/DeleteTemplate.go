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

type DeleteTemplate struct {
	TemplateId uuid.UUID
}

func (a DeleteTemplate) LogRequest() bool {
	return true
}

func (a DeleteTemplate) LogResponse() bool {
	return true
}

func (a DeleteTemplate) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.TemplateManage)
}

func (a DeleteTemplate) GetRequestName() string {
	return "DeleteTemplate"
}

type DeleteTemplateResponse struct {
	Id uuid.UUID
}

// HandleDeleteTemplate removes the template. Fields and customizations
// cascade in the database.
func HandleDeleteTemplate(ctx context.Context, command DeleteTemplate) (*DeleteTemplateResponse, error) {
	scope := middlewares.GetScope(ctx)

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	template, err := templateRepository.Single(ctx, repositories.NewTemplateFilter().Id(command.TemplateId))
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	err = templateRepository.Delete(ctx, template.Id())
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	return &DeleteTemplateResponse{
		Id: template.Id(),
	}, nil
}
