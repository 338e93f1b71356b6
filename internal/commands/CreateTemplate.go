package commands

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type CreateTemplate struct {
	Name           string
	Description    *string
	HtmlContent    string
	ThumbnailUrl   *string
	IsActive       bool
	CampaignId     *uuid.UUID
	TemplateFields []TemplateFieldInput
}

func (a CreateTemplate) LogRequest() bool {
	return true
}

func (a CreateTemplate) LogResponse() bool {
	return true
}

func (a CreateTemplate) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.TemplateManage)
}

func (a CreateTemplate) GetRequestName() string {
	return "CreateTemplate"
}

type CreateTemplateResponse struct {
	Id uuid.UUID
}

func HandleCreateTemplate(ctx context.Context, command CreateTemplate) (*CreateTemplateResponse, error) {
	if strings.TrimSpace(command.Name) == "" || strings.TrimSpace(command.HtmlContent) == "" {
		return nil, fmt.Errorf("name and html content are required: %w", utils.ErrHttpBadRequest)
	}

	err := validateTemplateFields(command.TemplateFields)
	if err != nil {
		return nil, err
	}

	err = ensureCampaignExists(ctx, command.CampaignId)
	if err != nil {
		return nil, err
	}

	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	template := repositories.NewTemplate(command.Name, command.HtmlContent)
	template.SetDescription(utils.NilIfBlank(command.Description))
	template.SetThumbnailUrl(utils.NilIfBlank(command.ThumbnailUrl))
	template.SetIsActive(command.IsActive)
	template.SetCampaignId(command.CampaignId)
	if currentUser.IsAuthenticated() {
		template.SetCreatedBy(&currentUser.UserId)
	}

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	err = templateRepository.Insert(ctx, template)
	if err != nil {
		return nil, fmt.Errorf("inserting template: %w", err)
	}

	err = replaceTemplateFields(ctx, template.Id(), command.TemplateFields)
	if err != nil {
		return nil, err
	}

	return &CreateTemplateResponse{
		Id: template.Id(),
	}, nil
}
