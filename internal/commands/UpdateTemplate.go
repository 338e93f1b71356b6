package commands

import (
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

type UpdateTemplate struct {
	TemplateId   uuid.UUID
	Name         string
	Description  *string
	HtmlContent  string
	ThumbnailUrl *string
	IsActive     bool
	CampaignId   *uuid.UUID

	// TemplateFields replaces the field set when not nil.
	TemplateFields *[]TemplateFieldInput
}

func (a UpdateTemplate) LogRequest() bool {
	return true
}

func (a UpdateTemplate) LogResponse() bool {
	return true
}

func (a UpdateTemplate) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.TemplateManage)
}

func (a UpdateTemplate) GetRequestName() string {
	return "UpdateTemplate"
}

type UpdateTemplateResponse struct {
	Id uuid.UUID
}

func HandleUpdateTemplate(ctx context.Context, command UpdateTemplate) (*UpdateTemplateResponse, error) {
	if strings.TrimSpace(command.Name) == "" || strings.TrimSpace(command.HtmlContent) == "" {
		return nil, fmt.Errorf("name and html content are required: %w", utils.ErrHttpBadRequest)
	}

	if command.TemplateFields != nil {
		err := validateTemplateFields(*command.TemplateFields)
		if err != nil {
			return nil, err
		}
	}

	scope := middlewares.GetScope(ctx)

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	template, err := templateRepository.Single(ctx, repositories.NewTemplateFilter().Id(command.TemplateId))
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	err = ensureCampaignExists(ctx, command.CampaignId)
	if err != nil {
		return nil, err
	}

	template.SetName(command.Name)
	template.SetDescription(utils.NilIfBlank(command.Description))
	template.SetHtmlContent(command.HtmlContent)
	template.SetThumbnailUrl(utils.NilIfBlank(command.ThumbnailUrl))
	template.SetIsActive(command.IsActive)
	template.SetCampaignId(command.CampaignId)

	err = templateRepository.Update(ctx, template)
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	if command.TemplateFields != nil {
		err = replaceTemplateFields(ctx, template.Id(), *command.TemplateFields)
		if err != nil {
			return nil, err
		}
	}

	return &UpdateTemplateResponse{
		Id: template.Id(),
	}, nil
}
