package queries

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type GetTemplate struct {
	TemplateId uuid.UUID
}

func (a GetTemplate) LogRequest() bool {
	return true
}

func (a GetTemplate) LogResponse() bool {
	return false
}

func (a GetTemplate) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.TemplateView)
}

func (a GetTemplate) GetRequestName() string {
	return "GetTemplate"
}

type GetTemplateResponse struct {
	Id           uuid.UUID
	Name         string
	Description  *string
	HtmlContent  string
	ThumbnailUrl *string
	IsActive     bool
	CampaignId   *uuid.UUID
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Fields       []GetTemplateResponseField
}

type GetTemplateResponseField struct {
	Id           uuid.UUID
	FieldKey     string
	Label        string
	FieldType    repositories.TemplateFieldType
	DefaultValue *string
	Placeholder  *string
	HelpText     *string
	IsRequired   bool
	SortOrder    int
}

func HandleGetTemplate(ctx context.Context, query GetTemplate) (*GetTemplateResponse, error) {
	scope := middlewares.GetScope(ctx)
	currentUser := authentication.GetCurrentUser(ctx)

	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	templateFilter := repositories.NewTemplateFilter().Id(query.TemplateId)
	template, err := templateRepository.Single(ctx, templateFilter)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	if !template.IsActive() && !currentUser.HasPermission(permissions.TemplateManage).IsSuccess() {
		return nil, fmt.Errorf("template %s is inactive: %w", template.Id(), utils.ErrTemplateNotFound)
	}

	templateFieldRepository := ioc.GetDependency[repositories.TemplateFieldRepository](scope)
	templateFieldFilter := repositories.NewTemplateFieldFilter().TemplateId(template.Id())
	fields, _, err := templateFieldRepository.List(ctx, templateFieldFilter)
	if err != nil {
		return nil, fmt.Errorf("getting template fields: %w", err)
	}
	slices.SortStableFunc(fields, func(a, b *repositories.TemplateField) int {
		return cmp.Compare(a.SortOrder(), b.SortOrder())
	})

	return &GetTemplateResponse{
		Id:           template.Id(),
		Name:         template.Name(),
		Description:  template.Description(),
		HtmlContent:  template.HtmlContent(),
		ThumbnailUrl: template.ThumbnailUrl(),
		IsActive:     template.IsActive(),
		CampaignId:   template.CampaignId(),
		CreatedBy:    template.CreatedBy(),
		CreatedAt:    template.AuditCreatedAt(),
		UpdatedAt:    template.AuditUpdatedAt(),
		Fields: utils.MapSlice(fields, func(f *repositories.TemplateField) GetTemplateResponseField {
			return GetTemplateResponseField{
				Id:           f.Id(),
				FieldKey:     f.FieldKey(),
				Label:        f.Label(),
				FieldType:    f.FieldType(),
				DefaultValue: f.DefaultValue(),
				Placeholder:  f.Placeholder(),
				HelpText:     f.HelpText(),
				IsRequired:   f.IsRequired(),
				SortOrder:    f.SortOrder(),
			}
		}),
	}, nil
}
