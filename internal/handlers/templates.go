package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/queries"
	"Listline/internal/repositories"
	"Listline/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TemplateFieldDto struct {
	Id           uuid.UUID                      `json:"id"`
	FieldKey     string                         `json:"field_key"`
	Label        string                         `json:"label"`
	FieldType    repositories.TemplateFieldType `json:"field_type"`
	DefaultValue *string                        `json:"default_value"`
	Placeholder  *string                        `json:"placeholder"`
	HelpText     *string                        `json:"help_text"`
	IsRequired   bool                           `json:"is_required"`
	SortOrder    int                            `json:"sort_order"`
}

type TemplateDto struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	HtmlContent  string     `json:"html_content"`
	ThumbnailUrl *string    `json:"thumbnail_url"`
	IsActive     bool       `json:"is_active"`
	CampaignId   *uuid.UUID `json:"campaign_id"`
	CreatedBy    *uuid.UUID `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TemplateDetailDto struct {
	TemplateDto
	TemplateFields []TemplateFieldDto `json:"template_fields"`
}

type TemplateFieldRequestDto struct {
	FieldKey     string                         `json:"field_key" validate:"required,notblank,max=100"`
	Label        string                         `json:"label" validate:"required,notblank,max=255"`
	FieldType    repositories.TemplateFieldType `json:"field_type" validate:"required"`
	DefaultValue *string                        `json:"default_value"`
	Placeholder  *string                        `json:"placeholder"`
	HelpText     *string                        `json:"help_text"`
	IsRequired   bool                           `json:"is_required"`
	SortOrder    *int                           `json:"sort_order"`
}

type TemplateRequestDto struct {
	Name           string                     `json:"name" validate:"required,notblank,max=255"`
	Description    *string                    `json:"description"`
	HtmlContent    string                     `json:"html_content" validate:"required,notblank"`
	ThumbnailUrl   *string                    `json:"thumbnail_url"`
	IsActive       *bool                      `json:"is_active"`
	CampaignId     *uuid.UUID                 `json:"campaign_id"`
	TemplateFields *[]TemplateFieldRequestDto `json:"template_fields" validate:"omitempty,dive"`
}

func (d TemplateRequestDto) isActive() bool {
	if d.IsActive == nil {
		return true
	}
	return *d.IsActive
}

func (d TemplateRequestDto) fieldInputs() *[]commands.TemplateFieldInput {
	if d.TemplateFields == nil {
		return nil
	}

	inputs := utils.MapSlice(*d.TemplateFields, func(x TemplateFieldRequestDto) commands.TemplateFieldInput {
		return commands.TemplateFieldInput{
			FieldKey:     x.FieldKey,
			Label:        x.Label,
			FieldType:    x.FieldType,
			DefaultValue: x.DefaultValue,
			Placeholder:  x.Placeholder,
			HelpText:     x.HelpText,
			IsRequired:   x.IsRequired,
			SortOrder:    x.SortOrder,
		}
	})
	return &inputs
}

func parseIdVar(r *http.Request, name string) (uuid.UUID, error) {
	value := mux.Vars(r)[name]
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing %s %q: %w", name, value, utils.ErrHttpBadRequest)
	}
	return id, nil
}

// ListTemplates lists templates
// @Summary List templates
// @Description Active templates, newest first. Admins may include inactive ones.
// @Tags Templates
// @Produce json
// @Param includeInactive query bool false "Include inactive templates (admin only)"
// @Param campaignId query string false "Campaign id"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param orderBy query string false "Order by field (name|created_at|updated_at)"
// @Param orderDir query string false "Order direction (asc|desc)"
// @Success 200 {object} DataResponseDto[[]TemplateDto]
// @Failure 400
// @Failure 500
// @Router /api/templates [get]
func ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queryOps, err := ParseQueryOps(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	var campaignId *uuid.UUID
	if value := r.Form.Get("campaignId"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			utils.HandleHttpError(w, fmt.Errorf("parsing campaign id: %w", utils.ErrHttpBadRequest))
			return
		}
		campaignId = &id
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	templates, err := mediator.Send[*queries.ListTemplatesResponse](ctx, m, queries.ListTemplates{
		PagedQuery:      queryOps.ToPagedQuery(),
		OrderedQuery:    queryOps.ToOrderedQuery(),
		IncludeInactive: r.Form.Get("includeInactive") == "true",
		CampaignId:      campaignId,
		SearchText:      queryOps.Search,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	items := utils.MapSlice(templates.Items, func(x queries.ListTemplatesResponseItem) TemplateDto {
		return TemplateDto{
			Id:           x.Id,
			Name:         x.Name,
			Description:  x.Description,
			HtmlContent:  x.HtmlContent,
			ThumbnailUrl: x.ThumbnailUrl,
			IsActive:     x.IsActive,
			CampaignId:   x.CampaignId,
			CreatedBy:    x.CreatedBy,
			CreatedAt:    x.CreatedAt,
			UpdatedAt:    x.UpdatedAt,
		}
	})

	writeJson(w, http.StatusOK, NewPagedDataResponseDto(items, queryOps, templates.TotalCount))
}

// GetTemplate returns one template with its fields
// @Summary Get template
// @Tags Templates
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} DataResponseDto[TemplateDetailDto]
// @Failure 404
// @Failure 500
// @Router /api/templates/{id} [get]
func GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	template, err := getTemplateDto(r, templateId)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(template))
}

func getTemplateDto(r *http.Request, templateId uuid.UUID) (TemplateDetailDto, error) {
	ctx := r.Context()
	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	template, err := mediator.Send[*queries.GetTemplateResponse](ctx, m, queries.GetTemplate{
		TemplateId: templateId,
	})
	if err != nil {
		return TemplateDetailDto{}, err
	}

	return TemplateDetailDto{
		TemplateDto: TemplateDto{
			Id:           template.Id,
			Name:         template.Name,
			Description:  template.Description,
			HtmlContent:  template.HtmlContent,
			ThumbnailUrl: template.ThumbnailUrl,
			IsActive:     template.IsActive,
			CampaignId:   template.CampaignId,
			CreatedBy:    template.CreatedBy,
			CreatedAt:    template.CreatedAt,
			UpdatedAt:    template.UpdatedAt,
		},
		TemplateFields: utils.EmptyIfNil(utils.MapSlice(template.Fields, func(x queries.GetTemplateResponseField) TemplateFieldDto {
			return TemplateFieldDto{
				Id:           x.Id,
				FieldKey:     x.FieldKey,
				Label:        x.Label,
				FieldType:    x.FieldType,
				DefaultValue: x.DefaultValue,
				Placeholder:  x.Placeholder,
				HelpText:     x.HelpText,
				IsRequired:   x.IsRequired,
				SortOrder:    x.SortOrder,
			}
		})),
	}, nil
}

// CreateTemplate creates a template
// @Summary Create template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body TemplateRequestDto true "Template data"
// @Success 201 {object} DataResponseDto[TemplateDetailDto]
// @Failure 400
// @Failure 403
// @Failure 500
// @Router /api/templates [post]
func CreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto TemplateRequestDto
	err := decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	err = utils.ValidateDto(dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	command := commands.CreateTemplate{
		Name:         dto.Name,
		Description:  dto.Description,
		HtmlContent:  dto.HtmlContent,
		ThumbnailUrl: dto.ThumbnailUrl,
		IsActive:     dto.isActive(),
		CampaignId:   dto.CampaignId,
	}
	if fields := dto.fieldInputs(); fields != nil {
		command.TemplateFields = *fields
	}

	response, err := mediator.Send[*commands.CreateTemplateResponse](ctx, m, command)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	template, err := getTemplateDto(r, response.Id)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusCreated, NewDataResponseDto(template))
}

// UpdateTemplate updates a template
// @Summary Update template
// @Description Replaces the field set when template_fields is present.
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Param request body TemplateRequestDto true "Template data"
// @Success 200 {object} DataResponseDto[TemplateDetailDto]
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/templates/{id} [put]
func UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templateId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	var dto TemplateRequestDto
	err = decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	err = utils.ValidateDto(dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	_, err = mediator.Send[*commands.UpdateTemplateResponse](ctx, m, commands.UpdateTemplate{
		TemplateId:     templateId,
		Name:           dto.Name,
		Description:    dto.Description,
		HtmlContent:    dto.HtmlContent,
		ThumbnailUrl:   dto.ThumbnailUrl,
		IsActive:       dto.isActive(),
		CampaignId:     dto.CampaignId,
		TemplateFields: dto.fieldInputs(),
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	template, err := getTemplateDto(r, templateId)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(template))
}

type IdResponseDto struct {
	Id uuid.UUID `json:"id"`
}

// DeleteTemplate deletes a template with its fields and customizations
// @Summary Delete template
// @Tags Templates
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} DataResponseDto[IdResponseDto]
// @Failure 404
// @Failure 500
// @Router /api/templates/{id} [delete]
func DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templateId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.DeleteTemplateResponse](ctx, m, commands.DeleteTemplate{
		TemplateId: templateId,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(IdResponseDto{Id: response.Id}))
}
