package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/jsonTypes"
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
)

type CustomizationTemplateDto struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ThumbnailUrl *string   `json:"thumbnail_url"`
}

type CustomizationDto struct {
	Id           uuid.UUID                        `json:"id"`
	UserId       uuid.UUID                        `json:"user_id"`
	TemplateId   uuid.UUID                        `json:"template_id"`
	Name         string                           `json:"name"`
	Values       jsonTypes.FieldValues            `json:"values"`
	RenderedHtml *string                          `json:"rendered_html"`
	Status       repositories.CustomizationStatus `json:"status"`
	PublishedUrl *string                          `json:"published_url"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`
	Template     *CustomizationTemplateDto        `json:"template,omitempty"`
}

type CreateCustomizationRequestDto struct {
	TemplateId uuid.UUID             `json:"template_id" validate:"required"`
	Name       string                `json:"name" validate:"max=255"`
	Values     jsonTypes.FieldValues `json:"values"`
}

type UpdateCustomizationRequestDto struct {
	Name         *string                `json:"name" validate:"omitempty,notblank,max=255"`
	Values       *jsonTypes.FieldValues `json:"values"`
	RenderedHtml *string                `json:"rendered_html"`
}

func mapTemplateSummary(t *queries.CustomizationTemplateSummary) *CustomizationTemplateDto {
	return utils.MapPtr(t, func(x queries.CustomizationTemplateSummary) CustomizationTemplateDto {
		return CustomizationTemplateDto{
			Id:           x.Id,
			Name:         x.Name,
			ThumbnailUrl: x.ThumbnailUrl,
		}
	})
}

func mapCustomizationResponse(c commands.CustomizationResponse) CustomizationDto {
	return CustomizationDto{
		Id:           c.Id,
		UserId:       c.UserId,
		TemplateId:   c.TemplateId,
		Name:         c.Name,
		Values:       c.Values,
		RenderedHtml: c.RenderedHtml,
		Status:       c.Status,
		PublishedUrl: c.PublishedUrl,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ListOwnCustomizations lists the caller's customizations
// @Summary List own customizations
// @Description Newest first, each with a summary of its template.
// @Tags Customizations
// @Produce json
// @Param templateId query string false "Template id"
// @Param status query string false "Status (draft|published)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} DataResponseDto[[]CustomizationDto]
// @Failure 400
// @Failure 500
// @Router /api/customizations [get]
func ListOwnCustomizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queryOps, err := ParseQueryOps(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	query := queries.ListOwnCustomizations{
		PagedQuery: queryOps.ToPagedQuery(),
	}

	if value := r.Form.Get("templateId"); value != "" {
		templateId, err := uuid.Parse(value)
		if err != nil {
			utils.HandleHttpError(w, fmt.Errorf("parsing template id: %w", utils.ErrHttpBadRequest))
			return
		}
		query.TemplateId = &templateId
	}

	if value := r.Form.Get("status"); value != "" {
		status := repositories.CustomizationStatus(value)
		if status != repositories.CustomizationStatusDraft && status != repositories.CustomizationStatusPublished {
			utils.HandleHttpError(w, fmt.Errorf("unknown status %q: %w", value, utils.ErrHttpBadRequest))
			return
		}
		query.Status = &status
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	customizations, err := mediator.Send[*queries.ListOwnCustomizationsResponse](ctx, m, query)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	items := utils.MapSlice(customizations.Items, func(x queries.ListOwnCustomizationsResponseItem) CustomizationDto {
		return CustomizationDto{
			Id:           x.Id,
			UserId:       x.UserId,
			TemplateId:   x.TemplateId,
			Name:         x.Name,
			Values:       x.Values,
			RenderedHtml: x.RenderedHtml,
			Status:       x.Status,
			PublishedUrl: x.PublishedUrl,
			CreatedAt:    x.CreatedAt,
			UpdatedAt:    x.UpdatedAt,
			Template:     mapTemplateSummary(x.Template),
		}
	})

	writeJson(w, http.StatusOK, NewPagedDataResponseDto(items, queryOps, customizations.TotalCount))
}

// GetCustomization returns one of the caller's customizations
// @Summary Get customization
// @Tags Customizations
// @Produce json
// @Param id path string true "Customization id"
// @Success 200 {object} DataResponseDto[CustomizationDto]
// @Failure 404
// @Failure 500
// @Router /api/customizations/{id} [get]
func GetCustomization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customizationId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	customization, err := mediator.Send[*queries.GetCustomizationResponse](ctx, m, queries.GetCustomization{
		CustomizationId: customizationId,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(CustomizationDto{
		Id:           customization.Id,
		UserId:       customization.UserId,
		TemplateId:   customization.TemplateId,
		Name:         customization.Name,
		Values:       customization.Values,
		RenderedHtml: customization.RenderedHtml,
		Status:       customization.Status,
		PublishedUrl: customization.PublishedUrl,
		CreatedAt:    customization.CreatedAt,
		UpdatedAt:    customization.UpdatedAt,
		Template:     mapTemplateSummary(customization.Template),
	}))
}

// CreateCustomization starts a draft from an active template
// @Summary Create customization
// @Tags Customizations
// @Accept json
// @Produce json
// @Param request body CreateCustomizationRequestDto true "Customization data"
// @Success 201 {object} DataResponseDto[CustomizationDto]
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/customizations [post]
func CreateCustomization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto CreateCustomizationRequestDto
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

	response, err := mediator.Send[*commands.CreateCustomizationResponse](ctx, m, commands.CreateCustomization{
		TemplateId: dto.TemplateId,
		Name:       dto.Name,
		Values:     dto.Values,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusCreated, NewDataResponseDto(mapCustomizationResponse(response.CustomizationResponse)))
}

// UpdateCustomization updates one of the caller's customizations
// @Summary Update customization
// @Tags Customizations
// @Accept json
// @Produce json
// @Param id path string true "Customization id"
// @Param request body UpdateCustomizationRequestDto true "Changed fields"
// @Success 200 {object} DataResponseDto[CustomizationDto]
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/customizations/{id} [put]
func UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customizationId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	var dto UpdateCustomizationRequestDto
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

	response, err := mediator.Send[*commands.UpdateCustomizationResponse](ctx, m, commands.UpdateCustomization{
		CustomizationId: customizationId,
		Name:            dto.Name,
		Values:          dto.Values,
		RenderedHtml:    dto.RenderedHtml,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(mapCustomizationResponse(response.CustomizationResponse)))
}

// DeleteCustomization deletes one of the caller's customizations
// @Summary Delete customization
// @Tags Customizations
// @Produce json
// @Param id path string true "Customization id"
// @Success 200 {object} DataResponseDto[IdResponseDto]
// @Failure 404
// @Failure 500
// @Router /api/customizations/{id} [delete]
func DeleteCustomization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customizationId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.DeleteCustomizationResponse](ctx, m, commands.DeleteCustomization{
		CustomizationId: customizationId,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(IdResponseDto{Id: response.Id}))
}

// PublishCustomization publishes one of the caller's customizations
// @Summary Publish customization
// @Description Stores the rendered document and mails the public link to the owner.
// @Tags Customizations
// @Produce json
// @Param id path string true "Customization id"
// @Success 200 {object} DataResponseDto[CustomizationDto]
// @Failure 404
// @Failure 500
// @Router /api/customizations/{id}/publish [post]
func PublishCustomization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customizationId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.PublishCustomizationResponse](ctx, m, commands.PublishCustomization{
		CustomizationId: customizationId,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(mapCustomizationResponse(response.CustomizationResponse)))
}
