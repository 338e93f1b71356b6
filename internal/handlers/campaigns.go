package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/queries"
	"Listline/utils"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type CampaignDto struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

type CreateCampaignRequestDto struct {
	Name  string `json:"name" validate:"required,notblank,max=255"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateCampaignRequestDto struct {
	Name  string `json:"name" validate:"required,notblank,max=255"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// ListCampaigns lists campaigns
// @Summary List campaigns
// @Tags Campaigns
// @Produce json
// @Param orderBy query string false "Order by field (name|created_at)"
// @Param orderDir query string false "Order direction (asc|desc)"
// @Success 200 {object} DataResponseDto[[]CampaignDto]
// @Failure 500
// @Router /api/campaigns [get]
func ListCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queryOps, err := ParseQueryOps(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	campaigns, err := mediator.Send[*queries.ListCampaignsResponse](ctx, m, queries.ListCampaigns{
		OrderedQuery: queryOps.ToOrderedQuery(),
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	items := utils.MapSlice(campaigns.Items, func(x queries.ListCampaignsResponseItem) CampaignDto {
		return CampaignDto{
			Id:        x.Id,
			Name:      x.Name,
			Color:     x.Color,
			CreatedAt: x.CreatedAt,
			UpdatedAt: x.UpdatedAt,
		}
	})

	writeJson(w, http.StatusOK, NewDataResponseDto(utils.EmptyIfNil(items)))
}

// CreateCampaign creates a campaign
// @Summary Create campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param request body CreateCampaignRequestDto true "Campaign data"
// @Success 201 {object} DataResponseDto[CampaignDto]
// @Failure 400
// @Failure 403
// @Failure 500
// @Router /api/campaigns [post]
func CreateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto CreateCampaignRequestDto
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

	response, err := mediator.Send[*commands.CreateCampaignResponse](ctx, m, commands.CreateCampaign{
		Name:  dto.Name,
		Color: dto.Color,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusCreated, NewDataResponseDto(CampaignDto{
		Id:    response.Id,
		Name:  response.Name,
		Color: response.Color,
	}))
}

// UpdateCampaign updates a campaign
// @Summary Update campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign id"
// @Param request body UpdateCampaignRequestDto true "Campaign data"
// @Success 200 {object} DataResponseDto[CampaignDto]
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/campaigns/{id} [put]
func UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	var dto UpdateCampaignRequestDto
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

	response, err := mediator.Send[*commands.UpdateCampaignResponse](ctx, m, commands.UpdateCampaign{
		CampaignId: campaignId,
		Name:       dto.Name,
		Color:      dto.Color,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(CampaignDto{
		Id:    response.Id,
		Name:  response.Name,
		Color: response.Color,
	}))
}

// DeleteCampaign deletes a campaign, its templates stay without a campaign
// @Summary Delete campaign
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign id"
// @Success 200 {object} DataResponseDto[IdResponseDto]
// @Failure 404
// @Failure 500
// @Router /api/campaigns/{id} [delete]
func DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignId, err := parseIdVar(r, "id")
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.DeleteCampaignResponse](ctx, m, commands.DeleteCampaign{
		CampaignId: campaignId,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(IdResponseDto{Id: response.Id}))
}
