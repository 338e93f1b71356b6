package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/jsonTypes"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/queries"
	"Listline/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/gorilla/mux"
)

type SettingDto struct {
	Key       string                 `json:"key"`
	Value     jsonTypes.JsonDocument `json:"value" swaggertype:"object"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty"`
}

type UpsertSettingRequestDto struct {
	Key   string                 `json:"key" validate:"required,settingkey"`
	Value jsonTypes.JsonDocument `json:"value" validate:"required" swaggertype:"object"`
}

// GetSetting returns an application setting
// @Summary Get setting
// @Description Returns {data: null} when the setting does not exist.
// @Tags Settings
// @Produce json
// @Param key query string false "Setting key" default(ai_provider)
// @Success 200 {object} DataResponseDto[SettingDto]
// @Failure 403
// @Failure 500
// @Router /api/settings [get]
func GetSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := r.URL.Query().Get("key")
	if key == "" {
		key = jsonTypes.AiSettingsKey
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	setting, err := mediator.Send[*queries.GetSettingResponse](ctx, m, queries.GetSetting{
		Key: key,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	if setting == nil {
		writeJson(w, http.StatusOK, NewDataResponseDto[*SettingDto](nil))
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(&SettingDto{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: &setting.UpdatedAt,
	}))
}

// UpsertSetting creates or replaces an application setting
// @Summary Upsert setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body UpsertSettingRequestDto true "Setting"
// @Success 200 {object} DataResponseDto[SettingDto]
// @Failure 400
// @Failure 403
// @Failure 500
// @Router /api/settings [post]
func UpsertSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto UpsertSettingRequestDto
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

	response, err := mediator.Send[*commands.UpsertSettingResponse](ctx, m, commands.UpsertSetting{
		Key:   dto.Key,
		Value: dto.Value,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(SettingDto{
		Key:   response.Key,
		Value: response.Value,
	}))
}

// PatchSetting applies a JSON merge patch to an application setting
// @Summary Patch setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body object true "JSON merge patch"
// @Success 200 {object} DataResponseDto[SettingDto]
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /api/settings/{key} [patch]
func PatchSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := mux.Vars(r)["key"]
	err := utils.ValidateDto(struct {
		Key string `validate:"settingkey"`
	}{Key: key})
	if err != nil {
		utils.HandleHttpError(w, fmt.Errorf("setting key %q: %w", key, err))
		return
	}

	var patch jsonTypes.JsonDocument
	err = decodeJson(r, &patch)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.PatchSettingResponse](ctx, m, commands.PatchSetting{
		Key:   key,
		Patch: patch,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, NewDataResponseDto(SettingDto{
		Key:   response.Key,
		Value: response.Value,
	}))
}
