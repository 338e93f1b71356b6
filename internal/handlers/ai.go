package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/config"
	"Listline/internal/customize"
	"Listline/internal/logging"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/utils"
	"errors"
	"fmt"
	"net/http"

	"github.com/The127/ioc"
)

type AiCustomizeRequestDto struct {
	HtmlContent string            `json:"htmlContent"`
	Fields      []customize.Field `json:"fields"`
	Values      map[string]string `json:"values"`
	UserPrompt  string            `json:"userPrompt"`
}

type AiCustomizeResponseDto struct {
	Html string `json:"html"`
}

type AiEditRequestDto struct {
	HtmlContent string `json:"htmlContent"`
	UserPrompt  string `json:"userPrompt"`
}

type AiEditChangeDto struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

type AiEditResponseDto struct {
	Html    string            `json:"html"`
	Changes []AiEditChangeDto `json:"changes"`
	Message string            `json:"message,omitempty"`
}

func isClientError(err error) bool {
	return errors.Is(err, utils.ErrHttpBadRequest) ||
		errors.Is(err, utils.ErrHttpUnauthorized) ||
		errors.Is(err, utils.ErrHttpForbidden) ||
		errors.Is(err, utils.ErrResourceNotFound) ||
		errors.Is(err, utils.ErrHttpPayloadTooLarge)
}

// handleFailure passes client errors through and reports everything else
// as a 500 with the given message.
func handleFailure(w http.ResponseWriter, err error, message string) {
	if isClientError(err) {
		utils.HandleHttpError(w, err)
		return
	}

	logging.Logger.Errorf("%s: %v", message, err)
	utils.WriteJsonError(w, http.StatusInternalServerError, message)
}

// AiCustomize fills a template with field values through the configured AI provider
// @Summary Customize template with AI
// @Tags AI
// @Accept json
// @Produce json
// @Param request body AiCustomizeRequestDto true "Template, fields and values"
// @Success 200 {object} AiCustomizeResponseDto
// @Failure 400
// @Failure 500
// @Router /api/ai/customize [post]
func AiCustomize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto AiCustomizeRequestDto
	err := decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.AiCustomizeResponse](ctx, m, commands.AiCustomize{
		Request: customize.Request{
			HtmlContent: dto.HtmlContent,
			Fields:      dto.Fields,
			Values:      dto.Values,
			UserPrompt:  dto.UserPrompt,
		},
	})
	if err != nil {
		handleFailure(w, err, "Failed to customize template")
		return
	}

	writeJson(w, http.StatusOK, AiCustomizeResponseDto{
		Html: response.Html,
	})
}

// AiEdit applies a natural language edit to html through AI tool calls
// @Summary Edit html with AI
// @Tags AI
// @Accept json
// @Produce json
// @Param request body AiEditRequestDto true "Html and instruction"
// @Success 200 {object} AiEditResponseDto
// @Failure 400
// @Failure 500
// @Router /api/ai/edit [post]
func AiEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto AiEditRequestDto
	err := decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.AiEditResponse](ctx, m, commands.AiEdit{
		HtmlContent: dto.HtmlContent,
		UserPrompt:  dto.UserPrompt,
	})
	if err != nil {
		handleFailure(w, err, fmt.Sprintf("Failed to edit: %s", errorMessage(err)))
		return
	}

	writeJson(w, http.StatusOK, AiEditResponseDto{
		Html: response.Html,
		Changes: utils.EmptyIfNil(utils.MapSlice(response.Changes, func(x commands.AiEditChange) AiEditChangeDto {
			return AiEditChangeDto{
				Tool:   x.Tool,
				Params: x.Params,
			}
		})),
		Message: response.Message,
	})
}

// errorMessage hides internal details in production.
func errorMessage(err error) string {
	if errors.Is(err, utils.ErrUpstream) {
		return "upstream service failed"
	}
	if config.IsProduction() {
		return "internal error"
	}
	return err.Error()
}
