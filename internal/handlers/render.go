package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/services/rendering"
	"Listline/utils"
	"fmt"
	"net/http"
	"strconv"

	"github.com/The127/ioc"
)

type RenderDocumentRequestDto struct {
	Html     string `json:"html"`
	Filename string `json:"filename"`
}

type RenderThumbnailRequestDto struct {
	Html string `json:"html"`
	Name string `json:"name"`
}

type UrlResponseDto struct {
	Url string `json:"url"`
}

func renderDocument(w http.ResponseWriter, r *http.Request, kind rendering.Kind, failureMessage string) {
	ctx := r.Context()

	var dto RenderDocumentRequestDto
	err := decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.RenderDocumentResponse](ctx, m, commands.RenderDocument{
		Kind:     kind,
		Html:     dto.Html,
		Filename: dto.Filename,
	})
	if err != nil {
		handleFailure(w, err, failureMessage)
		return
	}

	w.Header().Set("Content-Type", response.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, response.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(response.Content)))
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(response.Content)
	if err != nil {
		utils.HandleHttpError(w, err)
	}
}

// GeneratePdf renders html as a letter sized pdf
// @Summary Generate pdf
// @Tags Rendering
// @Accept json
// @Produce application/pdf
// @Param request body RenderDocumentRequestDto true "Html and file name"
// @Success 200 {file} binary
// @Failure 400
// @Failure 500
// @Router /api/pdf/generate [post]
func GeneratePdf(w http.ResponseWriter, r *http.Request) {
	renderDocument(w, r, rendering.KindPdf, "Failed to generate PDF")
}

// GenerateScreenshot renders html as a full page png
// @Summary Generate screenshot
// @Tags Rendering
// @Accept json
// @Produce image/png
// @Param request body RenderDocumentRequestDto true "Html and file name"
// @Success 200 {file} binary
// @Failure 400
// @Failure 500
// @Router /api/screenshot/generate [post]
func GenerateScreenshot(w http.ResponseWriter, r *http.Request) {
	renderDocument(w, r, rendering.KindScreenshot, "Failed to generate screenshot")
}

// GenerateThumbnail renders and stores a small preview image
// @Summary Generate thumbnail
// @Tags Rendering
// @Accept json
// @Produce json
// @Param request body RenderThumbnailRequestDto true "Html and name"
// @Success 200 {object} UrlResponseDto
// @Failure 400
// @Failure 500
// @Router /api/thumbnail/generate [post]
func GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto RenderThumbnailRequestDto
	err := decodeJson(r, &dto)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.RenderThumbnailResponse](ctx, m, commands.RenderThumbnail{
		Html: dto.Html,
		Name: dto.Name,
	})
	if err != nil {
		handleFailure(w, err, "Failed to generate thumbnail")
		return
	}

	writeJson(w, http.StatusOK, UrlResponseDto{
		Url: response.Url,
	})
}
