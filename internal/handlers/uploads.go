package handlers

import (
	"Listline/internal/commands"
	"Listline/internal/logging"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/utils"
	"errors"
	"fmt"
	"net/http"

	"github.com/The127/ioc"
)

// multipart overhead allowed on top of the image itself
const uploadFormOverhead = 1 << 20

// UploadImage stores an image and returns its public url
// @Summary Upload image
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder" default(/_personalization)
// @Success 200 {object} UrlResponseDto
// @Failure 400
// @Failure 413
// @Failure 500
// @Router /api/upload [post]
func UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, commands.MaxImageSize+uploadFormOverhead)
	err := r.ParseMultipartForm(commands.MaxImageSize + uploadFormOverhead)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			utils.HandleHttpError(w, commands.ErrImageTooLarge)
			return
		}
		utils.HandleHttpError(w, fmt.Errorf("parsing multipart form: %s: %w", err.Error(), utils.ErrHttpBadRequest))
		return
	}
	defer func() {
		err := r.MultipartForm.RemoveAll()
		if err != nil {
			logging.Logger.Warnf("removing multipart files: %v", err)
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.HandleHttpError(w, fmt.Errorf("reading file part: %w", utils.ErrHttpBadRequest))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	response, err := mediator.Send[*commands.UploadImageResponse](ctx, m, commands.UploadImage{
		Folder:      r.FormValue("folder"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	writeJson(w, http.StatusOK, UrlResponseDto{
		Url: response.Url,
	})
}
