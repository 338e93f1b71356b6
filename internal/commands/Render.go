package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/fields"
	"Listline/internal/middlewares"
	"Listline/internal/services/rendering"
	"Listline/internal/services/storage"
	"Listline/utils"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type RenderDocument struct {
	Kind     rendering.Kind
	Html     string
	Filename string
}

func (a RenderDocument) LogRequest() bool {
	return true
}

func (a RenderDocument) LogResponse() bool {
	return false
}

func (a RenderDocument) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.RenderUse)
}

func (a RenderDocument) GetRequestName() string {
	return "RenderDocument"
}

type RenderDocumentResponse struct {
	Content     []byte
	ContentType string
	Filename    string
}

// HandleRenderDocument renders a pdf or a full page screenshot of the html.
func HandleRenderDocument(ctx context.Context, command RenderDocument) (*RenderDocumentResponse, error) {
	if strings.TrimSpace(command.Html) == "" {
		return nil, utils.NewPublicError(utils.ErrHttpBadRequest, "HTML content is required")
	}

	scope := middlewares.GetScope(ctx)
	renderer := ioc.GetDependency[rendering.Renderer](scope)

	switch command.Kind {
	case rendering.KindPdf:
		content, err := renderer.Pdf(ctx, command.Html)
		if err != nil {
			return nil, fmt.Errorf("rendering pdf: %w", err)
		}
		return &RenderDocumentResponse{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    attachmentName(command.Filename, "document") + ".pdf",
		}, nil

	case rendering.KindScreenshot:
		content, err := renderer.Screenshot(ctx, command.Html)
		if err != nil {
			return nil, fmt.Errorf("rendering screenshot: %w", err)
		}
		return &RenderDocumentResponse{
			Content:     content,
			ContentType: "image/png",
			Filename:    attachmentName(command.Filename, "preview") + ".png",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported document kind %q: %w", command.Kind, utils.ErrHttpBadRequest)
	}
}

// attachmentName drops characters that would break a quoted header value.
func attachmentName(filename string, fallback string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, filename)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

type RenderThumbnail struct {
	Html string
	Name string
}

func (a RenderThumbnail) LogRequest() bool {
	return true
}

func (a RenderThumbnail) LogResponse() bool {
	return true
}

func (a RenderThumbnail) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.RenderUse)
}

func (a RenderThumbnail) GetRequestName() string {
	return "RenderThumbnail"
}

type RenderThumbnailResponse struct {
	Url string
}

func HandleRenderThumbnail(ctx context.Context, command RenderThumbnail) (*RenderThumbnailResponse, error) {
	if strings.TrimSpace(command.Html) == "" {
		return nil, utils.NewPublicError(utils.ErrHttpBadRequest, "HTML content is required")
	}

	scope := middlewares.GetScope(ctx)
	renderer := ioc.GetDependency[rendering.Renderer](scope)
	content, err := renderer.Thumbnail(ctx, command.Html)
	if err != nil {
		return nil, fmt.Errorf("rendering thumbnail: %w", err)
	}

	store := ioc.GetDependency[storage.Store](scope)
	key := fmt.Sprintf("thumbnails/%s-%s.png", fields.SanitizeFilename(command.Name), uuid.New())
	url, err := store.Put(ctx, key, "image/png", bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("storing thumbnail: %w", err)
	}

	return &RenderThumbnailResponse{
		Url: url,
	}, nil
}
