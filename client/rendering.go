package client

import (
	"Listline/internal/handlers"
	"Listline/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// Document is a rendered file as sent by the server.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

type RenderingClient interface {
	Pdf(ctx context.Context, dto handlers.RenderDocumentRequestDto) (Document, error)
	Screenshot(ctx context.Context, dto handlers.RenderDocumentRequestDto) (Document, error)
	Thumbnail(ctx context.Context, dto handlers.RenderThumbnailRequestDto) (string, error)
}

func NewRenderingClient(transport *Transport) RenderingClient {
	return &rendering{
		transport: transport,
	}
}

type rendering struct {
	transport *Transport
}

func (r *rendering) Pdf(ctx context.Context, dto handlers.RenderDocumentRequestDto) (Document, error) {
	return r.document(ctx, "/pdf/generate", dto)
}

func (r *rendering) Screenshot(ctx context.Context, dto handlers.RenderDocumentRequestDto) (Document, error) {
	return r.document(ctx, "/screenshot/generate", dto)
}

func (r *rendering) document(ctx context.Context, endpoint string, dto handlers.RenderDocumentRequestDto) (Document, error) {
	jsonBytes, err := json.Marshal(dto)
	if err != nil {
		return Document{}, fmt.Errorf("marshaling dto: %w", err)
	}

	request, err := r.transport.NewRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBytes))
	if err != nil {
		return Document{}, fmt.Errorf("creating request: %w", err)
	}

	response, err := r.transport.Do(request)
	if err != nil {
		return Document{}, fmt.Errorf("doing request: %w", err)
	}
	defer utils.PanicOnError(response.Body.Close, "closing response body")

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return Document{}, fmt.Errorf("reading document: %w", err)
	}

	document := Document{
		ContentType: response.Header.Get("Content-Type"),
		Content:     content,
	}

	_, params, err := mime.ParseMediaType(response.Header.Get("Content-Disposition"))
	if err == nil {
		document.Filename = params["filename"]
	}

	return document, nil
}

func (r *rendering) Thumbnail(ctx context.Context, dto handlers.RenderThumbnailRequestDto) (string, error) {
	response, err := sendJson[handlers.UrlResponseDto](ctx, r.transport, http.MethodPost, "/thumbnail/generate", dto)
	return response.Url, err
}
