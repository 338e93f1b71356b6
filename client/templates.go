package client

import (
	"Listline/internal/handlers"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

type ListTemplateParams struct {
	Page            int
	Size            int
	Search          string
	CampaignId      *uuid.UUID
	IncludeInactive bool
}

func (p ListTemplateParams) encode() string {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		values.Set("pageSize", strconv.Itoa(p.Size))
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.CampaignId != nil {
		values.Set("campaignId", p.CampaignId.String())
	}
	if p.IncludeInactive {
		values.Set("includeInactive", "true")
	}
	return values.Encode()
}

type TemplateClient interface {
	List(ctx context.Context, params ListTemplateParams) (handlers.DataResponseDto[[]handlers.TemplateDto], error)
	Get(ctx context.Context, id uuid.UUID) (handlers.TemplateDetailDto, error)
	Create(ctx context.Context, dto handlers.TemplateRequestDto) (handlers.TemplateDetailDto, error)
	Update(ctx context.Context, id uuid.UUID, dto handlers.TemplateRequestDto) (handlers.TemplateDetailDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewTemplateClient(transport *Transport) TemplateClient {
	return &template{
		transport: transport,
	}
}

type template struct {
	transport *Transport
}

func (t *template) List(ctx context.Context, params ListTemplateParams) (handlers.DataResponseDto[[]handlers.TemplateDto], error) {
	endpoint := "/templates"
	if query := params.encode(); query != "" {
		endpoint += "?" + query
	}

	return sendJson[handlers.DataResponseDto[[]handlers.TemplateDto]](ctx, t.transport, http.MethodGet, endpoint, nil)
}

func (t *template) Get(ctx context.Context, id uuid.UUID) (handlers.TemplateDetailDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.TemplateDetailDto]](ctx, t.transport, http.MethodGet, fmt.Sprintf("/templates/%s", id), nil)
	return response.Data, err
}

func (t *template) Create(ctx context.Context, dto handlers.TemplateRequestDto) (handlers.TemplateDetailDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.TemplateDetailDto]](ctx, t.transport, http.MethodPost, "/templates", dto)
	return response.Data, err
}

func (t *template) Update(ctx context.Context, id uuid.UUID, dto handlers.TemplateRequestDto) (handlers.TemplateDetailDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.TemplateDetailDto]](ctx, t.transport, http.MethodPut, fmt.Sprintf("/templates/%s", id), dto)
	return response.Data, err
}

func (t *template) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := sendJson[handlers.DataResponseDto[handlers.IdResponseDto]](ctx, t.transport, http.MethodDelete, fmt.Sprintf("/templates/%s", id), nil)
	return err
}
