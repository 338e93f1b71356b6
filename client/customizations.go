package client

import (
	"Listline/internal/handlers"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

type ListCustomizationParams struct {
	TemplateId *uuid.UUID
	Status     *repositories.CustomizationStatus
}

type CustomizationClient interface {
	List(ctx context.Context, params ListCustomizationParams) ([]handlers.CustomizationDto, error)
	Get(ctx context.Context, id uuid.UUID) (handlers.CustomizationDto, error)
	Create(ctx context.Context, dto handlers.CreateCustomizationRequestDto) (handlers.CustomizationDto, error)
	Update(ctx context.Context, id uuid.UUID, dto handlers.UpdateCustomizationRequestDto) (handlers.CustomizationDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) (handlers.CustomizationDto, error)
}

func NewCustomizationClient(transport *Transport) CustomizationClient {
	return &customization{
		transport: transport,
	}
}

type customization struct {
	transport *Transport
}

func (c *customization) List(ctx context.Context, params ListCustomizationParams) ([]handlers.CustomizationDto, error) {
	values := url.Values{}
	if params.TemplateId != nil {
		values.Set("templateId", params.TemplateId.String())
	}
	if params.Status != nil {
		values.Set("status", string(*params.Status))
	}

	endpoint := "/customizations"
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	response, err := sendJson[handlers.DataResponseDto[[]handlers.CustomizationDto]](ctx, c.transport, http.MethodGet, endpoint, nil)
	return response.Data, err
}

func (c *customization) Get(ctx context.Context, id uuid.UUID) (handlers.CustomizationDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CustomizationDto]](ctx, c.transport, http.MethodGet, fmt.Sprintf("/customizations/%s", id), nil)
	return response.Data, err
}

func (c *customization) Create(ctx context.Context, dto handlers.CreateCustomizationRequestDto) (handlers.CustomizationDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CustomizationDto]](ctx, c.transport, http.MethodPost, "/customizations", dto)
	return response.Data, err
}

func (c *customization) Update(ctx context.Context, id uuid.UUID, dto handlers.UpdateCustomizationRequestDto) (handlers.CustomizationDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CustomizationDto]](ctx, c.transport, http.MethodPut, fmt.Sprintf("/customizations/%s", id), dto)
	return response.Data, err
}

func (c *customization) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := sendJson[handlers.DataResponseDto[handlers.IdResponseDto]](ctx, c.transport, http.MethodDelete, fmt.Sprintf("/customizations/%s", id), nil)
	return err
}

func (c *customization) Publish(ctx context.Context, id uuid.UUID) (handlers.CustomizationDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CustomizationDto]](ctx, c.transport, http.MethodPost, fmt.Sprintf("/customizations/%s/publish", id), nil)
	return response.Data, err
}
