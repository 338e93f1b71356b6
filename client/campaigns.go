package client

import (
	"Listline/internal/handlers"
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type CampaignClient interface {
	List(ctx context.Context) ([]handlers.CampaignDto, error)
	Create(ctx context.Context, dto handlers.CreateCampaignRequestDto) (handlers.CampaignDto, error)
	Update(ctx context.Context, id uuid.UUID, dto handlers.UpdateCampaignRequestDto) (handlers.CampaignDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewCampaignClient(transport *Transport) CampaignClient {
	return &campaign{
		transport: transport,
	}
}

type campaign struct {
	transport *Transport
}

func (c *campaign) List(ctx context.Context) ([]handlers.CampaignDto, error) {
	response, err := sendJson[handlers.DataResponseDto[[]handlers.CampaignDto]](ctx, c.transport, http.MethodGet, "/campaigns", nil)
	return response.Data, err
}

func (c *campaign) Create(ctx context.Context, dto handlers.CreateCampaignRequestDto) (handlers.CampaignDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CampaignDto]](ctx, c.transport, http.MethodPost, "/campaigns", dto)
	return response.Data, err
}

func (c *campaign) Update(ctx context.Context, id uuid.UUID, dto handlers.UpdateCampaignRequestDto) (handlers.CampaignDto, error) {
	response, err := sendJson[handlers.DataResponseDto[handlers.CampaignDto]](ctx, c.transport, http.MethodPut, fmt.Sprintf("/campaigns/%s", id), dto)
	return response.Data, err
}

func (c *campaign) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := sendJson[handlers.DataResponseDto[handlers.IdResponseDto]](ctx, c.transport, http.MethodDelete, fmt.Sprintf("/campaigns/%s", id), nil)
	return err
}
