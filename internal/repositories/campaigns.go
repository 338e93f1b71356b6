package repositories

import (
	"Listline/utils"
	"context"

	"github.com/google/uuid"
)

const DefaultCampaignColor = "#f5d5d5"

type Campaign struct {
	ModelBase

	name  string
	color string
}

func NewCampaign(name string, color string) *Campaign {
	if color == "" {
		color = DefaultCampaignColor
	}

	return &Campaign{
		ModelBase: NewModelBase(),
		name:      name,
		color:     color,
	}
}

func (c *Campaign) GetScanPointers() []any {
	return []any{
		&c.id,
		&c.auditCreatedAt,
		&c.auditUpdatedAt,
		&c.version,
		&c.name,
		&c.color,
	}
}

func (c *Campaign) Name() string {
	return c.name
}

func (c *Campaign) SetName(name string) {
	c.TrackChange("name", name)
	c.name = name
}

func (c *Campaign) Color() string {
	return c.color
}

func (c *Campaign) SetColor(color string) {
	c.TrackChange("color", color)
	c.color = color
}

type CampaignFilter struct {
	OrderInfo
	id *uuid.UUID
}

func NewCampaignFilter() CampaignFilter {
	return CampaignFilter{}
}

func (f CampaignFilter) Clone() CampaignFilter {
	return f
}

func (f CampaignFilter) Id(id uuid.UUID) CampaignFilter {
	filter := f.Clone()
	filter.id = &id
	return filter
}

func (f CampaignFilter) HasId() bool {
	return f.id != nil
}

func (f CampaignFilter) GetId() uuid.UUID {
	return utils.ZeroIfNil(f.id)
}

func (f CampaignFilter) Order(by string, direction string) CampaignFilter {
	filter := f.Clone()
	filter.OrderInfo = OrderInfo{
		orderBy:  by,
		orderDir: direction,
	}
	return filter
}

func (f CampaignFilter) HasOrder() bool {
	return !f.OrderInfo.IsZero()
}

func (f CampaignFilter) GetOrderInfo() OrderInfo {
	return f.OrderInfo
}

//go:generate mockgen -destination=./mocks/campaign_repository.go -package=mocks Listline/internal/repositories CampaignRepository
type CampaignRepository interface {
	List(ctx context.Context, filter CampaignFilter) ([]*Campaign, int, error)
	Single(ctx context.Context, filter CampaignFilter) (*Campaign, error)
	First(ctx context.Context, filter CampaignFilter) (*Campaign, error)
	Insert(ctx context.Context, campaign *Campaign) error
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}
