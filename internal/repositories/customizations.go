package repositories

import (
	"Listline/internal/jsonTypes"
	"Listline/utils"
	"context"
	"maps"

	"github.com/google/uuid"
)

type CustomizationStatus string

const (
	CustomizationStatusDraft     CustomizationStatus = "draft"
	CustomizationStatusPublished CustomizationStatus = "published"
)

type Customization struct {
	ModelBase

	userId       uuid.UUID
	templateId   uuid.UUID
	name         string
	values       jsonTypes.FieldValues
	renderedHtml *string
	status       CustomizationStatus
	publishedUrl *string
}

func NewCustomization(userId uuid.UUID, templateId uuid.UUID, name string, values jsonTypes.FieldValues) *Customization {
	if values == nil {
		values = jsonTypes.FieldValues{}
	}

	return &Customization{
		ModelBase:  NewModelBase(),
		userId:     userId,
		templateId: templateId,
		name:       name,
		values:     values,
		status:     CustomizationStatusDraft,
	}
}

func (c *Customization) GetScanPointers() []any {
	return []any{
		&c.id,
		&c.auditCreatedAt,
		&c.auditUpdatedAt,
		&c.version,
		&c.userId,
		&c.templateId,
		&c.name,
		&c.values,
		&c.renderedHtml,
		&c.status,
		&c.publishedUrl,
	}
}

func (c *Customization) UserId() uuid.UUID {
	return c.userId
}

func (c *Customization) TemplateId() uuid.UUID {
	return c.templateId
}

func (c *Customization) Name() string {
	return c.name
}

func (c *Customization) SetName(name string) {
	c.TrackChange("name", name)
	c.name = name
}

// Values returns a copy of the filled-in field values.
func (c *Customization) Values() jsonTypes.FieldValues {
	return maps.Clone(c.values)
}

func (c *Customization) SetValues(values jsonTypes.FieldValues) {
	if values == nil {
		values = jsonTypes.FieldValues{}
	}
	c.TrackChange("values", values)
	c.values = values
}

func (c *Customization) RenderedHtml() *string {
	return c.renderedHtml
}

func (c *Customization) SetRenderedHtml(renderedHtml *string) {
	c.TrackChange("rendered_html", renderedHtml)
	c.renderedHtml = renderedHtml
}

func (c *Customization) Status() CustomizationStatus {
	return c.status
}

func (c *Customization) PublishedUrl() *string {
	return c.publishedUrl
}

// Publish marks the customization as published at url.
func (c *Customization) Publish(url string) {
	c.TrackChange("status", CustomizationStatusPublished)
	c.status = CustomizationStatusPublished
	c.TrackChange("published_url", url)
	c.publishedUrl = &url
}

type CustomizationFilter struct {
	PagingInfo
	OrderInfo
	id         *uuid.UUID
	userId     *uuid.UUID
	templateId *uuid.UUID
	status     *CustomizationStatus
}

func NewCustomizationFilter() CustomizationFilter {
	return CustomizationFilter{}
}

func (f CustomizationFilter) Clone() CustomizationFilter {
	return f
}

func (f CustomizationFilter) Id(id uuid.UUID) CustomizationFilter {
	filter := f.Clone()
	filter.id = &id
	return filter
}

func (f CustomizationFilter) HasId() bool {
	return f.id != nil
}

func (f CustomizationFilter) GetId() uuid.UUID {
	return utils.ZeroIfNil(f.id)
}

func (f CustomizationFilter) UserId(userId uuid.UUID) CustomizationFilter {
	filter := f.Clone()
	filter.userId = &userId
	return filter
}

func (f CustomizationFilter) HasUserId() bool {
	return f.userId != nil
}

func (f CustomizationFilter) GetUserId() uuid.UUID {
	return utils.ZeroIfNil(f.userId)
}

func (f CustomizationFilter) TemplateId(templateId uuid.UUID) CustomizationFilter {
	filter := f.Clone()
	filter.templateId = &templateId
	return filter
}

func (f CustomizationFilter) HasTemplateId() bool {
	return f.templateId != nil
}

func (f CustomizationFilter) GetTemplateId() uuid.UUID {
	return utils.ZeroIfNil(f.templateId)
}

func (f CustomizationFilter) Status(status CustomizationStatus) CustomizationFilter {
	filter := f.Clone()
	filter.status = &status
	return filter
}

func (f CustomizationFilter) HasStatus() bool {
	return f.status != nil
}

func (f CustomizationFilter) GetStatus() CustomizationStatus {
	return utils.ZeroIfNil(f.status)
}

func (f CustomizationFilter) Pagination(page int, size int) CustomizationFilter {
	filter := f.Clone()
	filter.PagingInfo = PagingInfo{
		page: page,
		size: size,
	}
	return filter
}

func (f CustomizationFilter) HasPagination() bool {
	return !f.PagingInfo.IsZero()
}

func (f CustomizationFilter) GetPagingInfo() PagingInfo {
	return f.PagingInfo
}

func (f CustomizationFilter) Order(by string, direction string) CustomizationFilter {
	filter := f.Clone()
	filter.OrderInfo = OrderInfo{
		orderBy:  by,
		orderDir: direction,
	}
	return filter
}

func (f CustomizationFilter) HasOrder() bool {
	return !f.OrderInfo.IsZero()
}

func (f CustomizationFilter) GetOrderInfo() OrderInfo {
	return f.OrderInfo
}

//go:generate mockgen -destination=./mocks/customization_repository.go -package=mocks Listline/internal/repositories CustomizationRepository
type CustomizationRepository interface {
	List(ctx context.Context, filter CustomizationFilter) ([]*Customization, int, error)
	Single(ctx context.Context, filter CustomizationFilter) (*Customization, error)
	First(ctx context.Context, filter CustomizationFilter) (*Customization, error)
	Insert(ctx context.Context, customization *Customization) error
	Update(ctx context.Context, customization *Customization) error
	Delete(ctx context.Context, id uuid.UUID) error
}
