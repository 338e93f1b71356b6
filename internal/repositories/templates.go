package repositories

import (
	"Listline/utils"
	"context"

	"github.com/google/uuid"
)

type Template struct {
	ModelBase

	name         string
	description  *string
	htmlContent  string
	thumbnailUrl *string
	isActive     bool
	campaignId   *uuid.UUID
	createdBy    *uuid.UUID
}

func NewTemplate(name string, htmlContent string) *Template {
	return &Template{
		ModelBase:   NewModelBase(),
		name:        name,
		htmlContent: htmlContent,
		isActive:    true,
	}
}

func (t *Template) GetScanPointers() []any {
	return []any{
		&t.id,
		&t.auditCreatedAt,
		&t.auditUpdatedAt,
		&t.version,
		&t.name,
		&t.description,
		&t.htmlContent,
		&t.thumbnailUrl,
		&t.isActive,
		&t.campaignId,
		&t.createdBy,
	}
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) SetName(name string) {
	t.TrackChange("name", name)
	t.name = name
}

func (t *Template) Description() *string {
	return t.description
}

func (t *Template) SetDescription(description *string) {
	t.TrackChange("description", description)
	t.description = description
}

func (t *Template) HtmlContent() string {
	return t.htmlContent
}

func (t *Template) SetHtmlContent(htmlContent string) {
	t.TrackChange("html_content", htmlContent)
	t.htmlContent = htmlContent
}

func (t *Template) ThumbnailUrl() *string {
	return t.thumbnailUrl
}

func (t *Template) SetThumbnailUrl(thumbnailUrl *string) {
	t.TrackChange("thumbnail_url", thumbnailUrl)
	t.thumbnailUrl = thumbnailUrl
}

func (t *Template) IsActive() bool {
	return t.isActive
}

func (t *Template) SetIsActive(isActive bool) {
	t.TrackChange("is_active", isActive)
	t.isActive = isActive
}

func (t *Template) CampaignId() *uuid.UUID {
	return t.campaignId
}

func (t *Template) SetCampaignId(campaignId *uuid.UUID) {
	t.TrackChange("campaign_id", campaignId)
	t.campaignId = campaignId
}

func (t *Template) CreatedBy() *uuid.UUID {
	return t.createdBy
}

func (t *Template) SetCreatedBy(createdBy *uuid.UUID) {
	t.TrackChange("created_by", createdBy)
	t.createdBy = createdBy
}

type TemplateFilter struct {
	PagingInfo
	OrderInfo
	id           *uuid.UUID
	ids          []uuid.UUID
	activeOnly   bool
	campaignId   *uuid.UUID
	searchFilter *SearchFilter
}

func NewTemplateFilter() TemplateFilter {
	return TemplateFilter{}
}

func (f TemplateFilter) Clone() TemplateFilter {
	return f
}

func (f TemplateFilter) Id(id uuid.UUID) TemplateFilter {
	filter := f.Clone()
	filter.id = &id
	return filter
}

func (f TemplateFilter) HasId() bool {
	return f.id != nil
}

func (f TemplateFilter) GetId() uuid.UUID {
	return utils.ZeroIfNil(f.id)
}

func (f TemplateFilter) Ids(ids []uuid.UUID) TemplateFilter {
	filter := f.Clone()
	filter.ids = append([]uuid.UUID{}, ids...)
	return filter
}

func (f TemplateFilter) HasIds() bool {
	return f.ids != nil
}

func (f TemplateFilter) GetIds() []uuid.UUID {
	return f.ids
}

func (f TemplateFilter) ActiveOnly() TemplateFilter {
	filter := f.Clone()
	filter.activeOnly = true
	return filter
}

func (f TemplateFilter) GetActiveOnly() bool {
	return f.activeOnly
}

func (f TemplateFilter) CampaignId(campaignId uuid.UUID) TemplateFilter {
	filter := f.Clone()
	filter.campaignId = &campaignId
	return filter
}

func (f TemplateFilter) HasCampaignId() bool {
	return f.campaignId != nil
}

func (f TemplateFilter) GetCampaignId() uuid.UUID {
	return utils.ZeroIfNil(f.campaignId)
}

func (f TemplateFilter) Pagination(page int, size int) TemplateFilter {
	filter := f.Clone()
	filter.PagingInfo = PagingInfo{
		page: page,
		size: size,
	}
	return filter
}

func (f TemplateFilter) HasPagination() bool {
	return !f.PagingInfo.IsZero()
}

func (f TemplateFilter) GetPagingInfo() PagingInfo {
	return f.PagingInfo
}

func (f TemplateFilter) Order(by string, direction string) TemplateFilter {
	filter := f.Clone()
	filter.OrderInfo = OrderInfo{
		orderBy:  by,
		orderDir: direction,
	}
	return filter
}

func (f TemplateFilter) HasOrder() bool {
	return !f.OrderInfo.IsZero()
}

func (f TemplateFilter) GetOrderInfo() OrderInfo {
	return f.OrderInfo
}

func (f TemplateFilter) Search(searchFilter SearchFilter) TemplateFilter {
	filter := f.Clone()
	filter.searchFilter = &searchFilter
	return filter
}

func (f TemplateFilter) HasSearch() bool {
	return f.searchFilter != nil
}

func (f TemplateFilter) GetSearch() SearchFilter {
	return *f.searchFilter
}

//go:generate mockgen -destination=./mocks/template_repository.go -package=mocks Listline/internal/repositories TemplateRepository
type TemplateRepository interface {
	List(ctx context.Context, filter TemplateFilter) ([]*Template, int, error)
	Single(ctx context.Context, filter TemplateFilter) (*Template, error)
	First(ctx context.Context, filter TemplateFilter) (*Template, error)
	Insert(ctx context.Context, template *Template) error
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, id uuid.UUID) error
}
