package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/internal/repositories/postgres/pghelpers"
	"Listline/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

type templateRepository struct {
}

func NewTemplateRepository() repositories.TemplateRepository {
	return &templateRepository{}
}

func (r *templateRepository) selectQuery(filter repositories.TemplateFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"name",
		"description",
		"html_content",
		"thumbnail_url",
		"is_active",
		"campaign_id",
		"created_by",
	).From("listing_templates")

	if filter.HasId() {
		s.Where(s.Equal("id", filter.GetId()))
	}

	if filter.HasIds() {
		if len(filter.GetIds()) == 0 {
			s.Where("false")
		} else {
			s.Where(s.In("id", sqlbuilder.Flatten(filter.GetIds())...))
		}
	}

	if filter.GetActiveOnly() {
		s.Where(s.Equal("is_active", true))
	}

	if filter.HasCampaignId() {
		s.Where(s.Equal("campaign_id", filter.GetCampaignId()))
	}

	if filter.HasSearch() {
		filter.GetSearch().Apply(s, "name", "description")
	}

	if filter.HasOrder() {
		filter.GetOrderInfo().Apply(s)
	} else {
		s.OrderByDesc("audit_created_at")
	}

	if filter.HasPagination() {
		filter.GetPagingInfo().Apply(s)
	}

	return s
}

func (r *templateRepository) List(ctx context.Context, filter repositories.TemplateFilter) ([]*repositories.Template, int, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	s := r.selectQuery(filter)
	s.SelectMore("count(*) over()")

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying db: %w", err)
	}
	defer utils.PanicOnError(rows.Close, "closing rows")

	var templates []*repositories.Template
	var totalCount int
	for rows.Next() {
		template := repositories.Template{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(append(template.GetScanPointers(), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		templates = append(templates, &template)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	if len(templates) == 0 {
		totalCount, err = countAll(ctx, tx, s)
		if err != nil {
			return nil, 0, err
		}
	}

	return templates, totalCount, nil
}

func (r *templateRepository) Single(ctx context.Context, filter repositories.TemplateFilter) (*repositories.Template, error) {
	template, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}
	return template, nil
}

func (r *templateRepository) First(ctx context.Context, filter repositories.TemplateFilter) (*repositories.Template, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	row := tx.QueryRowContext(ctx, query, args...)

	template := repositories.Template{
		ModelBase: repositories.NewModelBase(),
	}
	err = row.Scan(template.GetScanPointers()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil

	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return &template, nil
}

func (r *templateRepository) Insert(ctx context.Context, template *repositories.Template) error {
	s := sqlbuilder.InsertInto("listing_templates").
		Cols(
			"name",
			"description",
			"html_content",
			"thumbnail_url",
			"is_active",
			"campaign_id",
			"created_by",
		).
		Values(
			template.Name(),
			pghelpers.WrapStringPointer(template.Description()),
			template.HtmlContent(),
			pghelpers.WrapStringPointer(template.ThumbnailUrl()),
			template.IsActive(),
			pghelpers.WrapUuidPointer(template.CampaignId()),
			pghelpers.WrapUuidPointer(template.CreatedBy()),
		)

	err := insertRow(ctx, s, template.InsertTargets())
	if err != nil {
		return err
	}

	template.ClearChanges()
	return nil
}

func (r *templateRepository) Update(ctx context.Context, template *repositories.Template) error {
	return updateRow(ctx, "listing_templates", template)
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.DeleteFrom("listing_templates")
	s.Where(s.Equal("id", id))

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing delete: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return utils.ErrTemplateNotFound
	}

	return nil
}
