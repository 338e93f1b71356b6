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

type customizationRepository struct {
}

func NewCustomizationRepository() repositories.CustomizationRepository {
	return &customizationRepository{}
}

func (r *customizationRepository) selectQuery(filter repositories.CustomizationFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"user_id",
		"template_id",
		"name",
		"values",
		"rendered_html",
		"status",
		"published_url",
	).From("customizations")

	if filter.HasId() {
		s.Where(s.Equal("id", filter.GetId()))
	}

	if filter.HasUserId() {
		s.Where(s.Equal("user_id", filter.GetUserId()))
	}

	if filter.HasTemplateId() {
		s.Where(s.Equal("template_id", filter.GetTemplateId()))
	}

	if filter.HasStatus() {
		s.Where(s.Equal("status", filter.GetStatus()))
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

func (r *customizationRepository) List(ctx context.Context, filter repositories.CustomizationFilter) ([]*repositories.Customization, int, error) {
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

	var customizations []*repositories.Customization
	var totalCount int
	for rows.Next() {
		customization := repositories.Customization{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(append(customization.GetScanPointers(), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		customizations = append(customizations, &customization)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	if len(customizations) == 0 {
		totalCount, err = countAll(ctx, tx, s)
		if err != nil {
			return nil, 0, err
		}
	}

	return customizations, totalCount, nil
}

func (r *customizationRepository) Single(ctx context.Context, filter repositories.CustomizationFilter) (*repositories.Customization, error) {
	customization, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if customization == nil {
		return nil, utils.ErrCustomizationNotFound
	}
	return customization, nil
}

func (r *customizationRepository) First(ctx context.Context, filter repositories.CustomizationFilter) (*repositories.Customization, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	row := tx.QueryRowContext(ctx, query, args...)

	customization := repositories.Customization{
		ModelBase: repositories.NewModelBase(),
	}
	err = row.Scan(customization.GetScanPointers()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil

	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return &customization, nil
}

func (r *customizationRepository) Insert(ctx context.Context, customization *repositories.Customization) error {
	s := sqlbuilder.InsertInto("customizations").
		Cols(
			"user_id",
			"template_id",
			"name",
			"values",
			"rendered_html",
			"status",
			"published_url",
		).
		Values(
			customization.UserId(),
			customization.TemplateId(),
			customization.Name(),
			customization.Values(),
			pghelpers.WrapStringPointer(customization.RenderedHtml()),
			customization.Status(),
			pghelpers.WrapStringPointer(customization.PublishedUrl()),
		)

	err := insertRow(ctx, s, customization.InsertTargets())
	if err != nil {
		return err
	}

	customization.ClearChanges()
	return nil
}

func (r *customizationRepository) Update(ctx context.Context, customization *repositories.Customization) error {
	return updateRow(ctx, "customizations", customization)
}

func (r *customizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.DeleteFrom("customizations")
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
		return utils.ErrCustomizationNotFound
	}

	return nil
}
