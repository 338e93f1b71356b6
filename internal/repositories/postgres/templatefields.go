package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/internal/repositories/postgres/pghelpers"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

type templateFieldRepository struct {
}

func NewTemplateFieldRepository() repositories.TemplateFieldRepository {
	return &templateFieldRepository{}
}

func (r *templateFieldRepository) selectQuery(filter repositories.TemplateFieldFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"template_id",
		"field_key",
		"label",
		"field_type",
		"default_value",
		"placeholder",
		"help_text",
		"is_required",
		"sort_order",
	).From("template_fields")

	if filter.HasTemplateId() {
		s.Where(s.Equal("template_id", filter.GetTemplateId()))
	}

	s.OrderBy("sort_order", "field_key").Asc()

	return s
}

func (r *templateFieldRepository) List(ctx context.Context, filter repositories.TemplateFieldFilter) ([]*repositories.TemplateField, int, error) {
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

	var fields []*repositories.TemplateField
	var totalCount int
	for rows.Next() {
		field := repositories.TemplateField{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(append(field.GetScanPointers(), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		fields = append(fields, &field)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	if len(fields) == 0 {
		totalCount, err = countAll(ctx, tx, s)
		if err != nil {
			return nil, 0, err
		}
	}

	return fields, totalCount, nil
}

func (r *templateFieldRepository) Insert(ctx context.Context, field *repositories.TemplateField) error {
	s := sqlbuilder.InsertInto("template_fields").
		Cols(
			"template_id",
			"field_key",
			"label",
			"field_type",
			"default_value",
			"placeholder",
			"help_text",
			"is_required",
			"sort_order",
		).
		Values(
			field.TemplateId(),
			field.FieldKey(),
			field.Label(),
			field.FieldType(),
			pghelpers.WrapStringPointer(field.DefaultValue()),
			pghelpers.WrapStringPointer(field.Placeholder()),
			pghelpers.WrapStringPointer(field.HelpText()),
			field.IsRequired(),
			field.SortOrder(),
		)

	err := insertRow(ctx, s, field.InsertTargets())
	if err != nil {
		return err
	}

	field.ClearChanges()
	return nil
}

func (r *templateFieldRepository) DeleteByTemplate(ctx context.Context, templateId uuid.UUID) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.DeleteFrom("template_fields")
	s.Where(s.Equal("template_id", templateId))

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	_, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing delete: %w", err)
	}

	return nil
}
