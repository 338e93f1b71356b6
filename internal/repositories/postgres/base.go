package postgres

import (
	"Listline/internal/database"
	"Listline/internal/logging"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

// getTx returns the transaction of the request scope stored in ctx.
func getTx(ctx context.Context) (*sql.Tx, error) {
	scope := middlewares.GetScope(ctx)
	dbService := ioc.GetDependency[database.DbService](scope)

	tx, err := dbService.GetTx()
	if err != nil {
		return nil, fmt.Errorf("failed to open tx: %w", err)
	}

	return tx, nil
}

type versionedRow interface {
	Id() uuid.UUID
	Version() int64
	HasChanges() bool
	PendingChanges() []repositories.Change
	UpdateTargets() []any
	ClearChanges()
}

// insertRow runs an insert that returns the model base columns.
func insertRow(ctx context.Context, s *sqlbuilder.InsertBuilder, targets []any) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s.Returning("id", "audit_created_at", "audit_updated_at", "version")

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)

	err = tx.QueryRowContext(ctx, query, args...).Scan(targets...)
	if err != nil {
		return fmt.Errorf("scanning row: %w", err)
	}

	return nil
}

// updateRow writes the pending changes of row guarded by its version.
// A row that was changed or deleted concurrently yields ErrVersionMismatch.
func updateRow(ctx context.Context, table string, row versionedRow) error {
	if !row.HasChanges() {
		return nil
	}

	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.Update(table)
	for _, change := range row.PendingChanges() {
		s.SetMore(s.Assign(change.Column, change.Value))
	}
	s.SetMore(s.Assign("version", row.Version()+1))

	s.Where(s.Equal("id", row.Id()))
	s.Where(s.Equal("version", row.Version()))
	s.Returning("audit_updated_at", "version")

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)

	err = tx.QueryRowContext(ctx, query, args...).Scan(row.UpdateTargets()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("updating %s %s: %w", table, row.Id(), repositories.ErrVersionMismatch)
	case err != nil:
		return fmt.Errorf("scanning row: %w", err)
	}

	row.ClearChanges()
	return nil
}

// countAll counts every row s selects, ignoring its LIMIT and OFFSET. Lists use it when
// a page comes back empty, since the windowed count has no row to ride on then.
func countAll(ctx context.Context, tx *sql.Tx, s *sqlbuilder.SelectBuilder) (int, error) {
	inner := s.Clone()
	inner.Limit(-1)
	inner.Offset(-1)

	c := sqlbuilder.NewSelectBuilder()
	c.SetFlavor(s.Flavor())
	c.Select("count(*)").From(c.BuilderAs(inner, "listed"))

	query, args := c.Build()
	logging.Logger.Debug("executing sql: ", query)

	var total int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return total, nil
}
