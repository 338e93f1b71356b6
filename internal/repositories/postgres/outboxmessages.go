package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

type outboxMessageRepository struct {
}

func NewOutboxMessageRepository() repositories.OutboxMessageRepository {
	return &outboxMessageRepository{}
}

func (r *outboxMessageRepository) selectQuery(filter repositories.OutboxMessageFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"type",
		"details",
	).From("outbox_messages")

	if filter.HasId() {
		s.Where(s.Equal("id", filter.GetId()))
	}

	s.OrderByAsc("audit_created_at")

	if filter.HasPagination() {
		filter.GetPagingInfo().Apply(s)
	}

	return s
}

func (r *outboxMessageRepository) List(ctx context.Context, filter repositories.OutboxMessageFilter) ([]*repositories.OutboxMessage, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying db: %w", err)
	}
	defer utils.PanicOnError(rows.Close, "closing rows")

	var outboxMessages []*repositories.OutboxMessage
	for rows.Next() {
		outboxMessage := repositories.OutboxMessage{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(outboxMessage.GetScanPointers()...)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		outboxMessages = append(outboxMessages, &outboxMessage)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return outboxMessages, nil
}

func (r *outboxMessageRepository) Insert(ctx context.Context, outboxMessage *repositories.OutboxMessage) error {
	s := sqlbuilder.InsertInto("outbox_messages").
		Cols("type", "details").
		Values(
			outboxMessage.Type(),
			outboxMessage.Details(),
		)

	err := insertRow(ctx, s, outboxMessage.InsertTargets())
	if err != nil {
		return err
	}

	outboxMessage.ClearChanges()
	return nil
}

func (r *outboxMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.DeleteFrom("outbox_messages")

	s.Where(s.Equal("id", id))

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	_, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing delete: %w", err)
	}

	return nil
}
