package repositories

import (
	"Listline/internal/jsonTypes"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type OutboxMessageType string

const (
	SendMailOutboxMessageType OutboxMessageType = "send_mail"
)

type OutboxMessageDetails interface {
	OutboxMessageType() OutboxMessageType
}

type OutboxMessage struct {
	ModelBase

	_type   OutboxMessageType
	details jsonTypes.JsonDocument
}

func (m *OutboxMessage) GetScanPointers() []any {
	return []any{
		&m.id,
		&m.auditCreatedAt,
		&m.auditUpdatedAt,
		&m.version,
		&m._type,
		&m.details,
	}
}

func (m *OutboxMessage) Type() OutboxMessageType {
	return m._type
}

func (m *OutboxMessage) Details() jsonTypes.JsonDocument {
	return m.details
}

func NewOutboxMessage(details OutboxMessageDetails) (*OutboxMessage, error) {
	document, err := jsonTypes.NewJsonDocument(details)
	if err != nil {
		return nil, fmt.Errorf("serializing outbox message details: %w", err)
	}

	return &OutboxMessage{
		ModelBase: NewModelBase(),
		_type:     details.OutboxMessageType(),
		details:   document,
	}, nil
}

type OutboxMessageFilter struct {
	PagingInfo
	id *uuid.UUID
}

func NewOutboxMessageFilter() OutboxMessageFilter {
	return OutboxMessageFilter{}
}

func (f OutboxMessageFilter) Clone() OutboxMessageFilter {
	return f
}

func (f OutboxMessageFilter) Id(id uuid.UUID) OutboxMessageFilter {
	filter := f.Clone()
	filter.id = &id
	return filter
}

func (f OutboxMessageFilter) HasId() bool {
	return f.id != nil
}

func (f OutboxMessageFilter) GetId() uuid.UUID {
	return utils.ZeroIfNil(f.id)
}

func (f OutboxMessageFilter) Pagination(page int, size int) OutboxMessageFilter {
	filter := f.Clone()
	filter.PagingInfo = PagingInfo{
		page: page,
		size: size,
	}
	return filter
}

func (f OutboxMessageFilter) HasPagination() bool {
	return !f.PagingInfo.IsZero()
}

func (f OutboxMessageFilter) GetPagingInfo() PagingInfo {
	return f.PagingInfo
}

//go:generate mockgen -destination=./mocks/outboxmessage_repository.go -package=mocks Listline/internal/repositories OutboxMessageRepository
type OutboxMessageRepository interface {
	List(ctx context.Context, filter OutboxMessageFilter) ([]*OutboxMessage, error)
	Insert(ctx context.Context, outboxMessage *OutboxMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
