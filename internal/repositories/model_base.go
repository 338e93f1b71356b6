package repositories

import (
	"Listline/utils"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrVersionMismatch = fmt.Errorf("version mismatch: %w", utils.ErrHttpConflict)

// Change is a pending column assignment.
type Change struct {
	Column string
	Value  any
}

// ModelBase carries the identity, audit timestamps and optimistic lock
// version shared by every stored row, plus the columns changed since load.
type ModelBase struct {
	id uuid.UUID

	auditCreatedAt time.Time
	auditUpdatedAt time.Time

	version int64

	changes map[string]any
}

func NewModelBase() ModelBase {
	return ModelBase{
		changes: make(map[string]any),
	}
}

// InsertTargets returns scan targets for
// RETURNING id, audit_created_at, audit_updated_at, version.
func (m *ModelBase) InsertTargets() []any {
	return []any{
		&m.id,
		&m.auditCreatedAt,
		&m.auditUpdatedAt,
		&m.version,
	}
}

// UpdateTargets returns scan targets for RETURNING audit_updated_at, version.
func (m *ModelBase) UpdateTargets() []any {
	return []any{
		&m.auditUpdatedAt,
		&m.version,
	}
}

// TrackChange records that column was set to value. Later calls for the
// same column replace earlier ones.
func (m *ModelBase) TrackChange(column string, value any) {
	if m.changes == nil {
		m.changes = make(map[string]any)
	}
	m.changes[column] = value
}

// PendingChanges returns the tracked changes ordered by column name so the
// generated sql is stable.
func (m *ModelBase) PendingChanges() []Change {
	changes := make([]Change, 0, len(m.changes))
	for column, value := range m.changes {
		changes = append(changes, Change{Column: column, Value: value})
	}

	slices.SortFunc(changes, func(a, b Change) int {
		return strings.Compare(a.Column, b.Column)
	})

	return changes
}

func (m *ModelBase) HasChanges() bool {
	return len(m.changes) > 0
}

// ClearChanges must be called once the row has been written.
func (m *ModelBase) ClearChanges() {
	clear(m.changes)
}

// IsNew reports whether the row has not been inserted yet.
func (m *ModelBase) IsNew() bool {
	return m.id == uuid.Nil
}

func (m *ModelBase) Id() uuid.UUID {
	return m.id
}

func (m *ModelBase) AuditCreatedAt() time.Time {
	return m.auditCreatedAt
}

func (m *ModelBase) AuditUpdatedAt() time.Time {
	return m.auditUpdatedAt
}

func (m *ModelBase) Version() int64 {
	return m.version
}

// Mock gives the model a fresh id and timestamps for tests.
func (m *ModelBase) Mock(now time.Time) {
	m.id = uuid.New()
	m.auditCreatedAt = now
	m.auditUpdatedAt = now
	m.version = 0
}
