package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxFilter(t *testing.T) {
	t.Parallel()

	// arrange
	f := NewOutboxMessageFilter()
	id := uuid.New()

	// act
	f = f.Id(id)

	// assert
	assert.Equal(t, &id, f.id)
}

type testDetails struct {
	To string `json:"to"`
}

func (testDetails) OutboxMessageType() OutboxMessageType {
	return SendMailOutboxMessageType
}

func TestNewOutboxMessageSerializesDetails(t *testing.T) {
	t.Parallel()

	// act
	message, err := NewOutboxMessage(testDetails{To: "jane@example.com"})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, SendMailOutboxMessageType, message.Type())
	assert.JSONEq(t, `{"to":"jane@example.com"}`, string(message.Details()))
}
