package mediator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestHandlerGetsCalled(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()
	RegisterHandler(m, func(ctx context.Context, request string) (string, error) {
		return "foo", nil
	})

	// act
	response, err := Send[string](t.Context(), m, "bar")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "foo", response)
}

func TestMissingHandlerReturnsError(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()

	// act
	_, err := Send[string](t.Context(), m, 42)

	// assert
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestWrongResponseTypeReturnsError(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()
	RegisterHandler(m, func(ctx context.Context, request string) (string, error) {
		return "foo", nil
	})

	// act
	_, err := Send[int](t.Context(), m, "bar")

	// assert
	assert.ErrorIs(t, err, ErrResponseTypeMismatch)
}

type named interface {
	Name() string
}

type namedRequest struct{}

func (namedRequest) Name() string {
	return "named"
}

func TestBehavioursRunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()
	var calls []string
	RegisterBehaviour(m, func(ctx context.Context, request named, next Next) error {
		calls = append(calls, "first:"+request.Name())
		return next()
	})
	RegisterBehaviour(m, func(ctx context.Context, request named, next Next) error {
		calls = append(calls, "second")
		return next()
	})
	RegisterHandler(m, func(ctx context.Context, request namedRequest) (int, error) {
		calls = append(calls, "handler")
		return 1, nil
	})

	// act
	response, err := Send[int](t.Context(), m, namedRequest{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, response)
	assert.Equal(t, []string{"first:named", "second", "handler"}, calls)
}

func TestBehaviourCanShortCircuit(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()
	denied := errors.New("denied")
	handlerCalled := false
	RegisterBehaviour(m, func(ctx context.Context, request named, next Next) error {
		return denied
	})
	RegisterHandler(m, func(ctx context.Context, request namedRequest) (int, error) {
		handlerCalled = true
		return 1, nil
	})

	// act
	_, err := Send[int](t.Context(), m, namedRequest{})

	// assert
	assert.ErrorIs(t, err, denied)
	assert.False(t, handlerCalled)
}

func TestEventHandlersGetCalled(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()
	var received []string
	RegisterEventHandler(m, func(ctx context.Context, evt string) error {
		received = append(received, "a:"+evt)
		return nil
	})
	RegisterEventHandler(m, func(ctx context.Context, evt string) error {
		received = append(received, "b:"+evt)
		return nil
	})

	// act
	err := SendEvent(t.Context(), m, "published")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"a:published", "b:published"}, received)
}

func TestEventWithoutHandlersIsIgnored(t *testing.T) {
	t.Parallel()

	// arrange
	m := NewMediator()

	// act
	err := SendEvent(t.Context(), m, 3.14)

	// assert
	assert.NoError(t, err)
}
