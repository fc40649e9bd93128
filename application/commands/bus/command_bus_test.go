package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "orgdir/pkg/errors"
)

type testCommand struct {
	validateErr error
}

func (c testCommand) Validate() error { return c.validateErr }

type otherCommand struct{}

func (c otherCommand) Validate() error { return nil }

func TestCommandBusFanOut(t *testing.T) {
	commandBus := NewCommandBus()

	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "first", nil
	}))
	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "second", nil
	}))
	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "third", nil
	}))

	results, err := commandBus.Send(context.Background(), testCommand{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"first", "second", "third"}, results)
}

func TestCommandBusNoHandlers(t *testing.T) {
	commandBus := NewCommandBus()

	_, err := commandBus.Send(context.Background(), testCommand{})
	require.Error(t, err)

	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.ErrorTypeDispatch, appErr.Type)
	assert.Equal(t, pkgerrors.CodeNoCommandHandlers, appErr.Code)
	assert.Contains(t, appErr.Details["command_type"], "testCommand")
}

func TestCommandBusHandlerErrorAbortsFanOut(t *testing.T) {
	commandBus := NewCommandBus()
	thirdCalled := false

	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "first", nil
	}))
	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return nil, pkgerrors.NewInternalError("handler failure")
	}))
	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		thirdCalled = true
		return "third", nil
	}))

	results, err := commandBus.Send(context.Background(), testCommand{})
	assert.Error(t, err)
	assert.Nil(t, results)
	assert.False(t, thirdCalled)
}

func TestCommandBusValidationShortCircuits(t *testing.T) {
	commandBus := NewCommandBus()
	handlerCalled := false

	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		handlerCalled = true
		return nil, nil
	}))

	validationErr := pkgerrors.NewValidationError("bad command")
	_, err := commandBus.Send(context.Background(), testCommand{validateErr: validationErr})
	assert.ErrorIs(t, err, validationErr)
	assert.False(t, handlerCalled)
}

func TestCommandBusRoutesByType(t *testing.T) {
	commandBus := NewCommandBus()

	commandBus.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return "test", nil
	}))

	_, err := commandBus.Send(context.Background(), otherCommand{})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDispatch(err))
}
