package bus

import (
	"context"
	"reflect"
	"sync"

	"go.uber.org/zap"

	pkgerrors "orgdir/pkg/errors"
)

// Command represents a command that changes state
type Command interface {
	Validate() error
}

// CommandHandler handles a specific command type and returns its result
type CommandHandler interface {
	Handle(ctx context.Context, cmd Command) (interface{}, error)
}

// CommandBus dispatches commands. A command type may have any number of
// handlers; dispatch fans out to all of them in registration order and
// collects their results in that same order.
type CommandBus struct {
	handlers map[reflect.Type][]CommandHandler
	mu       sync.RWMutex
}

// NewCommandBus creates a new command bus
func NewCommandBus() *CommandBus {
	return &CommandBus{
		handlers: make(map[reflect.Type][]CommandHandler),
	}
}

// Register appends a handler for a command type. Unlike queries, several
// handlers may observe the same command.
func (b *CommandBus) Register(cmdType Command, handler CommandHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := reflect.TypeOf(cmdType)
	b.handlers[t] = append(b.handlers[t], handler)
}

// Send dispatches a command to every registered handler in registration
// order and returns their results in the same order. Dispatching a command
// type with no handlers is a typed dispatch error, and the first handler
// failure aborts the fan-out.
func (b *CommandBus) Send(ctx context.Context, cmd Command) ([]interface{}, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t := reflect.TypeOf(cmd)
	b.mu.RLock()
	handlers := b.handlers[t]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil, pkgerrors.NewDispatchError("no handlers registered for command").
			WithCode(pkgerrors.CodeNoCommandHandlers).
			WithDetail("command_type", t.String())
	}

	results := make([]interface{}, 0, len(handlers))
	for _, handler := range handlers {
		result, err := handler.Handle(ctx, cmd)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Middleware defines command middleware
type Middleware func(next CommandHandler) CommandHandler

// CommandHandlerFunc is an adapter to allow functions to be used as handlers
type CommandHandlerFunc func(ctx context.Context, cmd Command) (interface{}, error)

// Handle implements CommandHandler
func (f CommandHandlerFunc) Handle(ctx context.Context, cmd Command) (interface{}, error) {
	return f(ctx, cmd)
}

// LoggingMiddleware logs command execution
func LoggingMiddleware(logger *zap.Logger) Middleware {
	return func(next CommandHandler) CommandHandler {
		return CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
			cmdType := reflect.TypeOf(cmd).String()
			logger.Debug("Executing command", zap.String("type", cmdType))

			result, err := next.Handle(ctx, cmd)
			if err != nil {
				logger.Error("Command failed", zap.String("type", cmdType), zap.Error(err))
			} else {
				logger.Debug("Command succeeded", zap.String("type", cmdType))
			}

			return result, err
		})
	}
}

// ValidationMiddleware ensures commands are valid before the handler runs
func ValidationMiddleware() Middleware {
	return func(next CommandHandler) CommandHandler {
		return CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
			if err := cmd.Validate(); err != nil {
				return nil, err
			}
			return next.Handle(ctx, cmd)
		})
	}
}
