package mediator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	commandbus "orgdir/application/commands/bus"
	querybus "orgdir/application/queries/bus"
	"orgdir/pkg/observability"
)

// IMediator is the single entry point for all commands and queries,
// decoupling the transport layer from the application layer
type IMediator interface {
	// Send dispatches a command to every registered handler and returns
	// their results in registration order
	Send(ctx context.Context, command commandbus.Command) ([]interface{}, error)

	// Query dispatches a query to its single handler and returns the result
	Query(ctx context.Context, query querybus.Query) (interface{}, error)
}

// Mediator wraps the command and query buses with logging and metrics
type Mediator struct {
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
	metrics    *observability.Collector
}

// NewMediator creates a new mediator instance; metrics may be nil
func NewMediator(
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
	metrics *observability.Collector,
) *Mediator {
	return &Mediator{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
		metrics:    metrics,
	}
}

// Send dispatches a command through the command bus
func (m *Mediator) Send(ctx context.Context, command commandbus.Command) ([]interface{}, error) {
	startTime := time.Now()
	commandType := fmt.Sprintf("%T", command)

	results, err := m.commandBus.Send(ctx, command)
	duration := time.Since(startTime)

	m.recordDispatch("command", commandType, duration, err)

	if err != nil {
		m.logger.Error("Command execution failed",
			zap.String("command", commandType),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, err
	}

	m.logger.Debug("Command executed successfully",
		zap.String("command", commandType),
		zap.Int("handlers", len(results)),
		zap.Duration("duration", duration))

	return results, nil
}

// Query dispatches a query through the query bus
func (m *Mediator) Query(ctx context.Context, query querybus.Query) (interface{}, error) {
	startTime := time.Now()
	queryType := fmt.Sprintf("%T", query)

	result, err := m.queryBus.Ask(ctx, query)
	duration := time.Since(startTime)

	m.recordDispatch("query", queryType, duration, err)

	if err != nil {
		m.logger.Error("Query execution failed",
			zap.String("query", queryType),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, err
	}

	m.logger.Debug("Query executed successfully",
		zap.String("query", queryType),
		zap.Duration("duration", duration))

	return result, nil
}

func (m *Mediator) recordDispatch(kind, typeName string, duration time.Duration, err error) {
	if m.metrics == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	switch kind {
	case "command":
		m.metrics.CommandsDispatched.WithLabelValues(typeName, status).Inc()
	case "query":
		m.metrics.QueriesDispatched.WithLabelValues(typeName, status).Inc()
	}
	m.metrics.DispatchDuration.WithLabelValues(kind, typeName).Observe(duration.Seconds())
}
