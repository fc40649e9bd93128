package mediator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commandbus "orgdir/application/commands/bus"
	querybus "orgdir/application/queries/bus"
	pkgerrors "orgdir/pkg/errors"
)

type pingCommand struct{}

func (c pingCommand) Validate() error { return nil }

type pingQuery struct{}

func (q pingQuery) Validate() error { return nil }

func newTestMediator(t *testing.T) (IMediator, *commandbus.CommandBus, *querybus.QueryBus) {
	t.Helper()
	commands := commandbus.NewCommandBus()
	queries := querybus.NewQueryBus()
	return NewMediator(commands, queries, zap.NewNop(), nil), commands, queries
}

func TestMediatorSend(t *testing.T) {
	m, commands, _ := newTestMediator(t)

	commands.Register(pingCommand{}, commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) (interface{}, error) {
		return "pong", nil
	}))

	results, err := m.Send(context.Background(), pingCommand{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"pong"}, results)
}

func TestMediatorQuery(t *testing.T) {
	m, _, queries := newTestMediator(t)

	require.NoError(t, queries.Register(pingQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		return 42, nil
	})))

	result, err := m.Query(context.Background(), pingQuery{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestMediatorUnregisteredTypes(t *testing.T) {
	m, _, _ := newTestMediator(t)

	_, err := m.Send(context.Background(), pingCommand{})
	assert.True(t, pkgerrors.IsDispatch(err))

	_, err = m.Query(context.Background(), pingQuery{})
	assert.True(t, pkgerrors.IsDispatch(err))
}
