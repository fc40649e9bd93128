package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "orgdir/pkg/errors"
)

type testQuery struct {
	validateErr error
}

func (q testQuery) Validate() error { return q.validateErr }

func TestQueryBusAsk(t *testing.T) {
	queryBus := NewQueryBus()

	err := queryBus.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return "answer", nil
	}))
	require.NoError(t, err)

	result, err := queryBus.Ask(context.Background(), testQuery{})
	require.NoError(t, err)
	assert.Equal(t, "answer", result)
}

func TestQueryBusDuplicateRegistration(t *testing.T) {
	queryBus := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return nil, nil
	})

	require.NoError(t, queryBus.Register(testQuery{}, handler))
	assert.Error(t, queryBus.Register(testQuery{}, handler))
}

func TestQueryBusNoHandler(t *testing.T) {
	queryBus := NewQueryBus()

	_, err := queryBus.Ask(context.Background(), testQuery{})
	require.Error(t, err)

	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.ErrorTypeDispatch, appErr.Type)
	assert.Equal(t, pkgerrors.CodeNoQueryHandler, appErr.Code)
	assert.Contains(t, appErr.Details["query_type"], "testQuery")
}

func TestQueryBusValidationShortCircuits(t *testing.T) {
	queryBus := NewQueryBus()
	handlerCalled := false

	require.NoError(t, queryBus.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		handlerCalled = true
		return nil, nil
	})))

	validationErr := pkgerrors.NewValidationError("bad query")
	_, err := queryBus.Ask(context.Background(), testQuery{validateErr: validationErr})
	assert.ErrorIs(t, err, validationErr)
	assert.False(t, handlerCalled)
}

func TestCachingMiddleware(t *testing.T) {
	calls := 0
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		return calls, nil
	})

	cache := &mapCache{items: map[string]interface{}{}}
	caching := NewCachingMiddleware(cache, 60)
	wrapped := caching.Wrap(handler)

	first, err := wrapped.Handle(context.Background(), testQuery{})
	require.NoError(t, err)
	second, err := wrapped.Handle(context.Background(), testQuery{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

type mapCache struct {
	items map[string]interface{}
}

func (c *mapCache) Get(ctx context.Context, key string) (interface{}, bool) {
	value, ok := c.items[key]
	return value, ok
}

func (c *mapCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.items[key] = value
	return nil
}
