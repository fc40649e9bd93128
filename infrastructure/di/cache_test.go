package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheRoundtrip(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", 60))

	value, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	_, ok = cache.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestInMemoryCacheExpiry(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	// An already-expired entry must miss and be evicted on lookup.
	require.NoError(t, cache.Set(ctx, "stale", "v", -1))

	_, ok := cache.Get(ctx, "stale")
	assert.False(t, ok)

	cache.mu.Lock()
	_, present := cache.items["stale"]
	cache.mu.Unlock()
	assert.False(t, present)
}

func TestInMemoryCacheDeleteAndClear(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1, 60))
	require.NoError(t, cache.Set(ctx, "b", 2, 60))

	require.NoError(t, cache.Delete(ctx, "a"))
	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, cache.Clear(ctx))
	_, ok = cache.Get(ctx, "b")
	assert.False(t, ok)
}
