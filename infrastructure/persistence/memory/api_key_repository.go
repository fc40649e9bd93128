package memory

import (
	"context"
	"sync"

	"orgdir/domain/core/entities"
	pkgerrors "orgdir/pkg/errors"
)

// APIKeyRepository is a map-backed API key store keyed by the key value
type APIKeyRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.APIKey
}

// NewAPIKeyRepository creates an empty in-memory API key repository
func NewAPIKeyRepository() *APIKeyRepository {
	return &APIKeyRepository{items: make(map[string]*entities.APIKey)}
}

// Add persists a new API key
func (r *APIKeyRepository) Add(_ context.Context, key *entities.APIKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key.Key()] = key
	return nil
}

// GetByKey retrieves an API key by its key value, nil if absent
func (r *APIKeyRepository) GetByKey(_ context.Context, key string) (*entities.APIKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[key], nil
}

// Update persists changes to an existing key
func (r *APIKeyRepository) Update(_ context.Context, key *entities.APIKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key.Key()]; !exists {
		return pkgerrors.NewAPIKeyNotFoundError(key.Key())
	}
	r.items[key.Key()] = key
	return nil
}
