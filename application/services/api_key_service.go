package services

import (
	"context"

	"go.uber.org/zap"

	"orgdir/application/ports"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// APIKeyService issues, verifies, and revokes API keys. A key is never
// deleted; revocation is a ban timestamp so usage history survives.
type APIKeyService struct {
	keys   ports.APIKeyRepository
	users  ports.UserRepository
	logger *zap.Logger
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(keys ports.APIKeyRepository, users ports.UserRepository, logger *zap.Logger) *APIKeyService {
	return &APIKeyService{keys: keys, users: users, logger: logger}
}

// Create issues a new key for an existing user
func (s *APIKeyService) Create(ctx context.Context, userID valueobjects.UserID) (*entities.APIKey, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.NewUserNotFoundError(userID.String())
	}

	key := entities.NewAPIKey(userID)
	if err := s.keys.Add(ctx, key); err != nil {
		return nil, err
	}

	s.logger.Debug("API key issued",
		zap.String("user_id", userID.String()),
	)

	return key, nil
}

// Verify looks up a key, rejects banned ones, and records the use
func (s *APIKeyService) Verify(ctx context.Context, key string) (*entities.APIKey, error) {
	apiKey, err := s.keys.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if apiKey == nil {
		return nil, pkgerrors.NewAPIKeyNotFoundError(key)
	}
	if apiKey.IsBanned() {
		return nil, pkgerrors.NewAPIKeyBannedError(key)
	}

	apiKey.Touch()
	if err := s.keys.Update(ctx, apiKey); err != nil {
		return nil, err
	}

	return apiKey, nil
}

// Ban revokes a key; banning an already-banned key is a no-op
func (s *APIKeyService) Ban(ctx context.Context, key string) (*entities.APIKey, error) {
	apiKey, err := s.keys.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if apiKey == nil {
		return nil, pkgerrors.NewAPIKeyNotFoundError(key)
	}

	apiKey.Ban()
	if err := s.keys.Update(ctx, apiKey); err != nil {
		return nil, err
	}

	s.logger.Info("API key banned",
		zap.String("user_id", apiKey.UserID().String()),
	)

	return apiKey, nil
}
