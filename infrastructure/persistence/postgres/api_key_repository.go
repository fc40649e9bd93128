package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// APIKeyRepository provides Postgres-backed API key persistence
type APIKeyRepository struct {
	pool *pgxpool.Pool
}

// NewAPIKeyRepository constructs an APIKeyRepository
func NewAPIKeyRepository(pool *pgxpool.Pool) *APIKeyRepository {
	return &APIKeyRepository{pool: pool}
}

// Add persists a new API key
func (r *APIKeyRepository) Add(ctx context.Context, key *entities.APIKey) error {
	const query = `INSERT INTO api_keys (key, user_id, last_used, banned_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		key.Key(),
		key.UserID().String(),
		key.LastUsed(),
		key.BannedAt(),
		key.CreatedAt(),
		key.UpdatedAt(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("insert api key", err)
	}
	return nil
}

// GetByKey retrieves an API key by its key value, nil if absent
func (r *APIKeyRepository) GetByKey(ctx context.Context, key string) (*entities.APIKey, error) {
	const query = `SELECT key, user_id, last_used, banned_at, created_at, updated_at
        FROM api_keys WHERE key = $1`

	var (
		keyValue, userID     string
		lastUsed, bannedAt   *time.Time
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, key).Scan(&keyValue, &userID, &lastUsed, &bannedAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.NewDatabaseError("scan api key", err)
	}

	owner, err := valueobjects.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructAPIKey(keyValue, owner, lastUsed, bannedAt, createdAt, updatedAt), nil
}

// Update persists changes to an existing key
func (r *APIKeyRepository) Update(ctx context.Context, key *entities.APIKey) error {
	const query = `UPDATE api_keys SET last_used = $2, banned_at = $3, updated_at = $4 WHERE key = $1`

	tag, err := r.pool.Exec(ctx, query, key.Key(), key.LastUsed(), key.BannedAt(), key.UpdatedAt())
	if err != nil {
		return pkgerrors.NewDatabaseError("update api key", err)
	}
	if tag.RowsAffected() == 0 {
		return pkgerrors.NewAPIKeyNotFoundError(key.Key())
	}
	return nil
}
