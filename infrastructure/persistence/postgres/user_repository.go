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

// UserRepository provides Postgres-backed user persistence
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, password_hash, created_at, updated_at`

// Add persists a new user
func (r *UserRepository) Add(ctx context.Context, user *entities.User) error {
	const query = `INSERT INTO users (id, username, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		user.ID().String(),
		user.Username().String(),
		user.PasswordHash(),
		user.CreatedAt(),
		user.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return pkgerrors.NewUserExistsError(user.Username().String())
		}
		return pkgerrors.NewDatabaseError("insert user", err)
	}
	return nil
}

// GetByID retrieves a user by ID, nil if absent
func (r *UserRepository) GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanOptionalUser(r.pool.QueryRow(ctx, query, id.String()))
}

// GetByUsername retrieves a user by exact username, nil if absent
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanOptionalUser(r.pool.QueryRow(ctx, query, username))
}

// UsernameExists reports whether a user with the username is persisted
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, pkgerrors.NewDatabaseError("check username", err)
	}
	return exists, nil
}

func scanOptionalUser(row pgx.Row) (*entities.User, error) {
	var (
		id, username, passwordHash string
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &username, &passwordHash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.NewDatabaseError("scan user", err)
	}

	userID, err := valueobjects.ParseUserID(id)
	if err != nil {
		return nil, err
	}
	usernameVO, err := valueobjects.NewUsername(username)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructUser(userID, usernameVO, passwordHash, createdAt, updatedAt), nil
}
