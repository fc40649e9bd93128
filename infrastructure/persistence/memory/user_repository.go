package memory

import (
	"context"
	"sync"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// UserRepository is a slice-backed user store. Usernames match exactly and
// case-sensitively, unlike the directory's name searches.
type UserRepository struct {
	mu    sync.RWMutex
	items []*entities.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Add persists a new user, rejecting duplicate usernames
func (r *UserRepository) Add(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username().String() == user.Username().String() {
			return pkgerrors.NewUserExistsError(user.Username().String())
		}
	}

	r.items = append(r.items, user)
	return nil
}

// GetByID retrieves a user by ID, nil if absent
func (r *UserRepository) GetByID(_ context.Context, id valueobjects.UserID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.items {
		if user.ID().Equals(id) {
			return user, nil
		}
	}
	return nil, nil
}

// GetByUsername retrieves a user by exact username, nil if absent
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.items {
		if user.Username().String() == username {
			return user, nil
		}
	}
	return nil, nil
}

// UsernameExists reports whether a user with the username is persisted
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
