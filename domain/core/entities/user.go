package entities

import (
	"time"

	"github.com/google/uuid"

	"orgdir/domain/core/valueobjects"
)

// User is an account in the collaborator identity domain. The password is
// stored as a bcrypt hash; the service layer owns hashing and verification.
type User struct {
	id           valueobjects.UserID
	username     valueobjects.Username
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with an already-hashed password
func NewUser(username valueobjects.Username, passwordHash string) *User {
	now := time.Now()
	return &User{
		id:           valueobjects.NewUserID(),
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

// ReconstructUser reconstructs a user from repository data
func ReconstructUser(
	id valueobjects.UserID,
	username valueobjects.Username,
	passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user's unique identifier
func (u *User) ID() valueobjects.UserID { return u.id }

// Username returns the user's login name
func (u *User) Username() valueobjects.Username { return u.username }

// PasswordHash returns the bcrypt hash of the user's password
func (u *User) PasswordHash() string { return u.passwordHash }

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Equals checks user equality by username
func (u *User) Equals(other *User) bool {
	return other != nil && u.username.Equals(other.username)
}

// APIKey grants a user programmatic access. Keys can be banned but never
// deleted, so an audit trail survives revocation.
type APIKey struct {
	key       string
	userID    valueobjects.UserID
	lastUsed  *time.Time
	bannedAt  *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewAPIKey issues a fresh key for the given user
func NewAPIKey(userID valueobjects.UserID) *APIKey {
	now := time.Now()
	return &APIKey{
		key:       uuid.New().String(),
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructAPIKey reconstructs an API key from repository data
func ReconstructAPIKey(
	key string,
	userID valueobjects.UserID,
	lastUsed, bannedAt *time.Time,
	createdAt, updatedAt time.Time,
) *APIKey {
	return &APIKey{
		key:       key,
		userID:    userID,
		lastUsed:  lastUsed,
		bannedAt:  bannedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Key returns the opaque key value
func (k *APIKey) Key() string { return k.key }

// UserID returns the owning user's identifier
func (k *APIKey) UserID() valueobjects.UserID { return k.userID }

// LastUsed returns when the key was last presented, or nil if never
func (k *APIKey) LastUsed() *time.Time { return k.lastUsed }

// BannedAt returns when the key was banned, or nil if active
func (k *APIKey) BannedAt() *time.Time { return k.bannedAt }

// IsBanned reports whether the key has been revoked
func (k *APIKey) IsBanned() bool { return k.bannedAt != nil }

// Touch records a successful use of the key
func (k *APIKey) Touch() {
	now := time.Now()
	k.lastUsed = &now
	k.updatedAt = now
}

// Ban revokes the key; banning an already-banned key keeps the original time
func (k *APIKey) Ban() {
	if k.bannedAt != nil {
		return
	}
	now := time.Now()
	k.bannedAt = &now
	k.updatedAt = now
}

// CreatedAt returns when the key was issued
func (k *APIKey) CreatedAt() time.Time { return k.createdAt }

// UpdatedAt returns when the key was last updated
func (k *APIKey) UpdatedAt() time.Time { return k.updatedAt }

// Equals checks API key equality by key value
func (k *APIKey) Equals(other *APIKey) bool {
	return other != nil && k.key == other.key
}
