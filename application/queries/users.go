package queries

import "orgdir/pkg/utils"

// GetUserByIDQuery fetches a single user
type GetUserByIDQuery struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// Validate validates the query
func (q GetUserByIDQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// AuthenticateUserQuery verifies a username/password pair
type AuthenticateUserQuery struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the query
func (q AuthenticateUserQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetAPIKeyQuery fetches and touches an API key, rejecting banned ones
type GetAPIKeyQuery struct {
	Key string `json:"key" validate:"required,uuid"`
}

// Validate validates the query
func (q GetAPIKeyQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// UserResult is the read model for a single user
type UserResult struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// APIKeyResult is the read model for an API key
type APIKeyResult struct {
	Key       string `json:"key"`
	UserID    string `json:"user_id"`
	LastUsed  string `json:"last_used,omitempty"`
	BannedAt  string `json:"banned_at,omitempty"`
	CreatedAt string `json:"created_at"`
}
