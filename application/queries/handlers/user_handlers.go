package handlers

import (
	"context"
	"fmt"

	"orgdir/application/queries"
	"orgdir/application/queries/bus"
	"orgdir/application/services"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// GetUserByIDHandler handles single-user lookups
type GetUserByIDHandler struct {
	users *services.UserService
}

// NewGetUserByIDHandler creates a new handler instance
func NewGetUserByIDHandler(users *services.UserService) *GetUserByIDHandler {
	return &GetUserByIDHandler{users: users}
}

// Handle executes the get user query
func (h *GetUserByIDHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetUserByIDQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	id, err := valueobjects.ParseUserID(q.UserID)
	if err != nil {
		return nil, err
	}

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := userResult(user)
	return &result, nil
}

// AuthenticateUserHandler handles credential verification
type AuthenticateUserHandler struct {
	users *services.UserService
}

// NewAuthenticateUserHandler creates a new handler instance
func NewAuthenticateUserHandler(users *services.UserService) *AuthenticateUserHandler {
	return &AuthenticateUserHandler{users: users}
}

// Handle executes the authenticate user query
func (h *AuthenticateUserHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.AuthenticateUserQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	user, err := h.users.Authenticate(ctx, q.Username, q.Password)
	if err != nil {
		return nil, err
	}

	result := userResult(user)
	return &result, nil
}

// GetAPIKeyHandler handles API key verification
type GetAPIKeyHandler struct {
	keys *services.APIKeyService
}

// NewGetAPIKeyHandler creates a new handler instance
func NewGetAPIKeyHandler(keys *services.APIKeyService) *GetAPIKeyHandler {
	return &GetAPIKeyHandler{keys: keys}
}

// Handle executes the get API key query
func (h *GetAPIKeyHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetAPIKeyQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	apiKey, err := h.keys.Verify(ctx, q.Key)
	if err != nil {
		return nil, err
	}

	result := apiKeyResult(apiKey)
	return &result, nil
}
