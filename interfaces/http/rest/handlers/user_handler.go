package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orgdir/application/commands"
	"orgdir/application/mediator"
	"orgdir/application/queries"
	"orgdir/domain/core/entities"
	"orgdir/pkg/auth"
	"orgdir/pkg/common"
	pkgerrors "orgdir/pkg/errors"
)

// UserHandler handles registration, login and API key management
type UserHandler struct {
	mediator mediator.IMediator
	tokens   *auth.TokenManager
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(m mediator.IMediator, tokens *auth.TokenManager, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		mediator: m,
		tokens:   tokens,
		errors:   errorHandler,
		logger:   logger,
	}
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse represents the response for user registration
type RegisterResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.mediator.Send(r.Context(), commands.CreateUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, ok := results[0].(*entities.User)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	common.RespondJSON(w, http.StatusCreated, RegisterResponse{
		ID:        user.ID().String(),
		Username:  user.Username().String(),
		CreatedAt: user.CreatedAt().Format(time.RFC3339),
	})
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	Token string             `json:"token"`
	User  *queries.UserResult `json:"user"`
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.mediator.Query(r.Context(), queries.AuthenticateUserQuery{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, ok := result.(*queries.UserResult)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}

// GetUser handles GET /users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.mediator.Query(r.Context(), queries.GetUserByIDQuery{
		UserID: userID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// APIKeyResponse represents the response for API key issuance
type APIKeyResponse struct {
	Key       string `json:"key"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// CreateAPIKey handles POST /users/{userID}/api-keys
func (h *UserHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	results, err := h.mediator.Send(r.Context(), commands.CreateAPIKeyCommand{
		UserID: userID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	apiKey, ok := results[0].(*entities.APIKey)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	common.RespondJSON(w, http.StatusCreated, APIKeyResponse{
		Key:       apiKey.Key(),
		UserID:    apiKey.UserID().String(),
		CreatedAt: apiKey.CreatedAt().Format(time.RFC3339),
	})
}

// BanAPIKey handles DELETE /api-keys/{key}
func (h *UserHandler) BanAPIKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if _, err := h.mediator.Send(r.Context(), commands.BanAPIKeyCommand{Key: key}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
