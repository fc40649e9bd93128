package handlers

import (
	"context"
	"fmt"

	"orgdir/application/commands"
	"orgdir/application/commands/bus"
	"orgdir/application/services"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// CreateAPIKeyHandler handles API key issuance commands
type CreateAPIKeyHandler struct {
	keys *services.APIKeyService
}

// NewCreateAPIKeyHandler creates a new handler instance
func NewCreateAPIKeyHandler(keys *services.APIKeyService) *CreateAPIKeyHandler {
	return &CreateAPIKeyHandler{keys: keys}
}

// Handle executes the create API key command
func (h *CreateAPIKeyHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.CreateAPIKeyCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	userID, err := valueobjects.ParseUserID(command.UserID)
	if err != nil {
		return nil, err
	}

	return h.keys.Create(ctx, userID)
}

// BanAPIKeyHandler handles API key revocation commands
type BanAPIKeyHandler struct {
	keys *services.APIKeyService
}

// NewBanAPIKeyHandler creates a new handler instance
func NewBanAPIKeyHandler(keys *services.APIKeyService) *BanAPIKeyHandler {
	return &BanAPIKeyHandler{keys: keys}
}

// Handle executes the ban API key command
func (h *BanAPIKeyHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.BanAPIKeyCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	return h.keys.Ban(ctx, command.Key)
}
