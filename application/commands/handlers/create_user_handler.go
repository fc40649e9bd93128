package handlers

import (
	"context"
	"fmt"

	"orgdir/application/commands"
	"orgdir/application/commands/bus"
	"orgdir/application/services"
	pkgerrors "orgdir/pkg/errors"
)

// CreateUserHandler handles user registration commands
type CreateUserHandler struct {
	users *services.UserService
}

// NewCreateUserHandler creates a new handler instance
func NewCreateUserHandler(users *services.UserService) *CreateUserHandler {
	return &CreateUserHandler{users: users}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.CreateUserCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	return h.users.Create(ctx, command.Username, command.Password)
}
