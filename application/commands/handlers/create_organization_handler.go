package handlers

import (
	"context"
	"fmt"

	"orgdir/application/commands"
	"orgdir/application/commands/bus"
	"orgdir/application/services"
	pkgerrors "orgdir/pkg/errors"
)

// CreateOrganizationHandler handles organization creation commands
type CreateOrganizationHandler struct {
	organizations *services.OrganizationService
}

// NewCreateOrganizationHandler creates a new handler instance
func NewCreateOrganizationHandler(organizations *services.OrganizationService) *CreateOrganizationHandler {
	return &CreateOrganizationHandler{organizations: organizations}
}

// Handle executes the create organization command
func (h *CreateOrganizationHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.CreateOrganizationCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	return h.organizations.Create(ctx, command.Name, command.Address, command.Phones, command.ActivityNames)
}
