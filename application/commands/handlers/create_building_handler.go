package handlers

import (
	"context"
	"fmt"

	"orgdir/application/commands"
	"orgdir/application/commands/bus"
	"orgdir/application/services"
	pkgerrors "orgdir/pkg/errors"
)

// CreateBuildingHandler handles building creation commands
type CreateBuildingHandler struct {
	buildings *services.BuildingService
}

// NewCreateBuildingHandler creates a new handler instance
func NewCreateBuildingHandler(buildings *services.BuildingService) *CreateBuildingHandler {
	return &CreateBuildingHandler{buildings: buildings}
}

// Handle executes the create building command
func (h *CreateBuildingHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.CreateBuildingCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	return h.buildings.Create(ctx, command.Address, command.Latitude, command.Longitude)
}
