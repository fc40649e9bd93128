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

// CreateActivityHandler handles activity creation commands
type CreateActivityHandler struct {
	activities *services.ActivityService
}

// NewCreateActivityHandler creates a new handler instance
func NewCreateActivityHandler(activities *services.ActivityService) *CreateActivityHandler {
	return &CreateActivityHandler{activities: activities}
}

// Handle executes the create activity command
func (h *CreateActivityHandler) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	command, ok := cmd.(commands.CreateActivityCommand)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	var parentID valueobjects.ActivityID
	if command.ParentID != "" {
		var err error
		parentID, err = valueobjects.ParseActivityID(command.ParentID)
		if err != nil {
			return nil, err
		}
	}

	return h.activities.Create(ctx, command.Name, parentID)
}
