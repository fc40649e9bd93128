package commands

import "orgdir/pkg/utils"

// CreateActivityCommand creates an activity, optionally nested under a parent
type CreateActivityCommand struct {
	Name     string `json:"name" validate:"required,max=255"`
	ParentID string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// Validate validates the command
func (cmd CreateActivityCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
