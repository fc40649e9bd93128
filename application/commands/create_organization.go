package commands

import "orgdir/pkg/utils"

// CreateOrganizationCommand creates an organization in an existing building,
// practicing existing activities
type CreateOrganizationCommand struct {
	Name          string   `json:"name" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Phones        []string `json:"phones" validate:"dive,required"`
	ActivityNames []string `json:"activity_names" validate:"dive,required"`
}

// Validate validates the command
func (cmd CreateOrganizationCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
