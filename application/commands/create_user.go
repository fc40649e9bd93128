package commands

import "orgdir/pkg/utils"

// CreateUserCommand registers a new user account
type CreateUserCommand struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate validates the command
func (cmd CreateUserCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
