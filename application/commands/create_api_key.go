package commands

import "orgdir/pkg/utils"

// CreateAPIKeyCommand issues a new API key for a user
type CreateAPIKeyCommand struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// Validate validates the command
func (cmd CreateAPIKeyCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// BanAPIKeyCommand revokes an API key
type BanAPIKeyCommand struct {
	Key string `json:"key" validate:"required,uuid"`
}

// Validate validates the command
func (cmd BanAPIKeyCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
