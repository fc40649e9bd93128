package commands

import "orgdir/pkg/utils"

// CreateBuildingCommand creates a building at an address with coordinates
type CreateBuildingCommand struct {
	Address   string  `json:"address" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Validate validates the command
func (cmd CreateBuildingCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}
