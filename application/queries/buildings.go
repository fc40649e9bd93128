package queries

import "orgdir/pkg/utils"

// GetBuildingByIDQuery fetches a single building
type GetBuildingByIDQuery struct {
	BuildingID string `json:"building_id" validate:"required,uuid"`
}

// Validate validates the query
func (q GetBuildingByIDQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetBuildingByAddressQuery fetches the building at an exact address
type GetBuildingByAddressQuery struct {
	Address string `json:"address" validate:"required"`
}

// Validate validates the query
func (q GetBuildingByAddressQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// BuildingResult is the read model for a single building
type BuildingResult struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
