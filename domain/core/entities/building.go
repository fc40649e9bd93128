package entities

import (
	"time"

	"orgdir/domain/core/valueobjects"
)

// Building is a physical location with an address and geographic coordinates.
// Buildings are immutable after creation.
type Building struct {
	id          valueobjects.BuildingID
	address     valueobjects.Address
	coordinates valueobjects.Coordinates
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBuilding creates a building. The address and coordinates carry their
// own validation, so construction cannot produce an invalid building.
func NewBuilding(address valueobjects.Address, coordinates valueobjects.Coordinates) *Building {
	now := time.Now()
	return &Building{
		id:          valueobjects.NewBuildingID(),
		address:     address,
		coordinates: coordinates,
		createdAt:   now,
		updatedAt:   now,
	}
}

// ReconstructBuilding reconstructs a building from repository data
func ReconstructBuilding(
	id valueobjects.BuildingID,
	address valueobjects.Address,
	coordinates valueobjects.Coordinates,
	createdAt, updatedAt time.Time,
) *Building {
	return &Building{
		id:          id,
		address:     address,
		coordinates: coordinates,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the building's unique identifier
func (b *Building) ID() valueobjects.BuildingID { return b.id }

// Address returns the building's address
func (b *Building) Address() valueobjects.Address { return b.address }

// Coordinates returns the building's coordinates
func (b *Building) Coordinates() valueobjects.Coordinates { return b.coordinates }

// CreatedAt returns when the building was created
func (b *Building) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns when the building was last updated
func (b *Building) UpdatedAt() time.Time { return b.updatedAt }

// Equals checks building identity
func (b *Building) Equals(other *Building) bool {
	return other != nil && b.id.Equals(other.id)
}
