package memory

import (
	"context"
	"strings"
	"sync"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// BuildingRepository is a slice-backed building store. Geo predicates are
// evaluated linearly over all buildings.
type BuildingRepository struct {
	mu    sync.RWMutex
	items []*entities.Building
}

// NewBuildingRepository creates an empty in-memory building repository
func NewBuildingRepository() *BuildingRepository {
	return &BuildingRepository{}
}

// Add persists a new building, rejecting duplicate addresses
func (r *BuildingRepository) Add(_ context.Context, building *entities.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	address := building.Address().String()
	for _, existing := range r.items {
		if strings.EqualFold(existing.Address().String(), address) {
			return pkgerrors.NewBuildingAddressExistsError(address)
		}
	}

	r.items = append(r.items, building)
	return nil
}

// GetByID retrieves a building by ID, nil if absent
func (r *BuildingRepository) GetByID(_ context.Context, id valueobjects.BuildingID) (*entities.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, building := range r.items {
		if building.ID().Equals(id) {
			return building, nil
		}
	}
	return nil, nil
}

// GetByAddress retrieves a building by exact address, case-insensitive, nil if absent
func (r *BuildingRepository) GetByAddress(_ context.Context, address string) (*entities.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, building := range r.items {
		if strings.EqualFold(building.Address().String(), address) {
			return building, nil
		}
	}
	return nil, nil
}

// FilterByAddress keeps buildings whose address contains the query string,
// case-insensitive
func (r *BuildingRepository) FilterByAddress(_ context.Context, address string) ([]*entities.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(address)
	matches := make([]*entities.Building, 0)
	for _, building := range r.items {
		if strings.Contains(strings.ToLower(building.Address().String()), query) {
			matches = append(matches, building)
		}
	}
	return matches, nil
}

// FilterByRadius keeps buildings within radiusMeters of the center point,
// boundary inclusive
func (r *BuildingRepository) FilterByRadius(_ context.Context, latitude, longitude, radiusMeters float64) ([]*entities.Building, error) {
	center, err := valueobjects.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Building, 0)
	for _, building := range r.items {
		if building.Coordinates().WithinRadius(center, radiusMeters) {
			matches = append(matches, building)
		}
	}
	return matches, nil
}

// FilterByBoundingBox keeps buildings inside the rectangle, edges inclusive
func (r *BuildingRepository) FilterByBoundingBox(_ context.Context, latMin, latMax, lonMin, lonMax float64) ([]*entities.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Building, 0)
	for _, building := range r.items {
		if building.Coordinates().WithinBoundingBox(latMin, latMax, lonMin, lonMax) {
			matches = append(matches, building)
		}
	}
	return matches, nil
}
