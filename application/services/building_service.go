package services

import (
	"context"

	"go.uber.org/zap"

	"orgdir/application/ports"
	"orgdir/domain/config"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// BuildingService manages buildings and the two geospatial predicates.
// The predicates are contracts on the repository: the in-memory
// implementation evaluates them linearly, the Postgres one pushes them down
// to SQL, and either way the service's call shape stays the same.
type BuildingService struct {
	buildings ports.BuildingRepository
	cfg       *config.DomainConfig
	logger    *zap.Logger
}

// NewBuildingService creates a new building service
func NewBuildingService(
	buildings ports.BuildingRepository,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *BuildingService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &BuildingService{
		buildings: buildings,
		cfg:       cfg,
		logger:    logger,
	}
}

// Create constructs and persists a building. Address and coordinate
// validation happens in the value objects.
func (s *BuildingService) Create(ctx context.Context, address string, latitude, longitude float64) (*entities.Building, error) {
	addressVO, err := valueobjects.NewAddressWithConfig(address, s.cfg)
	if err != nil {
		return nil, err
	}

	coordinates, err := valueobjects.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, err
	}

	building := entities.NewBuilding(addressVO, coordinates)

	if err := s.buildings.Add(ctx, building); err != nil {
		return nil, err
	}

	s.logger.Debug("Building created",
		zap.String("id", building.ID().String()),
		zap.String("address", address),
	)

	return building, nil
}

// GetByID returns the building with the given ID, or a not-found error
func (s *BuildingService) GetByID(ctx context.Context, id valueobjects.BuildingID) (*entities.Building, error) {
	building, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, pkgerrors.NewBuildingNotFoundError(id.String())
	}
	return building, nil
}

// GetByAddress returns the building with the exact address, or a not-found error
func (s *BuildingService) GetByAddress(ctx context.Context, address string) (*entities.Building, error) {
	building, err := s.buildings.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, pkgerrors.NewBuildingNotFoundError(address)
	}
	return building, nil
}

// FilterByRadius returns buildings within radiusMeters of the center,
// great-circle distance, ties inclusive
func (s *BuildingService) FilterByRadius(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*entities.Building, error) {
	return s.buildings.FilterByRadius(ctx, latitude, longitude, radiusMeters)
}

// FilterByBoundingBox returns buildings inside the rectangle, edges inclusive
func (s *BuildingService) FilterByBoundingBox(ctx context.Context, latMin, latMax, lonMin, lonMax float64) ([]*entities.Building, error) {
	return s.buildings.FilterByBoundingBox(ctx, latMin, latMax, lonMin, lonMax)
}
