package services

import (
	"context"

	"go.uber.org/zap"

	"orgdir/application/ports"
	"orgdir/domain/config"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	"orgdir/pkg/common"
	pkgerrors "orgdir/pkg/errors"
)

// OrganizationService manages organizations and the composite searches:
// by name, by address, by activity with one level of inheritance, and by
// the two geospatial predicates. Every search deduplicates by organization
// identity before slicing, so the reported total is the de-duplicated count.
type OrganizationService struct {
	organizations ports.OrganizationRepository
	buildings     ports.BuildingRepository
	activities    ports.ActivityRepository
	cfg           *config.DomainConfig
	logger        *zap.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	organizations ports.OrganizationRepository,
	buildings ports.BuildingRepository,
	activities ports.ActivityRepository,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *OrganizationService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &OrganizationService{
		organizations: organizations,
		buildings:     buildings,
		activities:    activities,
		cfg:           cfg,
		logger:        logger,
	}
}

// Create creates an organization in the building at the given address,
// practicing the named activities. The building and every activity must
// already exist; activity resolution fails on the first missing name.
func (s *OrganizationService) Create(
	ctx context.Context,
	name, address string,
	phones, activityNames []string,
) (*entities.Organization, error) {
	existing, err := s.organizations.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, org := range existing {
		if org.Name().String() == name {
			return nil, pkgerrors.NewOrganizationNameExistsError(name)
		}
	}

	building, err := s.buildings.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, pkgerrors.NewBuildingNotFoundError(address)
	}

	activityEntities := make([]*entities.Activity, 0, len(activityNames))
	for _, activityName := range activityNames {
		activity, err := s.activities.GetByName(ctx, activityName)
		if err != nil {
			return nil, err
		}
		if activity == nil {
			return nil, pkgerrors.NewActivityNotFoundError(activityName)
		}
		activityEntities = append(activityEntities, activity)
	}

	nameVO, err := valueobjects.NewOrganizationName(name)
	if err != nil {
		return nil, err
	}

	phoneVOs := make([]valueobjects.Phone, 0, len(phones))
	for _, phone := range phones {
		phoneVO, err := valueobjects.NewPhoneWithConfig(phone, s.cfg)
		if err != nil {
			return nil, err
		}
		phoneVOs = append(phoneVOs, phoneVO)
	}

	organization, err := entities.NewOrganization(nameVO, building, phoneVOs, activityEntities)
	if err != nil {
		return nil, err
	}

	if err := s.organizations.Add(ctx, organization); err != nil {
		return nil, err
	}

	s.logger.Debug("Organization created",
		zap.String("id", organization.ID().String()),
		zap.String("name", name),
		zap.String("building_id", building.ID().String()),
		zap.Int("activities", len(activityEntities)),
	)

	return organization, nil
}

// GetByID returns the organization with the given ID, or a not-found error
func (s *OrganizationService) GetByID(ctx context.Context, id valueobjects.OrganizationID) (*entities.Organization, error) {
	organization, err := s.organizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if organization == nil {
		return nil, pkgerrors.NewOrganizationNotFoundError(id.String())
	}
	return organization, nil
}

// SearchByName finds organizations whose name contains the query string,
// case-insensitive
func (s *OrganizationService) SearchByName(ctx context.Context, name string, limit, offset int) ([]*entities.Organization, int, error) {
	organizations, err := s.organizations.GetByName(ctx, name)
	if err != nil {
		return nil, 0, err
	}

	total := len(organizations)
	return common.Slice(organizations, limit, offset), total, nil
}

// SearchByAddress finds organizations located in buildings whose address
// contains the query string, case-insensitive. No matching building yields
// an empty result, not an error.
func (s *OrganizationService) SearchByAddress(ctx context.Context, address string, limit, offset int) ([]*entities.Organization, int, error) {
	buildings, err := s.buildings.FilterByAddress(ctx, address)
	if err != nil {
		return nil, 0, err
	}
	return s.collectByBuildings(ctx, buildings, limit, offset)
}

// SearchByActivity finds organizations practicing the named activity or one
// of its direct children. Only one level is expanded below the queried root;
// a missing root yields an empty result, not an error.
func (s *OrganizationService) SearchByActivity(ctx context.Context, activityName string, limit, offset int) ([]*entities.Organization, int, error) {
	root, err := s.activities.GetByName(ctx, activityName)
	if err != nil {
		return nil, 0, err
	}
	if root == nil {
		return []*entities.Organization{}, 0, nil
	}

	children, err := s.activities.Filter(ctx, ports.ActivityFilter{ParentID: root.ID()})
	if err != nil {
		return nil, 0, err
	}

	names := make([]string, 0, len(children)+1)
	names = append(names, root.Name().String())
	for _, child := range children {
		names = append(names, child.Name().String())
	}

	var all []*entities.Organization
	for _, name := range names {
		organizations, err := s.organizations.GetByActivityName(ctx, name)
		if err != nil {
			return nil, 0, err
		}
		all = append(all, organizations...)
	}

	unique := dedupeOrganizations(all)
	total := len(unique)
	return common.Slice(unique, limit, offset), total, nil
}

// SearchByRadius finds organizations located in buildings within
// radiusMeters of the center point
func (s *OrganizationService) SearchByRadius(ctx context.Context, latitude, longitude, radiusMeters float64, limit, offset int) ([]*entities.Organization, int, error) {
	buildings, err := s.buildings.FilterByRadius(ctx, latitude, longitude, radiusMeters)
	if err != nil {
		return nil, 0, err
	}
	return s.collectByBuildings(ctx, buildings, limit, offset)
}

// SearchByRectangle finds organizations located in buildings inside the
// bounding box, edges inclusive
func (s *OrganizationService) SearchByRectangle(ctx context.Context, latMin, latMax, lonMin, lonMax float64, limit, offset int) ([]*entities.Organization, int, error) {
	buildings, err := s.buildings.FilterByBoundingBox(ctx, latMin, latMax, lonMin, lonMax)
	if err != nil {
		return nil, 0, err
	}
	return s.collectByBuildings(ctx, buildings, limit, offset)
}

func (s *OrganizationService) collectByBuildings(ctx context.Context, buildings []*entities.Building, limit, offset int) ([]*entities.Organization, int, error) {
	var all []*entities.Organization
	for _, building := range buildings {
		organizations, err := s.organizations.GetByBuildingID(ctx, building.ID())
		if err != nil {
			return nil, 0, err
		}
		all = append(all, organizations...)
	}

	unique := dedupeOrganizations(all)
	total := len(unique)
	return common.Slice(unique, limit, offset), total, nil
}

// dedupeOrganizations removes duplicates by organization identity, keeping
// first-appearance order so pagination is stable across pages.
func dedupeOrganizations(organizations []*entities.Organization) []*entities.Organization {
	seen := make(map[string]bool, len(organizations))
	unique := make([]*entities.Organization, 0, len(organizations))
	for _, org := range organizations {
		id := org.ID().String()
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, org)
	}
	return unique
}
