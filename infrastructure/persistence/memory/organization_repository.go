package memory

import (
	"context"
	"strings"
	"sync"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// OrganizationRepository is a slice-backed organization store
type OrganizationRepository struct {
	mu    sync.RWMutex
	items []*entities.Organization
}

// NewOrganizationRepository creates an empty in-memory organization repository
func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{}
}

// Add persists a new organization, rejecting duplicate names
func (r *OrganizationRepository) Add(_ context.Context, organization *entities.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := organization.Name().String()
	for _, existing := range r.items {
		if strings.EqualFold(existing.Name().String(), name) {
			return pkgerrors.NewOrganizationNameExistsError(name)
		}
	}

	r.items = append(r.items, organization)
	return nil
}

// GetByID retrieves an organization by ID, nil if absent
func (r *OrganizationRepository) GetByID(_ context.Context, id valueobjects.OrganizationID) (*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, organization := range r.items {
		if organization.ID().Equals(id) {
			return organization, nil
		}
	}
	return nil, nil
}

// GetByName finds organizations whose name contains the query string,
// case-insensitive, in insertion order
func (r *OrganizationRepository) GetByName(_ context.Context, name string) ([]*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(name)
	matches := make([]*entities.Organization, 0)
	for _, organization := range r.items {
		if strings.Contains(strings.ToLower(organization.Name().String()), query) {
			matches = append(matches, organization)
		}
	}
	return matches, nil
}

// GetByBuildingID finds organizations located in the given building
func (r *OrganizationRepository) GetByBuildingID(_ context.Context, id valueobjects.BuildingID) ([]*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Organization, 0)
	for _, organization := range r.items {
		if organization.Building().ID().Equals(id) {
			matches = append(matches, organization)
		}
	}
	return matches, nil
}

// GetByActivityName finds organizations practicing the activity with the
// exact name, case-insensitive
func (r *OrganizationRepository) GetByActivityName(_ context.Context, name string) ([]*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Organization, 0)
	for _, organization := range r.items {
		for _, activity := range organization.Activities() {
			if strings.EqualFold(activity.Name().String(), name) {
				matches = append(matches, organization)
				break
			}
		}
	}
	return matches, nil
}
