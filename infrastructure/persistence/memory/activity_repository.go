package memory

import (
	"context"
	"strings"
	"sync"

	"orgdir/application/ports"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// ActivityRepository is a slice-backed activity store. Matching on names is
// case-insensitive, like the SQL ILIKE queries it stands in for.
type ActivityRepository struct {
	mu    sync.RWMutex
	items []*entities.Activity
}

// NewActivityRepository creates an empty in-memory activity repository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Add persists a new activity, rejecting duplicate names
func (r *ActivityRepository) Add(_ context.Context, activity *entities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := activity.Name().String()
	for _, existing := range r.items {
		if strings.EqualFold(existing.Name().String(), name) {
			return pkgerrors.NewActivityNameExistsError(name)
		}
	}

	r.items = append(r.items, activity)
	return nil
}

// GetByID retrieves an activity by ID, nil if absent
func (r *ActivityRepository) GetByID(_ context.Context, id valueobjects.ActivityID) (*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, activity := range r.items {
		if activity.ID().Equals(id) {
			return activity, nil
		}
	}
	return nil, nil
}

// GetByName retrieves an activity by exact name, case-insensitive, nil if absent
func (r *ActivityRepository) GetByName(_ context.Context, name string) (*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, activity := range r.items {
		if strings.EqualFold(activity.Name().String(), name) {
			return activity, nil
		}
	}
	return nil, nil
}

// Filter finds activities matching the given criteria in insertion order
func (r *ActivityRepository) Filter(_ context.Context, filter ports.ActivityFilter) ([]*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entities.Activity, 0)
	for _, activity := range r.items {
		if filter.Name != "" &&
			!strings.Contains(strings.ToLower(activity.Name().String()), strings.ToLower(filter.Name)) {
			continue
		}
		if !filter.ParentID.IsZero() && !activity.ParentID().Equals(filter.ParentID) {
			continue
		}
		matches = append(matches, activity)
	}
	return matches, nil
}
