package entities

import (
	"time"

	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// Organization is a business entity located in exactly one building and
// practicing a set of activities. The building and activity references are
// resolved before construction and never change afterwards.
type Organization struct {
	id         valueobjects.OrganizationID
	name       valueobjects.OrganizationName
	building   *Building
	phones     []valueobjects.Phone
	activities []*Activity
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrganization creates an organization with a fully resolved building
// and activity set
func NewOrganization(
	name valueobjects.OrganizationName,
	building *Building,
	phones []valueobjects.Phone,
	activities []*Activity,
) (*Organization, error) {
	if building == nil {
		return nil, pkgerrors.NewValidationError("organization building cannot be nil")
	}

	now := time.Now()
	return &Organization{
		id:         valueobjects.NewOrganizationID(),
		name:       name,
		building:   building,
		phones:     append([]valueobjects.Phone(nil), phones...),
		activities: append([]*Activity(nil), activities...),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructOrganization reconstructs an organization from repository data
func ReconstructOrganization(
	id valueobjects.OrganizationID,
	name valueobjects.OrganizationName,
	building *Building,
	phones []valueobjects.Phone,
	activities []*Activity,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if building == nil {
		return nil, pkgerrors.NewValidationError("organization building cannot be nil")
	}

	return &Organization{
		id:         id,
		name:       name,
		building:   building,
		phones:     append([]valueobjects.Phone(nil), phones...),
		activities: append([]*Activity(nil), activities...),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the organization's unique identifier
func (o *Organization) ID() valueobjects.OrganizationID { return o.id }

// Name returns the organization's name
func (o *Organization) Name() valueobjects.OrganizationName { return o.name }

// Building returns the building the organization occupies
func (o *Organization) Building() *Building { return o.building }

// Phones returns a copy of the organization's phone numbers, in order
func (o *Organization) Phones() []valueobjects.Phone {
	phones := make([]valueobjects.Phone, len(o.phones))
	copy(phones, o.phones)
	return phones
}

// Activities returns a copy of the organization's activity references
func (o *Organization) Activities() []*Activity {
	activities := make([]*Activity, len(o.activities))
	copy(activities, o.activities)
	return activities
}

// PracticesActivity reports whether the organization practices the named activity
func (o *Organization) PracticesActivity(name valueobjects.ActivityName) bool {
	for _, activity := range o.activities {
		if activity.Name().Equals(name) {
			return true
		}
	}
	return false
}

// CreatedAt returns when the organization was created
func (o *Organization) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the organization was last updated
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

// Equals checks organization identity; deduplication in searches relies on it
func (o *Organization) Equals(other *Organization) bool {
	return other != nil && o.id.Equals(other.id)
}
