package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// Identifiers are value objects: immutable, no identity beyond their value.
// Each entity kind gets its own type so an ActivityID can never be passed
// where a BuildingID is expected.

// ActivityID uniquely identifies an activity
type ActivityID struct {
	value string
}

// NewActivityID creates a new random ActivityID
func NewActivityID() ActivityID {
	return ActivityID{value: uuid.New().String()}
}

// ParseActivityID creates an ActivityID from an existing string
func ParseActivityID(id string) (ActivityID, error) {
	if err := validateID(id, "activity ID"); err != nil {
		return ActivityID{}, err
	}
	return ActivityID{value: id}, nil
}

// String returns the string representation of the ActivityID
func (id ActivityID) String() string { return id.value }

// Equals checks if two ActivityIDs are equal
func (id ActivityID) Equals(other ActivityID) bool { return id.value == other.value }

// IsZero checks if the ActivityID is the zero value
func (id ActivityID) IsZero() bool { return id.value == "" }

// BuildingID uniquely identifies a building
type BuildingID struct {
	value string
}

// NewBuildingID creates a new random BuildingID
func NewBuildingID() BuildingID {
	return BuildingID{value: uuid.New().String()}
}

// ParseBuildingID creates a BuildingID from an existing string
func ParseBuildingID(id string) (BuildingID, error) {
	if err := validateID(id, "building ID"); err != nil {
		return BuildingID{}, err
	}
	return BuildingID{value: id}, nil
}

// String returns the string representation of the BuildingID
func (id BuildingID) String() string { return id.value }

// Equals checks if two BuildingIDs are equal
func (id BuildingID) Equals(other BuildingID) bool { return id.value == other.value }

// IsZero checks if the BuildingID is the zero value
func (id BuildingID) IsZero() bool { return id.value == "" }

// OrganizationID uniquely identifies an organization
type OrganizationID struct {
	value string
}

// NewOrganizationID creates a new random OrganizationID
func NewOrganizationID() OrganizationID {
	return OrganizationID{value: uuid.New().String()}
}

// ParseOrganizationID creates an OrganizationID from an existing string
func ParseOrganizationID(id string) (OrganizationID, error) {
	if err := validateID(id, "organization ID"); err != nil {
		return OrganizationID{}, err
	}
	return OrganizationID{value: id}, nil
}

// String returns the string representation of the OrganizationID
func (id OrganizationID) String() string { return id.value }

// Equals checks if two OrganizationIDs are equal
func (id OrganizationID) Equals(other OrganizationID) bool { return id.value == other.value }

// IsZero checks if the OrganizationID is the zero value
func (id OrganizationID) IsZero() bool { return id.value == "" }

// UserID uniquely identifies a user
type UserID struct {
	value string
}

// NewUserID creates a new random UserID
func NewUserID() UserID {
	return UserID{value: uuid.New().String()}
}

// ParseUserID creates a UserID from an existing string
func ParseUserID(id string) (UserID, error) {
	if err := validateID(id, "user ID"); err != nil {
		return UserID{}, err
	}
	return UserID{value: id}, nil
}

// String returns the string representation of the UserID
func (id UserID) String() string { return id.value }

// Equals checks if two UserIDs are equal
func (id UserID) Equals(other UserID) bool { return id.value == other.value }

// IsZero checks if the UserID is the zero value
func (id UserID) IsZero() bool { return id.value == "" }

func validateID(id, kind string) error {
	if id == "" {
		return errors.New(kind + " cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(kind + " must be a valid UUID")
	}
	return nil
}
