package valueobjects

import (
	pkgerrors "orgdir/pkg/errors"
)

// OrganizationName is a value object for an organization name
type OrganizationName struct {
	value string
}

// NewOrganizationName creates an organization name with validation
func NewOrganizationName(value string) (OrganizationName, error) {
	if value == "" {
		return OrganizationName{}, pkgerrors.NewValidationError("organization name is empty").
			WithCode(pkgerrors.CodeOrganizationNameEmpty)
	}
	return OrganizationName{value: value}, nil
}

// String returns the underlying name
func (n OrganizationName) String() string { return n.value }

// Equals checks if two organization names are equal
func (n OrganizationName) Equals(other OrganizationName) bool { return n.value == other.value }
