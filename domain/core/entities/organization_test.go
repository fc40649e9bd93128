package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

func mustTestBuilding(t *testing.T) *Building {
	t.Helper()
	address, err := valueobjects.NewAddress("1 Lenina st")
	require.NoError(t, err)
	coordinates, err := valueobjects.NewCoordinates(55.75, 37.61)
	require.NoError(t, err)
	return NewBuilding(address, coordinates)
}

func TestReconstructOrganization(t *testing.T) {
	name, err := valueobjects.NewOrganizationName("Dairy Farm")
	require.NoError(t, err)
	building := mustTestBuilding(t)

	id := valueobjects.NewOrganizationID()
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	organization, err := ReconstructOrganization(id, name, building, nil, nil, createdAt, updatedAt)
	require.NoError(t, err)
	assert.True(t, organization.ID().Equals(id))
	assert.Equal(t, "Dairy Farm", organization.Name().String())
	assert.True(t, organization.Building().Equals(building))
	assert.Equal(t, createdAt, organization.CreatedAt())
	assert.Equal(t, updatedAt, organization.UpdatedAt())
}

func TestReconstructOrganizationNilBuilding(t *testing.T) {
	name, err := valueobjects.NewOrganizationName("Dairy Farm")
	require.NoError(t, err)

	_, err = ReconstructOrganization(valueobjects.NewOrganizationID(), name, nil, nil, nil, time.Now(), time.Now())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrorTypeValidation, pkgerrors.GetAppError(err).Type)
}
