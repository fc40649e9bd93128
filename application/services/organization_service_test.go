package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	"orgdir/infrastructure/persistence/memory"
	pkgerrors "orgdir/pkg/errors"
)

type directoryFixture struct {
	activities    *ActivityService
	buildings     *BuildingService
	organizations *OrganizationService
}

func newDirectoryFixture() *directoryFixture {
	logger := zap.NewNop()
	activityRepo := memory.NewActivityRepository()
	buildingRepo := memory.NewBuildingRepository()
	organizationRepo := memory.NewOrganizationRepository()

	return &directoryFixture{
		activities:    NewActivityService(activityRepo, nil, logger),
		buildings:     NewBuildingService(buildingRepo, nil, logger),
		organizations: NewOrganizationService(organizationRepo, buildingRepo, activityRepo, nil, logger),
	}
}

func (f *directoryFixture) mustActivity(t *testing.T, name string, parent *entities.Activity) *entities.Activity {
	t.Helper()
	parentID := valueobjects.ActivityID{}
	if parent != nil {
		parentID = parent.ID()
	}
	activity, err := f.activities.Create(context.Background(), name, parentID)
	require.NoError(t, err)
	return activity
}

func (f *directoryFixture) mustBuilding(t *testing.T, address string, lat, lon float64) *entities.Building {
	t.Helper()
	building, err := f.buildings.Create(context.Background(), address, lat, lon)
	require.NoError(t, err)
	return building
}

func (f *directoryFixture) mustOrganization(t *testing.T, name, address string, activities ...string) *entities.Organization {
	t.Helper()
	organization, err := f.organizations.Create(context.Background(), name, address,
		[]string{"+7 495 123-45-67"}, activities)
	require.NoError(t, err)
	return organization
}

func TestOrganizationCreate(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	f.mustActivity(t, "Food", nil)
	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)

	org := f.mustOrganization(t, "Dairy Farm", "1 Lenina st", "Food")
	assert.Equal(t, "Dairy Farm", org.Name().String())
	assert.Equal(t, "1 Lenina st", org.Building().Address().String())

	t.Run("duplicate name", func(t *testing.T) {
		_, err := f.organizations.Create(ctx, "Dairy Farm", "1 Lenina st", nil, nil)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeOrganizationNameExists, pkgerrors.GetAppError(err).Code)
	})

	t.Run("missing building", func(t *testing.T) {
		_, err := f.organizations.Create(ctx, "Another", "nowhere", nil, nil)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeBuildingNotFound, pkgerrors.GetAppError(err).Code)
	})

	t.Run("missing activity", func(t *testing.T) {
		_, err := f.organizations.Create(ctx, "Another", "1 Lenina st", nil, []string{"Plumbing"})
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeActivityNotFound, pkgerrors.GetAppError(err).Code)
	})
}

func TestSearchByName(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	f.mustOrganization(t, "Dairy Farm", "1 Lenina st")
	f.mustOrganization(t, "Farm Equipment", "1 Lenina st")
	f.mustOrganization(t, "Auto Repair", "1 Lenina st")

	results, total, err := f.organizations.SearchByName(ctx, "farm", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, results, 2)

	results, total, err = f.organizations.SearchByName(ctx, "bakery", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, results)
}

func TestSearchByAddress(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	f.mustBuilding(t, "5 Lenina st", 55.76, 37.62)
	f.mustBuilding(t, "2 Nevsky av", 59.93, 30.33)

	f.mustOrganization(t, "Grocery", "1 Lenina st")
	f.mustOrganization(t, "Butcher", "5 Lenina st")
	f.mustOrganization(t, "Bookstore", "2 Nevsky av")

	// A partial address matches every building whose address contains it
	results, total, err := f.organizations.SearchByAddress(ctx, "Lenina", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	names := organizationNames(results)
	assert.Contains(t, names, "Grocery")
	assert.Contains(t, names, "Butcher")
	assert.NotContains(t, names, "Bookstore")

	// Matching is case-insensitive
	results, total, err = f.organizations.SearchByAddress(ctx, "NEVSKY", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Bookstore", results[0].Name().String())
}

func TestSearchByAddressNoMatch(t *testing.T) {
	f := newDirectoryFixture()

	results, total, err := f.organizations.SearchByAddress(context.Background(), "nowhere", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, results)
}

func TestSearchByActivityInheritsOneLevel(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	food := f.mustActivity(t, "Food", nil)
	meat := f.mustActivity(t, "Meat", food)
	f.mustActivity(t, "Beef", meat)

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	f.mustOrganization(t, "Grocery", "1 Lenina st", "Food")
	f.mustOrganization(t, "Butcher", "1 Lenina st", "Meat")
	f.mustOrganization(t, "Steakhouse", "1 Lenina st", "Beef")

	// Searching the root covers it and its direct children, not grandchildren
	results, total, err := f.organizations.SearchByActivity(ctx, "Food", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	names := organizationNames(results)
	assert.Contains(t, names, "Grocery")
	assert.Contains(t, names, "Butcher")
	assert.NotContains(t, names, "Steakhouse")

	// Searching a mid-level activity expands one level below it
	results, total, err = f.organizations.SearchByActivity(ctx, "Meat", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	names = organizationNames(results)
	assert.Contains(t, names, "Butcher")
	assert.Contains(t, names, "Steakhouse")
}

func TestSearchByActivityMatchesNameExactly(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	f.mustActivity(t, "Food", nil)
	f.mustActivity(t, "Seafood", nil)

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	f.mustOrganization(t, "Grocery", "1 Lenina st", "Food")
	f.mustOrganization(t, "Fishmonger", "1 Lenina st", "Seafood")

	// "Seafood" contains "Food" but is an unrelated root: only the exact
	// name and its direct children count
	results, total, err := f.organizations.SearchByActivity(ctx, "Food", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Grocery", results[0].Name().String())
}

func TestSearchByActivityMissingActivity(t *testing.T) {
	f := newDirectoryFixture()

	results, total, err := f.organizations.SearchByActivity(context.Background(), "Plumbing", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, results)
}

func TestSearchByActivityDeduplicatesBeforePagination(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	food := f.mustActivity(t, "Food", nil)
	f.mustActivity(t, "Meat", food)

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	// Practices both the root and a child: matched twice, counted once
	f.mustOrganization(t, "Grocery", "1 Lenina st", "Food", "Meat")
	f.mustOrganization(t, "Butcher", "1 Lenina st", "Meat")

	results, total, err := f.organizations.SearchByActivity(ctx, "Food", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, results, 2)

	// Pagination applies after deduplication: page size 1 never shows the
	// same organization on two pages
	firstPage, total, err := f.organizations.SearchByActivity(ctx, "Food", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, firstPage, 1)

	secondPage, _, err := f.organizations.SearchByActivity(ctx, "Food", 1, 1)
	require.NoError(t, err)
	require.Len(t, secondPage, 1)
	assert.NotEqual(t, firstPage[0].ID().String(), secondPage[0].ID().String())
}

func TestSearchByRadius(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	near := f.mustBuilding(t, "1 Lenina st", 55.7558, 37.6173)
	f.mustBuilding(t, "2 Nevsky av", 59.9343, 30.3351)

	f.mustOrganization(t, "Grocery", "1 Lenina st")
	f.mustOrganization(t, "Bookstore", "2 Nevsky av")

	results, total, err := f.organizations.SearchByRadius(ctx, 55.7600, 37.6200, 1000, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Grocery", results[0].Name().String())

	// A building exactly on the radius boundary is included
	center, err := valueobjects.NewCoordinates(55.7600, 37.6200)
	require.NoError(t, err)
	distance := near.Coordinates().DistanceTo(center)

	results, total, err = f.organizations.SearchByRadius(ctx, 55.7600, 37.6200, distance, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
}

func TestSearchByRectangle(t *testing.T) {
	f := newDirectoryFixture()
	ctx := context.Background()

	f.mustBuilding(t, "1 Lenina st", 55.75, 37.61)
	f.mustBuilding(t, "2 Nevsky av", 59.93, 30.33)

	f.mustOrganization(t, "Grocery", "1 Lenina st")
	f.mustOrganization(t, "Bookstore", "2 Nevsky av")

	results, total, err := f.organizations.SearchByRectangle(ctx, 55, 56, 37, 38, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Grocery", results[0].Name().String())

	// Edges are inclusive
	results, total, err = f.organizations.SearchByRectangle(ctx, 55.75, 56, 37.61, 38, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
}

func TestGetByIDNotFound(t *testing.T) {
	f := newDirectoryFixture()

	_, err := f.organizations.GetByID(context.Background(), valueobjects.NewOrganizationID())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeOrganizationNotFound, pkgerrors.GetAppError(err).Code)
}

func organizationNames(organizations []*entities.Organization) []string {
	names := make([]string, 0, len(organizations))
	for _, org := range organizations {
		names = append(names, org.Name().String())
	}
	return names
}
