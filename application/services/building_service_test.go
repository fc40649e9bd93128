package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orgdir/infrastructure/persistence/memory"
	pkgerrors "orgdir/pkg/errors"
)

func newBuildingService() *BuildingService {
	return NewBuildingService(memory.NewBuildingRepository(), nil, zap.NewNop())
}

func TestBuildingCreate(t *testing.T) {
	s := newBuildingService()
	ctx := context.Background()

	building, err := s.Create(ctx, "1 Lenina st", 55.75, 37.61)
	require.NoError(t, err)
	assert.Equal(t, "1 Lenina st", building.Address().String())
	assert.Equal(t, 55.75, building.Coordinates().Latitude())

	t.Run("duplicate address", func(t *testing.T) {
		_, err := s.Create(ctx, "1 Lenina st", 10, 10)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeBuildingAddressExists, pkgerrors.GetAppError(err).Code)
	})

	t.Run("duplicate address different case", func(t *testing.T) {
		_, err := s.Create(ctx, "1 LENINA ST", 10, 10)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeBuildingAddressExists, pkgerrors.GetAppError(err).Code)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		_, err := s.Create(ctx, "2 Mira av", 91, 0)
		require.Error(t, err)
	})
}

func TestBuildingGetByAddress(t *testing.T) {
	s := newBuildingService()
	ctx := context.Background()

	created, err := s.Create(ctx, "1 Lenina st", 55.75, 37.61)
	require.NoError(t, err)

	found, err := s.GetByAddress(ctx, "1 lenina ST")
	require.NoError(t, err)
	assert.True(t, found.ID().Equals(created.ID()))

	_, err = s.GetByAddress(ctx, "nowhere")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeBuildingNotFound, pkgerrors.GetAppError(err).Code)
}

func TestBuildingFilterByRadius(t *testing.T) {
	s := newBuildingService()
	ctx := context.Background()

	_, err := s.Create(ctx, "1 Lenina st", 55.7558, 37.6173)
	require.NoError(t, err)
	_, err = s.Create(ctx, "2 Nevsky av", 59.9343, 30.3351)
	require.NoError(t, err)

	near, err := s.FilterByRadius(ctx, 55.7600, 37.6200, 1000)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "1 Lenina st", near[0].Address().String())

	all, err := s.FilterByRadius(ctx, 55.7600, 37.6200, 1000000)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBuildingFilterByRadiusMonotonic(t *testing.T) {
	s := newBuildingService()
	ctx := context.Background()

	_, err := s.Create(ctx, "1 Lenina st", 55.7558, 37.6173)
	require.NoError(t, err)
	_, err = s.Create(ctx, "3 Tverskaya st", 55.7640, 37.6050)
	require.NoError(t, err)
	_, err = s.Create(ctx, "2 Nevsky av", 59.9343, 30.3351)
	require.NoError(t, err)

	// Growing the radius never drops a building matched at a smaller one
	var previous map[string]bool
	for _, radius := range []float64{600, 2000, 700000} {
		matches, err := s.FilterByRadius(ctx, 55.7600, 37.6200, radius)
		require.NoError(t, err)

		current := make(map[string]bool, len(matches))
		for _, building := range matches {
			current[building.ID().String()] = true
		}
		for id := range previous {
			assert.True(t, current[id], "radius %v lost a match found at a smaller radius", radius)
		}
		previous = current
	}
}

func TestBuildingFilterByBoundingBox(t *testing.T) {
	s := newBuildingService()
	ctx := context.Background()

	_, err := s.Create(ctx, "1 Lenina st", 55.75, 37.61)
	require.NoError(t, err)
	_, err = s.Create(ctx, "2 Nevsky av", 59.93, 30.33)
	require.NoError(t, err)

	inside, err := s.FilterByBoundingBox(ctx, 55, 56, 37, 38)
	require.NoError(t, err)
	require.Len(t, inside, 1)
	assert.Equal(t, "1 Lenina st", inside[0].Address().String())

	// Box edges are inclusive
	edge, err := s.FilterByBoundingBox(ctx, 55.75, 55.75, 37.61, 37.61)
	require.NoError(t, err)
	assert.Len(t, edge, 1)
}
