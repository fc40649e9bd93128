package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid center", 0, 0, false},
		{"valid moscow", 55.7558, 37.6173, false},
		{"latitude at north pole", 90, 0, false},
		{"latitude at south pole", -90, 0, false},
		{"longitude at antimeridian", 0, 180, false},
		{"longitude at negative antimeridian", 0, -180, false},
		{"latitude too high", 90.0001, 0, true},
		{"latitude too low", -90.0001, 0, true},
		{"longitude too high", 0, 180.0001, true},
		{"longitude too low", 0, -180.0001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := NewCoordinates(tt.latitude, tt.longitude)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, coords.Latitude())
			assert.Equal(t, tt.longitude, coords.Longitude())
		})
	}
}

func TestDistanceTo(t *testing.T) {
	moscow, err := NewCoordinates(55.7558, 37.6173)
	require.NoError(t, err)
	spb, err := NewCoordinates(59.9343, 30.3351)
	require.NoError(t, err)

	distance := moscow.DistanceTo(spb)

	// Moscow to Saint Petersburg is roughly 634 km
	assert.InDelta(t, 634000, distance, 5000)

	// Distance is symmetric and zero to itself
	assert.InDelta(t, distance, spb.DistanceTo(moscow), 0.001)
	assert.Zero(t, moscow.DistanceTo(moscow))
}

func TestWithinRadius(t *testing.T) {
	center, err := NewCoordinates(55.7558, 37.6173)
	require.NoError(t, err)
	nearby, err := NewCoordinates(55.7600, 37.6200)
	require.NoError(t, err)
	faraway, err := NewCoordinates(59.9343, 30.3351)
	require.NoError(t, err)

	assert.True(t, nearby.WithinRadius(center, 1000))
	assert.False(t, faraway.WithinRadius(center, 1000))

	// A point exactly on the boundary is inside
	distance := nearby.DistanceTo(center)
	assert.True(t, nearby.WithinRadius(center, distance))

	// Zero radius still matches the center itself
	assert.True(t, center.WithinRadius(center, 0))
}

func TestWithinBoundingBox(t *testing.T) {
	point, err := NewCoordinates(55.0, 37.0)
	require.NoError(t, err)

	assert.True(t, point.WithinBoundingBox(54, 56, 36, 38))
	assert.False(t, point.WithinBoundingBox(56, 58, 36, 38))
	assert.False(t, point.WithinBoundingBox(54, 56, 38, 40))

	// Edges are inclusive on all four sides
	assert.True(t, point.WithinBoundingBox(55, 56, 37, 38))
	assert.True(t, point.WithinBoundingBox(54, 55, 36, 37))
	assert.True(t, point.WithinBoundingBox(55, 55, 37, 37))
}
