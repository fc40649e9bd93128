package valueobjects

import (
	"fmt"
	"math"

	pkgerrors "orgdir/pkg/errors"
)

// EarthRadiusMeters is the mean Earth radius used by the Haversine distance
const EarthRadiusMeters = 6371000.0

// Coordinates is a value object for a geographic point.
// Latitude and longitude are validated independently so each axis
// reports its own failure.
type Coordinates struct {
	latitude  float64
	longitude float64
}

// NewCoordinates creates coordinates with range validation
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinates{}, pkgerrors.NewValidationError(
			fmt.Sprintf("invalid latitude %v: must be between -90 and 90 degrees", latitude)).
			WithCode(pkgerrors.CodeInvalidLatitude).
			WithDetail("latitude", latitude)
	}

	if longitude < -180 || longitude > 180 {
		return Coordinates{}, pkgerrors.NewValidationError(
			fmt.Sprintf("invalid longitude %v: must be between -180 and 180 degrees", longitude)).
			WithCode(pkgerrors.CodeInvalidLongitude).
			WithDetail("longitude", longitude)
	}

	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees
func (c Coordinates) Latitude() float64 { return c.latitude }

// Longitude returns the longitude in degrees
func (c Coordinates) Longitude() float64 { return c.longitude }

// Equals checks if two coordinate pairs are equal
func (c Coordinates) Equals(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// DistanceTo returns the Haversine great-circle distance to other, in meters
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	lat1 := c.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - c.latitude) * math.Pi / 180
	dLon := (other.longitude - c.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether the point lies within radiusMeters of center.
// A point exactly on the boundary is inside.
func (c Coordinates) WithinRadius(center Coordinates, radiusMeters float64) bool {
	return c.DistanceTo(center) <= radiusMeters
}

// WithinBoundingBox reports whether the point lies inside the box, edges
// inclusive. A minimum above its maximum matches nothing; boxes never wrap
// the antimeridian.
func (c Coordinates) WithinBoundingBox(latMin, latMax, lonMin, lonMax float64) bool {
	return c.latitude >= latMin && c.latitude <= latMax &&
		c.longitude >= lonMin && c.longitude <= lonMax
}
