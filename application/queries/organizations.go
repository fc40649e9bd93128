package queries

import "orgdir/pkg/utils"

// GetOrganizationByIDQuery fetches a single organization
type GetOrganizationByIDQuery struct {
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
}

// Validate validates the query
func (q GetOrganizationByIDQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// SearchOrganizationsByNameQuery finds organizations whose name contains
// the given string, case-insensitive
type SearchOrganizationsByNameQuery struct {
	Name   string `json:"name" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0,lte=100"`
	Offset int    `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q SearchOrganizationsByNameQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetOrganizationsByAddressQuery finds organizations in buildings whose
// address contains the query string
type GetOrganizationsByAddressQuery struct {
	Address string `json:"address" validate:"required"`
	Limit   int    `json:"limit" validate:"gte=0,lte=100"`
	Offset  int    `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q GetOrganizationsByAddressQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetOrganizationsByActivityQuery finds organizations practicing the named
// activity or one of its direct children
type GetOrganizationsByActivityQuery struct {
	Activity string `json:"activity" validate:"required"`
	Limit    int    `json:"limit" validate:"gte=0,lte=100"`
	Offset   int    `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q GetOrganizationsByActivityQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetOrganizationsByRadiusQuery finds organizations in buildings within
// RadiusMeters of the center point
type GetOrganizationsByRadiusQuery struct {
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"gte=0"`
	Limit        int     `json:"limit" validate:"gte=0,lte=100"`
	Offset       int     `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q GetOrganizationsByRadiusQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetOrganizationsByRectangleQuery finds organizations in buildings inside
// the bounding box, edges inclusive. A minimum above the corresponding
// maximum matches nothing rather than failing.
type GetOrganizationsByRectangleQuery struct {
	LatMin float64 `json:"lat_min" validate:"gte=-90,lte=90"`
	LatMax float64 `json:"lat_max" validate:"gte=-90,lte=90"`
	LonMin float64 `json:"lon_min" validate:"gte=-180,lte=180"`
	LonMax float64 `json:"lon_max" validate:"gte=-180,lte=180"`
	Limit  int     `json:"limit" validate:"gte=0,lte=100"`
	Offset int     `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q GetOrganizationsByRectangleQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// OrganizationResult is the read model for a single organization
type OrganizationResult struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Building   BuildingResult `json:"building"`
	Phones     []string       `json:"phones"`
	Activities []string       `json:"activities"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// OrganizationsPageResult is a page of organizations with the de-duplicated
// total counted before slicing
type OrganizationsPageResult struct {
	Items  []OrganizationResult `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
