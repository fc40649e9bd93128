package handlers

import (
	"context"
	"fmt"

	"orgdir/application/queries"
	"orgdir/application/queries/bus"
	"orgdir/application/services"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// GetOrganizationByIDHandler handles single-organization lookups
type GetOrganizationByIDHandler struct {
	organizations *services.OrganizationService
}

// NewGetOrganizationByIDHandler creates a new handler instance
func NewGetOrganizationByIDHandler(organizations *services.OrganizationService) *GetOrganizationByIDHandler {
	return &GetOrganizationByIDHandler{organizations: organizations}
}

// Handle executes the get organization query
func (h *GetOrganizationByIDHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetOrganizationByIDQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	id, err := valueobjects.ParseOrganizationID(q.OrganizationID)
	if err != nil {
		return nil, err
	}

	organization, err := h.organizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := organizationResult(organization)
	return &result, nil
}

// SearchOrganizationsByNameHandler handles name substring searches
type SearchOrganizationsByNameHandler struct {
	organizations *services.OrganizationService
}

// NewSearchOrganizationsByNameHandler creates a new handler instance
func NewSearchOrganizationsByNameHandler(organizations *services.OrganizationService) *SearchOrganizationsByNameHandler {
	return &SearchOrganizationsByNameHandler{organizations: organizations}
}

// Handle executes the search by name query
func (h *SearchOrganizationsByNameHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.SearchOrganizationsByNameQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	items, total, err := h.organizations.SearchByName(ctx, q.Name, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	return organizationsPage(items, total, q.Limit, q.Offset), nil
}

// GetOrganizationsByAddressHandler handles organization searches by building
// address substring
type GetOrganizationsByAddressHandler struct {
	organizations *services.OrganizationService
}

// NewGetOrganizationsByAddressHandler creates a new handler instance
func NewGetOrganizationsByAddressHandler(organizations *services.OrganizationService) *GetOrganizationsByAddressHandler {
	return &GetOrganizationsByAddressHandler{organizations: organizations}
}

// Handle executes the search by address query
func (h *GetOrganizationsByAddressHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetOrganizationsByAddressQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	items, total, err := h.organizations.SearchByAddress(ctx, q.Address, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	return organizationsPage(items, total, q.Limit, q.Offset), nil
}

// GetOrganizationsByActivityHandler handles activity searches with one
// level of inheritance
type GetOrganizationsByActivityHandler struct {
	organizations *services.OrganizationService
}

// NewGetOrganizationsByActivityHandler creates a new handler instance
func NewGetOrganizationsByActivityHandler(organizations *services.OrganizationService) *GetOrganizationsByActivityHandler {
	return &GetOrganizationsByActivityHandler{organizations: organizations}
}

// Handle executes the search by activity query
func (h *GetOrganizationsByActivityHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetOrganizationsByActivityQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	items, total, err := h.organizations.SearchByActivity(ctx, q.Activity, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	return organizationsPage(items, total, q.Limit, q.Offset), nil
}

// GetOrganizationsByRadiusHandler handles radius searches
type GetOrganizationsByRadiusHandler struct {
	organizations *services.OrganizationService
}

// NewGetOrganizationsByRadiusHandler creates a new handler instance
func NewGetOrganizationsByRadiusHandler(organizations *services.OrganizationService) *GetOrganizationsByRadiusHandler {
	return &GetOrganizationsByRadiusHandler{organizations: organizations}
}

// Handle executes the search by radius query
func (h *GetOrganizationsByRadiusHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetOrganizationsByRadiusQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	items, total, err := h.organizations.SearchByRadius(ctx, q.Latitude, q.Longitude, q.RadiusMeters, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	return organizationsPage(items, total, q.Limit, q.Offset), nil
}

// GetOrganizationsByRectangleHandler handles bounding-box searches
type GetOrganizationsByRectangleHandler struct {
	organizations *services.OrganizationService
}

// NewGetOrganizationsByRectangleHandler creates a new handler instance
func NewGetOrganizationsByRectangleHandler(organizations *services.OrganizationService) *GetOrganizationsByRectangleHandler {
	return &GetOrganizationsByRectangleHandler{organizations: organizations}
}

// Handle executes the search by rectangle query
func (h *GetOrganizationsByRectangleHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetOrganizationsByRectangleQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	items, total, err := h.organizations.SearchByRectangle(ctx, q.LatMin, q.LatMax, q.LonMin, q.LonMax, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	return organizationsPage(items, total, q.Limit, q.Offset), nil
}
