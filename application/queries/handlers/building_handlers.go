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

// GetBuildingByIDHandler handles single-building lookups
type GetBuildingByIDHandler struct {
	buildings *services.BuildingService
}

// NewGetBuildingByIDHandler creates a new handler instance
func NewGetBuildingByIDHandler(buildings *services.BuildingService) *GetBuildingByIDHandler {
	return &GetBuildingByIDHandler{buildings: buildings}
}

// Handle executes the get building query
func (h *GetBuildingByIDHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetBuildingByIDQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	id, err := valueobjects.ParseBuildingID(q.BuildingID)
	if err != nil {
		return nil, err
	}

	building, err := h.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := buildingResult(building)
	return &result, nil
}

// GetBuildingByAddressHandler handles exact-address building lookups
type GetBuildingByAddressHandler struct {
	buildings *services.BuildingService
}

// NewGetBuildingByAddressHandler creates a new handler instance
func NewGetBuildingByAddressHandler(buildings *services.BuildingService) *GetBuildingByAddressHandler {
	return &GetBuildingByAddressHandler{buildings: buildings}
}

// Handle executes the get building by address query
func (h *GetBuildingByAddressHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetBuildingByAddressQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	building, err := h.buildings.GetByAddress(ctx, q.Address)
	if err != nil {
		return nil, err
	}

	result := buildingResult(building)
	return &result, nil
}
