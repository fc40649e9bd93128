package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orgdir/application/commands"
	"orgdir/application/mediator"
	"orgdir/application/queries"
	"orgdir/domain/core/entities"
	"orgdir/pkg/common"
	pkgerrors "orgdir/pkg/errors"
)

// BuildingHandler handles building-related HTTP requests
type BuildingHandler struct {
	mediator mediator.IMediator
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(m mediator.IMediator, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{
		mediator: m,
		errors:   errorHandler,
		logger:   logger,
	}
}

// CreateBuildingRequest represents the request body for creating a building
type CreateBuildingRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateBuildingResponse represents the response for creating a building
type CreateBuildingResponse struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateBuilding handles POST /buildings
func (h *BuildingHandler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	var req CreateBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.mediator.Send(r.Context(), commands.CreateBuildingCommand{
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	building, ok := results[0].(*entities.Building)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateBuildingResponse{
		ID:        building.ID().String(),
		Address:   building.Address().String(),
		Latitude:  building.Coordinates().Latitude(),
		Longitude: building.Coordinates().Longitude(),
	})
}

// GetBuilding handles GET /buildings/{buildingID}
func (h *BuildingHandler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	buildingID := chi.URLParam(r, "buildingID")

	result, err := h.mediator.Query(r.Context(), queries.GetBuildingByIDQuery{
		BuildingID: buildingID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetBuildingByAddress handles GET /buildings/by-address
func (h *BuildingHandler) GetBuildingByAddress(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Address parameter is required")
		return
	}

	result, err := h.mediator.Query(r.Context(), queries.GetBuildingByAddressQuery{
		Address: address,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
