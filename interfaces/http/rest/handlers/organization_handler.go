package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"orgdir/application/commands"
	"orgdir/application/mediator"
	"orgdir/application/queries"
	"orgdir/domain/core/entities"
	"orgdir/pkg/common"
	pkgerrors "orgdir/pkg/errors"
)

// OrganizationHandler handles organization-related HTTP requests
type OrganizationHandler struct {
	mediator mediator.IMediator
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(m mediator.IMediator, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		mediator: m,
		errors:   errorHandler,
		logger:   logger,
	}
}

// CreateOrganizationRequest represents the request body for creating an organization
type CreateOrganizationRequest struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phones        []string `json:"phones,omitempty"`
	ActivityNames []string `json:"activity_names,omitempty"`
}

// CreateOrganizationResponse represents the response for creating an organization
type CreateOrganizationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateOrganization handles POST /organizations
func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.mediator.Send(r.Context(), commands.CreateOrganizationCommand{
		Name:          req.Name,
		Address:       req.Address,
		Phones:        req.Phones,
		ActivityNames: req.ActivityNames,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	organization, ok := results[0].(*entities.Organization)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateOrganizationResponse{
		ID:      organization.ID().String(),
		Name:    organization.Name().String(),
		Address: organization.Building().Address().String(),
	})
}

// GetOrganization handles GET /organizations/{organizationID}
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")

	result, err := h.mediator.Query(r.Context(), queries.GetOrganizationByIDQuery{
		OrganizationID: organizationID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchByName handles GET /organizations/search/by-name
func (h *OrganizationHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.SearchOrganizationsByNameQuery{
		Name:   r.URL.Query().Get("name"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchByAddress handles GET /organizations/search/by-address
func (h *OrganizationHandler) SearchByAddress(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.GetOrganizationsByAddressQuery{
		Address: r.URL.Query().Get("address"),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchByActivity handles GET /organizations/search/by-activity
func (h *OrganizationHandler) SearchByActivity(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.GetOrganizationsByActivityQuery{
		Activity: r.URL.Query().Get("activity"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchByRadius handles GET /organizations/search/by-radius
func (h *OrganizationHandler) SearchByRadius(w http.ResponseWriter, r *http.Request) {
	latitude, latErr := parseFloatParam(r, "latitude")
	longitude, lonErr := parseFloatParam(r, "longitude")
	radius, radErr := parseFloatParam(r, "radius_meters")
	if latErr != nil || lonErr != nil || radErr != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "latitude, longitude and radius_meters must be valid numbers")
		return
	}

	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.GetOrganizationsByRadiusQuery{
		Latitude:     latitude,
		Longitude:    longitude,
		RadiusMeters: radius,
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SearchByRectangle handles GET /organizations/search/by-rectangle
func (h *OrganizationHandler) SearchByRectangle(w http.ResponseWriter, r *http.Request) {
	latMin, err1 := parseFloatParam(r, "lat_min")
	latMax, err2 := parseFloatParam(r, "lat_max")
	lonMin, err3 := parseFloatParam(r, "lon_min")
	lonMax, err4 := parseFloatParam(r, "lon_max")
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "lat_min, lat_max, lon_min and lon_max must be valid numbers")
		return
	}

	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.GetOrganizationsByRectangleQuery{
		LatMin: latMin,
		LatMax: latMax,
		LonMin: lonMin,
		LonMax: lonMax,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	return strconv.ParseFloat(r.URL.Query().Get(name), 64)
}
