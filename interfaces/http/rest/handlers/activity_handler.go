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

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	mediator mediator.IMediator
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(m mediator.IMediator, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		mediator: m,
		errors:   errorHandler,
		logger:   logger,
	}
}

// CreateActivityRequest represents the request body for creating an activity
type CreateActivityRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// CreateActivityResponse represents the response for creating an activity
type CreateActivityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Level    int    `json:"level"`
}

// CreateActivity handles POST /activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := h.mediator.Send(r.Context(), commands.CreateActivityCommand{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	activity, ok := results[0].(*entities.Activity)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected handler result"))
		return
	}

	response := CreateActivityResponse{
		ID:    activity.ID().String(),
		Name:  activity.Name().String(),
		Level: activity.Level(),
	}
	if !activity.IsRoot() {
		response.ParentID = activity.ParentID().String()
	}

	common.RespondJSON(w, http.StatusCreated, response)
}

// GetActivity handles GET /activities/{activityID}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")

	result, err := h.mediator.Query(r.Context(), queries.GetActivityByIDQuery{
		ActivityID: activityID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPage(r, 100)

	result, err := h.mediator.Query(r.Context(), queries.GetActivitiesQuery{
		Name:     r.URL.Query().Get("name"),
		ParentID: r.URL.Query().Get("parent_id"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
