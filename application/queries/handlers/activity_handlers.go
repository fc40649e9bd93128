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

// GetActivityByIDHandler handles single-activity lookups
type GetActivityByIDHandler struct {
	activities *services.ActivityService
}

// NewGetActivityByIDHandler creates a new handler instance
func NewGetActivityByIDHandler(activities *services.ActivityService) *GetActivityByIDHandler {
	return &GetActivityByIDHandler{activities: activities}
}

// Handle executes the get activity query
func (h *GetActivityByIDHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetActivityByIDQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	id, err := valueobjects.ParseActivityID(q.ActivityID)
	if err != nil {
		return nil, err
	}

	activity, err := h.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := activityResult(activity)
	return &result, nil
}

// GetActivitiesHandler handles filtered activity listings
type GetActivitiesHandler struct {
	activities *services.ActivityService
}

// NewGetActivitiesHandler creates a new handler instance
func NewGetActivitiesHandler(activities *services.ActivityService) *GetActivitiesHandler {
	return &GetActivitiesHandler{activities: activities}
}

// Handle executes the list activities query
func (h *GetActivitiesHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetActivitiesQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	var parentID valueobjects.ActivityID
	if q.ParentID != "" {
		var err error
		parentID, err = valueobjects.ParseActivityID(q.ParentID)
		if err != nil {
			return nil, err
		}
	}

	items, total, err := h.activities.Search(ctx, q.Name, parentID, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	results := make([]queries.ActivityResult, 0, len(items))
	for _, activity := range items {
		results = append(results, activityResult(activity))
	}

	return &queries.ActivitiesPageResult{
		Items:  results,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}
