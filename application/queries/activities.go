package queries

import "orgdir/pkg/utils"

// GetActivityByIDQuery fetches a single activity
type GetActivityByIDQuery struct {
	ActivityID string `json:"activity_id" validate:"required,uuid"`
}

// Validate validates the query
func (q GetActivityByIDQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetActivitiesQuery filters activities by optional name substring and
// direct parent, paginated
type GetActivitiesQuery struct {
	Name     string `json:"name,omitempty"`
	ParentID string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
	Limit    int    `json:"limit" validate:"gte=0,lte=100"`
	Offset   int    `json:"offset" validate:"gte=0"`
}

// Validate validates the query
func (q GetActivitiesQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ActivityResult is the read model for a single activity
type ActivityResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ParentID  string `json:"parent_id,omitempty"`
	Level     int    `json:"level"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ActivitiesPageResult is a page of activities with the pre-slice total
type ActivitiesPageResult struct {
	Items  []ActivityResult `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
