package ports

import (
	"context"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
)

// ActivityFilter narrows activity lookups. Zero-valued fields are ignored:
// Name is a case-insensitive substring match, ParentID an exact match on the
// direct parent (one level only — deeper inheritance is the organization
// service's concern).
type ActivityFilter struct {
	Name     string
	ParentID valueobjects.ActivityID
}

// ActivityRepository defines the interface for activity persistence.
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation.
type ActivityRepository interface {
	// Add persists a new activity
	Add(ctx context.Context, activity *entities.Activity) error

	// GetByID retrieves an activity by its ID, nil if absent
	GetByID(ctx context.Context, id valueobjects.ActivityID) (*entities.Activity, error)

	// GetByName retrieves an activity by exact name (case-insensitive), nil if absent
	GetByName(ctx context.Context, name string) (*entities.Activity, error)

	// Filter finds activities matching the given criteria
	Filter(ctx context.Context, filter ActivityFilter) ([]*entities.Activity, error)
}

// BuildingRepository defines the interface for building persistence
type BuildingRepository interface {
	// Add persists a new building
	Add(ctx context.Context, building *entities.Building) error

	// GetByID retrieves a building by its ID, nil if absent
	GetByID(ctx context.Context, id valueobjects.BuildingID) (*entities.Building, error)

	// GetByAddress retrieves a building by exact address (case-insensitive), nil if absent
	GetByAddress(ctx context.Context, address string) (*entities.Building, error)

	// FilterByAddress keeps buildings whose address contains the query
	// string, case-insensitive
	FilterByAddress(ctx context.Context, address string) ([]*entities.Building, error)

	// FilterByRadius keeps buildings within radiusMeters of the center,
	// great-circle distance, ties inclusive
	FilterByRadius(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*entities.Building, error)

	// FilterByBoundingBox keeps buildings inside the axis-aligned rectangle,
	// edges inclusive; a box with lonMin > lonMax yields no matches
	FilterByBoundingBox(ctx context.Context, latMin, latMax, lonMin, lonMax float64) ([]*entities.Building, error)
}

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	// Add persists a new organization together with its phones and activity links
	Add(ctx context.Context, organization *entities.Organization) error

	// GetByID retrieves an organization by its ID, nil if absent
	GetByID(ctx context.Context, id valueobjects.OrganizationID) (*entities.Organization, error)

	// GetByName finds organizations whose name contains the query string,
	// case-insensitive
	GetByName(ctx context.Context, name string) ([]*entities.Organization, error)

	// GetByBuildingID finds organizations located in the given building
	GetByBuildingID(ctx context.Context, id valueobjects.BuildingID) ([]*entities.Organization, error)

	// GetByActivityName finds organizations practicing the activity with the
	// exact name, case-insensitive
	GetByActivityName(ctx context.Context, name string) ([]*entities.Organization, error)
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Add persists a new user
	Add(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID, nil if absent
	GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error)

	// GetByUsername retrieves a user by exact username, nil if absent
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// UsernameExists reports whether a user with the username is persisted
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// APIKeyRepository defines the interface for API key persistence
type APIKeyRepository interface {
	// Add persists a new API key
	Add(ctx context.Context, key *entities.APIKey) error

	// GetByKey retrieves an API key by its key value, nil if absent
	GetByKey(ctx context.Context, key string) (*entities.APIKey, error)

	// Update persists changes to an existing key (last-used, banned-at)
	Update(ctx context.Context, key *entities.APIKey) error
}
