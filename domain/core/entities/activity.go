package entities

import (
	"time"

	"orgdir/domain/config"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// Activity is a named category in a bounded-depth taxonomy tree.
// The parent is a weak back-reference by identity, not an owning pointer;
// roots have a zero parent ID. Activities are immutable after creation.
type Activity struct {
	id        valueobjects.ActivityID
	name      valueobjects.ActivityName
	parentID  valueobjects.ActivityID
	level     int
	createdAt time.Time
	updatedAt time.Time
}

// NewActivity creates an activity under the given parent using default configuration.
// A nil parent creates a root activity at level 1.
func NewActivity(name valueobjects.ActivityName, parent *Activity) (*Activity, error) {
	return NewActivityWithConfig(name, parent, config.DefaultDomainConfig())
}

// NewActivityWithConfig creates an activity with full business rule validation.
// The nesting-level invariant is enforced here: construction is the only
// place an over-deep activity can be rejected, so no invalid instance exists.
func NewActivityWithConfig(name valueobjects.ActivityName, parent *Activity, cfg *config.DomainConfig) (*Activity, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	level := 1
	parentID := valueobjects.ActivityID{}
	if parent != nil {
		level = parent.Level() + 1
		parentID = parent.ID()
	}

	if level > cfg.MaxActivityNestingLevel {
		return nil, pkgerrors.NewNestingLevelExceededError(level, cfg.MaxActivityNestingLevel)
	}

	now := time.Now()
	return &Activity{
		id:        valueobjects.NewActivityID(),
		name:      name,
		parentID:  parentID,
		level:     level,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructActivity reconstructs an activity from repository data with
// preserved identity and timestamps. The stored level is trusted; it was
// validated when the activity was first constructed.
func ReconstructActivity(
	id valueobjects.ActivityID,
	name valueobjects.ActivityName,
	parentID valueobjects.ActivityID,
	level int,
	createdAt, updatedAt time.Time,
) *Activity {
	return &Activity{
		id:        id,
		name:      name,
		parentID:  parentID,
		level:     level,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the activity's unique identifier
func (a *Activity) ID() valueobjects.ActivityID { return a.id }

// Name returns the activity's name
func (a *Activity) Name() valueobjects.ActivityName { return a.name }

// ParentID returns the parent activity's identifier; zero for roots
func (a *Activity) ParentID() valueobjects.ActivityID { return a.parentID }

// IsRoot reports whether the activity has no parent
func (a *Activity) IsRoot() bool { return a.parentID.IsZero() }

// Level returns the 1-based nesting level counted from the root
func (a *Activity) Level() int { return a.level }

// CreatedAt returns when the activity was created
func (a *Activity) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns when the activity was last updated
func (a *Activity) UpdatedAt() time.Time { return a.updatedAt }

// Equals checks activity identity
func (a *Activity) Equals(other *Activity) bool {
	return other != nil && a.id.Equals(other.id)
}
