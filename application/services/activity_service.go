package services

import (
	"context"

	"go.uber.org/zap"

	"orgdir/application/ports"
	"orgdir/domain/config"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
	"orgdir/pkg/common"
)

// ActivityService manages the activity taxonomy: creation under a parent
// with the nesting-depth invariant, and filtered lookups.
type ActivityService struct {
	activities ports.ActivityRepository
	cfg        *config.DomainConfig
	logger     *zap.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(
	activities ports.ActivityRepository,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *ActivityService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &ActivityService{
		activities: activities,
		cfg:        cfg,
		logger:     logger,
	}
}

// Create creates an activity, optionally under a parent. The parent must
// already exist; nesting beyond the configured maximum fails at entity
// construction.
func (s *ActivityService) Create(ctx context.Context, name string, parentID valueobjects.ActivityID) (*entities.Activity, error) {
	existing, err := s.activities.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.NewActivityNameExistsError(name)
	}

	var parent *entities.Activity
	if !parentID.IsZero() {
		parent, err = s.activities.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, pkgerrors.NewActivityNotFoundError(parentID.String())
		}
		if err := s.verifyParentChain(ctx, parent); err != nil {
			return nil, err
		}
	}

	activityName, err := valueobjects.NewActivityNameWithConfig(name, s.cfg)
	if err != nil {
		return nil, err
	}

	activity, err := entities.NewActivityWithConfig(activityName, parent, s.cfg)
	if err != nil {
		return nil, err
	}

	if err := s.activities.Add(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Debug("Activity created",
		zap.String("id", activity.ID().String()),
		zap.String("name", name),
		zap.Int("level", activity.Level()),
	)

	return activity, nil
}

// GetByID returns the activity with the given ID, or a not-found error
func (s *ActivityService) GetByID(ctx context.Context, id valueobjects.ActivityID) (*entities.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, pkgerrors.NewActivityNotFoundError(id.String())
	}
	return activity, nil
}

// Search filters activities by optional name substring and direct parent,
// then slices [offset, offset+limit). The returned total counts matches
// before slicing. A set parent ID matches direct children only; deeper
// descendants are the organization search's concern.
func (s *ActivityService) Search(
	ctx context.Context,
	name string,
	parentID valueobjects.ActivityID,
	limit, offset int,
) ([]*entities.Activity, int, error) {
	activities, err := s.activities.Filter(ctx, ports.ActivityFilter{
		Name:     name,
		ParentID: parentID,
	})
	if err != nil {
		return nil, 0, err
	}

	total := len(activities)
	return common.Slice(activities, limit, offset), total, nil
}

// verifyParentChain walks parent identifiers from the given activity up to
// the root. Well-formed construction cannot create a cycle, but corrupted
// storage could; the walk carries a visited set and fails rather than loop.
func (s *ActivityService) verifyParentChain(ctx context.Context, activity *entities.Activity) error {
	visited := make(map[string]bool)
	current := activity

	for current != nil {
		id := current.ID().String()
		if visited[id] {
			return pkgerrors.NewActivityParentCycleError(id)
		}
		visited[id] = true

		if current.IsRoot() {
			return nil
		}

		next, err := s.activities.GetByID(ctx, current.ParentID())
		if err != nil {
			return err
		}
		if next == nil {
			return pkgerrors.NewActivityNotFoundError(current.ParentID().String())
		}
		current = next
	}

	return nil
}
