package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgdir/application/ports"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// ActivityRepository provides Postgres-backed activity persistence
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository constructs an ActivityRepository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

const activityColumns = `id, name, parent_id, level, created_at, updated_at`

// Add persists a new activity
func (r *ActivityRepository) Add(ctx context.Context, activity *entities.Activity) error {
	const query = `INSERT INTO activities (id, name, parent_id, level, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	var parentID *string
	if !activity.IsRoot() {
		id := activity.ParentID().String()
		parentID = &id
	}

	_, err := r.pool.Exec(ctx, query,
		activity.ID().String(),
		activity.Name().String(),
		parentID,
		activity.Level(),
		activity.CreatedAt(),
		activity.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return pkgerrors.NewActivityNameExistsError(activity.Name().String())
		}
		return pkgerrors.NewDatabaseError("insert activity", err)
	}
	return nil
}

// GetByID retrieves an activity by ID, nil if absent
func (r *ActivityRepository) GetByID(ctx context.Context, id valueobjects.ActivityID) (*entities.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id.String()))
}

// GetByName retrieves an activity by exact name, case-insensitive, nil if absent
func (r *ActivityRepository) GetByName(ctx context.Context, name string) (*entities.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities WHERE LOWER(name) = LOWER($1)`
	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

// Filter finds activities matching the given criteria in insertion order
func (r *ActivityRepository) Filter(ctx context.Context, filter ports.ActivityFilter) ([]*entities.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE 1=1`
	args := []interface{}{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += ` AND name ILIKE $1`
	}
	if !filter.ParentID.IsZero() {
		args = append(args, filter.ParentID.String())
		if len(args) == 1 {
			query += ` AND parent_id = $1`
		} else {
			query += ` AND parent_id = $2`
		}
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("filter activities", err)
	}
	defer rows.Close()

	activities := make([]*entities.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("filter activities", err)
	}
	return activities, nil
}

func (r *ActivityRepository) scanOne(row pgx.Row) (*entities.Activity, error) {
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}

func scanActivity(row pgx.Row) (*entities.Activity, error) {
	var (
		id, name             string
		parentID             *string
		level                int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &parentID, &level, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, pkgerrors.NewDatabaseError("scan activity", err)
	}

	activityID, err := valueobjects.ParseActivityID(id)
	if err != nil {
		return nil, err
	}
	nameVO, err := valueobjects.NewActivityName(name)
	if err != nil {
		return nil, err
	}
	var parent valueobjects.ActivityID
	if parentID != nil {
		parent, err = valueobjects.ParseActivityID(*parentID)
		if err != nil {
			return nil, err
		}
	}

	return entities.ReconstructActivity(activityID, nameVO, parent, level, createdAt, updatedAt), nil
}
