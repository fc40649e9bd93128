package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

// OrganizationRepository provides Postgres-backed organization persistence.
// An organization row carries its phones and activity links in side tables;
// every read assembles the full entity, building included.
type OrganizationRepository struct {
	pool      *pgxpool.Pool
	buildings *BuildingRepository
	activity  *ActivityRepository
}

// NewOrganizationRepository constructs an OrganizationRepository
func NewOrganizationRepository(pool *pgxpool.Pool, buildings *BuildingRepository, activity *ActivityRepository) *OrganizationRepository {
	return &OrganizationRepository{pool: pool, buildings: buildings, activity: activity}
}

// Add persists a new organization together with its phones and activity
// links in a single transaction
func (r *OrganizationRepository) Add(ctx context.Context, organization *entities.Organization) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return pkgerrors.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	const insertOrganization = `INSERT INTO organizations (id, name, building_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, insertOrganization,
		organization.ID().String(),
		organization.Name().String(),
		organization.Building().ID().String(),
		organization.CreatedAt(),
		organization.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return pkgerrors.NewOrganizationNameExistsError(organization.Name().String())
		}
		return pkgerrors.NewDatabaseError("insert organization", err)
	}

	const insertPhone = `INSERT INTO organization_phones (organization_id, position, phone) VALUES ($1, $2, $3)`
	for i, phone := range organization.Phones() {
		if _, err := tx.Exec(ctx, insertPhone, organization.ID().String(), i, phone.String()); err != nil {
			return pkgerrors.NewDatabaseError("insert organization phone", err)
		}
	}

	const insertActivity = `INSERT INTO organization_activities (organization_id, position, activity_id) VALUES ($1, $2, $3)`
	for i, activity := range organization.Activities() {
		if _, err := tx.Exec(ctx, insertActivity, organization.ID().String(), i, activity.ID().String()); err != nil {
			return pkgerrors.NewDatabaseError("insert organization activity", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return pkgerrors.NewDatabaseError("commit organization", err)
	}
	return nil
}

// GetByID retrieves an organization by ID, nil if absent
func (r *OrganizationRepository) GetByID(ctx context.Context, id valueobjects.OrganizationID) (*entities.Organization, error) {
	const query = `SELECT id, name, building_id, created_at, updated_at FROM organizations WHERE id = $1`

	organizations, err := r.collect(ctx, query, id.String())
	if err != nil {
		return nil, err
	}
	if len(organizations) == 0 {
		return nil, nil
	}
	return organizations[0], nil
}

// GetByName finds organizations whose name contains the query string,
// case-insensitive, in insertion order
func (r *OrganizationRepository) GetByName(ctx context.Context, name string) ([]*entities.Organization, error) {
	const query = `SELECT id, name, building_id, created_at, updated_at FROM organizations
        WHERE name ILIKE $1 ORDER BY created_at, id`
	return r.collect(ctx, query, "%"+name+"%")
}

// GetByBuildingID finds organizations located in the given building
func (r *OrganizationRepository) GetByBuildingID(ctx context.Context, id valueobjects.BuildingID) ([]*entities.Organization, error) {
	const query = `SELECT id, name, building_id, created_at, updated_at FROM organizations
        WHERE building_id = $1 ORDER BY created_at, id`
	return r.collect(ctx, query, id.String())
}

// GetByActivityName finds organizations practicing the activity with the
// exact name, case-insensitive
func (r *OrganizationRepository) GetByActivityName(ctx context.Context, name string) ([]*entities.Organization, error) {
	const query = `SELECT DISTINCT o.id, o.name, o.building_id, o.created_at, o.updated_at
        FROM organizations o
        JOIN organization_activities oa ON oa.organization_id = o.id
        JOIN activities a ON a.id = oa.activity_id
        WHERE LOWER(a.name) = LOWER($1) ORDER BY o.created_at, o.id`
	return r.collect(ctx, query, name)
}

type organizationRow struct {
	id, name, buildingID string
	createdAt, updatedAt time.Time
}

func (r *OrganizationRepository) collect(ctx context.Context, query string, args ...interface{}) ([]*entities.Organization, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query organizations", err)
	}
	defer rows.Close()

	orgRows := make([]organizationRow, 0)
	for rows.Next() {
		var row organizationRow
		if err := rows.Scan(&row.id, &row.name, &row.buildingID, &row.createdAt, &row.updatedAt); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan organization", err)
		}
		orgRows = append(orgRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("query organizations", err)
	}

	organizations := make([]*entities.Organization, 0, len(orgRows))
	for _, row := range orgRows {
		organization, err := r.assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		organizations = append(organizations, organization)
	}
	return organizations, nil
}

func (r *OrganizationRepository) assemble(ctx context.Context, row organizationRow) (*entities.Organization, error) {
	organizationID, err := valueobjects.ParseOrganizationID(row.id)
	if err != nil {
		return nil, err
	}
	nameVO, err := valueobjects.NewOrganizationName(row.name)
	if err != nil {
		return nil, err
	}
	buildingID, err := valueobjects.ParseBuildingID(row.buildingID)
	if err != nil {
		return nil, err
	}

	building, err := r.buildings.GetByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, pkgerrors.NewDatabaseError("load organization building",
			errors.New("organization references a missing building"))
	}

	phones, err := r.loadPhones(ctx, row.id)
	if err != nil {
		return nil, err
	}
	activities, err := r.loadActivities(ctx, row.id)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructOrganization(organizationID, nameVO, building, phones, activities, row.createdAt, row.updatedAt)
}

func (r *OrganizationRepository) loadPhones(ctx context.Context, organizationID string) ([]valueobjects.Phone, error) {
	const query = `SELECT phone FROM organization_phones WHERE organization_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load organization phones", err)
	}
	defer rows.Close()

	phones := make([]valueobjects.Phone, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan organization phone", err)
		}
		phone, err := valueobjects.NewPhone(value)
		if err != nil {
			return nil, err
		}
		phones = append(phones, phone)
	}
	return phones, rows.Err()
}

func (r *OrganizationRepository) loadActivities(ctx context.Context, organizationID string) ([]*entities.Activity, error) {
	const query = `SELECT a.id, a.name, a.parent_id, a.level, a.created_at, a.updated_at
        FROM activities a
        JOIN organization_activities oa ON oa.activity_id = a.id
        WHERE oa.organization_id = $1 ORDER BY oa.position`

	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("load organization activities", err)
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
	return activities, rows.Err()
}
