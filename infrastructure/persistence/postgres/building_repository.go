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

// BuildingRepository provides Postgres-backed building persistence
type BuildingRepository struct {
	pool *pgxpool.Pool
}

// NewBuildingRepository constructs a BuildingRepository
func NewBuildingRepository(pool *pgxpool.Pool) *BuildingRepository {
	return &BuildingRepository{pool: pool}
}

const buildingColumns = `id, address, latitude, longitude, created_at, updated_at`

// Add persists a new building
func (r *BuildingRepository) Add(ctx context.Context, building *entities.Building) error {
	const query = `INSERT INTO buildings (id, address, latitude, longitude, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		building.ID().String(),
		building.Address().String(),
		building.Coordinates().Latitude(),
		building.Coordinates().Longitude(),
		building.CreatedAt(),
		building.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return pkgerrors.NewBuildingAddressExistsError(building.Address().String())
		}
		return pkgerrors.NewDatabaseError("insert building", err)
	}
	return nil
}

// GetByID retrieves a building by ID, nil if absent
func (r *BuildingRepository) GetByID(ctx context.Context, id valueobjects.BuildingID) (*entities.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	return scanOptionalBuilding(r.pool.QueryRow(ctx, query, id.String()))
}

// GetByAddress retrieves a building by exact address, case-insensitive, nil if absent
func (r *BuildingRepository) GetByAddress(ctx context.Context, address string) (*entities.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM buildings WHERE LOWER(address) = LOWER($1)`
	return scanOptionalBuilding(r.pool.QueryRow(ctx, query, address))
}

// FilterByAddress keeps buildings whose address contains the query string,
// case-insensitive
func (r *BuildingRepository) FilterByAddress(ctx context.Context, address string) ([]*entities.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM buildings
        WHERE address ILIKE $1 ORDER BY created_at, id`

	return r.queryBuildings(ctx, query, "%"+address+"%")
}

// FilterByRadius keeps buildings within radiusMeters of the center point.
// The Haversine distance is evaluated in SQL; the boundary is inclusive.
func (r *BuildingRepository) FilterByRadius(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*entities.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM buildings
        WHERE 2 * 6371000 * asin(sqrt(
            power(sin(radians(latitude - $1) / 2), 2) +
            cos(radians($1)) * cos(radians(latitude)) *
            power(sin(radians(longitude - $2) / 2), 2)
        )) <= $3
        ORDER BY created_at, id`

	return r.queryBuildings(ctx, query, latitude, longitude, radiusMeters)
}

// FilterByBoundingBox keeps buildings inside the rectangle, edges inclusive
func (r *BuildingRepository) FilterByBoundingBox(ctx context.Context, latMin, latMax, lonMin, lonMax float64) ([]*entities.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM buildings
        WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4
        ORDER BY created_at, id`

	return r.queryBuildings(ctx, query, latMin, latMax, lonMin, lonMax)
}

func (r *BuildingRepository) queryBuildings(ctx context.Context, query string, args ...interface{}) ([]*entities.Building, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("filter buildings", err)
	}
	defer rows.Close()

	buildings := make([]*entities.Building, 0)
	for rows.Next() {
		building, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, building)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("filter buildings", err)
	}
	return buildings, nil
}

func scanOptionalBuilding(row pgx.Row) (*entities.Building, error) {
	building, err := scanBuilding(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return building, nil
}

func scanBuilding(row pgx.Row) (*entities.Building, error) {
	var (
		id, address          string
		latitude, longitude  float64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &address, &latitude, &longitude, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, pkgerrors.NewDatabaseError("scan building", err)
	}

	buildingID, err := valueobjects.ParseBuildingID(id)
	if err != nil {
		return nil, err
	}
	addressVO, err := valueobjects.NewAddress(address)
	if err != nil {
		return nil, err
	}
	coordinates, err := valueobjects.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructBuilding(buildingID, addressVO, coordinates, createdAt, updatedAt), nil
}
