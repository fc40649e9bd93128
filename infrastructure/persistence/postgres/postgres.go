package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	pkgerrors "orgdir/pkg/errors"
)

// NewPool connects to Postgres and verifies the connection
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("connect", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, pkgerrors.NewDatabaseError("ping", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS activities (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    parent_id  UUID REFERENCES activities(id),
    level      INT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS activities_name_key ON activities (LOWER(name));

CREATE TABLE IF NOT EXISTS buildings (
    id         UUID PRIMARY KEY,
    address    TEXT NOT NULL,
    latitude   DOUBLE PRECISION NOT NULL,
    longitude  DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS buildings_address_key ON buildings (LOWER(address));

CREATE TABLE IF NOT EXISTS organizations (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    building_id UUID NOT NULL REFERENCES buildings(id),
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS organizations_name_key ON organizations (LOWER(name));

CREATE TABLE IF NOT EXISTS organization_phones (
    organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
    position        INT NOT NULL,
    phone           TEXT NOT NULL,
    PRIMARY KEY (organization_id, position)
);

CREATE TABLE IF NOT EXISTS organization_activities (
    organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
    position        INT NOT NULL,
    activity_id     UUID NOT NULL REFERENCES activities(id),
    PRIMARY KEY (organization_id, position)
);

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS api_keys (
    key        UUID PRIMARY KEY,
    user_id    UUID NOT NULL REFERENCES users(id),
    last_used  TIMESTAMPTZ,
    banned_at  TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
`

// Migrate applies the schema. Statements are idempotent, so running it on
// every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return pkgerrors.NewDatabaseError("migrate", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
