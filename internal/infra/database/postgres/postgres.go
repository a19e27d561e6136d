package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Connection struct {
	db *sqlx.DB
}

func ConnectPostgres(dsn string) (*Connection, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to connect: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Connection{db: db}, nil
}

func (c *Connection) DB() *sqlx.DB {
	return c.db
}

func (c *Connection) Close() error {
	return c.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS strength_evaluations (
	uuid          UUID PRIMARY KEY,
	score         INTEGER NOT NULL CHECK (score >= 0),
	label         VARCHAR(64) NOT NULL,
	color         VARCHAR(16) NOT NULL,
	length        INTEGER NOT NULL CHECK (length >= 0),
	name_provided BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_strength_evaluations_label ON strength_evaluations(label);
CREATE INDEX IF NOT EXISTS idx_strength_evaluations_created_at ON strength_evaluations(created_at);
`

// Migrate creates the evaluation tables when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: migration failed: %w", err)
	}
	return nil
}
