package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the Postgres connection pool shared by the repositories
type DB struct {
	Pool *pgxpool.Pool
}

// New opens a pool against pgURL and verifies it with a ping
func New(ctx context.Context, pgURL string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(pgURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close releases every pooled connection
func (db *DB) Close() {
	db.Pool.Close()
}

// Schema creates the feed log tables if they do not exist yet
const Schema = `
CREATE TABLE IF NOT EXISTS feed_log (
	id          BIGSERIAL PRIMARY KEY,
	zone_id     BIGINT NOT NULL,
	grower_id   BIGINT,
	fed_on      DATE NOT NULL,
	volume      NUMERIC(10,3) NOT NULL,
	volume_unit TEXT NOT NULL,
	stage       TEXT NOT NULL,
	scale       INT NOT NULL,
	final_ppm   NUMERIC(10,2) NOT NULL,
	notes       TEXT,
	created     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS feed_log_zone_idx ON feed_log (zone_id, created DESC);

CREATE TABLE IF NOT EXISTS feed_log_nutrient (
	feed_log_id BIGINT NOT NULL REFERENCES feed_log (id) ON DELETE CASCADE,
	nutrient    TEXT NOT NULL,
	grams       NUMERIC(10,2) NOT NULL,
	PRIMARY KEY (feed_log_id, nutrient)
);
`

// Migrate applies Schema
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
