// Package db provides PostgreSQL database access for the marketplace.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// TableStats returns the row count and most recent update timestamp for a
// table. A nil timestamp means the table has never been written. Feeds the
// system-integrity report.
func (db *DB) TableStats(ctx context.Context, table string) (int, *time.Time, error) {
	if !knownTables[table] {
		return 0, nil, fmt.Errorf("unknown table: %s", table)
	}

	var count int
	var lastUpdated *time.Time
	query := fmt.Sprintf(`SELECT COUNT(*), MAX(updated_at) FROM %s`, table)
	err := db.pool.QueryRow(ctx, query).Scan(&count, &lastUpdated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("failed to get stats for %s: %w", table, err)
	}
	return count, lastUpdated, nil
}

// knownTables guards TableStats against arbitrary identifiers, since table
// names cannot be bound as query parameters.
var knownTables = map[string]bool{
	"campaigns":          true,
	"invitations":        true,
	"brand_fit_profiles": true,
	"brands":             true,
	"team_members":       true,
	"notifications":      true,
}

// IntegrityTables lists the platform tables assessed by the system
// integrity report, in display order.
func IntegrityTables() []string {
	return []string{
		"campaigns",
		"invitations",
		"brand_fit_profiles",
		"brands",
		"team_members",
		"notifications",
	}
}
