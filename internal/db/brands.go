package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Brand represents a brand account row
type Brand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetBrandByID retrieves a brand by ID. Returns (nil, nil) when not found.
func (db *DB) GetBrandByID(ctx context.Context, id uuid.UUID) (*Brand, error) {
	var b Brand
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return &b, nil
}

// ListBrands returns all brands ordered by name, for the admin roster
func (db *DB) ListBrands(ctx context.Context) ([]Brand, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := make([]Brand, 0)
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read brands: %w", err)
	}
	return brands, nil
}

// TeamSize returns the number of team members attached to a brand
func (db *DB) TeamSize(ctx context.Context, brandID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_members WHERE brand_id = $1`, brandID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}
