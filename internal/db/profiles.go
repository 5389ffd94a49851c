package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/creator-marketplace/internal/types"
)

// GetBrandFitRaw retrieves the persisted Brand-Fit blob for a creator.
// Returns (nil, nil) when the creator has never saved a profile. The blob
// is returned raw so the profile package can validate and default it at
// the deserialization boundary.
func (db *DB) GetBrandFitRaw(ctx context.Context, creatorID uuid.UUID) ([]byte, error) {
	var blob []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM brand_fit_profiles WHERE creator_user_id = $1`,
		creatorID,
	).Scan(&blob)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brand-fit profile: %w", err)
	}
	return blob, nil
}

// SaveBrandFit upserts a creator's Brand-Fit profile as a whole blob.
// Profiles are only ever overwritten, never deleted. Satisfies
// profile.Saver for the debounced writer.
func (db *DB) SaveBrandFit(ctx context.Context, creatorID uuid.UUID, p *types.BrandFitProfile) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal brand-fit profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO brand_fit_profiles (creator_user_id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (creator_user_id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		creatorID, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to save brand-fit profile: %w", err)
	}
	return nil
}
