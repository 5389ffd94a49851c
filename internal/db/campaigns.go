package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordan/creator-marketplace/internal/types"
)

// ListCampaignsOptions holds filters and pagination for campaign listing
type ListCampaignsOptions struct {
	Status  *string
	BrandID *uuid.UUID
	Locale  *string
	Limit   int
	Offset  int
}

const campaignColumns = `id, brand_id, name, image_url, locale, status, commission,
	categories, socials, is_regulated, requires_vehicle, content_type,
	requirement_met, total_budget, allocated_budget, created_at, updated_at`

func scanCampaign(row pgx.Row) (*types.Campaign, error) {
	var c types.Campaign
	err := row.Scan(
		&c.ID, &c.BrandID, &c.Name, &c.ImageURL, &c.Locale, &c.Status,
		&c.Commission, &c.Categories, &c.Socials, &c.IsRegulated,
		&c.RequiresVehicle, &c.ContentType, &c.RequirementMet,
		&c.TotalBudget, &c.AllocatedBudget, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a new campaign and returns its ID
func (db *DB) CreateCampaign(ctx context.Context, req *types.CreateCampaignRequest) (uuid.UUID, error) {
	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid brand id: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO campaigns (brand_id, name, image_url, locale, status, commission,
			categories, socials, is_regulated, requires_vehicle, content_type,
			requirement_met, total_budget, allocated_budget)
		 VALUES ($1, $2, $3, $4, 'draft', $5, $6, $7, $8, $9, $10, false, $11, 0)
		 RETURNING id`,
		brandID, req.Name, req.ImageURL, req.Locale, req.Commission,
		req.Categories, req.Socials, req.IsRegulated, req.RequiresVehicle,
		req.ContentType, req.TotalBudget,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return id, nil
}

// GetCampaignByID retrieves a campaign by ID. Returns (nil, nil) when not found.
func (db *DB) GetCampaignByID(ctx context.Context, id uuid.UUID) (*types.Campaign, error) {
	row := db.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id)
	c, err := scanCampaign(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns lists campaigns with optional filters and pagination,
// returning the page and the total matching count
func (db *DB) ListCampaigns(ctx context.Context, opts ListCampaignsOptions) ([]types.Campaign, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	argN := 1

	if opts.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, *opts.Status)
		argN++
	}
	if opts.BrandID != nil {
		where += fmt.Sprintf(" AND brand_id = $%d", argN)
		args = append(args, *opts.BrandID)
		argN++
	}
	if opts.Locale != nil {
		where += fmt.Sprintf(" AND locale = $%d", argN)
		args = append(args, *opts.Locale)
		argN++
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM campaigns %s`, where)
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, argN, argN+1)
	args = append(args, limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]types.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read campaigns: %w", err)
	}
	return campaigns, total, nil
}

// ListCampaignRecordsByBrand returns the lightweight campaign rows the
// intelligence aggregator consumes
func (db *DB) ListCampaignRecordsByBrand(ctx context.Context, brandID uuid.UUID) ([]types.CampaignRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, total_budget, allocated_budget, created_at
		 FROM campaigns WHERE brand_id = $1 ORDER BY created_at`,
		brandID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign records: %w", err)
	}
	defer rows.Close()

	records := make([]types.CampaignRecord, 0)
	for rows.Next() {
		var r types.CampaignRecord
		if err := rows.Scan(&r.Status, &r.TotalBudget, &r.AllocatedBudget, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read campaign records: %w", err)
	}
	return records, nil
}
