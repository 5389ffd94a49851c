package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/types"
)

// ListInvitationRecordsByBrand returns the invitation rows the intelligence
// aggregator consumes, in creation order
func (db *DB) ListInvitationRecordsByBrand(ctx context.Context, brandID uuid.UUID) ([]types.InvitationRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT i.status, i.offered_payout, i.base_payout, i.creator_user_id
		 FROM invitations i
		 JOIN campaigns c ON c.id = i.campaign_id
		 WHERE c.brand_id = $1
		 ORDER BY i.created_at`,
		brandID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitation records: %w", err)
	}
	defer rows.Close()

	records := make([]types.InvitationRecord, 0)
	for rows.Next() {
		var r types.InvitationRecord
		if err := rows.Scan(&r.Status, &r.OfferedPayout, &r.BasePayout, &r.CreatorUserID); err != nil {
			return nil, fmt.Errorf("failed to scan invitation record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invitation records: %w", err)
	}
	return records, nil
}
