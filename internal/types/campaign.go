package types

import (
	"time"

	"github.com/google/uuid"
)

// Campaign status constants
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Campaign represents a brand-declared sponsorship opportunity.
type Campaign struct {
	ID             uuid.UUID `json:"id"`
	BrandID        uuid.UUID `json:"brand_id"`
	Name           string    `json:"name"`
	ImageURL       string    `json:"image_url,omitempty"`
	Locale         string    `json:"locale,omitempty"`
	Status         string    `json:"status"`
	Commission     float64   `json:"commission"`
	Categories     []string  `json:"categories"`
	Socials        []string  `json:"socials"`
	IsRegulated    bool      `json:"is_regulated"`
	RequiresVehicle bool     `json:"requires_vehicle"`
	ContentType    []string  `json:"content_type"`
	RequirementMet bool      `json:"requirement_met"`
	TotalBudget    float64   `json:"total_budget"`
	AllocatedBudget float64  `json:"allocated_budget"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MatchResult is the derived compatibility verdict for one (profile, campaign)
// pair. It is recomputed on every evaluation and never persisted.
type MatchResult struct {
	MatchScore   int      `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
	IsTopMatch   bool     `json:"is_top_match"`
	Excluded     bool     `json:"-"`
}

// ScoredCampaign pairs a campaign with its match result for API responses.
type ScoredCampaign struct {
	Campaign
	MatchResult
}

// MatchOutcome is the full result of evaluating a creator's profile against
// a campaign catalog.
type MatchOutcome struct {
	Matched           []ScoredCampaign `json:"matched"`
	All               []ScoredCampaign `json:"all"`
	HasProfileData    bool             `json:"has_profile_data"`
	TopMatchCount     int              `json:"top_match_count"`
	CompletionPercent int              `json:"completion_percent"`
}
