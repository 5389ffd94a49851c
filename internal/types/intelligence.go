package types

import (
	"time"

	"github.com/google/uuid"
)

// RiskSignal type constants
const (
	SignalCritical = "critical"
	SignalWarning  = "warning"
	SignalInfo     = "info"
)

// Health tier constants
const (
	HealthHealthy   = "healthy"
	HealthAttention = "attention"
	HealthCritical  = "critical"
)

// Data-source confidence constants, derived from staleness
const (
	ConfidenceNone   = "none"
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Brand structure classification constants
const (
	StructureAgency      = "agency"
	StructureSingleBrand = "single_brand"
)

// RiskSignal is a discrete risk or compliance finding produced by rule
// evaluation over aggregate counts. Generation order follows rule
// declaration order and is deterministic for deterministic input.
type RiskSignal struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
}

// CampaignRecord is the raw campaign row shape consumed by the intelligence
// aggregator.
type CampaignRecord struct {
	Status          string    `json:"status"`
	TotalBudget     float64   `json:"total_budget"`
	AllocatedBudget float64   `json:"allocated_budget"`
	CreatedAt       time.Time `json:"created_at"`
}

// InvitationRecord is the raw invitation row shape consumed by the
// intelligence aggregator.
type InvitationRecord struct {
	Status        string    `json:"status"`
	OfferedPayout float64   `json:"offered_payout"`
	BasePayout    float64   `json:"base_payout"`
	CreatorUserID uuid.UUID `json:"creator_user_id"`
}

// Invitation status constants
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// StructureReport describes a brand's team composition.
type StructureReport struct {
	TeamSize       int    `json:"team_size"`
	Classification string `json:"classification"`
}

// CampaignsReport aggregates campaign counts by status.
type CampaignsReport struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Completed     int     `json:"completed"`
	Cancelled     int     `json:"cancelled"`
	AvgBudget     float64 `json:"avg_budget"`
	CancelledRate float64 `json:"cancelled_rate"`
}

// FinancialsReport aggregates budget sums and utilization.
type FinancialsReport struct {
	TotalBudget     float64 `json:"total_budget"`
	AllocatedBudget float64 `json:"allocated_budget"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// EngagementReport aggregates the invitation funnel.
type EngagementReport struct {
	TotalInvitations int     `json:"total_invitations"`
	Accepted         int     `json:"accepted"`
	Declined         int     `json:"declined"`
	Pending          int     `json:"pending"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
	UniqueCreators   int     `json:"unique_creators"`
	NegotiationRate  float64 `json:"negotiation_rate"`
}

// ComplianceReport carries the risk evaluation outcome.
type ComplianceReport struct {
	RiskScore     int          `json:"risk_score"`
	OverallHealth string       `json:"overall_health"`
	Signals       []RiskSignal `json:"signals"`
}

// ActivityReport carries account recency flags.
type ActivityReport struct {
	DaysSinceCreation int  `json:"days_since_creation"`
	ActiveLast30Days  bool `json:"active_last_30_days"`
}

// DataSource records per-table freshness and the confidence derived from it.
type DataSource struct {
	Table       string     `json:"table"`
	RecordCount int        `json:"record_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Confidence  string     `json:"confidence"`
}

// BrandIntelligence is the admin-side aggregate derived from one brand's raw
// relational data. Computed fresh per query; never persisted.
type BrandIntelligence struct {
	BrandID          uuid.UUID        `json:"brand_id"`
	Structure        StructureReport  `json:"structure"`
	Campaigns        CampaignsReport  `json:"campaigns"`
	Financials       FinancialsReport `json:"financials"`
	CreatorEngagement EngagementReport `json:"creator_engagement"`
	Compliance       ComplianceReport `json:"compliance"`
	Activity         ActivityReport   `json:"activity"`
	DataSources      []DataSource     `json:"data_sources"`
}

// BrandSummary is the roster-view aggregate: cheaper inputs, and a risk
// score computed by a deliberately simpler formula than the detail view.
type BrandSummary struct {
	BrandID        uuid.UUID `json:"brand_id"`
	Name           string    `json:"name"`
	TotalCampaigns int       `json:"total_campaigns"`
	CancelledRate  float64   `json:"cancelled_rate"`
	UtilizationRate float64  `json:"utilization_rate"`
	RiskScore      int       `json:"risk_score"`
	OverallHealth  string    `json:"overall_health"`
}

// TableStatus constants for the system-integrity report
const (
	TableStatusHealthy  = "healthy"
	TableStatusWarning  = "warning"
	TableStatusCritical = "critical"
	TableStatusEmpty    = "empty"
)

// TableHealth is one platform table's freshness assessment.
type TableHealth struct {
	Table       string     `json:"table"`
	RecordCount int        `json:"record_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Status      string     `json:"status"`
	Confidence  string     `json:"confidence"`
}

// IntegrityReport is the platform-wide data-freshness summary.
type IntegrityReport struct {
	Tables        []TableHealth `json:"tables"`
	HealthyCount  int           `json:"healthy_count"`
	WarningCount  int           `json:"warning_count"`
	CriticalCount int           `json:"critical_count"`
	EmptyCount    int           `json:"empty_count"`
	OverallHealth string        `json:"overall_health"`
	GeneratedAt   time.Time     `json:"generated_at"`
}
