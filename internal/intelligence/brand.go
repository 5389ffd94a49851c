package intelligence

import (
	"time"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/types"
)

// agencyTeamThreshold is the team size above which a brand is classified
// as an agency rather than a single brand.
const agencyTeamThreshold = 2

// activityWindow is how recently a campaign must have been created for the
// brand to count as active.
const activityWindow = 30 * 24 * time.Hour

// BrandInputs bundles the raw rows the aggregator consumes. The caller
// (normally the admin API handler) fetches them; nothing here touches I/O.
type BrandInputs struct {
	BrandID           uuid.UUID
	Campaigns         []types.CampaignRecord
	Invitations       []types.InvitationRecord
	TeamSize          int
	DaysSinceCreation int
	DataSources       []types.DataSource
}

// BuildBrandIntelligence computes the full detail-view aggregate for one
// brand from its raw rows.
func BuildBrandIntelligence(in BrandInputs, now time.Time) types.BrandIntelligence {
	out := types.BrandIntelligence{BrandID: in.BrandID}

	out.Structure = types.StructureReport{
		TeamSize:       in.TeamSize,
		Classification: classifyStructure(in.TeamSize),
	}

	out.Campaigns, out.Financials = aggregateCampaigns(in.Campaigns)
	out.CreatorEngagement = aggregateEngagement(in.Invitations)

	signals := ComputeRiskSignals(in.Campaigns, in.Invitations, in.TeamSize, in.DaysSinceCreation)
	score, health := ComputeHealth(signals)
	out.Compliance = types.ComplianceReport{
		RiskScore:     score,
		OverallHealth: health,
		Signals:       signals,
	}

	out.Activity = types.ActivityReport{
		DaysSinceCreation: in.DaysSinceCreation,
		ActiveLast30Days:  activeWithin(in.Campaigns, now, activityWindow),
	}

	out.DataSources = RateDataSources(in.DataSources, now)
	return out
}

// BuildBrandSummary computes the roster-view aggregate for one brand. Only
// campaign rows feed it; see SummaryRiskScore for why its risk formula
// differs from the detail view.
func BuildBrandSummary(brandID uuid.UUID, name string, campaigns []types.CampaignRecord) types.BrandSummary {
	report, financials := aggregateCampaigns(campaigns)
	score := 0
	if report.Total > 0 {
		// A brand with no campaigns has nothing to utilize; scoring its
		// zero utilization as risk would flag every new brand.
		score = SummaryRiskScore(report.CancelledRate, financials.UtilizationRate)
	}
	return types.BrandSummary{
		BrandID:         brandID,
		Name:            name,
		TotalCampaigns:  report.Total,
		CancelledRate:   report.CancelledRate,
		UtilizationRate: financials.UtilizationRate,
		RiskScore:       score,
		OverallHealth:   SummaryHealth(score),
	}
}

func classifyStructure(teamSize int) string {
	if teamSize > agencyTeamThreshold {
		return types.StructureAgency
	}
	return types.StructureSingleBrand
}

func aggregateCampaigns(campaigns []types.CampaignRecord) (types.CampaignsReport, types.FinancialsReport) {
	report := types.CampaignsReport{Total: len(campaigns)}
	fin := types.FinancialsReport{}

	for _, c := range campaigns {
		switch c.Status {
		case types.CampaignStatusActive:
			report.Active++
		case types.CampaignStatusCompleted:
			report.Completed++
		case types.CampaignStatusCancelled:
			report.Cancelled++
		}
		fin.TotalBudget += c.TotalBudget
		fin.AllocatedBudget += c.AllocatedBudget
	}

	if report.Total > 0 {
		report.AvgBudget = fin.TotalBudget / float64(report.Total)
		report.CancelledRate = float64(report.Cancelled) / float64(report.Total)
	}
	if fin.TotalBudget > 0 {
		fin.UtilizationRate = fin.AllocatedBudget / fin.TotalBudget
	}
	return report, fin
}

func aggregateEngagement(invitations []types.InvitationRecord) types.EngagementReport {
	report := types.EngagementReport{TotalInvitations: len(invitations)}

	creators := make(map[uuid.UUID]bool)
	negotiated := 0
	for _, inv := range invitations {
		switch inv.Status {
		case types.InvitationAccepted:
			report.Accepted++
		case types.InvitationDeclined:
			report.Declined++
		case types.InvitationPending:
			report.Pending++
		}
		if inv.CreatorUserID != uuid.Nil {
			creators[inv.CreatorUserID] = true
		}
		if inv.BasePayout > 0 && inv.OfferedPayout != inv.BasePayout {
			negotiated++
		}
	}

	report.UniqueCreators = len(creators)
	if report.TotalInvitations > 0 {
		report.AcceptanceRate = float64(report.Accepted) / float64(report.TotalInvitations)
		report.NegotiationRate = float64(negotiated) / float64(report.TotalInvitations)
	}
	return report
}

func activeWithin(campaigns []types.CampaignRecord, now time.Time, window time.Duration) bool {
	for _, c := range campaigns {
		if now.Sub(c.CreatedAt) <= window {
			return true
		}
	}
	return false
}
