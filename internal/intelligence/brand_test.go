package intelligence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/creator-marketplace/internal/types"
)

func TestClassifyStructure_AgencyThreshold(t *testing.T) {
	assert.Equal(t, types.StructureSingleBrand, classifyStructure(0))
	assert.Equal(t, types.StructureSingleBrand, classifyStructure(2))
	assert.Equal(t, types.StructureAgency, classifyStructure(3))
}

func TestAggregateCampaigns_CountsAndRates(t *testing.T) {
	campaigns := []types.CampaignRecord{
		{Status: types.CampaignStatusActive, TotalBudget: 1000, AllocatedBudget: 600},
		{Status: types.CampaignStatusCompleted, TotalBudget: 2000, AllocatedBudget: 1400},
		{Status: types.CampaignStatusCancelled, TotalBudget: 1000, AllocatedBudget: 0},
		{Status: types.CampaignStatusCancelled, TotalBudget: 0, AllocatedBudget: 0},
	}

	report, fin := aggregateCampaigns(campaigns)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Active)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 2, report.Cancelled)
	assert.InDelta(t, 0.5, report.CancelledRate, 1e-9)
	assert.InDelta(t, 1000, report.AvgBudget, 1e-9)

	assert.InDelta(t, 4000, fin.TotalBudget, 1e-9)
	assert.InDelta(t, 2000, fin.AllocatedBudget, 1e-9)
	assert.InDelta(t, 0.5, fin.UtilizationRate, 1e-9)
}

func TestAggregateCampaigns_EmptyInputNoDivideByZero(t *testing.T) {
	report, fin := aggregateCampaigns(nil)

	assert.Equal(t, 0, report.Total)
	assert.Zero(t, report.CancelledRate)
	assert.Zero(t, report.AvgBudget)
	assert.Zero(t, fin.UtilizationRate)
}

func TestAggregateEngagement_UniqueCreatorsAndRates(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	invitations := []types.InvitationRecord{
		{Status: types.InvitationAccepted, CreatorUserID: alice, BasePayout: 100, OfferedPayout: 100},
		{Status: types.InvitationAccepted, CreatorUserID: alice, BasePayout: 100, OfferedPayout: 150},
		{Status: types.InvitationDeclined, CreatorUserID: bob, BasePayout: 200, OfferedPayout: 200},
		{Status: types.InvitationPending, CreatorUserID: uuid.Nil, BasePayout: 0, OfferedPayout: 50},
	}

	report := aggregateEngagement(invitations)

	assert.Equal(t, 4, report.TotalInvitations)
	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, 1, report.Declined)
	assert.Equal(t, 1, report.Pending)
	// Nil creator IDs are not counted as a distinct creator.
	assert.Equal(t, 2, report.UniqueCreators)
	assert.InDelta(t, 0.5, report.AcceptanceRate, 1e-9)
	// Zero base payout rows never count as negotiated.
	assert.InDelta(t, 0.25, report.NegotiationRate, 1e-9)
}

func TestBuildBrandIntelligence_FullAggregate(t *testing.T) {
	now := time.Now()
	brandID := uuid.New()
	recent := now.Add(-5 * 24 * time.Hour)
	old := now.Add(-200 * 24 * time.Hour)

	in := BrandInputs{
		BrandID: brandID,
		Campaigns: []types.CampaignRecord{
			{Status: types.CampaignStatusActive, TotalBudget: 1000, AllocatedBudget: 900, CreatedAt: recent},
			{Status: types.CampaignStatusCompleted, TotalBudget: 1000, AllocatedBudget: 1000, CreatedAt: old},
		},
		Invitations: []types.InvitationRecord{
			{Status: types.InvitationAccepted, CreatorUserID: uuid.New(), BasePayout: 100, OfferedPayout: 100},
		},
		TeamSize:          4,
		DaysSinceCreation: 200,
		DataSources: []types.DataSource{
			{Table: "campaigns", RecordCount: 2, LastUpdated: &recent},
		},
	}

	out := BuildBrandIntelligence(in, now)

	assert.Equal(t, brandID, out.BrandID)
	assert.Equal(t, types.StructureAgency, out.Structure.Classification)
	assert.Equal(t, 4, out.Structure.TeamSize)
	assert.Equal(t, 2, out.Campaigns.Total)
	assert.InDelta(t, 0.95, out.Financials.UtilizationRate, 1e-9)
	assert.Equal(t, 1, out.CreatorEngagement.Accepted)
	assert.Equal(t, 200, out.Activity.DaysSinceCreation)
	assert.True(t, out.Activity.ActiveLast30Days)

	// Healthy brand: no rule fires on these inputs.
	assert.Empty(t, out.Compliance.Signals)
	assert.Equal(t, 0, out.Compliance.RiskScore)
	assert.Equal(t, types.HealthHealthy, out.Compliance.OverallHealth)

	require.Len(t, out.DataSources, 1)
	assert.Equal(t, types.ConfidenceHigh, out.DataSources[0].Confidence)
}

func TestBuildBrandIntelligence_InactiveWhenAllCampaignsOld(t *testing.T) {
	now := time.Now()
	old := now.Add(-90 * 24 * time.Hour)

	out := BuildBrandIntelligence(BrandInputs{
		BrandID: uuid.New(),
		Campaigns: []types.CampaignRecord{
			{Status: types.CampaignStatusCompleted, CreatedAt: old},
		},
	}, now)

	assert.False(t, out.Activity.ActiveLast30Days)
}

func TestBuildBrandIntelligence_ComplianceSurfacesSignals(t *testing.T) {
	now := time.Now()
	var campaigns []types.CampaignRecord
	for i := 0; i < 4; i++ {
		campaigns = append(campaigns, types.CampaignRecord{
			Status:    types.CampaignStatusCancelled,
			CreatedAt: now,
		})
	}

	out := BuildBrandIntelligence(BrandInputs{
		BrandID:           uuid.New(),
		Campaigns:         campaigns,
		DaysSinceCreation: 400,
	}, now)

	require.NotEmpty(t, out.Compliance.Signals)
	assert.Equal(t, types.SignalWarning, out.Compliance.Signals[0].Type)
	assert.Equal(t, "campaign_management", out.Compliance.Signals[0].Category)
	assert.NotEqual(t, types.HealthHealthy, out.Compliance.OverallHealth)
}

func TestBuildBrandSummary(t *testing.T) {
	brandID := uuid.New()
	campaigns := []types.CampaignRecord{
		{Status: types.CampaignStatusCancelled, TotalBudget: 1000, AllocatedBudget: 0},
		{Status: types.CampaignStatusActive, TotalBudget: 1000, AllocatedBudget: 1000},
	}

	summary := BuildBrandSummary(brandID, "Acme Media", campaigns)

	assert.Equal(t, brandID, summary.BrandID)
	assert.Equal(t, "Acme Media", summary.Name)
	assert.Equal(t, 2, summary.TotalCampaigns)
	assert.InDelta(t, 0.5, summary.CancelledRate, 1e-9)
	assert.InDelta(t, 0.5, summary.UtilizationRate, 1e-9)
	assert.Equal(t, SummaryRiskScore(0.5, 0.5), summary.RiskScore)
	assert.Equal(t, SummaryHealth(summary.RiskScore), summary.OverallHealth)
}

func TestBuildBrandSummary_NoCampaigns(t *testing.T) {
	summary := BuildBrandSummary(uuid.New(), "Fresh Brand", nil)

	assert.Equal(t, 0, summary.TotalCampaigns)
	assert.Equal(t, 0, summary.RiskScore)
	assert.Equal(t, types.HealthHealthy, summary.OverallHealth)
}
