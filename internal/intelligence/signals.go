// Package intelligence derives admin-side risk scores, health tiers, and
// data-freshness confidence from raw relational counts. Everything here is
// pure computation over already-fetched rows; data loading belongs to the
// caller.
package intelligence

import (
	"fmt"

	"github.com/jordan/creator-marketplace/internal/types"
)

// Rule thresholds for risk-signal evaluation.
const (
	cancellationMinCampaigns = 3
	cancellationRateLimit    = 0.3
	utilizationFloor         = 0.5
	acceptanceMinInvitations = 10
	acceptanceRateFloor      = 0.2
	negotiationMinInvitations = 5
	negotiationRateLimit     = 0.5
	rapidExpansionMaxDays    = 30
	rapidExpansionCampaigns  = 5
	soloHighVolumeCampaigns  = 10
)

// ComputeRiskSignals evaluates the rule set over a brand's raw aggregates.
// Each rule fires independently. Output order follows rule declaration
// order, so deterministic input yields deterministic output.
func ComputeRiskSignals(campaigns []types.CampaignRecord, invitations []types.InvitationRecord, teamSize, daysSinceCreation int) []types.RiskSignal {
	signals := make([]types.RiskSignal, 0)

	totalCampaigns := len(campaigns)
	cancelled := 0
	totalBudget := 0.0
	allocatedBudget := 0.0
	for _, c := range campaigns {
		if c.Status == types.CampaignStatusCancelled {
			cancelled++
		}
		totalBudget += c.TotalBudget
		allocatedBudget += c.AllocatedBudget
	}

	// High cancellation rate.
	if totalCampaigns > cancellationMinCampaigns {
		rate := float64(cancelled) / float64(totalCampaigns)
		if rate > cancellationRateLimit {
			signals = append(signals, types.RiskSignal{
				Type:     types.SignalWarning,
				Category: "campaign_management",
				Message:  "High campaign cancellation rate",
				Details:  fmt.Sprintf("%.0f%% of campaigns cancelled", rate*100),
			})
		}
	}

	// Budget underutilization.
	if totalBudget > 0 {
		utilization := allocatedBudget / totalBudget
		if utilization < utilizationFloor {
			signals = append(signals, types.RiskSignal{
				Type:     types.SignalInfo,
				Category: "financials",
				Message:  "Budget significantly underutilized",
				Details:  fmt.Sprintf("%.0f%% of total budget allocated", utilization*100),
			})
		}
	}

	totalInvitations := len(invitations)
	accepted := 0
	negotiated := 0
	for _, inv := range invitations {
		if inv.Status == types.InvitationAccepted {
			accepted++
		}
		if inv.BasePayout > 0 && inv.OfferedPayout != inv.BasePayout {
			negotiated++
		}
	}

	// Low invitation acceptance.
	if totalInvitations > acceptanceMinInvitations {
		rate := float64(accepted) / float64(totalInvitations)
		if rate < acceptanceRateFloor {
			signals = append(signals, types.RiskSignal{
				Type:     types.SignalWarning,
				Category: "creator_engagement",
				Message:  "Low invitation acceptance rate",
				Details:  fmt.Sprintf("%.0f%% of invitations accepted", rate*100),
			})
		}
	}

	// Frequent payout negotiation.
	if totalInvitations > negotiationMinInvitations {
		rate := float64(negotiated) / float64(totalInvitations)
		if rate > negotiationRateLimit {
			signals = append(signals, types.RiskSignal{
				Type:     types.SignalInfo,
				Category: "creator_engagement",
				Message:  "Payouts frequently modified from base offer",
				Details:  fmt.Sprintf("%.0f%% of invitations negotiated", rate*100),
			})
		}
	}

	// Rapid expansion on a young account.
	if daysSinceCreation < rapidExpansionMaxDays && totalCampaigns > rapidExpansionCampaigns {
		signals = append(signals, types.RiskSignal{
			Type:     types.SignalInfo,
			Category: "activity",
			Message:  "Rapid campaign expansion for a new account",
			Details:  fmt.Sprintf("%d campaigns within %d days of signup", totalCampaigns, daysSinceCreation),
		})
	}

	// Solo operator running high volume.
	if teamSize == 0 && totalCampaigns > soloHighVolumeCampaigns {
		signals = append(signals, types.RiskSignal{
			Type:     types.SignalInfo,
			Category: "structure",
			Message:  "High campaign volume with no team members",
			Details:  fmt.Sprintf("%d campaigns managed solo", totalCampaigns),
		})
	}

	return signals
}
