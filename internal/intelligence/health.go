package intelligence

import (
	"math"

	"github.com/jordan/creator-marketplace/internal/types"
)

// Signal weights for the detail-view risk score.
const (
	criticalSignalWeight = 30
	warningSignalWeight  = 15
	infoSignalWeight     = 5
)

// Health tier score thresholds.
const (
	criticalScoreThreshold  = 50
	attentionScoreThreshold = 25
)

// DetailRiskScore computes the detail-view risk score from fired signals:
// 30 per critical, 15 per warning, 5 per info, clamped to [0, 100].
//
// This is intentionally a different formula from SummaryRiskScore: the two
// views have different data available, and unifying them would change the
// numbers admins already see.
func DetailRiskScore(signals []types.RiskSignal) int {
	score := 0
	for _, s := range signals {
		switch s.Type {
		case types.SignalCritical:
			score += criticalSignalWeight
		case types.SignalWarning:
			score += warningSignalWeight
		case types.SignalInfo:
			score += infoSignalWeight
		}
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ComputeHealth derives the risk score and health tier from fired signals.
// Tier assignment considers signal presence, not just the score: a single
// warning signal puts a brand in "attention" even at score 15.
func ComputeHealth(signals []types.RiskSignal) (int, string) {
	score := DetailRiskScore(signals)

	hasCritical := false
	hasWarning := false
	for _, s := range signals {
		switch s.Type {
		case types.SignalCritical:
			hasCritical = true
		case types.SignalWarning:
			hasWarning = true
		}
	}

	switch {
	case score > criticalScoreThreshold || hasCritical:
		return score, types.HealthCritical
	case score > attentionScoreThreshold || hasWarning:
		return score, types.HealthAttention
	default:
		return score, types.HealthHealthy
	}
}

// SummaryRiskScore computes the roster-view risk score directly from the
// cancellation ratio and budget utilization rate. The roster query has no
// account-age or negotiation data available cheaply, so this deliberately
// simpler formula stays separate from DetailRiskScore.
func SummaryRiskScore(cancelledRate, utilizationRate float64) int {
	if cancelledRate < 0 {
		cancelledRate = 0
	}
	if cancelledRate > 1 {
		cancelledRate = 1
	}
	if utilizationRate < 0 {
		utilizationRate = 0
	}
	if utilizationRate > 1 {
		utilizationRate = 1
	}

	score := int(math.Round(60*cancelledRate + 40*(1-utilizationRate)))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// SummaryHealth maps a summary risk score to a tier. The roster view has no
// signal list, so only the score drives the classification.
func SummaryHealth(score int) string {
	switch {
	case score > criticalScoreThreshold:
		return types.HealthCritical
	case score > attentionScoreThreshold:
		return types.HealthAttention
	default:
		return types.HealthHealthy
	}
}
