package matching

import (
	"github.com/jordan/creator-marketplace/internal/survey"
	"github.com/jordan/creator-marketplace/internal/types"
)

// MatchCampaigns evaluates a creator's Brand-Fit profile against a campaign
// catalog.
//
// When the profile holds no survey data at all, every campaign passes
// through unscored in both views and HasProfileData is false: with zero
// signal the engine defers to a "complete your profile" prompt instead of
// producing zero-confidence low scores.
//
// With profile data present, Matched holds campaigns scoring at or above
// MatchedThreshold that no policy constraint excludes, All holds the whole
// catalog with scores attached, and TopMatchCount counts top matches across
// the full catalog rather than the filtered view. Campaign order is the
// caller's declaration order in both views; identical inputs always yield
// identical outputs.
func (e *Engine) MatchCampaigns(profile *types.BrandFitProfile, campaigns []types.Campaign) types.MatchOutcome {
	completion := survey.CompletionPercent(profile)

	if profile.IsEmpty() {
		all := make([]types.ScoredCampaign, 0, len(campaigns))
		for _, c := range campaigns {
			all = append(all, types.ScoredCampaign{Campaign: c})
		}
		return types.MatchOutcome{
			Matched:           all,
			All:               all,
			HasProfileData:    false,
			TopMatchCount:     0,
			CompletionPercent: completion,
		}
	}

	all := make([]types.ScoredCampaign, 0, len(campaigns))
	matched := make([]types.ScoredCampaign, 0, len(campaigns))
	topCount := 0

	for _, c := range campaigns {
		result := e.Score(profile, &c)
		sc := types.ScoredCampaign{Campaign: c, MatchResult: result}
		all = append(all, sc)
		if result.IsTopMatch {
			topCount++
		}
		if !result.Excluded && result.MatchScore >= MatchedThreshold {
			matched = append(matched, sc)
		}
	}

	return types.MatchOutcome{
		Matched:           matched,
		All:               all,
		HasProfileData:    true,
		TopMatchCount:     topCount,
		CompletionPercent: completion,
	}
}
