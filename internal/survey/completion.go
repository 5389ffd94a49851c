// Package survey provides Brand-Fit survey completion scoring.
//
// The completion percentage gates UI prompts and feeds the match-rate boost
// shown to creators. Every surface that displays it (profile page, survey
// hub, matching banner) must go through CompletionPercent so the number can
// never drift between call sites.
package survey

import (
	"math"

	"github.com/jordan/creator-marketplace/internal/types"
)

// TrackedFieldCount is the number of Brand-Fit survey questions counted
// toward completion.
const TrackedFieldCount = 10

// CompletionPercent returns the Brand-Fit completion percentage for a
// profile: answered tracked fields over TrackedFieldCount, scaled to 0-100
// and rounded to the nearest integer. A nil profile is 0% complete.
func CompletionPercent(p *types.BrandFitProfile) int {
	answered := AnsweredCount(p)
	return int(math.Round(float64(answered) / float64(TrackedFieldCount) * 100))
}

// AnsweredCount returns how many of the tracked fields hold a non-empty
// answer.
func AnsweredCount(p *types.BrandFitProfile) int {
	count := 0
	for _, set := range p.TrackedFields() {
		if set {
			count++
		}
	}
	return count
}
