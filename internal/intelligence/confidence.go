package intelligence

import (
	"time"

	"github.com/jordan/creator-marketplace/internal/types"
)

// Staleness windows for confidence ratings.
const (
	highConfidenceWindow   = 7 * 24 * time.Hour
	mediumConfidenceWindow = 30 * 24 * time.Hour
)

// ConfidenceFor rates a data source purely by the age of its last update:
// none when the timestamp is missing, high within 7 days, medium within 30,
// low beyond that.
func ConfidenceFor(lastUpdated *time.Time, now time.Time) string {
	if lastUpdated == nil {
		return types.ConfidenceNone
	}
	age := now.Sub(*lastUpdated)
	switch {
	case age <= highConfidenceWindow:
		return types.ConfidenceHigh
	case age <= mediumConfidenceWindow:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// RateDataSources attaches a confidence rating to each data source record.
func RateDataSources(sources []types.DataSource, now time.Time) []types.DataSource {
	out := make([]types.DataSource, len(sources))
	for i, src := range sources {
		src.Confidence = ConfidenceFor(src.LastUpdated, now)
		out[i] = src
	}
	return out
}
