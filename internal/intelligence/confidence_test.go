package intelligence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/creator-marketplace/internal/types"
)

func TestConfidenceFor_NilTimestamp(t *testing.T) {
	assert.Equal(t, types.ConfidenceNone, ConfidenceFor(nil, time.Now()))
}

func TestConfidenceFor_Windows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{time.Hour, types.ConfidenceHigh},
		{7 * 24 * time.Hour, types.ConfidenceHigh},
		{8 * 24 * time.Hour, types.ConfidenceMedium},
		{30 * 24 * time.Hour, types.ConfidenceMedium},
		{31 * 24 * time.Hour, types.ConfidenceLow},
		{365 * 24 * time.Hour, types.ConfidenceLow},
	}
	for _, tc := range cases {
		ts := now.Add(-tc.age)
		assert.Equal(t, tc.want, ConfidenceFor(&ts, now), "age %s", tc.age)
	}
}

func TestRateDataSources(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Hour)
	stale := now.Add(-60 * 24 * time.Hour)

	rated := RateDataSources([]types.DataSource{
		{Table: "campaigns", RecordCount: 10, LastUpdated: &fresh},
		{Table: "invitations", RecordCount: 3, LastUpdated: &stale},
		{Table: "notifications"},
	}, now)

	assert.Equal(t, types.ConfidenceHigh, rated[0].Confidence)
	assert.Equal(t, types.ConfidenceLow, rated[1].Confidence)
	assert.Equal(t, types.ConfidenceNone, rated[2].Confidence)
}
