package intelligence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/creator-marketplace/internal/types"
)

// An empty table is "empty", never critical, no matter how stale its
// timestamp (or whether it has one at all). Stale-with-data is unhealthy;
// empty is not.
func TestTableStatus_EmptyNeverCritical(t *testing.T) {
	now := time.Now()
	ancient := now.Add(-10 * 365 * 24 * time.Hour)

	assert.Equal(t, types.TableStatusEmpty, TableStatus(0, nil, now))
	assert.Equal(t, types.TableStatusEmpty, TableStatus(0, &ancient, now))
}

func TestTableStatus_PopulatedStaleness(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Hour)
	aging := now.Add(-10 * 24 * time.Hour)
	stale := now.Add(-60 * 24 * time.Hour)

	assert.Equal(t, types.TableStatusHealthy, TableStatus(5, &fresh, now))
	assert.Equal(t, types.TableStatusWarning, TableStatus(5, &aging, now))
	assert.Equal(t, types.TableStatusCritical, TableStatus(5, &stale, now))
	assert.Equal(t, types.TableStatusCritical, TableStatus(5, nil, now))
}

func TestBuildIntegrityReport_EmptyTablesDoNotDegradeHealth(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Hour)

	report := BuildIntegrityReport([]types.TableHealth{
		{Table: "campaigns", RecordCount: 12, LastUpdated: &fresh},
		{Table: "invitations", RecordCount: 0},
		{Table: "notifications", RecordCount: 0},
	}, now)

	assert.Equal(t, 1, report.HealthyCount)
	assert.Equal(t, 2, report.EmptyCount)
	assert.Equal(t, 0, report.WarningCount)
	assert.Equal(t, 0, report.CriticalCount)
	assert.Equal(t, types.HealthHealthy, report.OverallHealth)
}

func TestBuildIntegrityReport_StalePopulatedTableIsCritical(t *testing.T) {
	now := time.Now()
	stale := now.Add(-90 * 24 * time.Hour)

	report := BuildIntegrityReport([]types.TableHealth{
		{Table: "campaigns", RecordCount: 12, LastUpdated: &stale},
		{Table: "invitations", RecordCount: 0},
	}, now)

	assert.Equal(t, 1, report.CriticalCount)
	assert.Equal(t, types.HealthCritical, report.OverallHealth)
}

func TestBuildIntegrityReport_WarningTier(t *testing.T) {
	now := time.Now()
	aging := now.Add(-14 * 24 * time.Hour)

	report := BuildIntegrityReport([]types.TableHealth{
		{Table: "campaigns", RecordCount: 12, LastUpdated: &aging},
	}, now)

	assert.Equal(t, types.HealthAttention, report.OverallHealth)
}

func TestBuildIntegrityReport_EmptyTableConfidenceIsNone(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Hour)

	report := BuildIntegrityReport([]types.TableHealth{
		{Table: "invitations", RecordCount: 0, LastUpdated: &fresh},
	}, now)

	require.Len(t, report.Tables, 1)
	assert.Equal(t, types.ConfidenceNone, report.Tables[0].Confidence)
	assert.Equal(t, types.TableStatusEmpty, report.Tables[0].Status)
}

func TestBuildIntegrityReport_PreservesInputOrder(t *testing.T) {
	now := time.Now()
	report := BuildIntegrityReport([]types.TableHealth{
		{Table: "b"}, {Table: "a"}, {Table: "c"},
	}, now)

	require.Len(t, report.Tables, 3)
	assert.Equal(t, "b", report.Tables[0].Table)
	assert.Equal(t, "a", report.Tables[1].Table)
	assert.Equal(t, "c", report.Tables[2].Table)
}
