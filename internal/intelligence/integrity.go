package intelligence

import (
	"time"

	"github.com/jordan/creator-marketplace/internal/types"
)

// TableStatus classifies one platform table's freshness.
//
// Empty tables are never a health failure: on a newly launched platform a
// table with zero records reports "empty" regardless of its (infinite)
// staleness, and contributes to neither warning nor critical counts. Only
// stale, populated tables degrade integrity.
func TableStatus(recordCount int, lastUpdated *time.Time, now time.Time) string {
	if recordCount == 0 {
		return types.TableStatusEmpty
	}
	if lastUpdated == nil {
		return types.TableStatusCritical
	}
	age := now.Sub(*lastUpdated)
	switch {
	case age <= highConfidenceWindow:
		return types.TableStatusHealthy
	case age <= mediumConfidenceWindow:
		return types.TableStatusWarning
	default:
		return types.TableStatusCritical
	}
}

// BuildIntegrityReport assesses every supplied table and rolls the counts
// up into a platform-wide health tier. Input order is preserved.
func BuildIntegrityReport(tables []types.TableHealth, now time.Time) types.IntegrityReport {
	report := types.IntegrityReport{
		Tables:      make([]types.TableHealth, 0, len(tables)),
		GeneratedAt: now,
	}

	for _, t := range tables {
		t.Status = TableStatus(t.RecordCount, t.LastUpdated, now)
		t.Confidence = ConfidenceFor(t.LastUpdated, now)
		if t.RecordCount == 0 {
			// Confidence tracks staleness alone; an empty table's rating is
			// "none" rather than whatever its timestamp would suggest.
			t.Confidence = types.ConfidenceNone
		}
		report.Tables = append(report.Tables, t)

		switch t.Status {
		case types.TableStatusHealthy:
			report.HealthyCount++
		case types.TableStatusWarning:
			report.WarningCount++
		case types.TableStatusCritical:
			report.CriticalCount++
		case types.TableStatusEmpty:
			report.EmptyCount++
		}
	}

	switch {
	case report.CriticalCount > 0:
		report.OverallHealth = types.HealthCritical
	case report.WarningCount > 0:
		report.OverallHealth = types.HealthAttention
	default:
		report.OverallHealth = types.HealthHealthy
	}
	return report
}
