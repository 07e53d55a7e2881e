package history

import (
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceTrend(t *testing.T) {
	s := newTestStore(t)
	today := time.Now()
	d1 := today.AddDate(0, 0, -2).Format(schema.DateFormat)
	d2 := today.Format(schema.DateFormat)

	for _, snap := range []schema.SprintSnapshot{
		{Date: d2, Sprint: "Sprint 7", ComplianceRate: 85},
		{Date: d1, Sprint: "Sprint 7", ComplianceRate: 70},
	} {
		_, err := s.SaveSnapshot(snap)
		require.NoError(t, err)
	}

	trend, err := s.ComplianceTrend(30)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, d1, trend[0].Date)
	assert.InDelta(t, 70, trend[0].ComplianceRate, 0.001)
	assert.InDelta(t, 85, trend[1].ComplianceRate, 0.001)
}

func TestVelocityTrend(t *testing.T) {
	s := newTestStore(t)

	for _, v := range []schema.VelocityData{
		{Sprint: "Sprint 8", CompletedPoints: 25, PlannedPoints: 30, StartDate: "2024-03-15", CompletionRate: 83.3},
		{Sprint: "Sprint 7", CompletedPoints: 18, PlannedPoints: 20, StartDate: "2024-03-01", CompletionRate: 90},
	} {
		_, err := s.SaveVelocity(v)
		require.NoError(t, err)
	}

	trend, err := s.VelocityTrend()
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, "Sprint 7", trend[0].Sprint)
	assert.InDelta(t, 90, trend[0].CompletionRate, 0.001)
}

func TestBurndownFromSnapshots(t *testing.T) {
	s := newTestStore(t)
	today := time.Now()
	start := today.AddDate(0, 0, -4)
	mid := today.AddDate(0, 0, -2)
	end := today

	for _, snap := range []schema.SprintSnapshot{
		{Date: mid.Format(schema.DateFormat), Sprint: "Sprint 7", RemainingPoints: 12, CompletedPoints: 8},
		{Date: end.Format(schema.DateFormat), Sprint: "Sprint 7", RemainingPoints: 5, CompletedPoints: 15},
	} {
		_, err := s.SaveSnapshot(snap)
		require.NoError(t, err)
	}

	b, err := s.BurndownFromSnapshots("Sprint 7", start.Format(schema.DateFormat), end.Format(schema.DateFormat), 20)
	require.NoError(t, err)

	assert.Equal(t, 5, b.SprintDays)
	require.Len(t, b.Dates, 5)
	assert.InDelta(t, 20, b.Ideal[0], 0.001)
	assert.InDelta(t, 16, b.Ideal[1], 0.001)

	// Days before the first snapshot hold the full total; snapshot days and
	// the gaps after them carry the snapshot values forward.
	assert.InDelta(t, 20, b.Actual[0], 0.001)
	assert.InDelta(t, 20, b.Actual[1], 0.001)
	assert.InDelta(t, 12, b.Actual[2], 0.001)
	assert.InDelta(t, 12, b.Actual[3], 0.001)
	assert.InDelta(t, 5, b.Actual[4], 0.001)
	assert.InDelta(t, 15, b.Completed[4], 0.001)
}

func TestBurndownFromSnapshotsBadRange(t *testing.T) {
	s := newTestStore(t)
	_, err := s.BurndownFromSnapshots("Sprint 7", "soon", "later", 20)
	assert.Error(t, err)
}

func TestNewSnapshotFromResults(t *testing.T) {
	summary := &schema.ReportSummary{ComplianceRate: 75, TasksMissingUpdates: 2}
	results := []schema.Compliance{
		{Sprint: "Sprint 7", Progress: schema.StatusDone, StoryPoints: strPtr("5")},
		{Sprint: "Sprint 7", Progress: schema.StatusInProgress, StoryPoints: strPtr("3")},
		{Sprint: "Sprint 7", Progress: schema.StatusTodo, StoryPoints: strPtr("2")},
		{Sprint: "Sprint 8", Progress: schema.StatusDone, StoryPoints: strPtr("13")},
	}

	snap := NewSnapshotFromResults(results, summary, "Sprint 7", "2024-03-10")

	assert.Equal(t, "2024-03-10", snap.Date)
	assert.Equal(t, "Sprint 7", snap.Sprint)
	assert.Equal(t, 3, snap.TotalTasks)
	assert.InDelta(t, 10, snap.TotalPoints, 0.001)
	assert.InDelta(t, 5, snap.CompletedPoints, 0.001)
	assert.InDelta(t, 5, snap.RemainingPoints, 0.001)
	assert.Equal(t, 1, snap.CompletedTasks)
	assert.Equal(t, 1, snap.InProgressTasks)
	assert.Equal(t, 1, snap.TodoTasks)
	assert.InDelta(t, 75, snap.ComplianceRate, 0.001)
	assert.Equal(t, 2, snap.TasksMissingUpdates)
	assert.InDelta(t, 5, snap.PointsByStatus[schema.StatusDone], 0.001)
}

func TestNewSnapshotFromResultsDefaultsDate(t *testing.T) {
	snap := NewSnapshotFromResults(nil, nil, "Sprint 7", "")
	assert.Equal(t, time.Now().Format(schema.DateFormat), snap.Date)
}

func strPtr(v string) *string { return &v }
