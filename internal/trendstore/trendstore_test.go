package trendstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"sprintwatch_snapshots"`, quoteTableName(snapshotsTable, schema.SQLiteBackend))
	assert.Equal(t, "`sprintwatch_snapshots`", quoteTableName(snapshotsTable, schema.MySQLBackend))
	assert.Equal(t, `"sprintwatch_snapshots"`, quoteTableName(snapshotsTable, schema.PostgreSQLBackend))
}

func TestNoneBackendIsNoop(t *testing.T) {
	ix, err := NewIndex(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = ix.Close() }()

	require.NoError(t, ix.RecordSnapshot(&schema.SprintSnapshot{Date: "2024-03-10", Sprint: "Sprint 7"}))

	trend, err := ix.ComplianceTrend(30)
	require.NoError(t, err)
	assert.Nil(t, trend)
}

func TestSQLiteRecordAndTrend(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trends.db")
	ix, err := NewIndex(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = ix.Close() }()

	today := time.Now().Format(schema.DateFormat)
	yesterday := time.Now().AddDate(0, 0, -1).Format(schema.DateFormat)

	snaps := []schema.SprintSnapshot{
		{Date: yesterday, Sprint: "Sprint 7", ComplianceRate: 70, TotalPoints: 20, CompletedPoints: 5, RemainingPoints: 15, PointsByStatus: map[string]float64{schema.StatusDone: 5}},
		{Date: today, Sprint: "Sprint 7", ComplianceRate: 85, TotalPoints: 20, CompletedPoints: 12, RemainingPoints: 8},
	}
	for i := range snaps {
		require.NoError(t, ix.RecordSnapshot(&snaps[i]))
	}

	trend, err := ix.ComplianceTrend(30)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, yesterday, trend[0].Date)
	assert.InDelta(t, 70, trend[0].ComplianceRate, 0.001)
	assert.Equal(t, "Sprint 7", trend[0].Sprint)
	assert.InDelta(t, 85, trend[1].ComplianceRate, 0.001)
}

func TestSQLiteRecordSnapshotUpsert(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trends.db")
	ix, err := NewIndex(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = ix.Close() }()

	today := time.Now().Format(schema.DateFormat)

	first := schema.SprintSnapshot{Date: today, Sprint: "Sprint 7", ComplianceRate: 50}
	require.NoError(t, ix.RecordSnapshot(&first))

	second := first
	second.ComplianceRate = 90
	require.NoError(t, ix.RecordSnapshot(&second))

	trend, err := ix.ComplianceTrend(7)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.InDelta(t, 90, trend[0].ComplianceRate, 0.001)
}

func TestComplianceTrendCutoff(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trends.db")
	ix, err := NewIndex(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = ix.Close() }()

	old := schema.SprintSnapshot{Date: time.Now().AddDate(0, 0, -60).Format(schema.DateFormat), Sprint: "Sprint 1", ComplianceRate: 40}
	require.NoError(t, ix.RecordSnapshot(&old))

	trend, err := ix.ComplianceTrend(30)
	require.NoError(t, err)
	assert.Empty(t, trend)
}

func TestUnsupportedBackend(t *testing.T) {
	_, err := NewIndex(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
