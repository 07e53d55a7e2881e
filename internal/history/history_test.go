package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Sprint7", "Sprint7"},
		{"spaces", "Sprint 7", "Sprint_7"},
		{"punctuation", "Sprint #7 (QA)", "Sprint_7_QA"},
		{"traversal", "../../etc/passwd", "etcpasswd"},
		{"dashes and spaces", "a - b  c", "a_b_c"},
		{"empty", "", "unnamed"},
		{"only junk", "!!!", "unnamed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeName(tc.in))
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	today := time.Now().Format(schema.DateFormat)

	snap := schema.SprintSnapshot{
		Date:            today,
		Sprint:          "Sprint 7",
		TotalPoints:     20,
		CompletedPoints: 8,
		RemainingPoints: 12,
		TotalTasks:      5,
		ComplianceRate:  80,
		PointsByStatus:  map[string]float64{schema.StatusDone: 8},
	}

	path, err := s.SaveSnapshot(snap)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, today+"_Sprint_7.json", filepath.Base(path))

	got, err := s.LoadSnapshot(today, "Sprint 7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.TotalPoints, got.TotalPoints)
	assert.NotEmpty(t, got.GeneratedAt)

	missing, err := s.LoadSnapshot(today, "Sprint 99")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSnapshotsForSprintOrderAndCutoff(t *testing.T) {
	s := newTestStore(t)
	today := time.Now()
	recent := today.AddDate(0, 0, -2).Format(schema.DateFormat)
	old := today.AddDate(0, 0, -45).Format(schema.DateFormat)

	for _, snap := range []schema.SprintSnapshot{
		{Date: today.Format(schema.DateFormat), Sprint: "Sprint 7", TotalPoints: 20},
		{Date: recent, Sprint: "Sprint 7", TotalPoints: 18},
		{Date: old, Sprint: "Sprint 7", TotalPoints: 10},
		{Date: recent, Sprint: "Sprint 8", TotalPoints: 99},
	} {
		_, err := s.SaveSnapshot(snap)
		require.NoError(t, err)
	}

	got, err := s.SnapshotsForSprint("Sprint 7", 30)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recent, got[0].Date)
	assert.Equal(t, today.Format(schema.DateFormat), got[1].Date)

	latest, err := s.LatestSnapshot("Sprint 7")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, today.Format(schema.DateFormat), latest.Date)
}

func TestSnapshotsSkipCorruptFiles(t *testing.T) {
	s := newTestStore(t)
	today := time.Now().Format(schema.DateFormat)

	_, err := s.SaveSnapshot(schema.SprintSnapshot{Date: today, Sprint: "Sprint 7"})
	require.NoError(t, err)

	corrupt := filepath.Join(s.snapshotsDir, today+"_Sprint_8.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o644))

	got, err := s.AllSnapshots(30)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sprint 7", got[0].Sprint)
}

func TestAtomicWriteLeavesPriorDataOnTempLeftover(t *testing.T) {
	s := newTestStore(t)
	today := time.Now().Format(schema.DateFormat)

	_, err := s.SaveSnapshot(schema.SprintSnapshot{Date: today, Sprint: "Sprint 7", TotalPoints: 20})
	require.NoError(t, err)

	// A stray temp file from an interrupted run must not shadow real data.
	stray := filepath.Join(s.snapshotsDir, "."+today+"_Sprint_7_123.tmp")
	require.NoError(t, os.WriteFile(stray, []byte("partial"), 0o644))

	got, err := s.LoadSnapshot(today, "Sprint 7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 20, got.TotalPoints, 0.001)

	all, err := s.AllSnapshots(30)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestVelocityUpsert(t *testing.T) {
	s := newTestStore(t)

	first := schema.VelocityData{Sprint: "Sprint 7", CompletedPoints: 18, PlannedPoints: 20, StartDate: "2024-03-01", EndDate: "2024-03-14", DurationDays: 14, CompletionRate: 90}
	_, err := s.SaveVelocity(first)
	require.NoError(t, err)

	second := first
	second.CompletedPoints = 20
	second.CompletionRate = 100
	_, err = s.SaveVelocity(second)
	require.NoError(t, err)

	got, err := s.LoadVelocity("Sprint 7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 20, got.CompletedPoints, 0.001)

	all, err := s.AllVelocities()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAllVelocitiesSortedByStartDate(t *testing.T) {
	s := newTestStore(t)

	for _, v := range []schema.VelocityData{
		{Sprint: "Sprint 8", StartDate: "2024-03-15"},
		{Sprint: "Sprint 7", StartDate: "2024-03-01"},
	} {
		_, err := s.SaveVelocity(v)
		require.NoError(t, err)
	}

	all, err := s.AllVelocities()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Sprint 7", all[0].Sprint)
	assert.Equal(t, "Sprint 8", all[1].Sprint)
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	today := time.Now()

	_, err := s.SaveSnapshot(schema.SprintSnapshot{Date: today.Format(schema.DateFormat), Sprint: "Sprint 7"})
	require.NoError(t, err)
	_, err = s.SaveSnapshot(schema.SprintSnapshot{Date: today.AddDate(0, 0, -120).Format(schema.DateFormat), Sprint: "Sprint 1"})
	require.NoError(t, err)

	// No date prefix, must survive cleanup untouched.
	odd := filepath.Join(s.snapshotsDir, "notes.json")
	require.NoError(t, os.WriteFile(odd, []byte("{}"), 0o644))

	removed, err := s.Cleanup(90)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.FileExists(t, odd)

	remaining, err := s.SnapshotsForSprint("Sprint 7", 30)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
