package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshots() []schema.SprintSnapshot {
	return []schema.SprintSnapshot{
		{
			Date: "2024-03-10", Sprint: "Sprint 7",
			TotalPoints: 20, CompletedPoints: 8, RemainingPoints: 12,
			TotalTasks: 10, CompletedTasks: 4, InProgressTasks: 3, TodoTasks: 3,
			ComplianceRate: 80, TasksMissingUpdates: 2,
			PointsByStatus: map[string]float64{schema.StatusDone: 8},
			GeneratedAt:    "2024-03-10T08:00:00Z",
		},
		{
			Date: "2024-03-11", Sprint: "Sprint 7",
			TotalPoints: 20, CompletedPoints: 13, RemainingPoints: 7,
			TotalTasks: 10, CompletedTasks: 6,
			ComplianceRate: 90,
		},
	}
}

func TestSnapshotRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(SnapshotRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"snapshot_date",
		"sprint",
		"total_points",
		"completed_points",
		"remaining_points",
		"total_tasks",
		"completed_tasks",
		"in_progress_tasks",
		"todo_tasks",
		"compliance_rate",
		"tasks_missing_updates",
		"points_by_status",
		"generated_at",
	}

	for _, colName := range expectedColumns {
		_, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestVelocityRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(VelocityRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"sprint",
		"planned_points",
		"completed_points",
		"completion_rate",
		"start_date",
		"end_date",
		"duration_days",
	}

	for _, colName := range expectedColumns {
		_, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteSnapshotsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "snapshots.parquet")

	data := ConvertSnapshots(sampleSnapshots())
	require.Len(t, data, 2)

	err := WriteSnapshotsParquet(data, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[SnapshotRow](file)
	defer reader.Close()

	readData := make([]SnapshotRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "2024-03-10", readData[0].SnapshotDate)
	assert.Equal(t, "Sprint 7", readData[0].Sprint)
	assert.InDelta(t, 8.0, readData[0].CompletedPoints, 0.001)
	assert.Equal(t, int32(2), readData[0].TasksMissingUpdates)

	// First row carries the JSON breakdown and timestamp, second row has
	// neither.
	require.NotNil(t, readData[0].PointsByStatus)
	assert.Contains(t, *readData[0].PointsByStatus, schema.StatusDone)
	require.NotNil(t, readData[0].GeneratedAt)
	assert.Equal(t, "2024-03-10T08:00:00Z", *readData[0].GeneratedAt)
	assert.Nil(t, readData[1].PointsByStatus)
	assert.Nil(t, readData[1].GeneratedAt)
}

func TestWriteVelocitiesParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "velocities.parquet")

	data := ConvertVelocities([]schema.VelocityData{
		{
			Sprint: "Sprint 6", PlannedPoints: 25, CompletedPoints: 20,
			StartDate: "2024-02-12", EndDate: "2024-02-25",
			DurationDays: 14, CompletionRate: 80,
		},
		{Sprint: "Sprint 7", PlannedPoints: 20, CompletedPoints: 18, CompletionRate: 90},
	})

	err := WriteVelocitiesParquet(data, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[VelocityRow](file)
	defer reader.Close()

	readData := make([]VelocityRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "Sprint 6", readData[0].Sprint)
	assert.InDelta(t, 80.0, readData[0].CompletionRate, 0.001)
	require.NotNil(t, readData[0].StartDate)
	assert.Equal(t, "2024-02-12", *readData[0].StartDate)
	assert.Equal(t, int32(14), readData[0].DurationDays)

	assert.Nil(t, readData[1].StartDate)
	assert.Nil(t, readData[1].EndDate)
}

func TestWriteSnapshotsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_snapshots.parquet")

	err := WriteSnapshotsParquet([]SnapshotRow{}, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "file should contain schema even if empty")
}

func TestWriteSnapshotsParquet_InvalidPath(t *testing.T) {
	data := ConvertSnapshots(sampleSnapshots())
	err := WriteSnapshotsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

func TestWriteVelocitiesParquet_InvalidPath(t *testing.T) {
	err := WriteVelocitiesParquet([]VelocityRow{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

func TestConvertSnapshots(t *testing.T) {
	rows := ConvertSnapshots(sampleSnapshots())
	require.Len(t, rows, 2)
	assert.Equal(t, int32(10), rows[0].TotalTasks)
	assert.Equal(t, int32(3), rows[0].InProgressTasks)
	require.NotNil(t, rows[0].PointsByStatus)
	assert.JSONEq(t, `{"Done":8}`, *rows[0].PointsByStatus)
}
