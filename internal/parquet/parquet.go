// Package parquet exports sprint history data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/parquet-go/parquet-go"
)

// SnapshotRow is one daily sprint snapshot flattened for columnar export.
type SnapshotRow struct {
	// SnapshotDate is the observation date in YYYY-MM-DD form
	SnapshotDate string `parquet:"snapshot_date,snappy"`

	// Sprint is the sprint the snapshot belongs to
	Sprint string `parquet:"sprint,snappy"`

	// TotalPoints is the planned story point total at snapshot time
	TotalPoints float64 `parquet:"total_points,snappy"`

	// CompletedPoints is the story points completed so far
	CompletedPoints float64 `parquet:"completed_points,snappy"`

	// RemainingPoints is the story points still open
	RemainingPoints float64 `parquet:"remaining_points,snappy"`

	// TotalTasks is the number of work items in the sprint
	TotalTasks int32 `parquet:"total_tasks,snappy"`

	// CompletedTasks is the number of items in the terminal status
	CompletedTasks int32 `parquet:"completed_tasks,snappy"`

	// InProgressTasks counts items actively being worked
	InProgressTasks int32 `parquet:"in_progress_tasks,snappy"`

	// TodoTasks counts items not yet started
	TodoTasks int32 `parquet:"todo_tasks,snappy"`

	// ComplianceRate is the percentage of items passing all checks
	ComplianceRate float64 `parquet:"compliance_rate,snappy"`

	// TasksMissingUpdates counts items without a recent activity signal
	TasksMissingUpdates int32 `parquet:"tasks_missing_updates,snappy"`

	// PointsByStatus holds the per-status point breakdown as JSON (nullable)
	PointsByStatus *string `parquet:"points_by_status,optional,snappy"`

	// GeneratedAt is the RFC 3339 creation timestamp (nullable)
	GeneratedAt *string `parquet:"generated_at,optional,snappy"`
}

// VelocityRow is one sprint close-out record flattened for columnar export.
type VelocityRow struct {
	// Sprint is the closed sprint's name
	Sprint string `parquet:"sprint,snappy"`

	// PlannedPoints is the story point total committed at sprint start
	PlannedPoints float64 `parquet:"planned_points,snappy"`

	// CompletedPoints is the story points delivered by sprint end
	CompletedPoints float64 `parquet:"completed_points,snappy"`

	// CompletionRate is completed over planned as a percentage
	CompletionRate float64 `parquet:"completion_rate,snappy"`

	// StartDate is the sprint start in YYYY-MM-DD form (nullable)
	StartDate *string `parquet:"start_date,optional,snappy"`

	// EndDate is the sprint end in YYYY-MM-DD form (nullable)
	EndDate *string `parquet:"end_date,optional,snappy"`

	// DurationDays is the inclusive sprint length in days
	DurationDays int32 `parquet:"duration_days,snappy"`
}

// WriteSnapshotsParquet writes a slice of SnapshotRow structs to a Parquet file.
func WriteSnapshotsParquet(data []SnapshotRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SnapshotRow struct tags.
	writer := parquet.NewGenericWriter[SnapshotRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteVelocitiesParquet writes a slice of VelocityRow structs to a Parquet file.
func WriteVelocitiesParquet(data []VelocityRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the VelocityRow struct tags.
	writer := parquet.NewGenericWriter[VelocityRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSnapshots converts schema.SprintSnapshot records to SnapshotRow for Parquet export.
func ConvertSnapshots(snapshots []schema.SprintSnapshot) []SnapshotRow {
	result := make([]SnapshotRow, len(snapshots))
	for i, s := range snapshots {
		row := SnapshotRow{
			SnapshotDate:        s.Date,
			Sprint:              s.Sprint,
			TotalPoints:         s.TotalPoints,
			CompletedPoints:     s.CompletedPoints,
			RemainingPoints:     s.RemainingPoints,
			TotalTasks:          int32(s.TotalTasks),
			CompletedTasks:      int32(s.CompletedTasks),
			InProgressTasks:     int32(s.InProgressTasks),
			TodoTasks:           int32(s.TodoTasks),
			ComplianceRate:      s.ComplianceRate,
			TasksMissingUpdates: int32(s.TasksMissingUpdates),
		}
		if len(s.PointsByStatus) > 0 {
			if encoded, err := json.Marshal(s.PointsByStatus); err == nil {
				text := string(encoded)
				row.PointsByStatus = &text
			}
		}
		if s.GeneratedAt != "" {
			generated := s.GeneratedAt
			row.GeneratedAt = &generated
		}
		result[i] = row
	}
	return result
}

// ConvertVelocities converts schema.VelocityData records to VelocityRow for Parquet export.
func ConvertVelocities(velocities []schema.VelocityData) []VelocityRow {
	result := make([]VelocityRow, len(velocities))
	for i, v := range velocities {
		row := VelocityRow{
			Sprint:          v.Sprint,
			PlannedPoints:   v.PlannedPoints,
			CompletedPoints: v.CompletedPoints,
			CompletionRate:  v.CompletionRate,
			DurationDays:    int32(v.DurationDays),
		}
		if v.StartDate != "" {
			start := v.StartDate
			row.StartDate = &start
		}
		if v.EndDate != "" {
			end := v.EndDate
			row.EndDate = &end
		}
		result[i] = row
	}
	return result
}
