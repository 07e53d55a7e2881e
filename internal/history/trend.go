package history

import (
	"fmt"
	"time"

	"github.com/opspulse/sprintwatch/schema"
)

// ComplianceTrend lists compliance-rate observations from the last N days,
// one per stored snapshot.
func (s *Store) ComplianceTrend(days int) ([]schema.TrendPoint, error) {
	snapshots, err := s.AllSnapshots(days)
	if err != nil {
		return nil, err
	}

	trend := make([]schema.TrendPoint, 0, len(snapshots))
	for _, snap := range snapshots {
		trend = append(trend, schema.TrendPoint{
			Date:           snap.Date,
			ComplianceRate: snap.ComplianceRate,
			Sprint:         snap.Sprint,
		})
	}
	return trend, nil
}

// VelocityTrend lists per-sprint velocity across all stored close-outs,
// ordered by sprint start date.
func (s *Store) VelocityTrend() ([]schema.VelocityPoint, error) {
	velocities, err := s.AllVelocities()
	if err != nil {
		return nil, err
	}

	trend := make([]schema.VelocityPoint, 0, len(velocities))
	for _, v := range velocities {
		trend = append(trend, schema.VelocityPoint{
			Sprint:          v.Sprint,
			CompletedPoints: v.CompletedPoints,
			PlannedPoints:   v.PlannedPoints,
			CompletionRate:  v.CompletionRate,
		})
	}
	return trend, nil
}

// BurndownFromSnapshots reconstructs a burndown series from stored snapshots
// instead of live work items. Days without a snapshot carry the last known
// remaining and completed values forward.
func (s *Store) BurndownFromSnapshots(sprint, sprintStart, sprintEnd string, totalPoints float64) (*schema.SnapshotBurndown, error) {
	snapshots, err := s.SnapshotsForSprint(sprint, 60)
	if err != nil {
		return nil, err
	}

	start := schema.ParseDate(sprintStart)
	end := schema.ParseDate(sprintEnd)
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("invalid sprint range %q to %q", sprintStart, sprintEnd)
	}

	sprintDays := int(end.Sub(start).Hours()/24) + 1

	byDate := make(map[string]*schema.SprintSnapshot, len(snapshots))
	for i := range snapshots {
		byDate[snapshots[i].Date] = &snapshots[i]
	}

	var dailyDecrement float64
	if sprintDays > 0 {
		dailyDecrement = totalPoints / float64(sprintDays)
	}

	b := &schema.SnapshotBurndown{
		TotalPoints: totalPoints,
		SprintDays:  sprintDays,
	}

	lastRemaining := totalPoints
	lastCompleted := 0.0

	for day, d := 0, start; !d.After(end); day, d = day+1, d.AddDate(0, 0, 1) {
		dateStr := d.Format(schema.DateFormat)
		b.Dates = append(b.Dates, dateStr)

		ideal := totalPoints - dailyDecrement*float64(day)
		if ideal < 0 {
			ideal = 0
		}
		b.Ideal = append(b.Ideal, ideal)

		if snap, ok := byDate[dateStr]; ok {
			lastRemaining = snap.RemainingPoints
			lastCompleted = snap.CompletedPoints
		}
		b.Actual = append(b.Actual, lastRemaining)
		b.Completed = append(b.Completed, lastCompleted)
	}

	return b, nil
}

// NewSnapshotFromResults aggregates compliance records into a snapshot for
// one sprint. Only records whose sprint field matches exactly are counted;
// an empty date defaults to today.
func NewSnapshotFromResults(results []schema.Compliance, summary *schema.ReportSummary, sprint, date string) schema.SprintSnapshot {
	if date == "" {
		date = time.Now().Format(schema.DateFormat)
	}

	snap := schema.SprintSnapshot{
		Date:           date,
		Sprint:         sprint,
		PointsByStatus: make(map[string]float64),
	}
	if summary != nil {
		snap.ComplianceRate = summary.ComplianceRate
		snap.TasksMissingUpdates = summary.TasksMissingUpdates
	}

	for i := range results {
		c := &results[i]
		if c.Sprint != sprint {
			continue
		}

		points := schema.PointsValue(c.StoryPoints)
		status := c.StatusLabel()

		snap.TotalTasks++
		snap.TotalPoints += points
		snap.PointsByStatus[status] += points

		switch status {
		case schema.StatusTodo:
			snap.TodoTasks++
		case schema.StatusInProgress:
			snap.InProgressTasks++
		case schema.StatusReview:
			snap.ReviewTasks++
		case schema.StatusQA:
			snap.QATasks++
		case schema.StatusDone:
			snap.CompletedTasks++
			snap.CompletedPoints += points
		}
	}

	snap.RemainingPoints = snap.TotalPoints - snap.CompletedPoints
	return snap
}
