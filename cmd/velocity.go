package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/history"
	"github.com/opspulse/sprintwatch/internal/outwriter"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// velocityCmd closes out a sprint and shows the velocity trend.
var velocityCmd = &cobra.Command{
	Use:   "velocity [export-path]",
	Short: "Close out a sprint's velocity record and show the trend",
	Long: `Record completed versus planned story points for a finished sprint.

Planned points are the sprint's total; completed points are those in the
terminal status. The record is keyed by sprint name, so re-running after a
correction simply overwrites it. The sprint window defaults to the oldest
stored snapshot through today; override with --start-date / --end-date.

After saving, the full velocity trend across all recorded sprints is
printed with the rolling average.

Requires --sprint.

Examples:
  # Close out a sprint at its end
  sprintwatch velocity export.json --sprint "Sprint 7"

  # Explicit sprint window
  sprintwatch velocity export.json --sprint "Sprint 7" --start-date 2026-08-10 --end-date 2026-08-23`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Sprint == "" {
			contract.LogFatal("Velocity failed", errors.New("--sprint is required"))
		}

		results, err := analyzeWorkItems(true)
		if err != nil {
			contract.LogFatal("Velocity failed", err)
		}
		sprintResults := core.FilterResults(results, core.ResultFilter{Sprint: cfg.Sprint})
		metrics := core.CalculateSprintMetrics(cfg, sprintResults)

		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			contract.LogFatal("Velocity failed", err)
		}

		startDate, endDate, err := sprintWindow(store, cfg.Sprint)
		if err != nil {
			contract.LogFatal("Velocity failed", err)
		}

		duration := int(schema.ParseDate(endDate).Sub(schema.ParseDate(startDate)).Hours()/24) + 1
		rate := 0.0
		if metrics.TotalPoints > 0 {
			rate = metrics.CompletedPoints / metrics.TotalPoints * 100
		}

		record := schema.VelocityData{
			Sprint:          cfg.Sprint,
			CompletedPoints: metrics.CompletedPoints,
			PlannedPoints:   metrics.TotalPoints,
			StartDate:       startDate,
			EndDate:         endDate,
			DurationDays:    duration,
			CompletionRate:  rate,
		}
		path, err := store.SaveVelocity(record)
		if err != nil {
			contract.LogFatal("Velocity failed", err)
		}
		fmt.Printf("💾 Saved velocity for %s to %s\n", cfg.Sprint, path)

		trend, err := store.VelocityTrend()
		if err != nil {
			contract.LogFatal("Cannot load velocity trend", err)
		}
		if err := outwriter.NewOutWriter().WriteVelocity(trend, cfg); err != nil {
			contract.LogFatal("Cannot write velocity trend", err)
		}
	},
}

// sprintWindow resolves the sprint's start and end dates from flags, falling
// back to the oldest stored snapshot and today.
func sprintWindow(store *history.Store, sprint string) (string, string, error) {
	startDate := viper.GetString("start-date")
	endDate := viper.GetString("end-date")

	if endDate == "" {
		endDate = time.Now().Format(schema.DateFormat)
	}
	if startDate == "" {
		snapshots, err := store.SnapshotsForSprint(sprint, 90)
		if err != nil {
			return "", "", err
		}
		if len(snapshots) > 0 {
			startDate = snapshots[0].Date
		} else {
			startDate = endDate
		}
	}

	if schema.ParseDate(startDate).IsZero() || schema.ParseDate(endDate).IsZero() {
		return "", "", fmt.Errorf("invalid sprint window %q to %q (want YYYY-MM-DD)", startDate, endDate)
	}
	if endDate < startDate {
		return "", "", fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}
	return startDate, endDate, nil
}
