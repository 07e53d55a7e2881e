package cmd

import (
	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd aggregates story points by status and assignee.
var metricsCmd = &cobra.Command{
	Use:   "metrics [export-path]",
	Short: "Aggregate story points and task counts by status and assignee",
	Long: `Sum story points and task counts across the export.

Shows:
- Tasks and points per workflow status
- Total, completed and remaining points
- Average points per task
- Points per assignee, highest first

Completed means the terminal status label only (--terminal-status). Items
with unparseable point values contribute zero points but still count.

Examples:
  # Metrics for one sprint
  sprintwatch metrics export.json --sprint "Sprint 7"

  # CSV for a spreadsheet
  sprintwatch metrics export.json --output csv --output-file metrics.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results, err := analyzeWorkItems(true)
		if err != nil {
			contract.LogFatal("Metrics failed", err)
		}

		results = core.FilterResults(results, core.ResultFilter{Sprint: cfg.Sprint})

		metrics := core.CalculateSprintMetrics(cfg, results)
		if err := outwriter.NewOutWriter().WriteMetrics(&metrics, cfg); err != nil {
			contract.LogFatal("Cannot write metrics", err)
		}
	},
}
