package cmd

import (
	"time"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/outwriter"
	"github.com/spf13/cobra"
)

// reportCmd runs the daily compliance report.
var reportCmd = &cobra.Command{
	Use:   "report [export-path]",
	Short: "Check every work item against the rulebook and summarize the damage",
	Long: `Evaluate each work item in the export against the team rulebook.

Every item is checked for:
- Mandatory attributes (epic, sprint, type, story points, severity, due date,
  description of sufficient length)
- Story-point sanity (Fibonacci values; exempt types carry no points at all)
- Overdue and due-this-week tracking
- Daily updates on active items (with --fetch-comments for comment-based
  staleness detection)

The report lists each item with its issues, then prints the aggregate:
compliance rate, overdue and due-soon tasks, missing updates, and the
assignees with the most issues.

Examples:
  # Report on the whole export
  sprintwatch report export.json

  # One sprint, with comment-based staleness
  sprintwatch report export.json --sprint "Sprint 7" --fetch-comments

  # Machine-readable output for CI
  sprintwatch report export.json --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results, err := analyzeWorkItems(cfg.IncludeDone)
		if err != nil {
			contract.LogFatal("Report failed", err)
		}

		results = core.FilterResults(results, core.ResultFilter{
			Sprint:    cfg.Sprint,
			Assignees: cfg.Assignees,
			Statuses:  cfg.Statuses,
		})

		summary := core.Summarize(cfg, results, time.Now())
		if err := outwriter.NewOutWriter().WriteReport(results, &summary, cfg); err != nil {
			contract.LogFatal("Cannot write report", err)
		}
	},
}
