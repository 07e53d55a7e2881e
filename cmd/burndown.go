package cmd

import (
	"errors"
	"time"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/outwriter"
	"github.com/spf13/cobra"
)

// burndownCmd reconstructs a sprint burndown from work-item dates.
var burndownCmd = &cobra.Command{
	Use:   "burndown [export-path]",
	Short: "Reconstruct the ideal and actual burndown for a sprint",
	Long: `Build the day-by-day burndown series for one sprint.

The sprint window is derived from the items' due and creation dates; short
windows are widened to two weeks and open sprints extend through today. The
ideal line decrements evenly; the actual line subtracts points on each item's
completion date and stops at today (never projected).

Items completed without a completion timestamp are credited on their due
date. Dateless completed points count toward the totals but land on no
specific day.

Requires --sprint.

Examples:
  # Burndown for the current sprint
  sprintwatch burndown export.json --sprint "Sprint 7"

  # JSON series for a dashboard
  sprintwatch burndown export.json --sprint "Sprint 7" --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Sprint == "" {
			contract.LogFatal("Burndown failed", errors.New("--sprint is required"))
		}

		results, err := analyzeWorkItems(true)
		if err != nil {
			contract.LogFatal("Burndown failed", err)
		}

		// Only the requested sprint's items may contribute points and dates.
		results = core.FilterResults(results, core.ResultFilter{Sprint: cfg.Sprint})

		burndown, err := core.BuildBurndown(cfg, results, cfg.Sprint, time.Now())
		if err != nil {
			contract.LogFatal("Burndown failed", err)
		}

		if err := outwriter.NewOutWriter().WriteBurndown(burndown, cfg); err != nil {
			contract.LogFatal("Cannot write burndown", err)
		}
	},
}
