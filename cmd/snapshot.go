package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/history"
	"github.com/opspulse/sprintwatch/internal/trendstore"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotCmd saves today's sprint aggregate to the history store.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [export-path]",
	Short: "Save a point-in-time sprint aggregate for trend tracking",
	Long: `Aggregate one sprint's current state and persist it to the history store.

Each snapshot records total/completed/remaining points, task counts per
workflow status, the compliance rate and missing-update count. One snapshot
per sprint per day; re-running on the same day overwrites.

When a trend index backend is configured (--trend-backend), the snapshot is
also recorded there for fast SQL trend queries.

Requires --sprint.

Examples:
  # Snapshot today's state (run from cron)
  sprintwatch snapshot export.json --sprint "Sprint 7"

  # Backfill a specific date
  sprintwatch snapshot export.json --sprint "Sprint 7" --date 2026-08-20

  # Also index into SQLite
  sprintwatch snapshot export.json --sprint "Sprint 7" --trend-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Sprint == "" {
			contract.LogFatal("Snapshot failed", errors.New("--sprint is required"))
		}

		date := viper.GetString("date")
		if date != "" && schema.ParseDate(date).IsZero() {
			contract.LogFatal("Snapshot failed", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date))
		}

		results, err := analyzeWorkItems(true)
		if err != nil {
			contract.LogFatal("Snapshot failed", err)
		}

		sprintResults := core.FilterResults(results, core.ResultFilter{Sprint: cfg.Sprint})
		summary := core.Summarize(cfg, sprintResults, time.Now())
		snap := history.NewSnapshotFromResults(results, &summary, cfg.Sprint, date)

		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			contract.LogFatal("Snapshot failed", err)
		}
		path, err := store.SaveSnapshot(snap)
		if err != nil {
			contract.LogFatal("Snapshot failed", err)
		}
		fmt.Printf("💾 Saved snapshot for %s (%s) to %s\n", snap.Sprint, snap.Date, path)

		if cfg.TrendBackend != schema.NoneBackend {
			index, err := trendstore.NewIndex(cfg.TrendBackend, cfg.TrendDBConnect)
			if err != nil {
				contract.LogFatal("Cannot open trend index", err)
			}
			defer func() { _ = index.Close() }()
			if err := index.RecordSnapshot(&snap); err != nil {
				contract.LogFatal("Cannot index snapshot", err)
			}
			fmt.Printf("💾 Indexed snapshot in %s trend index\n", cfg.TrendBackend)
		}
	},
}
