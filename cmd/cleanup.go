package cmd

import (
	"fmt"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/history"
	"github.com/spf13/cobra"
)

// cleanupCmd prunes old snapshots from the history store.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove snapshots older than the retention window",
	Long: `Delete stored snapshots older than --retention-days, judged by the
date prefix in the filename. Files without a parseable date prefix are left
untouched, as are all velocity records.

Examples:
  # Keep the default 90 days
  sprintwatch cleanup

  # Aggressive pruning
  sprintwatch cleanup --retention-days 30`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			contract.LogFatal("Cleanup failed", err)
		}
		removed, err := store.Cleanup(cfg.RetentionDays)
		if err != nil {
			contract.LogFatal("Cleanup failed", err)
		}
		fmt.Printf("🎯 Removed %d snapshots older than %d days\n", removed, cfg.RetentionDays)
	},
}
