// Package cmd defines the command-line interface for sprintwatch.
package cmd

import (
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(burndownCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the trend subcommands to the parent trend command
	trendCmd.AddCommand(trendBurndownCmd)
	trendCmd.AddCommand(trendExportCmd)
	trendCmd.AddCommand(trendMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the work-item export (JSON)")
	rootCmd.PersistentFlags().String("history-dir", "", "Root directory of the snapshot/velocity history store")
	rootCmd.PersistentFlags().StringP("sprint", "s", "", "Restrict to one sprint")
	rootCmd.PersistentFlags().String("assignees", "", "Comma-separated list of assignees to include")
	rootCmd.PersistentFlags().String("statuses", "", "Comma-separated list of statuses to include")
	rootCmd.PersistentFlags().Bool("fetch-comments", false, "Fetch recent comments for active items (slower, more accurate staleness)")
	rootCmd.PersistentFlags().Bool("include-done", false, "Keep items in the terminal status in the working set")
	rootCmd.PersistentFlags().Int("min-description-length", contract.DefaultMinDescriptionLength, "Minimum description length before an item counts as documented")
	rootCmd.PersistentFlags().Int("stale-after-hours", contract.DefaultStaleAfterHours, "Hours without activity before an active item is flagged")
	rootCmd.PersistentFlags().Int("comment-limit", contract.DefaultCommentLimit, "Maximum comments to fetch per item")
	rootCmd.PersistentFlags().String("active-statuses", "", "Comma-separated statuses that require daily updates")
	rootCmd.PersistentFlags().String("pending-statuses", "", "Comma-separated statuses that skip the update requirement")
	rootCmd.PersistentFlags().String("excluded-statuses", "", "Comma-separated statuses dropped before analysis")
	rootCmd.PersistentFlags().String("exempt-types", "", "Comma-separated item types that must not carry story points")
	rootCmd.PersistentFlags().String("terminal-status", contract.DefaultTerminalStatus, "Status label that marks an item as completed")
	rootCmd.PersistentFlags().String("sprint-field", "", "Custom-field GID for the sprint field (name match fallback)")
	rootCmd.PersistentFlags().String("epic-field", "", "Custom-field GID for the epic field")
	rootCmd.PersistentFlags().String("progress-field", "", "Custom-field GID for the progress field")
	rootCmd.PersistentFlags().String("type-field", "", "Custom-field GID for the task-type field")
	rootCmd.PersistentFlags().String("severity-field", "", "Custom-field GID for the severity field")
	rootCmd.PersistentFlags().String("points-field", "", "Custom-field GID for the story-points field")
	rootCmd.PersistentFlags().String("start-date", "", "Sprint start date (YYYY-MM-DD, defaults to the oldest snapshot)")
	rootCmd.PersistentFlags().String("end-date", "", "Sprint end date (YYYY-MM-DD, defaults to today)")
	rootCmd.PersistentFlags().Int("retention-days", contract.DefaultRetentionDays, "Days of snapshot history kept by cleanup")
	rootCmd.PersistentFlags().Int("trend-days", contract.DefaultTrendDays, "Lookback window for trend queries")
	rootCmd.PersistentFlags().String("trend-backend", string(schema.NoneBackend), "Trend index backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("trend-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotCmd to Viper
	snapshotCmd.Flags().String("date", "", "Snapshot date (YYYY-MM-DD, defaults to today)")
	if err := viper.BindPFlags(snapshotCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot flags", err)
	}

	// Bind all flags of trendExportCmd to Viper
	trendExportCmd.Flags().String("snapshots-file", "snapshots.parquet", "Output path for the snapshot dataset")
	trendExportCmd.Flags().String("velocity-file", "velocity.parquet", "Output path for the velocity dataset")
	if err := viper.BindPFlags(trendExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend export flags", err)
	}

	// Bind all flags of trendMigrateCmd to Viper
	trendMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(trendMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trend migrate flags", err)
	}
}
