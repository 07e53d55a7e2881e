package cmd

import (
	"errors"
	"fmt"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/history"
	"github.com/opspulse/sprintwatch/internal/outwriter"
	"github.com/opspulse/sprintwatch/internal/parquet"
	"github.com/opspulse/sprintwatch/internal/trendstore"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// trendSetup loads minimal configuration needed for trend index operations.
// This is a specialized setup that does NOT touch the work-item export,
// allowing migrations to run on a fresh database.
func trendSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("trend-backend")
	connStr := viper.GetString("trend-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidTrendBackends[backend]; !ok {
		return fmt.Errorf("invalid trend backend '%s'. must be sqlite, mysql, postgresql, none", backendStr)
	}

	// For SQLite backend with empty connection string, use the default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = trendstore.DefaultDBFilePath()
	}

	cfg.TrendBackend = backend
	cfg.TrendDBConnect = connStr

	return nil
}

// trendSetupWrapper wraps trendSetup to provide PreRunE for trend index commands.
func trendSetupWrapper(_ *cobra.Command, _ []string) error {
	return trendSetup()
}

// trendCmd shows the compliance-rate trend from stored snapshots.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the compliance-rate trend across saved snapshots",
	Long: `List one compliance-rate observation per stored snapshot over the
lookback window (--trend-days).

Reads from the SQL trend index when a backend is configured
(--trend-backend), otherwise from the file-based history store.

Subcommands:
  burndown - Rebuild a sprint burndown from stored snapshots
  export   - Export snapshot and velocity history to Parquet
  migrate  - Run trend index schema migrations

Examples:
  # Last 30 days from the file store
  sprintwatch trend

  # Last quarter from the SQLite index
  sprintwatch trend --trend-days 90 --trend-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		points, err := complianceTrend()
		if err != nil {
			contract.LogFatal("Trend failed", err)
		}
		if err := outwriter.NewOutWriter().WriteTrend(points, cfg); err != nil {
			contract.LogFatal("Cannot write trend", err)
		}
	},
}

// complianceTrend reads the trend from the configured source.
func complianceTrend() ([]schema.TrendPoint, error) {
	if cfg.TrendBackend != schema.NoneBackend {
		index, err := trendstore.NewIndex(cfg.TrendBackend, cfg.TrendDBConnect)
		if err != nil {
			return nil, err
		}
		defer func() { _ = index.Close() }()
		return index.ComplianceTrend(cfg.TrendDays)
	}

	store, err := history.NewStore(cfg.HistoryDir)
	if err != nil {
		return nil, err
	}
	return store.ComplianceTrend(cfg.TrendDays)
}

// trendBurndownCmd rebuilds a burndown from the snapshot history, without
// touching the live export.
var trendBurndownCmd = &cobra.Command{
	Use:   "burndown",
	Short: "Rebuild a sprint burndown from stored snapshots",
	Long: `Reconstruct the day-by-day burndown for one sprint from its saved
snapshots instead of live work items.

Each day takes its remaining and completed points from that day's snapshot;
days without one carry the last observation forward. Total points come from
the sprint's most recent snapshot. The sprint window defaults to the oldest
stored snapshot through today; override with --start-date / --end-date.

Requires --sprint and at least one saved snapshot for it.

Examples:
  # Burndown from nightly snapshots
  sprintwatch trend burndown --sprint "Sprint 7"

  # Explicit sprint window
  sprintwatch trend burndown --sprint "Sprint 7" --start-date 2026-08-10 --end-date 2026-08-23`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Sprint == "" {
			contract.LogFatal("Trend burndown failed", errors.New("--sprint is required"))
		}

		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			contract.LogFatal("Trend burndown failed", err)
		}

		latest, err := store.LatestSnapshot(cfg.Sprint)
		if err != nil {
			contract.LogFatal("Trend burndown failed", err)
		}
		if latest == nil {
			contract.LogFatal("Trend burndown failed", errors.New("no snapshots recorded for this sprint"))
		}

		startDate, endDate, err := sprintWindow(store, cfg.Sprint)
		if err != nil {
			contract.LogFatal("Trend burndown failed", err)
		}

		burndown, err := store.BurndownFromSnapshots(cfg.Sprint, startDate, endDate, latest.TotalPoints)
		if err != nil {
			contract.LogFatal("Trend burndown failed", err)
		}

		if err := outwriter.NewOutWriter().WriteSnapshotBurndown(burndown, cfg); err != nil {
			contract.LogFatal("Cannot write burndown", err)
		}
	},
}

// trendExportCmd exports history data to Parquet files.
var trendExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export snapshot and velocity history to Parquet for analytics",
	Long: `Export the retained snapshot history and all velocity records to
Parquet format for use with analytics tools.

Exports two datasets:
- Snapshots - one row per sprint per day (points, counts, compliance)
- Velocity  - one row per closed sprint

Parquet format enables fast querying with DuckDB, Apache Spark and pandas,
and direct import into BI tools.

Examples:
  # Export both datasets
  sprintwatch trend export

  # Custom file locations
  sprintwatch trend export --snapshots-file /data/snaps.parquet --velocity-file /data/vel.parquet

  # Query with DuckDB
  duckdb -c "SELECT * FROM read_parquet('snapshots.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			contract.LogFatal("Export failed", err)
		}

		snapshots, err := store.AllSnapshots(cfg.RetentionDays)
		if err != nil {
			contract.LogFatal("Export failed", err)
		}
		velocities, err := store.AllVelocities()
		if err != nil {
			contract.LogFatal("Export failed", err)
		}

		snapshotsFile := viper.GetString("snapshots-file")
		velocityFile := viper.GetString("velocity-file")

		if err := parquet.WriteSnapshotsParquet(parquet.ConvertSnapshots(snapshots), snapshotsFile); err != nil {
			contract.LogFatal("Cannot write snapshot parquet", err)
		}
		fmt.Printf("💾 Wrote %d snapshots to %s\n", len(snapshots), snapshotsFile)

		if err := parquet.WriteVelocitiesParquet(parquet.ConvertVelocities(velocities), velocityFile); err != nil {
			contract.LogFatal("Cannot write velocity parquet", err)
		}
		fmt.Printf("💾 Wrote %d velocity records to %s\n", len(velocities), velocityFile)
	},
}

// trendMigrateCmd runs database migrations for the trend index.
var trendMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run trend index schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the SQL trend index.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  sprintwatch trend migrate --trend-backend sqlite

  # Rollback to initial state
  sprintwatch trend migrate --trend-backend sqlite --target-version 0`,
	PreRunE: trendSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := trendstore.MigrateIndex(cfg.TrendBackend, cfg.TrendDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
