package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "sprintwatch",
	Short:              "Check sprint work items against your team's compliance rulebook.",
	Long:               `Sprintwatch reads a work-item export, flags missing fields and stale items, and tracks sprint metrics, burndown and velocity over time.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".sprintwatch") // Name of config file (without extension)
		viper.SetConfigType("yaml")         // We'll use YAML format
		viper.AddConfigPath(".")            // Look in the current directory
		viper.AddConfigPath("$HOME")        // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SPRINTWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("min-description-length", contract.DefaultMinDescriptionLength)
	viper.SetDefault("stale-after-hours", contract.DefaultStaleAfterHours)
	viper.SetDefault("comment-limit", contract.DefaultCommentLimit)
	viper.SetDefault("retention-days", contract.DefaultRetentionDays)
	viper.SetDefault("trend-days", contract.DefaultTrendDays)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("trend-backend", string(schema.NoneBackend))
	viper.SetDefault("trend-db-connect", "")
	viper.SetDefault("terminal-status", contract.DefaultTerminalStatus)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle the positional export-path argument (which Viper doesn't do).
	if len(args) == 1 {
		input.InputFile = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".sprintwatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// newTrackerClient builds the file-backed tracker client from the configured
// export path.
func newTrackerClient() (contract.TrackerClient, error) {
	if cfg.InputFile == "" {
		return nil, errors.New("work-item export path is required (--input or positional argument)")
	}
	return contract.NewFileClient(cfg.InputFile), nil
}

// analyzeWorkItems fetches the export and runs every item through the
// rulebook. The completed set is fetched too when includeDone is set so
// burndown and metrics see delivered points.
func analyzeWorkItems(includeDone bool) ([]schema.Compliance, error) {
	client, err := newTrackerClient()
	if err != nil {
		return nil, err
	}

	items, err := client.FetchWorkItems(rootCtx, false, schema.Filters{})
	if err != nil {
		return nil, err
	}
	if includeDone {
		completed, err := client.FetchWorkItems(rootCtx, true, schema.Filters{})
		if err != nil {
			return nil, err
		}
		items = append(items, completed...)
	}

	analyzer := core.NewAnalyzer(cfg, client)
	return analyzer.AnalyzeAll(rootCtx, items, cfg.FetchComments, includeDone), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
