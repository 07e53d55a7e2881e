package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opspulse/sprintwatch/schema"
)

// Default values for configuration.
const (
	DefaultMinDescriptionLength = 100
	DefaultStaleAfterHours      = 24
	DefaultCommentLimit         = 5
	DefaultRetentionDays        = 90
	DefaultTrendDays            = 30
	DefaultPrecision            = 1
	DefaultTerminalStatus       = schema.StatusDone
)

// FieldGIDs maps the tracker's custom-field identifiers to their roles.
// When a GID is empty, resolution falls back to matching the field name.
type FieldGIDs struct {
	Sprint   string
	Epic     string
	Progress string
	Type     string
	Severity string
	Points   string
}

// Config holds the validated runtime configuration.
// Fields that require complex parsing (durations, status lists) are set by
// ProcessAndValidate after the raw inputs are read.
type Config struct {
	InputFile  string // Path to the work-item export consumed by the file client
	HistoryDir string // Root of the snapshot/velocity history store

	Sprint        string   // Optional sprint filter
	Assignees     []string // Optional assignee filter
	Statuses      []string // Optional status filter
	FetchComments bool     // Fetch comments for active items (slower, more accurate)
	IncludeDone   bool     // Keep terminal items in the working set (burndown needs them)

	// Rulebook
	MinDescriptionLength int
	StaleAfter           time.Duration
	CommentLimit         int
	ActiveStatuses       []string
	PendingStatuses      []string
	ExcludedStatuses     []string
	ExemptTypes          []string
	TerminalStatus       string

	Fields FieldGIDs

	// History
	RetentionDays int
	TrendDays     int

	// Trend index
	TrendBackend   schema.DatabaseBackend
	TrendDBConnect string

	// Output
	Output     schema.OutputMode
	OutputFile string
	Precision  int
}

// ConfigRawInput holds the raw inputs from flags, env and config file.
// These fields are bound to Viper in the cmd package.
type ConfigRawInput struct {
	InputFile  string `mapstructure:"input"`
	HistoryDir string `mapstructure:"history-dir"`

	Sprint        string `mapstructure:"sprint"`
	Assignees     string `mapstructure:"assignees"`
	Statuses      string `mapstructure:"statuses"`
	FetchComments bool   `mapstructure:"fetch-comments"`
	IncludeDone   bool   `mapstructure:"include-done"`

	MinDescriptionLength int    `mapstructure:"min-description-length"`
	StaleAfterHours      int    `mapstructure:"stale-after-hours"`
	CommentLimit         int    `mapstructure:"comment-limit"`
	ActiveStatuses       string `mapstructure:"active-statuses"`
	PendingStatuses      string `mapstructure:"pending-statuses"`
	ExcludedStatuses     string `mapstructure:"excluded-statuses"`
	ExemptTypes          string `mapstructure:"exempt-types"`
	TerminalStatus       string `mapstructure:"terminal-status"`

	SprintField   string `mapstructure:"sprint-field"`
	EpicField     string `mapstructure:"epic-field"`
	ProgressField string `mapstructure:"progress-field"`
	TypeField     string `mapstructure:"type-field"`
	SeverityField string `mapstructure:"severity-field"`
	PointsField   string `mapstructure:"points-field"`

	RetentionDays int `mapstructure:"retention-days"`
	TrendDays     int `mapstructure:"trend-days"`

	TrendBackend   string `mapstructure:"trend-backend"`
	TrendDBConnect string `mapstructure:"trend-db-connect"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
}

// Clone returns a shallow copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// splitCSV splits a comma-separated flag value, trimming blanks.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DefaultHistoryDir returns the default root for the history store.
func DefaultHistoryDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sprintwatch/history"
	}
	return filepath.Join(homeDir, ".sprintwatch", "history")
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFile

	cfg.HistoryDir = input.HistoryDir
	if cfg.HistoryDir == "" {
		cfg.HistoryDir = DefaultHistoryDir()
	}

	cfg.Sprint = input.Sprint
	cfg.Assignees = splitCSV(input.Assignees)
	cfg.Statuses = splitCSV(input.Statuses)
	cfg.FetchComments = input.FetchComments
	cfg.IncludeDone = input.IncludeDone

	// --- Rulebook thresholds ---
	if input.MinDescriptionLength < 0 {
		return fmt.Errorf("min-description-length cannot be negative (received %d)", input.MinDescriptionLength)
	}
	cfg.MinDescriptionLength = input.MinDescriptionLength

	if input.StaleAfterHours <= 0 {
		return fmt.Errorf("stale-after-hours must be greater than 0 (received %d)", input.StaleAfterHours)
	}
	cfg.StaleAfter = time.Duration(input.StaleAfterHours) * time.Hour

	if input.CommentLimit <= 0 {
		return fmt.Errorf("comment-limit must be greater than 0 (received %d)", input.CommentLimit)
	}
	cfg.CommentLimit = input.CommentLimit

	// --- Status buckets ---
	cfg.ActiveStatuses = splitCSV(input.ActiveStatuses)
	if len(cfg.ActiveStatuses) == 0 {
		cfg.ActiveStatuses = schema.DefaultActiveStatuses
	}
	cfg.PendingStatuses = splitCSV(input.PendingStatuses)
	if len(cfg.PendingStatuses) == 0 {
		cfg.PendingStatuses = schema.DefaultPendingStatuses
	}
	cfg.ExcludedStatuses = splitCSV(input.ExcludedStatuses)
	if len(cfg.ExcludedStatuses) == 0 {
		cfg.ExcludedStatuses = schema.DefaultExcludedStatuses
	}
	cfg.ExemptTypes = splitCSV(input.ExemptTypes)
	if len(cfg.ExemptTypes) == 0 {
		cfg.ExemptTypes = schema.DefaultExemptTypes
	}
	cfg.TerminalStatus = input.TerminalStatus
	if cfg.TerminalStatus == "" {
		cfg.TerminalStatus = DefaultTerminalStatus
	}

	cfg.Fields = FieldGIDs{
		Sprint:   input.SprintField,
		Epic:     input.EpicField,
		Progress: input.ProgressField,
		Type:     input.TypeField,
		Severity: input.SeverityField,
		Points:   input.PointsField,
	}

	// --- History windows ---
	if input.RetentionDays <= 0 {
		return fmt.Errorf("retention-days must be greater than 0 (received %d)", input.RetentionDays)
	}
	cfg.RetentionDays = input.RetentionDays

	if input.TrendDays <= 0 {
		return fmt.Errorf("trend-days must be greater than 0 (received %d)", input.TrendDays)
	}
	cfg.TrendDays = input.TrendDays

	// --- Trend index backend ---
	cfg.TrendBackend = schema.DatabaseBackend(strings.ToLower(input.TrendBackend))
	if cfg.TrendBackend == "" {
		cfg.TrendBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidTrendBackends[cfg.TrendBackend]; !ok {
		return fmt.Errorf("invalid trend backend '%s'. must be sqlite, mysql, postgresql, none", input.TrendBackend)
	}

	// --- Output ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.TrendDBConnect = input.TrendDBConnect

	return nil
}
