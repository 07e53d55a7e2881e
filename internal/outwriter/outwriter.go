// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the compliance report using the configured output format.
func (ow *OutWriter) WriteReport(results []schema.Compliance, summary *schema.ReportSummary, cfg *contract.Config) error {
	return PrintReport(results, summary, cfg)
}

// WriteMetrics prints sprint metrics using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics *schema.SprintMetrics, cfg *contract.Config) error {
	return PrintMetrics(metrics, cfg)
}

// WriteBurndown prints a burndown series using the configured output format.
func (ow *OutWriter) WriteBurndown(burndown *schema.BurndownResult, cfg *contract.Config) error {
	return PrintBurndown(burndown, cfg)
}

// WriteSnapshotBurndown prints a burndown reconstructed from stored snapshots.
func (ow *OutWriter) WriteSnapshotBurndown(burndown *schema.SnapshotBurndown, cfg *contract.Config) error {
	return PrintSnapshotBurndown(burndown, cfg)
}

// WriteVelocity prints the velocity trend using the configured output format.
func (ow *OutWriter) WriteVelocity(points []schema.VelocityPoint, cfg *contract.Config) error {
	return PrintVelocity(points, cfg)
}

// WriteTrend prints the compliance trend using the configured output format.
func (ow *OutWriter) WriteTrend(points []schema.TrendPoint, cfg *contract.Config) error {
	return PrintTrend(points, cfg)
}
