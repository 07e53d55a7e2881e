// Package contract provides interfaces and shared utilities for the sprintwatch CLI's internal architecture.
package contract

import (
	"context"

	"github.com/opspulse/sprintwatch/schema"
)

// TrackerClient defines the operations sprintwatch needs from the external
// project tracker. The HTTP client (including its retry and backoff policy)
// is an external collaborator; this interface allows the analysis core to be
// exercised against file exports and mocks.
type TrackerClient interface {
	// FetchWorkItems returns work-item records from the tracker.
	// completedOnly selects the tracker's completed set instead of the
	// open working set.
	FetchWorkItems(ctx context.Context, completedOnly bool, f schema.Filters) ([]schema.WorkItem, error)

	// FetchRecentComments returns up to limit comments for one item,
	// ordered most-recent-first.
	FetchRecentComments(ctx context.Context, itemGID string, limit int) ([]schema.Comment, error)
}

// TrendIndex defines the optional SQL-backed index of saved snapshots.
// This allows the index layer to be mocked for testing.
type TrendIndex interface {
	RecordSnapshot(snapshot *schema.SprintSnapshot) error
	ComplianceTrend(days int) ([]schema.TrendPoint, error)
	Close() error
}
