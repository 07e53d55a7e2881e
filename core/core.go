// Package core holds the compliance rulebook, staleness detection, sprint
// metrics and burndown reconstruction for sprintwatch.
package core

import (
	"context"
	"slices"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// Analyzer runs work items through the rulebook. Comment fetching is
// delegated to the injected tracker client.
type Analyzer struct {
	cfg    *contract.Config
	client contract.TrackerClient
}

// NewAnalyzer creates an Analyzer with the given config and tracker client.
func NewAnalyzer(cfg *contract.Config, client contract.TrackerClient) *Analyzer {
	return &Analyzer{cfg: cfg, client: client}
}

// AnalyzeItem evaluates one work item. When fetchComments is set and the item
// is in an active status, recent comments are fetched to decide staleness;
// a fetch failure degrades to "no comments" for that item rather than
// aborting the batch.
func (a *Analyzer) AnalyzeItem(ctx context.Context, item *schema.WorkItem, fetchComments bool, now time.Time) schema.Compliance {
	c := EvaluateRules(a.cfg, item, now)

	if fetchComments && c.NeedsDailyUpdate {
		comments, err := a.client.FetchRecentComments(ctx, item.GID, a.cfg.CommentLimit)
		if err != nil {
			contract.LogWarn("fetching comments for "+item.GID, err)
			comments = nil
		}
		ApplyStaleness(&c, item.ModifiedAt, comments, now, a.cfg.StaleAfter)
	}

	return c
}

// AnalyzeAll evaluates a batch of work items sequentially. Items in the
// terminal status are skipped unless includeDone is set (burndown needs
// them); items in an excluded status never reach the rulebook.
func (a *Analyzer) AnalyzeAll(ctx context.Context, items []schema.WorkItem, fetchComments, includeDone bool) []schema.Compliance {
	now := time.Now()
	results := make([]schema.Compliance, 0, len(items))

	for i := range items {
		item := &items[i]
		progress := resolveFields(item, a.cfg.Fields).Progress

		if progress == a.cfg.TerminalStatus && !includeDone {
			continue
		}
		if slices.Contains(a.cfg.ExcludedStatuses, progress) {
			continue
		}

		results = append(results, a.AnalyzeItem(ctx, item, fetchComments, now))
	}

	return results
}
