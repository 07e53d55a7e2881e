package core

import (
	"sort"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// Summarize rolls a set of compliance records into one report summary.
// Per-assignee rows keep first-seen order and are then sorted by issue count
// so the worst offenders surface first.
func Summarize(cfg *contract.Config, results []schema.Compliance, now time.Time) schema.ReportSummary {
	s := schema.ReportSummary{
		TotalTasks:  len(results),
		ReportDate:  now.Format(schema.DateFormat),
		GeneratedAt: now.Format(time.RFC3339),
	}

	byAssignee := make(map[string]*schema.AssigneeStats)
	var order []string

	for i := range results {
		c := &results[i]

		if c.IsCompliant() {
			s.CompliantTasks++
		}

		if c.MissingEpic {
			s.MissingEpic++
		}
		if c.MissingSprint {
			s.MissingSprint++
		}
		if c.MissingType {
			s.MissingType++
		}
		if c.MissingPoints {
			s.MissingPoints++
		}
		if c.InvalidPoints {
			s.InvalidPoints++
		}
		if c.MissingSeverity {
			s.MissingSeverity++
		}
		if c.MissingDueDate {
			s.MissingDueDate++
		}
		if c.MissingDescription {
			s.MissingDescription++
		}
		if len(c.RuleViolations) > 0 {
			s.RuleViolations++
		}

		if c.NeedsDailyUpdate {
			s.TasksNeedingUpdates++
			s.TasksActive++
		}
		if c.MissingDailyUpdate {
			s.TasksMissingUpdates++
		}
		if c.IsTodo() {
			s.TasksTodo++
		}

		if c.IsOverdue {
			s.OverdueTasks++
			s.OverduePoints += schema.PointsValue(c.StoryPoints)
		}
		if c.DaysUntilDue != nil {
			days := *c.DaysUntilDue
			if days >= 0 && days <= 7 && c.Progress != cfg.TerminalStatus {
				s.DueThisWeek++
				s.DueThisWeekPoints += schema.PointsValue(c.StoryPoints)
			}
		}

		stats, ok := byAssignee[c.Assignee]
		if !ok {
			stats = &schema.AssigneeStats{Assignee: c.Assignee}
			byAssignee[c.Assignee] = stats
			order = append(order, c.Assignee)
		}
		stats.Total++
		stats.Issues += c.TotalIssues()
	}

	if s.TotalTasks > 0 {
		s.ComplianceRate = float64(s.CompliantTasks) / float64(s.TotalTasks) * 100
	}

	s.ByAssignee = make([]schema.AssigneeStats, 0, len(order))
	for _, name := range order {
		s.ByAssignee = append(s.ByAssignee, *byAssignee[name])
	}
	sort.SliceStable(s.ByAssignee, func(i, j int) bool {
		return s.ByAssignee[i].Issues > s.ByAssignee[j].Issues
	})

	return s
}
