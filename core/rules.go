package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// blank reports whether a field value is absent or whitespace only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EvaluateRules produces the static portion of a Compliance record for one
// work item: mandatory attribute flags, story-point validation, rule
// violations and due-date tracking. Staleness is applied separately because
// it needs a comment fetch.
func EvaluateRules(cfg *contract.Config, item *schema.WorkItem, now time.Time) schema.Compliance {
	fields := resolveFields(item, cfg.Fields)

	assignee := schema.UnassignedName
	assigneeGID := ""
	if item.Assignee != nil && item.Assignee.Name != "" {
		assignee = item.Assignee.Name
		assigneeGID = item.Assignee.GID
	}

	name := item.Name
	if name == "" {
		name = "(unnamed)"
	}

	c := schema.Compliance{
		GID:               item.GID,
		Name:              name,
		URL:               item.PermalinkURL,
		Assignee:          assignee,
		AssigneeGID:       assigneeGID,
		CreatedAt:         item.CreatedAt,
		Progress:          fields.Progress,
		DueOn:             item.DueOn,
		CompletedAt:       item.CompletedAt,
		Epic:              fields.Epic,
		Sprint:            fields.Sprint,
		TaskType:          fields.Type,
		StoryPoints:       fields.Points,
		Severity:          fields.Severity,
		DescriptionLength: len(item.Notes),
	}

	// Overdue / due-soon tracking. A malformed due date degrades to absent.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due := schema.ParseDate(item.DueOn); item.DueOn != "" && !due.IsZero() {
		days := int(due.Sub(today).Hours() / 24)
		c.DaysUntilDue = &days
		c.IsOverdue = days < 0 && fields.Progress != cfg.TerminalStatus
	}

	if created := schema.ParseTimestamp(item.CreatedAt); !created.IsZero() {
		c.TaskAgeDays = int(now.Sub(created).Hours() / 24)
	}

	// Mandatory attributes.
	c.MissingEpic = blank(fields.Epic)
	c.MissingSprint = blank(fields.Sprint)
	c.MissingType = blank(fields.Type)
	c.MissingSeverity = blank(fields.Severity)
	c.MissingDueDate = item.DueOn == ""
	c.MissingDescription = len(item.Notes) < cfg.MinDescriptionLength

	// Story points. Exempt types (Epics, Bugs) never need points; instead a
	// present positive value is a rule violation.
	exempt := fields.Type != "" && slices.Contains(cfg.ExemptTypes, fields.Type)
	if exempt {
		if fields.Points != nil && schema.PointsValue(fields.Points) > 0 {
			c.RuleViolations = append(c.RuleViolations, fmt.Sprintf("%s should not have story points", fields.Type))
		}
	} else {
		c.MissingPoints = fields.Points == nil
		if !c.MissingPoints {
			v, err := strconv.ParseFloat(*fields.Points, 64)
			if err != nil || !schema.IsValidPointsValue(v) {
				c.InvalidPoints = true
			}
		}
	}

	c.NeedsDailyUpdate = slices.Contains(cfg.ActiveStatuses, fields.Progress)

	return c
}
