package schema

import "math"

// Compliance is the per-item verdict against the team rulebook. It copies the
// identifying fields of the source work item and is immutable once produced.
type Compliance struct {
	GID         string `json:"gid"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Assignee    string `json:"assignee"`
	AssigneeGID string `json:"assignee_gid,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`

	// Current state
	Progress    string `json:"progress,omitempty"`
	DueOn       string `json:"due_on,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`

	// Field values
	Epic              string  `json:"epic,omitempty"`
	Sprint            string  `json:"sprint,omitempty"`
	TaskType          string  `json:"task_type,omitempty"`
	StoryPoints       *string `json:"story_points,omitempty"`
	Severity          string  `json:"severity,omitempty"`
	DescriptionLength int     `json:"description_length"`

	// Comments/updates
	LastCommentDate   string   `json:"last_comment_date,omitempty"`
	LastCommentAuthor string   `json:"last_comment_author,omitempty"`
	HoursSinceUpdate  *float64 `json:"hours_since_update,omitempty"`
	TotalComments     int      `json:"total_comments"`

	// Mandatory attribute flags
	MissingEpic        bool `json:"missing_epic"`
	MissingSprint      bool `json:"missing_sprint"`
	MissingType        bool `json:"missing_type"`
	MissingPoints      bool `json:"missing_points"`
	InvalidPoints      bool `json:"invalid_points"`
	MissingSeverity    bool `json:"missing_severity"`
	MissingDueDate     bool `json:"missing_due_date"`
	MissingDescription bool `json:"missing_description"`

	// Daily update flags
	NeedsDailyUpdate   bool `json:"needs_daily_update"`
	MissingDailyUpdate bool `json:"missing_daily_update"`

	// Rule violations (field present where it should be absent, etc.)
	RuleViolations []string `json:"rule_violations,omitempty"`

	// Overdue / due-soon tracking
	IsOverdue    bool `json:"is_overdue"`
	DaysUntilDue *int `json:"days_until_due,omitempty"`
	TaskAgeDays  int  `json:"task_age_days"`
}

// MandatoryMissing lists the missing or invalid mandatory attributes.
func (c *Compliance) MandatoryMissing() []string {
	var missing []string
	if c.MissingEpic {
		missing = append(missing, "Epic")
	}
	if c.MissingSprint {
		missing = append(missing, "Sprint")
	}
	if c.MissingType {
		missing = append(missing, "Type")
	}
	if c.MissingPoints {
		missing = append(missing, "Story Points")
	}
	if c.InvalidPoints {
		missing = append(missing, "Invalid Points (non-Fibonacci)")
	}
	if c.MissingSeverity {
		missing = append(missing, "Severity")
	}
	if c.MissingDueDate {
		missing = append(missing, "Due Date")
	}
	if c.MissingDescription {
		missing = append(missing, "Description/ACs")
	}
	return missing
}

// MandatoryCount is the number of missing or invalid mandatory attributes.
func (c *Compliance) MandatoryCount() int {
	return len(c.MandatoryMissing())
}

// TotalIssues counts mandatory misses plus rule violations.
func (c *Compliance) TotalIssues() int {
	return c.MandatoryCount() + len(c.RuleViolations)
}

// IsCompliant reports whether the item meets every rulebook requirement.
func (c *Compliance) IsCompliant() bool {
	return c.MandatoryCount() == 0 &&
		len(c.RuleViolations) == 0 &&
		!c.MissingDailyUpdate
}

// ComplianceScore is a 0-100 score. It starts from the seven mandatory
// checks, adds one check for the daily-update requirement when the item is
// active, and one failing check per rule violation.
func (c *Compliance) ComplianceScore() int {
	totalChecks := MandatoryCheckCount
	passed := MandatoryCheckCount - c.MandatoryCount()

	if c.NeedsDailyUpdate {
		totalChecks++
		if !c.MissingDailyUpdate {
			passed++
		}
	}

	// Violations add failing checks with no passes credited.
	totalChecks += len(c.RuleViolations)

	return int(math.Round(float64(passed) / float64(totalChecks) * 100))
}

// StatusLabel is a display label for the item's workflow status.
func (c *Compliance) StatusLabel() string {
	if c.Progress == "" {
		return StatusUnknown
	}
	return c.Progress
}

// IsTodo reports whether the item sits in the To Do column.
func (c *Compliance) IsTodo() bool {
	return c.Progress == StatusTodo
}
