package schema

// AssigneeStats holds the per-assignee compliance load.
type AssigneeStats struct {
	Assignee string `json:"assignee"`
	Total    int    `json:"total"`
	Issues   int    `json:"issues"`
}

// ReportSummary aggregates a set of Compliance records.
type ReportSummary struct {
	TotalTasks     int     `json:"total_tasks"`
	CompliantTasks int     `json:"compliant_tasks"`
	ComplianceRate float64 `json:"compliance_rate"`

	// Mandatory attributes missing
	MissingEpic        int `json:"missing_epic"`
	MissingSprint      int `json:"missing_sprint"`
	MissingType        int `json:"missing_type"`
	MissingPoints      int `json:"missing_points"`
	InvalidPoints      int `json:"invalid_points"`
	MissingSeverity    int `json:"missing_severity"`
	MissingDueDate     int `json:"missing_due_date"`
	MissingDescription int `json:"missing_description"`

	// Items with at least one rule violation
	RuleViolations int `json:"rule_violations"`

	// Daily updates
	TasksNeedingUpdates int `json:"tasks_needing_updates"`
	TasksMissingUpdates int `json:"tasks_missing_updates"`

	// Status counts
	TasksTodo   int `json:"tasks_todo"`
	TasksActive int `json:"tasks_active"`

	// Ordered by issues descending; the worst offenders surface first.
	// Downstream writers rely on this ordering.
	ByAssignee []AssigneeStats `json:"by_assignee"`

	// Report metadata
	ReportDate  string `json:"report_date"`
	GeneratedAt string `json:"generated_at"`

	// Overdue / due-soon tracking
	OverdueTasks      int     `json:"overdue_tasks"`
	DueThisWeek       int     `json:"due_this_week"`
	OverduePoints     float64 `json:"overdue_points"`
	DueThisWeekPoints float64 `json:"due_this_week_points"`
}
