package schema

// SprintSnapshot is a point-in-time aggregate of one sprint's metrics,
// persisted once per sprint per day. A new date produces a new snapshot;
// snapshots are never mutated after creation.
type SprintSnapshot struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Sprint string `json:"sprint"`

	// Story points
	TotalPoints     float64 `json:"total_points"`
	CompletedPoints float64 `json:"completed_points"`
	RemainingPoints float64 `json:"remaining_points"`

	// Task counts
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	ReviewTasks     int `json:"review_tasks"`
	QATasks         int `json:"qa_tasks"`

	// Compliance
	ComplianceRate      float64 `json:"compliance_rate"`
	TasksMissingUpdates int     `json:"tasks_missing_updates"`

	PointsByStatus map[string]float64 `json:"points_by_status"`

	GeneratedAt string `json:"generated_at"`
}

// VelocityData is the close-out record for a finished sprint. Re-saving under
// the same sprint name overwrites the prior record.
type VelocityData struct {
	Sprint          string  `json:"sprint"`
	CompletedPoints float64 `json:"completed_points"`
	PlannedPoints   float64 `json:"planned_points"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DurationDays    int     `json:"duration_days"`
	CompletionRate  float64 `json:"completion_rate"`
}

// TrendPoint is one compliance-rate observation in a trend query.
type TrendPoint struct {
	Date           string  `json:"date"`
	ComplianceRate float64 `json:"compliance_rate"`
	Sprint         string  `json:"sprint"`
}

// VelocityPoint is one sprint's velocity in a trend query.
type VelocityPoint struct {
	Sprint          string  `json:"sprint"`
	CompletedPoints float64 `json:"completed_points"`
	PlannedPoints   float64 `json:"planned_points"`
	CompletionRate  float64 `json:"completion_rate"`
}

// SnapshotBurndown is the burndown series reconstructed from stored
// snapshots rather than live work items.
type SnapshotBurndown struct {
	Dates       []string  `json:"dates"`
	Ideal       []float64 `json:"ideal"`
	Actual      []float64 `json:"actual"`
	Completed   []float64 `json:"completed"`
	TotalPoints float64   `json:"total_points"`
	SprintDays  int       `json:"sprint_days"`
}
