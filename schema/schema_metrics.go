package schema

// AssigneePoints is one row of the points-by-assignee breakdown.
type AssigneePoints struct {
	Assignee string  `json:"assignee"`
	Points   float64 `json:"points"`
}

// SprintMetrics holds story-point totals and breakdowns for a set of items.
type SprintMetrics struct {
	TotalPoints     float64 `json:"total_points"`
	CompletedPoints float64 `json:"completed_points"`
	RemainingPoints float64 `json:"remaining_points"`

	PointsByStatus map[string]float64 `json:"points_by_status"`
	TasksByStatus  map[string]int     `json:"tasks_by_status"`

	// Sorted descending by points.
	PointsByAssignee []AssigneePoints `json:"points_by_assignee"`

	AvgPointsPerTask float64 `json:"avg_points_per_task"`
}
