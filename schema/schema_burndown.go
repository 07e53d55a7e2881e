package schema

// BurndownResult is the day-by-day burndown series for one sprint. Actual
// entries are nil for days after "now"; the series is never projected into
// the future.
type BurndownResult struct {
	Sprint string   `json:"sprint"`
	Dates  []string `json:"dates"`

	Ideal  []float64  `json:"ideal"`
	Actual []*float64 `json:"actual"`

	TotalPoints     float64 `json:"total_points"`
	CompletedPoints float64 `json:"completed_points"`
	SprintDays      int     `json:"sprint_days"`
}

// PercentComplete is completed over total, 0 when the sprint has no points.
func (b *BurndownResult) PercentComplete() float64 {
	if b.TotalPoints == 0 {
		return 0
	}
	return b.CompletedPoints / b.TotalPoints * 100
}
