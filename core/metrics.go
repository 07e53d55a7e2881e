package core

import (
	"math"
	"sort"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// CalculateSprintMetrics computes story-point totals and breakdowns over a
// set of compliance records. Items without parseable points contribute zero.
func CalculateSprintMetrics(cfg *contract.Config, results []schema.Compliance) schema.SprintMetrics {
	m := schema.SprintMetrics{
		PointsByStatus: make(map[string]float64),
		TasksByStatus:  make(map[string]int),
	}

	byAssignee := make(map[string]float64)
	var order []string

	for i := range results {
		c := &results[i]
		points := schema.PointsValue(c.StoryPoints)
		status := c.StatusLabel()

		m.TotalPoints += points
		if c.Progress == cfg.TerminalStatus {
			m.CompletedPoints += points
		}

		m.PointsByStatus[status] += points
		m.TasksByStatus[status]++

		if _, ok := byAssignee[c.Assignee]; !ok {
			order = append(order, c.Assignee)
		}
		byAssignee[c.Assignee] += points
	}

	m.RemainingPoints = m.TotalPoints - m.CompletedPoints

	m.PointsByAssignee = make([]schema.AssigneePoints, 0, len(order))
	for _, name := range order {
		m.PointsByAssignee = append(m.PointsByAssignee, schema.AssigneePoints{
			Assignee: name,
			Points:   byAssignee[name],
		})
	}
	sort.SliceStable(m.PointsByAssignee, func(i, j int) bool {
		return m.PointsByAssignee[i].Points > m.PointsByAssignee[j].Points
	})

	if len(results) > 0 {
		m.AvgPointsPerTask = math.Round(m.TotalPoints/float64(len(results))*10) / 10
	}

	return m
}
