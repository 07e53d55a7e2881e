package core

import (
	"testing"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSprintMetrics(t *testing.T) {
	results := []schema.Compliance{
		{Assignee: "Alice", Progress: schema.StatusDone, StoryPoints: pts("5")},
		{Assignee: "Alice", Progress: schema.StatusInProgress, StoryPoints: pts("3")},
		{Assignee: "Bob", Progress: schema.StatusInProgress, StoryPoints: pts("2")},
		{Assignee: "Bob", Progress: "", StoryPoints: nil},
	}

	m := CalculateSprintMetrics(summaryConfig(), results)

	assert.InDelta(t, 10, m.TotalPoints, 0.001)
	assert.InDelta(t, 5, m.CompletedPoints, 0.001)
	assert.InDelta(t, 5, m.RemainingPoints, 0.001)
	assert.InDelta(t, 2.5, m.AvgPointsPerTask, 0.001)

	assert.InDelta(t, 5, m.PointsByStatus[schema.StatusDone], 0.001)
	assert.InDelta(t, 5, m.PointsByStatus[schema.StatusInProgress], 0.001)
	assert.InDelta(t, 0, m.PointsByStatus[schema.StatusUnknown], 0.001)
	assert.Equal(t, 2, m.TasksByStatus[schema.StatusInProgress])
	assert.Equal(t, 1, m.TasksByStatus[schema.StatusUnknown])

	require.Len(t, m.PointsByAssignee, 2)
	assert.Equal(t, "Alice", m.PointsByAssignee[0].Assignee)
	assert.InDelta(t, 8, m.PointsByAssignee[0].Points, 0.001)
	assert.Equal(t, "Bob", m.PointsByAssignee[1].Assignee)
	assert.InDelta(t, 2, m.PointsByAssignee[1].Points, 0.001)
}

func TestCalculateSprintMetricsEmpty(t *testing.T) {
	m := CalculateSprintMetrics(summaryConfig(), nil)
	assert.Zero(t, m.TotalPoints)
	assert.Zero(t, m.AvgPointsPerTask)
	assert.Empty(t, m.PointsByAssignee)
}

func TestCalculateSprintMetricsUnparseablePoints(t *testing.T) {
	results := []schema.Compliance{
		{Assignee: "Alice", Progress: schema.StatusReview, StoryPoints: pts("banana")},
	}

	m := CalculateSprintMetrics(summaryConfig(), results)
	assert.Zero(t, m.TotalPoints)
	assert.Zero(t, m.AvgPointsPerTask)
}
