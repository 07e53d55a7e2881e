package core

import (
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStalenessCommentWins(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	comments := []schema.Comment{
		{CreatedAt: "2024-03-10T10:00:00Z", CreatedBy: &schema.Member{Name: "Dana"}, Text: "shipping today"},
	}

	var c schema.Compliance
	ApplyStaleness(&c, "2024-03-10T02:00:00Z", comments, now, 24*time.Hour)

	assert.False(t, c.MissingDailyUpdate)
	assert.Equal(t, 1, c.TotalComments)
	assert.Equal(t, "Dana", c.LastCommentAuthor)
	require.NotNil(t, c.HoursSinceUpdate)
	assert.InDelta(t, 2.0, *c.HoursSinceUpdate, 0.01)
}

func TestApplyStalenessModifiedWins(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	comments := []schema.Comment{
		{CreatedAt: "2024-03-08T10:00:00Z", Text: "older than the edit"},
	}

	var c schema.Compliance
	ApplyStaleness(&c, "2024-03-10T09:00:00Z", comments, now, 24*time.Hour)

	assert.False(t, c.MissingDailyUpdate)
	require.NotNil(t, c.HoursSinceUpdate)
	assert.InDelta(t, 3.0, *c.HoursSinceUpdate, 0.01)
}

func TestApplyStalenessStale(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var c schema.Compliance
	ApplyStaleness(&c, "2024-03-08T11:00:00Z", nil, now, 24*time.Hour)

	assert.True(t, c.MissingDailyUpdate)
	require.NotNil(t, c.HoursSinceUpdate)
	assert.InDelta(t, 49.0, *c.HoursSinceUpdate, 0.01)
}

func TestApplyStalenessNoSignal(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var c schema.Compliance
	ApplyStaleness(&c, "", nil, now, 24*time.Hour)

	assert.True(t, c.MissingDailyUpdate)
	assert.Nil(t, c.HoursSinceUpdate)
}

func TestApplyStalenessAnonymousComment(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	comments := []schema.Comment{{CreatedAt: "2024-03-10T11:00:00Z", Text: "bot update"}}

	var c schema.Compliance
	ApplyStaleness(&c, "", comments, now, 24*time.Hour)

	assert.Equal(t, schema.StatusUnknown, c.LastCommentAuthor)
	assert.False(t, c.MissingDailyUpdate)
}
