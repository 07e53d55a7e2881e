package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	comments map[string][]schema.Comment
	err      error
	fetches  []string
}

func (s *stubClient) FetchWorkItems(ctx context.Context, completedOnly bool, f schema.Filters) ([]schema.WorkItem, error) {
	return nil, nil
}

func (s *stubClient) FetchRecentComments(ctx context.Context, itemGID string, limit int) ([]schema.Comment, error) {
	s.fetches = append(s.fetches, itemGID)
	if s.err != nil {
		return nil, s.err
	}
	return s.comments[itemGID], nil
}

var _ contract.TrackerClient = &stubClient{}

func statusItem(gid, status string) schema.WorkItem {
	item := *fullItem()
	item.GID = gid
	item.CustomFields = append([]schema.CustomField(nil), item.CustomFields...)
	item.CustomFields[2] = schema.CustomField{Name: "Progress", DisplayValue: status}
	return item
}

func TestAnalyzeAllSkipsTerminalAndExcluded(t *testing.T) {
	items := []schema.WorkItem{
		statusItem("1", schema.StatusInProgress),
		statusItem("2", schema.StatusDone),
		statusItem("3", schema.StatusBacklog),
		statusItem("4", schema.StatusTodo),
	}

	a := NewAnalyzer(rulesConfig(), &stubClient{})
	results := a.AnalyzeAll(context.Background(), items, false, false)

	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].GID)
	assert.Equal(t, "4", results[1].GID)
}

func TestAnalyzeAllIncludeDone(t *testing.T) {
	items := []schema.WorkItem{
		statusItem("1", schema.StatusInProgress),
		statusItem("2", schema.StatusDone),
		statusItem("3", schema.StatusBacklog),
	}

	a := NewAnalyzer(rulesConfig(), &stubClient{})
	results := a.AnalyzeAll(context.Background(), items, false, true)

	require.Len(t, results, 2)
	assert.Equal(t, "2", results[1].GID)
}

func TestAnalyzeItemFetchesCommentsForActiveOnly(t *testing.T) {
	client := &stubClient{comments: map[string][]schema.Comment{}}
	a := NewAnalyzer(rulesConfig(), client)

	items := []schema.WorkItem{
		statusItem("active", schema.StatusInProgress),
		statusItem("parked", schema.StatusTodo),
	}

	a.AnalyzeAll(context.Background(), items, true, false)
	assert.Equal(t, []string{"active"}, client.fetches)
}

func TestAnalyzeItemCommentFetchFailureDegrades(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	a := NewAnalyzer(rulesConfig(), client)

	item := statusItem("active", schema.StatusInProgress)
	item.ModifiedAt = ""

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	c := a.AnalyzeItem(context.Background(), &item, true, now)
	assert.True(t, c.MissingDailyUpdate)
	assert.Zero(t, c.TotalComments)
}
