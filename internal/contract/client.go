package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/opspulse/sprintwatch/schema"
)

// exportPayload is the JSON layout of a tracker export file.
type exportPayload struct {
	Tasks          []schema.WorkItem           `json:"tasks"`
	CompletedTasks []schema.WorkItem           `json:"completed_tasks"`
	Comments       map[string][]schema.Comment `json:"comments"`
}

// FileClient serves work items and comments from a JSON export of the
// tracker. It implements TrackerClient so the CLI and tests run without
// network access; a live HTTP client is an external collaborator with the
// same interface.
type FileClient struct {
	path string

	once    sync.Once
	loadErr error
	payload exportPayload
}

var _ TrackerClient = &FileClient{} // Compile-time check

// NewFileClient creates a client backed by the export file at path.
// The file is read lazily on first use.
func NewFileClient(path string) *FileClient {
	return &FileClient{path: path}
}

// load reads and decodes the export file once.
func (c *FileClient) load() error {
	c.once.Do(func() {
		raw, err := os.ReadFile(c.path)
		if err != nil {
			c.loadErr = fmt.Errorf("failed to read work-item export %q: %w", c.path, err)
			return
		}
		if err := json.Unmarshal(raw, &c.payload); err != nil {
			// Tolerate a bare array of open items as the minimal export shape.
			var items []schema.WorkItem
			if arrErr := json.Unmarshal(raw, &items); arrErr != nil {
				c.loadErr = fmt.Errorf("failed to decode work-item export %q: %w", c.path, err)
				return
			}
			c.payload = exportPayload{Tasks: items}
		}
	})
	return c.loadErr
}

// FetchWorkItems returns the export's open or completed set.
func (c *FileClient) FetchWorkItems(_ context.Context, completedOnly bool, f schema.Filters) ([]schema.WorkItem, error) {
	if err := c.load(); err != nil {
		return nil, err
	}

	source := c.payload.Tasks
	if completedOnly {
		source = c.payload.CompletedTasks
	}

	items := make([]schema.WorkItem, 0, len(source))
	for _, item := range source {
		if completedOnly && f.CompletedSince != "" && item.CompletedAt != "" && item.CompletedAt < f.CompletedSince {
			continue
		}
		if f.ModifiedSince != "" && item.ModifiedAt != "" && item.ModifiedAt < f.ModifiedSince {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// FetchRecentComments returns up to limit comments for one item,
// most-recent-first as stored in the export.
func (c *FileClient) FetchRecentComments(_ context.Context, itemGID string, limit int) ([]schema.Comment, error) {
	if err := c.load(); err != nil {
		return nil, err
	}

	comments := c.payload.Comments[itemGID]
	if limit > 0 && len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}
