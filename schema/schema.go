// Package schema has configs, models and global variables for all parts of sprintwatch.
package schema

// Member represents a tracker user attached to a work item or comment.
type Member struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// CustomField represents one custom-field value on a work item as delivered
// by the tracker. NumberValue is only set for numeric fields (story points).
type CustomField struct {
	GID          string   `json:"gid"`
	Name         string   `json:"name,omitempty"`
	DisplayValue string   `json:"display_value,omitempty"`
	NumberValue  *float64 `json:"number_value,omitempty"`
}

// WorkItem is the raw work-item record from the external tracker. Timestamps
// are kept as the tracker's wire strings (RFC3339 for created/modified/
// completed, YYYY-MM-DD for due dates); parsing happens downstream so that a
// malformed value degrades to "absent" instead of failing the whole batch.
type WorkItem struct {
	GID          string        `json:"gid"`
	Name         string        `json:"name"`
	PermalinkURL string        `json:"permalink_url,omitempty"`
	Assignee     *Member       `json:"assignee,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	DueOn        string        `json:"due_on,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	ModifiedAt   string        `json:"modified_at,omitempty"`
	CompletedAt  string        `json:"completed_at,omitempty"`
	Completed    bool          `json:"completed,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
}

// Comment is a single comment on a work item, most-recent-first when fetched
// in bulk.
type Comment struct {
	CreatedAt string  `json:"created_at"`
	CreatedBy *Member `json:"created_by,omitempty"`
	Text      string  `json:"text,omitempty"`
}

// Filters narrows a work-item fetch on the tracker side.
type Filters struct {
	CompletedSince string `json:"completed_since,omitempty"`
	ModifiedSince  string `json:"modified_since,omitempty"`
}
