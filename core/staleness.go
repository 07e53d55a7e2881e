package core

import (
	"time"

	"github.com/opspulse/sprintwatch/schema"
)

// ApplyStaleness decides whether an active item lacks a recent activity
// signal. Last activity is the later of the item's modification timestamp and
// its newest comment; when neither yields a usable timestamp the item is
// treated as stale immediately. Failing open toward flagging is deliberate:
// an item nobody can date is an item nobody is updating.
func ApplyStaleness(c *schema.Compliance, modifiedAt string, comments []schema.Comment, now time.Time, staleAfter time.Duration) {
	lastActivity := schema.ParseTimestamp(modifiedAt)

	c.TotalComments = len(comments)
	if len(comments) > 0 {
		latest := comments[0]
		c.LastCommentDate = latest.CreatedAt
		if latest.CreatedBy != nil && latest.CreatedBy.Name != "" {
			c.LastCommentAuthor = latest.CreatedBy.Name
		} else {
			c.LastCommentAuthor = schema.StatusUnknown
		}

		if commentTime := schema.ParseTimestamp(latest.CreatedAt); !commentTime.IsZero() {
			if lastActivity.IsZero() || commentTime.After(lastActivity) {
				lastActivity = commentTime
			}
		}
	}

	if lastActivity.IsZero() {
		// No activity signal at all.
		c.MissingDailyUpdate = true
		return
	}

	hours := now.Sub(lastActivity).Hours()
	c.HoursSinceUpdate = &hours
	if hours > staleAfter.Hours() {
		c.MissingDailyUpdate = true
	}
}
