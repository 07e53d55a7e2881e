package core

import (
	"strconv"
	"strings"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// resolvedFields holds a work item's custom-field values after mapping them
// to their rulebook roles.
type resolvedFields struct {
	Sprint   string
	Epic     string
	Progress string
	Type     string
	Severity string
	Points   *string
}

// fieldMatches reports whether a custom field fills a role, preferring the
// configured GID and falling back to a case-insensitive name match so that
// exports without GID configuration still resolve.
func fieldMatches(cf *schema.CustomField, gid, name string) bool {
	if gid != "" {
		return cf.GID == gid
	}
	return strings.EqualFold(cf.Name, name)
}

// resolveFields maps a work item's custom fields to their rulebook roles.
func resolveFields(item *schema.WorkItem, gids contract.FieldGIDs) resolvedFields {
	var rf resolvedFields

	for i := range item.CustomFields {
		cf := &item.CustomFields[i]
		switch {
		case fieldMatches(cf, gids.Sprint, "Sprint"):
			rf.Sprint = cf.DisplayValue
		case fieldMatches(cf, gids.Epic, "Epic"):
			rf.Epic = cf.DisplayValue
		case fieldMatches(cf, gids.Progress, "Progress"):
			rf.Progress = cf.DisplayValue
		case fieldMatches(cf, gids.Type, "Type"):
			rf.Type = cf.DisplayValue
		case fieldMatches(cf, gids.Severity, "Severity"):
			rf.Severity = cf.DisplayValue
		case fieldMatches(cf, gids.Points, "Story Points"):
			if cf.NumberValue != nil {
				points := strconv.FormatFloat(*cf.NumberValue, 'f', -1, 64)
				rf.Points = &points
			} else if cf.DisplayValue != "" {
				points := cf.DisplayValue
				rf.Points = &points
			}
		}
	}

	return rf
}
