package core

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/opspulse/sprintwatch/schema"
)

// ResultFilter narrows a set of compliance records. Zero values mean "no
// filter" for every field; date bounds compare the wire strings, which sort
// chronologically in YYYY-MM-DD form.
type ResultFilter struct {
	Sprint    string
	Assignees []string
	Statuses  []string
	Epics     []string

	DueStart     string
	DueEnd       string
	CreatedStart string
	CreatedEnd   string
}

// TaskInSprint reports whether a record belongs to a sprint. The sprint field
// is a multi-enum and may hold comma-separated values.
func TaskInSprint(c *schema.Compliance, sprint string) bool {
	if c.Sprint == "" {
		return false
	}
	for s := range strings.SplitSeq(c.Sprint, ",") {
		if strings.TrimSpace(s) == sprint {
			return true
		}
	}
	return false
}

// FilterResults applies a ResultFilter to a set of compliance records.
func FilterResults(results []schema.Compliance, f ResultFilter) []schema.Compliance {
	filtered := make([]schema.Compliance, 0, len(results))

	for i := range results {
		c := &results[i]

		if f.Sprint != "" && f.Sprint != "All" && !TaskInSprint(c, f.Sprint) {
			continue
		}
		if len(f.Assignees) > 0 && !slices.Contains(f.Assignees, c.Assignee) {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Progress) {
			continue
		}
		if len(f.Epics) > 0 && !slices.Contains(f.Epics, c.Epic) {
			continue
		}

		if f.DueStart != "" && (c.DueOn == "" || c.DueOn < f.DueStart) {
			continue
		}
		if f.DueEnd != "" && (c.DueOn == "" || c.DueOn > f.DueEnd) {
			continue
		}

		created := c.CreatedAt
		if len(created) > 10 {
			created = created[:10]
		}
		if f.CreatedStart != "" && (created == "" || created < f.CreatedStart) {
			continue
		}
		if f.CreatedEnd != "" && (created == "" || created > f.CreatedEnd) {
			continue
		}

		filtered = append(filtered, *c)
	}

	return filtered
}

var naturalToken = regexp.MustCompile(`\d+|\D+`)

// naturalLess compares strings with embedded numbers numerically, so that
// "Sprint 2" sorts before "Sprint 10".
func naturalLess(a, b string) bool {
	at := naturalToken.FindAllString(strings.ToLower(a), -1)
	bt := naturalToken.FindAllString(strings.ToLower(b), -1)

	for i := 0; i < len(at) && i < len(bt); i++ {
		an, aErr := strconv.Atoi(at[i])
		bn, bErr := strconv.Atoi(bt[i])
		if aErr == nil && bErr == nil {
			if an != bn {
				return an < bn
			}
			continue
		}
		if at[i] != bt[i] {
			return at[i] < bt[i]
		}
	}
	return len(at) < len(bt)
}

// UniqueSprints extracts the distinct sprint names seen across records,
// splitting multi-enum values, in natural sort order.
func UniqueSprints(results []schema.Compliance) []string {
	seen := make(map[string]struct{})
	for i := range results {
		for s := range strings.SplitSeq(results[i].Sprint, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				seen[s] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return naturalLess(out[i], out[j]) })
	return out
}

// UniqueAssignees extracts the distinct assignee names, sorted, skipping the
// unassigned placeholder.
func UniqueAssignees(results []schema.Compliance) []string {
	seen := make(map[string]struct{})
	for i := range results {
		a := results[i].Assignee
		if a != "" && a != schema.UnassignedName {
			seen[a] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// UniqueStatuses extracts the distinct statuses in workflow order, with any
// unknown statuses appended alphabetically.
func UniqueStatuses(results []schema.Compliance) []string {
	seen := make(map[string]struct{})
	for i := range results {
		if results[i].Progress != "" {
			seen[results[i].Progress] = struct{}{}
		}
	}

	var out []string
	for _, s := range schema.StatusOrder {
		if _, ok := seen[s]; ok {
			out = append(out, s)
			delete(seen, s)
		}
	}

	rest := make([]string, 0, len(seen))
	for s := range seen {
		rest = append(rest, s)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// UniqueEpics extracts the distinct epic names, sorted.
func UniqueEpics(results []schema.Compliance) []string {
	seen := make(map[string]struct{})
	for i := range results {
		e := strings.TrimSpace(results[i].Epic)
		if e != "" {
			seen[results[i].Epic] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
