package core

import (
	"errors"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// Burndown errors surfaced to the caller so it can explain why no chart can
// be produced instead of rendering an empty one.
var (
	ErrNoBurndownItems  = errors.New("no work items for burndown")
	ErrNoBurndownPoints = errors.New("no story points found for this sprint")
	ErrNoBurndownDates  = errors.New("no usable dates for burndown")
)

// BuildBurndown reconstructs a day-by-day burndown series from compliance
// records. Completion dates come from the tracker's completion timestamp when
// present, falling back to the due date for items parked in the terminal
// status without one. The actual line stops at today; later days are nil.
func BuildBurndown(cfg *contract.Config, results []schema.Compliance, sprint string, now time.Time) (*schema.BurndownResult, error) {
	if len(results) == 0 {
		return nil, ErrNoBurndownItems
	}

	var totalPoints, completedPoints float64
	completionDates := make(map[string]float64)

	for i := range results {
		c := &results[i]
		points := schema.PointsValue(c.StoryPoints)
		totalPoints += points

		if c.Progress != cfg.TerminalStatus && c.CompletedAt == "" {
			continue
		}
		completedPoints += points

		if points == 0 {
			continue
		}
		switch {
		case c.CompletedAt != "":
			day := c.CompletedAt
			if len(day) > 10 {
				day = day[:10]
			}
			completionDates[day] += points
		case c.DueOn != "":
			completionDates[c.DueOn] += points
		}
	}

	if totalPoints == 0 {
		return nil, ErrNoBurndownPoints
	}

	// Sprint range comes from due dates and creation dates; malformed values
	// are skipped.
	var start, end time.Time
	observe := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if start.IsZero() || t.Before(start) {
			start = t
		}
		if end.IsZero() || t.After(end) {
			end = t
		}
	}
	for i := range results {
		observe(schema.ParseDate(results[i].DueOn))
		observe(schema.ParseDate(results[i].CreatedAt))
	}
	if start.IsZero() {
		return nil, ErrNoBurndownDates
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Keep the range plausible: a window under a week widens to two weeks,
	// and an ongoing sprint extends through today.
	if end.Sub(start) < 7*24*time.Hour {
		start = end.AddDate(0, 0, -14)
	}
	if today.After(end) {
		end = today
	}

	sprintDays := int(end.Sub(start).Hours()/24) + 1
	if sprintDays <= 0 {
		sprintDays = 14
	}

	b := &schema.BurndownResult{
		Sprint:          sprint,
		TotalPoints:     totalPoints,
		CompletedPoints: completedPoints,
		SprintDays:      sprintDays,
	}

	dailyDecrement := totalPoints / float64(sprintDays)
	remaining := totalPoints

	for day, d := 0, start; !d.After(end); day, d = day+1, d.AddDate(0, 0, 1) {
		dateStr := d.Format(schema.DateFormat)
		b.Dates = append(b.Dates, dateStr)

		ideal := totalPoints - dailyDecrement*float64(day)
		if ideal < 0 {
			ideal = 0
		}
		b.Ideal = append(b.Ideal, ideal)

		remaining -= completionDates[dateStr]

		if !d.After(today) {
			actual := remaining
			if actual < 0 {
				actual = 0
			}
			b.Actual = append(b.Actual, &actual)
		} else {
			b.Actual = append(b.Actual, nil)
		}
	}

	return b, nil
}
