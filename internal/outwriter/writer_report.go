package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/opspulse/sprintwatch/schema"
)

// writeCSVReport writes one row per work item with its verdict fields.
func writeCSVReport(w io.Writer, results []schema.Compliance, fmtFloat func(float64) string) error {
	header := []string{
		"gid",
		"name",
		"assignee",
		"status",
		"sprint",
		"epic",
		"type",
		"points",
		"due_on",
		"days_until_due",
		"score",
		"compliant",
		"missing",
		"violations",
		"hours_since_update",
	}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for i := range results {
			c := &results[i]

			points := ""
			if c.StoryPoints != nil {
				points = *c.StoryPoints
			}
			daysUntilDue := ""
			if c.DaysUntilDue != nil {
				daysUntilDue = strconv.Itoa(*c.DaysUntilDue)
			}
			hours := ""
			if c.HoursSinceUpdate != nil {
				hours = fmtFloat(*c.HoursSinceUpdate)
			}

			row := []string{
				c.GID,
				c.Name,
				c.Assignee,
				c.StatusLabel(),
				c.Sprint,
				c.Epic,
				c.TaskType,
				points,
				c.DueOn,
				daysUntilDue,
				strconv.Itoa(c.ComplianceScore()),
				strconv.FormatBool(c.IsCompliant()),
				strings.Join(c.MandatoryMissing(), "|"),
				strings.Join(c.RuleViolations, "|"),
				hours,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
