package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/opspulse/sprintwatch/schema"
)

// writeCSVMetrics writes one row per status plus an assignee breakdown row set.
func writeCSVMetrics(w io.Writer, metrics *schema.SprintMetrics, fmtFloat func(float64) string) error {
	header := []string{"section", "key", "tasks", "points"}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for _, status := range statusDisplayOrder(metrics) {
			row := []string{
				"status",
				status,
				strconv.Itoa(metrics.TasksByStatus[status]),
				fmtFloat(metrics.PointsByStatus[status]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		for _, ap := range metrics.PointsByAssignee {
			row := []string{"assignee", ap.Assignee, "", fmtFloat(ap.Points)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		totals := [][]string{
			{"total", "total_points", "", fmtFloat(metrics.TotalPoints)},
			{"total", "completed_points", "", fmtFloat(metrics.CompletedPoints)},
			{"total", "remaining_points", "", fmtFloat(metrics.RemainingPoints)},
			{"total", "avg_points_per_task", "", fmtFloat(metrics.AvgPointsPerTask)},
		}
		for _, row := range totals {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
