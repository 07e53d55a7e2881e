package outwriter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// PrintMetrics outputs the sprint metrics, dispatching based on the output format configured.
func PrintMetrics(metrics *schema.SprintMetrics, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONMetrics(metrics, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVMetrics(metrics, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printMetricsTable(metrics, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing metrics table output: %w", err)
		}
	}
	return nil
}

func printJSONMetrics(metrics *schema.SprintMetrics, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON metrics", func(w io.Writer) error {
		return emitJSON(w, metrics)
	})
}

func printCSVMetrics(metrics *schema.SprintMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV metrics", func(w io.Writer) error {
		return writeCSVMetrics(w, metrics, fmtFloat)
	})
}

// printMetricsTable prints per-status rows followed by the points totals.
func printMetricsTable(metrics *schema.SprintMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Status", "Tasks", "Points"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, status := range statusDisplayOrder(metrics) {
		row := []string{
			status,
			strconv.Itoa(metrics.TasksByStatus[status]),
			fmtFloat(metrics.PointsByStatus[status]),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("\n🎯 Total: %s points | Completed: %s | Remaining: %s | Avg/task: %s\n",
		fmtFloat(metrics.TotalPoints), fmtFloat(metrics.CompletedPoints),
		fmtFloat(metrics.RemainingPoints), fmtFloat(metrics.AvgPointsPerTask))

	if len(metrics.PointsByAssignee) > 0 {
		fmt.Println("\nPoints by assignee:")
		for _, ap := range metrics.PointsByAssignee {
			fmt.Printf("  %s: %s\n", ap.Assignee, fmtFloat(ap.Points))
		}
	}
	return nil
}

// statusDisplayOrder lists the statuses present in the metrics, workflow
// order first, then anything unexpected.
func statusDisplayOrder(metrics *schema.SprintMetrics) []string {
	seen := make(map[string]bool, len(metrics.TasksByStatus))
	var out []string
	for _, status := range schema.StatusOrder {
		if _, ok := metrics.TasksByStatus[status]; ok {
			out = append(out, status)
			seen[status] = true
		}
	}
	var rest []string
	for status := range metrics.TasksByStatus {
		if !seen[status] {
			rest = append(rest, status)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
