package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// reportPayload is the JSON shape for the compliance report.
type reportPayload struct {
	Summary *schema.ReportSummary `json:"summary"`
	Items   []schema.Compliance   `json:"items"`
}

// PrintReport outputs the compliance report, dispatching based on the output format configured.
func PrintReport(results []schema.Compliance, summary *schema.ReportSummary, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONReport(results, summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVReport(results, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printReportTable(results, summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing report table output: %w", err)
		}
	}
	return nil
}

// printJSONReport handles opening the file and calling the JSON writer.
func printJSONReport(results []schema.Compliance, summary *schema.ReportSummary, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON report", func(w io.Writer) error {
		return emitJSON(w, &reportPayload{Summary: summary, Items: results})
	})
}

// printCSVReport handles opening the file and calling the CSV writer.
func printCSVReport(results []schema.Compliance, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV report", func(w io.Writer) error {
		return writeCSVReport(w, results, fmtFloat)
	})
}

// printReportTable prints the per-item table followed by the summary block.
func printReportTable(results []schema.Compliance, summary *schema.ReportSummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Name", "Assignee", "Status", "Points", "Score", "Issues"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableNameWidth()
	var data [][]string
	for i := range results {
		c := &results[i]

		points := "-"
		if c.StoryPoints != nil {
			points = *c.StoryPoints
		}
		issues := strings.Join(c.MandatoryMissing(), ", ")
		if len(c.RuleViolations) > 0 {
			if issues != "" {
				issues += ", "
			}
			issues += strings.Join(c.RuleViolations, ", ")
		}
		if c.MissingDailyUpdate {
			if issues != "" {
				issues += ", "
			}
			issues += "No recent update"
		}
		if issues == "" {
			issues = "✅"
		}

		row := []string{
			contract.TruncateName(c.Name, nameWidth),
			c.Assignee,
			c.StatusLabel(),
			points,
			strconv.Itoa(c.ComplianceScore()),
			issues,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	printReportSummary(summary, fmtFloat)
	return nil
}

// printReportSummary prints the aggregate block under the table.
func printReportSummary(summary *schema.ReportSummary, fmtFloat func(float64) string) {
	if summary == nil {
		return
	}

	fmt.Printf("\n📋 Report for %s\n", summary.ReportDate)
	fmt.Printf("Compliance: %s/%s tasks (%s%%) %s\n",
		strconv.Itoa(summary.CompliantTasks), strconv.Itoa(summary.TotalTasks),
		fmtFloat(summary.ComplianceRate), contract.GetColorLabel(summary.ComplianceRate))

	if summary.OverdueTasks > 0 {
		fmt.Printf("🚨 Overdue: %d tasks (%s points)\n", summary.OverdueTasks, fmtFloat(summary.OverduePoints))
	}
	if summary.DueThisWeek > 0 {
		fmt.Printf("📅 Due this week: %d tasks (%s points)\n", summary.DueThisWeek, fmtFloat(summary.DueThisWeekPoints))
	}
	if summary.TasksMissingUpdates > 0 {
		fmt.Printf("💤 Missing daily updates: %d of %d active tasks\n", summary.TasksMissingUpdates, summary.TasksNeedingUpdates)
	}

	if len(summary.ByAssignee) > 0 {
		fmt.Println("\nTop offenders:")
		limit := 5
		if len(summary.ByAssignee) < limit {
			limit = len(summary.ByAssignee)
		}
		for _, stats := range summary.ByAssignee[:limit] {
			if stats.Issues == 0 {
				continue
			}
			fmt.Printf("  %s: %d issues across %d tasks\n", stats.Assignee, stats.Issues, stats.Total)
		}
	}
}
