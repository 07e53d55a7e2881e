package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// PrintBurndown outputs the burndown series, dispatching based on the output format configured.
func PrintBurndown(burndown *schema.BurndownResult, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONBurndown(burndown, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVBurndown(burndown, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printBurndownTable(burndown, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing burndown table output: %w", err)
		}
	}
	return nil
}

func printJSONBurndown(burndown *schema.BurndownResult, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON burndown", func(w io.Writer) error {
		return emitJSON(w, burndown)
	})
}

func printCSVBurndown(burndown *schema.BurndownResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV burndown", func(w io.Writer) error {
		return writeCSVBurndown(w, burndown, fmtFloat)
	})
}

// printBurndownTable prints the day-by-day series with the sprint header.
func printBurndownTable(burndown *schema.BurndownResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	sprint := burndown.Sprint
	if sprint == "" {
		sprint = "All Sprints"
	}
	fmt.Printf("🔥 Burndown for %s: %s/%s points (%s%%)\n\n",
		sprint, fmtFloat(burndown.CompletedPoints), fmtFloat(burndown.TotalPoints),
		fmtFloat(burndown.PercentComplete()))

	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Date", "Ideal", "Actual"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, date := range burndown.Dates {
		actual := "-"
		if burndown.Actual[i] != nil {
			actual = fmtFloat(*burndown.Actual[i])
		}
		data = append(data, []string{date, fmtFloat(burndown.Ideal[i]), actual})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVBurndown writes one row per sprint day.
func writeCSVBurndown(w io.Writer, burndown *schema.BurndownResult, fmtFloat func(float64) string) error {
	header := []string{"date", "ideal_remaining", "actual_remaining"}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for i, date := range burndown.Dates {
			actual := ""
			if burndown.Actual[i] != nil {
				actual = fmtFloat(*burndown.Actual[i])
			}
			if err := cw.Write([]string{date, fmtFloat(burndown.Ideal[i]), actual}); err != nil {
				return err
			}
		}
		return nil
	})
}
