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

// PrintSnapshotBurndown outputs the snapshot-reconstructed burndown series,
// dispatching based on the output format configured.
func PrintSnapshotBurndown(burndown *schema.SnapshotBurndown, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONSnapshotBurndown(burndown, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVSnapshotBurndown(burndown, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printSnapshotBurndownTable(burndown, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing burndown table output: %w", err)
		}
	}
	return nil
}

func printJSONSnapshotBurndown(burndown *schema.SnapshotBurndown, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON burndown", func(w io.Writer) error {
		return emitJSON(w, burndown)
	})
}

func printCSVSnapshotBurndown(burndown *schema.SnapshotBurndown, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV burndown", func(w io.Writer) error {
		return writeCSVSnapshotBurndown(w, burndown, fmtFloat)
	})
}

// printSnapshotBurndownTable prints one row per sprint day from the stored
// history, carrying the last observation across snapshot-free days.
func printSnapshotBurndownTable(burndown *schema.SnapshotBurndown, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Printf("🔥 Burndown from snapshots: %s points over %d days\n\n",
		fmtFloat(burndown.TotalPoints), burndown.SprintDays)

	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Date", "Ideal", "Actual", "Completed"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, date := range burndown.Dates {
		data = append(data, []string{
			date,
			fmtFloat(burndown.Ideal[i]),
			fmtFloat(burndown.Actual[i]),
			fmtFloat(burndown.Completed[i]),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVSnapshotBurndown writes one row per sprint day.
func writeCSVSnapshotBurndown(w io.Writer, burndown *schema.SnapshotBurndown, fmtFloat func(float64) string) error {
	header := []string{"date", "ideal_remaining", "actual_remaining", "completed"}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for i, date := range burndown.Dates {
			row := []string{
				date,
				fmtFloat(burndown.Ideal[i]),
				fmtFloat(burndown.Actual[i]),
				fmtFloat(burndown.Completed[i]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
