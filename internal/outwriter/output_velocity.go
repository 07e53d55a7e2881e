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

// PrintVelocity outputs the velocity trend, dispatching based on the output format configured.
func PrintVelocity(points []schema.VelocityPoint, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONVelocity(points, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVVelocity(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printVelocityTable(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing velocity table output: %w", err)
		}
	}
	return nil
}

func printJSONVelocity(points []schema.VelocityPoint, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON velocity", func(w io.Writer) error {
		return emitJSON(w, points)
	})
}

func printCSVVelocity(points []schema.VelocityPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV velocity", func(w io.Writer) error {
		return writeCSVVelocity(w, points, fmtFloat)
	})
}

// printVelocityTable prints one row per closed sprint with the rolling average.
func printVelocityTable(points []schema.VelocityPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Sprint", "Planned", "Completed", "Rate"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	var totalCompleted float64
	for _, p := range points {
		totalCompleted += p.CompletedPoints
		row := []string{
			p.Sprint,
			fmtFloat(p.PlannedPoints),
			fmtFloat(p.CompletedPoints),
			fmtFloat(p.CompletionRate) + "%",
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(points) > 0 {
		fmt.Printf("\n🚀 Average velocity: %s points over %d sprints\n",
			fmtFloat(totalCompleted/float64(len(points))), len(points))
	}
	return nil
}

// writeCSVVelocity writes one row per closed sprint.
func writeCSVVelocity(w io.Writer, points []schema.VelocityPoint, fmtFloat func(float64) string) error {
	header := []string{"sprint", "planned_points", "completed_points", "completion_rate"}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			row := []string{
				p.Sprint,
				fmtFloat(p.PlannedPoints),
				fmtFloat(p.CompletedPoints),
				fmtFloat(p.CompletionRate),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
