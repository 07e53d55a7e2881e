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

// PrintTrend outputs the compliance trend, dispatching based on the output format configured.
func PrintTrend(points []schema.TrendPoint, cfg *contract.Config) error {
	fmtFloat := floatFmt(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONTrend(points, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVTrend(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printTrendTable(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing trend table output: %w", err)
		}
	}
	return nil
}

func printJSONTrend(points []schema.TrendPoint, cfg *contract.Config) error {
	return emit(cfg.OutputFile, "Wrote JSON trend", func(w io.Writer) error {
		return emitJSON(w, points)
	})
}

func printCSVTrend(points []schema.TrendPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	return emit(cfg.OutputFile, "Wrote CSV trend", func(w io.Writer) error {
		return writeCSVTrend(w, points, fmtFloat)
	})
}

// printTrendTable prints one row per snapshot with a colored health label.
func printTrendTable(points []schema.TrendPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Date", "Sprint", "Compliance", "Health"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range points {
		row := []string{
			p.Date,
			p.Sprint,
			fmtFloat(p.ComplianceRate) + "%",
			contract.GetPlainLabel(p.ComplianceRate),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("📈 %d observations\n", len(points))
	return nil
}

// writeCSVTrend writes one row per snapshot observation.
func writeCSVTrend(w io.Writer, points []schema.TrendPoint, fmtFloat func(float64) string) error {
	header := []string{"date", "sprint", "compliance_rate"}
	return emitCSV(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			if err := cw.Write([]string{p.Date, p.Sprint, fmtFloat(p.ComplianceRate)}); err != nil {
				return err
			}
		}
		return nil
	})
}
