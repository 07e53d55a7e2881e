package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/opspulse/sprintwatch/internal/contract"
)

// floatFmt builds the formatter used for point and rate columns, honoring
// the configured decimal precision.
func floatFmt(precision int) func(float64) string {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

// emit resolves the output target (stdout or --output-file), runs write
// against it and closes the file when one was opened. The destination note
// goes to stderr so redirected stdout stays clean.
func emit(outputFile, label string, write func(io.Writer) error) error {
	target, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if target != os.Stdout {
		defer func() { _ = target.Close() }()
	}

	if err := write(target); err != nil {
		return err
	}
	if target != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", label, outputFile)
	}
	return nil
}

// emitJSON writes v as indented JSON.
func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// emitCSV writes the header row, then hands the flushing writer to rows.
func emitCSV(w io.Writer, header []string, rows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	return rows(cw)
}
