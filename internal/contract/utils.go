package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Compliance label constants.
const (
	HealthyValue  = "Healthy"  // Healthy compliance
	WatchValue    = "Watch"    // Needs attention soon
	AtRiskValue   = "At Risk"  // Needs attention now
	CriticalValue = "Critical" // Actively hurting the team
)

// Color variables for console output.
var (
	HealthyColor  = color.New(color.FgGreen)           // healthyColor represents a clean bill of health.
	WatchColor    = color.New(color.FgCyan)            // watchColor represents informational caution.
	AtRiskColor   = color.New(color.FgYellow)          // atRiskColor represents standard caution.
	CriticalColor = color.New(color.FgRed, color.Bold) // criticalColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a compliance rate.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(rate float64) string {
	switch {
	case rate >= 80:
		return HealthyValue
	case rate >= 60:
		return WatchValue
	case rate >= 40:
		return AtRiskValue
	default:
		return CriticalValue
	}
}

// GetColorLabel returns a colored text label for console output.
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(rate float64) string {
	text := GetPlainLabel(rate)

	switch text {
	case HealthyValue:
		return HealthyColor.Sprint(text)
	case WatchValue:
		return WatchColor.Sprint(text)
	case AtRiskValue:
		return AtRiskColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName shortens a work-item name to maxWidth runes, keeping the
// leading part since that is where the ticket prefix lives.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
