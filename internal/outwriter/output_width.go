// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for work-item names in
// table output based on terminal width.
func GetMaxTableNameWidth() int {
	// Get terminal width
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// Reserve space for fixed columns with table formatting:
	// Assignee + Status + Points + Score + Issues with borders/padding
	baseWidth := 55

	// Calculate available space for the name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to prevent overly wide tables
		return 60
	}
	return available
}
