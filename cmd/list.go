package cmd

import (
	"fmt"

	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd enumerates the distinct field values seen in an export, handy for
// finding the exact sprint name to pass to the other commands.
var listCmd = &cobra.Command{
	Use:   "list [export-path]",
	Short: "List the sprints, assignees, statuses and epics in an export",
	Long: `Enumerate the distinct field values across all work items.

Sprints are in natural order (Sprint 2 before Sprint 10) with multi-sprint
values split apart; statuses follow the workflow order; assignees and epics
are alphabetical.

Examples:
  # Find the sprint names in an export
  sprintwatch list export.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		results, err := analyzeWorkItems(true)
		if err != nil {
			contract.LogFatal("List failed", err)
		}

		printValueSection("📋 Sprints", core.UniqueSprints(results))
		printValueSection("👤 Assignees", core.UniqueAssignees(results))
		printValueSection("🎯 Statuses", core.UniqueStatuses(results))
		printValueSection("🚀 Epics", core.UniqueEpics(results))
	},
}

// printValueSection prints one labeled block of distinct values.
func printValueSection(label string, values []string) {
	fmt.Printf("%s (%d):\n", label, len(values))
	if len(values) == 0 {
		fmt.Println("  (none)")
	}
	for _, v := range values {
		fmt.Printf("  %s\n", v)
	}
	fmt.Println()
}
