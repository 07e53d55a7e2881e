// main is the entry point for the sprintwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/opspulse/sprintwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
