//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared sprintwatch binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getSprintwatchBinary returns the path to the sprintwatch binary, building it once if needed.
func getSprintwatchBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "sprintwatch-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "sprintwatch")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sprintwatch")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build sprintwatch: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// writeSampleExport writes a small work-item export and returns its path.
func writeSampleExport(t *testing.T) string {
	t.Helper()

	export := `{
		"tasks": [
			{
				"gid": "101",
				"name": "Ship invoice batching",
				"assignee": {"gid": "u1", "name": "Alice"},
				"notes": "Batch invoices nightly so finance stops reconciling them by hand. ACs: batches close at midnight UTC, failures retried three times, summary mailed to finance.",
				"due_on": "2099-01-15",
				"created_at": "2098-12-20T09:00:00Z",
				"custom_fields": [
					{"gid": "f1", "name": "Sprint", "display_value": "Sprint 7"},
					{"gid": "f2", "name": "Epic", "display_value": "Billing"},
					{"gid": "f3", "name": "Progress", "display_value": "In Progress"},
					{"gid": "f4", "name": "Type", "display_value": "Story"},
					{"gid": "f5", "name": "Severity", "display_value": "Medium"},
					{"gid": "f6", "name": "Story Points", "display_value": "5"}
				]
			},
			{
				"gid": "102",
				"name": "Mystery chore",
				"custom_fields": [
					{"gid": "f1", "name": "Sprint", "display_value": "Sprint 7"},
					{"gid": "f3", "name": "Progress", "display_value": "To Do"}
				]
			}
		],
		"completed_tasks": [
			{
				"gid": "103",
				"name": "Fix login redirect",
				"completed_at": "2099-01-05T16:00:00Z",
				"due_on": "2099-01-06",
				"custom_fields": [
					{"gid": "f1", "name": "Sprint", "display_value": "Sprint 7"},
					{"gid": "f3", "name": "Progress", "display_value": "Done"},
					{"gid": "f6", "name": "Story Points", "display_value": "3"}
				]
			}
		]
	}`

	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(export), 0o644); err != nil {
		t.Fatalf("writing sample export: %v", err)
	}
	return path
}

func runSprintwatchCommand(t *testing.T, env []string, args ...string) error {
	t.Helper()

	binaryPath := getSprintwatchBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
