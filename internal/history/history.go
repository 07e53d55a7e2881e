// Package history persists daily sprint snapshots and per-sprint velocity
// records as JSON files, for trend analysis across runs.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	snapshotsDirName = "snapshots"
	velocityDirName  = "velocity"

	maxSafeNameLen = 200
)

// Store reads and writes the on-disk history under a single root directory.
// Writes are atomic so an interrupted run never corrupts existing data.
type Store struct {
	root         string
	snapshotsDir string
	velocityDir  string
}

// NewStore creates the history directories under root if needed.
func NewStore(root string) (*Store, error) {
	s := &Store{
		root:         root,
		snapshotsDir: filepath.Join(root, snapshotsDirName),
		velocityDir:  filepath.Join(root, velocityDirName),
	}
	for _, dir := range []string{s.snapshotsDir, s.velocityDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
		}
	}
	return s, nil
}

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	separators  = regexp.MustCompile(`[-\s]+`)
)

// sanitizeName turns an arbitrary sprint name into a safe filename fragment.
// Anything outside letters, digits, underscore, space and dash is dropped;
// runs of spaces and dashes collapse to one underscore.
func sanitizeName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "")
	safe = separators.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, "_")
	if len(safe) > maxSafeNameLen {
		safe = safe[:maxSafeNameLen]
	}
	if safe == "" {
		return "unnamed"
	}
	return safe
}

// atomicWrite marshals v and writes it via a temp file in the target
// directory followed by a rename, so readers never observe a partial file.
func atomicWrite(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), ".json")
	tmp, err := os.CreateTemp(dir, "."+base+"_*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, err)
	}
	return nil
}

// readJSON loads one JSON file into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
