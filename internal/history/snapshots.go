package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// snapshotPath builds the snapshot filename: <date>_<safe sprint>.json.
func (s *Store) snapshotPath(date, sprint string) string {
	return filepath.Join(s.snapshotsDir, date+"_"+sanitizeName(sprint)+".json")
}

// SaveSnapshot persists one sprint snapshot, stamping the write time. The
// input is not mutated.
func (s *Store) SaveSnapshot(snap schema.SprintSnapshot) (string, error) {
	snap.GeneratedAt = time.Now().Format(time.RFC3339)
	path := s.snapshotPath(snap.Date, snap.Sprint)
	if err := atomicWrite(path, &snap); err != nil {
		return "", err
	}
	return path, nil
}

// LoadSnapshot reads the snapshot for one date and sprint. Returns nil with
// no error when it does not exist; a corrupt file is reported and skipped.
func (s *Store) LoadSnapshot(date, sprint string) (*schema.SprintSnapshot, error) {
	path := s.snapshotPath(date, sprint)
	var snap schema.SprintSnapshot
	if err := readJSON(path, &snap); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

// fileDate extracts the YYYY-MM-DD prefix from a snapshot filename. Returns
// the zero time when the name does not start with a date.
func fileDate(name string) time.Time {
	base := strings.TrimSuffix(name, ".json")
	datePart, _, _ := strings.Cut(base, "_")
	return schema.ParseDate(datePart)
}

// loadSnapshotsMatching loads every snapshot newer than the cutoff whose
// filename passes the match predicate. Files with an unparseable date prefix
// are opened anyway; corrupt files are warned about and skipped.
func (s *Store) loadSnapshotsMatching(cutoff time.Time, match func(name string) bool) ([]schema.SprintSnapshot, error) {
	entries, err := os.ReadDir(s.snapshotsDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.snapshotsDir, err)
	}

	var snapshots []schema.SprintSnapshot
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || !match(name) {
			continue
		}

		if d := fileDate(name); !d.IsZero() && d.Before(cutoff) {
			continue
		}

		var snap schema.SprintSnapshot
		if err := readJSON(filepath.Join(s.snapshotsDir, name), &snap); err != nil {
			contract.LogWarn("loading snapshot "+name, err)
			continue
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

// SnapshotsForSprint returns the sprint's snapshots from the last N days,
// sorted by date ascending.
func (s *Store) SnapshotsForSprint(sprint string, days int) ([]schema.SprintSnapshot, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	suffix := "_" + sanitizeName(sprint) + ".json"

	snapshots, err := s.loadSnapshotsMatching(cutoff, func(name string) bool {
		return strings.HasSuffix(name, suffix)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Date < snapshots[j].Date })
	return snapshots, nil
}

// LatestSnapshot returns the sprint's most recent snapshot from the last 90
// days, or nil when there is none.
func (s *Store) LatestSnapshot(sprint string) (*schema.SprintSnapshot, error) {
	snapshots, err := s.SnapshotsForSprint(sprint, 90)
	if err != nil || len(snapshots) == 0 {
		return nil, err
	}
	return &snapshots[len(snapshots)-1], nil
}

// AllSnapshots returns every snapshot from the last N days, sorted by sprint
// then date.
func (s *Store) AllSnapshots(days int) ([]schema.SprintSnapshot, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	snapshots, err := s.loadSnapshotsMatching(cutoff, func(string) bool { return true })
	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].Sprint != snapshots[j].Sprint {
			return snapshots[i].Sprint < snapshots[j].Sprint
		}
		return snapshots[i].Date < snapshots[j].Date
	})
	return snapshots, nil
}

// Cleanup removes snapshots older than N days, judged by the filename date
// alone. Files without a parseable date prefix are left untouched. Returns
// the number of files removed.
func (s *Store) Cleanup(days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	entries, err := os.ReadDir(s.snapshotsDir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", s.snapshotsDir, err)
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		d := fileDate(name)
		if d.IsZero() || !d.Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.snapshotsDir, name)); err != nil {
			contract.LogWarn("removing snapshot "+name, err)
			continue
		}
		removed++
	}
	return removed, nil
}
