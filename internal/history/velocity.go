package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/schema"
)

// velocityPath builds the velocity filename, keyed by sprint name only so a
// re-save overwrites the prior close-out.
func (s *Store) velocityPath(sprint string) string {
	return filepath.Join(s.velocityDir, sanitizeName(sprint)+".json")
}

// SaveVelocity persists a sprint's close-out record, replacing any existing
// record for the same sprint.
func (s *Store) SaveVelocity(v schema.VelocityData) (string, error) {
	path := s.velocityPath(v.Sprint)
	if err := atomicWrite(path, &v); err != nil {
		return "", err
	}
	return path, nil
}

// LoadVelocity reads a sprint's close-out record. Returns nil with no error
// when it does not exist.
func (s *Store) LoadVelocity(sprint string) (*schema.VelocityData, error) {
	var v schema.VelocityData
	if err := readJSON(s.velocityPath(sprint), &v); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// AllVelocities returns every stored close-out record, sorted by sprint
// start date. Corrupt files are warned about and skipped.
func (s *Store) AllVelocities() ([]schema.VelocityData, error) {
	entries, err := os.ReadDir(s.velocityDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.velocityDir, err)
	}

	var velocities []schema.VelocityData
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		var v schema.VelocityData
		if err := readJSON(filepath.Join(s.velocityDir, name), &v); err != nil {
			contract.LogWarn("loading velocity "+name, err)
			continue
		}
		velocities = append(velocities, v)
	}

	sort.Slice(velocities, func(i, j int) bool { return velocities[i].StartDate < velocities[j].StartDate })
	return velocities, nil
}
