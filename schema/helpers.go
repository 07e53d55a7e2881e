package schema

import (
	"math"
	"strconv"
	"time"
)

// DateFormat is the wire format for plain dates (due dates, snapshot keys).
const DateFormat = "2006-01-02"

// PointsValue parses a raw story-points string into a float. Absent or
// unparseable values contribute zero, matching the aggregation rules.
func PointsValue(points *string) float64 {
	if points == nil {
		return 0
	}
	v, err := strconv.ParseFloat(*points, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsValidPointsValue reports whether a parsed story-point value is a whole
// number inside the Fibonacci set.
func IsValidPointsValue(v float64) bool {
	if v != math.Trunc(v) {
		return false
	}
	_, ok := ValidStoryPoints[int(v)]
	return ok
}

// ParseTimestamp parses an RFC3339 timestamp from the tracker, tolerating a
// trailing Z or offset. Returns the zero time when the value is empty or
// malformed.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDate parses a YYYY-MM-DD date. For full timestamps only the date part
// is considered. Returns the zero time when the value is empty or malformed.
func ParseDate(s string) time.Time {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
