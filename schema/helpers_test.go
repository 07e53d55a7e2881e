package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsValue(t *testing.T) {
	three := "3"
	threeFloat := "3.0"
	garbage := "a lot"

	tests := []struct {
		name   string
		points *string
		want   float64
	}{
		{"nil is zero", nil, 0},
		{"integer string", &three, 3},
		{"float string", &threeFloat, 3},
		{"unparseable is zero", &garbage, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsValue(tt.points))
		})
	}
}

func TestIsValidPointsValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"zero is allowed", 0, true},
		{"fibonacci member", 8, true},
		{"max member", 13, true},
		{"non-fibonacci", 4, false},
		{"fractional", 2.5, false},
		{"beyond max", 21, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPointsValue(tt.value))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("yesterday-ish").IsZero())

	got := ParseTimestamp("2024-03-01T10:30:00Z")
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 10, got.Hour())
}

func TestParseDate(t *testing.T) {
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("not-a-date").IsZero())

	// Plain date and full timestamp both resolve to the date part.
	assert.Equal(t, ParseDate("2024-03-01"), ParseDate("2024-03-01T23:59:00Z"))
}
