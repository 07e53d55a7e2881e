package contract

import (
	"testing"
	"time"

	"github.com/opspulse/sprintwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		MinDescriptionLength: DefaultMinDescriptionLength,
		StaleAfterHours:      DefaultStaleAfterHours,
		CommentLimit:         DefaultCommentLimit,
		RetentionDays:        DefaultRetentionDays,
		TrendDays:            DefaultTrendDays,
		Precision:            DefaultPrecision,
		Output:               "text",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.DefaultActiveStatuses, cfg.ActiveStatuses)
	assert.Equal(t, schema.DefaultPendingStatuses, cfg.PendingStatuses)
	assert.Equal(t, schema.DefaultExcludedStatuses, cfg.ExcludedStatuses)
	assert.Equal(t, schema.DefaultExemptTypes, cfg.ExemptTypes)
	assert.Equal(t, schema.StatusDone, cfg.TerminalStatus)
	assert.Equal(t, 24*time.Hour, cfg.StaleAfter)
	assert.Equal(t, schema.NoneBackend, cfg.TrendBackend)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.NotEmpty(t, cfg.HistoryDir)
}

func TestProcessAndValidateStatusLists(t *testing.T) {
	input := validInput()
	input.ActiveStatuses = "Doing, Verifying ,"
	input.ExemptTypes = "Spike"
	input.TerminalStatus = "Shipped"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, []string{"Doing", "Verifying"}, cfg.ActiveStatuses)
	assert.Equal(t, []string{"Spike"}, cfg.ExemptTypes)
	assert.Equal(t, "Shipped", cfg.TerminalStatus)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero stale hours", func(i *ConfigRawInput) { i.StaleAfterHours = 0 }},
		{"negative description length", func(i *ConfigRawInput) { i.MinDescriptionLength = -1 }},
		{"zero retention", func(i *ConfigRawInput) { i.RetentionDays = 0 }},
		{"bad precision", func(i *ConfigRawInput) { i.Precision = 3 }},
		{"bad output", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad backend", func(i *ConfigRawInput) { i.TrendBackend = "oracle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}
