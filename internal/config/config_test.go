package config_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/birthday-reminder/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of values the alert and the CLI depend on.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"AlertTitle", config.AlertTitle},
		{"CommandName", config.CommandName},
		{"DefaultFile", config.DefaultFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 30, config.DefaultDaysInAdvance)
	assert.Equal(t, 5, config.DefaultDaysInPast)
	assert.Contains(t, config.SupportedNotifiers, config.DefaultNotifier)
	assert.Equal(t, "Birthday Reminders", config.AlertTitle, "The alert title is user-facing and fixed")
}

// TestDateFormat_RoundTrip guards the DD.MM.YYYY layout against accidental edits.
func TestDateFormat_RoundTrip(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05.03.2024", d.Format(config.DateFormatInput))

	parsed, err := time.Parse(config.DateFormatInput, "15.03.1990")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
}

// TestStatusFormats ensures the reminder phrases keep their wording.
func TestStatusFormats(t *testing.T) {
	assert.Equal(t, "in 5 days", fmt.Sprintf(config.FormatStatusAhead, 5))
	assert.Equal(t, "3 days ago - Birthday is in the past", fmt.Sprintf(config.FormatStatusPast, 3))
	assert.Equal(t, "Alice: 15.03.2024 (in 5 days)",
		fmt.Sprintf(config.FormatReminderLine, "Alice", "15.03.2024", fmt.Sprintf(config.FormatStatusAhead, 5)))
}
