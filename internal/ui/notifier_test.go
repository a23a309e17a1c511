package ui

import (
	"bytes"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-reminder/internal/config"
)

// errWriter fails every write.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestNewNotifier(t *testing.T) {
	var out bytes.Buffer

	dialogNotifier, err := NewNotifier(config.NotifierDialog, &out)
	require.NoError(t, err)
	assert.IsType(t, &FyneNotifier{}, dialogNotifier)

	consoleNotifier, err := NewNotifier(config.NotifierConsole, &out)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleNotifier{}, consoleNotifier)

	_, err = NewNotifier("toast", &out)
	assert.ErrorIs(t, err, ErrUnknownNotifier)
}

func TestConsoleNotifier(t *testing.T) {
	var out bytes.Buffer
	n := &ConsoleNotifier{Out: &out}

	require.NoError(t, n.Notify(config.AlertTitle, "Birthdays:\n\nAlice: 15.03.2024 (in 5 days)"))

	assert.Equal(t, "Birthday Reminders\n\nBirthdays:\n\nAlice: 15.03.2024 (in 5 days)\n", out.String())
}

func TestConsoleNotifier_KeepsTrailingBlankLine(t *testing.T) {
	var out bytes.Buffer
	n := &ConsoleNotifier{Out: &out}

	require.NoError(t, n.Notify(config.AlertTitle, "Birthdays:\n\nAlice: 15.03.2024 (in 5 days)\n\n"))

	assert.Equal(t, "Birthday Reminders\n\nBirthdays:\n\nAlice: 15.03.2024 (in 5 days)\n\n", out.String())
}

func TestConsoleNotifier_Errors(t *testing.T) {
	writeErr := errors.New("broken pipe")

	assert.ErrorIs(t, (&ConsoleNotifier{Out: errWriter{writeErr}}).Notify("t", "b"), writeErr)
	assert.ErrorIs(t, (&ConsoleNotifier{}).Notify("t", "b"), ErrNotifierMissing)
}

func TestFyneNotifier_Missing(t *testing.T) {
	var n *FyneNotifier
	assert.ErrorIs(t, n.Notify("t", "b"), ErrNotifierMissing)
	assert.ErrorIs(t, (&FyneNotifier{}).Notify("t", "b"), ErrNotifierMissing)
}

func TestFyneNotifier_DriverPanicBecomesError(t *testing.T) {
	n := &FyneNotifier{NewApp: func() fyne.App { panic("no display available") }}

	err := n.Notify(config.AlertTitle, "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrDialogDriver)
	assert.Contains(t, err.Error(), "no display available")
}

func TestAlertWindow(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	dismissed := false
	w, d := alertWindow(a, config.AlertTitle, "Birthdays:\n\nCarol: 10.03.2024 (TODAY - HAPPY BIRTHDAY!!!!)", func() {
		dismissed = true
	})

	assert.Equal(t, config.AlertTitle, w.Title())
	assert.NotNil(t, w.Canvas().Overlays().Top(), "The information dialog should be shown over the window")
	assert.False(t, dismissed)

	d.Hide()
	assert.True(t, dismissed, "Closing the dialog should end the event loop")
}
