package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/tartampluch/birthday-reminder/internal/config"
)

var (
	// ErrUnknownNotifier is returned by NewNotifier for an unsupported kind.
	ErrUnknownNotifier = errors.New(config.ErrUnknownNotifier)

	// ErrNotifierMissing is returned when no notification surface is configured.
	ErrNotifierMissing = errors.New(config.ErrNotifierMissing)
)

// Notifier shows one informational message to the user.
// Implementations block until the message has been delivered or dismissed.
type Notifier interface {
	Notify(title, body string) error
}

// NewNotifier returns the Notifier registered under kind.
// Console output goes to out.
func NewNotifier(kind string, out io.Writer) (Notifier, error) {
	switch kind {
	case config.NotifierDialog:
		return NewFyneNotifier(), nil
	case config.NotifierConsole:
		return &ConsoleNotifier{Out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotifier, kind)
	}
}

// -----------------------------------------------------------------------------
// Desktop Dialog
// -----------------------------------------------------------------------------

// FyneNotifier shows the message in a modal information dialog.
type FyneNotifier struct {
	// NewApp creates the application on first use, so that nothing graphical
	// is initialised when there is nothing to show.
	NewApp func() fyne.App
}

// NewFyneNotifier creates a FyneNotifier backed by the platform driver.
func NewFyneNotifier() *FyneNotifier {
	return &FyneNotifier{
		NewApp: func() fyne.App { return app.NewWithID(config.AppID) },
	}
}

// Notify opens the dialog and runs the event loop until the user dismisses it.
// Driver failures (no display, missing GL) surface as errors instead of panics.
func (n *FyneNotifier) Notify(title, body string) (err error) {
	if n == nil || n.NewApp == nil {
		return ErrNotifierMissing
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", config.ErrDialogDriver, r)
		}
	}()

	a := n.NewApp()
	w, _ := alertWindow(a, title, body, a.Quit)
	w.Show()
	a.Run()
	return nil
}

// alertWindow builds the host window and shows the information dialog on it.
// onDismiss runs once the dialog is closed.
func alertWindow(a fyne.App, title, body string, onDismiss func()) (fyne.Window, dialog.Dialog) {
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(config.DialogWindowWidth, config.DialogWindowHeight))
	w.CenterOnScreen()
	w.SetMaster()

	d := dialog.NewInformation(title, body, w)
	d.SetOnClosed(func() {
		slog.Debug(config.MsgDialogClosed, config.LogKeyComponent, config.CompNotifier)
		onDismiss()
	})
	d.Show()

	return w, d
}

// -----------------------------------------------------------------------------
// Console
// -----------------------------------------------------------------------------

// ConsoleNotifier prints the message, for headless machines and scripting.
type ConsoleNotifier struct {
	Out io.Writer
}

// Notify writes the title, a blank line and the body to Out, ending with a newline.
func (c *ConsoleNotifier) Notify(title, body string) error {
	if c == nil || c.Out == nil {
		return ErrNotifierMissing
	}
	msg := title + config.ParagraphSeparator + body
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, err := io.WriteString(c.Out, msg)
	return err
}
