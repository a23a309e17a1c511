package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tartampluch/birthday-reminder/internal/config"
	"github.com/tartampluch/birthday-reminder/internal/engine"
)

// Presenter turns evaluated birthdays into a single reminder message.
type Presenter struct {
	Notifier Notifier
}

// NewPresenter returns a Presenter delivering through n.
func NewPresenter(n Notifier) *Presenter {
	return &Presenter{Notifier: n}
}

// Present shows results through the Notifier. Nothing is shown, and the
// Notifier is never touched, when results is empty.
func (p *Presenter) Present(ctx context.Context, results []engine.EvaluatedBirthday) error {
	log := slog.With(config.LogKeyComponent, config.CompPresenter)

	if len(results) == 0 {
		log.InfoContext(ctx, config.MsgNothingToShow)
		return nil
	}
	if p.Notifier == nil {
		return ErrNotifierMissing
	}

	log.InfoContext(ctx, config.MsgShowing, config.LogKeyMatches, len(results))

	if err := p.Notifier.Notify(config.AlertTitle, FormatMessage(results)); err != nil {
		return fmt.Errorf("%s: %w", config.ErrNotifyFailed, err)
	}
	return nil
}

// FormatMessage renders the header and one paragraph per result, each
// followed by a blank line.
func FormatMessage(results []engine.EvaluatedBirthday) string {
	var b strings.Builder
	b.WriteString(config.MessageHeader)
	b.WriteString(config.ParagraphSeparator)

	for _, r := range results {
		b.WriteString(FormatLine(r))
		b.WriteString(config.ParagraphSeparator)
	}
	return b.String()
}

// FormatLine renders "<name>: <DD.MM.YYYY> (<status>)".
func FormatLine(r engine.EvaluatedBirthday) string {
	return fmt.Sprintf(config.FormatReminderLine,
		r.Entry.Name,
		r.Occurrence.Format(config.DateFormatInput),
		Status(r.DaysOffset),
	)
}

// Status describes how far a birthday is from today.
func Status(daysOffset int) string {
	switch {
	case daysOffset > 0:
		return fmt.Sprintf(config.FormatStatusAhead, daysOffset)
	case daysOffset == 0:
		return config.StatusToday
	default:
		return fmt.Sprintf(config.FormatStatusPast, -daysOffset)
	}
}
