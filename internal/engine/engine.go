package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/birthday-reminder/internal/config"
)

// Generator runs the loading and evaluation stages for one invocation.
type Generator struct {
	Clock     Clock   // Interface for time mocking.
	Loader    *Loader // Reads the birthday file.
	Evaluator Evaluator
}

// NewGenerator builds a Generator from resolved settings using the real clock.
func NewGenerator(s config.Settings) *Generator {
	return &Generator{
		Clock:  RealClock{},
		Loader: NewLoader(),
		Evaluator: Evaluator{
			DaysInAdvance: s.DaysInAdvance,
			DaysInPast:    s.DaysInPast,
		},
	}
}

// Run loads path and returns the birthdays to remind about, in display order.
// Any returned error comes from loading; evaluation cannot fail.
func (g *Generator) Run(ctx context.Context, path string) ([]EvaluatedBirthday, error) {
	start := time.Now()

	entries, err := g.Loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	today := Today(g.Clock)
	results := g.Evaluator.Evaluate(entries, today)

	for _, r := range results {
		if r.IsToday() {
			slog.InfoContext(ctx, config.MsgBirthdayToday,
				config.LogKeyComponent, config.CompEvaluator,
				config.LogKeyName, r.Entry.Name)
		}
	}

	slog.DebugContext(ctx, config.MsgRunFinished,
		config.LogKeyComponent, config.CompEvaluator,
		config.LogKeyMatches, len(results),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return results, nil
}
