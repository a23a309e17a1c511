package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Evaluator only ever sees the civil date derived from it, see Today.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the local calendar date of c as midnight UTC.
// Birthdays follow the wall calendar of the user, so the local date is read
// first and only then re-expressed in UTC, where every day is exactly 24h long.
func Today(c Clock) time.Time {
	return CivilDate(c.Now())
}

// CivilDate drops the clock time and location of t, keeping its wall date.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
