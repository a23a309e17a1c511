package engine

import "time"

// BirthdayEntry is one valid row of the birthday file.
type BirthdayEntry struct {
	// Name is the display name, taken verbatim from the first field.
	Name string

	// BirthDate is the parsed date of birth as a civil date (midnight UTC).
	// The year is informational; ages are never computed.
	BirthDate time.Time
}

// EvaluatedBirthday is a BirthdayEntry placed relative to a given day.
type EvaluatedBirthday struct {
	Entry BirthdayEntry

	// Occurrence is the birth month/day anchored onto the year that makes it
	// the occurrence nearest to today, never before the look-back limit.
	Occurrence time.Time

	// DaysOffset is Occurrence minus today in whole days.
	// Zero is today, negative is in the past, positive is upcoming.
	DaysOffset int
}

// IsToday reports whether the birthday falls on the evaluation day.
func (e EvaluatedBirthday) IsToday() bool {
	return e.DaysOffset == 0
}

// IsPast reports whether the birthday already happened within the look-back window.
func (e EvaluatedBirthday) IsPast() bool {
	return e.DaysOffset < 0
}
