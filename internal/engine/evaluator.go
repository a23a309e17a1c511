package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/tartampluch/birthday-reminder/internal/config"
)

// Evaluator selects the birthdays that fall inside a window around a day.
type Evaluator struct {
	DaysInAdvance int // Upcoming birthdays up to this many days ahead are kept
	DaysInPast    int // Birthdays up to this many days ago are kept
}

// Evaluate places every entry relative to today, keeps those with
// -DaysInPast <= offset <= DaysInAdvance and returns them in reminder order
// (see SortReminders). It has no side effects besides debug logging.
func (e Evaluator) Evaluate(entries []BirthdayEntry, today time.Time) []EvaluatedBirthday {
	today = CivilDate(today)
	results := make([]EvaluatedBirthday, 0, len(entries))

	for _, entry := range entries {
		occurrence := NextOccurrence(entry.BirthDate, today, e.DaysInPast)
		offset := DaysBetween(today, occurrence)

		if offset < -e.DaysInPast || offset > e.DaysInAdvance {
			continue
		}

		results = append(results, EvaluatedBirthday{
			Entry:      entry,
			Occurrence: occurrence,
			DaysOffset: offset,
		})
	}

	SortReminders(results)

	slog.Debug(config.MsgEvaluated,
		config.LogKeyComponent, config.CompEvaluator,
		config.LogKeyToday, today.Format(config.DateFormatInput),
		config.LogKeyAhead, e.DaysInAdvance,
		config.LogKeyPast, e.DaysInPast,
		config.LogKeyEntries, len(entries),
		config.LogKeyMatches, len(results),
	)
	return results
}

// NextOccurrence returns the occurrence of birth's month/day that a reminder
// on today refers to: the one nearest to today among the next occurrence on
// or after today and the most recent one within the last daysInPast days.
// On a tie the recent one wins. With daysInPast == 0 this is this year's date,
// or next year's if this year's is strictly before today.
func NextOccurrence(birth, today time.Time, daysInPast int) time.Time {
	today = CivilDate(today)
	year := today.Year()

	upcoming := AnchorDate(birth, year)
	if upcoming.Before(today) {
		upcoming = AnchorDate(birth, year+1)
	}

	if daysInPast <= 0 {
		return upcoming
	}

	recent := AnchorDate(birth, year)
	if recent.After(today) {
		recent = AnchorDate(birth, year-1)
	}
	if recent.Before(today.AddDate(0, 0, -daysInPast)) {
		return upcoming
	}
	if DaysBetween(recent, today) <= DaysBetween(today, upcoming) {
		return recent
	}
	return upcoming
}

// AnchorDate places birth's month and day into year.
// February 29 becomes March 1 in non-leap years: time.Date normalises the
// overflowing day, so no invalid date is ever built.
func AnchorDate(birth time.Time, year int) time.Time {
	return time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from "from" to "to".
func DaysBetween(from, to time.Time) int {
	day := time.Duration(config.HoursPerDay) * time.Hour
	return int(CivilDate(to).Sub(CivilDate(from)) / day)
}

// SortReminders orders results in two buckets: birthdays on or before today
// (offset <= 0) first, longest ago first and today last; then upcoming
// birthdays, soonest first. The sort is stable, so equal offsets keep their
// source order.
func SortReminders(results []EvaluatedBirthday) {
	sort.SliceStable(results, func(i, j int) bool {
		bi, bj := reminderBucket(results[i].DaysOffset), reminderBucket(results[j].DaysOffset)
		if bi != bj {
			return bi < bj
		}
		return results[i].DaysOffset < results[j].DaysOffset
	})
}

// reminderBucket returns 0 for past or today and 1 for upcoming.
func reminderBucket(offset int) int {
	if offset <= 0 {
		return 0
	}
	return 1
}
