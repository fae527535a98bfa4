// Package schedule implements the birthday recurrence rules: next-occurrence
// projection, leap-year normalization, the weekend-to-Monday shift and the
// 7-day lookahead window.
package schedule

import (
	"math"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// dayStart truncates t to midnight in its own location.
// Birthdays are calendar dates, so all comparisons happen at day granularity.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextOccurrence projects the birthday's month/day into today's year, or the
// next year if that date has already passed (strictly before today).
//
// Leapling policy: a Feb 29 birthday in a non-leap target year is observed
// on March 1, via time.Date normalization. The occurrence is therefore
// always a well-defined date.
func NextOccurrence(today, birthday time.Time) time.Time {
	loc := today.Location()
	todayStart := dayStart(today)

	candidate := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}

// DaysUntil counts whole calendar days from today to the occurrence.
// Rounding to the nearest day absorbs DST transitions (23h/25h days).
func DaysUntil(today, occurrence time.Time) int {
	d := dayStart(occurrence).Sub(dayStart(today))
	return int(math.Round(d.Hours() / 24))
}

// InWindow reports whether the occurrence falls inside the inclusive
// [today, today+7] lookahead window. Today counts, and exactly 7 days
// out counts.
func InWindow(today, occurrence time.Time) bool {
	days := DaysUntil(today, occurrence)
	return days >= 0 && days <= config.LookaheadDays
}

// CongratulationDate shifts weekend occurrences to the following Monday:
// Saturday +2 days, Sunday +1 day, weekdays unchanged. The shifted date may
// land outside the lookahead window; that is intentional.
func CongratulationDate(occurrence time.Time) time.Time {
	switch occurrence.Weekday() {
	case time.Saturday:
		return occurrence.AddDate(0, 0, 2)
	case time.Sunday:
		return occurrence.AddDate(0, 0, 1)
	default:
		return occurrence
	}
}
