package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNextOccurrence verifies the projection of a birthday into the current
// or following year, including the leapling normalization policy.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": June 10th, 2024 (a Monday, leap year).
	today := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday time.Time
		expected time.Time
		desc     string
	}{
		{
			name:     "Birthday later this year",
			birthday: time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			desc:     "June 12 is after June 10, stays in 2024",
		},
		{
			name:     "Birthday already passed",
			birthday: time.Date(1985, 1, 3, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			desc:     "January 3 is strictly before June 10, rolls to 2025",
		},
		{
			name:     "Birthday is today",
			birthday: time.Date(2000, 6, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			desc:     "Today is not 'passed'; the occurrence stays this year",
		},
		{
			name:     "Leapling in a leap year",
			birthday: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			desc:     "Feb 29 2024 already passed; 2025 is non-leap so the occurrence normalizes to Mar 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(today, tt.birthday)
			assert.Equal(t, tt.expected, got, tt.desc)
		})
	}
}

// TestNextOccurrence_LeaplingLeapYearContext checks that Feb 29 is preserved
// when the target year actually has one.
func TestNextOccurrence_LeaplingLeapYearContext(t *testing.T) {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	birthday := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	got := NextOccurrence(today, birthday)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got,
		"In a leap year the occurrence must stay on Feb 29")
}

// TestDaysUntil covers day counting at day granularity, ignoring clock time.
func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(today, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, DaysUntil(today, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, DaysUntil(today, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysUntil(today, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)))
}

// TestInWindow pins the inclusive [0,7] boundary: today counts, day 7
// counts, day 8 does not.
func TestInWindow(t *testing.T) {
	today := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		occurrence time.Time
		want       bool
	}{
		{"Today (day 0)", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), true},
		{"Day 7 inclusive", time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), true},
		{"Day 8 excluded", time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), false},
		{"Yesterday excluded", time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InWindow(today, tt.occurrence))
		})
	}
}

// TestCongratulationDate verifies the weekend-to-Monday shift.
func TestCongratulationDate(t *testing.T) {
	tests := []struct {
		name       string
		occurrence time.Time
		expected   time.Time
	}{
		{
			name:       "Saturday shifts two days",
			occurrence: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			expected:   time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Sunday shifts one day",
			occurrence: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
			expected:   time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Wednesday unchanged",
			occurrence: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			expected:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Friday unchanged",
			occurrence: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			expected:   time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CongratulationDate(tt.occurrence))
		})
	}
}

// TestRealClock_Now sanity-checks the production clock.
func TestRealClock_Now(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := RealClock{}.Now()
	assert.True(t, now.After(before))
}
