package mute

import (
	"time"
)

// MinutesPerDay is the number of minutes in one day
const MinutesPerDay = 24 * 60

// MinuteOfDay returns t's clock time as minutes since midnight,
// in t's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClockMins converts an hours/minutes pair to minutes since midnight.
func ClockMins(hours, mins int) int {
	return hours*60 + mins
}

// WindowContains reports whether the daily-recurring window [start, end]
// (minutes since midnight, both bounds inclusive) contains now's clock
// time. A window whose end precedes its start spans midnight: the end
// boundary is shifted forward a day before comparing.
func WindowContains(start, end int, now time.Time) bool {
	m := MinuteOfDay(now)
	if end < start {
		end += MinutesPerDay
		if m < start {
			m += MinutesPerDay
		}
	}
	return start <= m && m <= end
}
