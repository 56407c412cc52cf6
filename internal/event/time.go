package event

import (
	"fmt"
	"time"
)

// ClockLayout is the time-of-day layout for event start and end times.
const ClockLayout = "15:04"

// ParseClock parses "HH:MM" and returns minutes since midnight.
// Hours must be 00-23 and minutes 00-59, both two digits.
func ParseClock(s string) (int, error) {
	if len(s) != 5 {
		return 0, ErrInvalidTime
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	m, err := ParseClock(t)
	if err != nil {
		return 0
	}
	return m
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// OverlapMinutes calculates the overlapping minutes between two time ranges.
// All times are in "HH:MM" format.
// Returns 0 if there is no overlap.
func OverlapMinutes(start1, end1, start2, end2 string) int {
	s1 := TimeToMinutes(start1)
	e1 := TimeToMinutes(end1)
	s2 := TimeToMinutes(start2)
	e2 := TimeToMinutes(end2)

	overlapStart := max(s1, s2)
	overlapEnd := min(e1, e2)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}
