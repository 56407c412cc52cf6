package dateutil

import "time"

// DaysPerWeek is the number of cells in a calendar week row.
const DaysPerWeek = 7

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
// Months outside 1-12 are not an error; they fall back to 31.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// WeekStart returns midnight of the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// WeekDates returns the seven days, Sunday through Saturday, of the week
// containing t. Each entry is midnight in t's location.
func WeekDates(t time.Time) []time.Time {
	sunday := WeekStart(t)
	dates := make([]time.Time, DaysPerWeek)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeeksAtMonth returns the calendar grid for the month containing t.
// Every row has seven cells starting on Sunday; a cell holds the day of the
// month, or 0 for padding before the first or after the last day.
func WeeksAtMonth(t time.Time) [][]int {
	year, month := t.Year(), int(t.Month())
	days := DaysInMonth(year, month)
	first := time.Date(year, t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := int(first.Weekday())

	var weeks [][]int
	week := make([]int, DaysPerWeek)
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == DaysPerWeek {
			weeks = append(weeks, week)
			week = make([]int, DaysPerWeek)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// IsDateInRange reports whether start <= d <= end. An inverted range
// (start after end) matches nothing.
func IsDateInRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
