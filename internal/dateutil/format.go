package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Locale selects the language of week and month labels.
type Locale string

const (
	LocaleKorean  Locale = "ko"
	LocaleEnglish Locale = "en"
)

// ParseLocale parses a locale name. Matching is case-insensitive.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleKorean:
		return LocaleKorean, nil
	case LocaleEnglish:
		return LocaleEnglish, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidLocale, s)
	}
}

// FillZero renders value left-padded with zeros to at least size characters.
// The shortest decimal representation is kept intact, fractional part
// included, so the result is never truncated.
func FillZero(value float64, size int) string {
	return padZero(strconv.FormatFloat(value, 'f', -1, 64), size)
}

// FillZeroInt is FillZero for integers.
func FillZeroInt(value, size int) string {
	return padZero(strconv.Itoa(value), size)
}

func padZero(s string, size int) string {
	if len(s) >= size {
		return s
	}
	return strings.Repeat("0", size-len(s)) + s
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return FormatDateWithDay(t, t.Day())
}

// FormatDateWithDay renders t as YYYY-MM-DD using day instead of t's own day.
func FormatDateWithDay(t time.Time, day int) string {
	return fmt.Sprintf("%d-%s-%s", t.Year(), FillZeroInt(int(t.Month()), 2), FillZeroInt(day, 2))
}

// WeekOfMonth returns the month a week belongs to and its number within it.
// A week belongs to the month holding its Thursday; week 1 is the week of
// that month's first Thursday.
func WeekOfMonth(t time.Time) (year int, month time.Month, week int) {
	t = TruncateToDay(t)
	thursday := t.AddDate(0, 0, int(time.Thursday)-int(t.Weekday()))

	first := time.Date(thursday.Year(), thursday.Month(), 1, 0, 0, 0, 0, thursday.Location())
	firstThursday := 1 + (int(time.Thursday)-int(first.Weekday())+DaysPerWeek)%DaysPerWeek

	return thursday.Year(), thursday.Month(), (thursday.Day()-firstThursday)/DaysPerWeek + 1
}

// FormatWeek returns a label naming the week of the month containing t.
func FormatWeek(t time.Time, loc Locale) string {
	year, month, week := WeekOfMonth(t)
	if loc == LocaleEnglish {
		return fmt.Sprintf("%s %d, week %d", month, year, week)
	}
	return fmt.Sprintf("%d년 %d월 %d주", year, int(month), week)
}

// FormatMonth returns a "Year Month" label for t.
func FormatMonth(t time.Time, loc Locale) string {
	if loc == LocaleEnglish {
		return fmt.Sprintf("%s %d", t.Month(), t.Year())
	}
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// WeekdayName returns the name of the weekday (0=Sunday).
func WeekdayName(weekday int, loc Locale) string {
	var names []string
	if loc == LocaleEnglish {
		names = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	} else {
		names = []string{"일", "월", "화", "수", "목", "금", "토"}
	}
	if weekday < 0 || weekday >= len(names) {
		return ""
	}
	return names[weekday]
}

// WeekdayShortName returns the abbreviated name of the weekday (0=Sunday).
func WeekdayShortName(weekday int, loc Locale) string {
	if loc != LocaleEnglish {
		return WeekdayName(weekday, loc)
	}
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday < 0 || weekday >= len(names) {
		return ""
	}
	return names[weekday]
}
