package event

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// DateRange is the absolute start and end of an event.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both ends parsed.
func (r DateRange) Valid() bool {
	return IsValidTime(r.Start) && IsValidTime(r.End)
}

// IsValidTime reports whether t is a real timestamp rather than the zero
// time ParseDateTime returns on failure. The sentinel is also a real instant,
// 0001-01-01 00:00 UTC; callers that must tell the two apart use
// ParseDateTimeOK.
func IsValidTime(t time.Time) bool {
	return !t.IsZero()
}

// ParseDateTime combines a "YYYY-MM-DD" date and an "HH:MM" time into a
// timestamp in the local timezone. It never fails loudly: empty or
// malformed input yields the zero time, which callers check with IsValidTime.
func ParseDateTime(date, clock string) time.Time {
	return ParseDateTimeIn(date, clock, time.Local)
}

// ParseDateTimeIn is ParseDateTime with an explicit location.
func ParseDateTimeIn(date, clock string, loc *time.Location) time.Time {
	t, _ := ParseDateTimeOK(date, clock, loc)
	return t
}

// ParseDateTimeOK is ParseDateTimeIn with an explicit validity flag. On
// failure it returns the zero time and false.
func ParseDateTimeOK(date, clock string, loc *time.Location) (time.Time, bool) {
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(dateutil.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, loc), true
}

// ToDateRange converts an event to its absolute start and end. Unparsable
// fields come through as zero times.
func ToDateRange(e Event) DateRange {
	return DateRange{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}

// bounds is ToDateRange with an explicit validity flag.
func bounds(e Event) (start, end time.Time, ok bool) {
	start, okStart := ParseDateTimeOK(e.Date, e.StartTime, time.Local)
	end, okEnd := ParseDateTimeOK(e.Date, e.EndTime, time.Local)
	return start, end, okStart && okEnd
}

// IsOverlapping reports whether a and b share any instant. Two events that
// merely touch (one ends when the other starts) do not overlap, and an event
// with an unparsable date or time overlaps nothing.
func IsOverlapping(a, b Event) bool {
	aStart, aEnd, ok := bounds(a)
	if !ok {
		return false
	}
	bStart, bEnd, ok := bounds(b)
	if !ok {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindOverlapping returns the events in existing that overlap candidate,
// in input order. An existing event sharing the candidate's
// non-empty ID is the candidate itself being edited and is skipped.
func FindOverlapping(candidate Event, existing []Event) []Event {
	result := make([]Event, 0)
	for _, e := range existing {
		if candidate.ID != "" && e.ID == candidate.ID {
			continue
		}
		if IsOverlapping(candidate, e) {
			result = append(result, e)
		}
	}
	return result
}
