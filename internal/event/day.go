package event

import (
	"slices"
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// EventsForDay returns the events whose date falls on the given day of the
// month. Day 0, days past 31 and events with unparsable dates never match.
func EventsForDay(events []Event, day int) []Event {
	result := make([]Event, 0)
	if day < 1 || day > 31 {
		return result
	}
	for _, e := range events {
		d := e.CalendarDate()
		if !d.IsZero() && d.Day() == day {
			result = append(result, e)
		}
	}
	return result
}

// EventsInRange returns the events whose date lies between start and end,
// both inclusive, compared by calendar day.
func EventsInRange(events []Event, start, end time.Time) []Event {
	from := dateutil.FormatDate(start)
	to := dateutil.FormatDate(end)
	result := make([]Event, 0)
	for _, e := range events {
		d := e.CalendarDate()
		if d.IsZero() {
			continue
		}
		// YYYY-MM-DD strings order the same way as the dates they name.
		key := dateutil.FormatDate(d)
		if key >= from && key <= to {
			result = append(result, e)
		}
	}
	return result
}

// Day holds all events for a single date.
type Day struct {
	Date   time.Time
	events []Event // sorted by StartTime
}

// NewDay creates a Day for the given date holding the events that fall on it.
// Events on other dates are ignored.
func NewDay(date time.Time, events []Event) *Day {
	d := &Day{
		Date:   dateutil.TruncateToDay(date),
		events: make([]Event, 0),
	}
	key := dateutil.FormatDate(d.Date)
	for _, e := range events {
		if e.Date == key {
			d.add(e)
		}
	}
	return d
}

func (d *Day) add(e Event) {
	d.events = append(d.events, e)
	slices.SortStableFunc(d.events, func(a, b Event) int {
		return TimeToMinutes(a.StartTime) - TimeToMinutes(b.StartTime)
	})
}

// Events returns a copy of the event slice.
func (d *Day) Events() []Event {
	return slices.Clone(d.events)
}

// Len returns the number of events in the day.
func (d *Day) Len() int {
	return len(d.events)
}

// Conflict is a pair of events on the same day that overlap.
type Conflict struct {
	First  Event
	Second Event
}

// Conflicts returns every overlapping pair of events, ordered by the start
// time of the first event.
func (d *Day) Conflicts() []Conflict {
	var result []Conflict
	for i, e := range d.events {
		for _, other := range FindOverlapping(e, d.events[i+1:]) {
			result = append(result, Conflict{First: e, Second: other})
		}
	}
	return result
}

// BusyMinutes returns the minutes covered by at least one event. Overlapping
// events are counted once.
func (d *Day) BusyMinutes() int {
	total := 0
	end := -1
	for _, e := range d.events {
		s, eErr := ParseClock(e.StartTime)
		f, fErr := ParseClock(e.EndTime)
		if eErr != nil || fErr != nil || f <= s {
			continue
		}
		if s < end {
			s = end
		}
		if f > s {
			total += f - s
			end = f
		}
	}
	return total
}
