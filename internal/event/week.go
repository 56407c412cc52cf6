package event

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// Week holds 7 days starting from Sunday.
type Week struct {
	StartDate time.Time // Sunday of the week
	Days      [7]*Day   // Sunday (0) through Saturday (6)
}

// NewWeek creates the Sunday-to-Saturday week containing date and
// distributes events to their days. Events outside the week are ignored.
func NewWeek(date time.Time, events []Event) *Week {
	dates := dateutil.WeekDates(date)
	inWeek := EventsInRange(events, dates[0], dates[len(dates)-1])

	w := &Week{StartDate: dates[0]}
	for i, d := range dates {
		w.Days[i] = NewDay(d, inWeek)
	}
	return w
}

// Day returns the Day for the given weekday (0=Sunday, 6=Saturday).
// Returns nil if weekday is out of range.
func (w *Week) Day(weekday int) *Day {
	if weekday < 0 || weekday > 6 {
		return nil
	}
	return w.Days[weekday]
}

// DayByDate returns the Day for the given date, nil if not in this week.
func (w *Week) DayByDate(date time.Time) *Day {
	key := dateutil.FormatDate(date)
	for _, day := range w.Days {
		if dateutil.FormatDate(day.Date) == key {
			return day
		}
	}
	return nil
}

// AllEvents returns all events across all days, sorted by date and start time.
func (w *Week) AllEvents() []Event {
	var result []Event
	for _, day := range w.Days {
		result = append(result, day.Events()...)
	}
	return result
}

// EndDate returns the Saturday of the week.
func (w *Week) EndDate() time.Time {
	return w.StartDate.AddDate(0, 0, 6)
}

// Label returns the week-of-month label for the week.
func (w *Week) Label(loc dateutil.Locale) string {
	return dateutil.FormatWeek(w.StartDate, loc)
}
