package source

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/event"
)

// lastMinute is the end time given to all-day events and to events that run
// past midnight, since an event only spans a single date.
const lastMinute = "23:59"

func decodeICS(r io.Reader, loc *time.Location) ([]event.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing iCalendar: %w", err)
	}

	events := make([]event.Event, 0)
	for _, ve := range cal.Events() {
		e, perr := parseVEvent(ve, loc)
		if perr != nil {
			// Skip this event, keep parsing the rest.
			log.Warn().Err(perr).Str("uid", ve.Id()).Msg("skipping vevent")
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (event.Event, error) {
	var out event.Event

	out.ID = ve.Id()
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		out.Category = p.Value
	}
	out.Repeat = repeatFromRRule(ve)

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return out, errors.New("missing DTSTART")
	}

	if isAllDay(dtStart) {
		day, err := time.ParseInLocation("20060102", dtStart.Value, loc)
		if err != nil {
			return out, fmt.Errorf("parsing all-day DTSTART: %w", err)
		}
		out.Date = dateutil.FormatDate(day)
		out.StartTime = "00:00"
		out.EndTime = lastMinute
		return out, nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("parsing DTSTART: %w", err)
	}
	start = start.In(loc)
	out.Date = dateutil.FormatDate(start)
	out.StartTime = start.Format(event.ClockLayout)

	end, err := ve.GetEndAt()
	if err != nil {
		// No DTEND or DURATION: a zero-length event at its start time.
		out.EndTime = out.StartTime
		return out, nil
	}
	end = end.In(loc)
	if dateutil.FormatDate(end) != out.Date {
		log.Debug().Str("uid", out.ID).Msg("event ends on a later day, clipping to midnight")
		out.EndTime = lastMinute
	} else {
		out.EndTime = end.Format(event.ClockLayout)
	}
	return out, nil
}

// isAllDay reports whether a DTSTART carries a bare date.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// repeatFromRRule keeps the frequency and interval of an RRULE. The rule is
// recorded, not expanded. A rule that does not parse, or repeats more often
// than daily, is logged and treated as a one-off event.
func repeatFromRRule(ve *ical.VEvent) event.Repeat {
	none := event.Repeat{Type: event.RepeatNone}
	p := ve.GetProperty(ical.ComponentPropertyRrule)
	if p == nil {
		return none
	}

	opt, err := rrule.StrToROption(p.Value)
	if err != nil {
		log.Warn().Err(err).Str("uid", ve.Id()).Str("rrule", p.Value).Msg("ignoring invalid rrule")
		return none
	}

	repeat := event.Repeat{Interval: opt.Interval}
	switch opt.Freq {
	case rrule.DAILY:
		repeat.Type = event.RepeatDaily
	case rrule.WEEKLY:
		repeat.Type = event.RepeatWeekly
	case rrule.MONTHLY:
		repeat.Type = event.RepeatMonthly
	case rrule.YEARLY:
		repeat.Type = event.RepeatYearly
	default:
		log.Warn().Str("uid", ve.Id()).Str("rrule", p.Value).Msg("ignoring sub-daily rrule")
		return none
	}
	if repeat.Interval < 1 {
		repeat.Interval = 1
	}
	return repeat
}
