// Package event defines calendar events and the overlap and validation
// helpers that operate on them.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime    = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrInvalidRepeat  = errors.New("repeat type must be none, daily, weekly, monthly or yearly")
)

// RepeatType describes how an event repeats.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// Valid returns true if the repeat type is a known value. The empty type is
// treated as none.
func (r RepeatType) Valid() bool {
	switch r {
	case "", RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	default:
		return false
	}
}

// Repeat is carried with an event but never expanded here.
type Repeat struct {
	Type     RepeatType `toml:"type" json:"type" yaml:"type"`
	Interval int        `toml:"interval" json:"interval" yaml:"interval"`
}

// Event is a single calendar entry on one date.
type Event struct {
	ID               string `toml:"id" json:"id" yaml:"id"`
	Title            string `toml:"title" json:"title" yaml:"title"`
	Date             string `toml:"date" json:"date" yaml:"date"`                // "YYYY-MM-DD"
	StartTime        string `toml:"startTime" json:"startTime" yaml:"startTime"` // "HH:MM"
	EndTime          string `toml:"endTime" json:"endTime" yaml:"endTime"`       // "HH:MM"
	Description      string `toml:"description,omitempty" json:"description" yaml:"description,omitempty"`
	Location         string `toml:"location,omitempty" json:"location" yaml:"location,omitempty"`
	Category         string `toml:"category,omitempty" json:"category" yaml:"category,omitempty"`
	Repeat           Repeat `toml:"repeat" json:"repeat" yaml:"repeat"`
	NotificationTime int    `toml:"notificationTime" json:"notificationTime" yaml:"notificationTime"` // minutes before start
}

// CalendarDate returns midnight of the event's date in the local timezone,
// or the zero time if the date does not parse.
func (e Event) CalendarDate() time.Time {
	d, err := time.ParseInLocation(dateutil.DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Duration returns the event duration in minutes, or 0 if either time is invalid.
func (e Event) Duration() int {
	start, err1 := ParseClock(e.StartTime)
	end, err2 := ParseClock(e.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return end - start
}

// Validate checks that the event is well formed: a title, a real calendar
// date, two HH:MM times with end after start and a known repeat type.
func Validate(e Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.CalendarDate().IsZero() {
		return fmt.Errorf("%w, got %q", ErrInvalidDate, e.Date)
	}

	start, err := ParseClock(e.StartTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(e.EndTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if end <= start {
		return ErrEndBeforeStart
	}

	if !e.Repeat.Type.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidRepeat, e.Repeat.Type)
	}
	return nil
}
