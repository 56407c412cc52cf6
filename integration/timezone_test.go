package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/javiermolinar/dulcinea/internal/config"
	"github.com/javiermolinar/dulcinea/internal/event"
)

const lateICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//dulcinea//integration//EN
BEGIN:VEVENT
UID:call
SUMMARY:Call with Seoul
DTSTART:20250120T230000Z
DTEND:20250120T233000Z
END:VEVENT
BEGIN:VEVENT
UID:late
SUMMARY:Late review
DTSTART:20250120T143000Z
DTEND:20250120T153000Z
END:VEVENT
END:VCALENDAR
`

func TestICSTimezones(t *testing.T) {
	path := writeEvents(t, "late.ics", lateICS)

	tests := []struct {
		name string
		loc  *time.Location
		want []event.Event
	}{
		{
			name: "utc",
			loc:  time.UTC,
			want: []event.Event{
				{ID: "call", Date: "2025-01-20", StartTime: "23:00", EndTime: "23:30"},
				{ID: "late", Date: "2025-01-20", StartTime: "14:30", EndTime: "15:30"},
			},
		},
		{
			name: "kst moves the call to the next day and clips the late review",
			loc:  time.FixedZone("KST", 9*60*60),
			want: []event.Event{
				{ID: "call", Date: "2025-01-21", StartTime: "08:00", EndTime: "08:30"},
				{ID: "late", Date: "2025-01-20", StartTime: "23:30", EndTime: "23:59"},
			},
		},
		{
			name: "utc-5",
			loc:  time.FixedZone("EST", -5*60*60),
			want: []event.Event{
				{ID: "call", Date: "2025-01-20", StartTime: "18:00", EndTime: "18:30"},
				{ID: "late", Date: "2025-01-20", StartTime: "09:30", EndTime: "10:30"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustLoad(t, path, tt.loc)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				g := got[i]
				if g.ID != w.ID || g.Date != w.Date || g.StartTime != w.StartTime || g.EndTime != w.EndTime {
					t.Errorf("event %d: got %s %s %s-%s, want %s %s %s-%s",
						i, g.ID, g.Date, g.StartTime, g.EndTime, w.ID, w.Date, w.StartTime, w.EndTime)
				}
			}
		})
	}
}

func TestOverlapDependsOnConfiguredTimezone(t *testing.T) {
	for _, key := range []string{"DULCINEA_EVENTS_PATH", "DULCINEA_LOCALE", "DULCINEA_TIMEZONE", "DULCINEA_NO_COLOR"} {
		t.Setenv(key, "")
	}

	icsPath := writeEvents(t, "late.ics", lateICS)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[calendar]\nevents_path = \"" + icsPath + "\"\ntimezone = \"Asia/Seoul\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("failed to resolve timezone: %v", err)
	}

	events := mustLoad(t, cfg.Calendar.EventsPath, loc)

	// A Tuesday morning meeting in Seoul collides with the call.
	candidate := event.Event{Date: "2025-01-21", StartTime: "08:15", EndTime: "09:00"}
	if got := ids(event.FindOverlapping(candidate, events)); len(got) != 1 || got[0] != "call" {
		t.Errorf("in Seoul: got %v, want [call]", got)
	}

	// Read as UTC the call is on Monday night, so the slot is free.
	utc := mustLoad(t, cfg.Calendar.EventsPath, time.UTC)
	if got := event.FindOverlapping(candidate, utc); len(got) != 0 {
		t.Errorf("in UTC: got %v, want none", ids(got))
	}
}
