package event

import (
	"testing"
	"time"
)

func TestEventsForDay(t *testing.T) {
	events := []Event{
		newEvent("1", "2024-07-01", "09:00", "10:00"),
		newEvent("2", "2024-07-01", "11:00", "12:00"),
		newEvent("3", "2024-07-15", "09:00", "10:00"),
		newEvent("4", "2024-07-31", "09:00", "10:00"),
		newEvent("5", "bogus", "09:00", "10:00"),
	}

	tests := []struct {
		name    string
		day     int
		wantIDs []string
	}{
		{name: "first of month", day: 1, wantIDs: []string{"1", "2"}},
		{name: "last of month", day: 31, wantIDs: []string{"4"}},
		{name: "no events", day: 2, wantIDs: nil},
		{name: "day zero", day: 0, wantIDs: nil},
		{name: "day 32", day: 32, wantIDs: nil},
		{name: "negative day", day: -1, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EventsForDay(events, tt.day)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("EventsForDay(%d) returned %d events, want %d", tt.day, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("event %d: got ID %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestEventsInRange(t *testing.T) {
	events := []Event{
		newEvent("1", "2024-06-30", "09:00", "10:00"),
		newEvent("2", "2024-07-01", "09:00", "10:00"),
		newEvent("3", "2024-07-07", "23:00", "23:30"),
		newEvent("4", "2024-07-08", "00:00", "01:00"),
		newEvent("5", "", "09:00", "10:00"),
	}

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 7, 7, 0, 0, 0, 0, time.Local)
	got := EventsInRange(events, start, end)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Errorf("EventsInRange() = %v, want events 2 and 3", got)
	}

	if got := EventsInRange(events, end, start); len(got) != 0 {
		t.Errorf("inverted range returned %d events, want 0", len(got))
	}
}

func TestNewDay(t *testing.T) {
	date := time.Date(2024, 11, 5, 14, 30, 0, 0, time.Local)
	day := NewDay(date, []Event{
		newEvent("second", "2024-11-05", "11:00", "12:00"),
		newEvent("other", "2024-11-06", "09:00", "10:00"),
		newEvent("first", "2024-11-05", "09:00", "10:00"),
		newEvent("third", "2024-11-05", "14:00", "15:00"),
	})

	expected := time.Date(2024, 11, 5, 0, 0, 0, 0, time.Local)
	if !day.Date.Equal(expected) {
		t.Errorf("expected date %v, got %v", expected, day.Date)
	}

	events := day.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"first", "second", "third"} {
		if events[i].ID != want {
			t.Errorf("event %d: expected %s, got %s", i, want, events[i].ID)
		}
	}

	// Mutating the copy must not change the day.
	events[0].Title = "changed"
	if day.Events()[0].Title == "changed" {
		t.Error("Events() returned internal slice")
	}
}

func TestDay_Conflicts(t *testing.T) {
	date := time.Date(2024, 11, 5, 0, 0, 0, 0, time.Local)

	t.Run("no conflicts", func(t *testing.T) {
		day := NewDay(date, []Event{
			newEvent("1", "2024-11-05", "09:00", "10:00"),
			newEvent("2", "2024-11-05", "10:00", "11:00"),
		})
		if got := day.Conflicts(); len(got) != 0 {
			t.Errorf("expected no conflicts, got %v", got)
		}
	})

	t.Run("overlapping pairs", func(t *testing.T) {
		day := NewDay(date, []Event{
			newEvent("1", "2024-11-05", "09:00", "12:00"),
			newEvent("2", "2024-11-05", "10:00", "11:00"),
			newEvent("3", "2024-11-05", "11:30", "13:00"),
		})
		got := day.Conflicts()
		if len(got) != 2 {
			t.Fatalf("expected 2 conflicts, got %d: %v", len(got), got)
		}
		if got[0].First.ID != "1" || got[0].Second.ID != "2" {
			t.Errorf("conflict 0 = %s/%s, want 1/2", got[0].First.ID, got[0].Second.ID)
		}
		if got[1].First.ID != "1" || got[1].Second.ID != "3" {
			t.Errorf("conflict 1 = %s/%s, want 1/3", got[1].First.ID, got[1].Second.ID)
		}
	})
}

func TestDay_BusyMinutes(t *testing.T) {
	date := time.Date(2024, 11, 5, 0, 0, 0, 0, time.Local)
	tests := []struct {
		name   string
		events []Event
		want   int
	}{
		{name: "empty", events: nil, want: 0},
		{
			name: "disjoint",
			events: []Event{
				newEvent("1", "2024-11-05", "09:00", "10:00"),
				newEvent("2", "2024-11-05", "11:00", "11:30"),
			},
			want: 90,
		},
		{
			name: "overlap counted once",
			events: []Event{
				newEvent("1", "2024-11-05", "09:00", "11:00"),
				newEvent("2", "2024-11-05", "10:00", "12:00"),
			},
			want: 180,
		},
		{
			name: "nested",
			events: []Event{
				newEvent("1", "2024-11-05", "09:00", "12:00"),
				newEvent("2", "2024-11-05", "10:00", "11:00"),
			},
			want: 180,
		},
		{
			name: "invalid ignored",
			events: []Event{
				newEvent("1", "2024-11-05", "09:00", "09:99"),
				newEvent("2", "2024-11-05", "10:00", "10:15"),
			},
			want: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDay(date, tt.events).BusyMinutes()
			if got != tt.want {
				t.Errorf("BusyMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}
