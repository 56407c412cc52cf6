package dateutil

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "january", year: 2024, month: 1, want: 31},
		{name: "april", year: 2024, month: 4, want: 30},
		{name: "leap february", year: 2028, month: 2, want: 29},
		{name: "common february", year: 2026, month: 2, want: 28},
		{name: "century is not leap", year: 1900, month: 2, want: 28},
		{name: "400th year is leap", year: 2000, month: 2, want: 29},
		{name: "december", year: 2024, month: 12, want: 31},
		{name: "month zero falls back", year: 2024, month: 0, want: 31},
		{name: "month twenty falls back", year: 2024, month: 20, want: 31},
		{name: "negative month falls back", year: 2024, month: -1, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysInMonth(tt.year, tt.month)
			if got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth_MatchesTimePackage(t *testing.T) {
	for year := 1800; year <= 2400; year++ {
		for month := 1; month <= 12; month++ {
			// Day 0 of the following month is the last day of this one.
			want := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
			got := DaysInMonth(year, month)
			if got != want {
				t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", year, month, got, want)
			}
			if (got == 29) != (month == 2 && IsLeapYear(year)) {
				t.Fatalf("DaysInMonth(%d, %d) = %d disagrees with IsLeapYear", year, month, got)
			}
		}
	}
}

func TestWeekDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "wednesday",
			input: "2024-11-06",
			want:  []string{"2024-11-03", "2024-11-04", "2024-11-05", "2024-11-06", "2024-11-07", "2024-11-08", "2024-11-09"},
		},
		{
			name:  "sunday starts the week",
			input: "2024-11-03",
			want:  []string{"2024-11-03", "2024-11-04", "2024-11-05", "2024-11-06", "2024-11-07", "2024-11-08", "2024-11-09"},
		},
		{
			name:  "saturday ends the week",
			input: "2024-11-02",
			want:  []string{"2024-10-27", "2024-10-28", "2024-10-29", "2024-10-30", "2024-10-31", "2024-11-01", "2024-11-02"},
		},
		{
			name:  "year end",
			input: "2024-12-29",
			want:  []string{"2024-12-29", "2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"},
		},
		{
			name:  "year start",
			input: "2025-01-02",
			want:  []string{"2024-12-29", "2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"},
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"},
		},
		{
			name:  "last day of month",
			input: "2024-11-30",
			want:  []string{"2024-11-24", "2024-11-25", "2024-11-26", "2024-11-27", "2024-11-28", "2024-11-29", "2024-11-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := WeekDates(input.Add(15 * time.Hour))
			if len(got) != len(tt.want) {
				t.Fatalf("WeekDates(%s) returned %d dates, want %d", tt.input, len(got), len(tt.want))
			}
			for i, d := range got {
				if s := d.Format(DateLayout); s != tt.want[i] {
					t.Errorf("WeekDates(%s)[%d] = %s, want %s", tt.input, i, s, tt.want[i])
				}
				if d.Hour() != 0 || d.Minute() != 0 {
					t.Errorf("WeekDates(%s)[%d] = %v, want midnight", tt.input, i, d)
				}
			}
		})
	}
}

func TestWeekDates_Properties(t *testing.T) {
	start := time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		d := start.AddDate(0, 0, i)
		dates := WeekDates(d)
		if len(dates) != 7 {
			t.Fatalf("WeekDates(%v) has %d entries", d, len(dates))
		}
		if dates[0].Weekday() != time.Sunday || dates[0].After(d) {
			t.Fatalf("WeekDates(%v)[0] = %v, want the Sunday on or before", d, dates[0])
		}
		found := false
		for j, w := range dates {
			if j > 0 && !w.Equal(dates[j-1].AddDate(0, 0, 1)) {
				t.Fatalf("WeekDates(%v) not consecutive at %d", d, j)
			}
			if w.Equal(TruncateToDay(d)) {
				found = true
			}
		}
		if !found {
			t.Fatalf("WeekDates(%v) does not contain the input date", d)
		}
	}
}

func TestWeeksAtMonth(t *testing.T) {
	t.Run("july 2024", func(t *testing.T) {
		got := WeeksAtMonth(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
		want := [][]int{
			{0, 1, 2, 3, 4, 5, 6},
			{7, 8, 9, 10, 11, 12, 13},
			{14, 15, 16, 17, 18, 19, 20},
			{21, 22, 23, 24, 25, 26, 27},
			{28, 29, 30, 31, 0, 0, 0},
		}
		assertGrid(t, got, want)
	})

	t.Run("february starting on sunday", func(t *testing.T) {
		got := WeeksAtMonth(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
		want := [][]int{
			{1, 2, 3, 4, 5, 6, 7},
			{8, 9, 10, 11, 12, 13, 14},
			{15, 16, 17, 18, 19, 20, 21},
			{22, 23, 24, 25, 26, 27, 28},
		}
		assertGrid(t, got, want)
	})

	t.Run("every day appears once", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			grid := WeeksAtMonth(time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
			seen := make(map[int]int)
			for _, week := range grid {
				if len(week) != 7 {
					t.Fatalf("month %d: row has %d cells", month, len(week))
				}
				for _, day := range week {
					if day != 0 {
						seen[day]++
					}
				}
			}
			days := DaysInMonth(2024, month)
			if len(seen) != days {
				t.Errorf("month %d: saw %d distinct days, want %d", month, len(seen), days)
			}
			for day, n := range seen {
				if n != 1 {
					t.Errorf("month %d: day %d appears %d times", month, day, n)
				}
			}
		}
	})
}

func assertGrid(t *testing.T, got, want [][]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d weeks, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("week %d: got %v, want %v", i, got[i], want[i])
				break
			}
		}
	}
}

func TestIsDateInRange(t *testing.T) {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		date  time.Time
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "inside", date: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), start: start, end: end, want: true},
		{name: "start boundary", date: start, start: start, end: end, want: true},
		{name: "end boundary", date: end, start: start, end: end, want: true},
		{name: "day before start", date: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), start: start, end: end, want: false},
		{name: "day after end", date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), start: start, end: end, want: false},
		{name: "inverted range inside", date: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), start: end, end: start, want: false},
		{name: "inverted range start", date: end, start: end, end: start, want: false},
		{name: "inverted range end", date: start, start: end, end: start, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateInRange(tt.date, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("IsDateInRange(%v, %v, %v) = %v, want %v", tt.date, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
