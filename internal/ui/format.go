package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/dulcinea/internal/event"
)

// defaultTitleWidth is the title column width when not verbose.
const defaultTitleWidth = 40

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose      bool // Show full titles and the location
	MaxDescWidth int  // Maximum title width (0 = auto)
}

// CalcMaxDescWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxDescWidth(defaultWidth int) int {
	if o.MaxDescWidth > 0 {
		return o.MaxDescWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// Base: "  ! HH:MM-HH:MM  " = ~17 chars, duration suffix ~8 chars
	available := termWidth() - 25
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// truncate shortens s to width terminal cells, marking the cut with "...".
// Wide characters are never split.
func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	return ansi.Truncate(s, width, "...")
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PrintEventRow prints a single event row with consistent formatting.
// Conflicting events are flagged with a red "!".
func PrintEventRow(w io.Writer, e event.Event, conflict bool, opts PrintOpts) {
	marker := " "
	if conflict {
		marker = formatWarn("!")
	}

	width := opts.CalcMaxDescWidth(defaultTitleWidth)
	title := truncate(e.Title, width)
	duration := formatMuted(FormatDuration(e.Duration()))

	fmt.Fprintf(w, "  %s %s-%s  %s  %s\n", marker, e.StartTime, e.EndTime, padRight(title, width), duration)

	if opts.Verbose {
		var extra []string
		if e.Location != "" {
			extra = append(extra, "@ "+e.Location)
		}
		if e.Category != "" {
			extra = append(extra, "#"+e.Category)
		}
		if len(extra) > 0 {
			fmt.Fprintf(w, "                 %s\n", formatMuted(strings.Join(extra, "  ")))
		}
	}
}

// conflictSet returns the IDs (or titles when IDs are empty) of every event
// taking part in a conflict.
func conflictSet(conflicts []event.Conflict) map[string]bool {
	set := make(map[string]bool, len(conflicts)*2)
	for _, c := range conflicts {
		set[eventKey(c.First)] = true
		set[eventKey(c.Second)] = true
	}
	return set
}

func eventKey(e event.Event) string {
	if e.ID != "" {
		return e.ID
	}
	return e.Date + " " + e.StartTime + " " + e.EndTime + " " + e.Title
}

// PrintDay prints the events of a day followed by a summary line.
func PrintDay(w io.Writer, d *event.Day, opts PrintOpts) {
	if d.Len() == 0 {
		fmt.Fprintln(w, formatMuted("  (no events)"))
		return
	}
	conflicts := conflictSet(d.Conflicts())
	for _, e := range d.Events() {
		PrintEventRow(w, e, conflicts[eventKey(e)], opts)
	}
}

// PrintDaySummary prints the event count, busy time and conflict count of a day.
func PrintDaySummary(w io.Writer, d *event.Day) {
	summary := fmt.Sprintf("%d events | Busy: %s", d.Len(), FormatDuration(d.BusyMinutes()))
	fmt.Fprint(w, formatStats(summary))
	if n := len(d.Conflicts()); n > 0 {
		fmt.Fprintf(w, " | %s", formatWarn(fmt.Sprintf("%d conflicts", n)))
	}
	fmt.Fprintln(w)
}
