package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/event"
)

// Command errors.
var (
	ErrOverlap          = errors.New("event overlaps existing events")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

func (a *App) overlapCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
		title string
		id    string
	)

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Check whether a new event overlaps existing ones",
		Long: `Check whether an event would overlap any event in the events file.

Events overlap when one starts before the other ends; an event ending at
09:00 does not overlap one starting at 09:00. Pass --id when editing an
existing event so it is not compared against itself.

Exits with an error when an overlap is found.`,
		Example: `  dulcinea overlap --start 09:00 --end 10:00
  dulcinea overlap --date 2024-07-10 --start 14:00 --end 15:30 --title "Review"
  dulcinea overlap --date tomorrow --start 09:00 --end 09:30 --id standup`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := a.parseDateArg(date)
			if err != nil {
				return err
			}
			candidate := event.Event{
				ID:        id,
				Title:     title,
				Date:      dateutil.FormatDate(day),
				StartTime: start,
				EndTime:   end,
			}

			out := cmd.OutOrStdout()
			if err := validateTimes(out, start, end, a.config.LocaleValue()); err != nil {
				return err
			}

			events, err := a.loadEvents()
			if err != nil {
				return err
			}

			overlapping := event.FindOverlapping(candidate, events)
			if len(overlapping) == 0 {
				fmt.Fprintln(out, formatStats("No overlapping events."))
				return nil
			}

			fmt.Fprintf(out, "%s\n", formatWarn(fmt.Sprintf("%s %s-%s overlaps %d events:",
				candidate.Date, start, end, len(overlapping))))
			for _, e := range overlapping {
				minutes := event.OverlapMinutes(start, end, e.StartTime, e.EndTime)
				fmt.Fprintf(out, "  %s-%s  %s  %s\n", e.StartTime, e.EndTime, e.Title,
					formatMuted(FormatDuration(minutes)+" overlap"))
			}
			return fmt.Errorf("%w: %d found", ErrOverlap, len(overlapping))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD or relative, defaults to today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&id, "id", "", "ID of the event being edited")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <start> <end>",
		Short: "Validate a start/end time pair",
		Long: `Validate that a start time is strictly earlier than an end time and
print the messages an event form would show.`,
		Example: `  dulcinea check 09:00 10:00
  dulcinea check 14:00 13:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := validateTimes(out, args[0], args[1], a.config.LocaleValue()); err != nil {
				return err
			}
			fmt.Fprintln(out, formatStats("OK"))
			return nil
		},
	}
}

// validateTimes checks both times are HH:MM and ordered, printing the
// start and end messages in loc when they are not.
func validateTimes(w io.Writer, start, end string, loc dateutil.Locale) error {
	if _, err := event.ParseClock(start); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	if _, err := event.ParseClock(end); err != nil {
		return fmt.Errorf("end time: %w", err)
	}

	msgs := event.TimeErrorMessageIn(start, end, loc)
	if !msgs.HasError() {
		return nil
	}
	fmt.Fprintf(w, "%s %s\n", formatWarn("start:"), msgs.StartTimeError)
	fmt.Fprintf(w, "%s %s\n", formatWarn("end:"), msgs.EndTimeError)
	return ErrInvalidTimeRange
}
