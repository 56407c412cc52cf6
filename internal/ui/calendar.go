package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/event"
)

// ErrInvalidMonth is returned when a month argument is outside 1..12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

func (a *App) daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days <year> <month>",
		Short: "Print the number of days in a month",
		Example: `  dulcinea days 2024 2
  dulcinea days 2023 12`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("%w, got %q", ErrInvalidMonth, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), dateutil.DaysInMonth(year, month))
			return nil
		},
	}
}

func (a *App) weekCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the week containing a date",
		Long: `Show the Sunday-to-Saturday week containing the given date, with the
events of every day. The label names the month and week number the week
belongs to.

Date can be YYYY-MM-DD or a relative date (today, tomorrow, next-week,
last-monday...). Defaults to today.`,
		Example: `  dulcinea week
  dulcinea week 2024-07-10
  dulcinea week next-week`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.parseDateArg(optionalArg(args))
			if err != nil {
				return err
			}
			today, err := a.today()
			if err != nil {
				return err
			}
			events, err := a.loadEvents()
			if err != nil {
				return err
			}

			locale := a.config.LocaleValue()
			week := event.NewWeek(date, events)
			out := cmd.OutOrStdout()
			opts := PrintOpts{Verbose: verbose}

			fmt.Fprintf(out, "%s  %s\n", formatHeader(week.Label(locale)),
				formatMuted(fmt.Sprintf("(%s ~ %s)", dateutil.FormatDate(week.StartDate), dateutil.FormatDate(week.EndDate()))))

			total := 0
			for i, day := range week.Days {
				heading := fmt.Sprintf("%s %s", dateutil.WeekdayShortName(i, locale), dateutil.FormatDate(day.Date))
				if day.Date.Equal(today) {
					heading = formatToday(heading)
				}
				fmt.Fprintf(out, "\n%s\n", heading)
				PrintDay(out, day, opts)
				total += day.BusyMinutes()
			}

			fmt.Fprintf(out, "\n%s\n", formatStats(fmt.Sprintf("%d events | Busy: %s", len(week.AllEvents()), FormatDuration(total))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show locations and categories")

	return cmd
}

func (a *App) dayCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the events of a single day",
		Long: `Show the events of a single day sorted by start time. Events that
overlap another event of the same day are marked with "!".`,
		Example: `  dulcinea day
  dulcinea day tomorrow
  dulcinea day 2024-07-10 -v`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.parseDateArg(optionalArg(args))
			if err != nil {
				return err
			}
			events, err := a.loadEvents()
			if err != nil {
				return err
			}

			locale := a.config.LocaleValue()
			day := event.NewDay(date, events)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n", formatHeader(fmt.Sprintf("%s (%s)",
				dateutil.FormatDate(day.Date), dateutil.WeekdayName(int(day.Date.Weekday()), locale))))
			PrintDay(out, day, PrintOpts{Verbose: verbose})
			fmt.Fprintln(out)
			PrintDaySummary(out, day)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show locations and categories")

	return cmd
}

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events within a date range.

If no dates are specified, lists today's events.
If only --start is specified, lists events for that single day.
If both --start and --end are specified, lists events in that range (inclusive).`,
		Example: `  dulcinea list
  dulcinea list --start=2025-01-15
  dulcinea list --start=2025-01-15 --end=2025-01-20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := a.today()
			if err != nil {
				return err
			}
			dateRange, err := dateutil.NewDateRange(startDate, endDate, today)
			if err != nil {
				return err
			}
			events, err := a.loadEvents()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(event.EventsInRange(events, dateRange.Start, dateRange.End)) == 0 {
				fmt.Fprintln(out, "No events found in the specified date range.")
				return nil
			}

			// Print events grouped by date
			first := true
			for d := dateRange.Start; !d.After(dateRange.End); d = d.AddDate(0, 0, 1) {
				day := event.NewDay(d, events)
				if day.Len() == 0 {
					continue
				}
				if !first {
					fmt.Fprintln(out)
				}
				first = false
				fmt.Fprintf(out, "=== %s ===\n", dateutil.FormatDate(d))
				PrintDay(out, day, PrintOpts{Verbose: verbose})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show locations and categories")

	return cmd
}

// optionalArg returns the first argument or the empty string.
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
