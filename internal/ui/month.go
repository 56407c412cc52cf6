package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/event"
)

// eventMarker is appended to days that hold at least one event.
const eventMarker = "•"

var (
	monthHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	monthCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	monthEventStyle  = monthCellStyle.Foreground(lipgloss.Color("3"))
	monthTodayStyle  = monthCellStyle.Foreground(lipgloss.Color("6")).Bold(true)
	monthBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// MonthGrid builds the rows of a month calendar. Padding cells are empty,
// days with events carry a marker and today is highlighted.
func MonthGrid(month time.Time, events []event.Event, today time.Time) TableContent {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	busy := make(map[int]bool)
	for _, e := range event.EventsInRange(events, first, last) {
		busy[e.CalendarDate().Day()] = true
	}

	todayDay := 0
	if today.Year() == first.Year() && today.Month() == first.Month() {
		todayDay = today.Day()
	}

	weeks := dateutil.WeeksAtMonth(first)
	content := TableContent{
		Rows:       make([][]string, 0, len(weeks)),
		CellStyles: make([][]lipgloss.Style, 0, len(weeks)),
	}
	for _, week := range weeks {
		row := make([]string, len(week))
		styles := make([]lipgloss.Style, len(week))
		for i, day := range week {
			styles[i] = monthCellStyle
			if day == 0 {
				continue
			}
			row[i] = strconv.Itoa(day)
			if busy[day] {
				row[i] += eventMarker
				styles[i] = monthEventStyle
			}
			if day == todayDay {
				styles[i] = monthTodayStyle
			}
		}
		content.Rows = append(content.Rows, row)
		content.CellStyles = append(content.CellStyles, styles)
	}
	return content
}

// RenderMonth renders a month grid as a lipgloss table.
func RenderMonth(headers []string, content TableContent) string {
	t := table.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(monthBorderStyle).
		Rows(content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return monthHeaderStyle
			}
			if row < 0 || row >= len(content.CellStyles) || col < 0 || col >= len(content.CellStyles[row]) {
				return monthCellStyle
			}
			return content.CellStyles[row][col]
		})
	return t.Render()
}

func (a *App) monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [date]",
		Short: "Show the month containing a date",
		Long: `Show a Sunday-first calendar grid for the month containing the given
date. Days with events are marked with "•" and today is highlighted.`,
		Example: `  dulcinea month
  dulcinea month 2024-02-01`,
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
			headers := make([]string, dateutil.DaysPerWeek)
			for i := range headers {
				headers[i] = dateutil.WeekdayShortName(i, locale)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatHeader(dateutil.FormatMonth(date, locale)))
			fmt.Fprintln(out, RenderMonth(headers, MonthGrid(date, events, today)))
			return nil
		},
	}
}
