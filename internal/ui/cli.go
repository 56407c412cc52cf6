package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/config"
	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/event"
	"github.com/javiermolinar/dulcinea/internal/logging"
	"github.com/javiermolinar/dulcinea/internal/source"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time

	// flags
	configPath string
	eventsPath string
	locale     string
	debug      bool
	noColor    bool
}

// NewApp creates a new CLI application. The configuration is loaded when a
// command runs, so --config can point at another file.
func NewApp() *App {
	a := &App{now: time.Now}

	a.root = &cobra.Command{
		Use:   "dulcinea",
		Short: "A calendar CLI for weeks, months and event overlaps",
		Long: `Dulcinea reads your events from a TOML, JSON, YAML or iCalendar file and
renders weeks and months, lists the events of a day and checks whether a
new event would overlap with the ones already planned.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Config file path")
	flags.StringVar(&a.eventsPath, "events", "", "Events file (.toml, .json, .yaml or .ics), overrides config")
	flags.StringVar(&a.locale, "locale", "", "Label locale (ko or en), overrides config")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging on stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.daysCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.overlapCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.convertCmd())

	return a
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.eventsPath != "" {
		cfg.Calendar.EventsPath = a.eventsPath
	}
	if a.locale != "" {
		if _, err := dateutil.ParseLocale(a.locale); err != nil {
			return err
		}
		cfg.Calendar.Locale = a.locale
	}
	if a.noColor {
		cfg.UI.NoColor = true
	}
	a.config = cfg

	if cfg.UI.NoColor {
		DisableColor()
	}
	logging.Setup(cmd.ErrOrStderr(), a.debug, cfg.UI.NoColor)
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dulcinea %s (commit: %s)\n", Version, Commit)
		},
	}
}

// location returns the configured timezone.
func (a *App) location() (*time.Location, error) {
	return a.config.Location()
}

// today returns the current day in the configured timezone.
func (a *App) today() (time.Time, error) {
	loc, err := a.location()
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.TruncateToDay(a.now().In(loc)), nil
}

// parseDateArg resolves a date argument relative to today.
func (a *App) parseDateArg(s string) (time.Time, error) {
	today, err := a.today()
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.ParseRelativeDate(s, today)
}

// loadEvents reads the configured events file.
func (a *App) loadEvents() ([]event.Event, error) {
	loc, err := a.location()
	if err != nil {
		return nil, err
	}
	events, err := source.Load(a.config.Calendar.EventsPath, source.Options{Location: loc})
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	return events, nil
}

// SetNow overrides the clock used to resolve relative dates.
func (a *App) SetNow(now func() time.Time) {
	a.now = now
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteArgs runs the CLI with explicit arguments.
func (a *App) ExecuteArgs(args []string) error {
	a.root.SetArgs(args)
	return a.root.Execute()
}

