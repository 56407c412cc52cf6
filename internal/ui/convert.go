package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/source"
)

func (a *App) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> [output.toml]",
		Short: "Convert an events file to TOML",
		Long: `Read events from a TOML, JSON, YAML or iCalendar file and write them as TOML.

iCalendar timestamps are converted to the configured timezone. Without an
output path the TOML is written to stdout.`,
		Example: `  dulcinea convert calendar.ics
  dulcinea convert calendar.ics ~/.local/share/dulcinea/events.toml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}

			events, err := source.Load(args[0], source.Options{Location: loc, RequireFile: true})
			if err != nil {
				return err
			}

			data, err := source.EncodeTOML(events)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			out := args[1]
			if format, err := source.FormatFromPath(out); err != nil || format != source.FormatTOML {
				return fmt.Errorf("%w: output must be a .toml file", source.ErrUnsupportedFormat)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing events file: %w", err)
			}

			log.Debug().Str("input", args[0]).Str("output", out).Int("count", len(events)).Msg("events converted")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s\n", len(events), out)
			return nil
		},
	}
}
