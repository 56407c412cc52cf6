package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, environment
variables and flags have been applied.

With --init, writes the configuration to the config file when it does not
exist yet.`,
		Example: `  dulcinea config
  dulcinea config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", formatMuted("# Config file: "+a.configPath))

			if initFile {
				if err := initConfig(a.configPath, a.config); err != nil {
					return err
				}
			}

			data, err := a.config.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the config file if it does not exist")

	return cmd
}

// initConfig saves cfg to path unless a file is already there.
func initConfig(path string, cfg *config.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
