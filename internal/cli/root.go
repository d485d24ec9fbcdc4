package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gametext/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gametext CLI.
// It wires up config loading, logging, and the paginate, csv, and view
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:     "gametext",
		Short:   "Game text asset toolkit",
		Long:    "gametext: load text and CSV game assets and paginate dialogue into pages",
		Version: ver,
		Example: rootCmdExample,
		// Runtime failures (e.g. asset not found) should not dump usage help.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			loggingCfg := cfg.Logging
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				// Debug output belongs on the terminal, not in a log file.
				loggingCfg.Format = "console"
				loggingCfg.File = ""
			}
			if err := config.InitLogger(loggingCfg); err != nil {
				return err
			}
			if debug {
				config.SetLogLevel("debug")
			}

			logger = config.GetLogger().With().Str("component", "cli").Logger()
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default $HOME/.gametext/config.yaml)")
	cmd.PersistentFlags().String("data-dir", "", "app-writable data directory searched before the bundle")
	cmd.PersistentFlags().String("bundle-dir", "", "bundled-assets directory")

	getConfig := func() *config.Config {
		// PersistentPreRunE always runs first; the nil check guards direct
		// RunE invocation from tests.
		if cfg == nil {
			cfg = config.Default()
		}
		return cfg
	}

	cmd.AddCommand(newPaginateCmd(getConfig), newCSVCmd(getConfig), newViewCmd(getConfig))

	return cmd
}

const rootCmdExample = `  # Paginate a dialogue script into 120-character pages
  gametext paginate dialogue/intro.txt

  # Paginate with an explicit page bound
  gametext paginate dialogue/intro.txt --max-chars 80

  # Print a CSV asset as tab-separated records
  gametext csv data/items.csv --delimiter ","

  # Preview pagination in an interactive dialogue box
  gametext view dialogue/intro.txt`
