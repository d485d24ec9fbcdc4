package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gametext/internal/assets"
	"github.com/rshade/gametext/internal/config"
)

// newCSVCmd creates the csv subcommand. It resolves a CSV-style asset and
// prints one tab-separated record per line.
func newCSVCmd(getConfig func() *config.Config) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "csv <asset>",
		Short: "Print a delimiter-separated asset as records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			records, err := assets.LoadRecords(newResolver(cmd, cfg), args[0], delimiter)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("asset", args[0]).
				Int("records", len(records)).
				Msg("loaded records")

			for _, record := range records {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(record, "\t")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter")

	return cmd
}
