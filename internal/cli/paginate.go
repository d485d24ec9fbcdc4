package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/gametext/internal/config"
	"github.com/rshade/gametext/internal/paginate"
)

// newPaginateCmd creates the paginate subcommand. It resolves a text asset
// and prints its pages separated by the given separator.
func newPaginateCmd(getConfig func() *config.Config) *cobra.Command {
	var (
		maxChars  int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "paginate <asset>",
		Short: "Split a text asset into dialogue-sized pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			bound := cfg.Paginate.MaxChars
			if cmd.Flags().Changed("max-chars") {
				bound = maxChars
			}

			text, err := newResolver(cmd, cfg).ResolveText(args[0])
			if err != nil {
				return err
			}

			pages := paginate.Pages(text, bound)
			logger.Debug().
				Str("asset", args[0]).
				Int("max_chars", bound).
				Int("pages", len(pages)).
				Msg("paginated asset")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pages, separator))
			return err
		},
	}

	cmd.Flags().IntVar(&maxChars, "max-chars", 0,
		"page bound in characters (0 disables pagination, default from config)")
	cmd.Flags().StringVar(&separator, "separator", "\n\n", "string printed between pages")

	return cmd
}
