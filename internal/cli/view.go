package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gametext/internal/config"
	"github.com/rshade/gametext/internal/paginate"
	"github.com/rshade/gametext/internal/tui"
)

// newViewCmd creates the view subcommand: an interactive dialogue-box
// preview of a paginated text asset.
func newViewCmd(getConfig func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <asset>",
		Short: "Preview a text asset in an interactive dialogue box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			text, err := newResolver(cmd, cfg).ResolveText(args[0])
			if err != nil {
				return err
			}

			bound, width := viewBound(cmd, cfg)

			var model tui.PagerModel
			if width > 0 {
				// Bound tracks the terminal, so the pager re-paginates
				// whenever the window resizes.
				model = tui.NewSizedPager(args[0], text, width)
			} else {
				model = tui.NewPager(args[0], paginate.Pages(text, bound))
			}

			program := tea.NewProgram(model,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			if _, runErr := program.Run(); runErr != nil {
				return fmt.Errorf("running pager: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().Int("max-chars", 0,
		"page bound in characters (0 disables pagination, default sized from terminal)")

	return cmd
}

// viewBound picks the pagination bound for the preview. An explicit
// --max-chars wins. Otherwise, when stdout is a terminal, the bound is
// sized from its width (returned non-zero so the pager can track resizes).
// Piped output and tests fall back to the config default.
func viewBound(cmd *cobra.Command, cfg *config.Config) (int, int) {
	if cmd.Flags().Changed("max-chars") {
		bound, _ := cmd.Flags().GetInt("max-chars")
		return bound, 0
	}

	if width := terminalWidth(); width > 0 {
		return tui.BoundForWidth(width), width
	}

	return cfg.Paginate.MaxChars, 0
}

// terminalWidth returns the stdout terminal width, or 0 when stdout is not a
// terminal (piped output, tests).
func terminalWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
