package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/numcore/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Start the terminal calculator.

Navigation:
  Enter     - evaluate the line
  Up/Down   - browse the input history
  Ctrl+L    - clear the transcript
  Esc       - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), tui.Options{
				Engine:    a.engine,
				Catalog:   a.catalog,
				Locale:    a.uiLocale(),
				SessionID: a.session,
				Logger:    a.logger,
			})
		},
	}
}
