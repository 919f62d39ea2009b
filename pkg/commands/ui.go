package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Long: `Open a full screen calendar. Pick moods for a day, write its note and open
the analytics chart. The chart overlay can be dragged by its title bar.
Changes made by other mood processes show up live.`,
		Example: `
mood ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(svc *app.Service) error {
				return tui.Run(cmd.Context(), svc)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
