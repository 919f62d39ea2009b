package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
)

func addCal(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	var compact bool

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show a month as a calendar of moods",
		Example: `
mood cal
mood cal --month last
mood cal --month 2024-02 --compact
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				month, err := mo.GetMonth(svc.Today())
				if err != nil {
					return err
				}
				view, err := svc.Month(month)
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), view)
				}
				(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Calendar(view, svc.Today(), compact)
				return nil
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Only show day numbers.")
	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
