package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
)

func addReport(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise the moods of a month",
		Long: `Report counts each mood over the elapsed days of a month and buckets the
days by the sign of their score.

Examples:
  mood report
  mood report --month last
  mood report --month 2024-02 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				month, err := mo.GetMonth(svc.Today())
				if err != nil {
					return err
				}
				result, err := svc.Report(month)
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), result)
				}
				(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Report(result)
				return nil
			})
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
