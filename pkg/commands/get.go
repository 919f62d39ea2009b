package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var months bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the moods, note and score of a day",
		Example: `
mood get
mood get --on 2024-03-02 --json
mood get --months
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				pp := &printers.PrettyPrint{Out: cmd.OutOrStdout()}
				if months {
					list, err := svc.Months()
					if err != nil {
						return err
					}
					keys := make([]string, len(list))
					for i, m := range list {
						keys[i] = m.Format(timeutil.MonthLayout)
					}
					if output.JSON {
						return output.PrintJSON(cmd.OutOrStdout(), keys)
					}
					pp.Months(keys)
					return nil
				}

				date, err := on.GetOn(svc.Today())
				if err != nil {
					return err
				}
				rec, err := svc.Day(date)
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), rec)
				}
				pp.Day(rec)
				return nil
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&months, "months", false, "List the months that hold data.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
