package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
)

func addNote(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var clearNote bool

	cmd := &cobra.Command{
		Use:     "note [text...]",
		Aliases: []string{"notes"},
		Short:   "Write, show or clear the note of a day",
		Example: `
mood note long walk by the river
mood note --on yesterday
mood note --clear --on 2024-03-02
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				date, err := on.GetOn(svc.Today())
				if err != nil {
					return err
				}
				text := strings.TrimSpace(strings.Join(args, " "))
				switch {
				case clearNote:
					err = svc.SetNote(cmd.Context(), date, "")
				case text != "":
					err = svc.SetNote(cmd.Context(), date, text)
				}
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
				if rec.Note == "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no note on %s\n", date.Format("Mon Jan 2 2006"))
					return nil
				}
				(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Day(rec)
				return nil
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearNote, "clear", false, "Delete the note.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
