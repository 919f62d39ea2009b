package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
)

func addExport(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every mood and note as JSON or YAML",
		Example: `
mood export > moods.json
mood export --file moods.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), func(svc *app.Service) error {
				j, err := svc.Export(cmd.Context())
				if err != nil {
					return err
				}
				var w io.Writer = cmd.OutOrStdout()
				if jo.File != "" {
					f, err := os.Create(jo.File)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				return app.EncodeJournal(w, j, jo.ResolveFormat())
			})
		},
	}

	options.AddJournalArgs(cmd, jo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load moods and notes written by export",
		Long: `Import replaces the moods and notes of every day present in the file.
Days not in the file are left alone. The whole file is checked before
anything is written.`,
		Example: `
mood import < moods.json
mood import --file moods.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				var r io.Reader = cmd.InOrStdin()
				if jo.File != "" {
					f, err := os.Open(jo.File)
					if err != nil {
						return err
					}
					defer f.Close()
					r = f
				}
				j, err := app.DecodeJournal(r, jo.ResolveFormat())
				if err != nil {
					return err
				}
				res, err := svc.Import(cmd.Context(), j)
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), res)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d days and %d notes\n", res.Days, res.Notes)
				return nil
			})
			return output.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
