package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/printers"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "moods",
		Aliases: []string{"key"},
		Short:   "List the moods and how they score",
		Example: `
mood moods
mood moods --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output.JSON {
				type entry struct {
					mood.Mood
					Score int `json:"score"`
				}
				list := make([]entry, 0, len(mood.Catalog()))
				for _, m := range mood.Catalog() {
					list = append(list, entry{Mood: m, Score: mood.ScoreOf(m.Name)})
				}
				return output.PrintJSON(cmd.OutOrStdout(), list)
			}
			(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Catalog()
			return nil
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
