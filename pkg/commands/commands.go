package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: base.Wrap80("Track how every day feels and chart the month on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			printers.ConfigureColor()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addRemove(topLevel)
	addNote(topLevel)
	addGet(topLevel)
	addCal(topLevel)
	addGraph(topLevel)
	addMoods(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
