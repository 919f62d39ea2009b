package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	i := &options.InteractiveOptions{}

	long := strings.Builder{}
	long.WriteString("Toggle moods on a day: a mood the day already has is removed.\n\n")
	long.WriteString("Moods:\n")
	for _, m := range mood.Catalog() {
		long.WriteString("  " + m.String() + "\n")
	}

	cmd := &cobra.Command{
		Use:     "add [mood...]",
		Aliases: []string{"toggle"},
		Short:   "Toggle moods on a day",
		Long:    long.String(),
		Example: `
mood add happy relax
mood add sad --on yesterday
mood add -i --on 2024-03-02
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires at least one mood")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				date, err := on.GetOn(svc.Today())
				if err != nil {
					return err
				}
				pp := &printers.PrettyPrint{Out: cmd.OutOrStdout()}
				toggle := func(name string) error {
					added, moods, err := svc.ToggleMood(cmd.Context(), date, name)
					if err != nil {
						return err
					}
					if !output.JSON {
						m, _ := mood.Lookup(name)
						pp.Toggled(date.Format(timeutil.DateLayout), m, added, moods)
					}
					return nil
				}

				if i.Interactive {
					for {
						rec, err := svc.Day(date)
						if err != nil {
							return err
						}
						name, done, err := promptMood(cmd, "Mood for "+date.Format("Mon Jan 2"), rec.Moods)
						if err != nil {
							return err
						}
						if done {
							break
						}
						if err := toggle(name); err != nil {
							return err
						}
					}
				} else {
					for _, name := range args {
						if err := toggle(name); err != nil {
							return err
						}
					}
				}

				if output.JSON {
					rec, err := svc.Day(date)
					if err != nil {
						return err
					}
					return output.PrintJSON(cmd.OutOrStdout(), rec)
				}
				return nil
			})
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var all bool

	cmd := &cobra.Command{
		Use:     "rm [mood...]",
		Aliases: []string{"remove"},
		Short:   "Remove moods from a day",
		Example: `
mood rm stress
mood rm --all --on 2024-03-02
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("--all does not take mood names")
			}
			if !all && len(args) < 1 {
				return errors.New("requires at least one mood, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withSession(cmd.Context(), func(svc *app.Service) error {
				date, err := on.GetOn(svc.Today())
				if err != nil {
					return err
				}
				if all {
					if err := svc.ClearDay(cmd.Context(), date); err != nil {
						return err
					}
				}
				for _, name := range args {
					if _, err := svc.RemoveMood(cmd.Context(), date, name); err != nil {
						return err
					}
				}
				rec, err := svc.Day(date)
				if err != nil {
					return err
				}
				if output.JSON {
					return output.PrintJSON(cmd.OutOrStdout(), rec)
				}
				(&printers.PrettyPrint{Out: cmd.OutOrStdout()}).Day(rec)
				return nil
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every mood of the day.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
