package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	on := &options.OnOptions{}
	by := &options.SortOptions{}
	sel := ""
	month := false

	cmd := &cobra.Command{
		Use:   "list",
		Short: base.Wrap80("List a day's tasks in display order with their rows."),
		Example: `
daybook list
daybook list --on tomorrow --by group
daybook list --by name --select Essay
`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, _, err := so.Session()
			if err != nil {
				return output.HandleError(err)
			}
			day, err := onDate(on)
			if err != nil {
				return output.HandleError(err)
			}
			mode, err := by.Mode()
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Session: s,
				On:      day,
				Mode:    mode,
				Select:  sel,
				Month:   month,
				ShowID:  output.ShowID,
				JSON:    output.JSON,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddSortArgs(cmd, by)
	options.AddOutputArg(cmd, output)
	options.AddShowIDArg(cmd, output)
	cmd.Flags().StringVar(&sel, "select", "", "Open the dropdown of the named task.")
	cmd.Flags().BoolVar(&month, "month", false, "Also print the month with busy days highlighted.")

	topLevel.AddCommand(cmd)
}
