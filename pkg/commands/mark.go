package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/mark"
)

func addMark(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	on := &options.OnOptions{}
	as := &options.MarkingOptions{}

	cmd := &cobra.Command{
		Use:   "mark NAME --as MARKING",
		Short: base.Wrap80("Set a task's marking. Migrating copies the task into the next day; any other marking removes that copy."),
		Example: `
daybook mark Laundry --as migrated
daybook mark "Essay draft" --as x --on 2026-10-14
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m, err := as.Marking()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, err := so.Session()
			if err != nil {
				return output.HandleError(err)
			}
			day, err := onDate(on)
			if err != nil {
				return output.HandleError(err)
			}
			r := mark.Mark{
				Session: s,
				On:      day,
				Name:    strings.Join(args, " "),
				Marking: m,
				ShowID:  output.ShowID,
				JSON:    output.JSON,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddMarkingArgs(cmd, as)
	options.AddOutputArg(cmd, output)
	options.AddShowIDArg(cmd, output)

	topLevel.AddCommand(cmd)
}
