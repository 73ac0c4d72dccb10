package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/plan"
)

func addPlan(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	ao := &options.AnswerOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: base.Wrap80("Plan today: answer a few questions and fit every unscheduled task around the ones that already have a time."),
		Example: `
daybook plan
daybook plan --wake "9:00 AM" --study yes --study no
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, _, err := so.Session()
			if err != nil {
				return output.HandleError(err)
			}
			p := plan.Plan{
				Session: s,
				Wake:    ao.Wake,
				Study:   ao.Study,
				Reset:   ao.Reset,
				JSON:    output.JSON,
			}
			if (ao.Interactive || interactive()) && !output.JSON {
				p.Ask = plan.Prompt
			}
			err = p.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAnswerArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
