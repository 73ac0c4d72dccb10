package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the resolved configuration.",
		Example: `
daybook info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config: c,
				JSON:   output.JSON,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
