package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the markings and groups",
		Example: `
daybook key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{JSON: output.JSON}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
