package commands

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
)

var (
	so = &options.SessionOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("Daily task log with markings, migration and a day planner."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddSessionArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addList(topLevel)
	addMark(topLevel)
	addPlan(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

func onDate(o *options.OnOptions) (*time.Time, error) {
	return o.GetOn(time.Now())
}

func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
