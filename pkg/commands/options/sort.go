package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/sorter"
)

type SortOptions struct {
	By string
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	names := make([]string, 0, len(sorter.Modes()))
	for _, m := range sorter.Modes() {
		names = append(names, string(m))
	}
	cmd.Flags().StringVar(&o.By, "by", "",
		"Sort mode, one of "+strings.Join(names, ", ")+". Defaults to the configured mode.")
	_ = cmd.RegisterFlagCompletionFunc("by", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Mode returns the requested mode, or "" to keep the session's.
func (o *SortOptions) Mode() (sorter.Mode, error) {
	if o.By == "" {
		return "", nil
	}
	return sorter.ParseMode(o.By)
}

type MarkingOptions struct {
	As string
}

func AddMarkingArgs(cmd *cobra.Command, o *MarkingOptions) {
	var keys []string
	for _, g := range glyph.DefaultMarkings() {
		keys = append(keys, g.Key)
	}
	cmd.Flags().StringVar(&o.As, "as", "",
		"Marking name or key ("+strings.Join(keys, " ")+").")
	_ = cmd.MarkFlagRequired("as")
}

func (o *MarkingOptions) Marking() (glyph.Marking, error) {
	return glyph.ParseMarking(o.As)
}

type AnswerOptions struct {
	Wake        string
	Study       []string
	Reset       bool
	Interactive bool
}

func AddAnswerArgs(cmd *cobra.Command, o *AnswerOptions) {
	cmd.Flags().StringVar(&o.Wake, "wake", "",
		`Wake time for tomorrow, example: --wake="8:30 AM".`)
	cmd.Flags().StringArrayVar(&o.Study, "study", nil,
		"Answer to each study question in order (yes or no). Repeatable.")
	cmd.Flags().BoolVar(&o.Reset, "reset", false,
		"Discard any previous plan and interview again.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Prompt for unanswered questions. On by default on a terminal.")
}
