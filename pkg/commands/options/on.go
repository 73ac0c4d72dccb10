package options

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions picks the day a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on="next friday".`)
}

// GetOn resolves the flag relative to now. An empty flag returns nil.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(layoutISOShort, o.OnString); err == nil {
		// Let the year be the same.
		t = t.AddDate(now.Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(now.AddDate(0, 0, -1)) {
			t = t.AddDate(1, 0, 0)
		}
		return &t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	r, err := w.Parse(o.OnString, now)
	if err != nil {
		return nil, fmt.Errorf("--on %q: %w", o.OnString, err)
	}
	if r == nil {
		return nil, fmt.Errorf("--on %q: not a date", o.OnString)
	}
	return &r.Time, nil
}
