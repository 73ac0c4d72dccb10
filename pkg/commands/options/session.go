package options

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/seed"
)

// SessionOptions builds the in-memory session every verb runs against.
type SessionOptions struct {
	File    string
	Verbose bool
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "file", "f", "",
		"Seed the journal from a YAML fixture (read only).")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail to stderr.")
}

func (o *SessionOptions) Logger() *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Session loads configuration, creates the session and applies the seed
// file named by --file or the seed config key.
func (o *SessionOptions) Session() (*app.Session, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return nil, nil, err
	}
	popts, err := cfg.PlannerOptions()
	if err != nil {
		return nil, nil, err
	}
	log := o.Logger()
	s := app.New(
		app.WithLogger(log),
		app.WithSortMode(mode),
		app.WithPlannerOptions(popts),
	)

	path := o.File
	if path == "" {
		if path, err = cfg.SeedPath(); err != nil {
			return nil, nil, err
		}
	}
	if path != "" {
		f, err := seed.Load(path)
		if err != nil {
			return nil, nil, err
		}
		n, err := f.Apply(s, time.Now())
		if err != nil {
			return nil, nil, err
		}
		log.Debug("seeded", "file", path, "tasks", n)
	}
	return s, cfg, nil
}
