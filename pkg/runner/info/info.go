// Package info prints where configuration was resolved from.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/printers"
)

type Info struct {
	Config *config.Config
	JSON   bool
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}
	if n.JSON {
		return printers.JSON(out, n.Config)
	}

	if override := os.Getenv(config.PathEnv); override != "" {
		_, _ = fmt.Fprintln(out, config.PathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, config.PathEnv, "env var not set")
	}
	if n.Config.File != "" {
		_, _ = fmt.Fprintln(out, "Config file:", n.Config.File)
	} else {
		_, _ = fmt.Fprintln(out, "Config file: none, using defaults")
	}

	b, err := yaml.Marshal(n.Config)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\n%s", b)
	return nil
}
