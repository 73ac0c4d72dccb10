// Package key provides CLI helpers to display the journaling legend.
package key

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

// Key prints the marking and group legend.
type Key struct {
	JSON bool
	Out  io.Writer
}

type legend struct {
	Markings []glyph.Glyph `json:"markings"`
	Groups   []group       `json:"groups"`
}

type group struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Do renders the legend to Out, stdout by default.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	if k.JSON {
		l := legend{Markings: glyph.DefaultMarkings()}
		for _, g := range glyph.Groups() {
			c, _ := g.Color()
			l.Groups = append(l.Groups, group{Name: string(g), Label: g.Label(), Color: c.Hex()})
		}
		return printers.JSON(out, l)
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Legend()
	pp.NewLine()
	return nil
}
