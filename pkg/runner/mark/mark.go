// Package mark sets a task's marking and shows the effect on the next day.
package mark

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

type Mark struct {
	Session *app.Session
	On      *time.Time
	Name    string
	Marking glyph.Marking
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

type result struct {
	Task *entry.Task `json:"task"`
	Day  []day       `json:"days"`
}

type day struct {
	Date  string        `json:"date"`
	Tasks []*entry.Task `json:"tasks"`
}

func (n *Mark) Do(_ context.Context) error {
	if n.Session == nil {
		return errors.New("mark: no session")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	s := n.Session
	if n.On != nil {
		s.NavigateToDate(*n.On)
	}
	t, err := s.FindByName(n.Name)
	if err != nil {
		return err
	}
	if _, err := s.SetMarking(t.ID, n.Marking); err != nil {
		return err
	}

	current := s.Current
	next := s.Index.GetOrCreate(current.Date().AddDate(0, 0, 1))
	if n.JSON {
		return printers.JSON(out, result{
			Task: t,
			Day: []day{
				{Date: current.Title(), Tasks: s.DisplayList()},
				{Date: next.Title(), Tasks: s.DisplayListFor(next.Date(), s.SortMode)},
			},
		})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	pp.TitleWithCount(current.Title(), current.Len())
	pp.Tasks(s.DisplayList()...)
	pp.TitleWithCount(next.Title(), next.Len())
	pp.Tasks(s.DisplayListFor(next.Date(), s.SortMode)...)
	return nil
}
