// Package list prints a day's display list.
package list

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/sorter"
)

type List struct {
	Session *app.Session
	// On is the day to show; nil means today.
	On *time.Time
	// Mode overrides the session sort mode when set.
	Mode sorter.Mode
	// Select opens the dropdown of the named task.
	Select string
	Month  bool
	ShowID bool
	JSON   bool
	Out    io.Writer
}

type listing struct {
	Date  string        `json:"date"`
	Sort  sorter.Mode   `json:"sort"`
	Tasks []*entry.Task `json:"tasks"`
}

func (n *List) Do(_ context.Context) error {
	if n.Session == nil {
		return errors.New("list: no session")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	s := n.Session
	if n.On != nil {
		s.NavigateToDate(*n.On)
	}
	if n.Mode != "" {
		if err := s.ChangeSortMode(n.Mode); err != nil {
			return err
		}
	}
	if n.Select != "" {
		t, err := s.FindByName(n.Select)
		if err != nil {
			return err
		}
		if _, err := s.SelectTask(t.ID); err != nil {
			return err
		}
	}

	tasks := s.DisplayList()
	if n.JSON {
		return printers.JSON(out, listing{Date: s.Current.Title(), Sort: s.SortMode, Tasks: tasks})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	if n.Month {
		pp.Month(s.Current.Date(), s.Index.Logs()...)
	}
	pp.TitleWithCount(s.Current.Title(), len(tasks))
	pp.Tasks(tasks...)
	return nil
}
