package app

import (
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/sorter"
)

// Migration describes what a marking change did to the next day's log.
type Migration struct {
	Next    *journal.DayLog
	Added   *entry.Task
	Removed []*entry.Task
}

// migrate keeps the next day's log in line with t's marking. A migrated
// task gets a forward copy, deduplicated by name and duration. Any other
// marking removes every task in the next log sharing t's name; a copy left
// behind under an older name is not found.
func (s *Session) migrate(from *journal.DayLog, t *entry.Task) Migration {
	next := s.Index.GetOrCreate(from.Date().AddDate(0, 0, 1))
	m := Migration{Next: next}
	if t.Marking == glyph.Migrated {
		cp, added := next.Add(t.ForwardCopy(s.now()))
		if added {
			m.Added = cp
		}
		s.log.Debug("migrate", "task", t.Name, "date", next.Title(), "added", added)
	} else {
		m.Removed = next.RemoveByName(t.Name)
		if len(m.Removed) > 0 {
			s.log.Debug("reconcile", "task", t.Name, "date", next.Title(), "removed", len(m.Removed))
		}
	}
	sorter.Sort(next, s.SortMode)
	return m
}
