// Package journal holds the per-day task logs and the date ordered index
// over them.
package journal

import (
	"time"

	"tableflip.dev/daybook/pkg/entry"
)

const dayFormat = "January 2, 2006"

// Day normalises t to its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayLog is the set of tasks recorded for one calendar day. Tasks are kept
// in insertion order; that order is the encounter order sorters see.
type DayLog struct {
	date  time.Time
	tasks []*entry.Task
}

// NewDayLog returns an empty log for the day containing date.
func NewDayLog(date time.Time) *DayLog {
	return &DayLog{date: Day(date)}
}

func (l *DayLog) Date() time.Time {
	return l.date
}

// Title is the human name of the day, "October 14, 2026".
func (l *DayLog) Title() string {
	return l.date.Format(dayFormat)
}

func (l *DayLog) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in encounter order. The slice is a copy; the
// tasks are shared.
func (l *DayLog) Tasks() []*entry.Task {
	out := make([]*entry.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add inserts t unless a task with the same name and duration is already
// present. It returns the task that is in the log afterwards and whether t
// was the one added.
func (l *DayLog) Add(t *entry.Task) (*entry.Task, bool) {
	if existing := l.Lookup(t.Key()); existing != nil {
		return existing, false
	}
	l.tasks = append(l.tasks, t)
	return t, true
}

// Lookup finds the task with the given equality key.
func (l *DayLog) Lookup(key entry.Key) *entry.Task {
	for _, t := range l.tasks {
		if t.Key() == key {
			return t
		}
	}
	return nil
}

// Get finds a task by identifier.
func (l *DayLog) Get(id string) *entry.Task {
	if i := l.indexOf(id); i >= 0 {
		return l.tasks[i]
	}
	return nil
}

// Remove deletes the task with the given identifier.
func (l *DayLog) Remove(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// RemoveByName deletes every task with exactly this name and returns them.
func (l *DayLog) RemoveByName(name string) []*entry.Task {
	var removed []*entry.Task
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.Name == name {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = nil
	}
	l.tasks = kept
	return removed
}

// Conflict returns a task other than t that shares key.
func (l *DayLog) Conflict(t *entry.Task, key entry.Key) *entry.Task {
	for _, other := range l.tasks {
		if other.ID != t.ID && other.Key() == key {
			return other
		}
	}
	return nil
}

// Selected returns the selected task, if any.
func (l *DayLog) Selected() *entry.Task {
	for _, t := range l.tasks {
		if t.Selected {
			return t
		}
	}
	return nil
}

// Select makes the task with id the only selected task.
func (l *DayLog) Select(id string) bool {
	target := l.Get(id)
	if target == nil {
		return false
	}
	l.DeselectAll()
	target.Selected = true
	return true
}

func (l *DayLog) DeselectAll() {
	for _, t := range l.tasks {
		t.Selected = false
	}
}

func (l *DayLog) indexOf(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
