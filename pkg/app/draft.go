package app

import (
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Draft is the scratch copy an edit flow works on. Nothing in it reaches the
// log until Commit.
type Draft struct {
	Task *entry.Task

	log    *journal.DayLog
	target *entry.Task
	closed bool
}

// Fresh reports whether the draft creates a new task rather than editing
// one.
func (d *Draft) Fresh() bool {
	return d.target == nil
}

func (d *Draft) SetName(name string) {
	d.Task.Name = name
}

// SetDuration validates the hour and minute fields.
func (d *Draft) SetDuration(hours, minutes int) error {
	return d.Task.SetDuration(hours, minutes)
}

func (d *Draft) SetGroup(g glyph.Group) {
	d.Task.Group = g
}

// ToggleGroup advances to the next group and returns it.
func (d *Draft) ToggleGroup() glyph.Group {
	d.Task.Group = d.Task.Group.Next()
	return d.Task.Group
}

func (d *Draft) SetPriority(priority bool) {
	d.Task.Priority = priority
}

func (d *Draft) TogglePriority() bool {
	d.Task.Priority = !d.Task.Priority
	return d.Task.Priority
}

func (d *Draft) SetAssignedTime(at *timeutil.TimeOfDay) {
	d.Task.Assign(at)
}

// BeginTask opens a draft for a new task in the current log.
func (s *Session) BeginTask() *Draft {
	return &Draft{
		Task: entry.New("", 0, s.now()),
		log:  s.Current,
	}
}

// BeginEdit opens a draft over an existing task.
func (s *Session) BeginEdit(id string) (*Draft, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Editing = true
	return &Draft{Task: t.Clone(), log: s.Current, target: t}, nil
}

// Commit validates the draft and saves it. A new draft whose name and
// duration match a task already in the log leaves the log as it was and
// returns that task. An edit may not take the key of another task.
func (s *Session) Commit(d *Draft) (*entry.Task, error) {
	if d.closed {
		return nil, ErrDraftClosed
	}
	if err := d.Task.Validate(); err != nil {
		return nil, err
	}
	var saved *entry.Task
	if d.Fresh() {
		saved, _ = d.log.Add(d.Task)
	} else {
		if d.log.Conflict(d.target, d.Task.Key()) != nil {
			return nil, entry.DuplicateError(d.Task.Key())
		}
		d.target.Name = d.Task.Name
		d.target.Duration = d.Task.Duration
		d.target.Group = d.Task.Group
		d.target.Priority = d.Task.Priority
		d.target.Assign(d.Task.AssignedTime)
		d.target.Editing = false
		saved = d.target
	}
	d.closed = true
	s.log.Debug("commit", "task", saved.Name, "date", d.log.Title(), "fresh", d.Fresh())
	sorter.Sort(d.log, s.SortMode)
	return saved, nil
}

// Discard abandons the draft. The live task, if any, keeps the state it had
// before the edit began.
func (s *Session) Discard(d *Draft) {
	if d.closed {
		return
	}
	d.closed = true
	if d.target != nil {
		d.target.Editing = false
	}
}

// CreateTask runs the edit flow for a named task in one call.
func (s *Session) CreateTask(name string, hours, minutes int) (*entry.Task, error) {
	d := s.BeginTask()
	d.SetName(name)
	if err := d.SetDuration(hours, minutes); err != nil {
		s.Discard(d)
		return nil, err
	}
	t, err := s.Commit(d)
	if err != nil {
		s.Discard(d)
		return nil, err
	}
	return t, nil
}
