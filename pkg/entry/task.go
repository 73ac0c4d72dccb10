// Package entry defines the task entity stored in day logs.
package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Key is the (name, duration) pair that defines task equality. No two tasks
// with the same key live in one day log.
type Key struct {
	Name     string
	Duration time.Duration
}

// Task is one entry of a day log.
type Task struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Group    glyph.Group   `json:"group,omitempty"`
	Marking  glyph.Marking `json:"marking"`
	Priority bool          `json:"priority,omitempty"`
	// AssignedTime is nil until the task is given a start time.
	AssignedTime *timeutil.TimeOfDay `json:"assignedTime,omitempty"`
	Duration     time.Duration       `json:"duration"`
	Created      Timestamp           `json:"created"`

	// View state, rewritten by the sorter.
	Row       int  `json:"row"`
	ShiftedBy int  `json:"shiftedBy,omitempty"`
	Selected  bool `json:"selected,omitempty"`
	Editing   bool `json:"-"`
}

// New returns an incomplete task with a fresh identifier.
func New(name string, duration time.Duration, created time.Time) *Task {
	return &Task{
		ID:       uuid.NewString(),
		Name:     name,
		Marking:  glyph.Incomplete,
		Duration: duration,
		Created:  Timestamp{Time: created},
	}
}

func (t *Task) Key() Key {
	return Key{Name: t.Name, Duration: t.Duration}
}

// Equal compares tasks by name and duration.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Key() == other.Key()
}

// Assigned reports whether the task has a start time.
func (t *Task) Assigned() bool {
	return t.AssignedTime != nil
}

// Assign sets the start time; a nil time clears it.
func (t *Task) Assign(at *timeutil.TimeOfDay) {
	if at == nil {
		t.AssignedTime = nil
		return
	}
	v := *at
	t.AssignedTime = &v
}

// Interval returns the half-open [start, end) of a placed task.
func (t *Task) Interval() (start, end timeutil.TimeOfDay, ok bool) {
	if t.AssignedTime == nil {
		return 0, 0, false
	}
	start = *t.AssignedTime
	return start, start.Add(t.Duration), true
}

// Overlaps reports whether [at, at+d) intersects the task's interval.
func (t *Task) Overlaps(at timeutil.TimeOfDay, d time.Duration) bool {
	start, end, ok := t.Interval()
	if !ok {
		return false
	}
	return at < end && start < at.Add(d)
}

// Validate checks the fields a saved task must carry.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("name", ErrEmptyName, "")
	}
	if t.Duration <= 0 || t.Duration > timeutil.MaxDuration {
		return invalid("duration", ErrInvalidDuration, timeutil.FormatSpan(t.Duration))
	}
	return nil
}

// SetDuration validates the hour and minute fields and stores the result.
func (t *Task) SetDuration(hours, minutes int) error {
	d, err := timeutil.TaskDuration(hours, minutes)
	if err != nil {
		return invalid("duration", ErrInvalidDuration, err.Error())
	}
	t.Duration = d
	return nil
}

// Clone deep-copies the task, keeping its identity.
func (t *Task) Clone() *Task {
	cp := *t
	if t.AssignedTime != nil {
		at := *t.AssignedTime
		cp.AssignedTime = &at
	}
	return &cp
}

// ForwardCopy is the copy carried into the next day by migration: same
// name, group, duration and priority, a new identity and creation time, and
// no marking, selection, or start time.
func (t *Task) ForwardCopy(now time.Time) *Task {
	cp := New(t.Name, t.Duration, now)
	cp.Group = t.Group
	cp.Priority = t.Priority
	return cp
}
