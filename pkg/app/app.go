// Package app is the session the CLI and any other front end drive: it owns
// the day logs, the current view and the planning interview.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

var (
	ErrNotFound    = errors.New("app: task not found")
	ErrDraftClosed = errors.New("app: draft already committed or discarded")
)

// Session holds all state for one run. It is not safe for concurrent use.
type Session struct {
	Index    *journal.Index
	Today    *journal.DayLog
	Current  *journal.DayLog
	SortMode sorter.Mode
	Schedule *planner.Schedule

	planOpts planner.Options
	clock    func() time.Time
	log      *slog.Logger
}

type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithPlannerOptions(opts planner.Options) Option {
	return func(s *Session) { s.planOpts = opts }
}

func WithSortMode(mode sorter.Mode) Option {
	return func(s *Session) { s.SortMode = mode }
}

// New creates a session with today's log indexed and current.
func New(opts ...Option) *Session {
	s := &Session{
		Index:    journal.NewIndex(),
		SortMode: sorter.Default,
		planOpts: planner.DefaultOptions(),
		clock:    time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	s.Today = s.Index.GetOrCreate(s.now())
	s.Current = s.Today
	return s
}

func (s *Session) now() time.Time {
	return s.clock()
}

// PlannerOptions returns the options new schedules are built with.
func (s *Session) PlannerOptions() planner.Options {
	return s.planOpts
}

// DisplayList is the current log in the current sort mode.
func (s *Session) DisplayList() []*entry.Task {
	return sorter.Sort(s.Current, s.SortMode)
}

// DisplayListFor sorts the log for date, creating it if needed.
func (s *Session) DisplayListFor(date time.Time, mode sorter.Mode) []*entry.Task {
	return sorter.Sort(s.Index.GetOrCreate(date), mode)
}

// Import places an already built task in the log for date. It returns the
// task that holds the key afterwards and whether t was added.
func (s *Session) Import(date time.Time, t *entry.Task) (*entry.Task, bool) {
	l := s.Index.GetOrCreate(date)
	got, added := l.Add(t)
	sorter.Sort(l, s.SortMode)
	return got, added
}

func (s *Session) find(id string) (*entry.Task, error) {
	if t := s.Current.Get(id); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FindByName returns the first task in the current log with this name.
func (s *Session) FindByName(name string) (*entry.Task, error) {
	for _, t := range s.Current.Tasks() {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q on %s", ErrNotFound, name, s.Current.Title())
}

func (s *Session) resort() {
	sorter.Sort(s.Current, s.SortMode)
}

// SetMarking changes a task's marking, closes its dropdown and reconciles
// its forward copy in the next day's log.
func (s *Session) SetMarking(id string, m glyph.Marking) (*entry.Task, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("app: invalid marking %d", int(m))
	}
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Marking = m
	t.Selected = false
	s.migrate(s.Current, t)
	s.resort()
	return t, nil
}

// SetAssignedTime gives the task a start time; nil clears it.
func (s *Session) SetAssignedTime(id string, at *timeutil.TimeOfDay) (*entry.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Assign(at)
	s.resort()
	return t, nil
}

// SetDuration validates and stores a new duration. The new (name, duration)
// pair must not belong to another task in the log.
func (s *Session) SetDuration(id string, hours, minutes int) (*entry.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	d, err := timeutil.TaskDuration(hours, minutes)
	if err != nil {
		return nil, &entry.ValidationError{Field: "duration", Reason: entry.ErrInvalidDuration, Detail: err.Error()}
	}
	key := entry.Key{Name: t.Name, Duration: d}
	if s.Current.Conflict(t, key) != nil {
		return nil, entry.DuplicateError(key)
	}
	t.Duration = d
	s.resort()
	return t, nil
}

func (s *Session) SetGroup(id string, g glyph.Group) (*entry.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Group = g
	s.resort()
	return t, nil
}

func (s *Session) SetPriority(id string, priority bool) (*entry.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Priority = priority
	s.resort()
	return t, nil
}

// DeleteTask removes a task from the current log.
func (s *Session) DeleteTask(id string) error {
	if !s.Current.Remove(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.resort()
	return nil
}

// SelectTask toggles the task's dropdown. Selecting a task deselects any
// other.
func (s *Session) SelectTask(id string) (*entry.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if t.Selected {
		s.Current.DeselectAll()
	} else {
		s.Current.Select(id)
	}
	s.resort()
	return t, nil
}

func (s *Session) DeselectAll() {
	s.Current.DeselectAll()
	s.resort()
}

func (s *Session) ChangeSortMode(mode sorter.Mode) error {
	for _, m := range sorter.Modes() {
		if m == mode {
			s.SortMode = mode
			s.resort()
			return nil
		}
	}
	return fmt.Errorf("app: unknown sort mode %q", mode)
}

// NavigateToDate makes the log for date current, creating it on first use.
func (s *Session) NavigateToDate(date time.Time) *journal.DayLog {
	if s.Current != nil {
		s.Current.DeselectAll()
	}
	s.Current = s.Index.GetOrCreate(date)
	s.resort()
	s.log.Debug("navigate", "date", s.Current.Title())
	return s.Current
}

// NavigateBy moves the current view by a number of days.
func (s *Session) NavigateBy(days int) *journal.DayLog {
	return s.NavigateToDate(s.Current.Date().AddDate(0, 0, days))
}

func (s *Session) GoToToday() *journal.DayLog {
	return s.NavigateToDate(s.Today.Date())
}
