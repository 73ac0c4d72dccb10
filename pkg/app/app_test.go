package app

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

var fixedNow = time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC)

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	tick := fixedNow
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return New(append([]Option{WithClock(clock)}, opts...)...)
}

func mustCreate(t *testing.T, s *Session, name string, hours, minutes int) *entry.Task {
	t.Helper()
	task, err := s.CreateTask(name, hours, minutes)
	if err != nil {
		t.Fatalf("CreateTask(%q): %v", name, err)
	}
	return task
}

func tomorrow(s *Session) []*entry.Task {
	return s.Index.GetOrCreate(s.Today.Date().AddDate(0, 0, 1)).Tasks()
}

func TestNewIndexesToday(t *testing.T) {
	s := newSession(t)
	if s.Index.Len() != 1 || s.Current != s.Today {
		t.Fatalf("expected today's log to be indexed and current")
	}
	if s.SortMode != sorter.ByTimeCreated {
		t.Fatalf("expected default sort mode, got %s", s.SortMode)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	s := newSession(t)
	if _, err := s.CreateTask("", 1, 0); !errors.Is(err, entry.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := s.CreateTask("Run", 0, 0); !errors.Is(err, entry.ErrInvalidDuration) || !entry.IsValidation(err) {
		t.Fatalf("expected a duration validation error, got %v", err)
	}
	if _, err := s.CreateTask("Run", 25, 0); !errors.Is(err, entry.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for 25 hours, got %v", err)
	}
	if _, err := s.CreateTask("Run", 1, 61); !errors.Is(err, entry.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for 61 minutes, got %v", err)
	}
	if s.Today.Len() != 0 {
		t.Fatalf("invalid drafts must not reach the log")
	}
}

func TestDurationLimitAgreesAcrossPaths(t *testing.T) {
	s := newSession(t)
	created, err := s.CreateTask("Marathon", 24, 60)
	if err != nil {
		t.Fatalf("CreateTask(24, 60): %v", err)
	}
	if created.Duration != timeutil.MaxDuration {
		t.Fatalf("expected %v, got %v", timeutil.MaxDuration, created.Duration)
	}
	other, err := s.CreateTask("Hike", 1, 0)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := s.SetDuration(other.ID, 24, 60); err != nil {
		t.Fatalf("SetDuration(24, 60): %v", err)
	}
	if _, err := s.SetDuration(other.ID, 24, 61); !errors.Is(err, entry.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for 61 minutes, got %v", err)
	}
	if other.Duration != timeutil.MaxDuration {
		t.Fatalf("rejected duration must not be stored, got %v", other.Duration)
	}
}

func TestCreateDuplicateIsNoop(t *testing.T) {
	s := newSession(t)
	first := mustCreate(t, s, "Run", 1, 0)
	second := mustCreate(t, s, "Run", 1, 0)
	if first != second || s.Today.Len() != 1 {
		t.Fatalf("expected one task for a repeated name and duration")
	}
	mustCreate(t, s, "Run", 0, 30)
	if s.Today.Len() != 2 {
		t.Fatalf("a different duration is a different task")
	}
}

func TestDiscardRestoresTask(t *testing.T) {
	s := newSession(t)
	task := mustCreate(t, s, "Essay", 2, 0)

	d, err := s.BeginEdit(task.ID)
	if err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	d.SetName("Essay draft")
	d.ToggleGroup()
	d.TogglePriority()
	if !task.Editing {
		t.Fatalf("expected the live task to be marked editing")
	}
	s.Discard(d)
	if task.Name != "Essay" || task.Group != glyph.Ungrouped || task.Priority || task.Editing {
		t.Fatalf("discard changed the live task: %+v", task)
	}
	if _, err := s.Commit(d); !errors.Is(err, ErrDraftClosed) {
		t.Fatalf("expected ErrDraftClosed, got %v", err)
	}

	fresh := s.BeginTask()
	s.Discard(fresh)
	if s.Today.Len() != 1 {
		t.Fatalf("discarded fresh draft reached the log")
	}
}

func TestCommitEdit(t *testing.T) {
	s := newSession(t)
	task := mustCreate(t, s, "Essay", 2, 0)
	mustCreate(t, s, "Reading", 1, 0)

	d, _ := s.BeginEdit(task.ID)
	d.SetName("Reading")
	if err := d.SetDuration(1, 0); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	if _, err := s.Commit(d); !errors.Is(err, entry.ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}

	d.SetName("Essay final")
	at := timeutil.Clock(14, 0)
	d.SetAssignedTime(&at)
	if g := d.ToggleGroup(); g != glyph.Extracurricular {
		t.Fatalf("expected the group cycle to start at extracurricular, got %s", g)
	}
	saved, err := s.Commit(d)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if saved != task || task.Name != "Essay final" || task.Duration != time.Hour || *task.AssignedTime != at {
		t.Fatalf("unexpected committed task %+v", task)
	}
}

func TestSetMarkingMigratesAndReverts(t *testing.T) {
	s := newSession(t)
	task := mustCreate(t, s, "Laundry", 1, 0)
	task.Priority = true
	task.Group = glyph.Personal
	at := timeutil.Clock(9, 0)
	if _, err := s.SetAssignedTime(task.ID, &at); err != nil {
		t.Fatalf("SetAssignedTime: %v", err)
	}
	if _, err := s.SelectTask(task.ID); err != nil {
		t.Fatalf("SelectTask: %v", err)
	}

	for round := 0; round < 2; round++ {
		if _, err := s.SetMarking(task.ID, glyph.Migrated); err != nil {
			t.Fatalf("SetMarking: %v", err)
		}
		if _, err := s.SetMarking(task.ID, glyph.Migrated); err != nil {
			t.Fatalf("SetMarking: %v", err)
		}
		next := tomorrow(s)
		if len(next) != 1 {
			t.Fatalf("round %d: expected one forward copy, got %d", round, len(next))
		}
		cp := next[0]
		if cp.ID == task.ID || cp.Marking != glyph.Incomplete || cp.Assigned() || cp.Selected {
			t.Fatalf("round %d: forward copy carried state: %+v", round, cp)
		}
		if cp.Group != glyph.Personal || !cp.Priority || cp.Duration != time.Hour {
			t.Fatalf("round %d: forward copy lost fields: %+v", round, cp)
		}
		if task.Selected {
			t.Fatalf("setting a marking must close the dropdown")
		}

		if _, err := s.SetMarking(task.ID, glyph.Incomplete); err != nil {
			t.Fatalf("SetMarking: %v", err)
		}
		if n := len(tomorrow(s)); n != 0 {
			t.Fatalf("round %d: revert left %d tasks behind", round, n)
		}
	}
}

func TestRevertMatchesByName(t *testing.T) {
	s := newSession(t)
	task := mustCreate(t, s, "Laundry", 1, 0)
	s.SetMarking(task.ID, glyph.Migrated)
	if _, err := s.SetDuration(task.ID, 2, 0); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	s.SetMarking(task.ID, glyph.Completed)
	if n := len(tomorrow(s)); n != 0 {
		t.Fatalf("expected name match to remove the copy, %d remain", n)
	}
}

func TestRenameOrphansForwardCopy(t *testing.T) {
	s := newSession(t)
	task := mustCreate(t, s, "Laundry", 1, 0)
	s.SetMarking(task.ID, glyph.Migrated)

	d, _ := s.BeginEdit(task.ID)
	d.SetName("Wash clothes")
	if _, err := s.Commit(d); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	s.SetMarking(task.ID, glyph.Migrated)
	if n := len(tomorrow(s)); n != 2 {
		t.Fatalf("expected stale and new forward copies, got %d", n)
	}
	s.SetMarking(task.ID, glyph.Incomplete)
	next := tomorrow(s)
	if len(next) != 1 || next[0].Name != "Laundry" {
		t.Fatalf("expected only the stale copy to remain, got %d", len(next))
	}
}

func TestSelectTaskShiftsRows(t *testing.T) {
	s := newSession(t)
	a := mustCreate(t, s, "a", 1, 0)
	b := mustCreate(t, s, "b", 1, 0)
	c := mustCreate(t, s, "c", 1, 0)

	s.SelectTask(a.ID)
	if a.Row != 0 || b.Row != 2 || c.Row != 3 || b.ShiftedBy != 1 {
		t.Fatalf("unexpected rows %d %d %d", a.Row, b.Row, c.Row)
	}
	s.SelectTask(b.ID)
	if a.Selected || !b.Selected || c.Row != 3 || b.Row != 1 {
		t.Fatalf("selection did not move to b")
	}
	s.SelectTask(b.ID)
	if b.Selected || c.Row != 2 || c.ShiftedBy != 0 {
		t.Fatalf("toggling b should close its dropdown")
	}
	s.SelectTask(c.ID)
	s.DeselectAll()
	if c.Selected {
		t.Fatalf("DeselectAll left a selection")
	}
}

func TestSettersAndModes(t *testing.T) {
	s := newSession(t)
	z := mustCreate(t, s, "zebra", 1, 0)
	mustCreate(t, s, "apple", 1, 0)

	if err := s.ChangeSortMode(sorter.ByName); err != nil {
		t.Fatalf("ChangeSortMode: %v", err)
	}
	if list := s.DisplayList(); list[0].Name != "apple" || z.Row != 1 {
		t.Fatalf("expected name order")
	}
	if err := s.ChangeSortMode("colour"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
	if _, err := s.SetPriority(z.ID, true); err != nil {
		t.Fatalf("SetPriority: %v", err)
	}
	if _, err := s.SetGroup(z.ID, glyph.Health); err != nil {
		t.Fatalf("SetGroup: %v", err)
	}
	if list := s.DisplayListFor(s.Today.Date(), sorter.ByPriority); list[0] != z {
		t.Fatalf("expected the priority task first")
	}
	if err := s.DeleteTask(z.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := s.DeleteTask(z.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.SetDuration("missing", 1, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNavigation(t *testing.T) {
	s := newSession(t)
	l := s.NavigateBy(3)
	if !l.Date().Equal(s.Today.Date().AddDate(0, 0, 3)) || s.Current != l {
		t.Fatalf("expected to move three days ahead")
	}
	s.NavigateToDate(s.Today.Date().AddDate(0, 0, -1))
	if s.Index.Len() != 3 {
		t.Fatalf("expected three indexed logs, got %d", s.Index.Len())
	}
	logs := s.Index.Logs()
	for i := 1; i < len(logs); i++ {
		if !logs[i-1].Date().Before(logs[i].Date()) {
			t.Fatalf("index out of order")
		}
	}
	if s.GoToToday() != s.Today {
		t.Fatalf("expected to return to today")
	}
}

func TestPlanFlow(t *testing.T) {
	s := newSession(t)
	mustCreate(t, s, "Essay", 3, 0)
	s.Import(s.Today.Date().AddDate(0, 0, 1), entry.New("History test", time.Hour, fixedNow))

	if v := s.Plan(); v.State != planner.Empty {
		t.Fatalf("expected an empty plan, got %s", v.State)
	}
	if _, err := s.RecordAnswer(0, planner.Yes); !errors.Is(err, planner.ErrNotInterviewing) {
		t.Fatalf("expected ErrNotInterviewing, got %v", err)
	}
	v, err := s.RequestPlan()
	if err != nil {
		t.Fatalf("RequestPlan: %v", err)
	}
	if v.State != planner.Interview || v.QuestionIndex != 0 || v.Question.Kind != planner.StudyQuestion {
		t.Fatalf("expected the study question first, got %+v", v)
	}
	if again, _ := s.RequestPlan(); again.Question != v.Question {
		t.Fatalf("a second request must not restart the interview")
	}
	if _, err := s.RecordAnswer(0, planner.No); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	v, err = s.RecordAnswer(1, "10:00 AM")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if v.State != planner.Ready || v.Err() != nil {
		t.Fatalf("expected a ready plan, got %s", v.State)
	}
	if len(v.Periods) != 2 || v.Periods[0].Name != "Sleep" || v.Periods[1].Name != "Essay" {
		t.Fatalf("unexpected periods %v", v.Periods)
	}
	if *v.Periods[1].AssignedTime != timeutil.Clock(10, 0) {
		t.Fatalf("expected the essay after waking, got %s", v.Periods[1].AssignedTime)
	}

	s.ResetPlan()
	if v := s.Plan(); v.State != planner.Empty {
		t.Fatalf("expected reset to empty the plan")
	}
}

func TestPlanInfeasible(t *testing.T) {
	opts := planner.DefaultOptions()
	opts.Start = timeutil.Clock(8, 0)
	opts.End = timeutil.Clock(10, 0)
	s := newSession(t, WithPlannerOptions(opts))
	long := mustCreate(t, s, "Marathon", 5, 0)

	if _, err := s.RequestPlan(); err != nil {
		t.Fatalf("RequestPlan: %v", err)
	}
	v, err := s.RecordAnswer(0, "8:00 AM")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if v.State != planner.Infeasible || !IsInfeasible(v.Err()) {
		t.Fatalf("expected infeasible, got %s", v.State)
	}
	if s.Today.Len() != 1 || long.Assigned() {
		t.Fatalf("infeasible plan must leave only the unplaced marathon")
	}
}
