package planner

import (
	"sort"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Window is the span of the day the solver may place tasks in.
type Window struct {
	Start timeutil.TimeOfDay
	End   timeutil.TimeOfDay
}

// Hours is the number of whole-hour candidate starts, counting both the
// start and end hours.
func (w Window) Hours() int {
	return w.End.Hour() - w.Start.Hour() + 1
}

// Limit is the latest time a placed task may end: the top of the hour after
// End.
func (w Window) Limit() timeutil.TimeOfDay {
	return timeutil.Clock(w.End.Hour()+1, 0)
}

// Candidates are the start times tried for every task, earliest first.
func (w Window) Candidates() []timeutil.TimeOfDay {
	out := make([]timeutil.TimeOfDay, 0, w.Hours())
	for h := 0; h < w.Hours(); h++ {
		out = append(out, w.Start.Add(time.Duration(h)*time.Hour))
	}
	return out
}

// trail records tentative placements so they can be undone in reverse.
type trail struct {
	placed []*entry.Task
}

func (tr *trail) push(t *entry.Task, at timeutil.TimeOfDay) {
	t.Assign(&at)
	tr.placed = append(tr.placed, t)
}

func (tr *trail) pop() {
	last := len(tr.placed) - 1
	tr.placed[last].Assign(nil)
	tr.placed[last] = nil
	tr.placed = tr.placed[:last]
}

type solver struct {
	window     Window
	candidates []timeutil.TimeOfDay
	fixed      []*entry.Task
	pending    []*entry.Task
	trail      trail

	// chosen holds the candidate index of each placed pending task. twin
	// is the previous pending task with the same duration, or -1.
	chosen []int
	twin   []int
}

// Solve gives a start time to every task without one, never overlapping a
// task that already has one. Tasks are tried in order, each at the earliest
// free hour, backtracking when a later task cannot be placed. On success
// the plan lists the fixed tasks followed by the placed ones. On failure no
// task is left with a tentative start time.
func Solve(tasks []*entry.Task, w Window) ([]*entry.Task, bool) {
	s := &solver{window: w, candidates: w.Candidates()}
	for _, t := range tasks {
		if t.Assigned() {
			s.fixed = append(s.fixed, t)
		} else {
			s.pending = append(s.pending, t)
		}
	}
	if !s.fits() {
		return nil, false
	}
	s.pair()
	if !s.place(0) {
		return nil, false
	}
	plan := make([]*entry.Task, 0, len(tasks))
	plan = append(plan, s.fixed...)
	plan = append(plan, s.trail.placed...)
	for _, t := range plan {
		if !t.Assigned() {
			for len(s.trail.placed) > 0 {
				s.trail.pop()
			}
			return nil, false
		}
	}
	return plan, true
}

func (s *solver) place(i int) bool {
	if i == len(s.pending) {
		return true
	}
	t := s.pending[i]
	first := 0
	if j := s.twin[i]; j >= 0 {
		first = s.chosen[j]
	}
	for c := first; c < len(s.candidates); c++ {
		at := s.candidates[c]
		if !s.available(at, t.Duration) {
			continue
		}
		s.trail.push(t, at)
		s.chosen[i] = c
		if s.place(i + 1) {
			return true
		}
		s.trail.pop()
	}
	return false
}

// fits rejects days that cannot hold the pending work: more work than free
// time in the window, or more tasks than free start hours.
func (s *solver) fits() bool {
	start, limit := s.window.Start, s.window.Limit()
	var busy [][2]timeutil.TimeOfDay
	for _, t := range s.fixed {
		from, to, _ := t.Interval()
		if from < start {
			from = start
		}
		if to > limit {
			to = limit
		}
		if from < to {
			busy = append(busy, [2]timeutil.TimeOfDay{from, to})
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i][0] < busy[j][0] })

	free := limit.Sub(start)
	covered := start
	for _, b := range busy {
		if b[0] < covered {
			b[0] = covered
		}
		if b[0] < b[1] {
			free -= b[1].Sub(b[0])
			covered = b[1]
		}
	}

	var work time.Duration
	tasks := 0
	for _, t := range s.pending {
		if t.Duration > 0 {
			work += t.Duration
			tasks++
		}
	}
	if work > free {
		return false
	}
	open := 0
	for _, at := range s.candidates {
		if s.available(at, time.Nanosecond) {
			open++
		}
	}
	return tasks <= open
}

// pair links each pending task to the previous one with the same duration.
// Such tasks are interchangeable, so the later one never starts before the
// earlier; the first plan found is unchanged.
func (s *solver) pair() {
	s.chosen = make([]int, len(s.pending))
	s.twin = make([]int, len(s.pending))
	last := make(map[time.Duration]int)
	for i, t := range s.pending {
		s.twin[i] = -1
		if j, ok := last[t.Duration]; ok {
			s.twin[i] = j
		}
		last[t.Duration] = i
	}
}

func (s *solver) available(at timeutil.TimeOfDay, d time.Duration) bool {
	if at.Add(d) > s.window.Limit() {
		return false
	}
	for _, t := range s.fixed {
		if t.Overlaps(at, d) {
			return false
		}
	}
	for _, t := range s.trail.placed {
		if t.Overlaps(at, d) {
			return false
		}
	}
	return true
}
