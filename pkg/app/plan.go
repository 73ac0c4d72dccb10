package app

import (
	"errors"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

// PlanView is what a front end shows for the planning flow.
type PlanView struct {
	State         planner.State       `json:"state"`
	Date          string              `json:"date,omitempty"`
	Question      *planner.Question   `json:"question,omitempty"`
	QuestionIndex int                 `json:"questionIndex"`
	Periods       []*entry.Task       `json:"periods,omitempty"`
	SleepTime     *timeutil.TimeOfDay `json:"sleepTime,omitempty"`
}

// RequestPlan starts an interview for today unless one is already under
// way or finished.
func (s *Session) RequestPlan() (PlanView, error) {
	if s.Schedule.IsEmpty() {
		tomorrow := s.Index.Lookup(s.Today.Date().AddDate(0, 0, 1))
		sched, err := planner.New(s.Today, tomorrow, s.planOpts, s.now())
		if err != nil {
			return PlanView{}, err
		}
		s.Schedule = sched
		s.log.Debug("plan requested", "date", s.Today.Title(), "questions", len(sched.Questions), "state", sched.State())
	}
	return s.Plan(), nil
}

// RecordAnswer answers question index of the running interview.
func (s *Session) RecordAnswer(index int, answer string) (PlanView, error) {
	if s.Schedule.IsEmpty() {
		return s.Plan(), planner.ErrNotInterviewing
	}
	if err := s.Schedule.RecordAnswer(index, answer); err != nil {
		return s.Plan(), err
	}
	state := s.Schedule.State()
	switch state {
	case planner.Ready:
		s.log.Debug("plan ready", "date", s.Today.Title(), "periods", len(s.Schedule.Periods), "state", state)
	case planner.Infeasible:
		s.log.Debug("plan infeasible", "date", s.Today.Title(), "state", state)
	}
	sorter.Sort(s.Today, s.SortMode)
	s.resort()
	return s.Plan(), nil
}

// ResetPlan discards the schedule so the next request starts over.
func (s *Session) ResetPlan() {
	s.Schedule = nil
}

func (s *Session) Plan() PlanView {
	v := PlanView{State: s.Schedule.State()}
	if s.Schedule == nil {
		return v
	}
	v.Date = s.Today.Title()
	v.SleepTime = s.Schedule.SleepTime
	switch v.State {
	case planner.Interview:
		v.Question, v.QuestionIndex, _ = s.Schedule.Current()
	case planner.Ready:
		v.Periods = s.Schedule.Periods
	}
	return v
}

// Err reports the terminal planning error, if any.
func (v PlanView) Err() error {
	if v.State == planner.Infeasible {
		return planner.ErrInfeasible
	}
	return nil
}

// IsInfeasible is true when err says no schedule fits.
func IsInfeasible(err error) bool {
	return errors.Is(err, planner.ErrInfeasible)
}
