// Package planner runs the planning interview and fits the day's unplaced
// tasks around the ones that already have a start time.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

var (
	ErrQuestionIndex   = errors.New("planner: question index out of turn")
	ErrInvalidAnswer   = errors.New("planner: answer is not one of the choices")
	ErrNotInterviewing = errors.New("planner: schedule is not interviewing")
	// ErrInfeasible reports that no placement fits every task.
	ErrInfeasible = errors.New("planner: no feasible schedule")
)

// State is the planning flow position.
type State int

const (
	Empty State = iota
	Interview
	Solving
	Ready
	Infeasible
)

var stateNames = []string{"empty", "interview", "solving", "ready", "infeasible"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	sleepName   = "Sleep"
	studyFormat = "Study for %s"
)

// Schedule is one planning session for today.
type Schedule struct {
	Date      time.Time
	Start     timeutil.TimeOfDay
	End       timeutil.TimeOfDay
	DayLength time.Duration
	Questions []*Question
	// Periods is the solved plan, set once the schedule is Ready.
	Periods []*entry.Task
	// SleepTime is bedtime: the chosen wake time less the sleep length.
	SleepTime *timeutil.TimeOfDay

	opts    Options
	state   State
	current int
	today   *journal.DayLog
	now     time.Time

	sleepTask  *entry.Task
	sleepAdded bool
}

// New starts an interview for today. Tomorrow's log may be nil; each of its
// tasks naming an exam keyword gets a study question, ordered by name, and
// the sleep question always comes last.
func New(today, tomorrow *journal.DayLog, opts Options, now time.Time) (*Schedule, error) {
	if today == nil {
		return nil, errors.New("planner: today's log is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Schedule{
		Date:      today.Date(),
		Start:     opts.Start,
		End:       opts.End,
		DayLength: 24 * time.Hour,
		opts:      opts,
		state:     Interview,
		today:     today,
		now:       now,
	}
	if tomorrow != nil {
		for _, t := range sorter.Order(tomorrow.Tasks(), sorter.ByName) {
			if opts.isExam(t.Name) {
				s.Questions = append(s.Questions, newStudyQuestion(t))
			}
		}
	}
	s.Questions = append(s.Questions, newSleepQuestion(opts.WakeChoices))
	return s, nil
}

func (o Options) isExam(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range o.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" && strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func (s *Schedule) State() State {
	if s == nil {
		return Empty
	}
	return s.state
}

// IsEmpty reports whether there is no interview or plan in progress.
func (s *Schedule) IsEmpty() bool {
	return s.State() == Empty
}

// Err returns ErrInfeasible once the search has failed.
func (s *Schedule) Err() error {
	if s.State() == Infeasible {
		return ErrInfeasible
	}
	return nil
}

// HoursDaily is the number of candidate start hours in the window.
func (s *Schedule) HoursDaily() int {
	return s.opts.Window().Hours()
}

// Current returns the question waiting for an answer.
func (s *Schedule) Current() (*Question, int, bool) {
	if s.State() != Interview || s.current >= len(s.Questions) {
		return nil, s.current, false
	}
	return s.Questions[s.current], s.current, true
}

// RecordAnswer answers the current question. Answering the last question
// solves the schedule before returning.
func (s *Schedule) RecordAnswer(index int, answer string) error {
	if s.State() != Interview {
		return ErrNotInterviewing
	}
	if index != s.current {
		return fmt.Errorf("%w: got %d, expecting %d", ErrQuestionIndex, index, s.current)
	}
	q := s.Questions[index]
	choice, ok := q.match(answer)
	if !ok {
		return fmt.Errorf("%w: %q not in %s", ErrInvalidAnswer, answer, strings.Join(q.Choices, ", "))
	}
	q.Answer = choice
	q.Answered = true
	s.current++
	if s.current == len(s.Questions) {
		if err := s.solve(); err != nil {
			q.Answer, q.Answered = "", false
			s.current--
			s.state = Interview
			return err
		}
	}
	return nil
}

// solve leaves today's log untouched if a wake time cannot be read.
func (s *Schedule) solve() error {
	wake := make(map[*Question]timeutil.TimeOfDay)
	for _, q := range s.Questions {
		if q.Kind != SleepQuestion {
			continue
		}
		at, err := timeutil.ParseTimeOfDay(q.Answer)
		if err != nil {
			return fmt.Errorf("%w: wake time %q: %v", ErrInvalidAnswer, q.Answer, err)
		}
		wake[q] = at
	}

	s.state = Solving
	for _, q := range s.Questions {
		switch {
		case q.Kind == SleepQuestion:
			s.addSleep(wake[q])
		case q.Wants():
			study := entry.New(fmt.Sprintf(studyFormat, q.Subject.Name), s.opts.StudyLength, s.now)
			study.Group = glyph.School
			s.today.Add(study)
		}
	}

	plan, ok := Solve(s.today.Tasks(), s.opts.Window())
	if !ok {
		if s.sleepAdded {
			s.today.Remove(s.sleepTask.ID)
			s.sleepAdded = false
		}
		s.Periods = nil
		s.state = Infeasible
		return nil
	}
	s.Periods = plan
	s.state = Ready
	return nil
}

func (s *Schedule) addSleep(wake timeutil.TimeOfDay) {
	bed := wake.Add(-s.opts.SleepLength)
	s.SleepTime = &bed
	task := entry.New(sleepName, s.opts.SleepLength, s.now)
	task.Group = glyph.Health
	task.Assign(&bed)
	s.sleepTask, s.sleepAdded = s.today.Add(task)
}

// SleepTask is the sleep entry this schedule planned around, if any.
func (s *Schedule) SleepTask() *entry.Task {
	return s.sleepTask
}
