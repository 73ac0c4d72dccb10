package planner

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/timeutil"
)

// ErrInvalidOptions is returned when planning options cannot produce a
// usable window or sleep question.
var ErrInvalidOptions = errors.New("planner: invalid options")

// Options configures an interview and the window the solver may use.
type Options struct {
	Start timeutil.TimeOfDay
	End   timeutil.TimeOfDay
	// Keywords mark a task in tomorrow's log as an exam worth studying for.
	// Matching is a case-insensitive substring test.
	Keywords    []string
	WakeChoices []timeutil.TimeOfDay
	SleepLength time.Duration
	StudyLength time.Duration
}

// DefaultOptions covers the whole day, offers wake times from 8:00 AM to
// 10:00 AM by half hours, and plans eight hours of sleep and two hours of
// study per exam.
func DefaultOptions() Options {
	return Options{
		Start:       timeutil.Clock(0, 0),
		End:         timeutil.Clock(23, 59),
		Keywords:    []string{"exam", "test", "quiz", "assessment"},
		WakeChoices: DefaultWakeChoices(),
		SleepLength: 8 * time.Hour,
		StudyLength: 2 * time.Hour,
	}
}

func DefaultWakeChoices() []timeutil.TimeOfDay {
	var out []timeutil.TimeOfDay
	for at := timeutil.Clock(8, 0); at <= timeutil.Clock(10, 0); at = at.Add(30 * time.Minute) {
		out = append(out, at)
	}
	return out
}

// Validate checks the window and that every wake time leaves room for a
// full night of sleep inside the same day.
func (o Options) Validate() error {
	if o.Start < 0 || o.End >= timeutil.MinutesPerDay || o.End <= o.Start {
		return fmt.Errorf("%w: window %s to %s", ErrInvalidOptions, o.Start, o.End)
	}
	if len(o.WakeChoices) == 0 {
		return fmt.Errorf("%w: no wake time choices", ErrInvalidOptions)
	}
	if o.SleepLength <= 0 || o.StudyLength <= 0 {
		return fmt.Errorf("%w: sleep and study lengths must be positive", ErrInvalidOptions)
	}
	for _, w := range o.WakeChoices {
		if w < 0 || w >= timeutil.MinutesPerDay {
			return fmt.Errorf("%w: wake time %d out of range", ErrInvalidOptions, int(w))
		}
		if w.Add(-o.SleepLength) < 0 {
			return fmt.Errorf("%w: waking at %s leaves less than %s of sleep", ErrInvalidOptions, w, timeutil.FormatSpan(o.SleepLength))
		}
	}
	return nil
}

// Window returns the solver window for these options.
func (o Options) Window() Window {
	return Window{Start: o.Start, End: o.End}
}
