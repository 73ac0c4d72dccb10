// Package seed loads a read-only YAML journal fixture into a session.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/timeutil"
)

const dateLayout = "2006-01-02"

var ErrBadFixture = errors.New("seed: invalid fixture")

// File is the fixture document.
type File struct {
	Logs []Log `yaml:"logs"`
}

// Log is one day. Date is YYYY-MM-DD, "today" or "tomorrow".
type Log struct {
	Date  string `yaml:"date"`
	Tasks []Task `yaml:"tasks"`
}

type Task struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
	At       string `yaml:"at,omitempty"`
	Group    string `yaml:"group,omitempty"`
	Priority bool   `yaml:"priority,omitempty"`
	Marking  string `yaml:"marking,omitempty"`
}

// Load reads a fixture from path; ~ is expanded.
func Load(path string) (*File, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return Parse(b)
}

// Parse decodes a fixture document.
func Parse(b []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFixture, err)
	}
	return f, nil
}

// Apply adds every task of the fixture to the session. Markings are stored
// as written; no migration runs. It returns the number of tasks added.
func (f *File) Apply(s *app.Session, now time.Time) (int, error) {
	added := 0
	for _, l := range f.Logs {
		date, err := resolveDate(l.Date, now)
		if err != nil {
			return added, err
		}
		for i, raw := range l.Tasks {
			t, err := raw.build(date, i)
			if err != nil {
				return added, fmt.Errorf("%w: %s task %d: %v", ErrBadFixture, l.Date, i, err)
			}
			if _, ok := s.Import(date, t); ok {
				added++
			}
		}
	}
	return added, nil
}

func resolveDate(raw string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrBadFixture, raw)
	}
	return d, nil
}

// build makes the task; n orders creation times within the day.
func (t Task) build(day time.Time, n int) (*entry.Task, error) {
	d, err := timeutil.ParseSpan(t.Duration)
	if err != nil {
		return nil, err
	}
	created := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, n, 0, time.UTC)
	task := entry.New(t.Name, d, created)
	if task.Group, err = glyph.ParseGroup(t.Group); err != nil {
		return nil, err
	}
	if task.Marking, err = glyph.ParseMarking(t.Marking); err != nil {
		return nil, err
	}
	task.Priority = t.Priority
	if t.At != "" {
		at, err := timeutil.ParseTimeOfDay(t.At)
		if err != nil {
			return nil, err
		}
		task.Assign(&at)
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}
