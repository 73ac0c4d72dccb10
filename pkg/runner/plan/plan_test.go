package plan

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/timeutil"
)

var now = time.Date(2026, 10, 14, 7, 0, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func session(t *testing.T) *app.Session {
	t.Helper()
	s := app.New(app.WithClock(func() time.Time { return now }))
	if _, err := s.CreateTask("Essay", 2, 0); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	s.Import(now.AddDate(0, 0, 1), entry.New("Chem quiz", time.Hour, now))
	return s
}

func TestPlanFromFlags(t *testing.T) {
	s := session(t)
	buf := &bytes.Buffer{}
	p := Plan{Session: s, Wake: "9:00", Study: []string{"yes"}, Out: buf}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Schedule.State() != planner.Ready {
		t.Fatalf("expected a ready plan, got %s", s.Schedule.State())
	}
	out := buf.String()
	for _, want := range []string{"Study for Chem quiz", "Sleep", "Essay", "9:00 AM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPlanPromptsForMissingAnswers(t *testing.T) {
	s := session(t)
	var asked []string
	ask := func(prompt string, choices []string) (string, error) {
		asked = append(asked, prompt)
		return choices[len(choices)-1], nil
	}
	p := Plan{Session: s, Ask: ask, JSON: true, Out: &bytes.Buffer{}}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(asked) != 2 {
		t.Fatalf("expected two prompts, got %v", asked)
	}
	if s.Schedule.Questions[0].Answer != planner.No || s.Schedule.Questions[1].Answer != "10:00 AM" {
		t.Fatalf("unexpected answers")
	}
}

func TestPlanWithoutAnswers(t *testing.T) {
	p := Plan{Session: session(t), Out: &bytes.Buffer{}}
	if err := p.Do(context.Background()); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}
}

func TestPlanInfeasible(t *testing.T) {
	opts := planner.DefaultOptions()
	opts.End = timeutil.Clock(9, 0)
	s := app.New(app.WithClock(func() time.Time { return now }), app.WithPlannerOptions(opts))
	s.CreateTask("Shift", 12, 0)
	p := Plan{Session: s, Wake: "8:00 AM", Out: &bytes.Buffer{}}
	if err := p.Do(context.Background()); !errors.Is(err, planner.ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}
