// Package plan runs the planning interview from flags or, on a terminal,
// by prompting.
package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/printers"
)

const promptWidth = 60

// ErrNoAnswer is returned when a question has no flag answer and prompting
// is off.
var ErrNoAnswer = errors.New("plan: question left unanswered")

// Chooser picks one of the choices for a prompt.
type Chooser func(prompt string, choices []string) (string, error)

type Plan struct {
	Session *app.Session
	// Wake answers the sleep question.
	Wake string
	// Study answers the study questions in order.
	Study []string
	// Reset discards any previous schedule first.
	Reset bool
	// Ask is used for questions the flags do not answer. Nil disables
	// prompting.
	Ask  Chooser
	JSON bool
	Out  io.Writer
}

// Prompt asks on the terminal with a promptui select.
func Prompt(prompt string, choices []string) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . | bold }}",
		Active:   "➜  {{ . | green }}",
		Inactive: "   {{ . }}",
		Selected: "✔ {{ . | faint }}",
	}
	s := promptui.Select{
		HideHelp:  true,
		Label:     wordwrap.String(prompt, promptWidth),
		Items:     choices,
		Templates: templates,
	}
	_, result, err := s.Run()
	if err != nil {
		return "", fmt.Errorf("plan: prompt failed: %w", err)
	}
	return result, nil
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("plan: no session")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	s := n.Session
	if n.Reset {
		s.ResetPlan()
	}
	v, err := s.RequestPlan()
	if err != nil {
		return err
	}
	study := append([]string(nil), n.Study...)
	for v.State == planner.Interview {
		if err := ctx.Err(); err != nil {
			return err
		}
		q := v.Question
		answer := ""
		switch q.Kind {
		case planner.SleepQuestion:
			answer = n.Wake
		case planner.StudyQuestion:
			if len(study) > 0 {
				answer, study = study[0], study[1:]
			}
		}
		if strings.TrimSpace(answer) == "" {
			if n.Ask == nil {
				return fmt.Errorf("%w: %s", ErrNoAnswer, q.Prompt)
			}
			if answer, err = n.Ask(q.Prompt, q.Choices); err != nil {
				return err
			}
		}
		if v, err = s.RecordAnswer(v.QuestionIndex, answer); err != nil {
			return err
		}
	}

	if n.JSON {
		if err := printers.JSON(out, v); err != nil {
			return err
		}
		return v.Err()
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	for i, q := range s.Schedule.Questions {
		if q.Answered {
			_, _ = fmt.Fprintf(out, "%s %s\n", color.New(color.Faint).Sprint(wordwrap.String(fmt.Sprintf("%d. %s", i+1, q.Prompt), promptWidth)), q.Answer)
		}
	}
	pp.NewLine()
	pp.Plan(v)
	return v.Err()
}
