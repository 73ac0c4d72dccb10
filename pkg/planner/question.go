package planner

import (
	"fmt"
	"strings"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Kind tells study questions from the sleep question.
type Kind int

const (
	SleepQuestion Kind = iota
	StudyQuestion
)

func (k Kind) String() string {
	if k == StudyQuestion {
		return "study"
	}
	return "sleep"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const (
	Yes = "Yes"
	No  = "No"

	sleepPrompt = "What time do you plan on waking up tomorrow?"
	studyPrompt = "Do you want to find time to study for tomorrow's %s?"
)

// Question is one interview prompt. Answer is empty until Answered.
type Question struct {
	Kind     Kind     `json:"kind"`
	Prompt   string   `json:"prompt"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer,omitempty"`
	Answered bool     `json:"answered"`
	// Subject is the exam a study question asks about.
	Subject *entry.Task `json:"-"`
}

func newSleepQuestion(choices []timeutil.TimeOfDay) *Question {
	q := &Question{Kind: SleepQuestion, Prompt: sleepPrompt}
	for _, c := range choices {
		q.Choices = append(q.Choices, c.String())
	}
	return q
}

func newStudyQuestion(exam *entry.Task) *Question {
	return &Question{
		Kind:    StudyQuestion,
		Prompt:  fmt.Sprintf(studyPrompt, exam.Name),
		Choices: []string{Yes, No},
		Subject: exam,
	}
}

// match returns the choice the raw answer selects. Choices compare
// case-insensitively; sleep answers may also be written in any form
// timeutil.ParseTimeOfDay accepts.
func (q *Question) match(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range q.Choices {
		if strings.EqualFold(c, raw) {
			return c, true
		}
	}
	switch q.Kind {
	case StudyQuestion:
		switch strings.ToLower(raw) {
		case "y":
			return Yes, true
		case "n":
			return No, true
		}
	case SleepQuestion:
		at, err := timeutil.ParseTimeOfDay(raw)
		if err != nil {
			return "", false
		}
		for _, c := range q.Choices {
			if c == at.String() {
				return c, true
			}
		}
	}
	return "", false
}

// Wants reports a yes answer to a study question.
func (q *Question) Wants() bool {
	return q.Kind == StudyQuestion && q.Answered && q.Answer == Yes
}
