// Package glyph defines the bullet journal markings and task groups.
package glyph

import (
	"fmt"
	"strings"
)

// Glyph describes how a marking is keyed, drawn and explained.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Marking is the bullet journal status of a task.
type Marking int

const (
	Incomplete Marking = iota
	Started
	Migrated
	Completed
	Cancelled
)

var markingNames = []string{"incomplete", "started", "migrated", "completed", "cancelled"}

// DefaultMarkings returns the legend in marking order.
func DefaultMarkings() []Glyph {
	return []Glyph{
		{Key: ".", Symbol: "•", Meaning: "task incomplete"},
		{Key: "/", Symbol: "◐", Meaning: "task started"},
		{Key: ">", Symbol: "›", Meaning: "task migrated to the next day"},
		{Key: "x", Symbol: "✘", Meaning: "task completed"},
		{Key: "~", Symbol: "⦵", Meaning: "task cancelled"},
	}
}

// Markings returns every marking in its fixed display order.
func Markings() []Marking {
	return []Marking{Incomplete, Started, Migrated, Completed, Cancelled}
}

// Valid reports whether m is one of the known markings.
func (m Marking) Valid() bool {
	return m >= Incomplete && m <= Cancelled
}

func (m Marking) Glyph() Glyph {
	if !m.Valid() {
		return Glyph{}
	}
	return DefaultMarkings()[m]
}

// Name is the lower case identifier used in flags and seed files.
func (m Marking) Name() string {
	if !m.Valid() {
		return fmt.Sprintf("marking(%d)", int(m))
	}
	return markingNames[m]
}

func (m Marking) String() string {
	return m.Glyph().String()
}

func (m Marking) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("glyph: unknown marking %d", int(m))
	}
	return []byte(m.Name()), nil
}

func (m *Marking) UnmarshalText(b []byte) error {
	parsed, err := ParseMarking(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMarking accepts a marking name or its key, case-insensitively.
func ParseMarking(raw string) (Marking, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Incomplete, nil
	}
	for _, m := range Markings() {
		if v == m.Name() || v == m.Glyph().Key {
			return m, nil
		}
	}
	return Incomplete, fmt.Errorf("glyph: unknown marking %q", raw)
}
