package glyph

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Group is the optional category a task belongs to. The zero value is
// Ungrouped.
type Group string

const (
	Ungrouped       Group = ""
	School          Group = "school"
	Extracurricular Group = "extracurricular"
	Health          Group = "health"
	Personal        Group = "personal"
)

// groupColors maps named groups to their swatch (khaki, mediumpurple,
// lightcyan, palegreen).
var groupColors = map[Group]string{
	School:          "#f0e68c",
	Extracurricular: "#9370db",
	Health:          "#e0ffff",
	Personal:        "#98fb98",
}

// Groups returns the named groups in alphabetical order.
func Groups() []Group {
	return []Group{Extracurricular, Health, Personal, School}
}

// Next cycles through the named groups and then back to Ungrouped.
func (g Group) Next() Group {
	order := append(Groups(), Ungrouped)
	for i, candidate := range order {
		if candidate == g {
			return order[(i+1)%len(order)]
		}
	}
	return Ungrouped
}

// Label is the capitalised group name, or "None" when ungrouped.
func (g Group) Label() string {
	if g == Ungrouped {
		return "None"
	}
	return strings.ToUpper(string(g[:1])) + string(g[1:])
}

// Color returns the group swatch. Ungrouped tasks report ok=false.
func (g Group) Color() (colorful.Color, bool) {
	hex, ok := groupColors[g]
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ParseGroup accepts a group name; "", "none" and "ungrouped" map to
// Ungrouped.
func ParseGroup(raw string) (Group, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "none", "ungrouped":
		return Ungrouped, nil
	}
	for _, g := range Groups() {
		if string(g) == v {
			return g, nil
		}
	}
	return Ungrouped, fmt.Errorf("glyph: unknown group %q", raw)
}
