// Package sorter orders the tasks of a day log for display and assigns
// their rows.
package sorter

import (
	"fmt"
	"strings"
)

// Mode selects the display order of a log.
type Mode string

const (
	ByName         Mode = "name"
	ByAssignedTime Mode = "assignedTime"
	ByTimeCreated  Mode = "timeCreated"
	ByGroup        Mode = "group"
	ByPriority     Mode = "priority"
	ByMarking      Mode = "marking"

	// Default is the mode a new session starts with.
	Default = ByTimeCreated
)

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{ByName, ByAssignedTime, ByTimeCreated, ByGroup, ByPriority, ByMarking}
}

var labels = map[Mode]string{
	ByName:         "Name",
	ByAssignedTime: "Assigned Time",
	ByTimeCreated:  "Time Created",
	ByGroup:        "Group",
	ByPriority:     "Priority",
	ByMarking:      "Bullet Marking",
}

// Label is the menu text for the mode.
func (m Mode) Label() string {
	if l, ok := labels[m]; ok {
		return l
	}
	return string(m)
}

// partitioned reports whether the mode groups tasks into fixed categories
// instead of ordering them by a key.
func (m Mode) partitioned() bool {
	return m == ByGroup || m == ByPriority || m == ByMarking
}

// ParseMode matches a mode name case-insensitively. Dashes, underscores
// and spaces are ignored so "assigned-time" and "Time Created" both work.
func ParseMode(raw string) (Mode, error) {
	norm := func(s string) string {
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	}
	v := norm(raw)
	if v == "" {
		return Default, nil
	}
	for _, m := range Modes() {
		if norm(string(m)) == v || norm(m.Label()) == v {
			return m, nil
		}
	}
	return Default, fmt.Errorf("sorter: unknown sort mode %q", raw)
}
