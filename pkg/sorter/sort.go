package sorter

import (
	"sort"
	"strings"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/journal"
)

// Sort orders the log's tasks by mode and rewrites their rows.
func Sort(l *journal.DayLog, mode Mode) []*entry.Task {
	return AssignRows(Order(l.Tasks(), mode))
}

// Order returns tasks in display order for mode. Key modes build the result
// by binary-search insertion, placing a task after any equal keys; partition
// modes append each fixed category in turn, keeping encounter order inside
// a category. tasks itself is not reordered.
func Order(tasks []*entry.Task, mode Mode) []*entry.Task {
	if mode.partitioned() {
		return partition(tasks, mode)
	}
	cmp := comparator(mode)
	out := make([]*entry.Task, 0, len(tasks))
	for _, t := range tasks {
		i := len(out)
		if !(mode == ByAssignedTime && !t.Assigned()) {
			i = sort.Search(len(out), func(j int) bool {
				return cmp(t, out[j]) < 0
			})
		}
		out = append(out, nil)
		copy(out[i+1:], out[i:])
		out[i] = t
	}
	return out
}

// AssignRows writes each task's row. Tasks after the selected one move down
// a row to leave space for its dropdown.
func AssignRows(seq []*entry.Task) []*entry.Task {
	shift := 0
	for i, t := range seq {
		t.Row = i + shift
		t.ShiftedBy = shift
		if t.Selected {
			shift = 1
		}
	}
	return seq
}

func comparator(mode Mode) func(a, b *entry.Task) int {
	switch mode {
	case ByName:
		return func(a, b *entry.Task) int {
			return strings.Compare(a.Name, b.Name)
		}
	case ByAssignedTime:
		return func(a, b *entry.Task) int {
			switch {
			case a.Assigned() && !b.Assigned():
				return -1
			case !a.Assigned() && b.Assigned():
				return 1
			case !a.Assigned() && !b.Assigned():
				return 0
			}
			return int(*a.AssignedTime - *b.AssignedTime)
		}
	default:
		return func(a, b *entry.Task) int {
			return a.Created.Compare(b.Created.Time)
		}
	}
}

func partition(tasks []*entry.Task, mode Mode) []*entry.Task {
	var buckets []func(*entry.Task) bool
	switch mode {
	case ByGroup:
		named := make(map[glyph.Group]bool)
		for _, g := range glyph.Groups() {
			g := g
			named[g] = true
			buckets = append(buckets, func(t *entry.Task) bool { return t.Group == g })
		}
		buckets = append(buckets, func(t *entry.Task) bool { return !named[t.Group] })
	case ByPriority:
		buckets = []func(*entry.Task) bool{
			func(t *entry.Task) bool { return t.Priority },
			func(t *entry.Task) bool { return !t.Priority },
		}
	case ByMarking:
		for _, m := range glyph.Markings() {
			m := m
			buckets = append(buckets, func(t *entry.Task) bool { return t.Marking == m })
		}
	}
	out := make([]*entry.Task, 0, len(tasks))
	for _, match := range buckets {
		for _, t := range tasks {
			if match(t) {
				out = append(out, t)
			}
		}
	}
	return out
}
