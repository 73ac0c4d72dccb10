package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("0e5a5a8c  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Swatch is a coloured block for the group, blank when ungrouped.
func Swatch(g glyph.Group) string {
	c, ok := g.Color()
	if !ok {
		return " "
	}
	return termenv.String("■").Foreground(termenv.ColorProfile().Color(c.Hex())).String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Tasks prints a display list in row order. The row under a selected task
// shows the marking choices its dropdown offers.
func (pp *PrettyPrint) Tasks(tasks ...*entry.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	faint := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	bang := color.New(color.FgHiRed, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		cells := []interface{}{faint.Sprintf("%2d", t.Row)}
		if pp.ShowID {
			cells = append(cells, y.Sprint(shortID(t.ID)))
		}
		priority := " "
		if t.Priority {
			priority = bang.Sprint("!")
		}
		at := ""
		if t.Assigned() {
			at = t.AssignedTime.String()
		}
		name := t.Name
		if t.Selected {
			name = color.New(color.Bold).Sprint(name)
		}
		if t.Marking == glyph.Cancelled {
			name = color.New(color.CrossedOut, color.Faint).Sprint(t.Name)
		}
		cells = append(cells, priority+t.Marking.Glyph().Symbol, Swatch(t.Group), name, timeutil.FormatSpan(t.Duration), at)
		tbl.AddRow(cells...)
		if t.Selected {
			tbl.AddRow(pp.dropdown(t)...)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) dropdown(t *entry.Task) []interface{} {
	keys := make([]string, 0, len(glyph.Markings()))
	for _, m := range glyph.Markings() {
		if m != t.Marking {
			keys = append(keys, m.Glyph().Key)
		}
	}
	cells := []interface{}{color.New(color.Faint).Sprintf("%2d", t.Row+1)}
	if pp.ShowID {
		cells = append(cells, "")
	}
	return append(cells, " ↳", "", color.New(color.Italic, color.FgCyan).Sprint("mark: "+strings.Join(keys, " ")), "", "")
}

// Legend prints the markings and groups.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Mark"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultMarkings() {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")

	groups := uitable.New()
	groups.Separator = "  "
	groups.AddRow(bold.Sprint("   "), bold.Sprint("Group"), bold.Sprint("Colour"))
	for _, g := range glyph.Groups() {
		c, _ := g.Color()
		groups.AddRow("  "+Swatch(g), g.Label(), c.Hex())
	}
	groups.AddRow("   ", glyph.Ungrouped.Label(), "")
	_, _ = fmt.Fprintln(pp.out(), groups)
}

// Question prints an interview prompt and its choices.
func (pp *PrettyPrint) Question(index int, q *planner.Question) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Fprintf(pp.out(), "%d. %s\n", index+1, q.Prompt)
	_, _ = f.Fprintf(pp.out(), "   %s\n", strings.Join(q.Choices, " | "))
}

// Plan prints the planning state; a ready plan is a table of periods.
func (pp *PrettyPrint) Plan(v app.PlanView) {
	switch v.State {
	case planner.Empty:
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), " no plan")
	case planner.Interview:
		if v.Question != nil {
			pp.Question(v.QuestionIndex, v.Question)
		}
	case planner.Infeasible:
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(pp.out(), "These tasks do not fit in the day. Shorten or remove some and plan again.")
	case planner.Ready:
		pp.TitleWithCount("Plan for "+v.Date, len(v.Periods))
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, t := range v.Periods {
			start, end, _ := t.Interval()
			tbl.AddRow(start.String(), "-", end.String(), Swatch(t.Group), t.Name, color.New(color.Faint).Sprint(timeutil.Describe(t.Duration)))
		}
		tbl.RightAlign(0)
		tbl.RightAlign(2)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		if v.SleepTime != nil {
			_, _ = color.New(color.Faint).Fprintf(pp.out(), "\nBedtime %s\n", v.SleepTime)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// JSON writes v indented.
func JSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
