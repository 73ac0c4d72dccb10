package list

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/sorter"
)

var now = time.Date(2026, 10, 14, 7, 0, 0, 0, time.UTC)

func init() {
	color.NoColor = true
}

func TestListJSON(t *testing.T) {
	s := app.New(app.WithClock(func() time.Time { return now }))
	s.CreateTask("b", 1, 0)
	s.CreateTask("a", 1, 0)
	buf := &bytes.Buffer{}
	l := List{Session: s, Mode: sorter.ByName, Select: "a", JSON: true, Out: buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := struct {
		Date  string
		Sort  string
		Tasks []struct {
			Name      string
			Row       int
			ShiftedBy int
			Selected  bool
		}
	}{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}
	if got.Date != "October 14, 2026" || got.Sort != "name" || len(got.Tasks) != 2 {
		t.Fatalf("unexpected listing %+v", got)
	}
	if got.Tasks[0].Name != "a" || !got.Tasks[0].Selected || got.Tasks[1].Row != 2 || got.Tasks[1].ShiftedBy != 1 {
		t.Fatalf("unexpected rows %+v", got.Tasks)
	}
}

func TestListOtherDay(t *testing.T) {
	s := app.New(app.WithClock(func() time.Time { return now }))
	on := now.AddDate(0, 0, 2)
	buf := &bytes.Buffer{}
	l := List{Session: s, On: &on, Month: true, Out: buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Current.Title() != "October 16, 2026" {
		t.Fatalf("expected to navigate, current is %s", s.Current.Title())
	}
	if err := (&List{Session: s, Select: "missing", Out: buf}).Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
