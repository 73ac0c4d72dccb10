package glyph

import "testing"

func TestParseMarking(t *testing.T) {
	tests := map[string]Marking{
		"":          Incomplete,
		"migrated":  Migrated,
		"Completed": Completed,
		">":         Migrated,
		"~":         Cancelled,
		" started ": Started,
	}
	for in, want := range tests {
		got, err := ParseMarking(in)
		if err != nil {
			t.Fatalf("ParseMarking(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMarking(%q) = %v, want %v", in, got.Name(), want.Name())
		}
	}
	if _, err := ParseMarking("done-ish"); err == nil {
		t.Fatalf("expected error for unknown marking")
	}
}

func TestMarkingTextRoundTrip(t *testing.T) {
	b, err := Cancelled.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m Marking
	if err := m.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != Cancelled {
		t.Fatalf("expected cancelled, got %s", m.Name())
	}
}

func TestGroupNextCycles(t *testing.T) {
	g := Ungrouped
	seen := make([]Group, 0, 5)
	for i := 0; i < 5; i++ {
		g = g.Next()
		seen = append(seen, g)
	}
	want := []Group{Extracurricular, Health, Personal, School, Ungrouped}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestGroupColor(t *testing.T) {
	if _, ok := Ungrouped.Color(); ok {
		t.Fatalf("ungrouped should have no colour")
	}
	c, ok := School.Color()
	if !ok {
		t.Fatalf("school should have a colour")
	}
	if c.Hex() != "#f0e68c" {
		t.Fatalf("unexpected school colour %s", c.Hex())
	}
	if School.Label() != "School" || Ungrouped.Label() != "None" {
		t.Fatalf("unexpected labels %q %q", School.Label(), Ungrouped.Label())
	}
}
