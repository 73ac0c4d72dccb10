package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestKey(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&Key{Out: buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"Meaning", "Extracurricular", "#f0e68c", "None"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in legend:\n%s", want, buf.String())
		}
	}
}

func TestKeyJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&Key{JSON: true, Out: buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), `"markings"`) || !strings.Contains(buf.String(), `"school"`) {
		t.Fatalf("unexpected JSON %s", buf.String())
	}
}
