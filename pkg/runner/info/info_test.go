package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/daybook/pkg/config"
)

func TestInfoPrintsResolvedConfig(t *testing.T) {
	t.Setenv(config.PathEnv, t.TempDir())
	c, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := (&Info{Config: c, Out: buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"DAYBOOK_CONFIG_PATH found on env", "using defaults", "sort: timeCreated", "sleepHours: 8"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	c := &config.Config{Sort: "name", Plan: config.Plan{Start: "0:00"}}
	buf := &bytes.Buffer{}
	if err := (&Info{Config: c, JSON: true, Out: buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), `"sort": "name"`) {
		t.Fatalf("unexpected JSON %s", buf.String())
	}
}
