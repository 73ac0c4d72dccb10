package commands

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"key", "list", "mark", "plan", "info", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %q command, got %v (%v)", name, cmd, err)
		}
	}
	for _, flag := range []string{"file", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("expected persistent --%s", flag)
		}
	}
	list, _, _ := root.Find([]string{"list"})
	for _, flag := range []string{"on", "by", "select", "json", "month"} {
		if list.Flags().Lookup(flag) == nil {
			t.Fatalf("expected list --%s", flag)
		}
	}
}
