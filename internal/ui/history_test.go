package ui

import (
	"path/filepath"
	"testing"

	"github.com/pstuifzand/tui-datagrid/internal/history"
)

func TestHistoryAddMovesDuplicates(t *testing.T) {
	h := NewHistory(3)
	for _, e := range []string{"a", "b", "", "a", "c", "d"} {
		h.Add(e)
	}
	got := h.GetAll()
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Previous(); ok {
		t.Errorf("empty history should have no previous entry")
	}
	h.Add("one")
	h.Add("two")

	h.SetTemporary("typed")
	if e, _ := h.Previous(); e != "two" {
		t.Errorf("got %q", e)
	}
	if e, _ := h.Previous(); e != "one" {
		t.Errorf("got %q", e)
	}
	if e, _ := h.Previous(); e != "one" {
		t.Errorf("Previous should stop at the oldest entry, got %q", e)
	}
	if e, _ := h.Next(); e != "two" {
		t.Errorf("got %q", e)
	}
	if e, ok := h.Next(); !ok || e != "typed" {
		t.Errorf("got %q, %v", e, ok)
	}
	if h.IsNavigating() {
		t.Errorf("walking past the newest entry should stop navigating")
	}
}

func TestHistoryPersists(t *testing.T) {
	m, err := history.NewManagerAt(filepath.Join(t.TempDir(), "h"))
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHistoryWithManager(5, m, "command.toml")
	if err != nil {
		t.Fatal(err)
	}
	h.Add("export out.md")

	again, err := NewHistoryWithManager(5, m, "command.toml")
	if err != nil {
		t.Fatal(err)
	}
	if all := again.GetAll(); len(all) != 1 || all[0] != "export out.md" {
		t.Errorf("reloaded history = %v", all)
	}
}
