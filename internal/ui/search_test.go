package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
)

func typeInto(s *Search, text string) {
	for _, r := range text {
		s.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestSearchIncremental(t *testing.T) {
	s := NewSearch()
	s.SetDataSource(memtable.NewFromStrings([]string{"Year", "Title"}, [][]string{
		{"1968", "Locus Solus"},
		{"1981", "Lanark"},
		{"1992", "Lanark revisited"},
	}))
	s.Start()
	if !s.IsActive() {
		t.Fatal("search should be active")
	}

	typeInto(s, "lanark")
	if got := s.Matches(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("matches = %v", got)
	}

	if !s.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Errorf("Enter with matches should report success")
	}
	if s.IsActive() {
		t.Errorf("Enter should leave search mode")
	}

	if row, _ := s.CurrentMatch(); row != 1 {
		t.Errorf("current = %d", row)
	}
	if row, _ := s.NextMatch(); row != 2 {
		t.Errorf("next = %d", row)
	}
	if row, _ := s.NextMatch(); row != 1 {
		t.Errorf("next should wrap, got %d", row)
	}
	if row, _ := s.PrevMatch(); row != 2 {
		t.Errorf("prev should wrap, got %d", row)
	}
}

func TestSearchParseError(t *testing.T) {
	s := NewSearch()
	s.SetDataSource(memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}}))
	s.Start()
	typeInto(s, "(x")
	if s.ParseError() == "" {
		t.Errorf("unbalanced parenthesis should be reported")
	}
	if s.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Errorf("a broken query has no matches")
	}
}

func TestSearchHistory(t *testing.T) {
	s := NewSearch()
	s.SetDataSource(memtable.NewFromStrings([]string{"A"}, [][]string{{"x"}}))
	s.Start()
	typeInto(s, "x")
	s.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	s.Start()
	s.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if s.Query() != "x" {
		t.Errorf("Up should recall the last search, got %q", s.Query())
	}
	s.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if s.IsActive() {
		t.Errorf("Escape should stop the search")
	}
}
