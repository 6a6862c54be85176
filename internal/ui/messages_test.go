package ui

import (
	"testing"
	"time"
)

func TestStatusLog(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewStatusLog(2)
	l.now = func() time.Time { return now }

	if _, ok := l.Current(time.Second); ok {
		t.Errorf("empty log should have no current message")
	}

	l.Add("Saved")
	l.Add("")
	l.Add("Inserted 3 rows")
	l.Add("Deleted column Year")
	if l.Count() != 2 {
		t.Errorf("Count = %d, want 2", l.Count())
	}
	newest := l.Newest()
	if newest[0].Text != "Deleted column Year" || newest[1].Text != "Inserted 3 rows" {
		t.Errorf("Newest = %v", newest)
	}

	if msg, ok := l.Current(3 * time.Second); !ok || msg != "Deleted column Year" {
		t.Errorf("Current = %q, %v", msg, ok)
	}
	now = now.Add(4 * time.Second)
	if _, ok := l.Current(3 * time.Second); ok {
		t.Errorf("old messages should expire")
	}
}
