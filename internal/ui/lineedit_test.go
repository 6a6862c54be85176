package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLineBufferEditing(t *testing.T) {
	b := NewLineBuffer("Yer")
	b.HandleKey(key(tcell.KeyLeft))
	b.HandleKey(runeKey('a'))
	if b.Text() != "Year" || b.Cursor() != 3 {
		t.Fatalf("got %q cursor %d", b.Text(), b.Cursor())
	}

	b.HandleKey(key(tcell.KeyHome))
	b.HandleKey(key(tcell.KeyDelete))
	if b.Text() != "ear" {
		t.Errorf("Delete at start: got %q", b.Text())
	}

	b.HandleKey(key(tcell.KeyEnd))
	b.HandleKey(key(tcell.KeyBackspace2))
	if b.Text() != "ea" {
		t.Errorf("Backspace at end: got %q", b.Text())
	}
}

func TestLineBufferMultibyte(t *testing.T) {
	b := NewLineBuffer("café")
	b.Backspace()
	if b.Text() != "caf" {
		t.Errorf("got %q, want %q", b.Text(), "caf")
	}
	b.Insert('中')
	if b.Text() != "caf中" || b.Len() != 4 {
		t.Errorf("got %q len %d", b.Text(), b.Len())
	}
}

func TestLineBufferKills(t *testing.T) {
	b := NewLineBuffer("insrow  12")
	b.DeleteWordBackwards()
	if b.Text() != "insrow  " {
		t.Errorf("Ctrl-W: got %q", b.Text())
	}
	b.DeleteWordBackwards()
	if b.Text() != "" {
		t.Errorf("second Ctrl-W: got %q", b.Text())
	}

	b.SetText("abcdef")
	b.cursor = 2
	b.HandleKey(key(tcell.KeyCtrlK))
	if b.Text() != "ab" {
		t.Errorf("Ctrl-K: got %q", b.Text())
	}
	b.SetText("abcdef")
	b.cursor = 2
	b.HandleKey(key(tcell.KeyCtrlU))
	if b.Text() != "cdef" || b.Cursor() != 0 {
		t.Errorf("Ctrl-U: got %q cursor %d", b.Text(), b.Cursor())
	}
}

func TestLineBufferIgnoresEnter(t *testing.T) {
	b := NewLineBuffer("x")
	if b.HandleKey(key(tcell.KeyEnter)) || b.HandleKey(key(tcell.KeyEscape)) {
		t.Errorf("Enter and Escape belong to the caller")
	}
}
