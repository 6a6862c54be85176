package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func newFake() (*System, *string) {
	var buf string
	s := &System{
		read:  func() (string, error) { return buf, nil },
		write: func(text string) error { buf = text; return nil },
	}
	return s, &buf
}

func TestSystemRoundTrip(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility")
	}
	s, buf := newFake()
	if err := s.WriteText("a\tb\nc\td\n"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if *buf != "a\tb\nc\td\n" {
		t.Errorf("clipboard = %q", *buf)
	}

	cells, err := s.ReadTSV()
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}
	if len(cells) != 2 || cells[1][1] != "d" {
		t.Errorf("ReadTSV = %v", cells)
	}
}

func TestSystemReadError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility")
	}
	boom := errors.New("boom")
	s := &System{read: func() (string, error) { return "", boom }}
	if _, err := s.ReadTSV(); !errors.Is(err, boom) {
		t.Errorf("ReadTSV error = %v", err)
	}
}

func TestSystemUnavailable(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard utility present")
	}
	s, _ := newFake()
	if err := s.WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("WriteText error = %v", err)
	}
}
