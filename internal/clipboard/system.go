// Package clipboard connects the grid's copy and paste to the desktop
// clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/pstuifzand/tui-datagrid/internal/export"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("system clipboard is not available")

// System reads and writes the desktop clipboard.
type System struct {
	read  func() (string, error)
	write func(string) error
}

// NewSystem returns a clipboard backed by the platform's clipboard tools.
func NewSystem() *System {
	return &System{read: clipboard.ReadAll, write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// WriteText puts text on the clipboard.
func (s *System) WriteText(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return s.write(text)
}

// ReadText returns the clipboard contents.
func (s *System) ReadText() (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	return s.read()
}

// ReadTSV reads the clipboard as tab-separated cells, the way other
// spreadsheets copy them.
func (s *System) ReadTSV() ([][]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	text, err := s.read()
	if err != nil {
		return nil, err
	}
	return export.FromTSV(text), nil
}
