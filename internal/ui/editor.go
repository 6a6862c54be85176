package ui

import (
	"github.com/gdamore/tcell/v2"
)

// EditResult tells the grid what a key did to an edit in progress.
type EditResult int

const (
	EditContinue EditResult = iota
	EditCommit
	EditCancel
)

// CellEditor edits the value of one grid cell in place.
type CellEditor struct {
	row, col int
	original string
	buf      *LineBuffer
}

// NewCellEditor starts editing (irow, icol), which currently holds value.
func NewCellEditor(irow, icol int, value string) *CellEditor {
	return &CellEditor{row: irow, col: icol, original: value, buf: NewLineBuffer(value)}
}

// Cell returns the cell being edited.
func (e *CellEditor) Cell() (irow, icol int) { return e.row, e.col }

// Text returns the edited value.
func (e *CellEditor) Text() string { return e.buf.Text() }

// SetText replaces the edited value.
func (e *CellEditor) SetText(s string) { e.buf.SetText(s) }

// Changed reports whether the value differs from the one editing began with.
func (e *CellEditor) Changed() bool { return e.buf.Text() != e.original }

// HandleKey applies ev. Enter and Tab commit, Escape cancels.
func (e *CellEditor) HandleKey(ev *tcell.EventKey) EditResult {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyTab:
		return EditCommit
	case tcell.KeyEscape:
		return EditCancel
	}
	e.buf.HandleKey(ev)
	return EditContinue
}

// Render draws the editor over a cell width columns wide.
func (e *CellEditor) Render(screen *Screen, x, y, width int) {
	e.buf.Render(screen, x, y, width, screen.EditorStyle(), screen.EditorCursorStyle())
}
