package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// LineBuffer is a single line of text with a cursor, shared by the cell
// editor, the command line and prompts. The cursor counts runes.
type LineBuffer struct {
	text   []rune
	cursor int
}

// NewLineBuffer returns a buffer holding s with the cursor at the end.
func NewLineBuffer(s string) *LineBuffer {
	b := &LineBuffer{}
	b.SetText(s)
	return b
}

// Text returns the buffer contents.
func (b *LineBuffer) Text() string { return string(b.text) }

// SetText replaces the contents and moves the cursor to the end.
func (b *LineBuffer) SetText(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// Cursor returns the cursor position in runes.
func (b *LineBuffer) Cursor() int { return b.cursor }

// Len returns the number of runes.
func (b *LineBuffer) Len() int { return len(b.text) }

// Insert types r at the cursor.
func (b *LineBuffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// Backspace deletes the rune before the cursor.
func (b *LineBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// Delete deletes the rune under the cursor.
func (b *LineBuffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// DeleteWordBackwards deletes the word before the cursor along with any
// spaces between it and the cursor.
func (b *LineBuffer) DeleteWordBackwards() {
	pos := b.cursor
	for pos > 0 && unicode.IsSpace(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.text[pos-1]) {
		pos--
	}
	b.text = append(b.text[:pos], b.text[b.cursor:]...)
	b.cursor = pos
}

// HandleKey applies an editing key and reports whether it was one.
// Enter and Escape are never consumed.
func (b *LineBuffer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.Backspace()
	case tcell.KeyDelete:
		b.Delete()
	case tcell.KeyLeft:
		b.cursor = max(b.cursor-1, 0)
	case tcell.KeyRight:
		b.cursor = min(b.cursor+1, len(b.text))
	case tcell.KeyHome, tcell.KeyCtrlA:
		b.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		b.cursor = len(b.text)
	case tcell.KeyCtrlU:
		b.text = append([]rune(nil), b.text[b.cursor:]...)
		b.cursor = 0
	case tcell.KeyCtrlK:
		b.text = b.text[:b.cursor]
	case tcell.KeyCtrlW:
		b.DeleteWordBackwards()
	case tcell.KeyRune:
		b.Insert(ev.Rune())
	default:
		return false
	}
	return true
}

// Render draws the buffer in width columns at (x, y), scrolled so the
// cursor stays in view.
func (b *LineBuffer) Render(screen *Screen, x, y, width int, textStyle, cursorStyle tcell.Style) {
	if width <= 0 {
		return
	}

	start := 0
	for StringWidth(string(b.text[start:b.cursor]))+1 > width && start < b.cursor {
		start++
	}

	col := 0
	for i := start; i < len(b.text) && col < width; i++ {
		w := RuneWidth(b.text[i])
		if col+w > width {
			break
		}
		style := textStyle
		if i == b.cursor {
			style = cursorStyle
		}
		screen.SetCell(x+col, y, b.text[i], style)
		col += max(w, 1)
	}
	if b.cursor >= len(b.text) && col < width {
		screen.SetCell(x+col, y, ' ', cursorStyle)
		col++
	}
	screen.FillRow(x+col, y, width-col, textStyle)
}
