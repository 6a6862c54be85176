package ui

import (
	"github.com/gdamore/tcell/v2"
)

// PromptDialog asks for a line of text in a box drawn over the screen. It
// runs its own event loop until the user presses Enter or Escape.
type PromptDialog struct {
	screen *Screen
	// Redraw repaints what lies beneath the dialog.
	Redraw func()
	// NextEvent supplies input. It defaults to polling the screen; an app
	// that polls on its own goroutine hands its event channel in here.
	NextEvent func() tcell.Event
	history   *History
}

// NewPromptDialog returns a dialog drawing on screen.
func NewPromptDialog(screen *Screen, redraw func()) *PromptDialog {
	return &PromptDialog{screen: screen, Redraw: redraw, history: NewHistory(20)}
}

// Prompt shows message under title with initial in the input line. ok is
// false when the user pressed Escape.
func (p *PromptDialog) Prompt(message, title, initial string) (string, bool) {
	buf := NewLineBuffer(initial)
	p.history.Reset()

	for {
		p.render(message, title, buf)
		next := p.NextEvent
		if next == nil {
			next = p.screen.PollEvent
		}
		raw := next()
		if raw == nil {
			return "", false
		}
		ev, ok := raw.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			p.history.Add(buf.Text())
			return buf.Text(), true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return "", false
		case tcell.KeyUp:
			if !p.history.IsNavigating() {
				p.history.SetTemporary(buf.Text())
			}
			if prev, ok := p.history.Previous(); ok {
				buf.SetText(prev)
			}
		case tcell.KeyDown:
			if next, ok := p.history.Next(); ok {
				buf.SetText(next)
			}
		default:
			buf.HandleKey(ev)
		}
	}
}

func (p *PromptDialog) render(message, title string, buf *LineBuffer) {
	if p.Redraw != nil {
		p.Redraw()
	}
	s := p.screen
	width, height := s.Size()

	boxWidth := min(max(StringWidth(message), StringWidth(title), 30)+4, width)
	x := (width - boxWidth) / 2
	y := max(height/2-3, 0)

	border := s.HelpBorderStyle()
	content := s.HelpStyle()
	for row := 0; row < 5; row++ {
		s.FillRow(x, y+row, boxWidth, content)
		s.SetCell(x, y+row, '│', border)
		s.SetCell(x+boxWidth-1, y+row, '│', border)
	}
	for col := x; col < x+boxWidth; col++ {
		s.SetCell(col, y, '─', border)
		s.SetCell(col, y+4, '─', border)
	}
	s.SetCell(x, y, '┌', border)
	s.SetCell(x+boxWidth-1, y, '┐', border)
	s.SetCell(x, y+4, '└', border)
	s.SetCell(x+boxWidth-1, y+4, '┘', border)

	s.DrawStringLimited(x+2, y, " "+title+" ", boxWidth-4, s.HelpTitleStyle())
	s.DrawStringLimited(x+2, y+1, message, boxWidth-4, content)
	buf.Render(s, x+2, y+2, boxWidth-4, s.EditorStyle(), s.EditorCursorStyle())
	s.Show()
}
