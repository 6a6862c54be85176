package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-datagrid/internal/theme"
)

// Screen wraps a tcell screen with clipped drawing and theme styles.
type Screen struct {
	ts    tcell.Screen
	Theme *theme.Theme
}

// NewScreenWithTheme opens the terminal screen.
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewScreenFrom(ts, t)
}

// NewScreenFrom initializes ts and wraps it. Tests pass a simulation
// screen. A nil theme selects the default.
func NewScreenFrom(ts tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if t == nil {
		t = theme.Default()
	}
	return &Screen{ts: ts, Theme: t}, nil
}

func (s *Screen) Close() error {
	s.ts.Fini()
	return nil
}

// Suspend hands the terminal back, e.g. to run an external editor.
func (s *Screen) Suspend() error { return s.ts.Suspend() }

func (s *Screen) Resume() error { return s.ts.Resume() }

func (s *Screen) Clear() { s.ts.Clear() }

func (s *Screen) Show() { s.ts.Show() }

func (s *Screen) EnableMouse() { s.ts.EnableMouse() }

func (s *Screen) PollEvent() tcell.Event { return s.ts.PollEvent() }

// Size reports the current terminal size.
func (s *Screen) Size() (int, int) { return s.ts.Size() }

func (s *Screen) GetWidth() int {
	w, _ := s.ts.Size()
	return w
}

// SetCell draws r at (x, y). Positions off screen are ignored.
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	w, h := s.ts.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.ts.SetContent(x, y, r, nil, style)
}

// DrawString draws text at (x, y) and returns the number of columns used.
// Wide runes advance two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		if w := RuneWidth(r); w > 0 {
			s.SetCell(x+col, y, r, style)
			col += w
		}
	}
	return col
}

// DrawStringLimited draws at most maxWidth columns of text.
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// FillRow blanks width cells starting at (x, y).
func (s *Screen) FillRow(x, y, width int, style tcell.Style) {
	for i := range width {
		s.SetCell(x+i, y, ' ', style)
	}
}

func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

func (s *Screen) colors() *theme.Colors { return &s.Theme.Colors }

// GridLabelStyle is used for the column label row.
func (s *Screen) GridLabelStyle() tcell.Style {
	c := s.colors()
	return theme.ColorPairToStyle(c.GridLabelText, c.GridLabel).Bold(true)
}

// GridRowNumberStyle is used for the row number gutter.
func (s *Screen) GridRowNumberStyle() tcell.Style {
	c := s.colors()
	return theme.ColorPairToStyle(c.GridRowNumber, c.GridLabel)
}

func (s *Screen) GridSeparatorStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().GridSeparator)
}

// GridCellStyle converts a cell's colors to a tcell style. Selected cells
// are tinted toward the selection color and the cursor cell is reversed.
func (s *Screen) GridCellStyle(bg, fg tcell.Color, bold, underline, selected, cursor bool) tcell.Style {
	if selected {
		bg = theme.Blend(bg, s.colors().GridSelection, 0.35)
	}
	return theme.ColorPairToStyle(fg, bg).Bold(bold).Underline(underline).Reverse(cursor)
}

// Editor and command line.

func (s *Screen) EditorStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().EditorText)
}

func (s *Screen) EditorCursorStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().EditorCursor).Reverse(true)
}

func (s *Screen) CommandPromptStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().CommandPrompt)
}

func (s *Screen) CommandTextStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().CommandText)
}

func (s *Screen) CommandCursorStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().CommandCursor).Reverse(true)
}

// Help overlay and prompt boxes share the help background.

func (s *Screen) HelpStyle() tcell.Style {
	c := s.colors()
	return theme.ColorPairToStyle(c.HelpContent, c.HelpBackground)
}

func (s *Screen) HelpBorderStyle() tcell.Style {
	c := s.colors()
	return theme.ColorPairToStyle(c.HelpBorder, c.HelpBackground)
}

func (s *Screen) HelpTitleStyle() tcell.Style {
	c := s.colors()
	return theme.ColorPairToStyle(c.HelpTitle, c.HelpBackground).Bold(true)
}

// Status line and header.

func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().StatusMode).Bold(true)
}

func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().StatusMessage)
}

func (s *Screen) StatusModifiedStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().StatusModified)
}

func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorToStyle(s.colors().HeaderTitle).Bold(true)
}
