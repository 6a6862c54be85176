package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-datagrid/internal/grid"
	"github.com/pstuifzand/tui-datagrid/internal/history"
	"github.com/pstuifzand/tui-datagrid/internal/search"
)

// Search is the incremental row search bar.
type Search struct {
	active     bool
	buf        *LineBuffer
	history    *History
	ds         grid.DataSource
	filterExpr search.FilterExpr
	parseError string
	matches    []int // Row indices that match the query
	current    int   // Index into matches
}

// NewSearch creates a new Search without history persistence
func NewSearch() *Search {
	return &Search{buf: NewLineBuffer(""), history: NewHistory(50)}
}

// NewSearchWithHistory creates a Search whose history is kept in
// search.toml. A history file that cannot be read starts empty.
func NewSearchWithHistory(manager *history.Manager) *Search {
	h, err := NewHistoryWithManager(50, manager, "search.toml")
	if err != nil {
		h = NewHistory(50)
	}
	return &Search{buf: NewLineBuffer(""), history: h}
}

// SetDataSource sets the rows to search and reruns the current query.
func (s *Search) SetDataSource(ds grid.DataSource) {
	s.ds = ds
	s.updateResults()
}

// Start starts search mode
func (s *Search) Start() {
	s.active = true
	s.buf.SetText("")
	s.matches = nil
	s.current = 0
	s.parseError = ""
	s.history.Reset()
}

// Stop stops search mode
func (s *Search) Stop() {
	s.active = false
	s.history.Reset()
}

// IsActive returns whether search mode is active
func (s *Search) IsActive() bool {
	return s.active
}

// HandleKey handles a key in search mode. It returns true when the search
// was accepted with at least one match.
func (s *Search) HandleKey(ev *tcell.EventKey) bool {
	if !s.active {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.Stop()
	case tcell.KeyEnter:
		s.updateResults()
		s.history.Add(s.buf.Text())
		s.Stop()
		return len(s.matches) > 0
	case tcell.KeyUp:
		if !s.history.IsNavigating() {
			s.history.SetTemporary(s.buf.Text())
		}
		if prev, ok := s.history.Previous(); ok {
			s.buf.SetText(prev)
			s.updateResults()
		}
	case tcell.KeyDown:
		if next, ok := s.history.Next(); ok {
			s.buf.SetText(next)
			s.updateResults()
		}
	default:
		before := s.buf.Text()
		s.buf.HandleKey(ev)
		if s.buf.Text() != before {
			s.updateResults()
		}
	}
	return false
}

func (s *Search) updateResults() {
	s.matches = nil
	s.current = 0
	s.parseError = ""

	expr, err := search.ParseQuery(s.buf.Text())
	if err != nil {
		s.parseError = err.Error()
		s.filterExpr = nil
		return
	}
	s.filterExpr = expr
	if s.ds != nil && s.buf.Text() != "" {
		s.matches = search.GetMatchingRows(s.ds, expr)
	}
}

// Query returns the current query text.
func (s *Search) Query() string {
	return s.buf.Text()
}

// Expr returns the parsed query, or nil when it does not parse.
func (s *Search) Expr() search.FilterExpr {
	return s.filterExpr
}

// Matches returns the matching row indices.
func (s *Search) Matches() []int {
	return s.matches
}

// NextMatch moves to the next match and returns its row, wrapping around.
func (s *Search) NextMatch() (int, bool) {
	if len(s.matches) == 0 {
		return -1, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.matches[s.current], true
}

// PrevMatch moves to the previous match and returns its row, wrapping around.
func (s *Search) PrevMatch() (int, bool) {
	if len(s.matches) == 0 {
		return -1, false
	}
	s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
	return s.matches[s.current], true
}

// CurrentMatch returns the row of the current match.
func (s *Search) CurrentMatch() (int, bool) {
	if len(s.matches) == 0 {
		return -1, false
	}
	return s.matches[s.current], true
}

// ParseError returns the last parse error, if any
func (s *Search) ParseError() string {
	return s.parseError
}

// Render renders the search bar on the screen
func (s *Search) Render(screen *Screen, y int) {
	if !s.active {
		return
	}
	width := screen.GetWidth()

	var resultText string
	switch {
	case s.parseError != "":
		resultText = " (error: " + s.parseError + ")"
	case s.buf.Text() == "":
		resultText = ""
	case len(s.matches) == 0:
		resultText = " (no matches)"
	default:
		resultText = fmt.Sprintf(" (%d of %d matches)", s.current+1, len(s.matches))
	}
	if StringWidth(resultText) > width/2 {
		resultText = " (error: syntax)"
	}

	screen.FillRow(0, y, width, screen.CommandTextStyle())
	x := screen.DrawString(0, y, "/", screen.CommandPromptStyle())
	s.buf.Render(screen, x, y, width-x-StringWidth(resultText), screen.CommandTextStyle(), screen.CommandCursorStyle())
	screen.DrawString(width-StringWidth(resultText), y, resultText, screen.StatusMessageStyle())
}
