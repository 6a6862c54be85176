package ui

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-datagrid/internal/history"
)

// CommandMode manages command line input (`:command`)
type CommandMode struct {
	active      bool
	buf         *LineBuffer
	history     *History
	completions []string
}

// NewCommandMode creates a new CommandMode without history persistence
func NewCommandMode() *CommandMode {
	return &CommandMode{buf: NewLineBuffer(""), history: NewHistory(50)}
}

// NewCommandModeWithHistory creates a CommandMode whose history is kept in
// command.toml. A history file that cannot be read starts empty.
func NewCommandModeWithHistory(manager *history.Manager) *CommandMode {
	h, err := NewHistoryWithManager(50, manager, "command.toml")
	if err != nil {
		h = NewHistory(50)
	}
	return &CommandMode{buf: NewLineBuffer(""), history: h}
}

// SetCompletions sets the command names Tab completes to.
func (c *CommandMode) SetCompletions(names []string) {
	c.completions = names
}

// Start enters command mode
func (c *CommandMode) Start() {
	c.active = true
	c.buf.SetText("")
	c.history.Reset()
}

// Stop exits command mode
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive returns whether command mode is active
func (c *CommandMode) IsActive() bool {
	return c.active
}

// HandleKey processes a key press in command mode. done is true once the
// line was entered or abandoned; command is empty when abandoned.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.Stop()
		return "", true
	case tcell.KeyEnter:
		cmd := strings.TrimSpace(c.buf.Text())
		c.history.Add(cmd)
		c.Stop()
		return cmd, true
	case tcell.KeyUp:
		if !c.history.IsNavigating() {
			c.history.SetTemporary(c.buf.Text())
		}
		if prev, ok := c.history.Previous(); ok {
			c.buf.SetText(prev)
		}
	case tcell.KeyDown:
		if next, ok := c.history.Next(); ok {
			c.buf.SetText(next)
		}
	case tcell.KeyTab:
		c.complete()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.buf.Len() == 0 {
			c.Stop()
			return "", true
		}
		c.buf.Backspace()
	default:
		c.buf.HandleKey(ev)
	}
	return "", false
}

// complete replaces the command word with the closest known command.
func (c *CommandMode) complete() {
	word := c.buf.Text()
	if word == "" || strings.Contains(word, " ") {
		return
	}
	matches := fuzzy.RankFindFold(word, c.completions)
	if len(matches) == 0 {
		return
	}
	sort.Sort(matches)
	c.buf.SetText(matches[0].Target)
}

// GetInput returns the current command input
func (c *CommandMode) GetInput() string {
	return strings.TrimSpace(c.buf.Text())
}

// Render renders the command line
func (c *CommandMode) Render(screen *Screen, y int) {
	if !c.active {
		return
	}
	x := screen.DrawString(0, y, ":", screen.CommandPromptStyle())
	c.buf.Render(screen, x, y, screen.GetWidth()-x, screen.CommandTextStyle(), screen.CommandCursorStyle())
}
