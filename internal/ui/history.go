package ui

import (
	"log"
	"slices"

	"github.com/pstuifzand/tui-datagrid/internal/history"
)

// History holds previously entered lines for the command line and prompts.
// Up and Down walk through it; the line being typed is kept aside and
// comes back when walking past the newest entry.
type History struct {
	entries   []string
	index     int // -1 when not navigating
	limit     int
	temporary string
	manager   *history.Manager
	filename  string
}

// NewHistory creates an in-memory History keeping at most limit entries.
func NewHistory(limit int) *History {
	return &History{index: -1, limit: limit}
}

// NewHistoryWithManager creates a History persisted to filename.
func NewHistoryWithManager(limit int, manager *history.Manager, filename string) (*History, error) {
	h := &History{index: -1, limit: limit, manager: manager, filename: filename}
	entries, err := manager.Load(filename)
	if err != nil {
		return h, err
	}
	h.entries = h.trim(entries)
	return h, nil
}

func (h *History) trim(entries []string) []string {
	if len(entries) > h.limit {
		return entries[len(entries)-h.limit:]
	}
	return entries
}

// Add records entry as the newest line. An earlier copy of the same line
// is removed, and blank lines are ignored.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	h.entries = slices.DeleteFunc(h.entries, func(e string) bool { return e == entry })
	h.entries = h.trim(append(h.entries, entry))
	h.Reset()

	if err := h.Save(); err != nil {
		log.Printf("history: save %s: %v", h.filename, err)
	}
}

// Save persists the entries when the History has a manager.
func (h *History) Save() error {
	if h.manager == nil || h.filename == "" {
		return nil
	}
	return h.manager.Save(h.filename, h.entries)
}

// Previous steps back to an older entry.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.index < 0:
		h.index = len(h.entries) - 1
	case h.index > 0:
		h.index--
	}
	return h.entries[h.index], true
}

// Next steps forward to a newer entry. Past the newest it returns the line
// saved by SetTemporary and stops navigating.
func (h *History) Next() (string, bool) {
	if h.index < 0 {
		return "", false
	}
	h.index++
	if h.index >= len(h.entries) {
		temp := h.temporary
		h.Reset()
		return temp, true
	}
	return h.entries[h.index], true
}

// Reset stops navigating.
func (h *History) Reset() {
	h.index = -1
	h.temporary = ""
}

// SetTemporary keeps the line being typed while navigating.
func (h *History) SetTemporary(input string) {
	h.temporary = input
}

// GetAll returns a copy of all entries, oldest first.
func (h *History) GetAll() []string {
	return slices.Clone(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// IsNavigating reports whether Up has been pressed since the last Reset.
func (h *History) IsNavigating() bool {
	return h.index >= 0
}
