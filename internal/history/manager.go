// Package history stores input histories as small TOML files.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Manager loads and saves history files in one directory.
type Manager struct {
	dir string
}

// File is the on-disk form of one history.
type File struct {
	Entries []string `toml:"entries"`
}

// NewManager returns a manager for ~/.local/share/tui-datagrid/history/.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(homeDir, ".local", "share", "tui-datagrid", "history"))
}

// NewManagerAt returns a manager for dir, creating it if needed.
func NewManagerAt(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Load returns the entries in filename. A missing or unreadable TOML file
// gives an empty history.
func (m *Manager) Load(filename string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, nil
	}
	return f.Entries, nil
}

// Save writes entries to filename.
func (m *Manager) Save(filename string, entries []string) error {
	data, err := toml.Marshal(File{Entries: entries})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir, filename), data, 0644)
}
