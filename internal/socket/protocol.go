// Package socket lets other processes talk to a running tui-datagrid over
// a Unix socket with newline-delimited JSON.
package socket

import (
	"os"
	"path/filepath"
)

// Message represents a command sent to the running instance
type Message struct {
	Command string   `json:"command"`
	Cells   []string `json:"cells,omitempty"`
	Text    bool     `json:"text,omitempty"` // Add the row as a text row

	// ResponseChan is set by the server for synchronous commands. The
	// handler must send exactly one response on it.
	ResponseChan chan *Response `json:"-"`
}

// Response represents the response from the server
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    [][]string `json:"data,omitempty"`
}

// Command types
const (
	CommandAddRow = "add_row"
	CommandDump   = "dump"
)

// IsSync reports whether the sender waits for the handler's response.
func (m Message) IsSync() bool {
	return m.Command == CommandDump
}

const (
	appDirName   = "tui-datagrid"
	socketPrefix = "tdg-"
	socketSuffix = ".sock"
)

// SocketDir returns the directory sockets are created in:
// $XDG_RUNTIME_DIR/tui-datagrid, or ~/.local/share/tui-datagrid.
func SocketDir() string {
	if xdgRuntime := os.Getenv("XDG_RUNTIME_DIR"); xdgRuntime != "" {
		return filepath.Join(xdgRuntime, appDirName)
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", appDirName)
}
