package socket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Client sends commands to a running instance.
type Client struct {
	socketPath string
}

// FindRunningInstance returns the most recently created instance socket
// and the PID encoded in its name. The PID is 0 when the name is odd.
func FindRunningInstance() (string, int, error) {
	entries, err := os.ReadDir(SocketDir())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", 0, fmt.Errorf("error scanning socket directory: %w", err)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, socketPrefix) || !strings.HasSuffix(name, socketSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest, newestTime = filepath.Join(SocketDir(), name), info.ModTime()
		}
	}
	if newest == "" {
		return "", 0, fmt.Errorf("no running tui-datagrid instance found")
	}

	pid, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(filepath.Base(newest), socketPrefix), socketSuffix))
	return newest, pid, nil
}

// NewClient returns a client for the socket at socketPath, which must
// exist.
func NewClient(socketPath string) (*Client, error) {
	if _, err := os.Stat(socketPath); err != nil {
		return nil, fmt.Errorf("socket not found: %w", err)
	}
	return &Client{socketPath: socketPath}, nil
}

// Send delivers one message and waits for its response.
func (c *Client) Send(msg Message) (*Response, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to socket: %w", err)
	}
	defer conn.Close()

	// The server waits up to replyTimeout for the app; allow a little more.
	if err := conn.SetDeadline(time.Now().Add(replyTimeout + 2*time.Second)); err != nil {
		return nil, err
	}
	if err := json.NewEncoder(conn).Encode(msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to receive response: %w", err)
	}
	return &resp, nil
}

// SendAddRow asks the instance to append a row with the given cells.
func (c *Client) SendAddRow(cells []string, text bool) (*Response, error) {
	return c.Send(Message{Command: CommandAddRow, Cells: cells, Text: text})
}

// SendDump asks the instance for the grid's current values.
func (c *Client) SendDump() (*Response, error) {
	return c.Send(Message{Command: CommandDump})
}
