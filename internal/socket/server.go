package socket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// replyTimeout bounds how long a synchronous command waits for the app.
const replyTimeout = 10 * time.Second

// Server accepts commands on a Unix socket and hands them to the app's
// main loop through Messages.
type Server struct {
	socketPath string
	listener   net.Listener
	msgs       chan Message
	done       chan struct{}
	stopOnce   sync.Once
}

// NewServer listens on the socket for process pid. A stale socket left by
// an earlier process with the same pid is replaced.
func NewServer(pid int) (*Server, error) {
	dir := SocketDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s%d%s", socketPrefix, pid, socketSuffix))
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}
	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket: %w", err)
	}
	log.Printf("Socket server listening on: %s", path)

	return &Server{
		socketPath: path,
		listener:   l,
		msgs:       make(chan Message, 10),
		done:       make(chan struct{}),
	}, nil
}

// Start accepts connections in the background until Stop.
func (s *Server) Start() {
	go func() {
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				if s.stopped() {
					return
				}
				log.Printf("Error accepting connection: %v", err)
				continue
			}
			go s.serve(conn)
		}
	}()
}

func (s *Server) stopped() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// serve reads one message from conn and writes one response.
func (s *Server) serve(conn net.Conn) {
	defer conn.Close()
	resp := s.dispatch(conn)
	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (s *Server) dispatch(r io.Reader) *Response {
	var msg Message
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		if !errors.Is(err, io.EOF) {
			log.Printf("Error decoding message: %v", err)
		}
		return failure("Invalid message format: %v", err)
	}
	switch msg.Command {
	case "":
		return failure("Missing command field")
	case CommandAddRow, CommandDump:
	default:
		return failure("Unknown command: %s", msg.Command)
	}

	if msg.IsSync() {
		msg.ResponseChan = make(chan *Response, 1)
	}
	select {
	case s.msgs <- msg:
	case <-s.done:
		return failure("Server is shutting down")
	}
	if msg.ResponseChan == nil {
		return &Response{Success: true, Message: "Command queued"}
	}

	select {
	case resp := <-msg.ResponseChan:
		return resp
	case <-time.After(replyTimeout):
		return failure("Command timed out")
	case <-s.done:
		return failure("Server is shutting down")
	}
}

func failure(format string, args ...any) *Response {
	return &Response{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Messages delivers accepted commands to the app.
func (s *Server) Messages() <-chan Message {
	return s.msgs
}

// SocketPath returns the path of the socket file.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Stop closes the listener and removes the socket file. Calling it again
// does nothing.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.listener.Close()
		os.Remove(s.socketPath)
		log.Printf("Socket server stopped")
	})
}
