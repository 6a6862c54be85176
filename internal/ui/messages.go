package ui

import (
	"log"
	"sync"
	"time"
)

// Message is one status line message.
type Message struct {
	Text      string
	Timestamp time.Time
}

// StatusLog keeps the last status messages for the status line and the
// :messages command. Every message is also written to the log file.
type StatusLog struct {
	mu       sync.Mutex
	messages []Message
	limit    int
	now      func() time.Time
}

// NewStatusLog returns a log keeping limit messages.
func NewStatusLog(limit int) *StatusLog {
	return &StatusLog{limit: limit, now: time.Now}
}

// Add records text. Empty messages are ignored.
func (l *StatusLog) Add(text string) {
	if text == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	log.Printf("status: %s", text)
	l.messages = append(l.messages, Message{Text: text, Timestamp: l.now()})
	if len(l.messages) > l.limit {
		l.messages = l.messages[len(l.messages)-l.limit:]
	}
}

// Current returns the newest message if it is younger than ttl.
func (l *StatusLog) Current(ttl time.Duration) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.messages) == 0 {
		return "", false
	}
	m := l.messages[len(l.messages)-1]
	if l.now().Sub(m.Timestamp) > ttl {
		return "", false
	}
	return m.Text, true
}

// Newest returns the messages, newest first.
func (l *StatusLog) Newest() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Message, len(l.messages))
	for i, m := range l.messages {
		out[len(l.messages)-1-i] = m
	}
	return out
}

// Count returns the number of messages kept.
func (l *StatusLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
