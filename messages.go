package restock

import (
	"fmt"
	"sync"
)

// MessageLog is the user-facing status stream of the tool: an append-only
// ordered sequence of messages plus a latest pointer. Shells render the
// latest message inline and the full history on demand. It is not a logger,
// every entry is meant for the user.
type MessageLog struct {
	mu     sync.Mutex
	msgs   []string
	notify func(string)
}

// NewMessageLog returns an empty message log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Notify registers a callback invoked with every posted message. Interactive
// shells use it to repaint their status line. A nil callback disables it.
func (l *MessageLog) Notify(fn func(string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notify = fn
}

// Post appends a message to the log and makes it the latest one.
func (l *MessageLog) Post(msg string) {
	l.mu.Lock()
	l.msgs = append(l.msgs, msg)
	fn := l.notify
	l.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// Postf formats according to a format specifier and posts the result.
func (l *MessageLog) Postf(format string, args ...any) {
	l.Post(fmt.Sprintf(format, args...))
}

// Latest returns the most recently posted message, or "" when nothing has
// been posted yet.
func (l *MessageLog) Latest() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.msgs) == 0 {
		return ""
	}
	return l.msgs[len(l.msgs)-1]
}

// History returns a copy of all posted messages, oldest first.
func (l *MessageLog) History() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	history := make([]string, len(l.msgs))
	copy(history, l.msgs)
	return history
}

// Len returns the number of posted messages.
func (l *MessageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.msgs)
}
