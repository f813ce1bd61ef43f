package session

import (
	"time"

	"github.com/chaz8081/keysession/internal/keys"
)

// Record is one consolidated typing session.
type Record struct {
	ID      string    `json:"id"`
	Window  string    `json:"window"`
	Text    string    `json:"text"`
	Keys    int       `json:"keys"`
	Start   time.Time `json:"start"`
	LastKey time.Time `json:"last_key"`
	Flushed time.Time `json:"flushed"`
}

// Batch is the raw content of a session captured at flush time.
type Batch struct {
	Events  []keys.RawKeyEvent
	Window  string
	Start   time.Time
	LastKey time.Time
	Flushed time.Time
}

// Sink publishes finished records. Implementations must not block the caller
// indefinitely.
type Sink interface {
	Emit(Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Record) error

// Emit calls f.
func (f SinkFunc) Emit(r Record) error {
	return f(r)
}
