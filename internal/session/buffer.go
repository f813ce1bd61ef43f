package session

import "github.com/chaz8081/keysession/internal/keys"

// Buffer holds the pending events of the current session and the most recent
// foreground window title. It has no lock of its own; the Engine serializes
// every access together with its debounce state.
type Buffer struct {
	events []keys.RawKeyEvent
	window string
}

// Append queues ev and overwrites the window title. Only the last title seen
// before a flush survives.
func (b *Buffer) Append(ev keys.RawKeyEvent, title string) {
	b.events = append(b.events, ev)
	b.window = title
}

// Take returns the queued events and title and leaves the buffer empty.
func (b *Buffer) Take() ([]keys.RawKeyEvent, string) {
	events, window := b.events, b.window
	b.events = nil
	b.window = ""
	return events, window
}

// Len returns the number of queued events.
func (b *Buffer) Len() int {
	return len(b.events)
}
