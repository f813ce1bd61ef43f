// Package output publishes finished typing sessions.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/chaz8081/keysession/internal/session"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatLog  = "log"
)

// New returns a sink writing records to w in the given format. The "log"
// format ignores w and goes through the default slog logger.
func New(format string, w io.Writer) (session.Sink, error) {
	switch format {
	case FormatText:
		return NewTextSink(w), nil
	case FormatJSON:
		return NewJSONSink(w), nil
	case FormatLog:
		return NewLogSink(slog.Default()), nil
	default:
		return nil, fmt.Errorf("output: unknown format %q", format)
	}
}

// TextSink writes one human-readable line per record and flushes it at once.
type TextSink struct {
	mu sync.Mutex
	bw *bufio.Writer
}

// NewTextSink creates a TextSink over w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{bw: bufio.NewWriter(w)}
}

// Emit writes rec.
func (s *TextSink) Emit(rec session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.bw, "%s window=%q text=%q keys=%d\n",
		rec.Flushed.Format(time.RFC3339), rec.Window, rec.Text, rec.Keys)
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("output: writing record: %w", err)
	}
	return nil
}

// JSONSink writes records as JSON lines.
type JSONSink struct {
	mu  sync.Mutex
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewJSONSink creates a JSONSink over w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONSink{bw: bw, enc: enc}
}

// Emit writes rec.
func (s *JSONSink) Emit(rec session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("output: encoding record: %w", err)
	}
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("output: writing record: %w", err)
	}
	return nil
}

// LogSink logs each record at info level.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs rec.
func (s *LogSink) Emit(rec session.Record) error {
	s.logger.Info("[session] recorded",
		"id", rec.ID,
		"window", rec.Window,
		"text", rec.Text,
		"keys", rec.Keys,
		"duration", rec.LastKey.Sub(rec.Start).Round(time.Millisecond),
	)
	return nil
}
