// Package session groups consecutive keystrokes into typing sessions and
// flushes each session once typing has paused for a quiet period.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/chaz8081/keysession/internal/keys"
)

// Default timings.
const (
	DefaultQuiet    = 900 * time.Millisecond
	DefaultWatchdog = time.Second
)

// Options configures an Engine.
type Options struct {
	Quiet    time.Duration // minimum silence after the last key before a flush
	Watchdog time.Duration // first watchdog wait after a session starts
	Clock    clock.Clock
}

// Stats reports engine counters.
type Stats struct {
	Sessions uint64 // sessions flushed with at least one event
	Accepted uint64 // key-down events buffered
	Ignored  uint64 // modifier-only events dropped
}

// Engine is the debounce scheduler. It owns the session buffer and the
// session timestamps behind one lock, and at most one watchdog timer.
//
// Idle: no timer, empty buffer, zero timestamps.
// Armed: timer pending, buffer non-empty, start and last set.
type Engine struct {
	quiet    time.Duration
	watchdog time.Duration
	clock    clock.Clock
	emitter  *Emitter

	mu     sync.Mutex
	buf    Buffer
	start  time.Time
	last   time.Time
	timer  *clock.Timer
	gen    uint64
	closed bool
	stats  Stats

	// Flushes draw a ticket under mu and emit in ticket order after mu is
	// released, so a slow sink never holds up OnEvent.
	nextTicket uint64
	turnMu     sync.Mutex
	turn       *sync.Cond
	serving    uint64
}

// NewEngine creates an idle Engine that flushes through emitter.
func NewEngine(emitter *Emitter, opts Options) (*Engine, error) {
	if emitter == nil {
		return nil, errors.New("session: emitter must not be nil")
	}
	if opts.Quiet <= 0 {
		opts.Quiet = DefaultQuiet
	}
	if opts.Watchdog <= 0 {
		opts.Watchdog = DefaultWatchdog
	}
	if opts.Quiet > opts.Watchdog {
		return nil, fmt.Errorf("session: quiet period %s exceeds watchdog wait %s", opts.Quiet, opts.Watchdog)
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	e := &Engine{
		quiet:    opts.Quiet,
		watchdog: opts.Watchdog,
		clock:    opts.Clock,
		emitter:  emitter,
	}
	e.turn = sync.NewCond(&e.turnMu)
	return e, nil
}

// OnEvent buffers a key-down typed in the window titled title. It reports
// whether the event was accepted. Modifier-only keys are dropped without
// touching session state. OnEvent never blocks on emission.
func (e *Engine) OnEvent(ev keys.RawKeyEvent, title string) bool {
	if ev.IsModifier() {
		e.mu.Lock()
		e.stats.Ignored++
		e.mu.Unlock()
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}

	now := e.clock.Now()
	e.buf.Append(ev, title)
	e.stats.Accepted++
	e.last = now

	if e.timer == nil {
		e.start = now
		gen := e.gen
		e.timer = e.clock.AfterFunc(e.watchdog, func() { e.wake(gen) })
		slog.Debug("[engine] session started", "window", title)
	}
	return true
}

// wake is the watchdog body. gen identifies the session that armed it; a
// wake belonging to an already flushed session is a no-op.
func (e *Engine) wake(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.last.IsZero() {
		e.mu.Unlock()
		return
	}

	elapsed := e.clock.Since(e.last)
	if elapsed < e.quiet {
		e.timer = e.clock.AfterFunc(e.quiet-elapsed, func() { e.wake(gen) })
		e.mu.Unlock()
		return
	}

	e.flushAndUnlock()
}

// Flush emits the pending session immediately. It is a no-op when idle.
func (e *Engine) Flush() error {
	e.mu.Lock()
	return e.flushAndUnlock()
}

// Close stops the watchdog and flushes any pending session. Events that
// arrive after Close are dropped.
func (e *Engine) Close() error {
	e.mu.Lock()
	e.closed = true
	return e.flushAndUnlock()
}

// flushAndUnlock captures and resets the session, then releases mu and emits.
// The caller must hold mu.
func (e *Engine) flushAndUnlock() error {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.buf.Len() == 0 {
		e.start, e.last = time.Time{}, time.Time{}
		e.mu.Unlock()
		return nil
	}

	events, window := e.buf.Take()
	batch := Batch{
		Events:  events,
		Window:  window,
		Start:   e.start,
		LastKey: e.last,
		Flushed: e.clock.Now(),
	}
	e.start, e.last = time.Time{}, time.Time{}
	e.gen++
	e.stats.Sessions++

	ticket := e.nextTicket
	e.nextTicket++
	e.mu.Unlock()

	e.waitTurn(ticket)
	defer e.endTurn()

	if err := e.emitter.Emit(batch); err != nil {
		slog.Error("[engine] emit failed", "window", window, "error", err)
		return err
	}
	slog.Debug("[engine] session flushed", "window", window, "keys", len(events))
	return nil
}

// waitTurn blocks until every flush captured before ticket has emitted.
func (e *Engine) waitTurn(ticket uint64) {
	e.turnMu.Lock()
	for e.serving != ticket {
		e.turn.Wait()
	}
	e.turnMu.Unlock()
}

func (e *Engine) endTurn() {
	e.turnMu.Lock()
	e.serving++
	e.turn.Broadcast()
	e.turnMu.Unlock()
}

// Armed reports whether a session is pending.
func (e *Engine) Armed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer != nil
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
