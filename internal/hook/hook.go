// Package hook connects the global keyboard hook provided by gohook to the
// session engine. Native key-down events are validated into
// keys.RawKeyEvent once, here, together with the modifier snapshot and the
// foreground window title sampled at the same instant.
package hook

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/chaz8081/keysession/internal/keys"
	"github.com/chaz8081/keysession/internal/modifier"
)

// ErrHookStart is returned when the global hook could not be installed.
var ErrHookStart = errors.New("hook: failed to start keyboard hook")

// Handler receives each accepted key-down and the window it was typed in.
// It runs on the hook goroutine and must not block.
type Handler func(ev keys.RawKeyEvent, title string)

// Listener forwards global key-down events to a Handler.
type Listener struct {
	handle Handler
	titles *TitleSource
	done   chan struct{}
	once   sync.Once
}

// NewListener creates a Listener delivering to handle.
func NewListener(handle Handler, titles *TitleSource) *Listener {
	return &Listener{
		handle: handle,
		titles: titles,
		done:   make(chan struct{}),
	}
}

// StartTimeout bounds how long Start waits for the hook to report that it
// is running.
const StartTimeout = 3 * time.Second

// Start installs the hook and dispatches events until Stop is called.
// It blocks; run it in a goroutine. Events are delivered one at a time.
// gohook has no error return for a failed install, so Start returns
// ErrHookStart when no event arrives within StartTimeout.
func (l *Listener) Start() error {
	err := l.run(hook.Start(), StartTimeout)
	hook.End()
	return err
}

// run waits for the hook to come up, then dispatches evChan until Stop.
func (l *Listener) run(evChan <-chan hook.Event, startTimeout time.Duration) error {
	if evChan == nil {
		return ErrHookStart
	}

	timer := time.NewTimer(startTimeout)
	defer timer.Stop()
	started := false

	for {
		if started {
			select {
			case <-l.done:
				return nil
			case ev, ok := <-evChan:
				if !ok {
					return nil
				}
				l.dispatch(ev)
			}
			continue
		}

		select {
		case <-l.done:
			return nil
		case <-timer.C:
			return fmt.Errorf("%w: no hook events within %s", ErrHookStart, startTimeout)
		case ev, ok := <-evChan:
			if !ok {
				return fmt.Errorf("%w: event channel closed", ErrHookStart)
			}
			started = true
			if ev.Kind == hook.HookEnabled {
				slog.Debug("[hook] keyboard hook enabled")
				continue
			}
			l.dispatch(ev)
		}
	}
}

// Stop terminates the listener.
// It is safe to call multiple times.
func (l *Listener) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}

// dispatch handles one native event. Only key presses are forwarded; the
// typed and released notifications libuiohook also sends are ignored.
func (l *Listener) dispatch(ev hook.Event) {
	if ev.Kind != hook.KeyHold {
		return
	}
	raw, err := Translate(ev)
	if err != nil {
		slog.Debug("[hook] dropping event", "keycode", ev.Keycode, "rawcode", ev.Rawcode, "error", err)
		return
	}
	l.handle(raw, l.titles.Current())
}

// Translate converts a gohook key event into a RawKeyEvent. The keycode is
// a scan-set-1 code; the virtual key is derived from it so resolution is the
// same on every platform.
func Translate(ev hook.Event) (keys.RawKeyEvent, error) {
	scan := uint32(ev.Keycode)
	vk, _ := keys.VirtualKeyForScan(scan)

	ts := ev.When
	if ts.IsZero() {
		ts = time.Now()
	}

	raw, err := keys.NewRawKeyEvent(vk, scan, modifier.Sample(modifier.Mask(ev.Mask)), ts)
	if err != nil {
		return keys.RawKeyEvent{}, fmt.Errorf("translating keycode %#x: %w", ev.Keycode, err)
	}
	return raw, nil
}
