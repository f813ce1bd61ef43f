// Package keys models raw key-down events and resolves them into text
// tokens honoring the modifier state captured when each key was pressed.
package keys

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEvent is returned by NewRawKeyEvent for events that carry
// neither a virtual-key code nor a scan code.
var ErrInvalidEvent = errors.New("keys: invalid key event")

// ModifierSnapshot is the modifier state sampled at the instant of a key-down.
// It is never re-sampled; rendering may happen long after the key was pressed.
type ModifierSnapshot struct {
	ControlHeld    bool
	ShiftEffective bool
	CapsLockActive bool
}

// RawKeyEvent is one physical key-down as delivered by the keyboard hook.
type RawKeyEvent struct {
	VirtualKey uint32
	ScanCode   uint32
	Modifiers  ModifierSnapshot
	Timestamp  time.Time
}

// NewRawKeyEvent validates the codes delivered by the hook and builds an event.
// A zero timestamp is rejected; callers stamp events as they arrive.
func NewRawKeyEvent(vk, scan uint32, mods ModifierSnapshot, ts time.Time) (RawKeyEvent, error) {
	if vk == 0 && scan == 0 {
		return RawKeyEvent{}, fmt.Errorf("%w: no virtual-key or scan code", ErrInvalidEvent)
	}
	if vk > 0xFF {
		return RawKeyEvent{}, fmt.Errorf("%w: virtual-key code %#x out of range", ErrInvalidEvent, vk)
	}
	if ts.IsZero() {
		return RawKeyEvent{}, fmt.Errorf("%w: missing timestamp", ErrInvalidEvent)
	}
	return RawKeyEvent{
		VirtualKey: vk,
		ScanCode:   scan,
		Modifiers:  mods,
		Timestamp:  ts,
	}, nil
}

// IsModifier reports whether the event is a pure-modifier key press.
func (e RawKeyEvent) IsModifier() bool {
	return IsModifierKey(e.VirtualKey)
}
