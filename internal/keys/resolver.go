package keys

import "strings"

const (
	// SpaceToken is emitted for the space bar regardless of layout or modifiers.
	SpaceToken = " "
	// BackspaceToken is the control token emitted for backspace.
	BackspaceToken = "\b"
	// DefaultControlPrefix marks tokens typed while control was held.
	DefaultControlPrefix = "Cntrl+"
)

// Resolver turns raw key events into text tokens.
type Resolver struct {
	layout        Layout
	controlPrefix string
}

// NewResolver creates a Resolver backed by layout. An empty controlPrefix
// selects DefaultControlPrefix.
func NewResolver(layout Layout, controlPrefix string) *Resolver {
	if controlPrefix == "" {
		controlPrefix = DefaultControlPrefix
	}
	return &Resolver{layout: layout, controlPrefix: controlPrefix}
}

// Resolve returns the token for ev, or "" when the key produces nothing.
// Resolve never consults live modifier state; it uses ev.Modifiers only.
func (r *Resolver) Resolve(ev RawKeyEvent) string {
	if ev.IsModifier() {
		return ""
	}

	switch ev.VirtualKey {
	case VKSpace:
		return SpaceToken
	case VKBack:
		return BackspaceToken
	}

	token, ok := r.lookup(ev)
	if !ok || token == "" {
		return ""
	}

	if !ev.Modifiers.CapsLockActive {
		token = strings.ToLower(token)
	}
	if ev.Modifiers.ControlHeld {
		token = r.controlPrefix + token
	}
	return token
}

// lookup tries the layout's character mapping first, then the scan-code name.
func (r *Resolver) lookup(ev RawKeyEvent) (string, bool) {
	if ch, ok := r.layout.Char(ev.VirtualKey); ok && ch != 0 {
		return string(ch), true
	}
	if ev.Modifiers.ShiftEffective {
		if name, ok := r.layout.ShiftedKeyName(ev.ScanCode); ok {
			return name, true
		}
	}
	return r.layout.KeyName(ev.ScanCode)
}
