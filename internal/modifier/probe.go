// Package modifier samples control, shift and caps-lock state at the instant
// a key-down is delivered.
package modifier

import "github.com/chaz8081/keysession/internal/keys"

// Probe queries the host's global modifier state.
type Probe interface {
	ControlHeld() bool
	ShiftEffective() bool
	CapsLockActive() bool
}

// Sample takes one snapshot from p. Call it synchronously from the event
// callback, before the event is queued.
func Sample(p Probe) keys.ModifierSnapshot {
	return keys.ModifierSnapshot{
		ControlHeld:    p.ControlHeld(),
		ShiftEffective: p.ShiftEffective(),
		CapsLockActive: p.CapsLockActive(),
	}
}

// Modifier mask bits as reported by libuiohook.
const (
	MaskShiftL   uint16 = 1 << 0
	MaskCtrlL    uint16 = 1 << 1
	MaskMetaL    uint16 = 1 << 2
	MaskAltL     uint16 = 1 << 3
	MaskShiftR   uint16 = 1 << 4
	MaskCtrlR    uint16 = 1 << 5
	MaskMetaR    uint16 = 1 << 6
	MaskAltR     uint16 = 1 << 7
	MaskNumLock  uint16 = 1 << 13
	MaskCapsLock uint16 = 1 << 14
	MaskScroll   uint16 = 1 << 15

	MaskShift = MaskShiftL | MaskShiftR
	MaskCtrl  = MaskCtrlL | MaskCtrlR
)

// Mask is a Probe over a modifier mask captured with the event.
type Mask uint16

func (m Mask) ControlHeld() bool    { return uint16(m)&MaskCtrl != 0 }
func (m Mask) ShiftEffective() bool { return uint16(m)&MaskShift != 0 }
func (m Mask) CapsLockActive() bool { return uint16(m)&MaskCapsLock != 0 }

// Static is a fixed Probe, used by tools and tests.
type Static struct {
	Control  bool
	Shift    bool
	CapsLock bool
}

func (s Static) ControlHeld() bool    { return s.Control }
func (s Static) ShiftEffective() bool { return s.Shift }
func (s Static) CapsLockActive() bool { return s.CapsLock }
