package modifier

import (
	"testing"

	"github.com/chaz8081/keysession/internal/keys"
)

func TestSampleMask(t *testing.T) {
	tests := []struct {
		name string
		mask uint16
		want keys.ModifierSnapshot
	}{
		{"none", 0, keys.ModifierSnapshot{}},
		{"left ctrl", MaskCtrlL, keys.ModifierSnapshot{ControlHeld: true}},
		{"right ctrl", MaskCtrlR, keys.ModifierSnapshot{ControlHeld: true}},
		{"right shift", MaskShiftR, keys.ModifierSnapshot{ShiftEffective: true}},
		{"caps lock", MaskCapsLock, keys.ModifierSnapshot{CapsLockActive: true}},
		{"alt and num lock ignored", MaskAltL | MaskNumLock, keys.ModifierSnapshot{}},
		{"all", MaskCtrlL | MaskShiftL | MaskCapsLock, keys.ModifierSnapshot{ControlHeld: true, ShiftEffective: true, CapsLockActive: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(Mask(tt.mask)); got != tt.want {
				t.Errorf("Sample(%#x) = %+v, want %+v", tt.mask, got, tt.want)
			}
		})
	}
}

func TestSampleStatic(t *testing.T) {
	got := Sample(Static{Control: true, CapsLock: true})
	want := keys.ModifierSnapshot{ControlHeld: true, CapsLockActive: true}
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}
}
