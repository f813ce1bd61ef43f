package keys

import "github.com/samber/lo"

// Virtual-key codes. Values follow the Windows VK_* numbering, which is the
// layout-independent key identity used throughout the engine.
const (
	VKBack     uint32 = 0x08
	VKTab      uint32 = 0x09
	VKReturn   uint32 = 0x0D
	VKShift    uint32 = 0x10
	VKControl  uint32 = 0x11
	VKMenu     uint32 = 0x12
	VKPause    uint32 = 0x13
	VKCapital  uint32 = 0x14
	VKEscape   uint32 = 0x1B
	VKSpace    uint32 = 0x20
	VKPrior    uint32 = 0x21
	VKNext     uint32 = 0x22
	VKEnd      uint32 = 0x23
	VKHome     uint32 = 0x24
	VKLeft     uint32 = 0x25
	VKUp       uint32 = 0x26
	VKRight    uint32 = 0x27
	VKDown     uint32 = 0x28
	VKSnapshot uint32 = 0x2C
	VKInsert   uint32 = 0x2D
	VKDelete   uint32 = 0x2E
	VK0        uint32 = 0x30
	VK9        uint32 = 0x39
	VKA        uint32 = 0x41
	VKZ        uint32 = 0x5A
	VKLWin     uint32 = 0x5B
	VKRWin     uint32 = 0x5C
	VKMultiply uint32 = 0x6A
	VKF1       uint32 = 0x70
	VKF12      uint32 = 0x7B
	VKNumLock  uint32 = 0x90
	VKScroll   uint32 = 0x91
	VKLShift   uint32 = 0xA0
	VKRShift   uint32 = 0xA1
	VKLControl uint32 = 0xA2
	VKRControl uint32 = 0xA3
	VKLMenu    uint32 = 0xA4
	VKRMenu    uint32 = 0xA5
	VKOEM1     uint32 = 0xBA // ;:
	VKOEMPlus  uint32 = 0xBB
	VKOEMComma uint32 = 0xBC
	VKOEMMinus uint32 = 0xBD
	VKOEMDot   uint32 = 0xBE
	VKOEM2     uint32 = 0xBF // /?
	VKOEM3     uint32 = 0xC0 // `~
	VKOEM4     uint32 = 0xDB // [{
	VKOEM5     uint32 = 0xDC // \|
	VKOEM6     uint32 = 0xDD // ]}
	VKOEM7     uint32 = 0xDE // '"
)

var modifierKeys = []uint32{
	VKShift, VKLShift, VKRShift,
	VKControl, VKLControl, VKRControl,
	VKMenu, VKLMenu, VKRMenu,
	VKLWin, VKRWin,
	VKCapital, VKNumLock, VKScroll,
}

// IsModifierKey reports whether vk is a pure-modifier or lock key. Such keys
// never produce a token and never start a session.
func IsModifierKey(vk uint32) bool {
	return lo.Contains(modifierKeys, vk)
}
