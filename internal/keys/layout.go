package keys

// Layout is the host's keyboard-layout lookup service.
type Layout interface {
	// Char maps a virtual-key code to the character it produces on the
	// physical layout, unshifted.
	Char(vk uint32) (rune, bool)
	// KeyName maps a scan code to the key's display name.
	KeyName(scan uint32) (string, bool)
	// ShiftedKeyName is KeyName evaluated against a keyboard state with the
	// shift bit forced on.
	ShiftedKeyName(scan uint32) (string, bool)
}

type scanEntry struct {
	vk      uint32
	name    string
	shifted string
}

// Scan codes use PC scan-code set 1; extended keys carry a 0x0E or 0xE0 high
// byte the way libuiohook reports them.
var usScanCodes = map[uint32]scanEntry{
	0x0001: {VKEscape, "Esc", ""},
	0x0002: {VK0 + 1, "1", "!"},
	0x0003: {VK0 + 2, "2", "@"},
	0x0004: {VK0 + 3, "3", "#"},
	0x0005: {VK0 + 4, "4", "$"},
	0x0006: {VK0 + 5, "5", "%"},
	0x0007: {VK0 + 6, "6", "^"},
	0x0008: {VK0 + 7, "7", "&"},
	0x0009: {VK0 + 8, "8", "*"},
	0x000A: {VK0 + 9, "9", "("},
	0x000B: {VK0, "0", ")"},
	0x000C: {VKOEMMinus, "-", "_"},
	0x000D: {VKOEMPlus, "=", "+"},
	0x000E: {VKBack, "Backspace", ""},
	0x000F: {VKTab, "Tab", ""},
	0x0010: {'Q', "Q", ""},
	0x0011: {'W', "W", ""},
	0x0012: {'E', "E", ""},
	0x0013: {'R', "R", ""},
	0x0014: {'T', "T", ""},
	0x0015: {'Y', "Y", ""},
	0x0016: {'U', "U", ""},
	0x0017: {'I', "I", ""},
	0x0018: {'O', "O", ""},
	0x0019: {'P', "P", ""},
	0x001A: {VKOEM4, "[", "{"},
	0x001B: {VKOEM6, "]", "}"},
	0x001C: {VKReturn, "Enter", ""},
	0x001D: {VKLControl, "Ctrl", ""},
	0x001E: {'A', "A", ""},
	0x001F: {'S', "S", ""},
	0x0020: {'D', "D", ""},
	0x0021: {'F', "F", ""},
	0x0022: {'G', "G", ""},
	0x0023: {'H', "H", ""},
	0x0024: {'J', "J", ""},
	0x0025: {'K', "K", ""},
	0x0026: {'L', "L", ""},
	0x0027: {VKOEM1, ";", ":"},
	0x0028: {VKOEM7, "'", "\""},
	0x0029: {VKOEM3, "`", "~"},
	0x002A: {VKLShift, "Shift", ""},
	0x002B: {VKOEM5, "\\", "|"},
	0x002C: {'Z', "Z", ""},
	0x002D: {'X', "X", ""},
	0x002E: {'C', "C", ""},
	0x002F: {'V', "V", ""},
	0x0030: {'B', "B", ""},
	0x0031: {'N', "N", ""},
	0x0032: {'M', "M", ""},
	0x0033: {VKOEMComma, ",", "<"},
	0x0034: {VKOEMDot, ".", ">"},
	0x0035: {VKOEM2, "/", "?"},
	0x0036: {VKRShift, "Right Shift", ""},
	0x0037: {VKMultiply, "Num *", ""},
	0x0038: {VKLMenu, "Alt", ""},
	0x0039: {VKSpace, "Space", ""},
	0x003A: {VKCapital, "Caps Lock", ""},
	0x003B: {VKF1, "F1", ""},
	0x003C: {VKF1 + 1, "F2", ""},
	0x003D: {VKF1 + 2, "F3", ""},
	0x003E: {VKF1 + 3, "F4", ""},
	0x003F: {VKF1 + 4, "F5", ""},
	0x0040: {VKF1 + 5, "F6", ""},
	0x0041: {VKF1 + 6, "F7", ""},
	0x0042: {VKF1 + 7, "F8", ""},
	0x0043: {VKF1 + 8, "F9", ""},
	0x0044: {VKF1 + 9, "F10", ""},
	0x0045: {VKNumLock, "Num Lock", ""},
	0x0046: {VKScroll, "Scroll Lock", ""},
	0x0057: {VKF1 + 10, "F11", ""},
	0x0058: {VKF12, "F12", ""},
	0x0E1C: {VKReturn, "Num Enter", ""},
	0x0E1D: {VKRControl, "Right Ctrl", ""},
	0x0E37: {VKSnapshot, "Prnt Scrn", ""},
	0x0E38: {VKRMenu, "Right Alt", ""},
	0x0E45: {VKPause, "Pause", ""},
	0x0E47: {VKHome, "Home", ""},
	0x0E49: {VKPrior, "Page Up", ""},
	0x0E4F: {VKEnd, "End", ""},
	0x0E51: {VKNext, "Page Down", ""},
	0x0E52: {VKInsert, "Insert", ""},
	0x0E53: {VKDelete, "Delete", ""},
	0x0E5B: {VKLWin, "Left Windows", ""},
	0x0E5C: {VKRWin, "Right Windows", ""},
	0xE048: {VKUp, "Up", ""},
	0xE04B: {VKLeft, "Left", ""},
	0xE04D: {VKRight, "Right", ""},
	0xE050: {VKDown, "Down", ""},
}

// USLayout is a built-in US QWERTY layout. Only letter keys map through Char;
// digits and punctuation resolve by name so the shifted lookup can apply.
type USLayout struct{}

// Char returns the unshifted character for letter virtual keys.
func (USLayout) Char(vk uint32) (rune, bool) {
	if vk >= VKA && vk <= VKZ {
		return rune(vk), true
	}
	return 0, false
}

// KeyName returns the display name of scan.
func (USLayout) KeyName(scan uint32) (string, bool) {
	e, ok := usScanCodes[scan]
	if !ok {
		return "", false
	}
	return e.name, true
}

// ShiftedKeyName returns the shifted display name of scan. Keys without a
// distinct shifted form report their plain name.
func (l USLayout) ShiftedKeyName(scan uint32) (string, bool) {
	e, ok := usScanCodes[scan]
	if !ok {
		return "", false
	}
	if e.shifted == "" {
		return e.name, true
	}
	return e.shifted, true
}

// VirtualKeyForScan maps a scan code to its virtual-key code on the US layout.
func VirtualKeyForScan(scan uint32) (uint32, bool) {
	e, ok := usScanCodes[scan]
	if !ok {
		return 0, false
	}
	return e.vk, true
}
