package input

// Mod is a bitmask of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// EventType distinguishes a key press from a repeat (held) or release,
// as reported by the Kitty keyboard protocol's report-events flag.
type EventType int

const (
	EventPress EventType = iota + 1
	EventRepeat
	EventRelease
)

// KeyId is a canonical, layout-independent identifier for a key.
type KeyId int

const (
	KeyNone KeyId = iota
	// KeyRune carries a printable character in Key.Rune.
	KeyRune
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyDelete
	KeyInsert
	KeyPgUp
	KeyPgDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyShiftTab
	KeyBackspace
	KeyAltBackspace
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Key is the decoded result of classifying one complete input sequence.
type Key struct {
	Id KeyId
	// Rune is the effective codepoint for KeyRune and for ctrl+letter
	// combinations reported as KeyRune with ModCtrl set.
	Rune rune
	// Shifted is the user-visible glyph to insert as printable text; it
	// differs from Rune when a shift key remapped the physical key (e.g.
	// shift+1 producing '!' on a US layout). Zero if not reported.
	Shifted rune
	Mod     Mod
	Event   EventType
	// Alternates reports whether the Kitty protocol's alternate-key
	// remapping should be considered for this event (report-alternates
	// flag active and a shifted/base key was present).
	Alternates bool
}

// functional codepoint sentinels used by the Kitty CSI-u primary format for
// non-Unicode-backed keys (arrows, delete, navigation block).
const (
	cpUp = -1 - iota
	cpDown
	cpRight
	cpLeft
	_ // -5 reserved
	_ // -6 reserved
	_ // -7 reserved
	_ // -8 reserved
	_ // -9 reserved
	cpDelete
	cpInsert
	cpPgUp
	cpPgDown
	cpHome
	cpEnd
)

// kittyControlKey maps the ASCII control codepoints the Kitty protocol
// sends through the CSI-u form when the disambiguate-escape-codes flag is
// set, instead of the bare control byte.
func kittyControlKey(cp int) (KeyId, bool) {
	switch cp {
	case 27:
		return KeyEscape, true
	case 13:
		return KeyEnter, true
	case 9:
		return KeyTab, true
	case 127:
		return KeyBackspace, true
	}
	return KeyNone, false
}

// kittyPUASentinel maps the Kitty protocol's private-use-area codepoints
// for the arrow and navigation-block keys to this package's internal
// sentinel representation.
func kittyPUASentinel(cp int) (int, bool) {
	switch cp {
	case 57350:
		return cpLeft, true
	case 57351:
		return cpRight, true
	case 57352:
		return cpUp, true
	case 57353:
		return cpDown, true
	case 57348:
		return cpInsert, true
	case 57349:
		return cpDelete, true
	case 57354:
		return cpPgUp, true
	case 57355:
		return cpPgDown, true
	case 57356:
		return cpHome, true
	case 57357:
		return cpEnd, true
	}
	return 0, false
}

func sentinelKey(cp int) (KeyId, bool) {
	switch cp {
	case cpUp:
		return KeyUp, true
	case cpDown:
		return KeyDown, true
	case cpRight:
		return KeyRight, true
	case cpLeft:
		return KeyLeft, true
	case cpDelete:
		return KeyDelete, true
	case cpInsert:
		return KeyInsert, true
	case cpPgUp:
		return KeyPgUp, true
	case cpPgDown:
		return KeyPgDown, true
	case cpHome:
		return KeyHome, true
	case cpEnd:
		return KeyEnd, true
	}
	return KeyNone, false
}
