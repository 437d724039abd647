package input

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// kittyRecognizedSymbol reports whether an ASCII codepoint reported by the
// Kitty protocol is one of the symbols authoritative regardless of the
// physical key pressed (alongside lowercase a..z).
func kittyRecognizedSymbol(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n',
		'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return r >= '0' && r <= '9'
}

// Classify decodes one complete sequence (as produced by Buffer) under the
// current Kitty-protocol activation state. ok is false for bytes that
// carry no recognizable key (e.g. a bare high continuation byte).
func Classify(seq []byte, kittyActive bool) (Key, bool) {
	if len(seq) == 0 {
		return Key{}, false
	}

	if seq[0] != 0x1b {
		return classifyPlain(seq)
	}

	if len(seq) == 1 {
		return Key{Id: KeyEscape, Event: EventPress}, true
	}

	switch seq[1] {
	case '[':
		return classifyCSI(seq, kittyActive)
	case 'O':
		return classifySS3(seq)
	case '\r':
		if kittyActive {
			return Key{Id: KeyEnter, Mod: ModShift, Event: EventPress}, true
		}
		return Key{Id: KeyEnter, Mod: ModAlt, Event: EventPress}, true
	case 0x7f, 0x08:
		return Key{Id: KeyAltBackspace, Event: EventPress}, true
	default:
		if seq[1] >= 'a' && seq[1] <= 'z' && len(seq) == 2 {
			return Key{Id: KeyRune, Rune: rune(seq[1]), Mod: ModAlt, Event: EventPress}, true
		}
		return Key{}, false
	}
}

func classifyPlain(seq []byte) (Key, bool) {
	b := seq[0]
	if len(seq) == 1 {
		switch b {
		case 0x0d, 0x0a:
			return Key{Id: KeyEnter, Event: EventPress}, true
		case 0x7f, 0x08:
			return Key{Id: KeyBackspace, Event: EventPress}, true
		case 0x09:
			return Key{Id: KeyTab, Event: EventPress}, true
		case 0x20:
			return Key{Id: KeyRune, Rune: ' ', Shifted: ' ', Event: EventPress}, true
		}
		if b >= 1 && b <= 26 && b != 0x08 && b != 0x09 && b != 0x0a && b != 0x0d {
			return Key{Id: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl, Event: EventPress}, true
		}
		if b >= 32 && b <= 126 {
			return Key{Id: KeyRune, Rune: rune(b), Shifted: rune(b), Event: EventPress}, true
		}
		return Key{}, false
	}
	r, _ := utf8.DecodeRune(seq)
	if r == utf8.RuneError {
		return Key{}, false
	}
	return Key{Id: KeyRune, Rune: r, Shifted: r, Event: EventPress}, true
}

func classifySS3(seq []byte) (Key, bool) {
	if len(seq) != 3 {
		return Key{}, false
	}
	switch seq[2] {
	case 'A':
		return Key{Id: KeyUp, Event: EventPress}, true
	case 'B':
		return Key{Id: KeyDown, Event: EventPress}, true
	case 'C':
		return Key{Id: KeyRight, Event: EventPress}, true
	case 'D':
		return Key{Id: KeyLeft, Event: EventPress}, true
	case 'H':
		return Key{Id: KeyHome, Event: EventPress}, true
	case 'F':
		return Key{Id: KeyEnd, Event: EventPress}, true
	case 'M':
		return Key{Id: KeyEnter, Event: EventPress}, true
	case 'P':
		return Key{Id: KeyF1, Event: EventPress}, true
	case 'Q':
		return Key{Id: KeyF2, Event: EventPress}, true
	case 'R':
		return Key{Id: KeyF3, Event: EventPress}, true
	case 'S':
		return Key{Id: KeyF4, Event: EventPress}, true
	}
	return Key{}, false
}

// classifyCSI dispatches every "ESC [ ..." form: the Kitty CSI-u primary
// format (terminated by 'u'), the Kitty/legacy functional "~" form, and the
// plain lettered legacy forms (arrows, home/end, shift-tab, modified
// arrows).
func classifyCSI(seq []byte, kittyActive bool) (Key, bool) {
	body := string(seq[2 : len(seq)-1])
	final := seq[len(seq)-1]

	switch final {
	case 'u':
		return classifyKittyU(body)
	case '~':
		return classifyTilde(body, kittyActive)
	case 'Z':
		return Key{Id: KeyShiftTab, Event: EventPress}, true
	case 'A', 'B', 'C', 'D':
		return classifyArrow(body, final)
	case 'H':
		return withModifier(body, KeyHome)
	case 'F':
		return withModifier(body, KeyEnd)
	}
	return Key{}, false
}

// classifyKittyU decodes the Kitty CSI-u primary format:
//
//	<codepoint>[:shiftedKey][:baseLayoutKey][;modMask[:eventType]]
func classifyKittyU(body string) (Key, bool) {
	fields := strings.SplitN(body, ";", 2)
	primary := strings.Split(fields[0], ":")
	if primary[0] == "" {
		return Key{}, false
	}
	codepoint, err := strconv.Atoi(primary[0])
	if err != nil {
		return Key{}, false
	}

	var shiftedKey, baseLayoutKey int
	var hasShifted, hasBase bool
	if len(primary) >= 2 && primary[1] != "" {
		if v, err := strconv.Atoi(primary[1]); err == nil {
			shiftedKey, hasShifted = v, true
		}
	}
	if len(primary) >= 3 && primary[2] != "" {
		if v, err := strconv.Atoi(primary[2]); err == nil {
			baseLayoutKey, hasBase = v, true
		}
	}

	mod := Mod(0)
	event := EventPress
	if len(fields) == 2 {
		modParts := strings.Split(fields[1], ":")
		if modParts[0] != "" {
			if v, err := strconv.Atoi(modParts[0]); err == nil {
				mod = decodeModMask(v)
			}
		}
		if len(modParts) >= 2 && modParts[1] != "" {
			if v, err := strconv.Atoi(modParts[1]); err == nil {
				event = EventType(v)
			}
		}
	}

	if id, ok := kittyControlKey(codepoint); ok {
		return Key{Id: id, Mod: mod, Event: event}, true
	}
	if sentinel, ok := kittyPUASentinel(codepoint); ok {
		id, _ := sentinelKey(sentinel)
		return Key{Id: id, Mod: mod, Event: event, Alternates: hasShifted || hasBase}, true
	}
	if codepoint >= 0xE000 && codepoint <= 0xF8FF {
		// Private-use-area functional key this classifier does not model
		// (media keys, lock keys, keypad-begin, ...).
		return Key{}, false
	}

	effective := rune(codepoint)
	//nolint:gocritic // lowercase/symbol codepoint wins before falling back to baseLayoutKey
	if r := rune(codepoint); r >= 'a' && r <= 'z' || kittyRecognizedSymbol(r) {
		effective = r
	} else if hasBase {
		effective = rune(baseLayoutKey)
	}

	shifted := effective
	if hasShifted {
		shifted = rune(shiftedKey)
	}

	return Key{
		Id:         KeyRune,
		Rune:       effective,
		Shifted:    shifted,
		Mod:        mod,
		Event:      event,
		Alternates: hasShifted || hasBase,
	}, true
}

// decodeModMask converts the raw "modMask+1" field into Mod bits, masking
// off CapsLock (bit 64) and NumLock (bit 128) which the protocol reports
// but which are not meaningful modifiers for shortcut matching.
func decodeModMask(raw int) Mod {
	m := (raw - 1) &^ (64 | 128)
	var mod Mod
	if m&1 != 0 {
		mod |= ModShift
	}
	if m&2 != 0 {
		mod |= ModAlt
	}
	if m&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// classifyTilde decodes "CSI n[;mod[:evt]]~". When the Kitty protocol is
// active, n uses the Kitty functional numbering (2=insert, 3=delete,
// 5=pgUp, 6=pgDown, 7=home, 8=end); otherwise the classic xterm numbering
// (1=home, 2=insert, 3=delete, 4=end, 5=pgUp, 6=pgDown) applies. Both
// modes map the two-digit codes 11-15, 17-21, 23 and 24 to F1-F12.
func classifyTilde(body string, kittyActive bool) (Key, bool) {
	parts := strings.Split(body, ";")
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, false
	}
	mod := Mod(0)
	event := EventPress
	if len(parts) >= 2 {
		modParts := strings.Split(parts[1], ":")
		if v, err := strconv.Atoi(modParts[0]); err == nil {
			mod = decodeModMask(v)
		}
		if len(modParts) >= 2 {
			if v, err := strconv.Atoi(modParts[1]); err == nil {
				event = EventType(v)
			}
		}
	}

	var id KeyId
	if kittyActive {
		switch n {
		case 2:
			id = KeyInsert
		case 3:
			id = KeyDelete
		case 5:
			id = KeyPgUp
		case 6:
			id = KeyPgDown
		case 7:
			id = KeyHome
		case 8:
			id = KeyEnd
		default:
			id = legacyFKey(n)
		}
	} else {
		switch n {
		case 1:
			id = KeyHome
		case 2:
			id = KeyInsert
		case 3:
			id = KeyDelete
		case 4:
			id = KeyEnd
		case 5:
			id = KeyPgUp
		case 6:
			id = KeyPgDown
		default:
			id = legacyFKey(n)
		}
	}
	if id == KeyNone {
		return Key{}, false
	}
	return Key{Id: id, Mod: mod, Event: event}, true
}

func legacyFKey(n int) KeyId {
	switch n {
	case 11:
		return KeyF1
	case 12:
		return KeyF2
	case 13:
		return KeyF3
	case 14:
		return KeyF4
	case 15:
		return KeyF5
	case 17:
		return KeyF6
	case 18:
		return KeyF7
	case 19:
		return KeyF8
	case 20:
		return KeyF9
	case 21:
		return KeyF10
	case 23:
		return KeyF11
	case 24:
		return KeyF12
	}
	return KeyNone
}

func classifyArrow(body string, final byte) (Key, bool) {
	var id KeyId
	switch final {
	case 'A':
		id = KeyUp
	case 'B':
		id = KeyDown
	case 'C':
		id = KeyRight
	case 'D':
		id = KeyLeft
	}
	return withModifier(body, id)
}

// withModifier decodes the "ESC [ 1 ; mod <final>" modified form shared by
// arrows and home/end; body is empty for the unmodified case.
func withModifier(body string, id KeyId) (Key, bool) {
	if body == "" {
		return Key{Id: id, Event: EventPress}, true
	}
	parts := strings.Split(body, ";")
	if len(parts) < 2 {
		return Key{Id: id, Event: EventPress}, true
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{Id: id, Event: EventPress}, true
	}
	return Key{Id: id, Mod: decodeModMask(v), Event: EventPress}, true
}

// FastIsReleaseOrRepeat cheaply reports whether seq looks like a Kitty
// release or repeat event without fully parsing it, by scanning for ":2" or
// ":3" immediately preceding a CSI-u terminator. Bracketed-paste content
// must never be passed here: a pasted "foo:2u" would false-positive.
func FastIsReleaseOrRepeat(seq []byte) bool {
	if len(seq) < 4 || seq[0] != 0x1b || seq[1] != '[' {
		return false
	}
	final := seq[len(seq)-1]
	if final != 'u' && final != '~' {
		return false
	}
	body := string(seq[2 : len(seq)-1])
	return strings.HasSuffix(body, ":2") || strings.HasSuffix(body, ":3")
}
