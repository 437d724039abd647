package editor

import "github.com/pi-tui/pitui/input"

// Keybindings is a swappable table mapping decoded keys to Editor actions;
// DefaultKeybindings ships an Emacs-style binding set. An embedder installs
// a different table with SetKeybindings to change the editing feel
// entirely.
type Keybindings struct {
	// Ctrl maps a Ctrl+letter combination, keyed by lowercase rune.
	Ctrl map[rune]func(*Editor)
	// Alt maps an Alt+letter combination, keyed by lowercase rune.
	Alt map[rune]func(*Editor)
	// AltKey maps an Alt combination with a non-rune key (e.g.
	// Alt+Backspace), keyed by input.KeyId.
	AltKey map[input.KeyId]func(*Editor)
	// Plain maps an unmodified special key, keyed by input.KeyId.
	Plain map[input.KeyId]func(*Editor)
}

// DefaultKeybindings returns the Emacs-style bindings used when an Editor
// is constructed with New: arrow/Home/End/Backspace/Delete/Enter navigate
// and edit the buffer directly, Tab drives autocomplete, and the Ctrl/Alt
// combinations follow readline/Emacs convention.
func DefaultKeybindings() *Keybindings {
	return &Keybindings{
		Ctrl: map[rune]func(*Editor){
			'a': (*Editor).MoveToLineStart,
			'e': (*Editor).MoveToLineEnd,
			'p': (*Editor).MoveUp,
			'n': (*Editor).MoveDown,
			'f': (*Editor).MoveRight,
			'b': (*Editor).MoveLeft,
			'k': (*Editor).KillLine,
			'u': (*Editor).KillToLineStart,
			'w': (*Editor).KillWordBackward,
			'y': (*Editor).Yank,
			'd': (*Editor).DeleteCharForward,
			'h': (*Editor).DeleteCharBackward,
			'm': (*Editor).InsertNewline,
		},
		Alt: map[rune]func(*Editor){
			'f': (*Editor).ForwardWord,
			'b': (*Editor).BackwardWord,
			'd': (*Editor).KillWord,
			'y': (*Editor).YankPop,
			'<': (*Editor).MoveToBufferStart,
			'>': (*Editor).MoveToBufferEnd,
		},
		AltKey: map[input.KeyId]func(*Editor){
			input.KeyBackspace: (*Editor).KillWordBackward,
		},
		Plain: map[input.KeyId]func(*Editor){
			input.KeyUp:        (*Editor).MoveUp,
			input.KeyDown:      (*Editor).MoveDown,
			input.KeyLeft:      (*Editor).MoveLeft,
			input.KeyRight:     (*Editor).MoveRight,
			input.KeyHome:      (*Editor).MoveToLineStart,
			input.KeyEnd:       (*Editor).MoveToLineEnd,
			input.KeyBackspace: (*Editor).DeleteCharBackward,
			input.KeyDelete:    (*Editor).DeleteCharForward,
			// Legacy ESC DEL / ESC BS decodes to this id with no modifier.
			input.KeyAltBackspace: (*Editor).KillWordBackward,
		},
	}
}

// Dispatch routes a decoded key to the bound Editor action. While the
// autocomplete popover is open, Enter/Tab accept, Escape dismisses and
// Up/Down move the selection; any other key closes the popover and then
// runs its normal action.
// lastWasYank, the guard gating YankPop, is only ever set true while
// dispatching a yank or yank-pop key; every other key clears it.
func (kb *Keybindings) Dispatch(e *Editor, key input.Key) {
	wasYank := e.lastWasYank
	yankish := false
	defer func() { e.lastWasYank = yankish }()

	if e.autocomp.open {
		switch key.Id {
		case input.KeyEnter, input.KeyTab:
			e.AcceptAutocomplete()
			return
		case input.KeyEscape:
			e.DismissAutocomplete()
			return
		case input.KeyDown:
			e.AutocompleteNext()
			return
		case input.KeyUp:
			e.AutocompletePrev()
			return
		default:
			e.DismissAutocomplete()
		}
	}

	if key.Id == input.KeyTab {
		e.TriggerAutocomplete()
		return
	}

	if key.Mod&input.ModCtrl != 0 && key.Id == input.KeyRune {
		r := lowerRune(key.Rune)
		if action, ok := kb.Ctrl[r]; ok {
			action(e)
			// Ctrl+Y is a real yank exactly when the ring has something
			// to give it; Yank itself is a silent no-op otherwise.
			yankish = r == 'y' && !e.killRing.IsEmpty()
			return
		}
	}

	if key.Mod&input.ModAlt != 0 {
		if key.Id == input.KeyRune {
			r := lowerRune(key.Rune)
			if action, ok := kb.Alt[r]; ok {
				action(e)
				// Alt+Y only did something if it was itself preceded by
				// a yank (YankPop's own guard) and the ring is
				// non-empty; otherwise it must not re-arm itself.
				yankish = r == 'y' && wasYank && !e.killRing.IsEmpty()
				return
			}
		}
		if action, ok := kb.AltKey[key.Id]; ok {
			action(e)
			return
		}
	}

	if key.Mod == 0 {
		if action, ok := kb.Plain[key.Id]; ok {
			action(e)
			return
		}
		switch key.Id {
		case input.KeyEnter:
			e.InsertNewline()
		case input.KeyRune:
			ch := key.Rune
			if key.Shifted != 0 {
				ch = key.Shifted
			}
			e.InsertChar(ch)
		}
	}
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
