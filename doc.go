// Package pitui is the root umbrella package for the pitui terminal-UI
// engine.
//
// pitui renders components to a terminal with differential redraws,
// decodes keyboard input (including the Kitty keyboard protocol), and
// lays out Unicode text with full grapheme-cluster and SGR awareness.
// Each concern lives in its own package and can be imported directly;
// this package only re-exports the entry points most programs need to
// get a frame loop running.
//
//   - github.com/pi-tui/pitui/terminal - raw-mode terminal, input/resize delivery
//   - github.com/pi-tui/pitui/input    - keyboard byte-sequence decoding
//   - github.com/pi-tui/pitui/text     - grapheme width, wrapping, SGR tracking
//   - github.com/pi-tui/pitui/tui      - component tree, overlays, differential renderer
//   - github.com/pi-tui/pitui/editor   - multi-line text editing component
//   - github.com/pi-tui/pitui/images   - Kitty/iTerm2 inline graphics
//
// # Quick start
//
//	term := terminal.New()
//	engine := tui.NewEngine(term)
//	engine.Add(editor.New())
//	if err := engine.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Stop()
package pitui

import (
	"github.com/pi-tui/pitui/editor"
	"github.com/pi-tui/pitui/terminal"
	"github.com/pi-tui/pitui/tui"
)

// NewTerminal creates the platform's Terminal. Every platform gets the
// same ANSI-escape implementation; on Windows it also turns on the
// console's virtual-terminal input mode.
func NewTerminal() terminal.Terminal {
	return terminal.New()
}

// NewEngine creates a render engine bound to term. The engine owns
// term's lifecycle from Start through Stop.
func NewEngine(term terminal.Terminal) *tui.Engine {
	return tui.NewEngine(term)
}

// NewEditor creates a multi-line text-editing component with Emacs-style
// default keybindings, ready to add to an Engine.
func NewEditor() *editor.Editor {
	return editor.New()
}
