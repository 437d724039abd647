package styleadapt

import "github.com/aymanbagabas/go-osc52/v2"

// ClipboardWrite returns an OSC 52 escape sequence that sets the system
// clipboard to text. The common case this serves is SSH: the terminal
// emulator, not the remote shell, owns the native clipboard, and OSC 52 is
// the one sequence multiplexers and emulators forward back to it.
func ClipboardWrite(text string) string {
	return osc52.New(text).String()
}
