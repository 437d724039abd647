package images

import "os"

// Protocol identifies which inline-image wire format a terminal accepts.
type Protocol int

const (
	// ProtocolNone means the host terminal has no recognized inline-image
	// support; callers should fall back to Placeholder.
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolITerm2
)

// DetectProtocol inspects the environment a real terminal sets to
// identify inline-image support, the same variables termimg.go's
// DetectTerminal checks: $TERM_PROGRAM for iTerm2/Ghostty, $KITTY_WINDOW_ID
// for Kitty. Ghostty speaks the Kitty graphics protocol despite not being
// Kitty itself.
func DetectProtocol() Protocol {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app":
		return ProtocolITerm2
	case "ghostty":
		return ProtocolKitty
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return ProtocolKitty
	}
	return ProtocolNone
}
