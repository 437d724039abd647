package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectProtocol_ITerm(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "iTerm.app")
	t.Setenv("KITTY_WINDOW_ID", "")
	assert.Equal(t, ProtocolITerm2, DetectProtocol())
}

func TestDetectProtocol_Ghostty(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "ghostty")
	t.Setenv("KITTY_WINDOW_ID", "")
	assert.Equal(t, ProtocolKitty, DetectProtocol())
}

func TestDetectProtocol_KittyWindowId(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("KITTY_WINDOW_ID", "1")
	assert.Equal(t, ProtocolKitty, DetectProtocol())
}

func TestDetectProtocol_None(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("KITTY_WINDOW_ID", "")
	assert.Equal(t, ProtocolNone, DetectProtocol())
}
