package styleadapt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipboardWrite_WrapsOSC52(t *testing.T) {
	seq := ClipboardWrite("hello world")
	assert.True(t, strings.HasPrefix(seq, "\x1b]52;"))
}

func TestClipboardWrite_EmptyStringStillProducesSequence(t *testing.T) {
	seq := ClipboardWrite("")
	assert.True(t, strings.HasPrefix(seq, "\x1b]52;"))
}
