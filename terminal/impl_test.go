package terminal

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi-tui/pitui/input"
)

// pipeTerminal returns an ansiTerminal writing to the write end of an
// os.Pipe so tests can assert on exactly what was sent, and a reader to
// drain it.
func pipeTerminal(t *testing.T) (*ansiTerminal, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		w.Close()
		r.Close()
	})
	return &ansiTerminal{in: os.Stdin, out: w}, r
}

func readAll(t *testing.T, r *os.File, w *os.File) string {
	t.Helper()
	w.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestANSITerminal_ClearLine(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.ClearLine())
	assert.Equal(t, "\r\x1b[2K", readAll(t, r, term.out))
}

func TestANSITerminal_ClearFromCursor(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.ClearFromCursor())
	assert.Equal(t, "\x1b[J", readAll(t, r, term.out))
}

func TestANSITerminal_ClearScreen(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.ClearScreen())
	assert.Equal(t, "\x1b[2J\x1b[H", readAll(t, r, term.out))
}

func TestANSITerminal_MoveBy(t *testing.T) {
	cases := []struct {
		lines int
		want  string
	}{
		{0, ""},
		{3, "\x1b[3B"},
		{-2, "\x1b[2A"},
	}
	for _, c := range cases {
		term, r := pipeTerminal(t)
		require.NoError(t, term.MoveBy(c.lines))
		assert.Equal(t, c.want, readAll(t, r, term.out))
	}
}

func TestANSITerminal_CursorVisibility(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ShowCursor())
	assert.Equal(t, "\x1b[?25l\x1b[?25h", readAll(t, r, term.out))
}

func TestANSITerminal_SetTitle(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.SetTitle("pitui"))
	assert.Equal(t, "\x1b]2;pitui\x07", readAll(t, r, term.out))
}

func TestANSITerminal_SynchronizedOutput(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.BeginSynchronizedOutput())
	require.NoError(t, term.EndSynchronizedOutput())
	assert.Equal(t, "\x1b[?2026h\x1b[?2026l", readAll(t, r, term.out))
}

func TestANSITerminal_CellPixelSize_UnknownUntilObserved(t *testing.T) {
	term, _ := pipeTerminal(t)
	_, _, ok := term.CellPixelSize()
	assert.False(t, ok)
}

func TestANSITerminal_CellPixelSize_CapturedFromReport(t *testing.T) {
	term, _ := pipeTerminal(t)
	var buf input.Buffer
	buf.Write([]byte("\x1b[6;20;10t"))
	term.maybeCaptureCellSize(&buf)
	w, h, ok := term.CellPixelSize()
	require.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
}

func TestANSITerminal_KittyProtocolActive_FalseUntilAcked(t *testing.T) {
	term, _ := pipeTerminal(t)
	assert.False(t, term.KittyProtocolActive())
}

func TestANSITerminal_KittyProtocolActive_TrueAfterAckAndPushesEnableFlags(t *testing.T) {
	term, r := pipeTerminal(t)
	var buf input.Buffer
	buf.Write([]byte("\x1b[?0u"))
	term.maybeCaptureKittyAck(&buf)
	assert.True(t, term.KittyProtocolActive())
	assert.Equal(t, kittyEnable, readAll(t, r, term.out))
}

func TestANSITerminal_WriteClipboard_EmitsOSC52(t *testing.T) {
	term, r := pipeTerminal(t)
	require.NoError(t, term.WriteClipboard("hello"))
	out := readAll(t, r, term.out)
	assert.True(t, strings.HasPrefix(out, "\x1b]52;"))
	assert.True(t, strings.HasSuffix(out, "\a") || strings.HasSuffix(out, "\x1b\\"))
}
