package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_PlainByte(t *testing.T) {
	var b Buffer
	b.Write([]byte("a"))
	ev, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, EventData, ev.Kind)
	assert.Equal(t, []byte("a"), ev.Bytes)
	assert.Equal(t, 0, b.Len())
}

func TestBuffer_CompleteCSI(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[A"))
	ev, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte("\x1b[A"), ev.Bytes)
}

func TestBuffer_SplitAcrossWrites(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b["))
	_, ok := b.Pop()
	assert.False(t, ok, "incomplete CSI must not pop")

	b.Write([]byte("31;2u"))
	ev, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte("\x1b[31;2u"), ev.Bytes)
}

func TestBuffer_BracketedPaste(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[200~hello\nworld\x1b[201~"))
	ev, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, EventPaste, ev.Kind)
	assert.Equal(t, []byte("hello\nworld"), ev.Bytes)
}

func TestBuffer_IncompletePaste(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[200~partial"))
	_, ok := b.Pop()
	assert.False(t, ok)
}

func TestBuffer_LoneEscapeIncomplete(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b"))
	_, ok := b.Pop()
	assert.False(t, ok, "a lone ESC must wait for the idle timeout")
}

func TestBuffer_Flush_LoneEscape(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b"))
	ev, ok := b.Flush()
	require.True(t, ok)
	assert.Equal(t, []byte("\x1b"), ev.Bytes)
}

func TestBuffer_Flush_HighBitMetaConversion(t *testing.T) {
	var b Buffer
	b.Write([]byte{0xE5}) // e.g. lone byte from a legacy Meta-mapping terminal
	ev, ok := b.Flush()
	require.True(t, ok)
	assert.Equal(t, []byte{0x1b, 0xE5 - 128}, ev.Bytes)
}

func TestBuffer_UTF8Rune(t *testing.T) {
	var b Buffer
	b.Write([]byte("héllo"))
	var got []byte
	for {
		ev, ok := b.Pop()
		if !ok {
			break
		}
		got = append(got, ev.Bytes...)
	}
	assert.Equal(t, "héllo", string(got))
}

func TestBuffer_IncompleteUTF8Rune(t *testing.T) {
	var b Buffer
	b.Write([]byte{0xC3}) // lead byte of a 2-byte rune, continuation not yet arrived
	_, ok := b.Pop()
	assert.False(t, ok)
}

func TestBuffer_SGRMouse(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[<0;10;20M"))
	ev, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte("\x1b[<0;10;20M"), ev.Bytes)
}

func TestBuffer_ExtractCellSizeReport(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[6;20;10t"))
	w, h, ok := b.ExtractCellSizeReport()
	require.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, 0, b.Len())
}

func TestBuffer_ExtractCellSizeReport_Incomplete(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[6;20;1"))
	_, _, ok := b.ExtractCellSizeReport()
	assert.False(t, ok)
	assert.Equal(t, 8, b.Len(), "incomplete report must stay buffered")
}

func TestBuffer_ExtractCellSizeReport_LeavesOtherBytesIntact(t *testing.T) {
	var b Buffer
	b.Write([]byte("a\x1b[6;20;10tb"))
	w, h, ok := b.ExtractCellSizeReport()
	require.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, []byte("ab"), b.buf)
}

func TestBuffer_ExtractCellSizeReport_None(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[A"))
	_, _, ok := b.ExtractCellSizeReport()
	assert.False(t, ok)
}

func TestBuffer_ExtractKittyAck(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[?5u"))
	flags, ok := b.ExtractKittyAck()
	require.True(t, ok)
	assert.Equal(t, 5, flags)
	assert.Equal(t, 0, b.Len())
}

func TestBuffer_ExtractKittyAck_Incomplete(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[?5"))
	_, ok := b.ExtractKittyAck()
	assert.False(t, ok)
	assert.Equal(t, 4, b.Len(), "incomplete ack must stay buffered")
}

func TestBuffer_ExtractKittyAck_LeavesOtherBytesIntact(t *testing.T) {
	var b Buffer
	b.Write([]byte("a\x1b[?5ub"))
	flags, ok := b.ExtractKittyAck()
	require.True(t, ok)
	assert.Equal(t, 5, flags)
	assert.Equal(t, []byte("ab"), b.buf)
}

func TestBuffer_ExtractKittyAck_None(t *testing.T) {
	var b Buffer
	b.Write([]byte("\x1b[A"))
	_, ok := b.ExtractKittyAck()
	assert.False(t, ok)
}
