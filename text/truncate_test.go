package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_NoopWhenFits(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10, "…"))
}

func TestTruncate_WidthInvariant(t *testing.T) {
	inputs := []string{"hello world", "café ☕ 你好", "\x1b[31mred text here\x1b[0m"}
	for _, in := range inputs {
		for w := 1; w <= 8; w++ {
			out := Truncate(in, w, "…")
			assert.LessOrEqual(t, Width(out), w, "input=%q width=%d out=%q", in, w, out)
		}
	}
}

func TestTruncate_AppendsEllipsis(t *testing.T) {
	out := Truncate("hello world", 7, "…")
	assert.Contains(t, out, "…")
}

func TestTruncate_ResetsStyleBeforeEllipsis(t *testing.T) {
	out := Truncate("\x1b[1mbold and long text\x1b[0m", 6, "…")
	assert.Contains(t, out, ResetAll)
}

func TestTruncate_ZeroWidth(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0, "…"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hi   ", Pad("hi", 5))
	assert.Equal(t, "hello", Pad("hello", 3))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   hi", PadLeft("hi", 5))
}
