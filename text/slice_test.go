package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_PlainASCII(t *testing.T) {
	assert.Equal(t, "ello", Slice("hello", 1, 5, true))
	assert.Equal(t, "hel", Slice("hello", 0, 3, true))
}

func TestSlice_EmptyRange(t *testing.T) {
	assert.Equal(t, "", Slice("hello", 3, 3, true))
	assert.Equal(t, "", Slice("hello", 4, 2, true))
}

func TestSlice_StrictDropsStraddlingWideCluster(t *testing.T) {
	// "你" occupies columns [0,2); slicing [1,3) strictly can't show half
	// of it, so that column is blanked instead.
	out := Slice("你好", 1, 3, true)
	assert.Equal(t, 2, Width(out))
	assert.NotContains(t, out, "你")
}

func TestSlice_NonStrictKeepsWholeCluster(t *testing.T) {
	out := Slice("你好", 1, 3, false)
	assert.Contains(t, out, "你")
}

func TestSlice_PreservesActiveStyleAtBoundary(t *testing.T) {
	out := Slice("\x1b[1mbold\x1b[0m text", 2, 6, true)
	assert.Contains(t, out, "\x1b[1m")
}

func TestExtractSegments_RoundTrip(t *testing.T) {
	before, covered, after := ExtractSegments("hello world", 2, 5)
	assert.Equal(t, Width("he"), Width(before))
	assert.Equal(t, 5, Width(covered))
	assert.Greater(t, Width(after), 0)
}

func TestExtractSegments_CoversToEnd(t *testing.T) {
	_, _, after := ExtractSegments("hello", 2, 3)
	assert.Equal(t, "", after)
}
