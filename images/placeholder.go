package images

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Placeholder renders a bordered box-drawing rectangle cols x rows cells
// with alt centered on the first interior line, for DetectProtocol ==
// ProtocolNone terminals. alt is measured and truncated with
// go-runewidth rather than this module's own text package: the
// placeholder is a plain-ASCII-border fallback path with no SGR/grapheme
// state to track, and go-runewidth's ambiguous-width handling is the
// pack's other width convention, already wired here as a deliberately
// separate concern from the engine's own uniseg-based text.Width.
func Placeholder(alt string, cols, rows int) []string {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}

	interior := cols - 2
	label := runewidth.Truncate(alt, interior, "")
	pad := interior - runewidth.StringWidth(label)
	left := pad / 2
	right := pad - left

	lines := make([]string, rows)
	lines[0] = "+" + strings.Repeat("-", interior) + "+"
	lines[rows-1] = lines[0]
	blank := "|" + strings.Repeat(" ", interior) + "|"
	for i := 1; i < rows-1; i++ {
		lines[i] = blank
	}
	if rows == 2 {
		// No interior row to hold the label; the caller gets a bare box.
		return lines
	}
	lines[1] = "|" + strings.Repeat(" ", left) + label + strings.Repeat(" ", right) + "|"
	return lines
}
