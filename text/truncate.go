package text

import "strings"

// Truncate shortens s so its visible width fits within w columns, appending
// ellipsis when truncation actually removed content. A truncated result
// always closes with a full reset (CSI 0m) before the ellipsis, so no color
// or attribute active at the cut point carries into the ellipsis.
func Truncate(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	ellipsisWidth := Width(ellipsis)
	budget := w - ellipsisWidth
	if budget < 0 {
		budget = 0
	}

	tracker := SGRState{}
	items := tokenize(s, &tracker)

	var b strings.Builder
	curWidth := 0
	for _, it := range items {
		if it.cluster == "" {
			b.WriteString(it.raw())
			continue
		}
		if curWidth+it.width > budget {
			break
		}
		b.WriteString(it.raw())
		curWidth += it.width
	}
	b.WriteString(ResetAll)
	b.WriteString(ellipsis)
	return b.String()
}

// Pad right-pads s with spaces until its visible width reaches w. If s is
// already at least w columns wide, it is returned unchanged.
func Pad(s string, w int) string {
	deficit := w - Width(s)
	if deficit <= 0 {
		return s
	}
	return s + strings.Repeat(" ", deficit)
}

// PadLeft left-pads s with spaces until its visible width reaches w.
func PadLeft(s string, w int) string {
	deficit := w - Width(s)
	if deficit <= 0 {
		return s
	}
	return strings.Repeat(" ", deficit) + s
}
