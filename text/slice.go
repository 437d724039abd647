package text

import "strings"

// Slice extracts the visible columns [start, end) from s. The result opens
// with an SGR sequence re-establishing whatever attributes were active at
// column start, even if none of the codes that set them fall inside the
// slice, so the fragment is independently style-complete.
//
// A wide (2-column) grapheme cluster straddling the start or end boundary is
// handled according to strict: in strict mode the straddling cluster is
// dropped and the column it would have occupied inside the range is padded
// with a space, so the result never contains a half-rendered wide
// character; in non-strict mode the whole cluster is kept even though it
// extends one column past the boundary, which callers accept in exchange
// for never splitting a character in two.
func Slice(s string, start, end int, strict bool) string {
	if end <= start {
		return ""
	}
	tracker := SGRState{}
	items := tokenize(s, &tracker)

	var b strings.Builder
	col := 0
	entered := false
	stateAtStart := SGRState{}

	for _, it := range items {
		if it.cluster == "" {
			if entered {
				b.WriteString(it.raw())
			}
			continue
		}
		clusterStart := col
		clusterEnd := col + it.width
		col = clusterEnd

		if clusterEnd <= start {
			stateAtStart = it.afterState
			continue
		}
		if clusterStart >= end {
			break
		}

		if !entered {
			entered = true
			if prefix := stateAtStart.Sequence(); prefix != "" {
				b.WriteString(prefix)
			}
		}

		fullyInside := clusterStart >= start && clusterEnd <= end
		if fullyInside {
			b.WriteString(it.codes)
			b.WriteString(it.cluster)
			continue
		}

		// Cluster straddles a boundary.
		overlapStart := clusterStart
		if start > overlapStart {
			overlapStart = start
		}
		overlapEnd := clusterEnd
		if end < overlapEnd {
			overlapEnd = end
		}
		if strict {
			b.WriteString(it.codes)
			b.WriteString(strings.Repeat(" ", overlapEnd-overlapStart))
			continue
		}
		b.WriteString(it.codes)
		b.WriteString(it.cluster)
	}
	return b.String()
}

// ExtractSegments splits s at the column range [start, start+width) into the
// portion before the range, the portion covering it, and the portion after,
// for splicing overlay content into an existing rendered line. Each segment
// is independently style-complete (it carries whatever SGR prefix was
// active at its own start).
func ExtractSegments(s string, start, width int) (before, covered, after string) {
	total := Width(s)
	end := start + width
	before = Slice(s, 0, start, true)
	covered = Slice(s, start, end, true)
	if end < total {
		after = Slice(s, end, total, true)
	}
	return before, covered, after
}
