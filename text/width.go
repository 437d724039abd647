package text

import (
	"strings"
	"sync"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// widthCacheSize bounds the LRU cache used by Width. 512 entries comfortably
// covers one frame's worth of repeated labels (borders, prompts, status
// lines) without growing unbounded across a long session.
const widthCacheSize = 512

type widthCache struct {
	mu    sync.Mutex
	order []string
	vals  map[string]int
}

var cache = &widthCache{vals: make(map[string]int, widthCacheSize)}

func (c *widthCache) get(s string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[s]
	if ok {
		for i, k := range c.order {
			if k == s {
				copy(c.order[i:], c.order[i+1:])
				c.order[len(c.order)-1] = s
				break
			}
		}
	}
	return v, ok
}

func (c *widthCache) put(s string, w int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.vals[s]; exists {
		c.vals[s] = w
		return
	}
	if len(c.order) >= widthCacheSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.vals, oldest)
	}
	c.order = append(c.order, s)
	c.vals[s] = w
}

// Width returns the visible column width of s: SGR, cursor-positioning,
// OSC-8 hyperlink, and APC sequences contribute zero width; each remaining
// grapheme cluster contributes its East-Asian/emoji width. Results are
// cached.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if isPureASCIIPrintable(s) {
		return len(s)
	}
	if w, ok := cache.get(s); ok {
		return w
	}
	stripped := StripSequences(s)
	w := stringWidth(stripped)
	cache.put(s, w)
	return w
}

func isPureASCIIPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// stringWidth measures a string already known to contain no control
// sequences, grapheme cluster by grapheme cluster.
func stringWidth(s string) int {
	if s == "" {
		return 0
	}
	if !containsComplexUnicode(s) {
		return uniwidth.StringWidth(s)
	}
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += ClusterWidth(gr.Str())
	}
	return width
}

// containsComplexUnicode reports whether s needs grapheme-cluster
// segmentation to measure correctly: ZWJ sequences, variation selectors,
// emoji modifiers, and combining marks all merge multiple codepoints into
// one user-perceived (and one visible-width) character.
func containsComplexUnicode(s string) bool {
	for _, r := range s {
		switch {
		case r == 0x200D: // zero-width joiner
			return true
		case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
			return true
		case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin-tone modifiers
			return true
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
			return true
		}
	}
	return false
}

// ClusterWidth returns the visible width of a single grapheme cluster.
// Multi-rune clusters (emoji+modifier, ZWJ sequences, base+combining-mark)
// take the width of their base rune; trailing modifiers, joiners, and
// combining marks never add width.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	if len(runes) == 1 {
		return uniwidth.RuneWidth(runes[0])
	}
	first := runes[0]
	if isZeroWidth(first) {
		return 0
	}
	if len(runes) >= 2 && (runes[1] == 0xFE0E || runes[1] == 0xFE0F) {
		return uniwidth.StringWidth(cluster)
	}
	return uniwidth.RuneWidth(first)
}

func isZeroWidth(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf) {
		return true
	}
	return r == '​' || r == '﻿'
}

// GraphemeClusters splits s into user-perceived characters.
func GraphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// StripSequences removes SGR, cursor-positioning CSI (G/K/H/J finals),
// OSC-8 hyperlinks, and APC markers from s, leaving only the visible text.
func StripSequences(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != 0x1b {
			b.WriteByte(s[i])
			i++
			continue
		}
		n := sequenceLen(s[i:])
		if n == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += n
	}
	return b.String()
}

// sequenceLen returns the byte length of the escape sequence at the start
// of s (s[0] == ESC), or 0 if s does not begin with a recognized sequence.
func sequenceLen(s string) int {
	if len(s) < 2 || s[0] != 0x1b {
		return 0
	}
	switch s[1] {
	case '[': // CSI
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']': // OSC
		return oscOrStringLen(s, 2)
	case '_': // APC
		return oscOrStringLen(s, 2)
	case 'P': // DCS
		return oscOrStringLen(s, 2)
	case 'O': // SS3
		if len(s) >= 3 {
			return 3
		}
		return len(s)
	default:
		return 2
	}
}

// oscOrStringLen scans a string-type sequence (OSC/DCS/APC) terminated by
// BEL or ST (ESC \), starting the scan at offset start within s.
func oscOrStringLen(s string, start int) int {
	for i := start; i < len(s); i++ {
		if s[i] == 0x07 {
			return i + 1
		}
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
			return i + 2
		}
	}
	return len(s)
}
