package editor

// History is the bounded ring of previously submitted buffer snapshots an
// editor can browse with up/down, grounded on the same bounded-growth,
// clone-on-push discipline as KillRing since no example repo's history
// model fits the terminal-editor shape directly.
type History struct {
	entries []string
	maxSize int
	// index is -1 when editing the live draft, otherwise an offset into
	// entries counting back from the most recent (0 is the newest).
	index int
	draft string
}

// NewHistory returns a history bounded to maxSize entries (200 if
// maxSize <= 0).
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = 200
	}
	return &History{maxSize: maxSize, index: -1}
}

func (h *History) clone() *History {
	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return &History{entries: entries, maxSize: h.maxSize, index: h.index, draft: h.draft}
}

// Submit appends text as the newest entry and resets browsing to the live
// draft. A no-op for an empty string.
func (h *History) Submit(text string) *History {
	if text == "" {
		return h
	}
	c := h.clone()
	c.entries = append(c.entries, text)
	if len(c.entries) > c.maxSize {
		c.entries = c.entries[1:]
	}
	c.index = -1
	c.draft = ""
	return c
}

// Browsing reports whether the history is currently showing a past entry
// rather than the live draft.
func (h *History) Browsing() bool { return h.index >= 0 }

// Older moves one entry further into the past, stashing liveDraft the
// first time browsing begins. Returns the new history and the text to
// load, or ok=false if already at the oldest entry or there is no history.
func (h *History) Older(liveDraft string) (hist *History, text string, ok bool) {
	if len(h.entries) == 0 {
		return h, "", false
	}
	c := h.clone()
	if c.index == -1 {
		c.draft = liveDraft
		c.index = 0
	} else if c.index < len(c.entries)-1 {
		c.index++
	} else {
		return h, "", false
	}
	return c, c.entries[len(c.entries)-1-c.index], true
}

// Newer moves one entry back toward the present, restoring the stashed
// draft once the newest entry is passed. ok is false if not currently
// browsing.
func (h *History) Newer() (hist *History, text string, ok bool) {
	if h.index < 0 {
		return h, "", false
	}
	c := h.clone()
	if c.index == 0 {
		c.index = -1
		return c, c.draft, true
	}
	c.index--
	return c, c.entries[len(c.entries)-1-c.index], true
}
