package editor

// KillDirection records which way a kill extended the text, so a
// subsequent accumulating kill in the same direction merges instead of
// appending a new ring entry.
type KillDirection int

const (
	// KillForward is a kill that removed text after the cursor (Ctrl+K,
	// Alt+D).
	KillForward KillDirection = iota
	// KillBackward is a kill that removed text before the cursor (Ctrl+U,
	// Ctrl+W).
	KillBackward
)

// KillOptions controls how a Kill call combines with the ring's most
// recent entry.
type KillOptions struct {
	// Prepend, when Accumulate also merges, places text before the
	// existing entry instead of after it (backward kills read naturally
	// right-to-left).
	Prepend bool
	// Accumulate merges with the previous entry when it came from the
	// same Direction and was not separated by an intervening non-kill
	// action.
	Accumulate bool
	Direction  KillDirection
}

// KillRing is an Emacs-style bounded ring of killed text with yank-pop
// cycling.
type KillRing struct {
	items     []string
	maxSize   int
	index     int
	lastDir   KillDirection
	hasLastOp bool
}

// NewKillRing returns a ring holding at most maxSize entries (10 if
// maxSize <= 0).
func NewKillRing(maxSize int) *KillRing {
	if maxSize <= 0 {
		maxSize = 10
	}
	return &KillRing{items: make([]string, 0, maxSize), maxSize: maxSize}
}

func (k *KillRing) clone() *KillRing {
	items := make([]string, len(k.items))
	copy(items, k.items)
	return &KillRing{items: items, maxSize: k.maxSize, index: k.index, lastDir: k.lastDir, hasLastOp: k.hasLastOp}
}

// Kill pushes text onto the ring per opts, returning the new ring. A
// no-op for an empty string.
func (k *KillRing) Kill(text string, opts KillOptions) *KillRing {
	if text == "" {
		return k
	}
	c := k.clone()

	if opts.Accumulate && c.hasLastOp && c.lastDir == opts.Direction && len(c.items) > 0 {
		last := len(c.items) - 1
		if opts.Prepend {
			c.items[last] = text + c.items[last]
		} else {
			c.items[last] += text
		}
	} else {
		if len(c.items) >= c.maxSize {
			c.items = c.items[1:]
		}
		c.items = append(c.items, text)
	}
	c.index = len(c.items) - 1
	c.lastDir = opts.Direction
	c.hasLastOp = true
	return c
}

// BreakChain ends accumulation: the next Kill starts a fresh ring entry
// regardless of direction. Called after any non-kill editing action.
func (k *KillRing) BreakChain() *KillRing {
	if !k.hasLastOp {
		return k
	}
	c := k.clone()
	c.hasLastOp = false
	return c
}

// Yank returns the entry at the ring's current index, or "" if empty.
func (k *KillRing) Yank() string {
	if len(k.items) == 0 || k.index < 0 || k.index >= len(k.items) {
		return ""
	}
	return k.items[k.index]
}

// YankPop rotates the index backward one entry, for Alt+Y re-yanking.
func (k *KillRing) YankPop() *KillRing {
	c := k.clone()
	if len(c.items) == 0 {
		return c
	}
	c.index--
	if c.index < 0 {
		c.index = len(c.items) - 1
	}
	return c
}

// IsEmpty reports whether the ring holds no entries.
func (k *KillRing) IsEmpty() bool { return len(k.items) == 0 }
