package editor

// Snapshot is a deep-cloned editor state saved onto the undo stack.
type Snapshot struct {
	Lines  []string
	Cursor Position
}

func snapshotOf(b *Buffer, cur Position) Snapshot {
	return Snapshot{Lines: b.Lines(), Cursor: cur}
}

func (s Snapshot) bufferCopy() *Buffer {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return &Buffer{lines: lines}
}

// UndoStack is a bounded, coalescing undo history, following the same
// clone-on-push discipline as KillRing: every mutator returns a new stack.
type UndoStack struct {
	entries []Snapshot
	redo    []Snapshot
	maxSize int
	// coalescing tracks whether the most recently pushed entry absorbed a
	// run of plain-character insertions that a following insertion may
	// still merge into.
	coalescing bool
}

// NewUndoStack returns a stack bounded to maxSize entries (200 if
// maxSize <= 0).
func NewUndoStack(maxSize int) *UndoStack {
	if maxSize <= 0 {
		maxSize = 200
	}
	return &UndoStack{maxSize: maxSize}
}

func (u *UndoStack) clone() *UndoStack {
	entries := make([]Snapshot, len(u.entries))
	copy(entries, u.entries)
	redo := make([]Snapshot, len(u.redo))
	copy(redo, u.redo)
	return &UndoStack{entries: entries, redo: redo, maxSize: u.maxSize, coalescing: u.coalescing}
}

// PushCoalescing records before as the pre-edit state. If the stack is
// already mid a coalescing run (the previous push was also a plain
// character insertion, e.g. typing "word"), before is discarded and the
// run's original baseline is kept instead, so a single undo reverts the
// whole run. Any redo history is cleared, the standard discipline after a
// new edit.
func (u *UndoStack) PushCoalescing(before Snapshot) *UndoStack {
	c := u.clone()
	c.redo = nil
	if c.coalescing && len(c.entries) > 0 {
		return c
	}
	c.entries = append(c.entries, before)
	if len(c.entries) > c.maxSize {
		c.entries = c.entries[1:]
	}
	c.coalescing = true
	return c
}

// Push records before unconditionally, breaking any in-progress coalescing
// run (a newline or other non-typing edit). Redo history is cleared.
func (u *UndoStack) Push(before Snapshot) *UndoStack {
	c := u.clone()
	c.redo = nil
	c.entries = append(c.entries, before)
	if len(c.entries) > c.maxSize {
		c.entries = c.entries[1:]
	}
	c.coalescing = false
	return c
}

// BreakCoalescing ends the current coalescing run without pushing, so the
// next typed character starts a fresh undo group.
func (u *UndoStack) BreakCoalescing() *UndoStack {
	if !u.coalescing {
		return u
	}
	c := u.clone()
	c.coalescing = false
	return c
}

// Undo pops the most recent entry, returning the new stack, the popped
// snapshot, and whether one was available.
func (u *UndoStack) Undo(current Snapshot) (*UndoStack, Snapshot, bool) {
	if len(u.entries) == 0 {
		return u, Snapshot{}, false
	}
	c := u.clone()
	last := len(c.entries) - 1
	popped := c.entries[last]
	c.entries = c.entries[:last]
	c.redo = append(c.redo, current)
	c.coalescing = false
	return c, popped, true
}

// Redo pops the most recent undone entry, returning the new stack, the
// snapshot, and whether one was available.
func (u *UndoStack) Redo(current Snapshot) (*UndoStack, Snapshot, bool) {
	if len(u.redo) == 0 {
		return u, Snapshot{}, false
	}
	c := u.clone()
	last := len(c.redo) - 1
	popped := c.redo[last]
	c.redo = c.redo[:last]
	c.entries = append(c.entries, current)
	return c, popped, true
}

// IsEmpty reports whether there is nothing left to undo.
func (u *UndoStack) IsEmpty() bool { return len(u.entries) == 0 }
