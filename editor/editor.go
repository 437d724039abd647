package editor

import (
	"github.com/pi-tui/pitui/input"
	"github.com/pi-tui/pitui/text"
	"github.com/pi-tui/pitui/tui"
)

// Editor is a multi-line text editing Component: a functional core (Buffer,
// Position, KillRing, UndoStack, History) wrapped by this mutable shell,
// dispatched through a swappable Keybindings table.
type Editor struct {
	buffer    *Buffer
	cursor    Position
	selection *Range

	killRing *KillRing
	undo     *UndoStack
	history  *History
	autocomp autocompleteState

	keybindings *Keybindings
	completer   Completer

	readOnly bool
	maxLines int
	focused  bool

	// lastWasYank is set by Keybindings.Dispatch right after it dispatches
	// a yank or yank-pop key, and cleared by any other key; YankPop (Alt+Y)
	// acts only while it is set. Calling Yank directly does not set it.
	lastWasYank bool

	lastWidth int
	cache     []string

	kittyActive bool
}

// New returns an empty Editor with the default Emacs keybindings.
func New() *Editor {
	return &Editor{
		buffer:      NewBuffer(),
		killRing:    NewKillRing(10),
		undo:        NewUndoStack(200),
		history:     NewHistory(200),
		autocomp:    closedAutocomplete(),
		keybindings: DefaultKeybindings(),
	}
}

// SetKeybindings swaps this editor's keybinding table. Each Editor holds
// its own table; there is no process-wide keybindings registry.
func (e *Editor) SetKeybindings(kb *Keybindings) { e.keybindings = kb }

// SetCompleter installs the Tab-completion source. A nil completer
// disables autocomplete.
func (e *Editor) SetCompleter(c Completer) { e.completer = c }

// SetReadOnly toggles whether editing operations are accepted.
func (e *Editor) SetReadOnly(ro bool) { e.readOnly = ro }

// SetMaxLines bounds the buffer's line count (0 = unlimited); InsertNewline
// becomes a no-op once reached.
func (e *Editor) SetMaxLines(n int) { e.maxLines = n }

// Text returns the buffer's full contents.
func (e *Editor) Text() string { return e.buffer.String() }

// SetText replaces the buffer wholesale and resets the cursor to (0, 0).
func (e *Editor) SetText(text string) {
	e.buffer = NewBufferFromString(text)
	e.cursor = Position{}
	e.selection = nil
	e.Invalidate()
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Position { return e.cursor }

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool { return e.selection != nil && !e.selection.Empty() }

// Selection returns the active selection range, if any.
func (e *Editor) Selection() (Range, bool) {
	if e.selection == nil {
		return Range{}, false
	}
	return *e.selection, true
}

// SetSelection sets the active selection.
func (e *Editor) SetSelection(r Range) { e.selection = &r }

// ClearSelection drops any active selection.
func (e *Editor) ClearSelection() { e.selection = nil }

// SelectedText returns the text spanned by the active selection, or "".
func (e *Editor) SelectedText() string {
	if !e.HasSelection() {
		return ""
	}
	return e.buffer.TextInRange(*e.selection)
}

func (e *Editor) setCursor(p Position) {
	e.cursor = p
	e.selection = nil
}

// breakChains ends any in-progress undo-coalescing and kill-ring
// accumulation; called by every operation that is not itself a
// coalescing/accumulating edit, so a cursor move or other non-typing
// action always starts a fresh undo group and kill-ring entry.
func (e *Editor) breakChains() {
	e.undo = e.undo.BreakCoalescing()
	e.killRing = e.killRing.BreakChain()
}

func (e *Editor) snapshot() Snapshot { return snapshotOf(e.buffer, e.cursor) }

// Undo reverts to the state before the most recent edit or coalesced
// typing run. A silent no-op when nothing is left to undo.
func (e *Editor) Undo() {
	stack, popped, ok := e.undo.Undo(e.snapshot())
	if !ok {
		return
	}
	e.undo = stack
	e.buffer = popped.bufferCopy()
	e.cursor = popped.Cursor
	e.selection = nil
	e.Invalidate()
}

// Redo reapplies an edit undone by Undo. A no-op when there is nothing to
// redo.
func (e *Editor) Redo() {
	stack, popped, ok := e.undo.Redo(e.snapshot())
	if !ok {
		return
	}
	e.undo = stack
	e.buffer = popped.bufferCopy()
	e.cursor = popped.Cursor
	e.selection = nil
	e.Invalidate()
}

// Submit records the current buffer into history and clears it, returning
// the submitted text (Enter in a single-line prompt embedding this
// editor).
func (e *Editor) Submit() string {
	text := e.buffer.String()
	e.history = e.history.Submit(text)
	e.SetText("")
	return text
}

// HistoryOlder loads the previous history entry, stashing the live draft
// the first time it is called. A no-op at the oldest entry or with no
// history.
func (e *Editor) HistoryOlder() {
	hist, text, ok := e.history.Older(e.buffer.String())
	if !ok {
		return
	}
	e.history = hist
	e.loadHistoryText(text)
}

// HistoryNewer moves toward the present, restoring the stashed live draft
// once the newest entry is passed. A no-op when not currently browsing.
func (e *Editor) HistoryNewer() {
	hist, text, ok := e.history.Newer()
	if !ok {
		return
	}
	e.history = hist
	e.loadHistoryText(text)
}

func (e *Editor) loadHistoryText(text string) {
	e.buffer = NewBufferFromString(text)
	lastRow := e.buffer.LineCount() - 1
	e.cursor = Position{Line: lastRow, Col: len([]rune(e.buffer.Line(lastRow)))}
	e.selection = nil
	e.Invalidate()
}

// Invalidate clears the render cache; Render recomputes on next call.
func (e *Editor) Invalidate() { e.cache = nil }

// SetFocused implements tui.Focusable.
func (e *Editor) SetFocused(v bool) {
	e.focused = v
	e.Invalidate()
}

// Focused implements tui.Focusable.
func (e *Editor) Focused() bool { return e.focused }

// WantsKeyRelease implements tui.KeyReleaseWanter; the editor only acts on
// press/repeat.
func (e *Editor) WantsKeyRelease() bool { return false }

// SetKittyActive implements tui.KittyAware; the engine calls this before
// every HandleInput dispatch with the terminal's negotiated protocol state.
func (e *Editor) SetKittyActive(v bool) { e.kittyActive = v }

// Render renders every buffer line truncated to width, embedding the
// cursor marker at the focused cursor's grapheme position.
func (e *Editor) Render(width int) []string {
	if e.cache != nil && e.lastWidth == width {
		return e.cache
	}

	lines := e.buffer.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		rendered := line
		if e.focused && i == e.cursor.Line {
			rendered = insertMarker(line, e.cursor.Col)
		}
		out[i] = text.Truncate(rendered, width, "")
	}

	e.lastWidth = width
	e.cache = out
	return out
}

// insertMarker splices CursorMarker into line at the rune offset col.
func insertMarker(line string, col int) string {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	return string(runes[:col]) + tui.CursorMarker + string(runes[col:])
}

// HandleInput implements tui.InputHandler: classifies raw bytes into a Key
// and dispatches through the active keybinding table.
func (e *Editor) HandleInput(data []byte) {
	if e.readOnly {
		return
	}
	key, ok := input.Classify(data, e.kittyActive)
	if !ok || key.Event == input.EventRelease {
		return
	}
	e.keybindings.Dispatch(e, key)
	e.Invalidate()
}

var (
	_ tui.Component        = (*Editor)(nil)
	_ tui.Focusable        = (*Editor)(nil)
	_ tui.InputHandler     = (*Editor)(nil)
	_ tui.KeyReleaseWanter = (*Editor)(nil)
	_ tui.KittyAware       = (*Editor)(nil)
)
