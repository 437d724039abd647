package editor

// InsertChar inserts ch at the cursor and advances it one rune, coalescing
// with any in-progress typing run for undo purposes. A space flushes the
// run instead of extending it, so the next word starts its own undo group
// and a single Undo reverts one word at a time rather than the whole run.
func (e *Editor) InsertChar(ch rune) {
	if ch == ' ' {
		e.undo = e.undo.BreakCoalescing()
	} else {
		e.undo = e.undo.PushCoalescing(e.snapshot())
	}
	e.killRing = e.killRing.BreakChain()

	e.buffer = e.buffer.InsertChar(e.cursor.Line, e.cursor.Col, ch)
	e.setCursor(Position{Line: e.cursor.Line, Col: e.cursor.Col + 1})
}

// InsertText inserts s, which may contain newlines, at the cursor and
// leaves the cursor positioned after it (Ctrl+Y yank and pasted input both
// route here).
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	e.undo = e.undo.Push(e.snapshot())
	e.killRing = e.killRing.BreakChain()

	buf, pos := e.buffer.InsertString(e.cursor.Line, e.cursor.Col, s)
	e.buffer = buf
	e.setCursor(pos)
}

// DeleteCharBackward deletes the rune before the cursor (Backspace),
// joining with the previous line at column 0.
func (e *Editor) DeleteCharBackward() {
	if e.cursor.Col == 0 && e.cursor.Line == 0 {
		return
	}
	e.undo = e.undo.PushCoalescing(e.snapshot())
	e.killRing = e.killRing.BreakChain()

	if e.cursor.Col > 0 {
		e.buffer = e.buffer.DeleteChar(e.cursor.Line, e.cursor.Col-1)
		e.setCursor(Position{Line: e.cursor.Line, Col: e.cursor.Col - 1})
		return
	}

	prevLen := len([]rune(e.buffer.Line(e.cursor.Line - 1)))
	e.buffer = e.buffer.JoinWithNextLine(e.cursor.Line - 1)
	e.setCursor(Position{Line: e.cursor.Line - 1, Col: prevLen})
}

// DeleteCharForward deletes the rune at the cursor (Delete), joining with
// the next line at the line end.
func (e *Editor) DeleteCharForward() {
	lineLen := len([]rune(e.buffer.Line(e.cursor.Line)))
	if e.cursor.Col >= lineLen && e.cursor.Line >= e.buffer.LineCount()-1 {
		return
	}
	e.undo = e.undo.PushCoalescing(e.snapshot())
	e.killRing = e.killRing.BreakChain()

	if e.cursor.Col >= lineLen {
		e.buffer = e.buffer.JoinWithNextLine(e.cursor.Line)
		return
	}
	e.buffer = e.buffer.DeleteChar(e.cursor.Line, e.cursor.Col)
}

// InsertNewline splits the current line at the cursor (Enter), a no-op
// once MaxLines is reached.
func (e *Editor) InsertNewline() {
	if e.maxLines > 0 && e.buffer.LineCount() >= e.maxLines {
		return
	}
	e.undo = e.undo.Push(e.snapshot())
	e.killRing = e.killRing.BreakChain()

	e.buffer = e.buffer.InsertNewline(e.cursor.Line, e.cursor.Col)
	e.setCursor(Position{Line: e.cursor.Line + 1, Col: 0})
}

// KillLine kills from the cursor to the end of the line (Ctrl+K). At the
// line's end it kills the newline and joins with the next line instead.
func (e *Editor) KillLine() {
	e.undo = e.undo.Push(e.snapshot())

	row, col := e.cursor.Line, e.cursor.Col
	line := []rune(e.buffer.Line(row))

	if col >= len(line) {
		if row >= e.buffer.LineCount()-1 {
			e.killRing = e.killRing.BreakChain()
			return
		}
		e.buffer = e.buffer.JoinWithNextLine(row)
		e.killRing = e.killRing.Kill("\n", KillOptions{Accumulate: true, Direction: KillForward})
		return
	}

	buf, killed := e.buffer.DeleteToLineEnd(row, col)
	e.buffer = buf
	e.killRing = e.killRing.Kill(killed, KillOptions{Accumulate: true, Direction: KillForward})
}

// KillToLineStart kills from the start of the line to the cursor
// (Ctrl+U).
func (e *Editor) KillToLineStart() {
	row, col := e.cursor.Line, e.cursor.Col
	buf, killed := e.buffer.DeleteToLineStart(row, col)
	if killed == "" {
		e.killRing = e.killRing.BreakChain()
		return
	}
	e.undo = e.undo.Push(e.snapshot())
	e.buffer = buf
	e.killRing = e.killRing.Kill(killed, KillOptions{Prepend: true, Accumulate: true, Direction: KillBackward})
	e.setCursor(Position{Line: row, Col: 0})
}

// KillWord kills the word run after the cursor (Alt+D).
func (e *Editor) KillWord() {
	row, col := e.cursor.Line, e.cursor.Col
	line := []rune(e.buffer.Line(row))
	end := forwardWordBoundary(line, col)
	if end == col {
		e.killRing = e.killRing.BreakChain()
		return
	}

	e.undo = e.undo.Push(e.snapshot())
	buf, killed := e.buffer.DeleteRange(NewRange(Position{Line: row, Col: col}, Position{Line: row, Col: end}))
	e.buffer = buf
	e.killRing = e.killRing.Kill(killed, KillOptions{Accumulate: true, Direction: KillForward})
}

// KillWordBackward kills the word run before the cursor (Ctrl+W,
// Alt+Backspace).
func (e *Editor) KillWordBackward() {
	row, col := e.cursor.Line, e.cursor.Col
	line := []rune(e.buffer.Line(row))
	start := backwardWordBoundary(line, col)
	if start == col {
		e.killRing = e.killRing.BreakChain()
		return
	}

	e.undo = e.undo.Push(e.snapshot())
	buf, killed := e.buffer.DeleteRange(NewRange(Position{Line: row, Col: start}, Position{Line: row, Col: col}))
	e.buffer = buf
	e.killRing = e.killRing.Kill(killed, KillOptions{Prepend: true, Accumulate: true, Direction: KillBackward})
	e.setCursor(Position{Line: row, Col: start})
}

// Yank inserts the kill ring's current entry at the cursor (Ctrl+Y).
func (e *Editor) Yank() {
	text := e.killRing.Yank()
	if text == "" {
		return
	}
	e.InsertText(text)
}

// YankPop rotates the kill ring and replaces the just-yanked text with the
// new current entry (Alt+Y). A no-op unless it immediately follows a
// Yank or YankPop.
func (e *Editor) YankPop() {
	if !e.lastWasYank {
		return
	}
	previous := e.killRing.Yank()
	e.killRing = e.killRing.YankPop()
	next := e.killRing.Yank()
	if next == "" {
		return
	}

	end := e.cursor
	start := Position{Line: end.Line, Col: end.Col - len([]rune(previous))}
	if len([]rune(previous)) > end.Col {
		start = Position{Line: end.Line, Col: 0}
	}
	buf, _ := e.buffer.DeleteRange(NewRange(start, end))
	e.buffer = buf
	e.setCursor(start)
	e.InsertText(next)
}

// TriggerAutocomplete asks the installed Completer for suggestions at the
// cursor's token and opens the popover if any are returned (Tab).
func (e *Editor) TriggerAutocomplete() {
	if e.completer == nil {
		return
	}
	line := e.buffer.Line(e.cursor.Line)
	start, end := tokenBounds(line, e.cursor.Col)
	suggestions := e.completer.Complete(line, e.cursor.Col)
	if len(suggestions) == 0 {
		e.autocomp = closedAutocomplete()
		return
	}
	e.autocomp = autocompleteState{
		open:        true,
		suggestions: suggestions,
		tokenStart:  start,
		tokenEnd:    end,
		line:        e.cursor.Line,
	}
}

// AutocompleteNext selects the next suggestion in the open popover.
func (e *Editor) AutocompleteNext() {
	if !e.autocomp.open {
		return
	}
	e.autocomp.selected = (e.autocomp.selected + 1) % len(e.autocomp.suggestions)
}

// AutocompletePrev selects the previous suggestion in the open popover.
func (e *Editor) AutocompletePrev() {
	if !e.autocomp.open {
		return
	}
	n := len(e.autocomp.suggestions)
	e.autocomp.selected = (e.autocomp.selected - 1 + n) % n
}

// AcceptAutocomplete replaces the current token with the selected
// suggestion and closes the popover (Enter/Tab while open).
func (e *Editor) AcceptAutocomplete() {
	if !e.autocomp.open {
		return
	}
	s := e.autocomp.suggestions[e.autocomp.selected]
	row := e.autocomp.line
	start, end := e.autocomp.tokenStart, e.autocomp.tokenEnd
	e.autocomp = closedAutocomplete()

	e.undo = e.undo.Push(e.snapshot())
	e.buffer, _ = e.buffer.DeleteRange(NewRange(Position{Line: row, Col: start}, Position{Line: row, Col: end}))
	buf, pos := e.buffer.InsertString(row, start, s.Replacement)
	e.buffer = buf
	e.setCursor(pos)
}

// DismissAutocomplete closes the popover without accepting (Escape).
func (e *Editor) DismissAutocomplete() { e.autocomp = closedAutocomplete() }

// AutocompleteOpen reports whether the suggestion popover is showing.
func (e *Editor) AutocompleteOpen() bool { return e.autocomp.open }
