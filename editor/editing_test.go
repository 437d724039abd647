package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_InsertCharAdvancesCursor(t *testing.T) {
	e := New()
	e.InsertChar('a')
	e.InsertChar('b')
	assert.Equal(t, "ab", e.Text())
	assert.Equal(t, Position{Col: 2}, e.Cursor())
}

func TestEditor_InsertCharCoalescesIntoOneUndoGroup(t *testing.T) {
	e := New()
	e.InsertChar('w')
	e.InsertChar('o')
	e.InsertChar('w')

	e.Undo()

	assert.Equal(t, "", e.Text(), "typing a run and undoing once should revert the whole run")
}

func TestEditor_BreakChainsSplitsUndoGroupAcrossMovement(t *testing.T) {
	e := New()
	e.InsertChar('a')
	e.MoveLeft()
	e.InsertChar('b')

	e.Undo()
	assert.Equal(t, "a", e.Text(), "moving the cursor between edits should break the coalescing run")

	e.Undo()
	assert.Equal(t, "", e.Text())
}

func TestEditor_UndoRedoRoundTrip(t *testing.T) {
	e := New()
	e.InsertChar('a')
	e.breakChains()
	e.InsertChar('b')

	e.Undo()
	assert.Equal(t, "a", e.Text())

	e.Redo()
	assert.Equal(t, "ab", e.Text())
}

func TestEditor_DeleteCharBackwardJoinsLines(t *testing.T) {
	e := New()
	e.SetText("foo\nbar")
	e.setCursor(Position{Line: 1, Col: 0})

	e.DeleteCharBackward()

	assert.Equal(t, "foobar", e.Text())
	assert.Equal(t, Position{Line: 0, Col: 3}, e.Cursor())
}

func TestEditor_DeleteCharForwardAtLineEndJoinsNextLine(t *testing.T) {
	e := New()
	e.SetText("foo\nbar")
	e.setCursor(Position{Line: 0, Col: 3})

	e.DeleteCharForward()

	assert.Equal(t, "foobar", e.Text())
}

func TestEditor_InsertNewlineRespectsMaxLines(t *testing.T) {
	e := New()
	e.SetMaxLines(1)
	e.SetText("hello")
	e.setCursor(Position{Col: 5})

	e.InsertNewline()

	assert.Equal(t, "hello", e.Text(), "InsertNewline is a no-op once MaxLines is reached")
}

func TestEditor_KillLineThenYank(t *testing.T) {
	e := New()
	e.SetText("hello world")
	e.setCursor(Position{Col: 5})

	e.KillLine()
	assert.Equal(t, "hello", e.Text())

	e.MoveToLineStart()
	e.Yank()
	assert.Equal(t, " worldhello", e.Text())
}

func TestEditor_KillWordAccumulatesAcrossRepeatedCalls(t *testing.T) {
	e := New()
	e.SetText("hello big world")
	e.setCursor(Position{Col: 0})

	e.KillWord()
	e.KillWord()
	assert.Equal(t, " world", e.Text())

	e.Yank()
	assert.Equal(t, "hello big world", e.Text(), "two consecutive Alt+D calls should accumulate into one kill-ring entry")
}

func TestEditor_KillWordBackward(t *testing.T) {
	e := New()
	e.SetText("hello world")
	e.setCursor(Position{Col: 11})

	e.KillWordBackward()

	assert.Equal(t, "hello ", e.Text())
	assert.Equal(t, 6, e.Cursor().Col)
}

func TestEditor_YankPopReplacesWithOlderEntry(t *testing.T) {
	e := New()
	e.SetText("")
	e.killRing = e.killRing.Kill("first", KillOptions{Direction: KillForward})
	e.killRing = e.killRing.BreakChain()
	e.killRing = e.killRing.Kill("second", KillOptions{Direction: KillForward})

	e.Yank()
	require.Equal(t, "second", e.Text())

	e.lastWasYank = true // Dispatch normally latches this; set directly to call YankPop in isolation
	e.YankPop()
	assert.Equal(t, "first", e.Text(), "Alt+Y immediately after a yank should swap in the ring's previous entry")
}

func TestEditor_YankPopWithoutPrecedingYankIsNoop(t *testing.T) {
	e := New()
	e.SetText("hello")
	e.setCursor(Position{Col: 5})

	e.YankPop()

	assert.Equal(t, "hello", e.Text())
}

func TestEditor_SubmitClearsBufferAndRecordsHistory(t *testing.T) {
	e := New()
	e.SetText("hello")
	e.setCursor(Position{Col: 5})

	submitted := e.Submit()

	assert.Equal(t, "hello", submitted)
	assert.Equal(t, "", e.Text())

	e.HistoryOlder()
	assert.Equal(t, "hello", e.Text())
}

type stubCompleter struct {
	suggestions []Suggestion
}

func (c stubCompleter) Complete(line string, cursorCol int) []Suggestion { return c.suggestions }

func TestEditor_AutocompleteAcceptReplacesToken(t *testing.T) {
	e := New()
	e.SetText("he")
	e.setCursor(Position{Col: 2})
	e.SetCompleter(stubCompleter{suggestions: []Suggestion{{Replacement: "hello", DisplayLabel: "hello"}}})

	e.TriggerAutocomplete()
	require.True(t, e.AutocompleteOpen())

	e.AcceptAutocomplete()

	assert.Equal(t, "hello", e.Text())
	assert.False(t, e.AutocompleteOpen())
}

func TestEditor_AutocompleteDismissClosesPopoverUnchanged(t *testing.T) {
	e := New()
	e.SetText("he")
	e.setCursor(Position{Col: 2})
	e.SetCompleter(stubCompleter{suggestions: []Suggestion{{Replacement: "hello"}}})

	e.TriggerAutocomplete()
	e.DismissAutocomplete()

	assert.False(t, e.AutocompleteOpen())
	assert.Equal(t, "he", e.Text())
}
