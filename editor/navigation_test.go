package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardWordBoundary_SkipsWhitespaceThenWordRun(t *testing.T) {
	line := []rune("  hello world")
	assert.Equal(t, 7, forwardWordBoundary(line, 0))
}

func TestForwardWordBoundary_StopsAtPunctuationRun(t *testing.T) {
	line := []rune("foo...bar")
	assert.Equal(t, 6, forwardWordBoundary(line, 3))
}

func TestBackwardWordBoundary_SkipsTrailingWhitespaceThenWordRun(t *testing.T) {
	line := []rune("hello world  ")
	assert.Equal(t, 6, backwardWordBoundary(line, 13))
}

func TestBackwardWordBoundary_AtLineStartIsNoop(t *testing.T) {
	line := []rune("hello")
	assert.Equal(t, 0, backwardWordBoundary(line, 0))
}

func TestEditor_MoveRightWrapsToNextLine(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.setCursor(Position{Line: 0, Col: 2})

	e.MoveRight()

	assert.Equal(t, Position{Line: 1, Col: 0}, e.Cursor())
}

func TestEditor_MoveLeftWrapsToPreviousLine(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.setCursor(Position{Line: 1, Col: 0})

	e.MoveLeft()

	assert.Equal(t, Position{Line: 0, Col: 2}, e.Cursor())
}

func TestEditor_MoveDownClampsColumnToShorterLine(t *testing.T) {
	e := New()
	e.SetText("hello\nhi")
	e.setCursor(Position{Line: 0, Col: 5})

	e.MoveDown()

	assert.Equal(t, Position{Line: 1, Col: 2}, e.Cursor())
}

func TestEditor_MoveToLineStartAndEnd(t *testing.T) {
	e := New()
	e.SetText("hello")
	e.setCursor(Position{Line: 0, Col: 3})

	e.MoveToLineEnd()
	assert.Equal(t, 5, e.Cursor().Col)

	e.MoveToLineStart()
	assert.Equal(t, 0, e.Cursor().Col)
}

func TestEditor_JumpToCharFindsNextOccurrence(t *testing.T) {
	e := New()
	e.SetText("a,b,c")

	e.JumpToChar(',')
	assert.Equal(t, 1, e.Cursor().Col)

	e.JumpToChar(',')
	assert.Equal(t, 3, e.Cursor().Col)
}

func TestEditor_JumpToCharNotFoundIsNoop(t *testing.T) {
	e := New()
	e.SetText("abc")
	e.JumpToChar('z')
	assert.Equal(t, Position{}, e.Cursor())
}
