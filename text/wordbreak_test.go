package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardWord(t *testing.T) {
	line := []rune("hello world foo")
	assert.Equal(t, 6, ForwardWord(line, 0))
	assert.Equal(t, 12, ForwardWord(line, 6))
	assert.Equal(t, 15, ForwardWord(line, 12))
}

func TestBackwardWord(t *testing.T) {
	line := []rune("hello world foo")
	assert.Equal(t, 12, BackwardWord(line, 15))
	assert.Equal(t, 6, BackwardWord(line, 12))
	assert.Equal(t, 0, BackwardWord(line, 6))
	assert.Equal(t, 0, BackwardWord(line, 0))
}

func TestIsWordBoundary(t *testing.T) {
	assert.True(t, IsWordBoundary(' '))
	assert.True(t, IsWordBoundary('.'))
	assert.True(t, IsWordBoundary('-'))
	assert.False(t, IsWordBoundary('a'))
	assert.False(t, IsWordBoundary('9'))
	assert.False(t, IsWordBoundary('é'))
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, IsPunctuation('.'))
	assert.False(t, IsPunctuation(' '))
	assert.False(t, IsPunctuation('a'))
}
