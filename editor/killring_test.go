package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillRing_YankEmptyReturnsEmptyString(t *testing.T) {
	k := NewKillRing(5)
	assert.True(t, k.IsEmpty())
	assert.Equal(t, "", k.Yank())
}

func TestKillRing_KillIsImmutable(t *testing.T) {
	k := NewKillRing(5)
	k2 := k.Kill("a", KillOptions{Direction: KillForward})
	assert.True(t, k.IsEmpty())
	assert.Equal(t, "a", k2.Yank())
}

func TestKillRing_AccumulateSameDirectionMerges(t *testing.T) {
	k := NewKillRing(5)
	k = k.Kill("hello", KillOptions{Accumulate: true, Direction: KillForward})
	k = k.Kill(" world", KillOptions{Accumulate: true, Direction: KillForward})
	assert.Equal(t, "hello world", k.Yank())
}

func TestKillRing_AccumulatePrependForBackwardKills(t *testing.T) {
	k := NewKillRing(5)
	k = k.Kill("world", KillOptions{Prepend: true, Accumulate: true, Direction: KillBackward})
	k = k.Kill("hello ", KillOptions{Prepend: true, Accumulate: true, Direction: KillBackward})
	assert.Equal(t, "hello world", k.Yank())
}

func TestKillRing_DirectionChangeStartsNewEntry(t *testing.T) {
	k := NewKillRing(5)
	k = k.Kill("a", KillOptions{Accumulate: true, Direction: KillForward})
	k = k.Kill("b", KillOptions{Accumulate: true, Direction: KillBackward})
	assert.Equal(t, "b", k.Yank())
}

func TestKillRing_BreakChainStartsNewEntryEvenSameDirection(t *testing.T) {
	k := NewKillRing(5)
	k = k.Kill("a", KillOptions{Accumulate: true, Direction: KillForward})
	k = k.BreakChain()
	k = k.Kill("b", KillOptions{Accumulate: true, Direction: KillForward})
	assert.Equal(t, "b", k.Yank())
}

func TestKillRing_YankPopRotates(t *testing.T) {
	k := NewKillRing(5)
	k = k.Kill("first", KillOptions{Direction: KillForward})
	k = k.BreakChain()
	k = k.Kill("second", KillOptions{Direction: KillForward})
	assert.Equal(t, "second", k.Yank())

	k = k.YankPop()
	assert.Equal(t, "first", k.Yank())

	k = k.YankPop()
	assert.Equal(t, "second", k.Yank(), "rotating past the oldest entry wraps back to the newest")
}

func TestKillRing_BoundedSize(t *testing.T) {
	k := NewKillRing(2)
	k = k.Kill("a", KillOptions{Direction: KillForward})
	k = k.BreakChain()
	k = k.Kill("b", KillOptions{Direction: KillForward})
	k = k.BreakChain()
	k = k.Kill("c", KillOptions{Direction: KillForward})

	assert.Equal(t, "c", k.Yank())
	k = k.YankPop()
	assert.Equal(t, "b", k.Yank(), "the oldest entry \"a\" was evicted once the ring exceeded maxSize")
}

func TestKillRing_KillEmptyStringIsNoop(t *testing.T) {
	k := NewKillRing(5)
	k2 := k.Kill("", KillOptions{Direction: KillForward})
	assert.Same(t, k, k2)
}
