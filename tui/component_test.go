package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubComponent is a fixed-output Component for tests; it records how many
// times Render and Invalidate were called and can embed focus support.
type stubComponent struct {
	lines      []string
	renders    int
	invalidates int
	focused    bool
}

func (s *stubComponent) Render(width int) []string {
	s.renders++
	return s.lines
}

func (s *stubComponent) Invalidate() { s.invalidates++ }

func (s *stubComponent) SetFocused(v bool) { s.focused = v }
func (s *stubComponent) Focused() bool     { return s.focused }

var (
	_ Component  = (*stubComponent)(nil)
	_ Focusable  = (*stubComponent)(nil)
)

func TestContainer_RenderConcatenatesChildren(t *testing.T) {
	c := &Container{}
	c.Add(&stubComponent{lines: []string{"a", "b"}})
	c.Add(&stubComponent{lines: []string{"c"}})

	assert.Equal(t, []string{"a", "b", "c"}, c.Render(80))
}

func TestContainer_Remove(t *testing.T) {
	c := &Container{}
	first := &stubComponent{lines: []string{"a"}}
	second := &stubComponent{lines: []string{"b"}}
	c.Add(first)
	c.Add(second)

	c.Remove(first)

	assert.Equal(t, []string{"b"}, c.Render(80))
	assert.Len(t, c.Children(), 1)
}

func TestContainer_InvalidatePropagates(t *testing.T) {
	c := &Container{}
	child := &stubComponent{}
	c.Add(child)

	c.Invalidate()

	assert.Equal(t, 1, child.invalidates)
}
