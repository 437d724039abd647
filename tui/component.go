package tui

import "sync"

// Component is the capability every renderable entity satisfies. Render
// must return lines whose visible width does not exceed width; violating
// this is a fatal engine error (see ContractViolationError).
type Component interface {
	Render(width int) []string
	Invalidate()
}

// Focusable is the optional capability a Component implements to
// participate in focus management and emit the cursor marker.
type Focusable interface {
	Component
	SetFocused(bool)
	Focused() bool
}

// InputHandler is the optional capability a Component implements to receive
// raw segmented input: the stdin buffer's data/paste payload bytes, exactly
// as the terminal adapter delivered them. Components that care about
// structured keys run input.Classify themselves.
type InputHandler interface {
	HandleInput(data []byte)
}

// KeyReleaseWanter is the optional capability a Component implements to opt
// into key-release events; absent, release events are dropped before they
// ever reach HandleInput.
type KeyReleaseWanter interface {
	WantsKeyRelease() bool
}

// KittyAware is the optional capability a Component implements to learn the
// terminal's negotiated Kitty keyboard protocol state before each
// HandleInput dispatch, so it can classify its own raw bytes correctly.
type KittyAware interface {
	SetKittyActive(bool)
}

// Container composes children's rendered lines by concatenation, the same
// role the engine itself plays for its root component tree.
type Container struct {
	mu       sync.Mutex
	children []Component
}

// Add appends child to the end of the container's child list.
func (c *Container) Add(child Component) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, child)
}

// Remove removes the first occurrence of child, if present.
func (c *Container) Remove(child Component) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Children returns a snapshot of the current child list.
func (c *Container) Children() []Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Render concatenates every child's rendered lines, top to bottom.
func (c *Container) Render(width int) []string {
	var lines []string
	for _, child := range c.Children() {
		lines = append(lines, child.Render(width)...)
	}
	return lines
}

// Invalidate clears every child's render cache.
func (c *Container) Invalidate() {
	for _, child := range c.Children() {
		child.Invalidate()
	}
}

var _ Component = (*Container)(nil)
