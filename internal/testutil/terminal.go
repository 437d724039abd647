// Package testutil provides fakes for testing the engine without a real
// terminal, grounded on phoenix's testing.NullTerminal/MockTerminal but
// trimmed to the pitui Terminal interface's much smaller surface.
package testutil

import (
	"fmt"
	"sync"

	"github.com/pi-tui/pitui/input"
	"github.com/pi-tui/pitui/terminal"
)

// NullTerminal is a no-op Terminal: every write succeeds silently, sizes are
// fixed at construction. Use when a test needs a terminal but never asserts
// on what was written to it.
type NullTerminal struct {
	cols, rows int
}

// NewNullTerminal returns a NullTerminal reporting the given size.
func NewNullTerminal(cols, rows int) *NullTerminal {
	return &NullTerminal{cols: cols, rows: rows}
}

func (n *NullTerminal) Start(func(input.Event), func(terminal.ResizeEvent)) error { return nil }
func (n *NullTerminal) Stop() error                                              { return nil }
func (n *NullTerminal) DrainInput(int, int)                                      {}
func (n *NullTerminal) Write(string) error                                       { return nil }
func (n *NullTerminal) Columns() int                                             { return n.cols }
func (n *NullTerminal) Rows() int                                                { return n.rows }
func (n *NullTerminal) HideCursor() error                                        { return nil }
func (n *NullTerminal) ShowCursor() error                                        { return nil }
func (n *NullTerminal) MoveBy(int) error                                         { return nil }
func (n *NullTerminal) ClearLine() error                                         { return nil }
func (n *NullTerminal) ClearFromCursor() error                                   { return nil }
func (n *NullTerminal) ClearScreen() error                                       { return nil }
func (n *NullTerminal) SetTitle(string) error                                    { return nil }
func (n *NullTerminal) BeginSynchronizedOutput() error                          { return nil }
func (n *NullTerminal) EndSynchronizedOutput() error                            { return nil }
func (n *NullTerminal) CellPixelSize() (int, int, bool)                         { return 0, 0, false }
func (n *NullTerminal) WriteClipboard(string) error                             { return nil }
func (n *NullTerminal) KittyProtocolActive() bool                              { return false }

var _ terminal.Terminal = (*NullTerminal)(nil)

// FakeTerminal is a recording Terminal: every write is both appended to Out
// (the concatenated byte stream a real differential drawer would have sent
// to stdout) and recorded as a call entry in Calls, for tests that assert on
// exactly which operation produced which bytes.
type FakeTerminal struct {
	cols, rows int

	mu          sync.Mutex
	Out         string
	Calls       []string
	kittyActive bool
}

// NewFakeTerminal returns a FakeTerminal reporting the given size.
func NewFakeTerminal(cols, rows int) *FakeTerminal {
	return &FakeTerminal{cols: cols, rows: rows}
}

func (f *FakeTerminal) record(call, written string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	f.Out += written
}

func (f *FakeTerminal) Start(func(input.Event), func(terminal.ResizeEvent)) error {
	f.record("Start", "")
	return nil
}

func (f *FakeTerminal) Stop() error {
	f.record("Stop", "")
	return nil
}

func (f *FakeTerminal) DrainInput(maxMs, idleMs int) {
	f.record(fmt.Sprintf("DrainInput(%d,%d)", maxMs, idleMs), "")
}

func (f *FakeTerminal) Write(s string) error {
	f.record("Write", s)
	return nil
}

func (f *FakeTerminal) Columns() int { return f.cols }
func (f *FakeTerminal) Rows() int    { return f.rows }

// Resize updates the reported size as if a resize notification had been
// observed; it does not itself invoke any onResize callback.
func (f *FakeTerminal) Resize(cols, rows int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cols, f.rows = cols, rows
}

func (f *FakeTerminal) HideCursor() error { f.record("HideCursor", ""); return nil }
func (f *FakeTerminal) ShowCursor() error { f.record("ShowCursor", ""); return nil }

func (f *FakeTerminal) MoveBy(lines int) error {
	f.record(fmt.Sprintf("MoveBy(%d)", lines), "")
	return nil
}

func (f *FakeTerminal) ClearLine() error       { f.record("ClearLine", ""); return nil }
func (f *FakeTerminal) ClearFromCursor() error { f.record("ClearFromCursor", ""); return nil }
func (f *FakeTerminal) ClearScreen() error     { f.record("ClearScreen", ""); return nil }

func (f *FakeTerminal) SetTitle(title string) error {
	f.record("SetTitle("+title+")", "")
	return nil
}

func (f *FakeTerminal) BeginSynchronizedOutput() error {
	f.record("BeginSynchronizedOutput", "")
	return nil
}

func (f *FakeTerminal) EndSynchronizedOutput() error {
	f.record("EndSynchronizedOutput", "")
	return nil
}

func (f *FakeTerminal) CellPixelSize() (int, int, bool) { return 0, 0, false }

func (f *FakeTerminal) WriteClipboard(text string) error {
	f.record("WriteClipboard", "")
	return nil
}

func (f *FakeTerminal) KittyProtocolActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.kittyActive
}

// SetKittyProtocolActive lets a test simulate a negotiated Kitty session
// without driving a real query/ack round trip.
func (f *FakeTerminal) SetKittyProtocolActive(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kittyActive = v
}

// CallCount returns how many times a call (by its recorded name or
// name-prefix for parameterized calls) appears in Calls.
func (f *FakeTerminal) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == name || (len(c) > len(name) && c[:len(name)] == name && c[len(name)] == '(') {
			n++
		}
	}
	return n
}

var _ terminal.Terminal = (*FakeTerminal)(nil)
