package terminal

import (
	"errors"

	"github.com/pi-tui/pitui/input"
)

// ErrAlreadyStarted is returned by Start when called twice without an
// intervening Stop.
var ErrAlreadyStarted = errors.New("terminal: already started")

// ErrNotStarted is returned by operations that require Start to have
// succeeded first.
var ErrNotStarted = errors.New("terminal: not started")

// ResizeEvent reports the terminal's dimensions in character cells after a
// resize notification.
type ResizeEvent struct {
	Cols, Rows int
}

// Terminal is the adapter contract the rendering engine drives every frame:
// raw-mode stdin wired to a callback, and the small set of absolute/relative
// cursor and screen primitives the differential drawer issues.
//
// All Write-family methods are safe to call only from the goroutine that
// called Start; they are not synchronized against concurrent callers.
type Terminal interface {
	// Start puts stdin into raw mode, enables bracketed paste and emits the
	// Kitty-protocol query (CSI ?u), and begins delivering segmented input
	// events to onInput and resize notifications to onResize on a
	// background goroutine. The enable flags (CSI >7u) are only pushed once
	// the query's response is observed on the input stream, so
	// KittyProtocolActive stays false for the (common) terminal that never
	// answers. Neither callback is ever invoked concurrently with itself or
	// with the other.
	Start(onInput func(input.Event), onResize func(ResizeEvent)) error

	// Stop disables the Kitty flags, restores cooked mode, and releases the
	// background goroutine. Safe to call only after a successful Start.
	Stop() error

	// DrainInput disables the Kitty protocol flags, then reads and discards
	// input until maxMs elapses or idleMs of silence is observed, whichever
	// comes first. Required before process exit to swallow late
	// key-release sequences arriving over slow links.
	DrainInput(maxMs, idleMs int)

	Write(s string) error

	// Columns and Rows report the last known terminal size in character
	// cells, updated on every resize notification and once at Start.
	Columns() int
	Rows() int

	HideCursor() error
	ShowCursor() error

	// MoveBy moves the cursor vertically by a relative line count: negative
	// moves up, positive moves down, zero is a no-op.
	MoveBy(lines int) error

	ClearLine() error
	ClearFromCursor() error
	ClearScreen() error
	SetTitle(title string) error

	// WriteClipboard sets the system clipboard via an OSC 52 escape
	// sequence. Best-effort: most terminals accept OSC 52 writes without
	// acknowledgment, so a nil error only means the bytes were written,
	// not that the terminal applied them.
	WriteClipboard(text string) error

	// BeginSynchronizedOutput/EndSynchronizedOutput bracket a frame's worth
	// of writes in CSI ?2026h/l so the terminal paints the redraw atomically
	// instead of incrementally.
	BeginSynchronizedOutput() error
	EndSynchronizedOutput() error

	// CellPixelSize reports the terminal's per-cell pixel dimensions, as
	// last observed from a CSI 16 t query response, for the images
	// package's cell-math conversions. ok is false until a response has
	// been seen (e.g. over a dumb pipe that never answers).
	CellPixelSize() (w, h int, ok bool)

	// KittyProtocolActive reports whether Start's CSI ?u query was answered,
	// i.e. whether input.Classify should be driven with kittyActive=true for
	// this session. False until (and unless) a response is observed.
	KittyProtocolActive() bool
}

// New returns the platform's Terminal backed by os.Stdin/os.Stdout.
func New() Terminal {
	return newTerminal()
}
