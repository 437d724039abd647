package tui

import (
	"fmt"
	"strings"

	"github.com/pi-tui/pitui/input"
	"github.com/pi-tui/pitui/internal/config"
	"github.com/pi-tui/pitui/internal/crashlog"
	"github.com/pi-tui/pitui/terminal"
	"github.com/pi-tui/pitui/text"
)

// CursorMarker is the zero-width APC sequence a focused component embeds at
// the exact grapheme position where the hardware cursor belongs. Never
// more than one per frame; the engine searches only the bottom rows lines
// of the composited frame for it.
const CursorMarker = "\x1b_pi:c\a"

// segmentReset closes out any active SGR attributes and hyperlink so style
// never leaks past a line end: CSI 0m plus an empty OSC-8 terminator.
const segmentReset = "\x1b[0m\x1b]8;;\x1b\\"

// hasImagePayload reports whether line carries a Kitty graphics APC
// transmission, which is exempt from the per-line reset suffix.
func hasImagePayload(line string) bool {
	return strings.Contains(line, "\x1b_G")
}

// Engine is the render/diff engine: a container over the root component
// tree that additionally owns the overlay stack, focus reference, and frame
// state. It is the sole writer to the terminal adapter.
type Engine struct {
	term terminal.Terminal
	root Container

	overlays overlayStack
	focused  Component

	cfg config.Config
	log *crashlog.Logger

	renderRequested bool

	everRendered        bool
	previousLines       []string
	previousWidth       int
	cursorRow           int
	hardwareCursorRow   int
	maxLinesRendered    int
	previousViewportTop int
}

// NewEngine returns an Engine driving term.
func NewEngine(term terminal.Terminal) *Engine {
	return &Engine{term: term, log: crashlog.New("")}
}

// Add appends a component to the engine's root container.
func (e *Engine) Add(c Component) { e.root.Add(c) }

// Remove removes a component from the engine's root container.
func (e *Engine) Remove(c Component) { e.root.Remove(c) }

// Focused returns the component currently holding focus, or nil.
func (e *Engine) Focused() Component { return e.focused }

// SetFocus clears the focused flag on the previous focusable and sets it on
// c (nil clears focus entirely).
func (e *Engine) SetFocus(c Component) { e.setFocus(c) }

func (e *Engine) setFocus(c Component) {
	if e.focused == c {
		return
	}
	if f, ok := e.focused.(Focusable); ok {
		f.SetFocused(false)
	}
	e.focused = c
	if f, ok := c.(Focusable); ok {
		f.SetFocused(true)
	}
}

// PushOverlay adds component to the top of the overlay stack, recording the
// currently focused component as its preFocus, and focuses it if visible.
func (e *Engine) PushOverlay(component Component, opts OverlayOptions) OverlayHandle {
	entry := &overlayEntry{component: component, options: opts, preFocus: e.focused}
	e.overlays.push(entry)
	if entry.visible(e.term.Columns(), e.term.Rows()) {
		e.setFocus(component)
	}
	e.RequestRender()
	return entry
}

// PopOverlay removes the top overlay and restores focus to the topmost
// still-visible overlay, or to the popped overlay's preFocus if none.
func (e *Engine) PopOverlay() {
	entry := e.overlays.pop()
	if entry == nil {
		return
	}
	e.restoreFocusAfter(entry)
	e.RequestRender()
}

// HideOverlay soft-hides an overlay, preserving its stack position. If it
// held focus, focus moves like a pop.
func (e *Engine) HideOverlay(h OverlayHandle) {
	if h == nil || h.hidden {
		return
	}
	h.hidden = true
	if e.focused == h.component {
		e.restoreFocusAfter(h)
	}
	e.RequestRender()
}

// ShowOverlay clears an overlay's soft-hide flag. If it is now the topmost
// visible entry, it regains focus.
func (e *Engine) ShowOverlay(h OverlayHandle) {
	if h == nil || !h.hidden {
		return
	}
	h.hidden = false
	if h == e.overlays.topmostVisible(e.term.Columns(), e.term.Rows()) {
		e.setFocus(h.component)
	}
	e.RequestRender()
}

func (e *Engine) restoreFocusAfter(entry *overlayEntry) {
	if top := e.overlays.topmostVisible(e.term.Columns(), e.term.Rows()); top != nil {
		e.setFocus(top.component)
		return
	}
	e.setFocus(entry.preFocus)
}

func (s *overlayStack) findByComponent(c Component) *overlayEntry {
	if c == nil {
		return nil
	}
	for _, e := range s.entries {
		if e.component == c {
			return e
		}
	}
	return nil
}

// reevaluateFocus is called before dispatching each input event and at the
// start of every render: if the focused component belongs to an overlay
// that has since become invisible, focus is redirected exactly as a pop
// would.
func (e *Engine) reevaluateFocus() {
	entry := e.overlays.findByComponent(e.focused)
	if entry == nil || entry.visible(e.term.Columns(), e.term.Rows()) {
		return
	}
	e.restoreFocusAfter(entry)
}

// RequestRender marks a render as due; it is coalesced and performed on the
// next Tick.
func (e *Engine) RequestRender() { e.renderRequested = true }

// Start loads configuration and begins delivering terminal input/resize
// events to the engine.
func (e *Engine) Start() error {
	e.cfg = config.Load()
	return e.term.Start(e.handleInput, e.handleResize)
}

// Stop releases the terminal adapter.
func (e *Engine) Stop() error { return e.term.Stop() }

// Tick performs exactly one coalesced draw if a render was requested since
// the last Tick.
func (e *Engine) Tick() error {
	if !e.renderRequested {
		return nil
	}
	e.renderRequested = false
	return e.draw()
}

func (e *Engine) handleInput(ev input.Event) {
	e.reevaluateFocus()
	if e.focused != nil {
		if ih, ok := e.focused.(InputHandler); ok && e.wantsDispatch(ih, ev) {
			if ka, ok := ih.(KittyAware); ok {
				ka.SetKittyActive(e.term.KittyProtocolActive())
			}
			ih.HandleInput(ev.Bytes)
		}
	}
	e.RequestRender()
}

// wantsDispatch reports whether ev should reach ih's HandleInput. Plain
// presses, the overwhelming majority of events, skip straight through;
// input.FastIsReleaseOrRepeat's cheap scan catches the rare release/repeat
// candidate, and only then is a full Classify paid for to tell a genuine
// release apart from a repeat (which every handler still wants). A release
// is dropped here unless ih opts in via KeyReleaseWanter.
func (e *Engine) wantsDispatch(ih InputHandler, ev input.Event) bool {
	if !input.FastIsReleaseOrRepeat(ev.Bytes) {
		return true
	}
	key, ok := input.Classify(ev.Bytes, e.term.KittyProtocolActive())
	if !ok || key.Event != input.EventRelease {
		return true
	}
	rw, ok := ih.(KeyReleaseWanter)
	return ok && rw.WantsKeyRelease()
}

func (e *Engine) handleResize(terminal.ResizeEvent) {
	e.RequestRender()
}

// draw runs one full render-then-diff cycle: render the tree, composite
// overlays, strip the cursor marker, apply the per-line reset suffix,
// enforce the width invariant, then write the minimal diff to the terminal.
func (e *Engine) draw() error {
	e.reevaluateFocus()

	cols, rows := e.term.Columns(), e.term.Rows()
	width := cols

	lines := e.root.Render(width)
	lines = e.compositeOverlays(lines, cols, rows)

	markerRow, markerCol, found := stripCursorMarker(lines, rows)
	lines = appendResetSuffixes(lines)

	if violation := checkWidthInvariant(lines, width); violation != nil {
		e.log.ContractViolation(width, violation.Lines, violation.Widths)
		_ = e.term.ShowCursor()
		_ = e.term.Stop()
		return violation
	}

	if !found {
		markerRow, markerCol = max(0, len(lines)-1), 0
	}

	e.drawFrame(lines, width, rows, markerRow, markerCol)
	return nil
}

func (e *Engine) compositeOverlays(base []string, cols, rows int) []string {
	for _, entry := range e.overlays.entries {
		if !entry.visible(cols, rows) {
			continue
		}
		layout0 := resolveOverlayLayout(entry.options, cols, rows, 0)
		overlayLines := entry.component.Render(layout0.width)
		if layout0.height > 0 && len(overlayLines) > layout0.height {
			overlayLines = overlayLines[:layout0.height]
		}
		layout := resolveOverlayLayout(entry.options, cols, rows, len(overlayLines))

		required := max(len(base), e.maxLinesRendered, layout.row+len(overlayLines))
		base = padLines(base, required)

		for i, oline := range overlayLines {
			r := layout.row + i
			if r < 0 || r >= len(base) {
				continue
			}
			base[r] = compositeLine(base[r], oline, layout.col)
		}
	}
	return base
}

func compositeLine(base, overlay string, col int) string {
	oWidth := text.Width(overlay)
	base = padToWidth(base, col+oWidth)
	before, _, after := text.ExtractSegments(base, col, oWidth)
	return before + segmentReset + overlay + segmentReset + after
}

func padToWidth(s string, w int) string {
	cur := text.Width(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func stripCursorMarker(lines []string, rows int) (row, col int, found bool) {
	start := max(0, len(lines)-rows)
	for i := start; i < len(lines); i++ {
		idx := strings.Index(lines[i], CursorMarker)
		if idx < 0 {
			continue
		}
		before := lines[i][:idx]
		after := lines[i][idx+len(CursorMarker):]
		lines[i] = before + after
		return i, text.Width(before), true
	}
	return 0, 0, false
}

func appendResetSuffixes(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if hasImagePayload(l) {
			out[i] = l
			continue
		}
		out[i] = l + segmentReset
	}
	return out
}

func checkWidthInvariant(lines []string, width int) *ContractViolationError {
	var bad []string
	var widths []int
	for _, l := range lines {
		if w := text.Width(l); w > width {
			bad = append(bad, l)
			widths = append(widths, w)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &ContractViolationError{Width: width, Lines: bad, Widths: widths}
}

func changedRange(oldLines, newLines []string) (first, last int, changed bool) {
	n := max(len(oldLines), len(newLines))
	first, last = -1, -1
	for i := 0; i < n; i++ {
		haveOld := i < len(oldLines)
		haveNew := i < len(newLines)
		var o, nl string
		if haveOld {
			o = oldLines[i]
		}
		if haveNew {
			nl = newLines[i]
		}
		if !haveOld || !haveNew || o != nl {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return 0, 0, false
	}
	return first, last, true
}

// drawFrame runs the differential write algorithm: first render, full
// redraw, or minimal diff, followed by the final hardware-cursor
// repositioning to the marker.
func (e *Engine) drawFrame(newLines []string, width, rows int, markerRow, markerCol int) {
	_ = e.term.BeginSynchronizedOutput()
	defer func() { _ = e.term.EndSynchronizedOutput() }()

	switch {
	case !e.everRendered:
		e.writeFullFrame(newLines)
		e.everRendered = true
	case width != e.previousWidth:
		e.logFullRedraw("width changed")
		e.fullRedraw(newLines)
	default:
		first, last, changed := changedRange(e.previousLines, newLines)
		shrinking := len(newLines) < len(e.previousLines)
		switch {
		case changed && shrinking && !e.overlays.anyVisible(e.term.Columns(), rows) && e.clearOnShrink():
			e.logFullRedraw("content shrank")
			e.fullRedraw(newLines)
		case changed && first < e.previousViewportTop:
			e.logFullRedraw("first changed line scrolled above viewport")
			e.fullRedraw(newLines)
		case changed:
			e.differentialRedraw(newLines, first, last, rows)
		}
	}

	e.previousLines = newLines
	e.previousWidth = width
	e.repositionCursor(markerRow, markerCol)
}

func (e *Engine) writeFullFrame(lines []string) {
	_ = e.term.Write(strings.Join(lines, "\r\n"))
	e.maxLinesRendered = len(lines)
	e.previousViewportTop = max(0, e.maxLinesRendered-e.term.Rows())
	e.hardwareCursorRow = max(0, len(lines)-1)
	e.cursorRow = e.hardwareCursorRow
}

func (e *Engine) fullRedraw(lines []string) {
	_ = e.term.Write("\x1b[3J")
	_ = e.term.ClearScreen()
	e.writeFullFrame(lines)
}

func (e *Engine) differentialRedraw(newLines []string, first, last, rows int) {
	viewportBottom := e.previousViewportTop + rows - 1
	if first > viewportBottom {
		scroll := first - viewportBottom
		_ = e.term.Write(strings.Repeat("\n", scroll))
		e.hardwareCursorRow += scroll
		e.previousViewportTop += scroll
	}
	if delta := first - e.hardwareCursorRow; delta != 0 {
		_ = e.term.MoveBy(delta)
	}

	for i := first; i <= last; i++ {
		if i > first {
			_ = e.term.Write("\r\n")
		}
		haveOld := i < len(e.previousLines)
		haveNew := i < len(newLines)
		var oldLine, newLine string
		if haveOld {
			oldLine = e.previousLines[i]
		}
		if haveNew {
			newLine = newLines[i]
		}
		if haveOld && haveNew && oldLine == newLine {
			continue
		}
		_ = e.term.ClearLine()
		if haveNew {
			_ = e.term.Write(newLine)
		}
	}
	e.hardwareCursorRow = last

	if len(e.previousLines) > len(newLines) {
		tail := len(e.previousLines) - len(newLines)
		for k := 0; k < tail; k++ {
			_ = e.term.Write("\r\n")
			_ = e.term.ClearLine()
		}
		_ = e.term.MoveBy(-tail)
	}

	e.maxLinesRendered = max(e.maxLinesRendered, len(newLines))
	e.previousViewportTop = max(0, e.maxLinesRendered-rows)
	e.cursorRow = len(newLines) - 1
}

func (e *Engine) repositionCursor(markerRow, markerCol int) {
	if delta := markerRow - e.hardwareCursorRow; delta != 0 {
		_ = e.term.MoveBy(delta)
	}
	_ = e.term.Write(fmt.Sprintf("\x1b[%dG", markerCol+1))
	e.hardwareCursorRow = markerRow

	if e.cfg.HardwareCursor {
		_ = e.term.ShowCursor()
	} else {
		_ = e.term.HideCursor()
	}
}

func (e *Engine) clearOnShrink() bool {
	if e.cfg.ClearOnShrink != nil {
		return *e.cfg.ClearOnShrink
	}
	return true
}

func (e *Engine) logFullRedraw(reason string) {
	if e.cfg.DebugRedraw {
		e.log.FullRedraw(reason)
	}
}
