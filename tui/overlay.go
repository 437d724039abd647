package tui

import (
	"math"
	"strconv"
	"strings"
)

// Anchor names a position within the available rectangle an overlay without
// an explicit row/col resolves against.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorTopCenter
	AnchorBottomCenter
	AnchorLeftCenter
	AnchorRightCenter
)

// Margin is the per-side clearance an overlay keeps from the terminal edge,
// following the same CSS-box-model, non-negative-clamped shape as the
// teacher's layout spacing value object.
type Margin struct {
	Top, Right, Bottom, Left int
}

// MarginAll returns a Margin with the same clearance on all four sides.
func MarginAll(n int) Margin {
	n = max(0, n)
	return Margin{Top: n, Right: n, Bottom: n, Left: n}
}

// OverlayOptions describes an overlay's sizing and positioning. Width,
// MaxHeight, Row, and Col accept either an int (absolute cells) or a string
// of the form "NN%"/"NN.NN%" (percent of the available dimension); any other
// dynamic type is treated as unset. A nil Visible means always visible.
type OverlayOptions struct {
	Width    any
	MinWidth int
	MaxHeight any
	Anchor    Anchor
	OffsetX   int
	OffsetY   int
	Row       any
	Col       any
	Margin    Margin
	Visible   func(cols, rows int) bool
}

// resolvedDimension parses v (nil, int, or a percent string) against total,
// returning the resolved value and whether v carried a value at all.
func resolvedDimension(v any, total int) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if !strings.HasSuffix(s, "%") {
			if n, err := strconv.Atoi(s); err == nil {
				return n, true
			}
			return 0, false
		}
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(float64(total) * pct / 100)), true
	default:
		return 0, false
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolvedLayout is the fully resolved size and position of one overlay for
// the current frame.
type resolvedLayout struct {
	width, height int
	row, col      int
}

func resolveOverlayLayout(opts OverlayOptions, cols, rows, contentHeight int) resolvedLayout {
	left := clampInt(opts.Margin.Left, 0, cols)
	right := clampInt(cols-opts.Margin.Right, left, cols)
	top := clampInt(opts.Margin.Top, 0, rows)
	bottom := clampInt(rows-opts.Margin.Bottom, top, rows)
	availW := max(1, right-left)
	availH := max(1, bottom-top)

	width, ok := resolvedDimension(opts.Width, cols)
	if !ok {
		width = availW
	}
	width = clampInt(width, 1, availW)
	if minW, ok := resolvedDimension(opts.MinWidth, cols); ok {
		width = max(width, clampInt(minW, 1, availW))
	} else if opts.MinWidth > 0 {
		width = max(width, clampInt(opts.MinWidth, 1, availW))
	}

	height := contentHeight
	if maxH, ok := resolvedDimension(opts.MaxHeight, rows); ok {
		height = min(height, clampInt(maxH, 1, availH))
	}

	var row, col int
	rowSet, colSet := false, false
	if r, ok := resolvedDimension(opts.Row, rows); ok {
		row, rowSet = r, true
	}
	if c, ok := resolvedDimension(opts.Col, cols); ok {
		col, colSet = c, true
	}
	if !rowSet || !colSet {
		ar, ac := anchorPosition(opts.Anchor, left, top, availW, availH, width, height)
		if !rowSet {
			row = ar
		}
		if !colSet {
			col = ac
		}
	}
	row += opts.OffsetY
	col += opts.OffsetX

	row = clampInt(row, top, max(top, bottom-height))
	col = clampInt(col, left, max(left, right-width))

	return resolvedLayout{width: width, height: height, row: row, col: col}
}

func anchorPosition(a Anchor, left, top, availW, availH, w, h int) (row, col int) {
	midCol := left + (availW-w)/2
	midRow := top + (availH-h)/2
	switch a {
	case AnchorTopLeft:
		return top, left
	case AnchorTopRight:
		return top, left + availW - w
	case AnchorBottomLeft:
		return top + availH - h, left
	case AnchorBottomRight:
		return top + availH - h, left + availW - w
	case AnchorTopCenter:
		return top, midCol
	case AnchorBottomCenter:
		return top + availH - h, midCol
	case AnchorLeftCenter:
		return midRow, left
	case AnchorRightCenter:
		return midRow, left + availW - w
	default: // AnchorCenter
		return midRow, midCol
	}
}

// visible reports whether entry should be rendered and eligible for focus
// this frame.
func (e *overlayEntry) visible(cols, rows int) bool {
	if e.hidden {
		return false
	}
	if e.options.Visible == nil {
		return true
	}
	return e.options.Visible(cols, rows)
}

// overlayEntry is one stack entry: the overlay component, its options, the
// component that had focus when it was pushed, and its soft-hide flag.
type overlayEntry struct {
	component Component
	options   OverlayOptions
	preFocus  Component
	hidden    bool
}

// OverlayHandle identifies a pushed overlay for Hide/Show/Pop-by-reference
// operations.
type OverlayHandle = *overlayEntry

// overlayStack is the engine's push-down stack of active overlays, stored in
// push order (index 0 is the bottom of the stack).
type overlayStack struct {
	entries []*overlayEntry
}

func (s *overlayStack) push(entry *overlayEntry) {
	s.entries = append(s.entries, entry)
}

func (s *overlayStack) pop() *overlayEntry {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

func (s *overlayStack) top() *overlayEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// topmostVisible returns the highest-stacked entry currently visible, or nil.
func (s *overlayStack) topmostVisible(cols, rows int) *overlayEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].visible(cols, rows) {
			return s.entries[i]
		}
	}
	return nil
}

func (s *overlayStack) anyVisible(cols, rows int) bool {
	return s.topmostVisible(cols, rows) != nil
}
