package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOverlayLayout_CenterAnchor(t *testing.T) {
	layout := resolveOverlayLayout(OverlayOptions{Width: 20, Anchor: AnchorCenter}, 80, 24, 5)

	assert.Equal(t, 20, layout.width)
	assert.Equal(t, 5, layout.height)
	assert.Equal(t, 30, layout.col)
	assert.Equal(t, 9, layout.row)
}

func TestResolveOverlayLayout_PercentWidth(t *testing.T) {
	layout := resolveOverlayLayout(OverlayOptions{Width: "50%", Anchor: AnchorTopLeft}, 80, 24, 3)

	assert.Equal(t, 40, layout.width)
	assert.Equal(t, 0, layout.row)
	assert.Equal(t, 0, layout.col)
}

func TestResolveOverlayLayout_ExplicitRowColOverridesAnchor(t *testing.T) {
	layout := resolveOverlayLayout(OverlayOptions{Width: 10, Row: 2, Col: 3}, 80, 24, 4)

	assert.Equal(t, 2, layout.row)
	assert.Equal(t, 3, layout.col)
}

func TestResolveOverlayLayout_MarginConstrainsAvailableArea(t *testing.T) {
	layout := resolveOverlayLayout(OverlayOptions{Width: "100%", Anchor: AnchorTopLeft, Margin: MarginAll(2)}, 80, 24, 3)

	assert.Equal(t, 76, layout.width)
	assert.Equal(t, 2, layout.row)
	assert.Equal(t, 2, layout.col)
}

func TestResolveOverlayLayout_MaxHeightClips(t *testing.T) {
	layout := resolveOverlayLayout(OverlayOptions{Width: 10, MaxHeight: 2}, 80, 24, 10)

	assert.Equal(t, 2, layout.height)
}

func TestAnchorPosition_AllNineAnchors(t *testing.T) {
	cases := []struct {
		anchor   Anchor
		wantRow  int
		wantCol  int
	}{
		{AnchorTopLeft, 0, 0},
		{AnchorTopRight, 0, 70},
		{AnchorBottomLeft, 20, 0},
		{AnchorBottomRight, 20, 70},
		{AnchorTopCenter, 0, 35},
		{AnchorBottomCenter, 20, 35},
		{AnchorLeftCenter, 10, 0},
		{AnchorRightCenter, 10, 70},
		{AnchorCenter, 10, 35},
	}
	for _, tc := range cases {
		row, col := anchorPosition(tc.anchor, 0, 0, 80, 24, 10, 4)
		assert.Equal(t, tc.wantRow, row, tc.anchor)
		assert.Equal(t, tc.wantCol, col, tc.anchor)
	}
}

func TestOverlayStack_PushPopTop(t *testing.T) {
	s := &overlayStack{}
	assert.Nil(t, s.top())

	a := &overlayEntry{}
	b := &overlayEntry{}
	s.push(a)
	s.push(b)

	assert.Same(t, b, s.top())
	assert.Same(t, b, s.pop())
	assert.Same(t, a, s.top())
}

func TestOverlayStack_TopmostVisibleSkipsHidden(t *testing.T) {
	s := &overlayStack{}
	visible := &overlayEntry{}
	hidden := &overlayEntry{hidden: true}
	s.push(visible)
	s.push(hidden)

	assert.Same(t, visible, s.topmostVisible(80, 24))
	assert.True(t, s.anyVisible(80, 24))
}

func TestOverlayStack_AnyVisibleFalseWhenEmpty(t *testing.T) {
	s := &overlayStack{}
	assert.False(t, s.anyVisible(80, 24))
}

func TestOverlayStack_FindByComponent(t *testing.T) {
	s := &overlayStack{}
	comp := &stubComponent{}
	entry := &overlayEntry{component: comp}
	s.push(entry)

	assert.Same(t, entry, s.findByComponent(comp))
	assert.Nil(t, s.findByComponent(&stubComponent{}))
	assert.Nil(t, s.findByComponent(nil))
}
