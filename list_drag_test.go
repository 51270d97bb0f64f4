package reorderable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourRowLayout(t *testing.T) (ListLayout, *[]string, *SliceAdaptor[string]) {
	t.Helper()
	items, a := letters("A", "B", "C", "D")
	return ComputeLayout(Vec2{}, 800, a, DefaultListStyle(), 0), items, a
}

func TestDragEngineTarget(t *testing.T) {
	l, _, _ := fourRowLayout(t)
	var d dragEngine
	d.begin(0, 10, rowTop(0), 22)
	require.True(t, d.active())
	assert.Equal(t, DragState{AnchorIndex: 0, TargetIndex: 0, PointerOffset: 6}, d.state)

	tests := []struct {
		pointerY float32
		want     int
	}{
		{0, 0},   // above the rows
		{10, 1},  // still over itself
		{40, 2},  // floating midpoint passes row 1's midpoint
		{60, 3},  // floating top 54 lies in row 2's slot
		{79, 4},  // floating midpoint reaches row 3's midpoint
		{200, 4}, // below the rows
	}
	for _, tt := range tests {
		d.updateTarget(l, tt.pointerY)
		assert.Equal(t, tt.want, d.state.TargetIndex, "pointer %v", tt.pointerY)
	}
}

func TestDragEngineFloatingTopClamped(t *testing.T) {
	l, _, _ := fourRowLayout(t)
	var d dragEngine
	d.begin(1, rowMid(1), rowTop(1), 22)

	d.updateTarget(l, -50)
	assert.Equal(t, l.RowsTop(), d.floatingTop(l))

	d.updateTarget(l, 500)
	assert.Equal(t, l.RowsBottom()-22, d.floatingTop(l))

	d.updateTarget(l, rowMid(2))
	assert.Equal(t, rowTop(2), d.floatingTop(l))
}

func TestDragEngineDisplayTops(t *testing.T) {
	l, _, _ := fourRowLayout(t)
	var d dragEngine
	d.begin(0, 10, rowTop(0), 22)
	d.state.TargetIndex = 3

	tops, gapTop := d.displayTops(l)
	assert.Equal(t, rowTop(0), tops[1])
	assert.Equal(t, rowTop(1), tops[2])
	assert.Equal(t, rowTop(2), gapTop)
	assert.Equal(t, rowTop(3), tops[3])

	d.state.TargetIndex = 4
	_, gapTop = d.displayTops(l)
	assert.Equal(t, rowTop(3), gapTop)
}

func TestDragEngineCommit(t *testing.T) {
	tests := []struct {
		name           string
		anchor, target int
		want           []string
		moved          bool
	}{
		{"down past one", 0, 3, []string{"B", "C", "A", "D"}, true},
		{"to the end", 0, 4, []string{"B", "C", "D", "A"}, true},
		{"to the top", 3, 0, []string{"D", "A", "B", "C"}, true},
		{"up by one", 2, 1, []string{"A", "C", "B", "D"}, true},
		{"own slot", 2, 2, []string{"A", "B", "C", "D"}, false},
		{"slot after itself", 2, 3, []string{"A", "B", "C", "D"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, a := letters("A", "B", "C", "D")
			var d dragEngine
			d.begin(tt.anchor, 0, 0, 22)
			d.state.TargetIndex = tt.target

			_, _, moved, err := d.commit(a)
			require.NoError(t, err)
			assert.Equal(t, tt.moved, moved)
			assert.Equal(t, tt.want, *items)
			assert.False(t, d.active())
		})
	}
}

func TestDragEngineClamp(t *testing.T) {
	var d dragEngine
	d.begin(3, 0, 0, 22)
	d.state.TargetIndex = 4

	require.True(t, d.clamp(2))
	assert.Equal(t, 1, d.state.AnchorIndex)
	assert.Equal(t, 2, d.state.TargetIndex)
	assert.False(t, d.clamp(0))
}

// dragRow runs a full pointer drag: press on the handle of row from at
// pickY, move to dropY, release.
func dragRow(h *harness, a ListAdaptor, pickY, dropY float32, opts ...Option) ListResult {
	h.move(10, pickY).press(MouseButtonLeft)
	h.list(a, opts...)
	h.move(10, dropY)
	h.list(a, opts...)
	h.release(MouseButtonLeft)
	return h.list(a, opts...)
}

func TestListDragReorders(t *testing.T) {
	tests := []struct {
		name        string
		pick, drop  float32
		want        []string
		wantChanged bool
	}{
		{"first row below the third", 10, 60, []string{"B", "C", "A", "D"}, true},
		{"first row to the end", 10, 90, []string{"B", "C", "D", "A"}, true},
		{"last row above the rows", rowTop(3) + 7, 2, []string{"D", "A", "B", "C"}, true},
		{"drop in place", rowTop(1) + 3, rowTop(1) + 3, []string{"A", "B", "C", "D"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			items, a := letters("A", "B", "C", "D")
			h.list(a)

			res := dragRow(h, a, tt.pick, tt.drop)
			assert.Equal(t, tt.want, *items)
			assert.Equal(t, tt.wantChanged, res.Changed)
			assert.Equal(t, NoChangedIndex, res.ChangedIndex)
			assert.Zero(t, h.ctx.CaptureID(), "capture released")
		})
	}
}

func TestListDragStateWhileDragging(t *testing.T) {
	h := newHarness(t)
	_, a := letters("A", "B", "C", "D")

	h.move(10, 10).press(MouseButtonLeft)
	h.list(a)
	st, ok := h.ctx.Lists().DragState(h.listID())
	require.True(t, ok)
	assert.Equal(t, 0, st.AnchorIndex)
	assert.Equal(t, h.listID(), h.ctx.CaptureID())
	assert.True(t, h.ctx.WantCaptureMouse)

	h.move(10, 60)
	h.list(a)
	st, _ = h.ctx.Lists().DragState(h.listID())
	assert.Equal(t, 3, st.TargetIndex)
}

func TestListDragStartsOnlyFromHandle(t *testing.T) {
	h := newHarness(t)
	items, a := letters("A", "B", "C")

	h.move(400, 10).press(MouseButtonLeft)
	h.list(a)
	_, ok := h.ctx.Lists().DragState(h.listID())
	assert.False(t, ok)

	h.move(400, 60).release(MouseButtonLeft)
	h.list(a)
	assert.Equal(t, []string{"A", "B", "C"}, *items)
}

func TestListDragCommitUsesNewHeights(t *testing.T) {
	h := newHarness(t)
	items, a := newDrawLog(map[string]float32{"A": 18, "B": 60, "C": 18}, "A", "B", "C")

	h.move(10, 10).press(MouseButtonLeft)
	h.list(a)
	h.move(10, 70)
	h.list(a)

	a.drawn = nil
	h.release(MouseButtonLeft)
	res := h.list(a)
	require.Equal(t, []string{"B", "A", "C"}, *items)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"B@60", "A@18", "C@18"}, a.drawn)
}

func TestListDragCancel(t *testing.T) {
	cancels := map[string]func(h *harness){
		"escape":       func(h *harness) { h.key(KeyEscape) },
		"right button": func(h *harness) { h.press(MouseButtonRight) },
		"focus lost":   func(h *harness) { h.ctx.Input.SetFocusLost() },
	}
	for name, cancel := range cancels {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			items, a := letters("A", "B", "C", "D")

			h.move(10, 10).press(MouseButtonLeft)
			h.list(a)
			h.move(10, 60)
			cancel(h)
			res := h.list(a)
			_, ok := h.ctx.Lists().DragState(h.listID())
			assert.False(t, ok)
			assert.False(t, res.Changed)
			assert.False(t, h.ctx.Lists().WasChanged())

			h.release(MouseButtonRight).release(MouseButtonLeft)
			res = h.list(a)
			assert.False(t, res.Changed)
			assert.False(t, h.ctx.Lists().WasChanged())
			assert.Equal(t, []string{"A", "B", "C", "D"}, *items)
			assert.Zero(t, h.ctx.CaptureID())
		})
	}
}

func TestListDragLockedRow(t *testing.T) {
	h := newHarness(t)
	items, a := letters("A", "B", "C")
	locked := lockedFirst{a}

	h.move(10, 10).press(MouseButtonLeft)
	h.list(locked)
	_, ok := h.ctx.Lists().DragState(h.listID())
	assert.False(t, ok, "locked row cannot be picked up")
	h.release(MouseButtonLeft)
	h.list(locked)

	dragRow(h, locked, rowTop(2)+5, 2)
	assert.Equal(t, []string{"C", "A", "B"}, *items, "other rows may move past it")
}

func TestListDragDisabled(t *testing.T) {
	h := newHarness(t)
	items, a := letters("A", "B", "C")
	dragRow(h, a, 10, 60, WithListFlags(DisableReordering))
	assert.Equal(t, []string{"A", "B", "C"}, *items)
}

func TestListStopsDrawingMidDrag(t *testing.T) {
	h := newHarness(t)
	_, a := letters("A", "B")

	h.move(10, 10).press(MouseButtonLeft)
	h.list(a)
	require.Equal(t, h.listID(), h.ctx.CaptureID())

	h.frame(nil)
	h.frame(nil)
	assert.Zero(t, h.ctx.CaptureID(), "capture follows the dropped list state")
}

func TestListDragMovedEvent(t *testing.T) {
	h := newHarness(t)
	_, a := letters("A", "B", "C", "D")
	var moves [][2]int
	ev := WithListEvents(ListEvents{ItemMoved: func(o, n int) { moves = append(moves, [2]int{o, n}) }})

	dragRow(h, a, 10, 60, ev)
	assert.Equal(t, [][2]int{{0, 2}}, moves)
}

// lockedFirst keeps row 0 in place.
// drawLog records "item@height" for every DrawItem call.
type drawLog struct {
	*SliceAdaptor[string]
	drawn []string
}

func newDrawLog(heights map[string]float32, items ...string) (*[]string, *drawLog) {
	s, a := letters(items...)
	if heights != nil {
		a.Height = func(item string) float32 { return heights[item] }
	}
	return s, &drawLog{SliceAdaptor: a}
}

func (l *drawLog) DrawItem(ctx *Context, rect Rect, index int) {
	l.drawn = append(l.drawn, fmt.Sprintf("%s@%g", (*l.items)[index], rect.H))
	l.SliceAdaptor.DrawItem(ctx, rect, index)
}

type lockedFirst struct {
	*SliceAdaptor[string]
}

func (lockedFirst) CanDrag(i int) bool   { return i != 0 }
func (lockedFirst) CanRemove(i int) bool { return i != 0 }
