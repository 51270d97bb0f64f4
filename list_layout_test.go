package reorderable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heights(hs ...float32) *SliceAdaptor[float32] {
	a := NewSliceAdaptor(&hs, nil)
	a.Height = func(h float32) float32 { return h }
	return a
}

func TestComputeContainerHeight(t *testing.T) {
	st := DefaultListStyle()
	_, five := letters("a", "b", "c", "d", "e")
	_, empty := letters()

	tests := []struct {
		name  string
		a     ListAdaptor
		flags ListFlags
		want  float32
	}{
		{"five rows with footer", five, 0, 140},
		{"five rows without footer", five, HideAddButton, 122},
		{"empty with footer", empty, 0, 4 + 18 + 4 + 18},
		{"empty without footer", empty, HideAddButton, 26},
		{"zero height row collapses", heights(18, 0, 18), HideAddButton, 4 + 22 + 0 + 22 + 2 + 4},
		{"mixed heights", heights(18, 40), HideAddButton, 4 + 22 + 44 + 1 + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeContainerHeight(tt.a, st, tt.flags))
		})
	}
}

func TestCalculateHeightMatchesDrawnHeight(t *testing.T) {
	h := newHarness(t)
	_, a := letters("a", "b", "c", "d", "e")

	assert.Equal(t, float32(140), h.ctx.Lists().CalculateHeight(a))
	assert.Equal(t, float32(122), h.ctx.Lists().CalculateHeight(a, WithListFlags(HideAddButton)))

	res := h.list(a)
	assert.Equal(t, float32(140), res.Height)
}

func TestComputeRowRect(t *testing.T) {
	st := DefaultListStyle()
	_, a := letters("a", "b", "c", "d", "e")
	container := Rect{X: 10, Y: 100, W: 300}

	r := ComputeRowRect(container, a, st, 0, 2)
	assert.Equal(t, Rect{X: 30, Y: 100 + rowTop(2) + 2, W: 300 - 20 - 26, H: 18}, r)

	r = ComputeRowRect(container, a, st, DisableReordering, 0)
	assert.Equal(t, float32(10+4), r.X, "inset replaces the handle")

	r = ComputeRowRect(container, a, st, HideRemoveButtons, 0)
	assert.Equal(t, float32(300-20-4), r.W, "inset replaces the remove zone")
}

func TestComputeRowRectStopsAtIndex(t *testing.T) {
	calls := 0
	hs := []float32{18, 18, 18, 18}
	a := NewSliceAdaptor(&hs, nil)
	a.Height = func(h float32) float32 {
		calls++
		return h
	}
	ComputeRowRect(Rect{W: 100}, a, DefaultListStyle(), 0, 1)
	assert.Equal(t, 2, calls)
}

func TestListLayoutGeometry(t *testing.T) {
	_, a := letters("a", "b", "c", "d")
	l := ComputeLayout(Vec2{}, 800, a, DefaultListStyle(), 0)
	require.Equal(t, 4, l.Len())

	for i := range 4 {
		assert.Equal(t, rowTop(i), l.Rows[i].Top, "row %d", i)
		assert.Equal(t, rowMid(i), l.MidY(i), "row %d", i)
	}
	assert.Equal(t, float32(4), l.RowsTop())
	assert.Equal(t, rowTop(3)+22, l.RowsBottom())

	g := l.Geometry(1)
	assert.Equal(t, Rect{X: 0, Y: rowTop(1), W: 20, H: 22}, g.Handle)
	assert.Equal(t, Rect{X: 774, Y: rowTop(1), W: 26, H: 22}, g.Remove)
	assert.Equal(t, Rect{X: 20, Y: rowTop(1) + 2, W: 754, H: 18}, g.Item)

	assert.Equal(t, Rect{X: 0, Y: l.Container.Bottom(), W: 800, H: 18}, l.Footer)
	assert.Equal(t, Rect{X: 770, Y: l.Container.Bottom(), W: 30, H: 18}, l.AddButtonRect())
}

func TestListLayoutRowAt(t *testing.T) {
	_, a := letters("a", "b", "c")
	l := ComputeLayout(Vec2{}, 800, a, DefaultListStyle(), 0)

	assert.Equal(t, -1, l.RowAt(2), "container padding")
	assert.Equal(t, 0, l.RowAt(rowTop(0)))
	assert.Equal(t, -1, l.RowAt(26.5), "splitter")
	assert.Equal(t, 1, l.RowAt(rowMid(1)))
	assert.Equal(t, 2, l.RowAt(rowTop(2)+21))
	assert.Equal(t, -1, l.RowAt(rowTop(2)+22))
}

func TestListLayoutHiddenZones(t *testing.T) {
	_, a := letters("a")
	l := ComputeLayout(Vec2{}, 200, a, DefaultListStyle(), DisableReordering|HideRemoveButtons|HideAddButton)

	g := l.Geometry(0)
	assert.Zero(t, g.Handle.W)
	assert.Zero(t, g.Remove.W)
	assert.Equal(t, Rect{}, l.Footer)
	assert.Equal(t, Rect{}, l.AddButtonRect())
	assert.Equal(t, Rect{X: 4, Y: 6, W: 192, H: 18}, g.Item)
}
