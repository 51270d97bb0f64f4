package reorderable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/reorderable"
)

// mockRenderer records the draw lists it is given.
type mockRenderer struct {
	renderCalls int
	vertices    []int
	resized     [2]int
	err         error
}

func (m *mockRenderer) Render(dl *reorderable.DrawList) error {
	m.renderCalls++
	m.vertices = append(m.vertices, len(dl.VtxBuffer))
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 7
}

func (m *mockRenderer) Resize(width, height int) {
	m.resized = [2]int{width, height}
}

func TestGUIFrame(t *testing.T) {
	renderer := &mockRenderer{}
	ui := reorderable.New(renderer)
	input := reorderable.NewInputState()

	ctx := ui.Begin(input, reorderable.Vec2{X: 800, Y: 600}, 0.016)
	require.NotNil(t, ctx)
	assert.Equal(t, uint32(7), ctx.FontTextureID)

	items := []string{"A", "B"}
	ctx.ReorderableList("tasks", reorderable.NewSliceAdaptor(&items, nil))
	require.NoError(t, ui.End())

	assert.Equal(t, 1, renderer.renderCalls, "empty foreground list is not rendered")
	assert.NotZero(t, renderer.vertices[0])
	assert.Nil(t, ctx.DrawList, "draw lists return to the pool")
}

func TestGUIRendersContextMenuOnTop(t *testing.T) {
	renderer := &mockRenderer{}
	ui := reorderable.New(renderer)
	input := reorderable.NewInputState()
	items := []string{"A", "B"}
	a := reorderable.NewSliceAdaptor(&items, nil)

	frame := func() {
		ctx := ui.Begin(input, reorderable.Vec2{X: 800, Y: 600}, 0.016)
		ctx.ReorderableList("tasks", a)
		require.NoError(t, ui.End())
		input.Reset()
	}

	input.SetMousePos(100, 15)
	input.SetMouseButton(reorderable.MouseButtonRight, true)
	frame()
	require.True(t, ui.Context().ContextMenuOpen())
	assert.Equal(t, 2, renderer.renderCalls, "the menu is rendered after the main list")

	input.SetMouseButton(reorderable.MouseButtonRight, false)
	input.SetKey(reorderable.KeyEscape, true)
	frame()
	assert.False(t, ui.Context().ContextMenuOpen())
	assert.Equal(t, 3, renderer.renderCalls)
}

func TestGUIRenderError(t *testing.T) {
	boom := errors.New("device lost")
	renderer := &mockRenderer{err: boom}
	ui := reorderable.New(renderer)

	ui.Begin(reorderable.NewInputState(), reorderable.Vec2{X: 100, Y: 100}, 0.016)
	assert.ErrorIs(t, ui.End(), boom)
}

func TestGUIEndWithoutBegin(t *testing.T) {
	ui := reorderable.New(&mockRenderer{})
	assert.NoError(t, ui.End())
}

func TestGUIDisplaySize(t *testing.T) {
	renderer := &mockRenderer{}
	ui := reorderable.New(renderer, reorderable.WithDisplaySize(640, 480))

	ctx := ui.Begin(reorderable.NewInputState(), reorderable.Vec2{}, 0.016)
	assert.Equal(t, reorderable.Vec2{X: 640, Y: 480}, ctx.DisplaySize)
	require.NoError(t, ui.End())

	ui.Resize(320, 200)
	assert.Equal(t, [2]int{320, 200}, renderer.resized)
	ctx = ui.Begin(reorderable.NewInputState(), reorderable.Vec2{}, 0.016)
	assert.Equal(t, reorderable.Vec2{X: 320, Y: 200}, ctx.DisplaySize)
	require.NoError(t, ui.End())
}

func TestGUIStyle(t *testing.T) {
	style := reorderable.DefaultStyle()
	style.List.ItemHeight = 30
	ui := reorderable.New(&mockRenderer{}, reorderable.WithStyle(style))
	assert.Equal(t, float32(30), ui.Style().List.ItemHeight)

	style.List.ItemHeight = 12
	ui.SetStyle(style)
	ctx := ui.Begin(reorderable.NewInputState(), reorderable.Vec2{X: 100, Y: 100}, 0.016)
	assert.Equal(t, float32(12), ctx.Style().List.ItemHeight)
	require.NoError(t, ui.End())
}

func TestGUINilRendererPanics(t *testing.T) {
	assert.Panics(t, func() { reorderable.New(nil) })
}
