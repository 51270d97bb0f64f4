package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/reorderable"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRendererFillAndText(t *testing.T) {
	s := newScreen(t, 10, 4)
	r := NewRenderer(s, 0, 0)
	red := reorderable.RGBA(255, 0, 0, 255)

	dl := reorderable.AcquireDrawList()
	defer reorderable.ReleaseDrawList(dl)
	dl.AddRect(reorderable.Rect{W: 16, H: 16}, red)
	dl.SetTexture(r.FontTextureID())
	dl.AddText(0, 16, "Hi", reorderable.ColorWhite, 8, 16)
	dl.SetTexture(0)
	dl.AddRect(reorderable.Rect{X: 0, Y: 42, W: 32, H: 1}, reorderable.ColorWhite)
	dl.Finalize()
	require.NoError(t, r.Render(dl))

	for x := range 2 {
		_, _, st, _ := s.GetContent(x, 0)
		_, bg, _ := st.Decompose()
		assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg, "cell %d", x)
	}
	_, _, st, _ := s.GetContent(2, 0)
	_, bg, _ := st.Decompose()
	assert.NotEqual(t, tcell.NewRGBColor(255, 0, 0), bg)

	ch, _, _, _ := s.GetContent(0, 1)
	assert.Equal(t, 'H', ch)
	ch, _, _, _ = s.GetContent(1, 1)
	assert.Equal(t, 'i', ch)

	for x := range 4 {
		ch, _, _, _ = s.GetContent(x, 2)
		assert.Equal(t, '─', ch, "thin rect becomes a line at cell %d", x)
	}
}

func TestRendererCursorReversesText(t *testing.T) {
	s := newScreen(t, 4, 2)
	r := NewRenderer(s, 8, 16)

	dl := reorderable.AcquireDrawList()
	defer reorderable.ReleaseDrawList(dl)
	dl.SetTexture(r.FontTextureID())
	dl.AddText(0, 0, "a", reorderable.ColorWhite, 8, 16)
	dl.SetTexture(0)
	dl.AddRect(reorderable.Rect{X: 3, Y: 0, W: 1, H: 16}, reorderable.ColorWhite)
	dl.AddRect(reorderable.Rect{X: 11, Y: 0, W: 1, H: 16}, reorderable.ColorWhite)
	dl.Finalize()
	require.NoError(t, r.Render(dl))

	ch, _, st, _ := s.GetContent(0, 0)
	_, _, attrs := st.Decompose()
	assert.Equal(t, 'a', ch)
	assert.NotZero(t, attrs&tcell.AttrReverse)

	ch, _, _, _ = s.GetContent(1, 0)
	assert.Equal(t, '│', ch)
}

func TestRendererClipsGlyphs(t *testing.T) {
	s := newScreen(t, 4, 1)
	r := NewRenderer(s, 8, 16)

	dl := reorderable.AcquireDrawList()
	defer reorderable.ReleaseDrawList(dl)
	dl.PushClipRect(reorderable.Rect{W: 8, H: 16})
	dl.SetTexture(r.FontTextureID())
	dl.AddText(0, 0, "AB", reorderable.ColorWhite, 8, 16)
	dl.PopClipRect()
	dl.Finalize()
	require.NoError(t, r.Render(dl))

	ch, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, 'A', ch)
	ch, _, _, _ = s.GetContent(1, 0)
	assert.Equal(t, ' ', ch)
}

func TestRendererDisplaySize(t *testing.T) {
	s := newScreen(t, 80, 24)
	r := NewRenderer(s, 8, 16)
	assert.Equal(t, reorderable.Vec2{X: 640, Y: 384}, r.DisplaySize())
}

func TestInputAdapterMouse(t *testing.T) {
	a := NewInputAdapter(8, 16)
	in := a.Input()

	a.Feed(tcell.NewEventMouse(2, 3, tcell.ButtonPrimary, tcell.ModShift))
	assert.Equal(t, reorderable.Vec2{X: 20, Y: 56}, in.MousePos())
	assert.True(t, in.MouseClicked(reorderable.MouseButtonLeft))
	assert.True(t, in.ModShift)
	a.EndFrame()

	a.Feed(tcell.NewEventMouse(2, 4, tcell.ButtonPrimary, 0))
	assert.True(t, in.MouseDown(reorderable.MouseButtonLeft))
	assert.False(t, in.MouseClicked(reorderable.MouseButtonLeft))
	a.EndFrame()

	a.Feed(tcell.NewEventMouse(2, 4, tcell.ButtonNone, 0))
	assert.True(t, in.MouseReleased(reorderable.MouseButtonLeft))

	a.Feed(tcell.NewEventMouse(0, 0, tcell.ButtonSecondary, 0))
	assert.True(t, in.MouseClicked(reorderable.MouseButtonRight))
}

func TestInputAdapterKeys(t *testing.T) {
	a := NewInputAdapter(8, 16)
	in := a.Input()

	assert.False(t, a.Feed(tcell.NewEventKey(tcell.KeyRune, 'q', 0)))
	assert.False(t, a.Feed(tcell.NewEventKey(tcell.KeyUp, 0, 0)))
	assert.Equal(t, []rune{'q'}, in.InputChars)
	assert.True(t, in.KeyPressed(reorderable.KeyUp))

	a.EndFrame()
	assert.False(t, in.KeyDown(reorderable.KeyUp), "keys are released after the frame")
	assert.Empty(t, in.InputChars)

	a.Feed(tcell.NewEventKey(tcell.KeyUp, 0, 0))
	assert.True(t, in.KeyPressed(reorderable.KeyUp), "a repeated key presses again")

	assert.True(t, a.Feed(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestInputAdapterFocusLoss(t *testing.T) {
	a := NewInputAdapter(8, 16)
	in := a.Input()
	a.Feed(tcell.NewEventMouse(1, 1, tcell.ButtonPrimary, 0))

	a.Feed(tcell.NewEventFocus(false))
	assert.True(t, in.FocusLost())
	assert.False(t, in.MouseDown(reorderable.MouseButtonLeft))

	a.EndFrame()
	assert.False(t, in.FocusLost())
}

func TestTcellKey(t *testing.T) {
	assert.Equal(t, reorderable.KeyBackspace, tcellKey(tcell.KeyBackspace2))
	assert.Equal(t, reorderable.KeyEscape, tcellKey(tcell.KeyEscape))
	assert.Equal(t, reorderable.KeyNone, tcellKey(tcell.KeyF1))
}

// findRune returns the first cell holding ch, scanning rows top to bottom.
func findRune(s tcell.Screen, ch rune) (x, y int, ok bool) {
	w, h := s.Size()
	for y := range h {
		for x := range w {
			if c, _, _, _ := s.GetContent(x, y); c == ch {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestListOnTerminal(t *testing.T) {
	s := newScreen(t, 40, 10)
	r := NewRenderer(s, DefaultCellWidth, DefaultCellHeight)
	ui := reorderable.New(r, reorderable.WithStyle(Style(DefaultCellWidth, DefaultCellHeight)))
	input := NewInputAdapter(DefaultCellWidth, DefaultCellHeight)

	items := []string{"A", "B"}
	a := reorderable.NewSliceAdaptor(&items, nil)
	ctx := ui.Begin(input.Input(), r.DisplaySize(), 0)
	res := ctx.ReorderableList("list", a)
	require.NoError(t, ui.End())
	input.EndFrame()

	// padding, two rows, padding, footer
	assert.Equal(t, float32(5*DefaultCellHeight), res.Height)

	_, ya, ok := findRune(s, 'A')
	require.True(t, ok)
	_, yb, ok := findRune(s, 'B')
	require.True(t, ok)
	assert.Equal(t, 1, ya)
	assert.Equal(t, 2, yb)

	_, yadd, ok := findRune(s, '+')
	require.True(t, ok)
	assert.Equal(t, 4, yadd)
}

func TestStyleIsCellAligned(t *testing.T) {
	st := Style(8, 16)
	assert.Equal(t, float32(16), st.List.HandleWidth)
	assert.Equal(t, float32(24), st.List.RemoveButtonWidth)
	assert.Equal(t, float32(16), st.CharHeight)
	assert.Zero(t, st.ButtonPadding)
}

func TestPollEventsStopsOnCancel(t *testing.T) {
	s := newScreen(t, 10, 4)
	ctx, cancel := context.WithCancel(context.Background())
	events := PollEvents(ctx, s)

	for range 20 {
		ev := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
		require.Eventually(t, func() bool { return s.PostEvent(ev) == nil }, time.Second, time.Millisecond)
	}
	require.Eventually(t, func() bool { return len(events) == cap(events) }, time.Second, time.Millisecond)

	// Nobody reads the channel, so the forwarder is parked on a full buffer.
	cancel()
	time.Sleep(20 * time.Millisecond)

	n := 0
	for range events {
		n++
	}
	assert.Equal(t, cap(events), n, "no event is forwarded after cancel")
}
