package reorderable

import "testing"

// harness drives a Context frame by frame the way a host does: input is
// set up before the frame and its edges are cleared after it.
type harness struct {
	t   *testing.T
	ctx *Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := NewContext()
	ctx.Input = NewInputState()
	return &harness{t: t, ctx: ctx}
}

func (h *harness) frame(draw func(ctx *Context)) {
	h.t.Helper()
	h.ctx.Reset(Vec2{X: 800, Y: 600}, 1.0/60.0)
	if draw != nil {
		draw(h.ctx)
	}
	h.ctx.EndFrame()
	h.ctx.Input.Reset()
}

// list draws the list labelled "list" at the origin and returns the result.
func (h *harness) list(a ListAdaptor, opts ...Option) ListResult {
	h.t.Helper()
	var res ListResult
	h.frame(func(ctx *Context) {
		res = ctx.ReorderableList("list", a, opts...)
	})
	return res
}

func (h *harness) listID() ID {
	return h.ctx.ListID("list")
}

func (h *harness) move(x, y float32) *harness {
	h.ctx.Input.SetMousePos(x, y)
	return h
}

func (h *harness) press(b MouseButton) *harness {
	h.ctx.Input.SetMouseButton(b, true)
	return h
}

func (h *harness) release(b MouseButton) *harness {
	h.ctx.Input.SetMouseButton(b, false)
	return h
}

func (h *harness) key(k Key) *harness {
	h.ctx.Input.SetKey(k, true)
	return h
}

// releaseKeys lifts every key so the next press produces an edge.
func (h *harness) releaseKeys() {
	for k := Key(0); k < KeyCount; k++ {
		h.ctx.Input.SetKey(k, false)
	}
}

func letters(items ...string) (*[]string, *SliceAdaptor[string]) {
	s := append([]string(nil), items...)
	return &s, NewSliceAdaptor(&s, nil)
}

// Default geometry of a list at the origin: row i spans
// [rowTop(i), rowTop(i)+22) and its content is 18 high.
func rowTop(i int) float32 { return 4 + 23*float32(i) }

func rowMid(i int) float32 { return rowTop(i) + 11 }
