package reorderable

// DragState describes a row drag in progress.
type DragState struct {
	AnchorIndex   int     // row being dragged
	TargetIndex   int     // insertion slot in [0, count]
	PointerOffset float32 // pointer Y minus the anchor row's top at pick-up
}

type dragPhase uint8

const (
	dragIdle dragPhase = iota
	dragDragging
)

// dragEngine is the per-list drag state machine. It holds no references to
// the adaptor or the context; the controller feeds it layout and pointer
// positions each frame.
type dragEngine struct {
	phase        dragPhase
	state        DragState
	anchorHeight float32 // outer height of the anchor row at pick-up
	pointerY     float32
}

func (d *dragEngine) active() bool {
	return d.phase == dragDragging
}

// begin enters Dragging with row anchor under the pointer.
func (d *dragEngine) begin(anchor int, pointerY, rowTop, anchorHeight float32) {
	d.phase = dragDragging
	d.state = DragState{
		AnchorIndex:   anchor,
		TargetIndex:   anchor,
		PointerOffset: pointerY - rowTop,
	}
	d.anchorHeight = anchorHeight
	d.pointerY = pointerY
}

// reset returns to Idle.
func (d *dragEngine) reset() {
	*d = dragEngine{}
}

// clamp keeps the indices valid for count items. It reports false when no
// row is left to drag.
func (d *dragEngine) clamp(count int) bool {
	if count <= 0 {
		return false
	}
	d.state.AnchorIndex = clamp(d.state.AnchorIndex, 0, count-1)
	d.state.TargetIndex = clamp(d.state.TargetIndex, 0, count)
	return true
}

// updateTarget moves the floating row to pointerY and recomputes the
// target slot. The floating row's midpoint is compared against the
// midpoint of every other row at its layout position; the first row whose
// midpoint lies below it becomes the target. A pointer above the rows
// targets 0 and one below them targets count.
func (d *dragEngine) updateTarget(l ListLayout, pointerY float32) {
	d.pointerY = pointerY
	n := l.Len()
	switch {
	case pointerY < l.RowsTop():
		d.state.TargetIndex = 0
		return
	case pointerY >= l.RowsBottom():
		d.state.TargetIndex = n
		return
	}

	floatingMid := pointerY - d.state.PointerOffset + d.anchorHeight*0.5
	target := n
	for i := range n {
		if i == d.state.AnchorIndex {
			continue
		}
		if l.MidY(i) > floatingMid {
			target = i
			break
		}
	}
	d.state.TargetIndex = target
}

// floatingTop returns where the floating row is drawn: under the pointer,
// clamped between the first and last row slots.
func (d *dragEngine) floatingTop(l ListLayout) float32 {
	top := d.pointerY - d.state.PointerOffset
	lo := l.RowsTop()
	hi := max(lo, l.RowsBottom()-d.anchorHeight)
	return clamp(top, lo, hi)
}

// displayTops places the non-anchor rows in order with a gap the size of
// the anchor row at the target slot. It returns each row's top (the
// anchor's entry is unused) and the top of the gap.
func (d *dragEngine) displayTops(l ListLayout) (tops []float32, gapTop float32) {
	n := l.Len()
	tops = make([]float32, n)
	y := l.RowsTop()
	gap := d.anchorHeight + l.style.SplitterHeight
	gapTop = -1
	for i := range n {
		if i == d.state.TargetIndex {
			gapTop = y
			y += gap
		}
		if i == d.state.AnchorIndex {
			continue
		}
		tops[i] = y
		y += l.OuterHeight(i) + l.style.SplitterHeight
	}
	if gapTop < 0 {
		gapTop = y
	}
	return tops, gapTop
}

// isNoOp reports whether dropping at target leaves the order unchanged.
func isNoOp(anchor, target int) bool {
	return target == anchor || target == anchor+1
}

// commit ends the drag and moves the anchor to the target slot through the
// adaptor. Drops at the anchor's own slot, or the one right after it, do
// not touch the adaptor.
func (d *dragEngine) commit(a ListAdaptor) (src, dest int, moved bool, err error) {
	s := d.state
	d.reset()
	if isNoOp(s.AnchorIndex, s.TargetIndex) {
		return s.AnchorIndex, s.AnchorIndex, false, nil
	}
	dest = s.TargetIndex
	if dest > s.AnchorIndex {
		dest--
	}
	if err := a.Move(s.AnchorIndex, dest); err != nil {
		return s.AnchorIndex, dest, false, err
	}
	return s.AnchorIndex, dest, true, nil
}
