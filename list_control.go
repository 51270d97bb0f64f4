package reorderable

// ListFlags toggles optional behavior of a list control.
type ListFlags uint32

const (
	// DisableReordering hides the drag handles and the move commands.
	DisableReordering ListFlags = 1 << iota
	// HideAddButton hides the footer add button and the insert commands.
	HideAddButton
	// HideRemoveButtons hides the per-row remove buttons and the remove commands.
	HideRemoveButtons
	// DisableContextMenu ignores right-clicks on rows.
	DisableContextMenu
	// DisableDuplicateCommand omits Duplicate from the context menu.
	DisableDuplicateCommand
	// DisableAutoFocus keeps keyboard focus where it is after an insert.
	DisableAutoFocus
)

// Has reports whether every bit of flag is set.
func (f ListFlags) Has(flag ListFlags) bool {
	return f&flag == flag
}

// ListEvents are optional callbacks fired on structural edits.
type ListEvents struct {
	// ItemInserted fires after an add, insert or duplicate.
	ItemInserted func(index int, duplicated bool)
	// ItemRemoving fires before a removal; returning false cancels it.
	ItemRemoving func(index int) bool
	// ItemMoved fires after a drag or a move command relocated an item.
	ItemMoved func(oldIndex, newIndex int)
}

// NoChangedIndex is reported by ChangedIndex when nothing changed, when the
// change was structural, or when several rows were edited.
const NoChangedIndex = -1

// ListResult summarizes one draw of a list control.
type ListResult struct {
	Changed      bool
	ChangedIndex int
	Height       float32
}

// listState is the per-control state that survives between frames.
type listState struct {
	drag           dragEngine
	autoFocusIndex int // row to focus on its next draw, or -1

	height      float32 // last measured height
	heightFrame uint64  // frame height was measured in
}

func newListState() listState {
	return listState{autoFocusIndex: -1}
}

// ListController draws list controls and owns their per-control state.
// Every Context owns one; several lists may be drawn in the same frame.
type ListController struct {
	states    *FrameStore[listState]
	dragOwner ID // list holding pointer capture for a drag, or 0

	changed      bool
	changedIndex int
}

// NewListController creates a controller with no list state.
func NewListController() *ListController {
	return &ListController{
		states:       NewFrameStore[listState](),
		changedIndex: NoChangedIndex,
	}
}

// advance drops the state of lists not drawn in the previous frame. It
// returns the ID of a dropped list that was mid-drag, or 0.
func (lc *ListController) advance(frame uint64) (orphan ID) {
	lc.states.Advance(frame)
	if lc.dragOwner != 0 && lc.states.GetIfExists(lc.dragOwner) == nil {
		orphan, lc.dragOwner = lc.dragOwner, 0
	}
	return orphan
}

// WasChanged reports whether the last draw or command mutated the list or
// edited one of its items.
func (lc *ListController) WasChanged() bool {
	return lc.changed
}

// ChangedIndex returns the row edited in place by the last draw, or
// NoChangedIndex.
func (lc *ListController) ChangedIndex() int {
	return lc.changedIndex
}

// DragState returns the drag in progress for control id, if any.
func (lc *ListController) DragState(id ID) (DragState, bool) {
	st := lc.states.GetIfExists(id)
	if st == nil || !st.drag.active() {
		return DragState{}, false
	}
	return st.drag.state, true
}

// CachedHeight returns the height measured for id during the current frame.
func (lc *ListController) CachedHeight(id ID, frame uint64) (float32, bool) {
	st := lc.states.GetIfExists(id)
	if st == nil || st.heightFrame != frame {
		return 0, false
	}
	return st.height, true
}

func (lc *ListController) resetChange() {
	lc.changed = false
	lc.changedIndex = NoChangedIndex
}

func (lc *ListController) noteEdit(index int) {
	if !lc.changed {
		lc.changed = true
		lc.changedIndex = index
		return
	}
	if lc.changedIndex != index {
		lc.changedIndex = NoChangedIndex
	}
}

func (lc *ListController) noteStructural() {
	lc.changed = true
	lc.changedIndex = NoChangedIndex
}

func (lc *ListController) result(h float32) ListResult {
	return ListResult{Changed: lc.changed, ChangedIndex: lc.changedIndex, Height: h}
}

// CalculateHeight returns the height a list would take without drawing it.
// It uses OptListStyle when given and the default list style otherwise.
func (lc *ListController) CalculateHeight(a ListAdaptor, opts ...Option) float32 {
	if a == nil {
		panic("reorderable: CalculateHeight with nil ListAdaptor")
	}
	o := applyOptions(opts)
	st := GetOpt(o, OptListStyle).orDefault()
	return ComputeContainerHeight(a, st, GetOpt(o, OptListFlags))
}

// Measure computes the height of list id with the context's style and
// caches it for the draw pass of the same frame.
func (lc *ListController) Measure(ctx *Context, id ID, a ListAdaptor, opts ...Option) float32 {
	if a == nil {
		panic("reorderable: Measure with nil ListAdaptor")
	}
	o := applyOptions(opts)
	h := ComputeContainerHeight(a, resolveListStyle(ctx, o), GetOpt(o, OptListFlags))
	state := lc.states.Get(id, newListState())
	state.height, state.heightFrame = h, ctx.FrameCount
	return h
}

func resolveListStyle(ctx *Context, o options) ListStyle {
	if HasOpt(o, OptListStyle) {
		return GetOpt(o, OptListStyle).orDefault()
	}
	return ctx.style.List.orDefault()
}

// listDraw carries everything one draw or command dispatch needs.
type listDraw struct {
	lc      *ListController
	ctx     *Context
	id      ID
	adaptor ListAdaptor
	flags   ListFlags
	style   ListStyle
	events  ListEvents
	state   *listState

	dragEnded bool // a drag was committed or cancelled this frame
}

func (lc *ListController) newListDraw(ctx *Context, id ID, a ListAdaptor, o options) *listDraw {
	return &listDraw{
		lc:      lc,
		ctx:     ctx,
		id:      id,
		adaptor: a,
		flags:   GetOpt(o, OptListFlags),
		style:   resolveListStyle(ctx, o),
		events:  GetOpt(o, OptListEvents),
		state:   lc.states.Get(id, newListState()),
	}
}

// Draw runs one frame of list control id at the cursor: pending commands,
// drag handling, rows, the floating row, the footer and the context menu.
// It advances the cursor by the list height.
func (lc *ListController) Draw(ctx *Context, id ID, a ListAdaptor, opts ...Option) ListResult {
	if a == nil {
		panic("reorderable: Draw with nil ListAdaptor")
	}
	o := applyOptions(opts)
	lc.resetChange()

	if ctx.IsMeasuring() {
		h := lc.Measure(ctx, id, a, opts...)
		ctx.AdvanceCursor(Vec2{Y: h})
		return lc.result(h)
	}

	d := lc.newListDraw(ctx, id, a, o)
	for _, cmd := range ctx.takeCommands(id) {
		d.dispatch(cmd)
	}

	width := GetOpt(o, OptWidth)
	if width <= 0 {
		width = ctx.ContentWidth()
	}
	origin := ctx.ItemPos()
	layout := ComputeLayout(origin, width, a, d.style, d.flags)
	reserved := layout.Container.H + layout.Footer.H
	if h, ok := lc.CachedHeight(id, ctx.FrameCount); ok {
		reserved = h
	}

	if guiVerbose() && ctx.Input != nil {
		if ev := ctx.Input.Event(); ev != EventNone {
			guiLogger.Debug("list event", "id", id, "event", ev, "count", a.Count(), "dragging", d.state.drag.active())
		}
	}

	ctx.idStack = append(ctx.idStack, id)
	if a.Count() == 0 {
		if d.state.drag.active() {
			d.cancelDrag("list is empty")
		}
		d.drawEmpty(layout, GetOpt(o, OptEmptyContent))
	} else {
		if d.updateDrag(layout) {
			layout = ComputeLayout(origin, width, a, d.style, d.flags)
		}
		d.handleContextClick(layout)
		d.drawRows(layout)
		d.drawFloatingRow(layout)
	}
	d.drawFooter(layout)
	ctx.PopID()

	if d.state.drag.active() {
		ctx.WantCaptureMouse = true
	}
	ctx.AdvanceCursor(Vec2{X: width, Y: reserved})
	return lc.result(reserved)
}

// ReorderableList draws a list control identified by label.
//
//	names := []string{"alpha", "beta"}
//	adaptor := reorderable.NewSliceAdaptor(&names, reorderable.TextFieldRenderer)
//	if res := ctx.ReorderableList("names", adaptor); res.Changed {
//	    save(names)
//	}
func (ctx *Context) ReorderableList(label string, a ListAdaptor, opts ...Option) ListResult {
	return ctx.lists.Draw(ctx, ctx.widgetID(label, applyOptions(opts)), a, opts...)
}

// ReorderableListHeight returns the height of the list identified by label
// without drawing it, and caches it for the draw later in the frame.
func (ctx *Context) ReorderableListHeight(label string, a ListAdaptor, opts ...Option) float32 {
	return ctx.lists.Measure(ctx, ctx.widgetID(label, applyOptions(opts)), a, opts...)
}

// ListID returns the control ID ReorderableList uses for label.
func (ctx *Context) ListID(label string) ID {
	return ctx.GetID(label)
}

func (d *listDraw) scheduleFocus(index int) {
	if d.flags.Has(DisableAutoFocus) {
		return
	}
	d.state.autoFocusIndex = index
}

// inserted records an insert at index and shifts the pending auto-focus row.
func (d *listDraw) inserted(index int, duplicated bool) {
	if d.state.autoFocusIndex >= index {
		d.state.autoFocusIndex++
	}
	d.lc.noteStructural()
	d.ctx.ClearFocus()
	d.scheduleFocus(index)
	if d.events.ItemInserted != nil {
		d.events.ItemInserted(index, duplicated)
	}
}

// removeItem removes row index unless a callback vetoes it.
func (d *listDraw) removeItem(index int) bool {
	if d.events.ItemRemoving != nil && !d.events.ItemRemoving(index) {
		guiLogger.Debug("remove cancelled", "id", d.id, "index", index)
		return false
	}
	if err := d.adaptor.Remove(index); err != nil {
		guiLogger.Warn("list remove failed", "id", d.id, "index", index, "error", err)
		return false
	}
	switch {
	case d.state.autoFocusIndex == index:
		d.state.autoFocusIndex = -1
	case d.state.autoFocusIndex > index:
		d.state.autoFocusIndex--
	}
	d.ctx.ClearFocus()
	d.lc.noteStructural()
	return true
}

func (d *listDraw) moveItem(src, dest int) bool {
	if src == dest {
		return false
	}
	if err := d.adaptor.Move(src, dest); err != nil {
		guiLogger.Warn("list move failed", "id", d.id, "src", src, "dest", dest, "error", err)
		return false
	}
	d.movedItem(src, dest)
	return true
}

func (d *listDraw) movedItem(src, dest int) {
	d.ctx.ClearFocus()
	d.lc.noteStructural()
	if d.events.ItemMoved != nil {
		d.events.ItemMoved(src, dest)
	}
}

// Drag handling

// updateDrag advances the drag of this list and reports whether a committed
// drop reordered the items.
func (d *listDraw) updateDrag(l ListLayout) bool {
	drag := &d.state.drag
	in := d.ctx.Input

	if drag.active() {
		if !drag.clamp(d.adaptor.Count()) {
			d.cancelDrag("list is empty")
			return false
		}
		switch {
		case in == nil:
			d.cancelDrag("no input")
		case !d.ctx.HasCapture(d.id):
			d.cancelDrag("capture lost")
		case in.KeyPressed(KeyEscape):
			d.cancelDrag("escape")
		case in.MouseClicked(MouseButtonRight) || in.MouseClicked(MouseButtonMiddle):
			d.cancelDrag("other button")
		case in.MouseReleased(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft):
			drag.updateTarget(l, in.MouseY)
			return d.commitDrag()
		default:
			drag.updateTarget(l, in.MouseY)
		}
		return false
	}

	if d.flags.Has(DisableReordering) || in == nil || !in.MouseClicked(MouseButtonLeft) || d.ctx.CaptureID() != 0 {
		return false
	}
	for i := range l.Len() {
		g := l.Geometry(i)
		if !d.ctx.isHovered(d.id, g.Handle) {
			continue
		}
		if !canDrag(d.adaptor, i) || !d.ctx.AcquireCapture(d.id) {
			return false
		}
		d.ctx.ClearFocus()
		drag.begin(i, in.MouseY, g.Row.Y, l.OuterHeight(i))
		d.lc.dragOwner = d.id
		guiLogger.Debug("drag started", "id", d.id, "anchor", i)
		return false
	}
	return false
}

func (d *listDraw) commitDrag() bool {
	d.dragEnded = true
	target := d.state.drag.state.TargetIndex
	src, dest, moved, err := d.state.drag.commit(d.adaptor)
	d.ctx.ReleaseCapture(d.id)
	d.lc.dragOwner = 0
	switch {
	case err != nil:
		guiLogger.Warn("list move failed", "id", d.id, "src", src, "dest", dest, "error", err)
	case moved:
		guiLogger.Debug("drag committed", "id", d.id, "anchor", src, "target", target, "dest", dest)
		d.movedItem(src, dest)
	default:
		guiLogger.Debug("drag dropped in place", "id", d.id, "anchor", src)
	}
	return moved && err == nil
}

func (d *listDraw) cancelDrag(reason string) {
	d.dragEnded = true
	guiLogger.Debug("drag cancelled", "id", d.id, "reason", reason)
	d.state.drag.reset()
	d.ctx.ReleaseCapture(d.id)
	d.lc.dragOwner = 0
}

// Context menu

// ListContextMenu builds the context menu entries for row index.
func ListContextMenu(flags ListFlags, a ListAdaptor, index int) []MenuEntry {
	count := a.Count()
	var entries []MenuEntry
	if !flags.Has(DisableReordering) {
		draggable := canDrag(a, index)
		entries = append(entries,
			MenuEntry{Label: "Move to Top", Command: CommandMoveToTop, Disabled: index <= 0 || !draggable},
			MenuEntry{Label: "Move to Bottom", Command: CommandMoveToBottom, Disabled: index >= count-1 || !draggable},
		)
	}
	if !flags.Has(HideAddButton) {
		entries = append(entries,
			MenuEntry{Label: "Insert Above", Command: CommandInsertAbove},
			MenuEntry{Label: "Insert Below", Command: CommandInsertBelow},
		)
		if !flags.Has(DisableDuplicateCommand) {
			entries = append(entries, MenuEntry{Label: "Duplicate", Command: CommandDuplicate})
		}
	}
	if !flags.Has(HideRemoveButtons) {
		entries = append(entries,
			MenuEntry{Label: "Remove", Command: CommandRemove, Disabled: !canRemove(a, index)},
			MenuEntry{Label: "Clear All", Command: CommandClearAll},
		)
	}
	return entries
}

func (d *listDraw) handleContextClick(l ListLayout) {
	in := d.ctx.Input
	if d.flags.Has(DisableContextMenu) || d.state.drag.active() || d.dragEnded || in == nil || !in.MouseClicked(MouseButtonRight) {
		return
	}
	i := l.RowAt(in.MouseY)
	if i < 0 || !d.ctx.isHovered(d.id, l.RowRect(i)) {
		return
	}
	if entries := ListContextMenu(d.flags, d.adaptor, i); len(entries) > 0 {
		d.ctx.OpenContextMenu(d.id, i, in.MousePos(), entries)
	}
}

// Drawing

func (d *listDraw) drawContainer(l ListLayout) {
	dl := d.ctx.DrawList
	dl.AddRect(l.Container, d.style.ContainerColor)
	dl.AddRectOutline(l.Container, d.style.ContainerBorderColor, d.ctx.style.BorderSize)
}

func (d *listDraw) drawEmpty(l ListLayout, empty EmptyContentFunc) {
	d.drawContainer(l)
	r := l.EmptyRect()
	if empty != nil {
		empty(d.ctx, r)
		return
	}
	d.ctx.labelAt(r, "List is empty.", d.style.EmptyTextColor)
}

func (d *listDraw) drawHandle(r Rect) {
	// Three short bars centered in the strip.
	cx, cy := r.X+r.W*0.5, r.MidY()
	for dy := float32(-3); dy <= 3; dy += 3 {
		d.ctx.DrawList.AddRect(Rect{X: cx - 4, Y: cy + dy - 0.5, W: 8, H: 1}, d.style.HandleColor)
	}
}

func (d *listDraw) drawRows(l ListLayout) {
	d.drawContainer(l)
	dl := d.ctx.DrawList
	dl.PushClipRect(l.Container)
	defer dl.PopClipRect()

	drag := &d.state.drag
	dragging := drag.active()
	var tops []float32
	if dragging {
		tops, _ = drag.displayTops(l)
	}

	// index follows the adaptor and stops advancing when a row is removed,
	// so the rows after it keep their slots and are drawn exactly once.
	index := 0
	for slot := range l.Len() {
		if index >= d.adaptor.Count() {
			break
		}
		if dragging && slot == drag.state.AnchorIndex {
			index++
			continue
		}
		top := l.Rows[slot].Top
		if dragging {
			top = tops[slot]
		}
		g := l.GeometryAt(slot, top)
		if g.Row.H <= 0 {
			index++
			continue
		}
		if slot > 0 && d.style.SplitterHeight > 0 {
			dl.AddRect(Rect{X: g.Row.X, Y: g.Row.Y - d.style.SplitterHeight, W: g.Row.W, H: d.style.SplitterHeight}, d.style.SplitterColor)
		}
		if d.drawRow(g, index, dragging) {
			continue
		}
		index++
	}
}

// drawRow draws one row and reports whether its remove button removed it.
func (d *listDraw) drawRow(g RowGeometry, index int, dragging bool) bool {
	ctx := d.ctx
	if !dragging && ctx.isHovered(d.id, g.Row) {
		ctx.DrawList.AddRect(g.Row, d.style.RowHoveredColor)
	}
	if bg, ok := d.adaptor.(ItemBackgroundDrawer); ok {
		bg.DrawItemBackground(ctx, g.Item, index)
	}
	if g.Handle.W > 0 && canDrag(d.adaptor, index) {
		d.drawHandle(g.Handle)
	}

	ctx.PushIDInt(index)
	defer ctx.PopID()

	focusing := d.state.autoFocusIndex == index
	if focusing {
		ctx.RequestAutoFocus()
	}
	ctx.BeginChangeCheck()
	d.adaptor.DrawItem(ctx, g.Item, index)
	edited := ctx.EndChangeCheck()
	if focusing {
		if ctx.CancelAutoFocus() {
			guiLogger.Debug("auto-focus found no focusable widget", "id", d.id, "index", index)
		}
		d.state.autoFocusIndex = -1
	}
	if edited {
		d.lc.noteEdit(index)
	}

	if g.Remove.W > 0 && canRemove(d.adaptor, index) {
		r := g.Remove.Inset(3, d.style.RowPadding, 3, d.style.RowPadding)
		if ctx.ButtonAt("x##remove", r) {
			return d.removeItem(index)
		}
	}
	return false
}

func (d *listDraw) drawFloatingRow(l ListLayout) {
	drag := &d.state.drag
	if !drag.active() {
		return
	}
	ctx := d.ctx
	dl := ctx.DrawList
	anchor := drag.state.AnchorIndex
	if anchor >= l.Len() {
		return
	}

	_, gapTop := drag.displayTops(l)
	bar := d.style.TargetBarHeight
	dl.AddRect(Rect{X: l.Container.X, Y: gapTop - bar*0.5, W: l.Container.W, H: bar}, d.style.TargetBarColor)

	g := l.GeometryAt(anchor, drag.floatingTop(l))
	dl.AddRect(g.Row, d.style.FloatingRowColor)
	if bg, ok := d.adaptor.(ItemBackgroundDrawer); ok {
		bg.DrawItemBackground(ctx, g.Item, anchor)
	}
	if g.Handle.W > 0 {
		d.drawHandle(g.Handle)
	}
	ctx.PushIDInt(anchor)
	d.adaptor.DrawItem(ctx, g.Item, anchor)
	ctx.PopID()
}

func (d *listDraw) drawFooter(l ListLayout) {
	if d.flags.Has(HideAddButton) {
		return
	}
	if !d.ctx.ButtonAt("+##add", l.AddButtonRect(), Disabled(d.state.drag.active())) {
		return
	}
	if err := d.adaptor.AddNew(); err != nil {
		guiLogger.Warn("list add failed", "id", d.id, "error", err)
		return
	}
	d.inserted(d.adaptor.Count()-1, false)
}
