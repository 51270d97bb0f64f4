package reorderable

// MenuEntry is one line of a context menu. Selecting an enabled entry posts
// Command to the control that opened the menu.
type MenuEntry struct {
	Label    string
	Command  string
	Disabled bool
}

// contextMenu is the single popup menu a Context can show. It remembers
// which control and item it was opened for so the chosen command can be
// routed back to them.
type contextMenu struct {
	id          ID
	owner       ID
	index       int
	pos         Vec2
	entries     []MenuEntry
	selectedIdx int // -1 when nothing is highlighted
	openedFrame uint64
}

// OpenContextMenu shows a menu at pos on behalf of owner for the item at
// index. Any previously open menu is replaced.
func (ctx *Context) OpenContextMenu(owner ID, index int, pos Vec2, entries []MenuEntry) {
	if len(entries) == 0 {
		return
	}
	ctx.menu = &contextMenu{
		id:          ctx.GetID("##context-menu"),
		owner:       owner,
		index:       index,
		pos:         pos,
		entries:     entries,
		selectedIdx: -1,
		openedFrame: ctx.FrameCount,
	}
	guiLogger.Debug("context menu opened", "owner", owner, "index", index, "entries", len(entries))
}

// CloseContextMenu closes the open menu without selecting anything.
func (ctx *Context) CloseContextMenu() {
	ctx.menu = nil
}

// ContextMenuOpen reports whether a context menu is showing.
func (ctx *Context) ContextMenuOpen() bool {
	return ctx.menu != nil
}

// ContextMenuEntries returns the entries of the open menu, or nil.
func (ctx *Context) ContextMenuEntries() []MenuEntry {
	if ctx.menu == nil {
		return nil
	}
	return ctx.menu.entries
}

// ContextMenuEntryRect returns the screen rectangle of entry i of the open menu.
func (ctx *Context) ContextMenuEntryRect(i int) Rect {
	if ctx.menu == nil {
		return Rect{}
	}
	r := ctx.contextMenuRect()
	rowH := ctx.LineHeight()
	return Rect{X: r.X, Y: r.Y + ctx.style.BorderSize + float32(i)*rowH, W: r.W, H: rowH}
}

func (ctx *Context) contextMenuRect() Rect {
	m := ctx.menu
	var w float32
	for _, e := range m.entries {
		w = max(w, ctx.MeasureText(e.Label).X)
	}
	w += ctx.style.ButtonPadding*4 + ctx.style.BorderSize*2
	h := float32(len(m.entries))*ctx.LineHeight() + ctx.style.BorderSize*2

	x, y := m.pos.X, m.pos.Y
	if ctx.DisplaySize.X > 0 && x+w > ctx.DisplaySize.X {
		x = max(0, ctx.DisplaySize.X-w)
	}
	if ctx.DisplaySize.Y > 0 && y+h > ctx.DisplaySize.Y {
		y = max(0, ctx.DisplaySize.Y-h)
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// moveSelection steps the highlight by dir, skipping disabled entries.
func (m *contextMenu) moveSelection(dir int) {
	n := len(m.entries)
	idx := m.selectedIdx
	for range n {
		idx += dir
		if idx < 0 {
			idx = n - 1
		} else if idx >= n {
			idx = 0
		}
		if !m.entries[idx].Disabled {
			m.selectedIdx = idx
			return
		}
	}
}

// handleContextMenuInput processes input for the open menu and returns the
// chosen entry index, or -1.
func (ctx *Context) handleContextMenuInput(r Rect) int {
	m := ctx.menu
	in := ctx.Input
	if in == nil || m.openedFrame == ctx.FrameCount {
		return -1
	}

	if in.KeyPressed(KeyEscape) {
		ctx.CloseContextMenu()
		return -1
	}
	if in.KeyPressed(KeyUp) {
		m.moveSelection(-1)
	}
	if in.KeyPressed(KeyDown) {
		m.moveSelection(1)
	}
	if in.KeyPressed(KeyEnter) && m.selectedIdx >= 0 {
		return m.selectedIdx
	}

	mouse := in.MousePos()
	if r.Contains(mouse) {
		for i, e := range m.entries {
			if !ctx.ContextMenuEntryRect(i).Contains(mouse) {
				continue
			}
			if !e.Disabled {
				m.selectedIdx = i
				if in.MouseClicked(MouseButtonLeft) {
					return i
				}
			}
			break
		}
		return -1
	}

	if in.MouseClicked(MouseButtonLeft) || in.MouseClicked(MouseButtonRight) || in.MouseClicked(MouseButtonMiddle) {
		ctx.CloseContextMenu()
	}
	return -1
}

// drawContextMenu runs the open menu for this frame. A chosen entry is
// posted as a command to the owning control and the menu closes.
func (ctx *Context) drawContextMenu() {
	if ctx.menu == nil {
		return
	}
	r := ctx.contextMenuRect()
	if chosen := ctx.handleContextMenuInput(r); chosen >= 0 {
		m := ctx.menu
		ctx.PostCommand(m.owner, m.entries[chosen].Command, m.index)
		ctx.CloseContextMenu()
		return
	}
	if ctx.menu == nil {
		return
	}

	dl := ctx.ForegroundDrawList
	if dl == nil {
		return
	}
	st := ctx.style
	dl.AddRect(r, st.PopupBgColor)
	dl.AddRectOutline(r, st.PopupBorderColor, st.BorderSize)
	for i, e := range ctx.menu.entries {
		er := ctx.ContextMenuEntryRect(i)
		if i == ctx.menu.selectedIdx {
			dl.AddRect(er.Inset(st.BorderSize, 0, st.BorderSize, 0), st.SelectedBgColor)
		}
		color := st.TextColor
		if e.Disabled {
			color = st.TextDisabledColor
		}
		ctx.AddTextTo(dl, er.X+st.ButtonPadding*2, er.Y+st.ButtonPadding, e.Label, color)
	}
}
