package reorderable

// RowSlot is the vertical placement of one row in a frame's layout.
type RowSlot struct {
	Index  int
	Top    float32 // top of the row including its padding
	Height float32 // content height reported by the adaptor
}

// RowGeometry holds the hit regions of one row.
type RowGeometry struct {
	Row    Rect // whole row
	Handle Rect // drag handle strip; zero width when reordering is disabled
	Item   Rect // content passed to DrawItem
	Remove Rect // remove button zone; zero width when remove buttons are hidden
}

// ListLayout maps row indices to screen rectangles for one frame.
// It is recomputed every frame and never mutated after construction.
type ListLayout struct {
	Container Rect // list box, excluding the footer
	Footer    Rect // add button strip; zero when the add button is hidden
	Rows      []RowSlot

	style ListStyle
	flags ListFlags
}

// rowOuterHeight is the vertical space a row takes. Zero-height rows
// collapse entirely but keep their index.
func rowOuterHeight(h float32, st ListStyle) float32 {
	if h <= 0 {
		return 0
	}
	return h + 2*st.RowPadding
}

func itemHeight(a ListAdaptor, i int) float32 {
	return max(0, a.ItemHeight(i))
}

// contentHeight is the height between the container paddings.
func contentHeight(a ListAdaptor, st ListStyle) float32 {
	n := a.Count()
	if n == 0 {
		return st.EmptyHeight
	}
	var h float32
	for i := range n {
		h += rowOuterHeight(itemHeight(a, i), st)
	}
	return h + float32(n-1)*st.SplitterHeight
}

// ComputeContainerHeight returns the total height of a list control:
// rows with their padding, splitters between rows, container padding and
// the footer when the add button is shown.
func ComputeContainerHeight(a ListAdaptor, st ListStyle, flags ListFlags) float32 {
	h := 2*st.ContainerPadding + contentHeight(a, st)
	if !flags.Has(HideAddButton) {
		h += st.FooterHeight
	}
	return h
}

// ComputeRowRect returns the content rectangle of row index for a list
// whose container starts at container's top-left corner. It walks rows
// 0..index and does not look past index.
func ComputeRowRect(container Rect, a ListAdaptor, st ListStyle, flags ListFlags, index int) Rect {
	top := container.Y + st.ContainerPadding
	for i := 0; i < index; i++ {
		top += rowOuterHeight(itemHeight(a, i), st) + st.SplitterHeight
	}
	return rowGeometry(container, st, flags, top, itemHeight(a, index)).Item
}

// ComputeLayout lays out every row of a list placed at origin with the
// given width.
func ComputeLayout(origin Vec2, width float32, a ListAdaptor, st ListStyle, flags ListFlags) ListLayout {
	n := a.Count()
	l := ListLayout{
		Container: Rect{X: origin.X, Y: origin.Y, W: width, H: 2*st.ContainerPadding + contentHeight(a, st)},
		Rows:      make([]RowSlot, 0, n),
		style:     st,
		flags:     flags,
	}
	top := origin.Y + st.ContainerPadding
	for i := range n {
		h := itemHeight(a, i)
		l.Rows = append(l.Rows, RowSlot{Index: i, Top: top, Height: h})
		top += rowOuterHeight(h, st) + st.SplitterHeight
	}
	if !flags.Has(HideAddButton) {
		l.Footer = Rect{X: origin.X, Y: l.Container.Bottom(), W: width, H: st.FooterHeight}
	}
	return l
}

func rowGeometry(container Rect, st ListStyle, flags ListFlags, top, h float32) RowGeometry {
	outer := rowOuterHeight(h, st)
	g := RowGeometry{Row: Rect{X: container.X, Y: top, W: container.W, H: outer}}

	left, right := st.RowInset, st.RowInset
	if !flags.Has(DisableReordering) {
		g.Handle = Rect{X: container.X, Y: top, W: st.HandleWidth, H: outer}
		left = st.HandleWidth
	}
	if !flags.Has(HideRemoveButtons) {
		g.Remove = Rect{X: container.Right() - st.RemoveButtonWidth, Y: top, W: st.RemoveButtonWidth, H: outer}
		right = st.RemoveButtonWidth
	}
	pad := st.RowPadding
	if h <= 0 {
		pad = 0
	}
	g.Item = Rect{X: container.X + left, Y: top + pad, W: max(0, container.W-left-right), H: h}
	return g
}

// Len returns the number of rows.
func (l ListLayout) Len() int {
	return len(l.Rows)
}

// OuterHeight returns the vertical space taken by row i.
func (l ListLayout) OuterHeight(i int) float32 {
	return rowOuterHeight(l.Rows[i].Height, l.style)
}

// Geometry returns the hit regions of row i at its layout position.
func (l ListLayout) Geometry(i int) RowGeometry {
	return l.GeometryAt(i, l.Rows[i].Top)
}

// GeometryAt returns the hit regions of row i placed at top instead of its
// layout position. Used for rows shifted by a drag and for the floating row.
func (l ListLayout) GeometryAt(i int, top float32) RowGeometry {
	return rowGeometry(l.Container, l.style, l.flags, top, l.Rows[i].Height)
}

// RowRect returns the whole rectangle of row i.
func (l ListLayout) RowRect(i int) Rect {
	return l.Geometry(i).Row
}

// ItemRect returns the content rectangle of row i.
func (l ListLayout) ItemRect(i int) Rect {
	return l.Geometry(i).Item
}

// MidY returns the vertical center of row i.
func (l ListLayout) MidY(i int) float32 {
	return l.Rows[i].Top + l.OuterHeight(i)*0.5
}

// RowsTop returns the top of the first row slot.
func (l ListLayout) RowsTop() float32 {
	return l.Container.Y + l.style.ContainerPadding
}

// RowsBottom returns the bottom of the last row slot.
func (l ListLayout) RowsBottom() float32 {
	return l.Container.Bottom() - l.style.ContainerPadding
}

// RowAt returns the index of the row containing y, or -1.
func (l ListLayout) RowAt(y float32) int {
	for i, s := range l.Rows {
		if y >= s.Top && y < s.Top+l.OuterHeight(i) {
			return i
		}
	}
	return -1
}

// EmptyRect returns the placeholder rectangle of an empty list.
func (l ListLayout) EmptyRect() Rect {
	p := l.style.ContainerPadding
	return l.Container.Inset(p+l.style.RowInset, p, p+l.style.RowInset, p)
}

// AddButtonRect returns the add button rectangle, right-aligned in the footer.
func (l ListLayout) AddButtonRect() Rect {
	if l.Footer.H <= 0 {
		return Rect{}
	}
	w := l.style.AddButtonWidth
	return Rect{X: l.Footer.Right() - w, Y: l.Footer.Y, W: w, H: l.Footer.H}
}
