package terminal

import "github.com/go-theft-auto/reorderable"

// Cell size in GUI units. Every metric of Style is a multiple of it so
// rows, buttons and text land on whole terminal cells.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Style returns a style laid out on a grid of cellW x cellH cells: one
// text line per cell row, no borders and no sub-cell padding.
func Style(cellW, cellH float32) reorderable.Style {
	st := reorderable.DefaultStyle()
	st.CharWidth = cellW
	st.CharHeight = cellH
	st.ItemSpacing = cellH
	st.ButtonPadding = 0
	st.InputPadding = 0
	st.BorderSize = 0

	st.InputBgColor = reorderable.RGBA(40, 40, 48, 255)
	st.InputFocusedBgColor = reorderable.RGBA(20, 60, 90, 255)

	l := &st.List
	l.ContainerPadding = cellH
	l.RowPadding = 0
	l.SplitterHeight = 0
	l.HandleWidth = 2 * cellW
	l.RemoveButtonWidth = 3 * cellW
	l.RowInset = cellW
	l.FooterHeight = cellH
	l.AddButtonWidth = 3 * cellW
	l.EmptyHeight = cellH
	l.TargetBarHeight = 2
	l.ItemHeight = cellH
	return st
}
