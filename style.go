package reorderable

import "sync"

// Style defines the visual appearance of the host widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	PopupBgColor     uint32
	PopupBorderColor uint32
	SelectedBgColor  uint32

	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32

	List ListStyle
}

// ListStyle holds the metrics and colors of the reorderable list control.
// The metrics feed the layout engine, so changing them changes hit regions.
type ListStyle struct {
	ContainerColor       uint32
	ContainerBorderColor uint32
	RowHoveredColor      uint32
	HandleColor          uint32
	SplitterColor        uint32
	FloatingRowColor     uint32
	TargetBarColor       uint32
	EmptyTextColor       uint32

	ContainerPadding  float32 // above the first row and below the last
	RowPadding        float32 // above and below each row's content
	SplitterHeight    float32 // between adjacent rows
	HandleWidth       float32 // drag handle strip at the row's left edge
	RemoveButtonWidth float32 // remove button zone at the row's right edge
	RowInset          float32 // horizontal inset when handle or remove zone is hidden
	FooterHeight      float32 // add button row below the container
	AddButtonWidth    float32
	EmptyHeight       float32 // content height of the empty placeholder
	TargetBarHeight   float32
	ItemHeight        float32 // default row content height
}

var (
	defaultStyleOnce sync.Once
	defaultStyle     Style
)

// DefaultStyle returns the default style. The value is built once and copied
// on every call, so callers may modify the result freely.
func DefaultStyle() Style {
	defaultStyleOnce.Do(func() {
		defaultStyle = Style{
			TextColor:         ColorWhite,
			TextDisabledColor: ColorGray,

			ButtonColor:         RGBA(50, 50, 50, 255),
			ButtonHoveredColor:  RGBA(70, 70, 70, 255),
			ButtonActiveColor:   RGBA(90, 90, 90, 255),
			ButtonDisabledColor: RGBA(30, 30, 30, 255),

			InputBgColor:        RGBA(30, 30, 30, 255),
			InputFocusedBgColor: RGBA(40, 40, 50, 255),
			InputBorderColor:    RGBA(100, 100, 100, 255),

			PopupBgColor:     RGBA(25, 25, 25, 250),
			PopupBorderColor: RGBA(80, 80, 80, 255),
			SelectedBgColor:  RGBA(50, 100, 150, 255),

			CharWidth:     8,
			CharHeight:    8,
			ItemSpacing:   4,
			ButtonPadding: 6,
			InputPadding:  4,
			BorderSize:    1,

			List: DefaultListStyle(),
		}
	})
	return defaultStyle
}

// DefaultListStyle returns the default list metrics and colors.
func DefaultListStyle() ListStyle {
	return ListStyle{
		ContainerColor:       RGBA(20, 20, 20, 220),
		ContainerBorderColor: RGBA(80, 80, 80, 255),
		RowHoveredColor:      RGBA(35, 35, 40, 255),
		HandleColor:          RGBA(120, 120, 120, 255),
		SplitterColor:        RGBA(45, 45, 45, 255),
		FloatingRowColor:     RGBA(50, 100, 150, 235),
		TargetBarColor:       ColorCyan,
		EmptyTextColor:       ColorGray,

		ContainerPadding:  4,
		RowPadding:        2,
		SplitterHeight:    1,
		HandleWidth:       20,
		RemoveButtonWidth: 26,
		RowInset:          4,
		FooterHeight:      18,
		AddButtonWidth:    30,
		EmptyHeight:       18,
		TargetBarHeight:   2,
		ItemHeight:        18,
	}
}

// orDefault fills zero metrics from the defaults so a partially configured
// style still lays out sensibly.
func (s ListStyle) orDefault() ListStyle {
	if s == (ListStyle{}) {
		return DefaultListStyle()
	}
	d := DefaultListStyle()
	if s.HandleWidth <= 0 {
		s.HandleWidth = d.HandleWidth
	}
	if s.RemoveButtonWidth <= 0 {
		s.RemoveButtonWidth = d.RemoveButtonWidth
	}
	if s.FooterHeight <= 0 {
		s.FooterHeight = d.FooterHeight
	}
	if s.AddButtonWidth <= 0 {
		s.AddButtonWidth = d.AddButtonWidth
	}
	if s.EmptyHeight <= 0 {
		s.EmptyHeight = d.EmptyHeight
	}
	if s.ItemHeight <= 0 {
		s.ItemHeight = d.ItemHeight
	}
	return s
}
