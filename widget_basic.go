package reorderable

import (
	"slices"
	"strings"
)

// displayLabel strips an ID suffix: "Name##row3" draws as "Name".
func displayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// LabelAt draws text vertically centered inside rect, clipped to it.
func (ctx *Context) LabelAt(rect Rect, text string) {
	ctx.labelAt(rect, text, ctx.style.TextColor)
}

func (ctx *Context) labelAt(rect Rect, text string, color uint32) {
	if ctx.measuringPass || ctx.DrawList == nil || text == "" {
		return
	}
	size := ctx.MeasureText(text)
	ctx.DrawList.PushClipRect(rect)
	ctx.AddText(rect.X, rect.Y+(rect.H-size.Y)/2, text, color)
	ctx.DrawList.PopClipRect()
}

// Label draws a line of text and advances the cursor.
func (ctx *Context) Label(text string) {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)
	ctx.LabelAt(Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, text)
	ctx.AdvanceCursor(size)
}

// ButtonAt draws a button filling rect and returns true when it was clicked.
func (ctx *Context) ButtonAt(label string, rect Rect, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	if ctx.measuringPass {
		return false
	}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(id, rect)
	pressed := !disabled && ctx.isPressed(id, rect)

	bgColor := ctx.style.ButtonColor
	switch {
	case disabled:
		bgColor = ctx.style.ButtonDisabledColor
	case pressed:
		bgColor = ctx.style.ButtonActiveColor
	case hovered:
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(rect, bgColor)

	text := displayLabel(label)
	textSize := ctx.MeasureText(text)
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(rect.X+(rect.W-textSize.X)/2, rect.Y+(rect.H-textSize.Y)/2, text, textColor)

	if hovered {
		ctx.WantCaptureMouse = true
	}
	return !disabled && ctx.isClicked(id, rect, MouseButtonLeft)
}

// Button draws a button sized to its label and advances the cursor.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	textSize := ctx.MeasureText(displayLabel(label))
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	clicked := ctx.ButtonAt(label, Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, opts...)
	ctx.AdvanceCursor(size)
	return clicked
}

// textFieldState is the per-ID state of a text field.
type textFieldState struct {
	cursorPos int // in runes
}

// InputTextAt draws a single-line text field filling rect. Clicking it or
// an auto-focus request gives it keyboard focus; Enter, Escape or a click
// elsewhere releases it. It returns true when value changed and marks the
// context as changed.
func (ctx *Context) InputTextAt(label string, rect Rect, value *string, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	if ctx.measuringPass {
		return false
	}
	state := ctx.textStates.Get(id, textFieldState{cursorPos: -1})
	runes := []rune(*value)

	if ctx.takeAutoFocus(id) {
		state.cursorPos = len(runes)
	}
	if ctx.isClicked(id, rect, MouseButtonLeft) {
		ctx.SetFocused(id)
		state.cursorPos = ctx.cursorFromX(runes, ctx.Input.MouseX-rect.X-ctx.style.InputPadding)
	} else if ctx.IsFocused(id) && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !rect.Contains(ctx.Input.MousePos()) {
		ctx.ClearFocus()
	}
	state.cursorPos = clamp(state.cursorPos, 0, len(runes))

	changed := false
	editing := ctx.IsFocused(id)
	if editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		changed = ctx.editText(&runes, state)
		if changed {
			*value = string(runes)
			ctx.MarkChanged()
		}
	}

	bgColor := ctx.style.InputBgColor
	if ctx.IsFocused(id) {
		bgColor = ctx.style.InputFocusedBgColor
	}
	dl := ctx.DrawList
	dl.AddRect(rect, bgColor)
	dl.AddRectOutline(rect, ctx.style.InputBorderColor, ctx.style.BorderSize)

	textRect := rect.Inset(ctx.style.InputPadding, 0, ctx.style.InputPadding, 0)
	ctx.labelAt(textRect, *value, ctx.style.TextColor)
	if ctx.IsFocused(id) {
		cx := textRect.X + ctx.MeasureText(string(runes[:state.cursorPos])).X
		dl.AddLine(cx, rect.Y+2, cx, rect.Bottom()-2, ctx.style.TextColor, 1)
	}
	return changed
}

// InputText draws a labelled text field and advances the cursor.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	x := pos.X
	h := ctx.LineHeight()
	if text := displayLabel(label); text != "" {
		ctx.LabelAt(Rect{X: x, Y: pos.Y, W: ctx.MeasureText(text).X, H: h}, text)
		x += ctx.MeasureText(text).X + ctx.style.ItemSpacing
	}
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = max(0, pos.X+ctx.ContentWidth()-x)
	}
	changed := ctx.InputTextAt(label, Rect{X: x, Y: pos.Y, W: w, H: h}, value, opts...)
	ctx.AdvanceCursor(Vec2{X: x + w - pos.X, Y: h})
	return changed
}

func (ctx *Context) cursorFromX(runes []rune, x float32) int {
	pos := 0
	for i := 0; i <= len(runes); i++ {
		if ctx.MeasureText(string(runes[:i])).X > x {
			break
		}
		pos = i
	}
	return pos
}

// editText applies this frame's keyboard input to runes.
func (ctx *Context) editText(runes *[]rune, state *textFieldState) bool {
	in := ctx.Input
	changed := false
	for _, ch := range in.InputChars {
		if ch < 32 || ch == 127 {
			continue
		}
		*runes = slices.Insert(*runes, state.cursorPos, ch)
		state.cursorPos++
		changed = true
	}
	switch {
	case in.KeyPressed(KeyBackspace) && state.cursorPos > 0:
		*runes = slices.Delete(*runes, state.cursorPos-1, state.cursorPos)
		state.cursorPos--
		changed = true
	case in.KeyPressed(KeyDelete) && state.cursorPos < len(*runes):
		*runes = slices.Delete(*runes, state.cursorPos, state.cursorPos+1)
		changed = true
	case in.KeyPressed(KeyLeft) && state.cursorPos > 0:
		state.cursorPos--
	case in.KeyPressed(KeyRight) && state.cursorPos < len(*runes):
		state.cursorPos++
	case in.KeyPressed(KeyHome):
		state.cursorPos = 0
	case in.KeyPressed(KeyEnd):
		state.cursorPos = len(*runes)
	case in.KeyPressed(KeyEnter) || in.KeyPressed(KeyEscape):
		ctx.ClearFocus()
	}
	return changed
}
