package reorderable

import "github.com/rivo/uniseg"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context; it is the immediate-mode GUI context that
// widgets draw into and read input from.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Popups, drawn on top

	// Input (read-only during frame)
	Input *InputState

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	style Style

	cursor       Vec2
	contentWidth float32 // 0 means the display width minus the cursor margin

	idStack []ID

	focusedID ID // Widget with keyboard focus
	captureID ID // Control holding exclusive pointer capture

	autoFocusPending bool
	changed          bool
	changeStack      []bool

	measuringPass bool
	measureCursor Vec2

	textMeasureCache map[string]Vec2

	menu     *contextMenu
	commands []Command

	lists      *ListController
	textStates *FrameStore[textFieldState]

	// Output flags for the application.
	WantCaptureMouse    bool // Mouse is over a control or a control holds capture
	WantCaptureKeyboard bool // A text input has focus
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		lists:            NewListController(),
		textStates:       NewFrameStore[textFieldState](),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the current style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Lists returns the controller that owns per-list state for this context.
func (ctx *Context) Lists() *ListController {
	return ctx.lists
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	if orphan := ctx.lists.advance(ctx.FrameCount); orphan != 0 {
		ctx.ReleaseCapture(orphan)
	}
	ctx.textStates.Advance(ctx.FrameCount)

	if ctx.DrawList == nil {
		ctx.DrawList = AcquireDrawList()
	} else {
		ctx.DrawList.Clear()
	}
	if ctx.ForegroundDrawList == nil {
		ctx.ForegroundDrawList = AcquireDrawList()
	} else {
		ctx.ForegroundDrawList.Clear()
	}

	ctx.cursor = Vec2{}
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.changed = false
	ctx.changeStack = ctx.changeStack[:0]
	ctx.autoFocusPending = false
	ctx.measuringPass = false
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.textMeasureCache)

	if ctx.Input != nil && ctx.Input.FocusLost() {
		ctx.RevokeCapture()
	}
}

// EndFrame draws popups and drops commands nobody collected.
// GUI.End calls it; code driving a Context directly must call it once per frame.
func (ctx *Context) EndFrame() {
	ctx.drawContextMenu()
	ctx.expireCommands()
	if ctx.captureID != 0 || ctx.menu != nil {
		ctx.WantCaptureMouse = true
	}
	if ctx.focusedID != 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// isHovered returns true if the widget area is under the mouse cursor and
// no other control holds capture or a popup covers the widgets.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil || ctx.measuringPass {
		return false
	}
	if ctx.captureID != 0 && ctx.captureID != id {
		return false
	}
	if ctx.menu != nil && ctx.menu.id != id {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked with button this frame.
func (ctx *Context) isClicked(id ID, rect Rect, button MouseButton) bool {
	if ctx.Input == nil {
		return false
	}
	clicked := ctx.Input.MouseClicked(button)
	if !clicked {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	if guiVerbose() {
		guiLogger.Debug("click",
			"id", id,
			"hit", hovered,
			"rect", rect,
			"mouse", ctx.Input.MousePos())
	}
	return hovered
}

// IsClicked returns true if the widget was left-clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect, MouseButtonLeft)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// Input capture

// AcquireCapture gives id exclusive pointer capture. It fails when another
// control already holds it.
func (ctx *Context) AcquireCapture(id ID) bool {
	if ctx.captureID != 0 && ctx.captureID != id {
		return false
	}
	ctx.captureID = id
	return true
}

// ReleaseCapture releases capture if id holds it.
func (ctx *Context) ReleaseCapture(id ID) {
	if ctx.captureID == id {
		ctx.captureID = 0
	}
}

// HasCapture reports whether id holds pointer capture.
func (ctx *Context) HasCapture(id ID) bool {
	return id != 0 && ctx.captureID == id
}

// CaptureID returns the control holding capture, or 0.
func (ctx *Context) CaptureID() ID {
	return ctx.captureID
}

// RevokeCapture takes capture away from whichever control holds it.
// Hosts call it when the window loses focus; Reset does it automatically
// when the input reports focus loss.
func (ctx *Context) RevokeCapture() {
	if ctx.captureID != 0 {
		guiLogger.Debug("capture revoked", "id", ctx.captureID)
	}
	ctx.captureID = 0
}

// Keyboard focus

// SetFocused gives id keyboard focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused reports whether id has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// FocusedID returns the widget with keyboard focus, or 0.
func (ctx *Context) FocusedID() ID {
	return ctx.focusedID
}

// ClearFocus removes keyboard focus from all widgets.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// RequestAutoFocus makes the next focusable widget drawn this frame take
// keyboard focus.
func (ctx *Context) RequestAutoFocus() {
	ctx.autoFocusPending = true
}

// CancelAutoFocus drops a pending auto-focus request. It reports whether the
// request was still pending.
func (ctx *Context) CancelAutoFocus() bool {
	pending := ctx.autoFocusPending
	ctx.autoFocusPending = false
	return pending
}

// takeAutoFocus is called by focusable widgets; it focuses id when an
// auto-focus request is pending.
func (ctx *Context) takeAutoFocus(id ID) bool {
	if !ctx.autoFocusPending || ctx.measuringPass {
		return false
	}
	ctx.autoFocusPending = false
	ctx.focusedID = id
	return true
}

// Change tracking

// MarkChanged records that a widget modified its value this frame.
func (ctx *Context) MarkChanged() {
	ctx.changed = true
}

// Changed reports whether any widget changed a value since the frame began
// or the innermost BeginChangeCheck.
func (ctx *Context) Changed() bool {
	return ctx.changed
}

// BeginChangeCheck starts a nested change scope.
func (ctx *Context) BeginChangeCheck() {
	ctx.changeStack = append(ctx.changeStack, ctx.changed)
	ctx.changed = false
}

// EndChangeCheck closes the innermost change scope and reports whether
// anything changed inside it. Changes propagate to the enclosing scope.
func (ctx *Context) EndChangeCheck() bool {
	changed := ctx.changed
	if n := len(ctx.changeStack); n > 0 {
		ctx.changed = ctx.changeStack[n-1] || changed
		ctx.changeStack = ctx.changeStack[:n-1]
	}
	return changed
}

// Two-pass layout

// BeginMeasure starts a measuring pass. Widgets report sizes and advance
// the cursor but draw nothing and ignore input.
func (ctx *Context) BeginMeasure() {
	ctx.measuringPass = true
	ctx.measureCursor = ctx.cursor
}

// EndMeasure ends the measuring pass and restores the cursor.
func (ctx *Context) EndMeasure() {
	ctx.measuringPass = false
	ctx.cursor = ctx.measureCursor
}

// IsMeasuring reports whether a measuring pass is active.
func (ctx *Context) IsMeasuring() bool {
	return ctx.measuringPass
}

// Layout

// SetCursorPos sets the position of the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the position of the next widget.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// SetContentWidth sets the width available to flowing widgets. Zero restores
// the default of the display width minus the cursor margin on both sides.
func (ctx *Context) SetContentWidth(w float32) {
	ctx.contentWidth = w
}

// ContentWidth returns the width available to the next widget.
func (ctx *Context) ContentWidth() float32 {
	if ctx.contentWidth > 0 {
		return ctx.contentWidth
	}
	return max(0, ctx.DisplaySize.X-2*ctx.cursor.X)
}

// ItemPos returns the position for the next widget.
func (ctx *Context) ItemPos() Vec2 {
	return ctx.cursor
}

// AdvanceCursor moves the cursor below an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// LineHeight returns the height of a single-line widget.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight + ctx.style.ButtonPadding*2
}

// Text

// MeasureText returns the size of text in the built-in monospace font.
// Width counts terminal cells so wide graphemes take two.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	result := Vec2{
		X: float32(uniseg.StringWidth(text)) * ctx.style.CharWidth,
		Y: ctx.style.CharHeight,
	}
	ctx.textMeasureCache[text] = result
	return result
}

// AddText draws text with the current style.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into a specific draw list.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil || ctx.measuringPass {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}
