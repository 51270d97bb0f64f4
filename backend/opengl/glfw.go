package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/reorderable"
)

// GLFWInputAdapter feeds GLFW window events into a reorderable.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *reorderable.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  reorderable.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFocusCallback(adapter.focusCallback)

	return adapter
}

// Update samples the pointer and modifiers. Call it after glfw.PollEvents
// and before drawing the frame.
func (a *GLFWInputAdapter) Update() *reorderable.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// EndFrame clears the per-frame edges once the GUI consumed them.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *reorderable.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == reorderable.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Repeats re-trigger the press edge for held editing keys.
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) focusCallback(_ *glfw.Window, focused bool) {
	if focused {
		return
	}
	a.input.SetFocusLost()
	for b := reorderable.MouseButton(0); b < reorderable.MouseButtonCount; b++ {
		a.input.SetMouseButton(b, false)
	}
}

func glfwKey(key glfw.Key) reorderable.Key {
	switch key {
	case glfw.KeyTab:
		return reorderable.KeyTab
	case glfw.KeyLeft:
		return reorderable.KeyLeft
	case glfw.KeyRight:
		return reorderable.KeyRight
	case glfw.KeyUp:
		return reorderable.KeyUp
	case glfw.KeyDown:
		return reorderable.KeyDown
	case glfw.KeyHome:
		return reorderable.KeyHome
	case glfw.KeyEnd:
		return reorderable.KeyEnd
	case glfw.KeyDelete:
		return reorderable.KeyDelete
	case glfw.KeyBackspace:
		return reorderable.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return reorderable.KeyEnter
	case glfw.KeyEscape:
		return reorderable.KeyEscape
	default:
		return reorderable.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) reorderable.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return reorderable.MouseButtonLeft
	case glfw.MouseButtonRight:
		return reorderable.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return reorderable.MouseButtonMiddle
	default:
		return -1
	}
}
