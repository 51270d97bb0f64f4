package reorderable

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyCount
)

// EventKind classifies the dominant input of a frame.
// A host delivers one event per redraw; InputState keeps the edges
// and Event reports which of them a list reacts to first.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventContextClick
	EventKeyDown
	EventFocusLost
)

var eventKindNames = [...]string{
	EventNone:         "none",
	EventPointerDown:  "pointer-down",
	EventPointerUp:    "pointer-up",
	EventPointerMove:  "pointer-move",
	EventContextClick: "context-click",
	EventKeyDown:      "key-down",
	EventFocusLost:    "focus-lost",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// InputState holds input state for the current frame.
// Backends populate it; Reset clears the per-frame edges.
type InputState struct {
	MouseX, MouseY float32

	prevMouseX, prevMouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Host window lost focus this frame; revokes pointer capture.
	focusLost bool

	ModCtrl  bool
	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the end of each frame, after the GUI consumed it.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.focusLost = false
	s.prevMouseX, s.prevMouseY = s.MouseX, s.MouseY
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the pointer position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// SetFocusLost records that the host window lost input focus.
func (s *InputState) SetFocusLost() {
	s.focusLost = true
}

// FocusLost reports whether the host window lost focus this frame.
func (s *InputState) FocusLost() bool {
	return s.focusLost
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// Event reports the dominant event of this frame. Focus loss wins over
// everything, then button edges, key presses and finally motion.
func (s *InputState) Event() EventKind {
	switch {
	case s.focusLost:
		return EventFocusLost
	case s.mouseClicked[MouseButtonRight]:
		return EventContextClick
	case s.mouseClicked[MouseButtonLeft] || s.mouseClicked[MouseButtonMiddle]:
		return EventPointerDown
	case s.mouseUp[MouseButtonLeft] || s.mouseUp[MouseButtonRight] || s.mouseUp[MouseButtonMiddle]:
		return EventPointerUp
	}
	for _, pressed := range s.keyPressed {
		if pressed {
			return EventKeyDown
		}
	}
	if s.MouseX != s.prevMouseX || s.MouseY != s.prevMouseY {
		return EventPointerMove
	}
	return EventNone
}
