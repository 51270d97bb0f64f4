package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/reorderable"
)

// InputAdapter turns tcell events into a reorderable.InputState.
// Terminals report key presses but not releases, so keys pressed in one
// frame are released at the end of it.
type InputAdapter struct {
	input        *reorderable.InputState
	cellW, cellH float32
	pressed      []reorderable.Key
}

// NewInputAdapter creates an adapter for cells of cellW x cellH GUI units.
func NewInputAdapter(cellW, cellH float32) *InputAdapter {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &InputAdapter{
		input: reorderable.NewInputState(),
		cellW: cellW,
		cellH: cellH,
	}
}

// Input returns the input state the adapter writes to.
func (a *InputAdapter) Input() *reorderable.InputState {
	return a.input
}

// Feed applies one event. It reports true for Ctrl+C, which hosts treat
// as a quit request.
func (a *InputAdapter) Feed(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.SetMousePos((float32(x)+0.5)*a.cellW, (float32(y)+0.5)*a.cellH)
		buttons := ev.Buttons()
		a.input.SetMouseButton(reorderable.MouseButtonLeft, buttons&tcell.ButtonPrimary != 0)
		a.input.SetMouseButton(reorderable.MouseButtonRight, buttons&tcell.ButtonSecondary != 0)
		a.input.SetMouseButton(reorderable.MouseButtonMiddle, buttons&tcell.ButtonMiddle != 0)
		a.setModifiers(ev.Modifiers())

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		a.setModifiers(ev.Modifiers())
		if ev.Key() == tcell.KeyRune {
			a.input.AddInputChar(ev.Rune())
			return false
		}
		if k := tcellKey(ev.Key()); k != reorderable.KeyNone {
			a.input.SetKey(k, true)
			a.pressed = append(a.pressed, k)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.input.SetFocusLost()
			for b := reorderable.MouseButton(0); b < reorderable.MouseButtonCount; b++ {
				a.input.SetMouseButton(b, false)
			}
		}
	}
	return false
}

func (a *InputAdapter) setModifiers(m tcell.ModMask) {
	a.input.ModCtrl = m&tcell.ModCtrl != 0
	a.input.ModShift = m&tcell.ModShift != 0
}

// EndFrame clears the frame's edges and releases the keys pressed in it.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
	for _, k := range a.pressed {
		a.input.SetKey(k, false)
	}
	a.pressed = a.pressed[:0]
}

// PollEvents forwards screen events to the returned channel until the
// screen is finalized or ctx is done. The channel is closed when forwarding
// stops; events still buffered in it are not lost.
func PollEvents(ctx context.Context, screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

func tcellKey(k tcell.Key) reorderable.Key {
	switch k {
	case tcell.KeyLeft:
		return reorderable.KeyLeft
	case tcell.KeyRight:
		return reorderable.KeyRight
	case tcell.KeyUp:
		return reorderable.KeyUp
	case tcell.KeyDown:
		return reorderable.KeyDown
	case tcell.KeyHome:
		return reorderable.KeyHome
	case tcell.KeyEnd:
		return reorderable.KeyEnd
	case tcell.KeyDelete:
		return reorderable.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return reorderable.KeyBackspace
	case tcell.KeyEnter:
		return reorderable.KeyEnter
	case tcell.KeyEscape:
		return reorderable.KeyEscape
	case tcell.KeyTab:
		return reorderable.KeyTab
	default:
		return reorderable.KeyNone
	}
}
