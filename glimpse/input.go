package glimpse

import (
	"golang.org/x/mobile/event/touch"
)

type UpdateInputState func() InputState

type MouseButton uint32

const MouseButtonLeft MouseButton = 0

// mouseTouchSequence is the touch sequence used to emulate touch
// input with a mouse on platforms without a touch screen.
const mouseTouchSequence touch.Sequence = -1

type MouseState struct {
	CursorX, CursorY float32

	// recorded movement since last tick
	DeltaX, DeltaY float32

	Pressed map[MouseButton]bool
}

func (m *MouseState) press(button MouseButton) {
	setValue(&m.Pressed, button, true)
}

func (m *MouseState) release(button MouseButton) {
	setValue(&m.Pressed, button, false)
}

func (m *MouseState) position(x, y float32) {
	m.DeltaX += x - m.CursorX
	m.DeltaY += y - m.CursorY

	m.CursorX = x
	m.CursorY = y
}

func (m *MouseState) nextTick() {
	m.DeltaX = 0
	m.DeltaY = 0
}

type InputState struct {
	Mouse   MouseState
	Touches TouchState

	// EmulateTouch turns a drag with the left mouse button into a touch sequence
	EmulateTouch bool
}

func (s *InputState) mouseButton(button MouseButton, pressed bool) {
	if pressed {
		s.Mouse.press(button)
	} else {
		s.Mouse.release(button)
	}

	if !s.EmulateTouch || button != MouseButtonLeft {
		return
	}

	typ := touch.TypeEnd
	if pressed {
		typ = touch.TypeBegin
	}

	s.Touches.handle(touch.Event{
		X:        s.Mouse.CursorX,
		Y:        s.Mouse.CursorY,
		Sequence: mouseTouchSequence,
		Type:     typ,
	})
}

func (s *InputState) mouseMoved(x, y float32) {
	s.Mouse.position(x, y)

	if s.EmulateTouch && s.Mouse.Pressed[MouseButtonLeft] {
		s.Touches.handle(touch.Event{
			X:        x,
			Y:        y,
			Sequence: mouseTouchSequence,
			Type:     touch.TypeMove,
		})
	}
}

func (s *InputState) nextTick() {
	s.Mouse.nextTick()
	s.Touches.nextTick()
}

// snapshot returns a copy of the state that does not share
// memory with the receiver.
func (s *InputState) snapshot() InputState {
	c := *s
	c.Mouse.Pressed = cloneMap(s.Mouse.Pressed)
	c.Touches = s.Touches.clone()
	return c
}

func setValue[K comparable](m *map[K]bool, key K, value bool) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = value
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}
