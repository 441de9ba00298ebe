package input

import "sync"

// State is the externally-updated input collector. Event sources push into
// it between frames; the world captures a Snapshot once per step and then
// rotates the edge sets. Safe for a polling goroutine feeding a stepping
// loop.
type State struct {
	mu sync.Mutex

	down     map[string]bool
	pressed  map[string]bool
	released map[string]bool
	taps     map[string]bool // press+release pairs from edge-only sources

	mouseDown     map[int]bool
	mousePressed  map[int]bool
	mouseReleased map[int]bool

	mouseX, mouseY           float64
	mouseDeltaX, mouseDeltaY float64
	scroll                   float64
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{
		down:          make(map[string]bool),
		pressed:       make(map[string]bool),
		released:      make(map[string]bool),
		taps:          make(map[string]bool),
		mouseDown:     make(map[int]bool),
		mousePressed:  make(map[int]bool),
		mouseReleased: make(map[int]bool),
	}
}

// KeyPress records a key transition to held.
func (s *State) KeyPress(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.down[name] {
		s.pressed[name] = true
		s.down[name] = true
	}
}

// KeyRelease records a key transition to released.
func (s *State) KeyRelease(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down[name] {
		s.released[name] = true
		delete(s.down, name)
	}
}

// Tap records a press from a source that cannot report releases (terminal
// key events). The key is held for exactly one captured frame and released
// on rotation.
func (s *State) Tap(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.down[name] {
		s.pressed[name] = true
		s.down[name] = true
	}
	s.taps[name] = true
}

// MousePress records a button transition to held.
func (s *State) MousePress(button int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mouseDown[button] {
		s.mousePressed[button] = true
		s.mouseDown[button] = true
	}
}

// MouseRelease records a button transition to released.
func (s *State) MouseRelease(button int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mouseDown[button] {
		s.mouseReleased[button] = true
		delete(s.mouseDown, button)
	}
}

// MouseMove records an absolute position and accumulates the frame delta.
func (s *State) MouseMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseDeltaX += x - s.mouseX
	s.mouseDeltaY += y - s.mouseY
	s.mouseX, s.mouseY = x, y
}

// MouseScroll accumulates scroll delta for the frame.
func (s *State) MouseScroll(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll += delta
}

// Capture returns an immutable snapshot of the current state and rotates the
// per-frame edge sets: pressed/released clear, tapped keys release, deltas
// reset. Held keys from real press/release sources persist.
func (s *State) Capture() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		down:          copyKeys(s.down),
		pressed:       copyKeys(s.pressed),
		released:      copyKeys(s.released),
		mouseDown:     copyButtons(s.mouseDown),
		mousePressed:  copyButtons(s.mousePressed),
		mouseReleased: copyButtons(s.mouseReleased),
		MouseX:        s.mouseX,
		MouseY:        s.mouseY,
		MouseDeltaX:   s.mouseDeltaX,
		MouseDeltaY:   s.mouseDeltaY,
		Scroll:        s.scroll,
	}

	s.pressed = make(map[string]bool)
	s.released = make(map[string]bool)
	s.mousePressed = make(map[int]bool)
	s.mouseReleased = make(map[int]bool)
	s.mouseDeltaX, s.mouseDeltaY = 0, 0
	s.scroll = 0

	for name := range s.taps {
		if s.down[name] {
			s.released[name] = true
			delete(s.down, name)
		}
	}
	s.taps = make(map[string]bool)

	return snap
}

func copyKeys(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyButtons(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
