package input

// Snapshot is an immutable per-frame view of input state. The runner hands it
// to scripts read-only; the core never mutates it after capture.
type Snapshot struct {
	down     map[string]bool
	pressed  map[string]bool
	released map[string]bool

	mouseDown     map[int]bool
	mousePressed  map[int]bool
	mouseReleased map[int]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	Scroll                   float64
}

// Key reports whether the named key is currently held.
func (s *Snapshot) Key(name string) bool {
	return s.down[name]
}

// KeyDown reports whether the named key went down this frame.
func (s *Snapshot) KeyDown(name string) bool {
	return s.pressed[name]
}

// KeyUp reports whether the named key was released this frame.
func (s *Snapshot) KeyUp(name string) bool {
	return s.released[name]
}

// MouseButton reports whether the numbered button is currently held.
func (s *Snapshot) MouseButton(button int) bool {
	return s.mouseDown[button]
}

// MouseButtonDown reports whether the button went down this frame.
func (s *Snapshot) MouseButtonDown(button int) bool {
	return s.mousePressed[button]
}

// MouseButtonUp reports whether the button was released this frame.
func (s *Snapshot) MouseButtonUp(button int) bool {
	return s.mouseReleased[button]
}

// Axis returns the value of a named axis in [-1,1]. "Horizontal" maps
// a/d and left/right, "Vertical" maps w/s and up/down. Unknown axes are 0.
func (s *Snapshot) Axis(name string) float64 {
	switch name {
	case "Horizontal":
		v := 0.0
		if s.Key("d") || s.Key("right") {
			v += 1
		}
		if s.Key("a") || s.Key("left") {
			v -= 1
		}
		return v
	case "Vertical":
		v := 0.0
		if s.Key("w") || s.Key("up") {
			v += 1
		}
		if s.Key("s") || s.Key("down") {
			v -= 1
		}
		return v
	}
	return 0
}
