package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps tcell non-rune keys to engine key names.
var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "escape",
	tcell.KeyTab:    "tab",
}

// TranslateKey resolves a tcell key event to an engine key name. Letters fold
// to lower case, digits map to themselves, space maps to "space".
func TranslateKey(ev *tcell.EventKey) (string, bool) {
	if name, ok := specialKeys[ev.Key()]; ok {
		return name, true
	}
	if ev.Key() != tcell.KeyRune {
		return "", false
	}
	r := ev.Rune()
	switch {
	case r == ' ':
		return "space", true
	case unicode.IsLetter(r):
		return string(unicode.ToLower(r)), true
	case unicode.IsDigit(r):
		return string(r), true
	}
	return "", false
}

// Feed translates a tcell event into state updates. Terminals report key
// presses only, so key events arrive as taps; mouse events carry full
// press/release information.
func Feed(s *State, ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if name, ok := TranslateKey(e); ok {
			s.Tap(name)
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		s.MouseMove(float64(x), float64(y))
		btns := e.Buttons()
		if btns&tcell.Button1 != 0 {
			s.MousePress(0)
		} else {
			s.MouseRelease(0)
		}
		if btns&tcell.Button2 != 0 {
			s.MousePress(1)
		} else {
			s.MouseRelease(1)
		}
		if btns&tcell.WheelUp != 0 {
			s.MouseScroll(1)
		}
		if btns&tcell.WheelDown != 0 {
			s.MouseScroll(-1)
		}
	}
}
