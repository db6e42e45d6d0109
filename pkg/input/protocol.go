package input

import "codeberg.org/miketth/hyprinput/pkg/keysym"

type KeyEvent struct {
	Keycode uint32
	State   KeyState
	Serial  Serial
	Time    uint32
}

type MotionEvent struct {
	Position Point
	Local    Point
	Serial   Serial
	Time     uint32
}

type ButtonEvent struct {
	Button uint32
	State  ButtonState
	Serial Serial
	Time   uint32
}

type ScrollAxis struct {
	Value       float64
	HasValue    bool
	Discrete    int32
	HasDiscrete bool
	Stop        bool
}

// AxisFrame groups the scroll information of one axis event.
type AxisFrame struct {
	Source     AxisSource
	Time       uint32
	Horizontal ScrollAxis
	Vertical   ScrollAxis
}

// KeyHandle is a key event as seen by filters: the raw code and the keysyms
// the physical key produces in the current layout.
type KeyHandle struct {
	Keycode uint32
	Syms    []keysym.Keysym
}

func (h KeyHandle) Produces(sym keysym.Keysym) bool {
	for _, s := range h.Syms {
		if s == sym {
			return true
		}
	}
	return false
}
