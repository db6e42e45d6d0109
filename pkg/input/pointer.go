package input

import "image"

// Hit is a surface found under a position, with the surface origin in
// global coordinates.
type Hit struct {
	Surface Surface
	Origin  image.Point
}

type Pointer struct {
	seat     *Seat
	sink     Sink
	onCursor func(CursorStatus)

	location    Point
	focus       Surface
	focusOrigin image.Point

	grabbed bool
	pressed map[uint32]bool
}

func newPointer(seat *Seat, sink Sink, onCursor func(CursorStatus)) *Pointer {
	return &Pointer{
		seat:     seat,
		sink:     sink,
		onCursor: onCursor,
		pressed:  make(map[uint32]bool),
	}
}

func (p *Pointer) Location() Point {
	return p.location
}

func (p *Pointer) Focus() Surface {
	return p.focus
}

// Grabbed reports whether input is redirected away from the surface under
// the pointer: by an explicit grab or while a button is held.
func (p *Pointer) Grabbed() bool {
	return p.grabbed || len(p.pressed) > 0
}

// SetGrab is used by window management to take exclusive pointer input,
// e.g. for interactive move and resize.
func (p *Pointer) SetGrab() {
	p.grabbed = true
}

func (p *Pointer) ReleaseGrab() {
	p.grabbed = false
}

func (p *Pointer) SetCursorImage(status CursorStatus) {
	if p.onCursor != nil {
		p.onCursor(status)
	}
}

// Motion moves the pointer to location. While buttons are held the focus
// stays on the surface the press went to.
func (p *Pointer) Motion(location Point, under *Hit, serial Serial, time uint32) {
	p.location = location

	if len(p.pressed) == 0 {
		var target Surface
		var origin image.Point
		if under != nil {
			target, origin = under.Surface, under.Origin
		}

		if target != p.focus {
			if p.focus != nil {
				p.sink.PointerLeave(p.seat, p.focus, serial)
			}
			p.focus = target
			p.focusOrigin = origin
			if target != nil {
				p.sink.PointerEnter(p.seat, target, location.Sub(PointFrom(origin)), serial)
			}
		} else {
			p.focusOrigin = origin
		}
	}

	if p.focus != nil {
		p.sink.PointerMotion(p.seat, p.focus, MotionEvent{
			Position: location,
			Local:    location.Sub(PointFrom(p.focusOrigin)),
			Serial:   serial,
			Time:     time,
		})
	}
}

func (p *Pointer) Button(button uint32, state ButtonState, serial Serial, time uint32) {
	switch state {
	case ButtonPressed:
		p.pressed[button] = true
	case ButtonReleased:
		delete(p.pressed, button)
	}

	if p.focus != nil {
		p.sink.PointerButton(p.seat, p.focus, ButtonEvent{Button: button, State: state, Serial: serial, Time: time})
	}
}

func (p *Pointer) Axis(frame AxisFrame) {
	if p.focus != nil {
		p.sink.PointerAxis(p.seat, p.focus, frame)
	}
}
