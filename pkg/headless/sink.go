package headless

import (
	"fmt"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"go.uber.org/zap"
)

// LogSink writes every protocol event to the log instead of a client.
type LogSink struct {
	log *zap.SugaredLogger
}

func NewLogSink(log *zap.SugaredLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) KeyboardEnter(seat *input.Seat, surface input.Surface, serial input.Serial) {
	s.log.Infow("keyboard enter", "seat", seat.Name(), "surface", surface, "serial", serial)
}

func (s *LogSink) KeyboardLeave(seat *input.Seat, surface input.Surface, serial input.Serial) {
	s.log.Infow("keyboard leave", "seat", seat.Name(), "surface", surface, "serial", serial)
}

func (s *LogSink) KeyboardKey(seat *input.Seat, surface input.Surface, ev input.KeyEvent) {
	s.log.Infow("key", "seat", seat.Name(), "surface", surface, "keycode", ev.Keycode, "state", ev.State, "serial", ev.Serial, "time", ev.Time)
}

func (s *LogSink) KeyboardModifiers(seat *input.Seat, surface input.Surface, mods keysym.Modifiers, serial input.Serial) {
	s.log.Infow("modifiers", "seat", seat.Name(), "surface", surface, "modifiers", mods.String(), "serial", serial)
}

func (s *LogSink) PointerEnter(seat *input.Seat, surface input.Surface, local input.Point, serial input.Serial) {
	s.log.Infow("pointer enter", "seat", seat.Name(), "surface", surface, "x", local.X, "y", local.Y, "serial", serial)
}

func (s *LogSink) PointerLeave(seat *input.Seat, surface input.Surface, serial input.Serial) {
	s.log.Infow("pointer leave", "seat", seat.Name(), "surface", surface, "serial", serial)
}

func (s *LogSink) PointerMotion(seat *input.Seat, surface input.Surface, ev input.MotionEvent) {
	s.log.Debugw("motion", "seat", seat.Name(), "surface", surface, "x", ev.Local.X, "y", ev.Local.Y, "serial", ev.Serial, "time", ev.Time)
}

func (s *LogSink) PointerButton(seat *input.Seat, surface input.Surface, ev input.ButtonEvent) {
	s.log.Infow("button", "seat", seat.Name(), "surface", surface, "button", ev.Button, "state", ev.State, "serial", ev.Serial, "time", ev.Time)
}

func (s *LogSink) PointerAxis(seat *input.Seat, surface input.Surface, frame input.AxisFrame) {
	s.log.Infow("axis", "seat", seat.Name(), "surface", surface, "source", frame.Source,
		"horizontal", axisString(frame.Horizontal), "vertical", axisString(frame.Vertical), "time", frame.Time)
}

func axisString(a input.ScrollAxis) string {
	switch {
	case a.Stop:
		return "stop"
	case !a.HasValue:
		return "-"
	case a.HasDiscrete:
		return fmt.Sprintf("%g/%d", a.Value, a.Discrete)
	}
	return fmt.Sprintf("%g", a.Value)
}

// Recorded is one event captured by a Recorder.
type Recorded struct {
	Kind    string
	Seat    string
	Surface input.Surface
	Key     input.KeyEvent
	Mods    keysym.Modifiers
	Local   input.Point
	Motion  input.MotionEvent
	Button  input.ButtonEvent
	Axis    input.AxisFrame
	Serial  input.Serial
}

// Recorder keeps every protocol event in memory.
type Recorder struct {
	Events []Recorded
}

func (r *Recorder) add(ev Recorded) {
	r.Events = append(r.Events, ev)
}

// OfKind returns the recorded events of one kind, in order.
func (r *Recorder) OfKind(kind string) []Recorded {
	var out []Recorded
	for _, ev := range r.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Events = nil
}

func (r *Recorder) KeyboardEnter(seat *input.Seat, s input.Surface, serial input.Serial) {
	r.add(Recorded{Kind: "keyboard_enter", Seat: seat.Name(), Surface: s, Serial: serial})
}

func (r *Recorder) KeyboardLeave(seat *input.Seat, s input.Surface, serial input.Serial) {
	r.add(Recorded{Kind: "keyboard_leave", Seat: seat.Name(), Surface: s, Serial: serial})
}

func (r *Recorder) KeyboardKey(seat *input.Seat, s input.Surface, ev input.KeyEvent) {
	r.add(Recorded{Kind: "key", Seat: seat.Name(), Surface: s, Key: ev, Serial: ev.Serial})
}

func (r *Recorder) KeyboardModifiers(seat *input.Seat, s input.Surface, mods keysym.Modifiers, serial input.Serial) {
	r.add(Recorded{Kind: "modifiers", Seat: seat.Name(), Surface: s, Mods: mods, Serial: serial})
}

func (r *Recorder) PointerEnter(seat *input.Seat, s input.Surface, local input.Point, serial input.Serial) {
	r.add(Recorded{Kind: "pointer_enter", Seat: seat.Name(), Surface: s, Local: local, Serial: serial})
}

func (r *Recorder) PointerLeave(seat *input.Seat, s input.Surface, serial input.Serial) {
	r.add(Recorded{Kind: "pointer_leave", Seat: seat.Name(), Surface: s, Serial: serial})
}

func (r *Recorder) PointerMotion(seat *input.Seat, s input.Surface, ev input.MotionEvent) {
	r.add(Recorded{Kind: "motion", Seat: seat.Name(), Surface: s, Motion: ev, Serial: ev.Serial})
}

func (r *Recorder) PointerButton(seat *input.Seat, s input.Surface, ev input.ButtonEvent) {
	r.add(Recorded{Kind: "button", Seat: seat.Name(), Surface: s, Button: ev, Serial: ev.Serial})
}

func (r *Recorder) PointerAxis(seat *input.Seat, s input.Surface, frame input.AxisFrame) {
	r.add(Recorded{Kind: "axis", Seat: seat.Name(), Surface: s, Axis: frame})
}
