package input

import "fmt"

// Seat is one user's set of input devices together with the per-seat state
// the dispatcher keeps for it.
type Seat struct {
	name    string
	serials *Serials

	devices    *Devices
	suppressed *SuppressedKeys
	output     *Output
	cursor     CursorStatus

	keyboard *Keyboard
	pointer  *Pointer
}

func newSeat(name string, serials *Serials) *Seat {
	return &Seat{
		name:       name,
		serials:    serials,
		devices:    NewDevices(),
		suppressed: &SuppressedKeys{},
	}
}

func (s *Seat) Name() string {
	return s.name
}

func (s *Seat) Devices() *Devices {
	return s.devices
}

func (s *Seat) SuppressedKeys() *SuppressedKeys {
	return s.suppressed
}

// Keyboard returns the keyboard capability, nil when no attached device
// provides one.
func (s *Seat) Keyboard() *Keyboard {
	return s.keyboard
}

// Pointer returns the pointer capability, nil when no attached device
// provides one.
func (s *Seat) Pointer() *Pointer {
	return s.pointer
}

func (s *Seat) CursorStatus() CursorStatus {
	return s.cursor
}

// ActiveOutput returns the output the seat is on. A seat that was never
// placed, or whose output is gone, falls back to the first output. It
// returns nil only when there are no outputs at all.
func (s *Seat) ActiveOutput(outputs []*Output) *Output {
	for _, o := range outputs {
		if o == s.output {
			return o
		}
	}
	if len(outputs) == 0 {
		return nil
	}
	return outputs[0]
}

func (s *Seat) SetActiveOutput(o *Output) {
	s.output = o
}

// pinOutput places the seat on o unless it already has an output.
func (s *Seat) pinOutput(o *Output) {
	if s.output == nil {
		s.output = o
	}
}

func (s *Seat) mustKeyboard() *Keyboard {
	if s.keyboard == nil {
		panic(fmt.Sprintf("seat %q: keyboard capability active without keyboard object", s.name))
	}
	return s.keyboard
}

func (s *Seat) mustPointer() *Pointer {
	if s.pointer == nil {
		panic(fmt.Sprintf("seat %q: pointer capability active without pointer object", s.name))
	}
	return s.pointer
}
