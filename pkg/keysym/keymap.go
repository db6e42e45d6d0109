package keysym

// Keymap translates raw evdev key codes into the keysyms of the base
// (unshifted) level of the evdev "us" layout. It serves builds without
// libxkbcommon, see package xkb for every other layout.
type Keymap struct {
	layout string
	syms   map[uint32]Keysym
}

func NewUSKeymap() *Keymap {
	return &Keymap{layout: "us", syms: usBase}
}

func (k *Keymap) Layout() string {
	return k.layout
}

// Keysyms returns the raw keysyms produced by the physical key.
func (k *Keymap) Keysyms(keycode uint32) []Keysym {
	sym, ok := k.syms[keycode]
	if !ok {
		return nil
	}
	return []Keysym{sym}
}

var usBase = func() map[uint32]Keysym {
	m := map[uint32]Keysym{
		1:   Escape,
		11:  '0',
		12:  Minus,
		13:  Equal,
		14:  BackSpace,
		15:  Tab,
		26:  BracketLeft,
		27:  BracketRight,
		28:  Return,
		29:  ControlL,
		39:  Semicolon,
		40:  Apostrophe,
		41:  Grave,
		42:  ShiftL,
		43:  Backslash,
		51:  Comma,
		52:  Period,
		53:  Slash,
		54:  ShiftR,
		55:  KPMultiply,
		56:  AltL,
		57:  Space,
		58:  CapsLock,
		69:  NumLock,
		70:  ScrollLock,
		87:  F1 + 10,
		88:  F1 + 11,
		97:  ControlR,
		99:  Print,
		100: AltR,
		102: Home,
		103: Up,
		104: PageUp,
		105: Left,
		106: Right,
		107: End,
		108: Down,
		109: PageDown,
		110: Insert,
		111: Delete,
		113: AudioMute,
		114: AudioLowerVolume,
		115: AudioRaiseVolume,
		119: Pause,
		125: SuperL,
		126: SuperR,
		127: Menu,
	}

	for i, c := range "123456789" {
		m[uint32(2+i)] = Keysym(c)
	}
	for i, c := range "qwertyuiop" {
		m[uint32(16+i)] = Keysym(c)
	}
	for i, c := range "asdfghjkl" {
		m[uint32(30+i)] = Keysym(c)
	}
	for i, c := range "zxcvbnm" {
		m[uint32(44+i)] = Keysym(c)
	}
	for i := 0; i < 10; i++ {
		m[uint32(59+i)] = F1 + Keysym(i)
	}

	return m
}()
