package keysym

import (
	"errors"
	"fmt"
	"strings"
)

// Keysym is an X11 keysym value.
type Keysym uint32

const NoSymbol Keysym = 0

const (
	Space        Keysym = 0x0020
	Apostrophe   Keysym = 0x0027
	Comma        Keysym = 0x002c
	Minus        Keysym = 0x002d
	Period       Keysym = 0x002e
	Slash        Keysym = 0x002f
	Semicolon    Keysym = 0x003b
	Equal        Keysym = 0x003d
	BracketLeft  Keysym = 0x005b
	Backslash    Keysym = 0x005c
	BracketRight Keysym = 0x005d
	Grave        Keysym = 0x0060

	BackSpace  Keysym = 0xff08
	Tab        Keysym = 0xff09
	Return     Keysym = 0xff0d
	Pause      Keysym = 0xff13
	ScrollLock Keysym = 0xff14
	Escape     Keysym = 0xff1b
	Home       Keysym = 0xff50
	Left       Keysym = 0xff51
	Up         Keysym = 0xff52
	Right      Keysym = 0xff53
	Down       Keysym = 0xff54
	PageUp     Keysym = 0xff55
	PageDown   Keysym = 0xff56
	End        Keysym = 0xff57
	Print      Keysym = 0xff61
	Insert     Keysym = 0xff63
	Menu       Keysym = 0xff67
	NumLock    Keysym = 0xff7f
	KPMultiply Keysym = 0xffaa
	F1         Keysym = 0xffbe
	F12        Keysym = 0xffc9
	ShiftL     Keysym = 0xffe1
	ShiftR     Keysym = 0xffe2
	ControlL   Keysym = 0xffe3
	ControlR   Keysym = 0xffe4
	CapsLock   Keysym = 0xffe5
	MetaL      Keysym = 0xffe7
	MetaR      Keysym = 0xffe8
	AltL       Keysym = 0xffe9
	AltR       Keysym = 0xffea
	SuperL     Keysym = 0xffeb
	SuperR     Keysym = 0xffec
	Delete     Keysym = 0xffff

	AudioLowerVolume Keysym = 0x1008ff11
	AudioMute        Keysym = 0x1008ff12
	AudioRaiseVolume Keysym = 0x1008ff13
)

var ErrUnknownKeysym = errors.New("unknown keysym")

var names = map[string]Keysym{
	"space":        Space,
	"apostrophe":   Apostrophe,
	"comma":        Comma,
	"minus":        Minus,
	"period":       Period,
	"slash":        Slash,
	"semicolon":    Semicolon,
	"equal":        Equal,
	"bracketleft":  BracketLeft,
	"backslash":    Backslash,
	"bracketright": BracketRight,
	"grave":        Grave,

	"BackSpace":   BackSpace,
	"Tab":         Tab,
	"Return":      Return,
	"Pause":       Pause,
	"Scroll_Lock": ScrollLock,
	"Escape":      Escape,
	"Home":        Home,
	"Left":        Left,
	"Up":          Up,
	"Right":       Right,
	"Down":        Down,
	"Page_Up":     PageUp,
	"Page_Down":   PageDown,
	"End":         End,
	"Print":       Print,
	"Insert":      Insert,
	"Menu":        Menu,
	"Num_Lock":    NumLock,
	"KP_Multiply": KPMultiply,
	"Shift_L":     ShiftL,
	"Shift_R":     ShiftR,
	"Control_L":   ControlL,
	"Control_R":   ControlR,
	"Caps_Lock":   CapsLock,
	"Meta_L":      MetaL,
	"Meta_R":      MetaR,
	"Alt_L":       AltL,
	"Alt_R":       AltR,
	"Super_L":     SuperL,
	"Super_R":     SuperR,
	"Delete":      Delete,

	"XF86AudioLowerVolume": AudioLowerVolume,
	"XF86AudioMute":        AudioMute,
	"XF86AudioRaiseVolume": AudioRaiseVolume,
}

var symNames = func() map[Keysym]string {
	out := make(map[Keysym]string, len(names))
	for name, sym := range names {
		out[sym] = name
	}
	return out
}()

// FromName looks up a keysym by its xkb name. Single letters and digits map
// to their Latin-1 values, lookups fall back to a case-insensitive match.
func FromName(name string) (Keysym, error) {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return Keysym(c), nil
		case c >= 'A' && c <= 'Z':
			return Keysym(c + ('a' - 'A')), nil
		}
	}

	if n, ok := functionKey(name); ok {
		return F1 + Keysym(n-1), nil
	}

	if sym, ok := names[name]; ok {
		return sym, nil
	}
	for n, sym := range names {
		if strings.EqualFold(n, name) {
			return sym, nil
		}
	}

	return NoSymbol, fmt.Errorf("%w: %q", ErrUnknownKeysym, name)
}

func (k Keysym) String() string {
	switch {
	case k >= 'a' && k <= 'z', k >= '0' && k <= '9':
		return string(rune(k))
	case k >= F1 && k <= F12:
		return fmt.Sprintf("F%d", k-F1+1)
	}
	if name, ok := symNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint32(k))
}

func functionKey(name string) (int, bool) {
	if len(name) < 2 || (name[0] != 'F' && name[0] != 'f') {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(name[1:], "%d", &n); err != nil {
		return 0, false
	}
	if fmt.Sprint(n) != name[1:] || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}
