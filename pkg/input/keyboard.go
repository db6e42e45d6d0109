package input

import "codeberg.org/miketth/hyprinput/pkg/keysym"

type KeyboardConfig struct {
	Rules       string
	Model       string
	Layout      string
	Variant     string
	Options     string
	RepeatDelay int
	RepeatRate  int
}

func DefaultKeyboardConfig() KeyboardConfig {
	return KeyboardConfig{
		Layout:      "us",
		RepeatDelay: 200,
		RepeatRate:  25,
	}
}

type Keymap interface {
	Keysyms(keycode uint32) []keysym.Keysym
}

// FilterResult tells the keyboard whether to forward a key to the focused
// client. An intercepted key may carry an action.
type FilterResult struct {
	Intercept bool
	Action    *Action
}

type Keyboard struct {
	seat    *Seat
	sink    Sink
	config  KeyboardConfig
	keymap  Keymap
	onFocus func(seat *Seat, focus Surface)

	pressed map[uint32][]keysym.Keysym
	modRefs map[keysym.Modifiers]int
	mods    keysym.Modifiers
	focus   Surface

	// sentMods is the modifier state the focused client last saw.
	sentMods keysym.Modifiers
}

func newKeyboard(seat *Seat, sink Sink, config KeyboardConfig, keymap Keymap, onFocus func(*Seat, Surface)) *Keyboard {
	return &Keyboard{
		seat:    seat,
		sink:    sink,
		config:  config,
		keymap:  keymap,
		onFocus: onFocus,
		pressed: make(map[uint32][]keysym.Keysym),
		modRefs: make(map[keysym.Modifiers]int),
	}
}

func (k *Keyboard) Config() KeyboardConfig {
	return k.config
}

func (k *Keyboard) Modifiers() keysym.Modifiers {
	return k.mods
}

func (k *Keyboard) Focus() Surface {
	return k.focus
}

// Input updates the key and modifier state, runs filter once and forwards
// the key to the focused surface unless the filter intercepts it. It
// returns the action of an intercepting filter. Modifier changes made by
// intercepted keys reach the client with the next forwarded key.
func (k *Keyboard) Input(keycode uint32, state KeyState, serial Serial, time uint32, filter func(keysym.Modifiers, KeyHandle) FilterResult) (Action, bool) {
	handle := KeyHandle{Keycode: keycode, Syms: k.keymap.Keysyms(keycode)}
	k.update(handle, state)

	result := filter(k.mods, handle)
	if result.Intercept {
		if result.Action != nil {
			return *result.Action, true
		}
		return Action{}, false
	}

	if k.focus != nil {
		k.sink.KeyboardKey(k.seat, k.focus, KeyEvent{Keycode: keycode, State: state, Serial: serial, Time: time})
		if k.mods != k.sentMods {
			k.sink.KeyboardModifiers(k.seat, k.focus, k.mods, serial)
			k.sentMods = k.mods
		}
	}
	return Action{}, false
}

func (k *Keyboard) update(handle KeyHandle, state KeyState) {
	switch state {
	case KeyPressed:
		if _, ok := k.pressed[handle.Keycode]; ok {
			return
		}
		k.pressed[handle.Keycode] = handle.Syms
		for _, sym := range handle.Syms {
			if mod := keysym.ModifierFor(sym); mod != 0 {
				k.modRefs[mod]++
			}
		}
	case KeyReleased:
		syms, ok := k.pressed[handle.Keycode]
		if !ok {
			return
		}
		delete(k.pressed, handle.Keycode)
		for _, sym := range syms {
			if mod := keysym.ModifierFor(sym); mod != 0 && k.modRefs[mod] > 0 {
				k.modRefs[mod]--
			}
		}
	}

	var mods keysym.Modifiers
	for mod, n := range k.modRefs {
		if n > 0 {
			mods |= mod
		}
	}
	k.mods = mods
}

// SetFocus moves keyboard focus to s, which may be nil.
func (k *Keyboard) SetFocus(s Surface) {
	if s == k.focus {
		return
	}

	serial := k.seat.serials.Next()
	if k.focus != nil {
		k.sink.KeyboardLeave(k.seat, k.focus, serial)
	}
	k.focus = s
	if s != nil {
		k.sink.KeyboardEnter(k.seat, s, serial)
		k.sink.KeyboardModifiers(k.seat, s, k.mods, serial)
		k.sentMods = k.mods
	}

	if k.onFocus != nil {
		k.onFocus(k.seat, s)
	}
}
