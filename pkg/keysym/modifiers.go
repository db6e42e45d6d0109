package keysym

import (
	"fmt"
	"strings"
)

// Modifiers is the set of held modifiers that bindings are matched against.
// Lock state (Caps Lock, Num Lock) is not part of it.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
	ModLogo
)

var modifierNames = map[string]Modifiers{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"mod1":    ModAlt,
	"shift":   ModShift,
	"super":   ModLogo,
	"logo":    ModLogo,
	"mod4":    ModLogo,
}

func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

func (m Modifiers) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModLogo) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// ModifierFor reports which modifier a keysym drives, if any.
func ModifierFor(sym Keysym) Modifiers {
	switch sym {
	case ControlL, ControlR:
		return ModCtrl
	case AltL, AltR, MetaL, MetaR:
		return ModAlt
	case ShiftL, ShiftR:
		return ModShift
	case SuperL, SuperR:
		return ModLogo
	}
	return 0
}

// ParseCombo parses a binding such as "Super+Shift+Return" into its
// modifier set and keysym. The last element is always the key.
func ParseCombo(combo string) (Modifiers, Keysym, error) {
	parts := strings.Split(strings.TrimSpace(combo), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return 0, NoSymbol, fmt.Errorf("parse combo %q: missing key", combo)
	}

	var mods Modifiers
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return 0, NoSymbol, fmt.Errorf("parse combo %q: unknown modifier %q", combo, part)
		}
		mods |= mod
	}

	sym, err := FromName(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return 0, NoSymbol, fmt.Errorf("parse combo %q: %w", combo, err)
	}

	return mods, sym, nil
}
