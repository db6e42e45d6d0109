// Package xkb compiles keymaps with libxkbcommon. Builds without cgo, or
// with the noxkb tag, get a stub whose New always fails with
// ErrUnavailable.
package xkb

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("built without libxkbcommon")
	ErrContext     = errors.New("cannot create xkb context")
	ErrCompile     = errors.New("cannot compile keymap")
)

// Names are the RMLVO names a keymap is compiled from. Empty fields take
// the libxkbcommon defaults.
type Names struct {
	Rules   string
	Model   string
	Layout  string
	Variant string
	Options string
}

func (n Names) String() string {
	return fmt.Sprintf("rules=%q model=%q layout=%q variant=%q options=%q", n.Rules, n.Model, n.Layout, n.Variant, n.Options)
}
