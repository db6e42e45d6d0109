//go:build !linux || !cgo || noxkb

package xkb

import "codeberg.org/miketth/hyprinput/pkg/keysym"

const Available = false

type Keymap struct{}

func New(Names) (*Keymap, error) {
	return nil, ErrUnavailable
}

func (k *Keymap) Layout() string {
	return ""
}

func (k *Keymap) Keysyms(uint32) []keysym.Keysym {
	return nil
}

func (k *Keymap) Close() {}
