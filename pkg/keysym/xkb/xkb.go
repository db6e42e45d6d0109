//go:build linux && cgo && !noxkb

package xkb

/*
#cgo pkg-config: xkbcommon
#include <stdlib.h>
#include <xkbcommon/xkbcommon.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"codeberg.org/miketth/hyprinput/pkg/keysym"
)

const Available = true

// xkb key codes are evdev codes shifted by 8.
const evdevOffset = 8

// Keymap resolves evdev key codes to the base level keysyms of the first
// layout of a compiled keymap.
type Keymap struct {
	ctx    *C.struct_xkb_context
	keymap *C.struct_xkb_keymap
	layout string
}

func New(names Names) (*Keymap, error) {
	ctx := C.xkb_context_new(C.XKB_CONTEXT_NO_FLAGS)
	if ctx == nil {
		return nil, ErrContext
	}

	rules, model, layout, variant, options := cString(names.Rules), cString(names.Model), cString(names.Layout), cString(names.Variant), cString(names.Options)
	defer func() {
		for _, s := range []*C.char{rules, model, layout, variant, options} {
			C.free(unsafe.Pointer(s))
		}
	}()

	cnames := C.struct_xkb_rule_names{
		rules:   rules,
		model:   model,
		layout:  layout,
		variant: variant,
		options: options,
	}
	keymap := C.xkb_keymap_new_from_names(ctx, &cnames, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if keymap == nil {
		C.xkb_context_unref(ctx)
		return nil, fmt.Errorf("%w: %s", ErrCompile, names)
	}

	return &Keymap{ctx: ctx, keymap: keymap, layout: names.Layout}, nil
}

// cString returns nil for s == "" so that libxkbcommon applies its default.
func cString(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func (k *Keymap) Layout() string {
	return k.layout
}

func (k *Keymap) Keysyms(keycode uint32) []keysym.Keysym {
	if k.keymap == nil {
		return nil
	}

	var syms *C.xkb_keysym_t
	n := C.xkb_keymap_key_get_syms_by_level(k.keymap, C.xkb_keycode_t(keycode+evdevOffset), 0, 0, &syms)
	if n <= 0 {
		return nil
	}

	out := make([]keysym.Keysym, 0, n)
	for _, sym := range unsafe.Slice(syms, int(n)) {
		out = append(out, keysym.Keysym(sym))
	}
	return out
}

// Close releases the keymap. Keysyms returns nothing afterwards.
func (k *Keymap) Close() {
	if k.keymap != nil {
		C.xkb_keymap_unref(k.keymap)
		k.keymap = nil
	}
	if k.ctx != nil {
		C.xkb_context_unref(k.ctx)
		k.ctx = nil
	}
}
