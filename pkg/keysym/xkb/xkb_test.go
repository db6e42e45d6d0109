//go:build linux && cgo && !noxkb

package xkb

import (
	"errors"
	"testing"

	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, names Names) *Keymap {
	t.Helper()
	km, err := New(names)
	if errors.Is(err, ErrContext) || errors.Is(err, ErrCompile) {
		t.Skipf("xkb data not installed: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(km.Close)
	return km
}

func TestUSLayout(t *testing.T) {
	km := compile(t, Names{Rules: "evdev", Layout: "us"})
	assert.Equal(t, "us", km.Layout())

	assert.Equal(t, []keysym.Keysym{'q'}, km.Keysyms(16))
	assert.Equal(t, []keysym.Keysym{'1'}, km.Keysyms(2))
	assert.Equal(t, []keysym.Keysym{'z'}, km.Keysyms(44))
	assert.Equal(t, []keysym.Keysym{keysym.ShiftL}, km.Keysyms(42))
	assert.Equal(t, []keysym.Keysym{keysym.SuperL}, km.Keysyms(125))
}

func TestLayoutChangesKeysyms(t *testing.T) {
	km := compile(t, Names{Rules: "evdev", Layout: "de"})

	assert.Equal(t, []keysym.Keysym{'z'}, km.Keysyms(21))
	assert.Equal(t, []keysym.Keysym{'y'}, km.Keysyms(44))
	assert.Equal(t, []keysym.Keysym{'q'}, km.Keysyms(16))
}

func TestUnknownLayout(t *testing.T) {
	compile(t, Names{Rules: "evdev", Layout: "us"})

	_, err := New(Names{Rules: "evdev", Layout: "no-such-layout"})
	assert.ErrorIs(t, err, ErrCompile)
}

func TestClosedKeymap(t *testing.T) {
	km := compile(t, Names{Rules: "evdev", Layout: "us"})
	km.Close()
	km.Close()

	assert.Nil(t, km.Keysyms(16))
}
