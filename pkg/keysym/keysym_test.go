package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Keysym
	}{
		{"q", 'q'},
		{"Q", 'q'},
		{"1", '1'},
		{"Return", Return},
		{"return", Return},
		{"F1", F1},
		{"F12", F12},
		{"Super_L", SuperL},
		{"XF86AudioMute", AudioMute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromName_Unknown(t *testing.T) {
	_, err := FromName("NotAKey")
	assert.ErrorIs(t, err, ErrUnknownKeysym)

	_, err = FromName("F13")
	assert.ErrorIs(t, err, ErrUnknownKeysym)
}

func TestKeysymString(t *testing.T) {
	assert.Equal(t, "q", Keysym('q').String())
	assert.Equal(t, "F5", (F1 + 4).String())
	assert.Equal(t, "Return", Return.String())
	assert.Equal(t, "0x1234", Keysym(0x1234).String())
}

func TestParseCombo(t *testing.T) {
	mods, sym, err := ParseCombo("Super+Shift+Return")
	require.NoError(t, err)
	assert.Equal(t, ModLogo|ModShift, mods)
	assert.Equal(t, Return, sym)

	mods, sym, err = ParseCombo("Escape")
	require.NoError(t, err)
	assert.Equal(t, Modifiers(0), mods)
	assert.Equal(t, Escape, sym)

	mods, sym, err = ParseCombo("mod4 + 1")
	require.NoError(t, err)
	assert.Equal(t, ModLogo, mods)
	assert.Equal(t, Keysym('1'), sym)
}

func TestParseCombo_Errors(t *testing.T) {
	for _, combo := range []string{"", "Super+", "Hyper+q", "Super+nope"} {
		_, _, err := ParseCombo(combo)
		assert.Error(t, err, combo)
	}
}

func TestModifierFor(t *testing.T) {
	assert.Equal(t, ModLogo, ModifierFor(SuperR))
	assert.Equal(t, ModCtrl, ModifierFor(ControlL))
	assert.Equal(t, ModAlt, ModifierFor(AltR))
	assert.Equal(t, ModShift, ModifierFor(ShiftL))
	assert.Equal(t, Modifiers(0), ModifierFor('q'))
	assert.Equal(t, Modifiers(0), ModifierFor(CapsLock))
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "Ctrl+Super", (ModCtrl | ModLogo).String())
	assert.Equal(t, "", Modifiers(0).String())
}

func TestKeymap(t *testing.T) {
	km := NewUSKeymap()
	assert.Equal(t, "us", km.Layout())

	assert.Equal(t, []Keysym{'q'}, km.Keysyms(16))
	assert.Equal(t, []Keysym{'1'}, km.Keysyms(2))
	assert.Equal(t, []Keysym{'0'}, km.Keysyms(11))
	assert.Equal(t, []Keysym{'a'}, km.Keysyms(30))
	assert.Equal(t, []Keysym{'m'}, km.Keysyms(50))
	assert.Equal(t, []Keysym{SuperL}, km.Keysyms(125))
	assert.Equal(t, []Keysym{F1 + 9}, km.Keysyms(68))
	assert.Equal(t, []Keysym{F12}, km.Keysyms(88))
	assert.Nil(t, km.Keysyms(0xffff))
}
