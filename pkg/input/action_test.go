package input

import (
	"testing"

	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBindingExactModifiers(t *testing.T) {
	table := []Binding{
		{Modifiers: keysym.ModLogo, Key: '1', Action: SwitchWorkspace(1)},
		{Modifiers: keysym.ModLogo | keysym.ModShift, Key: '1', Action: MoveWindowToWorkspace(1)},
	}
	one := KeyHandle{Keycode: 2, Syms: []keysym.Keysym{'1'}}

	action, ok := ResolveBinding(keysym.ModLogo, one, table)
	require.True(t, ok)
	assert.Equal(t, SwitchWorkspace(1), action)

	action, ok = ResolveBinding(keysym.ModLogo|keysym.ModShift, one, table)
	require.True(t, ok)
	assert.Equal(t, MoveWindowToWorkspace(1), action)

	_, ok = ResolveBinding(keysym.ModLogo|keysym.ModCtrl, one, table)
	assert.False(t, ok)

	_, ok = ResolveBinding(0, one, table)
	assert.False(t, ok)
}

func TestResolveBindingFirstMatchWins(t *testing.T) {
	table := []Binding{
		{Modifiers: keysym.ModLogo, Key: keysym.Return, Action: Spawn("foot")},
		{Modifiers: keysym.ModLogo, Key: keysym.Return, Action: Spawn("alacritty")},
	}

	action, ok := ResolveBinding(keysym.ModLogo, KeyHandle{Keycode: 28, Syms: []keysym.Keysym{keysym.Return}}, table)
	require.True(t, ok)
	assert.Equal(t, "foot", action.Command)
}

func TestWorkspaceIndex(t *testing.T) {
	assert.Equal(t, 9, workspaceIndex(0))
	assert.Equal(t, 0, workspaceIndex(1))
	assert.Equal(t, 8, workspaceIndex(9))
}

func TestParseActionKind(t *testing.T) {
	for kind, name := range actionNames {
		parsed, err := ParseActionKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseActionKind("reboot")
	assert.Error(t, err)
}

func TestActionArg(t *testing.T) {
	assert.Equal(t, "0", SwitchWorkspace(0).Arg())
	assert.Equal(t, "up", MoveFocus(DirectionUp).Arg())
	assert.Equal(t, "vertical", SetOrientation(OrientationVertical).Arg())
	assert.Equal(t, "foot", Spawn("foot").Arg())
	assert.Empty(t, CloseFocused().Arg())
	assert.Equal(t, `spawn("foot")`, Spawn("foot").String())
}
