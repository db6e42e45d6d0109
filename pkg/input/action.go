package input

import (
	"fmt"
	"strings"

	"codeberg.org/miketth/hyprinput/pkg/keysym"
)

type ActionKind int

const (
	ActionTerminate ActionKind = iota + 1
	ActionToggleDebug
	ActionCloseFocused
	ActionSwitchWorkspace
	ActionMoveWindowToWorkspace
	ActionMoveFocus
	ActionSetOrientation
	ActionSpawn
)

var actionNames = map[ActionKind]string{
	ActionTerminate:             "terminate",
	ActionToggleDebug:           "debug",
	ActionCloseFocused:          "close",
	ActionSwitchWorkspace:       "workspace",
	ActionMoveWindowToWorkspace: "move_to_workspace",
	ActionMoveFocus:             "focus",
	ActionSetOrientation:        "orientation",
	ActionSpawn:                 "spawn",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

func ParseActionKind(name string) (ActionKind, error) {
	for kind, n := range actionNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	return [...]string{"left", "right", "up", "down"}[d]
}

func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Action is a compositor command bound to a key. Only the field matching
// Kind is meaningful.
type Action struct {
	Kind        ActionKind
	Workspace   int
	Direction   Direction
	Orientation Orientation
	Command     string
}

func Terminate() Action       { return Action{Kind: ActionTerminate} }
func ToggleDebug() Action     { return Action{Kind: ActionToggleDebug} }
func CloseFocused() Action    { return Action{Kind: ActionCloseFocused} }
func Spawn(cmd string) Action { return Action{Kind: ActionSpawn, Command: cmd} }

// SwitchWorkspace takes the number key the workspace is bound to, 1-9 and 0
// for the tenth.
func SwitchWorkspace(key int) Action {
	return Action{Kind: ActionSwitchWorkspace, Workspace: key}
}

func MoveWindowToWorkspace(key int) Action {
	return Action{Kind: ActionMoveWindowToWorkspace, Workspace: key}
}

func MoveFocus(dir Direction) Action {
	return Action{Kind: ActionMoveFocus, Direction: dir}
}

func SetOrientation(o Orientation) Action {
	return Action{Kind: ActionSetOrientation, Orientation: o}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSwitchWorkspace, ActionMoveWindowToWorkspace:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Workspace)
	case ActionMoveFocus:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Direction)
	case ActionSetOrientation:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Orientation)
	case ActionSpawn:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Command)
	}
	return a.Kind.String()
}

// Arg renders the action's argument, empty for actions without one.
func (a Action) Arg() string {
	switch a.Kind {
	case ActionSwitchWorkspace, ActionMoveWindowToWorkspace:
		return fmt.Sprint(a.Workspace)
	case ActionMoveFocus:
		return a.Direction.String()
	case ActionSetOrientation:
		return a.Orientation.String()
	case ActionSpawn:
		return a.Command
	}
	return ""
}

// workspaceIndex maps a number key to a zero based workspace index.
func workspaceIndex(key int) int {
	if key == 0 {
		return 9
	}
	return key - 1
}

type Binding struct {
	Modifiers keysym.Modifiers
	Key       keysym.Keysym
	Action    Action
}

// ResolveBinding returns the action of the first binding whose modifiers
// equal mods exactly and whose key is among syms.
func ResolveBinding(mods keysym.Modifiers, key KeyHandle, table []Binding) (Action, bool) {
	for _, b := range table {
		if b.Modifiers == mods && key.Produces(b.Key) {
			return b.Action, true
		}
	}
	return Action{}, false
}
