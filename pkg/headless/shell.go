package headless

import (
	"codeberg.org/miketth/hyprinput/pkg/input"
	"go.uber.org/zap"
)

const workspacesPerOutput = 10

type outputState struct {
	workspaces  [workspacesPerOutput]*Workspace
	active      int
	layers      *LayerMap
	orientation input.Orientation
}

// Shell is an in-memory window manager: ten workspaces and a layer map per
// output, workspaces share the global coordinate space.
type Shell struct {
	log     *zap.SugaredLogger
	outputs []*input.Output
	state   map[*input.Output]*outputState
}

func NewShell(log *zap.SugaredLogger, outputs ...*input.Output) *Shell {
	s := &Shell{
		log:   log,
		state: make(map[*input.Output]*outputState),
	}
	for _, o := range outputs {
		s.AddOutput(o)
	}
	return s
}

func (s *Shell) AddOutput(o *input.Output) {
	st := &outputState{layers: NewLayerMap()}
	for i := range st.workspaces {
		st.workspaces[i] = NewWorkspace()
	}
	s.outputs = append(s.outputs, o)
	s.state[o] = st
}

func (s *Shell) Outputs() []*input.Output {
	return s.outputs
}

func (s *Shell) Workspace(o *input.Output, idx int) *Workspace {
	return s.state[o].workspaces[idx]
}

func (s *Shell) ActiveIndex(o *input.Output) int {
	return s.state[o].active
}

func (s *Shell) Orientation(o *input.Output) input.Orientation {
	return s.state[o].orientation
}

func (s *Shell) LayerMap(o *input.Output) *LayerMap {
	return s.state[o].layers
}

func (s *Shell) SpaceRelative(p input.Point, _ *input.Output) input.Point {
	return p
}

func (s *Shell) ActiveWorkspace(o *input.Output) input.Workspace {
	return s.activeWorkspace(o)
}

func (s *Shell) activeWorkspace(o *input.Output) *Workspace {
	st := s.state[o]
	return st.workspaces[st.active]
}

func (s *Shell) Layers(o *input.Output) input.LayerMap {
	return s.state[o].layers
}

func (s *Shell) Focus(seat *input.Seat, o *input.Output, surface input.Surface) {
	ws := s.activeWorkspace(o)
	if w, ok := ws.windowFor(surface); ok {
		ws.Focus(seat, w)
	}
}

func (s *Shell) Activate(seat *input.Seat, o *input.Output, idx int) {
	if idx < 0 || idx >= workspacesPerOutput {
		s.log.Warnw("workspace out of range", "output", o.Name, "workspace", idx)
		return
	}
	s.state[o].active = idx
	s.log.Infow("workspace activated", "seat", seat.Name(), "output", o.Name, "workspace", idx)

	if kbd := seat.Keyboard(); kbd != nil {
		var focus input.Surface
		if stack := s.activeWorkspace(o).focus[seat]; len(stack) > 0 {
			focus = stack[len(stack)-1].toplevel
		}
		kbd.SetFocus(focus)
	}
}

func (s *Shell) MoveCurrentWindow(seat *input.Seat, o *input.Output, idx int) {
	if idx < 0 || idx >= workspacesPerOutput || idx == s.state[o].active {
		return
	}
	from := s.activeWorkspace(o)
	stack := from.focus[seat]
	if len(stack) == 0 {
		return
	}
	w := stack[len(stack)-1]
	loc, _ := from.WindowLocation(w)

	to := s.state[o].workspaces[idx]
	to.Map(w, loc)
	to.Focus(seat, w)
	s.log.Infow("window moved", "seat", seat.Name(), "output", o.Name, "workspace", idx, "window", w.toplevel)

	if kbd := seat.Keyboard(); kbd != nil && kbd.Focus() == input.Surface(w.toplevel) {
		kbd.SetFocus(nil)
	}
}

// MoveFocus walks the stacking order: left and up go down the stack, right
// and down go up, wrapping around.
func (s *Shell) MoveFocus(seat *input.Seat, o *input.Output, dir input.Direction, _ []*input.Seat) {
	ws := s.activeWorkspace(o)
	windows := ws.Windows()
	if len(windows) == 0 {
		return
	}

	current := -1
	if stack := ws.focus[seat]; len(stack) > 0 {
		for i, w := range windows {
			if w == stack[len(stack)-1] {
				current = i
			}
		}
	}

	step := 1
	if dir == input.DirectionLeft || dir == input.DirectionUp {
		step = -1
	}
	next := windows[(current+step+len(windows))%len(windows)]
	if current == -1 {
		next = windows[len(windows)-1]
	}

	ws.Focus(seat, next)
	if kbd := seat.Keyboard(); kbd != nil {
		kbd.SetFocus(next.toplevel)
	}
}

func (s *Shell) SetOrientation(seat *input.Seat, o *input.Output, orientation input.Orientation) {
	s.state[o].orientation = orientation
	s.log.Infow("orientation changed", "seat", seat.Name(), "output", o.Name, "orientation", orientation)
}
