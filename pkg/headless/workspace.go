package headless

import (
	"image"

	"codeberg.org/miketth/hyprinput/pkg/input"
)

type placed struct {
	window *Window
	loc    image.Point
}

// Workspace stacks windows bottom to top and keeps a focus stack per seat.
type Workspace struct {
	windows []placed
	focus   map[*input.Seat][]*Window
	moves   map[*Window]image.Point
}

func NewWorkspace() *Workspace {
	return &Workspace{
		focus: make(map[*input.Seat][]*Window),
		moves: make(map[*Window]image.Point),
	}
}

// Map places w on top of the stack at loc.
func (ws *Workspace) Map(w *Window, loc image.Point) {
	if w.ws != nil {
		w.ws.Unmap(w)
	}
	w.ws = ws
	ws.windows = append(ws.windows, placed{window: w, loc: loc})
}

func (ws *Workspace) Unmap(w *Window) {
	for i, p := range ws.windows {
		if p.window == w {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			break
		}
	}
	for seat, stack := range ws.focus {
		ws.focus[seat] = without(stack, w)
	}
	delete(ws.moves, w)
	if w.ws == ws {
		w.ws = nil
	}
}

func (ws *Workspace) Windows() []*Window {
	out := make([]*Window, 0, len(ws.windows))
	for _, p := range ws.windows {
		out = append(out, p.window)
	}
	return out
}

func (ws *Workspace) WindowUnder(p input.Point) (input.Window, bool) {
	for i := len(ws.windows) - 1; i >= 0; i-- {
		pl := ws.windows[i]
		if p.In(pl.window.Bounds().Add(pl.loc)) {
			return pl.window, true
		}
	}
	return nil, false
}

func (ws *Workspace) WindowLocation(w input.Window) (image.Point, bool) {
	for _, p := range ws.windows {
		if p.window == w {
			return p.loc, true
		}
	}
	return image.Point{}, false
}

func (ws *Workspace) FocusStack(seat *input.Seat) []input.Window {
	stack := ws.focus[seat]
	out := make([]input.Window, 0, len(stack))
	for _, w := range stack {
		out = append(out, w)
	}
	return out
}

// Focus records w as the most recently focused window of seat.
func (ws *Workspace) Focus(seat *input.Seat, w *Window) {
	ws.focus[seat] = append(without(ws.focus[seat], w), w)
}

func (ws *Workspace) windowFor(s input.Surface) (*Window, bool) {
	for _, p := range ws.windows {
		if p.window.toplevel == s {
			return p.window, true
		}
		for _, c := range p.window.children {
			if c.surface == s {
				return p.window, true
			}
		}
	}
	return nil, false
}

// SetPendingMove makes the next ApplyPendingMove on w's surfaces place it at
// loc, the way an interactive move grab does.
func (ws *Workspace) SetPendingMove(w *Window, loc image.Point) {
	ws.moves[w] = loc
}

func (ws *Workspace) ApplyPendingMove(s input.Surface) {
	w, ok := ws.windowFor(s)
	if !ok {
		return
	}
	loc, ok := ws.moves[w]
	if !ok {
		return
	}
	delete(ws.moves, w)
	for i := range ws.windows {
		if ws.windows[i].window == w {
			ws.windows[i].loc = loc
		}
	}
}

func without(stack []*Window, w *Window) []*Window {
	out := stack[:0]
	for _, s := range stack {
		if s != w {
			out = append(out, s)
		}
	}
	return out
}
