package headless

import (
	"image"

	"codeberg.org/miketth/hyprinput/pkg/input"
)

type Surface struct {
	Name     string
	ClientID string
}

func NewSurface(name, client string) *Surface {
	return &Surface{Name: name, ClientID: client}
}

func (s *Surface) Client() string {
	return s.ClientID
}

func (s *Surface) String() string {
	return s.Name
}

type child struct {
	surface *Surface
	bounds  image.Rectangle
	kind    input.SurfaceType
}

// Window is a toplevel with optional subsurfaces and popups, all placed
// relative to the window origin.
type Window struct {
	toplevel *Surface
	size     image.Point
	children []child
	closed   bool
	ws       *Workspace
}

func NewWindow(toplevel *Surface, size image.Point) *Window {
	return &Window{toplevel: toplevel, size: size}
}

func (w *Window) AddSubsurface(s *Surface, bounds image.Rectangle) {
	w.children = append(w.children, child{surface: s, bounds: bounds, kind: input.SurfaceSubsurface})
}

func (w *Window) AddPopup(s *Surface, bounds image.Rectangle) {
	w.children = append(w.children, child{surface: s, bounds: bounds, kind: input.SurfacePopup})
}

func (w *Window) Toplevel() input.Surface {
	return w.toplevel
}

func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) Bounds() image.Rectangle {
	return image.Rectangle{Max: w.size}
}

func (w *Window) SurfaceUnder(p input.Point, types input.SurfaceType) (input.Surface, image.Point, bool) {
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if types&c.kind != 0 && p.In(c.bounds) {
			return c.surface, c.bounds.Min, true
		}
	}
	if types&input.SurfaceToplevel != 0 && p.In(w.Bounds()) {
		return w.toplevel, image.Point{}, true
	}
	return nil, image.Point{}, false
}

func (w *Window) Close() {
	w.closed = true
	if w.ws != nil {
		w.ws.Unmap(w)
	}
}
