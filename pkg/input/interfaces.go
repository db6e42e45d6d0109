package input

import (
	"image"

	"codeberg.org/miketth/hyprinput/pkg/keysym"
)

// Surface is a client surface. Implementations must be comparable, the core
// compares surfaces with ==.
type Surface interface {
	// Client identifies the owning client connection.
	Client() string
}

type Window interface {
	Toplevel() Surface
	// SurfaceUnder returns the surface at p (window-local) and its origin
	// relative to the window.
	SurfaceUnder(p Point, types SurfaceType) (Surface, image.Point, bool)
	Close()
}

type Workspace interface {
	// WindowUnder returns the topmost window at p in stacking order.
	WindowUnder(p Point) (Window, bool)
	WindowLocation(w Window) (image.Point, bool)
	// FocusStack lists windows in focus order, most recent last.
	FocusStack(seat *Seat) []Window
	// ApplyPendingMove repositions the window owning s if it has a move
	// grab in progress.
	ApplyPendingMove(s Surface)
}

type LayerSurface interface {
	CanReceiveKeyboardFocus() bool
	SurfaceUnder(p Point, types SurfaceType) (Surface, image.Point, bool)
}

// LayerMap holds the layer-shell surfaces of one output. Coordinates are
// relative to the output origin.
type LayerMap interface {
	LayerUnder(layer Layer, p Point) (LayerSurface, bool)
	LayerGeometry(s LayerSurface) (image.Rectangle, bool)
}

// Shell is the workspace and window management side of the compositor.
type Shell interface {
	Outputs() []*Output
	// SpaceRelative maps a global position into the coordinate space of
	// the workspace shown on output.
	SpaceRelative(p Point, output *Output) Point
	ActiveWorkspace(output *Output) Workspace
	Layers(output *Output) LayerMap

	Focus(seat *Seat, output *Output, s Surface)
	Activate(seat *Seat, output *Output, workspace int)
	MoveCurrentWindow(seat *Seat, output *Output, workspace int)
	MoveFocus(seat *Seat, output *Output, dir Direction, seats []*Seat)
	SetOrientation(seat *Seat, output *Output, orientation Orientation)
}

// Sink is the client protocol layer. Events are only emitted to a non-nil
// focus.
type Sink interface {
	KeyboardEnter(seat *Seat, s Surface, serial Serial)
	KeyboardLeave(seat *Seat, s Surface, serial Serial)
	KeyboardKey(seat *Seat, s Surface, ev KeyEvent)
	KeyboardModifiers(seat *Seat, s Surface, mods keysym.Modifiers, serial Serial)

	PointerEnter(seat *Seat, s Surface, local Point, serial Serial)
	PointerLeave(seat *Seat, s Surface, serial Serial)
	PointerMotion(seat *Seat, s Surface, ev MotionEvent)
	PointerButton(seat *Seat, s Surface, ev ButtonEvent)
	PointerAxis(seat *Seat, s Surface, frame AxisFrame)
}

// DataDevice follows keyboard focus so clipboard offers go to the focused
// client.
type DataDevice interface {
	SetFocus(seat *Seat, client string)
}

type Spawner interface {
	Spawn(command string, env map[string]string) error
}

// Interceptor gets first refusal on input of the primary seat while the
// debug overlay is active.
type Interceptor interface {
	WantsKeyboard() bool
	WantsPointer() bool

	HandleKeyboard(key KeyHandle, pressed bool, mods keysym.Modifiers)
	HandlePointerButton(button uint32, pressed bool, mods keysym.Modifiers)
	HandlePointerAxis(horizontal, vertical float64)
	HandlePointerMotion(p image.Point)
	HandleDeviceAdded(dev Device)
	HandleDeviceRemoved(dev Device)
}
