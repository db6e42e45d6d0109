package headless

import (
	"image"
	"testing"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkspaceStacking(t *testing.T) {
	ws := NewWorkspace()
	bottom := NewWindow(NewSurface("bottom", "a"), image.Pt(100, 100))
	top := NewWindow(NewSurface("top", "b"), image.Pt(100, 100))
	ws.Map(bottom, image.Pt(0, 0))
	ws.Map(top, image.Pt(50, 50))

	w, ok := ws.WindowUnder(input.Point{X: 75, Y: 75})
	require.True(t, ok)
	assert.Same(t, top, w)

	w, ok = ws.WindowUnder(input.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Same(t, bottom, w)

	_, ok = ws.WindowUnder(input.Point{X: 500, Y: 500})
	assert.False(t, ok)
}

func TestMapMovesBetweenWorkspaces(t *testing.T) {
	a, b := NewWorkspace(), NewWorkspace()
	w := NewWindow(NewSurface("w", "c"), image.Pt(10, 10))
	seat := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar()).AddSeat("seat0")

	a.Map(w, image.Pt(0, 0))
	a.Focus(seat, w)
	b.Map(w, image.Pt(5, 5))

	assert.Empty(t, a.Windows())
	assert.Empty(t, a.FocusStack(seat))
	loc, ok := b.WindowLocation(w)
	require.True(t, ok)
	assert.Equal(t, image.Pt(5, 5), loc)
}

func TestCloseUnmaps(t *testing.T) {
	ws := NewWorkspace()
	w := NewWindow(NewSurface("w", "c"), image.Pt(10, 10))
	ws.Map(w, image.Pt(0, 0))

	w.Close()

	assert.True(t, w.Closed())
	assert.Empty(t, ws.Windows())
}

func TestFocusStackOrder(t *testing.T) {
	ws := NewWorkspace()
	seat := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar()).AddSeat("seat0")
	one := NewWindow(NewSurface("one", "c"), image.Pt(10, 10))
	two := NewWindow(NewSurface("two", "c"), image.Pt(10, 10))
	ws.Map(one, image.Pt(0, 0))
	ws.Map(two, image.Pt(20, 0))

	ws.Focus(seat, one)
	ws.Focus(seat, two)
	ws.Focus(seat, one)

	assert.Equal(t, []input.Window{two, one}, ws.FocusStack(seat))
}

func TestPendingMoveIsOneShot(t *testing.T) {
	ws := NewWorkspace()
	w := NewWindow(NewSurface("w", "c"), image.Pt(10, 10))
	ws.Map(w, image.Pt(0, 0))
	ws.SetPendingMove(w, image.Pt(30, 40))

	ws.ApplyPendingMove(NewSurface("other", "c"))
	loc, _ := ws.WindowLocation(w)
	assert.Equal(t, image.Pt(0, 0), loc)

	ws.ApplyPendingMove(w.Toplevel())
	loc, _ = ws.WindowLocation(w)
	assert.Equal(t, image.Pt(30, 40), loc)

	ws.Map(w, image.Pt(1, 1))
	ws.ApplyPendingMove(w.Toplevel())
	loc, _ = ws.WindowLocation(w)
	assert.Equal(t, image.Pt(1, 1), loc)
}

func TestWindowSurfaceUnderTypes(t *testing.T) {
	w := NewWindow(NewSurface("top", "c"), image.Pt(100, 100))
	sub := NewSurface("sub", "c")
	popup := NewSurface("popup", "c")
	w.AddSubsurface(sub, image.Rect(0, 0, 20, 20))
	w.AddPopup(popup, image.Rect(90, 90, 150, 150))

	s, origin, ok := w.SurfaceUnder(input.Point{X: 5, Y: 5}, input.SurfaceAll)
	require.True(t, ok)
	assert.Equal(t, input.Surface(sub), s)
	assert.Equal(t, image.Pt(0, 0), origin)

	s, origin, ok = w.SurfaceUnder(input.Point{X: 120, Y: 120}, input.SurfaceAll)
	require.True(t, ok)
	assert.Equal(t, input.Surface(popup), s)
	assert.Equal(t, image.Pt(90, 90), origin)

	_, _, ok = w.SurfaceUnder(input.Point{X: 120, Y: 120}, input.SurfaceToplevel|input.SurfaceSubsurface)
	assert.False(t, ok)
}

func TestLayerMapLastAddedOnTop(t *testing.T) {
	m := NewLayerMap()
	first := m.Add(input.LayerTop, NewSurface("first", "a"), image.Rect(0, 0, 100, 100), true)
	second := m.Add(input.LayerTop, NewSurface("second", "b"), image.Rect(50, 50, 100, 100), false)

	ls, ok := m.LayerUnder(input.LayerTop, input.Point{X: 60, Y: 60})
	require.True(t, ok)
	assert.Same(t, second, ls)

	ls, ok = m.LayerUnder(input.LayerTop, input.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Same(t, first, ls)

	_, ok = m.LayerUnder(input.LayerOverlay, input.Point{X: 10, Y: 10})
	assert.False(t, ok)

	geo, ok := m.LayerGeometry(second)
	require.True(t, ok)
	assert.Equal(t, image.Rect(50, 50, 100, 100), geo)

	_, ok = m.LayerGeometry(&LayerSurface{})
	assert.False(t, ok)
}

func TestShellMoveFocusWraps(t *testing.T) {
	output := &input.Output{Name: "HEADLESS-1", Geometry: image.Rect(0, 0, 800, 600)}
	shell := NewShell(zap.NewNop().Sugar(), output)
	seat := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar()).AddSeat("seat0")

	ws := shell.Workspace(output, 0)
	one := NewWindow(NewSurface("one", "c"), image.Pt(10, 10))
	two := NewWindow(NewSurface("two", "c"), image.Pt(10, 10))
	ws.Map(one, image.Pt(0, 0))
	ws.Map(two, image.Pt(20, 0))

	shell.MoveFocus(seat, output, input.DirectionRight, nil)
	assert.Same(t, two, lastFocused(ws, seat))

	shell.MoveFocus(seat, output, input.DirectionRight, nil)
	assert.Same(t, one, lastFocused(ws, seat))

	shell.MoveFocus(seat, output, input.DirectionLeft, nil)
	assert.Same(t, two, lastFocused(ws, seat))
}

func TestShellActivateOutOfRange(t *testing.T) {
	output := &input.Output{Name: "HEADLESS-1", Geometry: image.Rect(0, 0, 800, 600)}
	shell := NewShell(zap.NewNop().Sugar(), output)
	seat := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar()).AddSeat("seat0")

	shell.Activate(seat, output, 4)
	assert.Equal(t, 4, shell.ActiveIndex(output))

	shell.Activate(seat, output, 10)
	assert.Equal(t, 4, shell.ActiveIndex(output))

	shell.SetOrientation(seat, output, input.OrientationVertical)
	assert.Equal(t, input.OrientationVertical, shell.Orientation(output))
}

func TestRecorderOfKind(t *testing.T) {
	rec := &Recorder{}
	seat := input.NewDispatcher(input.Options{}, zap.NewNop().Sugar()).AddSeat("seat0")
	s := NewSurface("s", "c")

	rec.KeyboardEnter(seat, s, 1)
	rec.KeyboardKey(seat, s, input.KeyEvent{Keycode: 30, Serial: 2})
	rec.KeyboardLeave(seat, s, 3)

	keys := rec.OfKind("key")
	require.Len(t, keys, 1)
	assert.Equal(t, input.Serial(2), keys[0].Serial)
	assert.Equal(t, "seat0", keys[0].Seat)

	rec.Reset()
	assert.Empty(t, rec.Events)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "stop", axisString(input.ScrollAxis{Stop: true}))
	assert.Equal(t, "-", axisString(input.ScrollAxis{}))
	assert.Equal(t, "3/1", axisString(input.ScrollAxis{Value: 3, HasValue: true, Discrete: 1, HasDiscrete: true}))
	assert.Equal(t, "2.5", axisString(input.ScrollAxis{Value: 2.5, HasValue: true}))
}

func lastFocused(ws *Workspace, seat *input.Seat) input.Window {
	stack := ws.FocusStack(seat)
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}
