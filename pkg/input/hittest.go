package input

import (
	"fmt"
	"image"
)

// SurfaceUnder finds the topmost surface at a position on output. global is
// the pointer position, relative the same position in the coordinate space
// of the output's active workspace.
//
// Overlay and top layer surfaces win over windows, windows win over bottom
// and background layer surfaces. No surface at all is not an error.
func SurfaceUnder(global, relative Point, output *Output, layers LayerMap, ws Workspace) (Hit, bool) {
	return resolve(global, relative, output, layers, ws, false)
}

// FocusTarget is SurfaceUnder restricted to what may take keyboard focus.
// A layer surface that refuses focus hides whatever is below it.
func FocusTarget(global, relative Point, output *Output, layers LayerMap, ws Workspace) (Surface, bool) {
	hit, ok := resolve(global, relative, output, layers, ws, true)
	return hit.Surface, ok
}

func resolve(global, relative Point, output *Output, layers LayerMap, ws Workspace, focus bool) (Hit, bool) {
	shift := relative.Sub(global).Round()
	outputLocal := relative.Sub(PointFrom(output.Geometry.Min))

	if layer, ok := layerUnder(layers, outputLocal, LayerOverlay, LayerTop); ok {
		return layerHit(layers, layer, outputLocal, output, shift, focus)
	}

	if ws != nil {
		if window, ok := ws.WindowUnder(relative); ok {
			loc, ok := ws.WindowLocation(window)
			if !ok {
				panic(fmt.Sprintf("window under %v has no location", relative))
			}
			types := SurfaceAll
			if focus {
				types = SurfaceToplevel | SurfaceSubsurface
			}
			s, surfaceLoc, ok := window.SurfaceUnder(relative.Sub(PointFrom(loc)), types)
			if !ok {
				return Hit{}, false
			}
			return Hit{Surface: s, Origin: surfaceLoc.Add(loc).Sub(shift)}, true
		}
	}

	if layer, ok := layerUnder(layers, outputLocal, LayerBottom, LayerBackground); ok {
		return layerHit(layers, layer, outputLocal, output, shift, focus)
	}

	return Hit{}, false
}

func layerUnder(layers LayerMap, p Point, order ...Layer) (LayerSurface, bool) {
	if layers == nil {
		return nil, false
	}
	for _, l := range order {
		if s, ok := layers.LayerUnder(l, p); ok {
			return s, true
		}
	}
	return nil, false
}

func layerHit(layers LayerMap, layer LayerSurface, p Point, output *Output, shift image.Point, focus bool) (Hit, bool) {
	if focus && !layer.CanReceiveKeyboardFocus() {
		return Hit{}, false
	}

	geo, ok := layers.LayerGeometry(layer)
	if !ok {
		panic(fmt.Sprintf("layer surface under %v on output %q is not mapped", p, output.Name))
	}

	s, surfaceLoc, ok := layer.SurfaceUnder(p.Sub(PointFrom(geo.Min)), SurfaceAll)
	if !ok {
		return Hit{}, false
	}
	return Hit{Surface: s, Origin: surfaceLoc.Add(geo.Min).Add(output.Geometry.Min).Sub(shift)}, true
}
