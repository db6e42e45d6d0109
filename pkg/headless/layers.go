package headless

import (
	"image"

	"codeberg.org/miketth/hyprinput/pkg/input"
)

type LayerSurface struct {
	surface   *Surface
	geometry  image.Rectangle
	focusable bool
}

func (l *LayerSurface) CanReceiveKeyboardFocus() bool {
	return l.focusable
}

func (l *LayerSurface) SurfaceUnder(p input.Point, _ input.SurfaceType) (input.Surface, image.Point, bool) {
	if !p.In(image.Rectangle{Max: l.geometry.Size()}) {
		return nil, image.Point{}, false
	}
	return l.surface, image.Point{}, true
}

// LayerMap holds layer surfaces of one output, in output coordinates.
type LayerMap struct {
	layers map[input.Layer][]*LayerSurface
}

func NewLayerMap() *LayerMap {
	return &LayerMap{layers: make(map[input.Layer][]*LayerSurface)}
}

func (m *LayerMap) Add(layer input.Layer, s *Surface, geometry image.Rectangle, focusable bool) *LayerSurface {
	ls := &LayerSurface{surface: s, geometry: geometry, focusable: focusable}
	m.layers[layer] = append(m.layers[layer], ls)
	return ls
}

func (m *LayerMap) LayerUnder(layer input.Layer, p input.Point) (input.LayerSurface, bool) {
	surfaces := m.layers[layer]
	for i := len(surfaces) - 1; i >= 0; i-- {
		if p.In(surfaces[i].geometry) {
			return surfaces[i], true
		}
	}
	return nil, false
}

func (m *LayerMap) LayerGeometry(s input.LayerSurface) (image.Rectangle, bool) {
	for _, surfaces := range m.layers {
		for _, ls := range surfaces {
			if ls == s {
				return ls.geometry, true
			}
		}
	}
	return image.Rectangle{}, false
}
