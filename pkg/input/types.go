package input

import (
	"image"
	"math"
)

// Point is a position in logical, sub-pixel coordinates.
type Point struct {
	X, Y float64
}

func PointFrom(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Round() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// In reports whether p lies in r, using the same half-open convention as
// image.Rectangle.
func (p Point) In(r image.Rectangle) bool {
	return float64(r.Min.X) <= p.X && p.X < float64(r.Max.X) &&
		float64(r.Min.Y) <= p.Y && p.Y < float64(r.Max.Y)
}

// Clamp limits p to the closed bounds of r.
func (p Point) Clamp(r image.Rectangle) Point {
	return Point{
		X: math.Min(math.Max(p.X, float64(r.Min.X)), float64(r.Max.X)),
		Y: math.Min(math.Max(p.Y, float64(r.Min.Y)), float64(r.Max.Y)),
	}
}

// Serial stamps emitted protocol events.
type Serial uint32

type Serials struct {
	last uint32
}

func (s *Serials) Next() Serial {
	s.last++
	return Serial(s.last)
}

// Output is a monitor placed in the global coordinate space.
type Output struct {
	Name     string
	Geometry image.Rectangle
}

type Capability int

const (
	CapabilityKeyboard Capability = iota
	CapabilityPointer
	CapabilityTouch
	CapabilityTablet
)

func (c Capability) String() string {
	switch c {
	case CapabilityKeyboard:
		return "keyboard"
	case CapabilityPointer:
		return "pointer"
	case CapabilityTouch:
		return "touch"
	case CapabilityTablet:
		return "tablet"
	}
	return "unknown"
}

type Device struct {
	ID           string
	Name         string
	Capabilities []Capability
}

func (d Device) HasCapability(c Capability) bool {
	for _, has := range d.Capabilities {
		if has == c {
			return true
		}
	}
	return false
}

type KeyState int

const (
	KeyReleased KeyState = iota
	KeyPressed
)

func (s KeyState) String() string {
	if s == KeyPressed {
		return "pressed"
	}
	return "released"
}

type ButtonState int

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "released"
}

type AxisSource int

const (
	AxisSourceWheel AxisSource = iota
	AxisSourceFinger
	AxisSourceContinuous
	AxisSourceWheelTilt
)

func (s AxisSource) String() string {
	switch s {
	case AxisSourceWheel:
		return "wheel"
	case AxisSourceFinger:
		return "finger"
	case AxisSourceContinuous:
		return "continuous"
	case AxisSourceWheelTilt:
		return "wheel-tilt"
	}
	return "unknown"
}

type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

// SurfaceType selects which parts of a surface tree are hit-tested.
type SurfaceType uint8

const (
	SurfaceToplevel SurfaceType = 1 << iota
	SurfaceSubsurface
	SurfacePopup

	SurfaceAll = SurfaceToplevel | SurfaceSubsurface | SurfacePopup
)

type CursorKind int

const (
	CursorDefault CursorKind = iota
	CursorHidden
	CursorSurface
)

type CursorStatus struct {
	Kind    CursorKind
	Surface Surface
	Hotspot image.Point
}
