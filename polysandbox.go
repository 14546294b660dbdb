package polysandbox

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a backend converts it for drawing.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Lerp blends c toward o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorTag is the two-valued rendering attribute of an entity. Backends map
// it to a concrete Color through a Palette.
type ColorTag uint8

const (
	ColorNormal      ColorTag = iota // unfocused entity
	ColorHighlighted                 // the active entity
)

func (t ColorTag) String() string {
	if t == ColorHighlighted {
		return "highlighted"
	}
	return "normal"
}

// Palette maps color tags to fill colors.
type Palette struct {
	Background  Color
	Normal      Color
	Highlighted Color
}

// DefaultPalette draws black shapes on white with the active shape in red.
var DefaultPalette = Palette{
	Background:  Color{1, 1, 1, 1},
	Normal:      Color{0, 0, 0, 1},
	Highlighted: Color{1, 0, 0, 1},
}

// Fill returns the fill color for a tag.
func (p Palette) Fill(tag ColorTag) Color {
	if tag == ColorHighlighted {
		return p.Highlighted
	}
	return p.Normal
}

// Handle identifies a primitive created on a Surface. Zero is never issued.
type Handle uint64

// Surface is the drawing collaborator the simulation renders into.
type Surface interface {
	// CreateFilledPolygon adds a filled polygon and returns its handle.
	CreateFilledPolygon(points []Vec2, fill ColorTag) (Handle, error)
	// Delete removes a primitive. Unknown handles yield ErrUnknownHandle.
	Delete(h Handle) error
	// Pump flushes pending draws to the visible surface and dispatches any
	// queued input callbacks on the calling goroutine.
	Pump() error
}

// EventSource delivers key and window-close notifications. Callbacks run
// synchronously inside Surface.Pump.
type EventSource interface {
	Bind(t KeyEventType, fn func(KeyEvent))
	OnCloseRequested(fn func())
}

// Backend is a Surface that is also the EventSource for its window.
type Backend interface {
	Surface
	EventSource
}
