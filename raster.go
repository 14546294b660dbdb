package polysandbox

import (
	"fmt"
	"image"
	"image/draw"
	"slices"

	"golang.org/x/image/vector"
)

// RasterSurface is a software Backend. Pump rasterizes every live polygon
// into an RGBA frame with a nonzero fill rule and then dispatches queued
// input. It needs no window, which makes it the backend for scripted runs
// and the base of the terminal backend.
type RasterSurface struct {
	EventHub

	// Palette maps color tags to fills.
	Palette Palette

	// Scale maps world units to pixels. Zero means 1.
	Scale float64

	// SnapshotDir is where Snapshot writes PNG files.
	SnapshotDir string

	width, height int
	prims         map[Handle]rasterPrim
	next          Handle
	frame         *image.RGBA
	z             *vector.Rasterizer
	frames        int

	snapshotQueue []string
}

type rasterPrim struct {
	points []Vec2
	fill   ColorTag
}

// NewRasterSurface returns a surface rendering into a width x height frame.
func NewRasterSurface(width, height int) *RasterSurface {
	r := &RasterSurface{
		Palette:     DefaultPalette,
		SnapshotDir: "snapshots",
		prims:       make(map[Handle]rasterPrim),
	}
	r.Resize(width, height)
	return r
}

// Resize changes the frame size. The next Pump renders at the new size.
func (r *RasterSurface) Resize(width, height int) {
	r.width, r.height = max(width, 1), max(height, 1)
	r.frame = image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	r.z = vector.NewRasterizer(r.width, r.height)
}

// Size returns the frame size in pixels.
func (r *RasterSurface) Size() (int, int) { return r.width, r.height }

// CreateFilledPolygon stores a copy of points under a new handle.
func (r *RasterSurface) CreateFilledPolygon(points []Vec2, fill ColorTag) (Handle, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("create polygon: %w", configErr("surface", "points", "must not be empty"))
	}
	r.next++
	r.prims[r.next] = rasterPrim{points: slices.Clone(points), fill: fill}
	return r.next, nil
}

// Delete removes a primitive.
func (r *RasterSurface) Delete(h Handle) error {
	if _, ok := r.prims[h]; !ok {
		return fmt.Errorf("delete %d: %w", h, ErrUnknownHandle)
	}
	delete(r.prims, h)
	return nil
}

// Len returns the number of live primitives.
func (r *RasterSurface) Len() int { return len(r.prims) }

// Polygon returns a live primitive's points and fill.
func (r *RasterSurface) Polygon(h Handle) ([]Vec2, ColorTag, bool) {
	p, ok := r.prims[h]
	return p.points, p.fill, ok
}

// Pump renders the frame, writes queued snapshots and dispatches input.
func (r *RasterSurface) Pump() error {
	r.Render()
	if err := r.flushSnapshots(); err != nil {
		return err
	}
	r.Dispatch()
	return nil
}

// Render rasterizes every live polygon in creation order.
func (r *RasterSurface) Render() {
	bg := image.NewUniform(r.Palette.Background.RGBA())
	draw.Draw(r.frame, r.frame.Bounds(), bg, image.Point{}, draw.Src)

	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	handles := make([]Handle, 0, len(r.prims))
	for h := range r.prims {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	for _, h := range handles {
		p := r.prims[h]
		if len(p.points) < 3 {
			continue
		}
		r.z.Reset(r.width, r.height)
		r.z.MoveTo(float32(p.points[0].X*scale), float32(p.points[0].Y*scale))
		for _, pt := range p.points[1:] {
			r.z.LineTo(float32(pt.X*scale), float32(pt.Y*scale))
		}
		r.z.ClosePath()
		fill := image.NewUniform(r.Palette.Fill(p.fill).RGBA())
		r.z.Draw(r.frame, r.frame.Bounds(), fill, image.Point{})
	}
	r.frames++
}

// Frame returns the most recently rendered frame. It is reused by the next
// Render; copy it to keep it.
func (r *RasterSurface) Frame() *image.RGBA { return r.frame }

// Frames returns how many times Render has run.
func (r *RasterSurface) Frames() int { return r.frames }
