package polysandbox

import (
	"errors"
	"image/color"
	"testing"
)

var square = []Vec2{{10, 10}, {50, 10}, {50, 50}, {10, 50}}

func TestRasterSurfaceFill(t *testing.T) {
	r := NewRasterSurface(64, 64)
	if _, err := r.CreateFilledPolygon(square, ColorHighlighted); err != nil {
		t.Fatal(err)
	}
	if err := r.Pump(); err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{255, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	if got := r.Frame().RGBAAt(30, 30); got != red {
		t.Errorf("inside pixel = %v, want %v", got, red)
	}
	if got := r.Frame().RGBAAt(5, 5); got != white {
		t.Errorf("outside pixel = %v, want %v", got, white)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", r.Frames())
	}
}

func TestRasterSurfaceLaterPrimitivesOnTop(t *testing.T) {
	r := NewRasterSurface(64, 64)
	r.CreateFilledPolygon(square, ColorHighlighted)
	r.CreateFilledPolygon(square, ColorNormal)
	r.Render()
	if got := r.Frame().RGBAAt(30, 30); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel = %v, want black from the newer primitive", got)
	}
}

func TestRasterSurfaceStarNonZeroFill(t *testing.T) {
	r := NewRasterSurface(200, 200)
	star := mustStar(100, 100, 20, 0, 5, 2.3)
	if _, err := r.CreateFilledPolygon(star.Vertices(), ColorNormal); err != nil {
		t.Fatal(err)
	}
	r.Render()
	if got := r.Frame().RGBAAt(100, 100); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("star center = %v, want filled", got)
	}
}

func TestRasterSurfaceScale(t *testing.T) {
	r := NewRasterSurface(32, 32)
	r.Scale = 0.5
	r.CreateFilledPolygon(square, ColorNormal)
	r.Render()
	if got := r.Frame().RGBAAt(15, 15); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("scaled pixel = %v, want filled", got)
	}
	if got := r.Frame().RGBAAt(28, 28); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside scaled square = %v, want background", got)
	}
}

func TestRasterSurfaceHandles(t *testing.T) {
	r := NewRasterSurface(10, 10)
	h1, _ := r.CreateFilledPolygon(square, ColorNormal)
	h2, _ := r.CreateFilledPolygon(square, ColorHighlighted)
	if h1 == 0 || h1 == h2 {
		t.Fatalf("handles %d, %d must be distinct and nonzero", h1, h2)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}

	pts, fill, ok := r.Polygon(h2)
	if !ok || fill != ColorHighlighted || len(pts) != 4 {
		t.Errorf("Polygon(h2) = %v, %v, %v", pts, fill, ok)
	}

	if err := r.Delete(h1); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(h1); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("second delete err = %v, want ErrUnknownHandle", err)
	}
	if _, _, ok := r.Polygon(h1); ok {
		t.Error("deleted polygon still present")
	}
}

func TestRasterSurfaceCopiesPoints(t *testing.T) {
	r := NewRasterSurface(10, 10)
	pts := []Vec2{{0, 0}, {1, 0}, {1, 1}}
	h, _ := r.CreateFilledPolygon(pts, ColorNormal)
	pts[0] = Vec2{99, 99}
	got, _, _ := r.Polygon(h)
	if got[0] != (Vec2{0, 0}) {
		t.Error("surface aliases caller's slice")
	}
}

func TestRasterSurfaceEmptyPolygon(t *testing.T) {
	r := NewRasterSurface(10, 10)
	if _, err := r.CreateFilledPolygon(nil, ColorNormal); !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestRasterSurfaceResize(t *testing.T) {
	r := NewRasterSurface(0, -4)
	if w, h := r.Size(); w != 1 || h != 1 {
		t.Errorf("Size = %d x %d, want 1 x 1", w, h)
	}
	r.Resize(40, 20)
	if b := r.Frame().Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("frame bounds = %v", b)
	}
}

func TestRasterSurfaceDrivesSimulation(t *testing.T) {
	r := NewRasterSurface(800, 600)
	r.SnapshotDir = t.TempDir()
	sim := NewSimulation(r, WithLogger(quietLogger()))
	if err := DefaultSceneConfig().Populate(sim); err != nil {
		t.Fatal(err)
	}
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 3 {
		t.Errorf("live primitives = %d, want 3", r.Len())
	}
	if err := r.Pump(); err != nil {
		t.Fatal(err)
	}
	// The polygon at (100, 300) is inactive and drawn black.
	if got := r.Frame().RGBAAt(100, 300); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("polygon center = %v, want black", got)
	}
}
