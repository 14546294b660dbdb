package polysandbox

import "math"

// IsoscelesTriangle is anchored at its apex. The two base points sit on a
// circle of radius SideLength around the apex, InnerAngle apart.
type IsoscelesTriangle struct {
	shapeCore
	innerAngle float64
	sideLength float64
}

// NewIsoscelesTriangle builds a triangle with its apex at (x, y).
func NewIsoscelesTriangle(x, y, innerAngle, sideLength, rotAngle float64) (*IsoscelesTriangle, error) {
	t := &IsoscelesTriangle{
		shapeCore:  shapeCore{x: x, y: y, rotAngle: rotAngle, points: make([]Vec2, 3)},
		innerAngle: innerAngle,
		sideLength: sideLength,
	}
	if err := t.validateAnchor("triangle"); err != nil {
		return nil, err
	}
	if !finite(innerAngle) {
		return nil, configErr("triangle", "inner angle", "must be finite")
	}
	if err := positive("triangle", "side length", sideLength); err != nil {
		return nil, err
	}
	t.Recompute()
	return t, nil
}

// InnerAngle returns the apex angle in radians.
func (t *IsoscelesTriangle) InnerAngle() float64 { return t.innerAngle }

// SideLength returns the length of the two equal sides.
func (t *IsoscelesTriangle) SideLength() float64 { return t.sideLength }

func (t *IsoscelesTriangle) Recompute() {
	circle := PointOnCircle(t.Anchor(), t.sideLength)
	t.points[0] = t.Anchor()
	t.points[1] = circle(t.rotAngle + math.Pi/2 - t.innerAngle/2)
	t.points[2] = circle(t.rotAngle + math.Pi/2 + t.innerAngle/2)
}

func (t *IsoscelesTriangle) Rotate(delta float64, recompute bool) {
	t.rotateBy(delta)
	if recompute {
		t.Recompute()
	}
}

func (t *IsoscelesTriangle) Translate(dx, dy float64, recompute bool) {
	t.translateBy(dx, dy, !recompute)
	if recompute {
		t.Recompute()
	}
}
