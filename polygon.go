package polysandbox

import "math"

// RegularPolygon has n equal sides. Vertex 0 points straight up at zero
// rotation.
type RegularPolygon struct {
	shapeCore
	size float64
	n    int
}

// NewRegularPolygon builds an n-sided polygon centered on (x, y) with
// circumradius size.
func NewRegularPolygon(x, y, size, rotAngle float64, n int) (*RegularPolygon, error) {
	if n < 3 {
		return nil, configErr("polygon", "side count", "must be at least 3")
	}
	p := &RegularPolygon{
		shapeCore: shapeCore{x: x, y: y, rotAngle: rotAngle, points: make([]Vec2, n)},
		size:      size,
		n:         n,
	}
	if err := p.validateAnchor("polygon"); err != nil {
		return nil, err
	}
	if err := positive("polygon", "size", size); err != nil {
		return nil, err
	}
	p.Recompute()
	return p, nil
}

// Size returns the circumradius.
func (p *RegularPolygon) Size() float64 { return p.size }

// Sides returns the side count.
func (p *RegularPolygon) Sides() int { return p.n }

func (p *RegularPolygon) Recompute() {
	polygonPoints(p.points, p.Anchor(), p.size, p.rotAngle, p.n)
}

func (p *RegularPolygon) Rotate(delta float64, recompute bool) {
	p.rotateBy(delta)
	if recompute {
		p.Recompute()
	}
}

func (p *RegularPolygon) Translate(dx, dy float64, recompute bool) {
	p.translateBy(dx, dy, !recompute)
	if recompute {
		p.Recompute()
	}
}

// polygonPoints writes the n vertices of a regular polygon into dst.
func polygonPoints(dst []Vec2, center Vec2, radius, rotAngle float64, n int) {
	circle := PointOnCircle(center, radius)
	for i := 0; i < n; i++ {
		dst[i] = circle(rotAngle - math.Pi/2 + (float64(i)/float64(n))*2*math.Pi)
	}
}
