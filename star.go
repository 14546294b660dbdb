package polysandbox

import "math"

// RegularStar interleaves the vertices of two regular n-gons: an inner body
// of radius Size and an outer ring of radius Size*Ratio.
//
// The constructor and Recompute lay the vertices out differently:
//
//	construction: even i = outer (rot),       odd i = inner (rot - π/n)
//	Recompute:    even i = inner (rot - π/n), odd i = outer (rot)
//
// Any call that recomputes switches a freshly built star to the second
// layout. Do not unify the two without updating the star tests.
type RegularStar struct {
	shapeCore
	size  float64
	ratio float64
	n     int

	inner []Vec2
	outer []Vec2
}

// NewRegularStar builds an n-pointed star centered on (x, y).
func NewRegularStar(x, y, size, rotAngle float64, n int, ratio float64) (*RegularStar, error) {
	if n < 2 {
		return nil, configErr("star", "point count", "must be at least 2")
	}
	s := &RegularStar{
		shapeCore: shapeCore{x: x, y: y, rotAngle: rotAngle, points: make([]Vec2, 2*n)},
		size:      size,
		ratio:     ratio,
		n:         n,
		inner:     make([]Vec2, n),
		outer:     make([]Vec2, n),
	}
	if err := s.validateAnchor("star"); err != nil {
		return nil, err
	}
	if err := positive("star", "size", size); err != nil {
		return nil, err
	}
	if err := positive("star", "ratio", ratio); err != nil {
		return nil, err
	}

	step := math.Pi / float64(n)
	polygonPoints(s.outer, s.Anchor(), size*ratio, rotAngle, n)
	polygonPoints(s.inner, s.Anchor(), size, rotAngle-step, n)
	s.interleave(s.outer, s.inner)
	return s, nil
}

// Size returns the body radius.
func (s *RegularStar) Size() float64 { return s.size }

// Ratio returns the leg radius multiplier.
func (s *RegularStar) Ratio() float64 { return s.ratio }

// Points returns the number of star points.
func (s *RegularStar) Points() int { return s.n }

func (s *RegularStar) Recompute() {
	step := math.Pi / float64(s.n)
	polygonPoints(s.inner, s.Anchor(), s.size, s.rotAngle-step, s.n)
	polygonPoints(s.outer, s.Anchor(), s.size*s.ratio, s.rotAngle, s.n)
	s.interleave(s.inner, s.outer)
}

func (s *RegularStar) Rotate(delta float64, recompute bool) {
	s.rotateBy(delta)
	if recompute {
		s.Recompute()
	}
}

func (s *RegularStar) Translate(dx, dy float64, recompute bool) {
	s.translateBy(dx, dy, !recompute)
	if recompute {
		s.Recompute()
	}
}

// interleave writes even[k] to index 2k and odd[k] to index 2k+1.
func (s *RegularStar) interleave(even, odd []Vec2) {
	for i := range s.points {
		if i%2 == 0 {
			s.points[i] = even[i/2]
		} else {
			s.points[i] = odd[(i-1)/2]
		}
	}
}
