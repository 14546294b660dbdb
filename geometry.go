package polysandbox

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// Vec2 is a 2D point or offset in world units. The origin is the top-left
// of the drawing surface with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// PointOnCircle returns a function mapping an angle in radians to the point
// at that angle on the circle with the given center and radius.
func PointOnCircle(center Vec2, radius float64) func(angle float64) Vec2 {
	return func(a float64) Vec2 {
		return Vec2{
			X: center.X + math.Cos(a)*radius,
			Y: center.Y + math.Sin(a)*radius,
		}
	}
}

// PointOnSphere returns a function mapping an azimuth s and polar angle t to
// the point on the sphere with the given center and radius. No shape uses it.
func PointOnSphere(center mgl64.Vec3, radius float64) func(s, t float64) mgl64.Vec3 {
	return func(s, t float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{
			radius * math.Cos(s) * math.Sin(t),
			radius * math.Sin(s) * math.Sin(t),
			radius * math.Cos(t),
		})
	}
}

// Distance returns the Euclidean distance between two n-dimensional points,
// measured over the components both points share.
func Distance(p1, p2 []float64) float64 {
	n := min(len(p1), len(p2))
	if n == 0 {
		return 0
	}
	return floats.Distance(p1[:n], p2[:n], 2)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
