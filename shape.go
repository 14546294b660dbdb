package polysandbox

// Shape is a polygon whose vertices are derived from an anchor point, an
// accumulated rotation angle and variant-specific parameters.
//
// Rotation uses a clockwise-positive convention: Rotate(d) subtracts d from
// the stored angle. Keep it that way; the key bindings depend on it.
type Shape interface {
	// Vertices returns the current vertex list. The slice is owned by the
	// shape and is only valid until the next mutation.
	Vertices() []Vec2

	// Rotate subtracts delta from the rotation angle. When recompute is
	// false the vertices are left stale until Recompute is called.
	Rotate(delta float64, recompute bool)

	// Translate moves the anchor by (dx, dy). Without recompute the stored
	// vertices are shifted by the same delta.
	Translate(dx, dy float64, recompute bool)

	// Recompute rederives every vertex from the current parameters.
	Recompute()

	// Anchor returns the reference point the vertices are built around.
	Anchor() Vec2

	// Rotation returns the accumulated rotation angle in radians.
	Rotation() float64
}

// shapeCore holds the state shared by every Shape variant.
type shapeCore struct {
	x, y     float64
	rotAngle float64
	points   []Vec2
}

func (c *shapeCore) Vertices() []Vec2  { return c.points }
func (c *shapeCore) Anchor() Vec2      { return Vec2{c.x, c.y} }
func (c *shapeCore) Rotation() float64 { return c.rotAngle }

// rotateBy applies the clockwise-positive convention. The angle is never
// normalized.
func (c *shapeCore) rotateBy(delta float64) {
	if delta == 0 {
		return
	}
	c.rotAngle -= delta
}

// translateBy moves the anchor and, when shift is set, every stored point.
func (c *shapeCore) translateBy(dx, dy float64, shift bool) {
	if dx == 0 && dy == 0 {
		return
	}
	if shift {
		for i := range c.points {
			c.points[i].X += dx
			c.points[i].Y += dy
		}
	}
	c.x += dx
	c.y += dy
}

func (c *shapeCore) validateAnchor(name string) error {
	if !finite(c.x, c.y) {
		return configErr(name, "anchor", "must be finite")
	}
	if !finite(c.rotAngle) {
		return configErr(name, "rotation", "must be finite")
	}
	return nil
}

func positive(name, param string, v float64) error {
	if !finite(v) {
		return configErr(name, param, "must be finite")
	}
	if v <= 0 {
		return configErr(name, param, "must be positive")
	}
	return nil
}
