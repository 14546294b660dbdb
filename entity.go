package polysandbox

import "fmt"

// Entity pairs a Shape with motion state and the surface primitive that
// currently displays it. The primitive is replaced on every Tick.
type Entity struct {
	ID int

	// VX and VY are the linear velocity in world units per tick; VR is the
	// angular velocity in radians per tick, clockwise-positive like Rotate.
	VX, VY, VR float64

	shape   Shape
	color   ColorTag
	surface Surface
	handle  Handle
}

func newEntity(id int, surface Surface, shape Shape) (*Entity, error) {
	e := &Entity{ID: id, shape: shape, color: ColorNormal, surface: surface}
	h, err := surface.CreateFilledPolygon(shape.Vertices(), e.color)
	if err != nil {
		return nil, fmt.Errorf("entity %d: create primitive: %w", id, err)
	}
	e.handle = h
	return e, nil
}

// Shape returns the entity's shape.
func (e *Entity) Shape() Shape { return e.shape }

// Color returns the current rendering tag.
func (e *Entity) Color() ColorTag { return e.color }

// Handle returns the surface handle of the primitive drawn last tick.
func (e *Entity) Handle() Handle { return e.handle }

// Velocity returns (VX, VY, VR).
func (e *Entity) Velocity() (vx, vy, vr float64) { return e.VX, e.VY, e.VR }

// Stop zeroes linear and angular velocity.
func (e *Entity) Stop() {
	e.VX, e.VY, e.VR = 0, 0, 0
}

// Tick applies the focus color policy, integrates one tick of motion into
// the shape and redraws it. An entity losing focus stops immediately.
func (e *Entity) Tick(isActive bool) error {
	switch {
	case isActive && e.color != ColorHighlighted:
		e.color = ColorHighlighted
	case !isActive && e.color == ColorHighlighted:
		e.color = ColorNormal
		e.Stop()
	}

	if err := e.surface.Delete(e.handle); err != nil {
		return fmt.Errorf("entity %d: delete primitive: %w", e.ID, err)
	}
	e.handle = 0

	e.shape.Translate(e.VX, e.VY, true)
	e.shape.Rotate(e.VR, true)

	h, err := e.surface.CreateFilledPolygon(e.shape.Vertices(), e.color)
	if err != nil {
		return fmt.Errorf("entity %d: create primitive: %w", e.ID, err)
	}
	e.handle = h
	return nil
}
