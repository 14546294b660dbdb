package polysandbox

import (
	"fmt"
	"log/slog"
)

// Simulation owns the ordered entity collection and the active index. All
// methods must be called from the loop goroutine.
type Simulation struct {
	surface  Surface
	entities []*Entity
	active   int
	nextID   int

	controls Controls
	log      *slog.Logger
	onFocus  func(from, to int)
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithControls overrides the key magnitudes.
func WithControls(c Controls) Option {
	return func(s *Simulation) { s.controls = c }
}

// WithLogger sets the logger used for focus and spawn messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFocusHook registers fn to run after every focus switch.
func WithFocusHook(fn func(from, to int)) Option {
	return func(s *Simulation) { s.onFocus = fn }
}

// NewSimulation returns an empty simulation drawing into surface. Spawn at
// least one entity before stepping it.
func NewSimulation(surface Surface, opts ...Option) *Simulation {
	s := &Simulation{
		surface:  surface,
		controls: DefaultControls,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("component", "sim")
	return s
}

// Spawn wraps shape in a new entity, draws it and makes it the active one.
func (s *Simulation) Spawn(shape Shape) (*Entity, error) {
	if shape == nil {
		return nil, fmt.Errorf("spawn: %w", configErr("entity", "shape", "must not be nil"))
	}
	e, err := newEntity(s.nextID, s.surface, shape)
	if err != nil {
		return nil, err
	}
	s.nextID++
	s.entities = append(s.entities, e)
	s.active = len(s.entities) - 1
	s.log.Debug("spawned entity", "id", e.ID, "shape", fmt.Sprintf("%T", shape), "active", s.active)
	return e, nil
}

// Len returns the number of entities.
func (s *Simulation) Len() int { return len(s.entities) }

// Entities returns the entities in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Simulation) Entities() []*Entity { return s.entities }

// ActiveIndex returns the index of the active entity.
func (s *Simulation) ActiveIndex() int { return s.active }

// Controls returns the key magnitudes in use.
func (s *Simulation) Controls() Controls { return s.controls }

// Active returns the entity receiving input.
func (s *Simulation) Active() (*Entity, error) {
	if len(s.entities) == 0 {
		return nil, fmt.Errorf("active entity: %w: simulation has no entities", ErrInvariantViolation)
	}
	return s.entities[s.active], nil
}

// Step ticks every entity once in collection order.
func (s *Simulation) Step() error {
	if len(s.entities) == 0 {
		return fmt.Errorf("step: %w: simulation has no entities", ErrInvariantViolation)
	}
	for i, e := range s.entities {
		if err := e.Tick(i == s.active); err != nil {
			return err
		}
	}
	return nil
}

// SwitchFocus advances the active index by one, wrapping around.
func (s *Simulation) SwitchFocus() {
	if len(s.entities) == 0 {
		return
	}
	from := s.active
	s.active = (s.active + 1) % len(s.entities)
	s.log.Debug("focus switched", "from", from, "to", s.active)
	if s.onFocus != nil {
		s.onFocus(from, s.active)
	}
}

// HandleKey applies one key transition to the active entity. Movement and
// rotation keys are level-triggered; Space switches focus on key-down only.
// Autorepeat downs are not filtered here.
func (s *Simulation) HandleKey(ev KeyEvent) {
	e, err := s.Active()
	if err != nil {
		s.log.Warn("key ignored", "key", ev.Code, "err", err)
		return
	}
	press := ev.Type == KeyDown
	level := func(v float64) float64 {
		if press {
			return v
		}
		return 0
	}

	move, rot := s.controls.MoveSpeed, s.controls.RotateSpeed
	switch ev.Code {
	case KeyW:
		e.VY = level(-move)
	case KeyS:
		e.VY = level(move)
	case KeyA:
		e.VX = level(-move)
	case KeyD:
		e.VX = level(move)
	case KeyQ:
		e.VR = level(rot)
	case KeyE:
		e.VR = level(-rot)
	case KeySpace:
		if press {
			s.SwitchFocus()
		}
	}
}

// BindKeys registers HandleKey for both key event types on src.
func (s *Simulation) BindKeys(src EventSource) {
	src.Bind(KeyDown, s.HandleKey)
	src.Bind(KeyUp, s.HandleKey)
}
