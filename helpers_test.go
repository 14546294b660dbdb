package polysandbox

import (
	"math"
	"time"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// recordingSurface is an in-memory Backend that counts calls and can be
// told to fail.
type recordingSurface struct {
	EventHub

	next  Handle
	live  map[Handle][]Vec2
	fills map[Handle]ColorTag

	creates, deletes, pumps int

	failCreate, failDelete, failPump error
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		live:  make(map[Handle][]Vec2),
		fills: make(map[Handle]ColorTag),
	}
}

func (s *recordingSurface) CreateFilledPolygon(points []Vec2, fill ColorTag) (Handle, error) {
	if s.failCreate != nil {
		return 0, s.failCreate
	}
	s.creates++
	s.next++
	s.live[s.next] = append([]Vec2(nil), points...)
	s.fills[s.next] = fill
	return s.next, nil
}

func (s *recordingSurface) Delete(h Handle) error {
	if s.failDelete != nil {
		return s.failDelete
	}
	if _, ok := s.live[h]; !ok {
		return ErrUnknownHandle
	}
	s.deletes++
	delete(s.live, h)
	delete(s.fills, h)
	return nil
}

func (s *recordingSurface) Pump() error {
	if s.failPump != nil {
		return s.failPump
	}
	s.pumps++
	s.Dispatch()
	return nil
}

// fakeClock advances only when slept on.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func mustPolygon(x, y, size, rot float64, n int) *RegularPolygon {
	p, err := NewRegularPolygon(x, y, size, rot, n)
	if err != nil {
		panic(err)
	}
	return p
}

func mustStar(x, y, size, rot float64, n int, ratio float64) *RegularStar {
	s, err := NewRegularStar(x, y, size, rot, n, ratio)
	if err != nil {
		panic(err)
	}
	return s
}

func mustTriangle(x, y, inner, side, rot float64) *IsoscelesTriangle {
	t, err := NewIsoscelesTriangle(x, y, inner, side, rot)
	if err != nil {
		panic(err)
	}
	return t
}
