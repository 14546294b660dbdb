package polysandbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultInterval is the nominal tick length (50 Hz).
const DefaultInterval = 20 * time.Millisecond

// State is the loop's lifecycle state.
type State uint8

const (
	StateRunning State = iota // ticking
	StateStopped              // terminal
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Clock abstracts wall time so the loop can be driven by tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Loop drives a Simulation at a fixed cadence and pumps its backend once per
// tick. Velocities are applied per tick; measured frame time only shortens
// the next sleep and never scales motion.
type Loop struct {
	sim      *Simulation
	backend  Backend
	clock    Clock
	interval time.Duration
	maxTicks int
	hook     func(tick int) error
	log      *slog.Logger

	state   State
	stopReq bool
	stats   loopStats
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithInterval sets the target tick interval.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithMaxTicks stops the loop after n ticks. Zero means unlimited.
func WithMaxTicks(n int) LoopOption {
	return func(l *Loop) { l.maxTicks = n }
}

// WithTickHook runs fn before every tick with the zero-based tick number.
// An error from fn stops the loop and is returned from Run.
func WithTickHook(fn func(tick int) error) LoopOption {
	return func(l *Loop) { l.hook = fn }
}

// WithLoopLogger sets the logger for lifecycle and debug stats.
func WithLoopLogger(lg *slog.Logger) LoopOption {
	return func(l *Loop) {
		if lg != nil {
			l.log = lg
		}
	}
}

// NewLoop binds sim's key handling and a close handler to backend.
func NewLoop(sim *Simulation, backend Backend, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:      sim,
		backend:  backend,
		clock:    realClock{},
		interval: DefaultInterval,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(l)
	}
	l.log = l.log.With("component", "loop")
	sim.BindKeys(backend)
	backend.OnCloseRequested(l.Stop)
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() int { return l.stats.ticks }

// Interval returns the target tick interval.
func (l *Loop) Interval() time.Duration { return l.interval }

// Stop requests termination. The loop observes it at the top of the next
// iteration; an in-progress sleep is not interrupted.
func (l *Loop) Stop() {
	l.stopReq = true
}

// Run ticks until a close request, Stop, ctx cancellation or the tick limit.
// Step and pump failures are fatal and returned.
func (l *Loop) Run(ctx context.Context) error {
	if l.state == StateStopped {
		return nil
	}
	if _, err := l.sim.Active(); err != nil {
		l.state = StateStopped
		return err
	}
	l.log.Info("loop started", "interval", l.interval, "entities", l.sim.Len())
	defer func() {
		l.state = StateStopped
		l.log.Info("loop stopped", "ticks", l.stats.ticks, "overruns", l.stats.overruns)
	}()

	last := l.clock.Now()
	var dt time.Duration
	for {
		if l.stopReq || ctx.Err() != nil {
			return nil
		}
		if l.maxTicks > 0 && l.stats.ticks >= l.maxTicks {
			return nil
		}

		if wait := l.interval - dt; wait > 0 {
			l.clock.Sleep(wait)
		}
		now := l.clock.Now()
		dt, last = now.Sub(last), now

		if l.hook != nil {
			if err := l.hook(l.stats.ticks); err != nil {
				return fmt.Errorf("tick %d: hook: %w", l.stats.ticks, err)
			}
		}
		if err := l.sim.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", l.stats.ticks, err)
		}
		if err := l.backend.Pump(); err != nil {
			return fmt.Errorf("tick %d: pump: %w", l.stats.ticks, err)
		}
		l.record(dt)
	}
}
