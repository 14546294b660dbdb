package polysandbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSingleEntityLoop(t *testing.T, opts ...LoopOption) (*Loop, *Simulation, *recordingSurface, *fakeClock) {
	t.Helper()
	surf := newRecordingSurface()
	sim := NewSimulation(surf, WithLogger(quietLogger()))
	if _, err := sim.Spawn(mustPolygon(100, 300, 60, 0, 5)); err != nil {
		t.Fatal(err)
	}
	clock := newFakeClock()
	opts = append([]LoopOption{WithClock(clock), WithLoopLogger(quietLogger())}, opts...)
	return NewLoop(sim, surf, opts...), sim, surf, clock
}

func TestLoopFiveTicksMovesTen(t *testing.T) {
	loop, sim, surf, _ := newSingleEntityLoop(t, WithMaxTicks(5))
	e, _ := sim.Active()
	e.VX = 2

	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if loop.Ticks() != 5 {
		t.Errorf("Ticks = %d, want 5", loop.Ticks())
	}
	if x := e.Shape().Anchor().X; x != 110 {
		t.Errorf("anchor x = %v, want 110", x)
	}
	if surf.pumps != 5 {
		t.Errorf("pumps = %d, want 5", surf.pumps)
	}
	if loop.State() != StateStopped {
		t.Errorf("State = %v, want stopped", loop.State())
	}
}

func TestLoopFirstSleepIsInterval(t *testing.T) {
	loop, _, _, clock := newSingleEntityLoop(t, WithMaxTicks(1), WithInterval(35*time.Millisecond))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(clock.slept) == 0 || clock.slept[0] != 35*time.Millisecond {
		t.Errorf("slept = %v, want first sleep of 35ms", clock.slept)
	}
	if loop.Interval() != 35*time.Millisecond {
		t.Errorf("Interval = %v", loop.Interval())
	}
}

func TestLoopSleepNeverNegative(t *testing.T) {
	loop, _, _, clock := newSingleEntityLoop(t, WithMaxTicks(20))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	for i, d := range clock.slept {
		if d <= 0 || d > DefaultInterval {
			t.Errorf("sleep %d = %v, want within (0, %v]", i, d, DefaultInterval)
		}
	}
}

// The tick delta is measured wake to wake and includes the previous sleep,
// so ticks alternate between a full sleep and none.
func TestLoopCadenceAlternates(t *testing.T) {
	loop, _, _, clock := newSingleEntityLoop(t, WithMaxTicks(50))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(clock.slept) != 25 {
		t.Errorf("sleeps = %d, want 25", len(clock.slept))
	}
	var total time.Duration
	for _, d := range clock.slept {
		total += d
	}
	if total != 500*time.Millisecond {
		t.Errorf("total sleep over 50 ticks = %v, want 500ms", total)
	}
}

func TestLoopCloseRequestStops(t *testing.T) {
	var surf *recordingSurface
	loop, _, s, _ := newSingleEntityLoop(t, WithTickHook(func(tick int) error {
		if tick == 2 {
			surf.InjectClose()
		}
		return nil
	}))
	surf = s

	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// The close is dispatched by tick 2's pump and observed before tick 3.
	if loop.Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", loop.Ticks())
	}
	if loop.State() != StateStopped {
		t.Errorf("State = %v, want stopped", loop.State())
	}
}

func TestLoopStoppedIsTerminal(t *testing.T) {
	loop, _, _, _ := newSingleEntityLoop(t, WithMaxTicks(2))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if loop.Ticks() != 2 {
		t.Errorf("Ticks = %d after second Run, want 2", loop.Ticks())
	}
}

func TestLoopContextCancel(t *testing.T) {
	loop, _, _, _ := newSingleEntityLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if loop.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", loop.Ticks())
	}
}

func TestLoopStop(t *testing.T) {
	var loop *Loop
	loop, _, _, _ = newSingleEntityLoop(t, WithTickHook(func(tick int) error {
		if tick == 0 {
			loop.Stop()
		}
		return nil
	}))
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if loop.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", loop.Ticks())
	}
}

func TestLoopEmptySimulation(t *testing.T) {
	surf := newRecordingSurface()
	loop := NewLoop(NewSimulation(surf), surf, WithClock(newFakeClock()), WithLoopLogger(quietLogger()))
	if err := loop.Run(context.Background()); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("err = %v, want ErrInvariantViolation", err)
	}
	if loop.State() != StateStopped {
		t.Errorf("State = %v, want stopped", loop.State())
	}
}

func TestLoopFatalErrors(t *testing.T) {
	boom := errors.New("boom")

	loop, _, surf, _ := newSingleEntityLoop(t)
	surf.failPump = boom
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("pump: err = %v, want boom", err)
	}

	loop, _, surf, _ = newSingleEntityLoop(t)
	surf.failCreate = boom
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("step: err = %v, want boom", err)
	}

	loop, _, _, _ = newSingleEntityLoop(t, WithTickHook(func(int) error { return boom }))
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("hook: err = %v, want boom", err)
	}
	if loop.Ticks() != 0 {
		t.Errorf("hook failure still ticked %d times", loop.Ticks())
	}
}

func TestLoopKeysReachSimulation(t *testing.T) {
	var surf *recordingSurface
	loop, sim, s, _ := newSingleEntityLoop(t, WithMaxTicks(4), WithTickHook(func(tick int) error {
		switch tick {
		case 0:
			surf.InjectKeyDown(KeyD)
		case 2:
			surf.InjectKeyUp(KeyD)
		}
		return nil
	}))
	surf = s
	e, _ := sim.Active()

	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// Down dispatched after tick 0, so ticks 1 and 2 move; up after tick 2.
	if x := e.Shape().Anchor().X; x != 104 {
		t.Errorf("anchor x = %v, want 104", x)
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "running" || StateStopped.String() != "stopped" {
		t.Error("unexpected State strings")
	}
}
