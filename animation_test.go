package polysandbox

import (
	"math"
	"testing"
)

func TestHighlightPulsePingPong(t *testing.T) {
	p := newHighlightPulse(0.5, 1, 1)
	if p.Value() != 1 {
		t.Fatalf("initial value = %v, want 1", p.Value())
	}

	p.Update(0.5)
	mid := p.Value()
	if mid <= 0.5 || mid >= 1 {
		t.Errorf("halfway value = %v, want inside (0.5, 1)", mid)
	}

	p.Update(0.5)
	if math.Abs(p.Value()-0.5) > 1e-6 {
		t.Errorf("value at low end = %v, want 0.5", p.Value())
	}
	if !p.rising {
		t.Error("pulse did not reverse at the low end")
	}

	p.Update(1)
	if math.Abs(p.Value()-1) > 1e-6 {
		t.Errorf("value back at high end = %v, want 1", p.Value())
	}
}

func TestHighlightPulseStaysInRange(t *testing.T) {
	p := newHighlightPulse(0.55, 1, 0.6)
	for i := 0; i < 200; i++ {
		v := p.Update(1.0 / 60)
		if v < 0.55-1e-6 || v > 1+1e-6 {
			t.Fatalf("update %d: value %v out of range", i, v)
		}
	}
}

func TestHighlightPulseApply(t *testing.T) {
	p := newHighlightPulse(0.5, 1, 1)
	if got := p.apply(DefaultPalette); got != DefaultPalette.Highlighted {
		t.Errorf("apply at 1 = %+v, want highlight color", got)
	}
	p.Update(1)
	got := p.apply(DefaultPalette)
	want := Color{1, 0.5, 0.5, 1}
	if !approxEqual(got.R, want.R, 1e-6) || !approxEqual(got.G, want.G, 1e-6) || !approxEqual(got.B, want.B, 1e-6) {
		t.Errorf("apply at 0.5 = %+v, want %+v", got, want)
	}
}
