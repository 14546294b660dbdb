package polysandbox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightPulse ping-pongs a blend factor between lo and hi so the active
// polygon breathes between the background and highlight colors. It only
// affects drawing; the entity's ColorTag stays two-valued.
type highlightPulse struct {
	tween    *gween.Tween
	lo, hi   float32
	duration float32
	rising   bool
	value    float32
}

func newHighlightPulse(lo, hi, duration float32) *highlightPulse {
	p := &highlightPulse{lo: lo, hi: hi, duration: duration, value: hi}
	p.restart()
	return p
}

func (p *highlightPulse) restart() {
	from, to := p.hi, p.lo
	if p.rising {
		from, to = p.lo, p.hi
	}
	p.tween = gween.New(from, to, p.duration, ease.InOutSine)
}

// Update advances the pulse by dt seconds and returns the blend factor.
func (p *highlightPulse) Update(dt float32) float64 {
	val, finished := p.tween.Update(dt)
	p.value = val
	if finished {
		p.rising = !p.rising
		p.restart()
	}
	return float64(p.value)
}

// Value returns the current blend factor without advancing.
func (p *highlightPulse) Value() float64 {
	return float64(p.value)
}

// apply blends the highlight color toward the background by the pulse.
func (p *highlightPulse) apply(pal Palette) Color {
	return pal.Background.Lerp(pal.Highlighted, p.Value())
}
