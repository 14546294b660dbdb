package polysandbox

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	blipSampleRate = beep.SampleRate(44100)
	blipDuration   = 40 * time.Millisecond
	blipFreq       = 660.0
)

// Blip plays a short sine tone, used as a focus-switch cue.
type Blip struct {
	rate beep.SampleRate
	freq float64
	dur  time.Duration
}

// NewBlip initializes the speaker. Audio is optional; callers should keep
// running without it when this fails.
func NewBlip() (*Blip, error) {
	if err := speaker.Init(blipSampleRate, blipSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Blip{rate: blipSampleRate, freq: blipFreq, dur: blipDuration}, nil
}

// streamer builds one tone of the blip's length.
func (b *Blip) streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(b.rate, b.freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(b.rate.N(b.dur), sine), nil
}

// Play starts the tone without blocking.
func (b *Blip) Play() {
	s, err := b.streamer()
	if err != nil {
		return
	}
	speaker.Play(s)
}

// FocusHook adapts Play to WithFocusHook.
func (b *Blip) FocusHook() func(from, to int) {
	return func(int, int) { b.Play() }
}
