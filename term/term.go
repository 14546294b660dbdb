// Package term renders a polysandbox simulation into a terminal with tcell.
//
// Polygons are rasterized at two pixels per cell (upper and lower half
// blocks). Terminals report key presses and autorepeat but never releases,
// so the backend synthesizes a key-up once a held key has gone quiet for
// ReleaseAfter.
package term

import (
	"image/color"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/polysandbox"
)

// DefaultReleaseAfter must exceed the terminal's autorepeat delay, otherwise
// a held key flickers between down and up before repeats start.
const DefaultReleaseAfter = 600 * time.Millisecond

// Backend is a polysandbox.Backend drawing into a tcell screen.
type Backend struct {
	*polysandbox.RasterSurface

	// ReleaseAfter is how long a key may stay silent before it counts as
	// released.
	ReleaseAfter time.Duration

	screen        tcell.Screen
	worldW        float64
	worldH        float64
	events        chan tcell.Event
	done          chan struct{}
	polled        chan struct{}
	closeOnce     sync.Once
	filter        *polysandbox.RepeatFilter
	lastSeen      map[polysandbox.KeyCode]time.Time
	now           func() time.Time
	closeReported bool
	log           *slog.Logger
}

// New wraps an initialized screen. worldW and worldH are the world size the
// scene was authored for; it is scaled to fit the terminal.
func New(screen tcell.Screen, worldW, worldH float64, log *slog.Logger) *Backend {
	if log == nil {
		log = slog.Default()
	}
	b := &Backend{
		RasterSurface: polysandbox.NewRasterSurface(1, 1),
		ReleaseAfter:  DefaultReleaseAfter,
		screen:        screen,
		worldW:        worldW,
		worldH:        worldH,
		events:        make(chan tcell.Event, 256),
		done:          make(chan struct{}),
		polled:        make(chan struct{}),
		filter:        polysandbox.NewRepeatFilter(),
		lastSeen:      make(map[polysandbox.KeyCode]time.Time),
		now:           time.Now,
		log:           log.With("component", "term"),
	}
	b.fit()
	go b.poll()
	return b
}

// Close stops forwarding terminal events. Call it before finalizing the
// screen; Pump must not be called afterwards.
func (b *Backend) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// poll forwards screen events until the screen is finalized or the backend
// is closed.
func (b *Backend) poll() {
	defer close(b.polled)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// fit sizes the raster to the terminal, preserving the world aspect ratio.
func (b *Backend) fit() {
	cols, rows := b.screen.Size()
	w, h := cols, rows*2
	b.Resize(w, h)
	scale := float64(w) / b.worldW
	if s := float64(h) / b.worldH; s < scale {
		scale = s
	}
	b.Scale = scale
}

// Pump translates terminal input, repaints the screen and dispatches the
// resulting key events.
func (b *Backend) Pump() error {
	b.drain()
	b.releaseQuiet()

	b.Render()
	b.paint()
	b.screen.Show()

	b.Dispatch()
	return nil
}

func (b *Backend) drain() {
	for {
		select {
		case ev := <-b.events:
			b.handle(ev)
		default:
			return
		}
	}
}

func (b *Backend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
		b.fit()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			if !b.closeReported {
				b.closeReported = true
				b.log.Info("close requested")
				b.PostClose()
			}
			return
		}
		code, ok := keyCode(ev)
		if !ok {
			return
		}
		b.lastSeen[code] = b.now()
		down := polysandbox.KeyEvent{Type: polysandbox.KeyDown, Code: code}
		if b.filter.Accept(down) {
			b.Post(down)
		}
	}
}

// releaseQuiet synthesizes key-ups for keys without recent repeats.
func (b *Backend) releaseQuiet() {
	now := b.now()
	for code, seen := range b.lastSeen {
		if now.Sub(seen) < b.ReleaseAfter {
			continue
		}
		delete(b.lastSeen, code)
		up := polysandbox.KeyEvent{Type: polysandbox.KeyUp, Code: code}
		if b.filter.Accept(up) {
			b.Post(up)
		}
	}
}

// paint copies the raster into half-block cells.
func (b *Backend) paint() {
	frame := b.Frame()
	cols, rows := b.screen.Size()
	w, h := b.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x >= w || 2*y+1 >= h {
				b.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			top := frame.RGBAAt(x, 2*y)
			bottom := frame.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			b.screen.SetContent(x, y, '▀', nil, style)
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// keyCode maps a terminal key to a simulation key code. Letters match in
// either case.
func keyCode(ev *tcell.EventKey) (polysandbox.KeyCode, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	switch ev.Rune() {
	case 'w', 'W':
		return polysandbox.KeyW, true
	case 's', 'S':
		return polysandbox.KeyS, true
	case 'a', 'A':
		return polysandbox.KeyA, true
	case 'd', 'D':
		return polysandbox.KeyD, true
	case 'q', 'Q':
		return polysandbox.KeyQ, true
	case 'e', 'E':
		return polysandbox.KeyE, true
	case ' ':
		return polysandbox.KeySpace, true
	}
	return 0, false
}
