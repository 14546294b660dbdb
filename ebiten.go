package polysandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrWindowClosed is returned by EbitenBackend.Pump once the window's game
// loop has exited.
var ErrWindowClosed = errors.New("polysandbox: window closed")

// RunConfig holds optional parameters for RunEbiten.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowHUD bool
	Palette Palette

	// StatusFunc, when set, is evaluated on the loop goroutine each Pump and
	// printed under the TPS line.
	StatusFunc func() string
}

// ebitenKeys maps the bound keys to the simulation's key codes.
var ebitenKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyW, KeyW},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeyE, KeyE},
	{ebiten.KeySpace, KeySpace},
}

// EbitenBackend draws into an Ebitengine window through a Scene. The
// simulation loop runs on its own goroutine and stages polygon nodes; Pump
// attaches and detaches them under the scene lock, so Draw only ever sees
// whole ticks. Key events Update collects are dispatched by Pump, so every
// callback still runs on the loop goroutine. Key edges come from inpututil,
// so autorepeat never reaches the simulation.
type EbitenBackend struct {
	EventHub

	cfg RunConfig

	// Loop goroutine only.
	nodes   map[Handle]*Node
	next    Handle
	added   []*Node
	retired []*Node
	free    []*Node

	mu     sync.Mutex
	scene  *Scene
	status string
	gone   bool

	loopDone chan struct{}
	closing  bool
	pulse    *highlightPulse
	log      *slog.Logger
}

// NewEbitenBackend returns a backend for a window described by cfg.
func NewEbitenBackend(cfg RunConfig, log *slog.Logger) *EbitenBackend {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = DefaultPalette
	}
	if log == nil {
		log = slog.Default()
	}
	scene := NewScene()
	scene.ClearColor = cfg.Palette.Background
	return &EbitenBackend{
		cfg:      cfg,
		nodes:    make(map[Handle]*Node),
		scene:    scene,
		loopDone: make(chan struct{}),
		pulse:    newHighlightPulse(0.55, 1, 0.6),
		log:      log.With("component", "ebiten"),
	}
}

// SetStatusFunc replaces RunConfig.StatusFunc. Call it before RunEbiten.
func (b *EbitenBackend) SetStatusFunc(fn func() string) {
	b.cfg.StatusFunc = fn
}

// CreateFilledPolygon stages a polygon node under a new handle. It becomes
// visible at the next Pump. Nodes released by earlier Pumps are reused.
func (b *EbitenBackend) CreateFilledPolygon(points []Vec2, fill ColorTag) (Handle, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("create polygon: %w", configErr("surface", "points", "must not be empty"))
	}
	var n *Node
	if k := len(b.free); k > 0 {
		n = b.free[k-1]
		b.free = b.free[:k-1]
		SetPolygonPoints(n, points)
	} else {
		n = NewPolygon("polygon", points)
	}
	n.Color = b.cfg.Palette.Fill(fill)
	n.UserData = fill

	b.next++
	b.nodes[b.next] = n
	b.added = append(b.added, n)
	return b.next, nil
}

// Delete stages the removal of a polygon. It disappears at the next Pump.
func (b *EbitenBackend) Delete(h Handle) error {
	n, ok := b.nodes[h]
	if !ok {
		return fmt.Errorf("delete %d: %w", h, ErrUnknownHandle)
	}
	delete(b.nodes, h)
	b.retired = append(b.retired, n)
	return nil
}

// Len returns the number of live polygons.
func (b *EbitenBackend) Len() int { return len(b.nodes) }

// Pump publishes staged changes to the scene and dispatches input.
func (b *EbitenBackend) Pump() error {
	var status string
	if b.cfg.StatusFunc != nil {
		status = b.cfg.StatusFunc()
	}

	b.mu.Lock()
	root := b.scene.Root()
	for _, n := range b.added {
		root.AddChild(n)
	}
	for _, n := range b.retired {
		n.RemoveFromParent()
	}
	b.status = status
	gone := b.gone
	b.mu.Unlock()

	// Detached nodes are unreachable from Draw from here on.
	b.free = append(b.free, b.retired...)
	clear(b.added)
	clear(b.retired)
	b.added, b.retired = b.added[:0], b.retired[:0]

	if gone {
		return ErrWindowClosed
	}
	b.Dispatch()
	return nil
}

// RunEbiten opens the window and runs loop until either side finishes. It
// must be called from the main goroutine.
func RunEbiten(ctx context.Context, b *EbitenBackend, loop *Loop) error {
	ebiten.SetWindowSize(b.cfg.Width, b.cfg.Height)
	ebiten.SetWindowTitle(b.cfg.Title)
	ebiten.SetWindowClosingHandled(true)

	errc := make(chan error, 1)
	go func() {
		errc <- loop.Run(ctx)
		close(b.loopDone)
	}()

	gameErr := ebiten.RunGame(&ebitenGame{b: b})
	b.mu.Lock()
	b.gone = true
	b.mu.Unlock()

	loopErr := <-errc
	if loopErr != nil && !errors.Is(loopErr, ErrWindowClosed) {
		return loopErr
	}
	if gameErr != nil {
		return fmt.Errorf("run game: %w", gameErr)
	}
	return nil
}

// ebitenGame implements ebiten.Game on top of the backend.
type ebitenGame struct {
	b *EbitenBackend
}

func (g *ebitenGame) Update() error {
	b := g.b
	select {
	case <-b.loopDone:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() && !b.closing {
		b.closing = true
		b.log.Info("close requested")
		b.PostClose()
	}
	for _, k := range ebitenKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			b.Post(KeyEvent{Type: KeyDown, Code: k.code})
		}
		if inpututil.IsKeyJustReleased(k.key) {
			b.Post(KeyEvent{Type: KeyUp, Code: k.code})
		}
	}
	b.pulse.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	b := g.b
	b.mu.Lock()
	defer b.mu.Unlock()

	hl := b.pulse.apply(b.cfg.Palette)
	for _, n := range b.scene.Root().Children() {
		if n.UserData == ColorHighlighted {
			n.Color = hl
		}
	}
	b.scene.Draw(screen)

	if b.cfg.ShowHUD {
		drawHUD(screen, b.status)
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.b.cfg.Width, g.b.cfg.Height
}
