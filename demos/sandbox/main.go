// Sandbox drives the shape simulation with one of three backends: a desktop
// window, the terminal, or a headless rasterizer that replays a key script
// and writes PNG snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/polysandbox"
	"github.com/phanxgames/polysandbox/term"
)

var (
	backendFlag  = flag.String("backend", "window", "Backend: window, terminal, headless")
	configFlag   = flag.String("config", "", "Scene TOML file (default: built-in scene)")
	logLevelFlag = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	scriptFlag   = flag.String("script", "", "JSON key script to replay")
	ticksFlag    = flag.Int("ticks", 0, "Stop after this many ticks (0 = unlimited)")
	snapshotFlag = flag.String("snapshots", "snapshots", "Directory for headless snapshots")
	soundFlag    = flag.Bool("sound", false, "Play a blip on focus switch")
	hudFlag      = flag.Bool("hud", true, "Show the TPS/status overlay (window backend)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal backend owns stdout, so its logs would be painted over.
	logOut := os.Stderr
	if *backendFlag == "terminal" {
		f, err := os.OpenFile("sandbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := polysandbox.NewLogger(logOut, *logLevelFlag)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg := polysandbox.DefaultSceneConfig()
	if *configFlag != "" {
		if cfg, err = polysandbox.LoadSceneConfig(*configFlag); err != nil {
			return err
		}
	}

	var script *polysandbox.Script
	if *scriptFlag != "" {
		data, err := os.ReadFile(*scriptFlag)
		if err != nil {
			return err
		}
		if script, err = polysandbox.LoadScript(data); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *backendFlag {
	case "window":
		return runWindow(ctx, cfg, script, logger)
	case "terminal":
		return runTerminal(ctx, cfg, script, logger)
	case "headless":
		return runHeadless(ctx, cfg, script, logger)
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
}

// newSimulation builds the simulation with the configured scene.
func newSimulation(surface polysandbox.Surface, cfg polysandbox.SceneConfig, logger *slog.Logger) (*polysandbox.Simulation, error) {
	opts := []polysandbox.Option{
		polysandbox.WithControls(cfg.ControlSet()),
		polysandbox.WithLogger(logger),
	}
	if *soundFlag {
		if blip, err := polysandbox.NewBlip(); err == nil {
			opts = append(opts, polysandbox.WithFocusHook(blip.FocusHook()))
		} else {
			logger.Warn("sound disabled", "err", err)
		}
	}
	sim := polysandbox.NewSimulation(surface, opts...)
	if err := cfg.Populate(sim); err != nil {
		return nil, err
	}
	return sim, nil
}

func loopOptions(cfg polysandbox.SceneConfig, logger *slog.Logger, hook func(int) error) []polysandbox.LoopOption {
	opts := []polysandbox.LoopOption{
		polysandbox.WithInterval(cfg.Loop.Interval.Duration),
		polysandbox.WithMaxTicks(*ticksFlag),
		polysandbox.WithLoopLogger(logger),
	}
	if hook != nil {
		opts = append(opts, polysandbox.WithTickHook(hook))
	}
	return opts
}

// scriptHook replays script through hub, or returns nil without a script.
func scriptHook(script *polysandbox.Script, hub *polysandbox.EventHub, snap polysandbox.Snapshotter) func(int) error {
	if script == nil {
		return nil
	}
	return func(int) error {
		return script.Step(hub, snap)
	}
}

func runWindow(ctx context.Context, cfg polysandbox.SceneConfig, script *polysandbox.Script, logger *slog.Logger) error {
	backend := polysandbox.NewEbitenBackend(polysandbox.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowHUD: *hudFlag,
	}, logger)
	sim, err := newSimulation(backend, cfg, logger)
	if err != nil {
		return err
	}
	// The status line reads simulation state, so it must only be evaluated
	// from Pump on the loop goroutine.
	backend.SetStatusFunc(polysandbox.SimulationStatus(sim))
	loop := polysandbox.NewLoop(sim, backend, loopOptions(cfg, logger, scriptHook(script, &backend.EventHub, nil))...)
	return polysandbox.RunEbiten(ctx, backend, loop)
}

func runTerminal(ctx context.Context, cfg polysandbox.SceneConfig, script *polysandbox.Script, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	backend := term.New(screen, float64(cfg.Window.Width), float64(cfg.Window.Height), logger)
	defer backend.Close()
	sim, err := newSimulation(backend, cfg, logger)
	if err != nil {
		return err
	}
	loop := polysandbox.NewLoop(sim, backend, loopOptions(cfg, logger, scriptHook(script, &backend.EventHub, nil))...)
	return loop.Run(ctx)
}

func runHeadless(ctx context.Context, cfg polysandbox.SceneConfig, script *polysandbox.Script, logger *slog.Logger) error {
	if script == nil && *ticksFlag == 0 {
		return fmt.Errorf("headless backend needs -script or -ticks")
	}
	surface := polysandbox.NewRasterSurface(cfg.Window.Width, cfg.Window.Height)
	surface.SnapshotDir = *snapshotFlag
	sim, err := newSimulation(surface, cfg, logger)
	if err != nil {
		return err
	}
	var hook func(int) error
	if script != nil {
		// Stop once the script has run out instead of idling forever.
		hook = func(int) error {
			if err := script.Step(&surface.EventHub, surface); err != nil {
				return err
			}
			if script.Done() && surface.Pending() == 0 {
				surface.InjectClose()
			}
			return nil
		}
	}
	opts := loopOptions(cfg, logger, hook)
	loop := polysandbox.NewLoop(sim, surface, opts...)
	if err := loop.Run(ctx); err != nil {
		return err
	}
	logger.Info("headless run finished", "ticks", loop.Ticks(), "frames", surface.Frames())
	return nil
}
