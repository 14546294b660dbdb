// Package polysandbox is an interactive 2D polygon sandbox: regular
// polygons, stars and isosceles triangles drawn on a surface, one of which
// is active and steered from the keyboard at a fixed 50 Hz tick.
//
// # Quick start
//
// Build a simulation on any [Backend], populate it and run a [Loop]:
//
//	surface := polysandbox.NewRasterSurface(800, 600)
//	sim := polysandbox.NewSimulation(surface)
//	if err := polysandbox.DefaultSceneConfig().Populate(sim); err != nil {
//		return err
//	}
//	loop := polysandbox.NewLoop(sim, surface, polysandbox.WithMaxTicks(50))
//	err := loop.Run(ctx)
//
// For a desktop window use [NewEbitenBackend] and [RunEbiten]; the term
// subpackage draws into a terminal through tcell.
//
// # Shapes
//
// Every [Shape] derives its vertices from an anchor, an accumulated rotation
// and its own parameters. Rotate and Translate either rederive the vertices
// from scratch or, for Translate without recompute, shift the stored ones.
// Rotation is clockwise-positive: Rotate(d) subtracts d from the angle.
//
// # Controls
//
// W/S/A/D set the active entity's velocity while held, Q/E its angular
// velocity, and Space moves focus to the next entity. An entity that loses
// focus stops immediately.
//
// # Scripts
//
// [LoadScript] reads a JSON key script that a tick hook replays through the
// backend's [EventHub], which is how headless runs and tests drive input.
package polysandbox
