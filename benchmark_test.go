package polysandbox

import "testing"

// setupBenchSimulation spawns n shapes of every kind onto a recording surface.
func setupBenchSimulation(n int) *Simulation {
	sim := NewSimulation(newRecordingSurface(), WithLogger(quietLogger()))
	for i := 0; i < n; i++ {
		x, y := float64(i%40)*20, float64(i/40)*20
		var s Shape
		switch i % 3 {
		case 0:
			s = mustPolygon(x, y, 8, 0, 6)
		case 1:
			s = mustStar(x, y, 4, 0, 5, 2.3)
		default:
			s = mustTriangle(x, y, 0.8, 10, 0)
		}
		if _, err := sim.Spawn(s); err != nil {
			panic(err)
		}
	}
	return sim
}

// --- Simulation Benchmarks ---

func BenchmarkStep_1000Entities(b *testing.B) {
	sim := setupBenchSimulation(1000)
	e, _ := sim.Active()
	e.VX, e.VR = 1, 0.01

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := sim.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Shape Benchmarks ---

func BenchmarkStarRecompute(b *testing.B) {
	s := mustStar(0, 0, 20, 0, 12, 2.3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Rotate(0.01, true)
	}
}

func BenchmarkTranslateIncremental(b *testing.B) {
	p := mustPolygon(0, 0, 20, 0, 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Translate(0.5, 0.5, false)
	}
}

// --- Raster Benchmarks ---

func BenchmarkRasterRender_DefaultScene(b *testing.B) {
	r := NewRasterSurface(800, 600)
	sim := NewSimulation(r, WithLogger(quietLogger()))
	if err := DefaultSceneConfig().Populate(sim); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Render()
	}
}
