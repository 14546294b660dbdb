package polysandbox

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUD prints TPS, FPS and the status line in the top-left corner.
func drawHUD(screen *ebiten.Image, status string) {
	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if status != "" {
		msg += "\n" + status
	}
	ebitenutil.DebugPrint(screen, msg)
}

// SimulationStatus returns a StatusFunc describing the active entity.
func SimulationStatus(sim *Simulation) func() string {
	return func() string {
		e, err := sim.Active()
		if err != nil {
			return "no entities"
		}
		a := e.Shape().Anchor()
		return fmt.Sprintf("active %d/%d  (%.0f, %.0f)  WASD move  Q/E rotate  Space switch",
			sim.ActiveIndex()+1, sim.Len(), a.X, a.Y)
	}
}
