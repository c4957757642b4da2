package modes

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

func init() {
	Register(Definition{
		ID:          "obstacle",
		Title:       "Obstacle Course",
		Description: "Random rocks litter the board. Hitting one ends the run.",
		Generate:    generateObstacle,
	})
}

func generateObstacle(grid engine.Grid, rng *rand.Rand, cfg config.ModesConfig) *engine.ModeRules {
	count := cfg.ObstacleCount
	if count <= 0 {
		count = 15
	}

	rules := &engine.ModeRules{
		ID:        "obstacle",
		Title:     "Obstacle Course",
		Obstacles: make(map[engine.Point]bool, count),
	}

	// Keep a clear zone around the board center so the snake never starts
	// boxed in. Placement attempts that land there are discarded, which may
	// leave fewer than count obstacles on small boards.
	cx, cy := grid.Width/2, grid.Height/2
	for i := 0; i < count; i++ {
		p := engine.Point{
			X: 2 + rng.Intn(grid.Width-4),
			Y: 2 + rng.Intn(grid.Height-4),
		}
		if absDiff(p.X, cx) <= 3 && absDiff(p.Y, cy) <= 3 {
			continue
		}
		rules.Obstacles[p] = true
	}
	return rules
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
