package modes

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

func init() {
	Register(Definition{
		ID:          "maze",
		Title:       "Maze Runner",
		Description: "Walled corridors with portals linking distant cells.",
		Generate:    generateMaze,
	})
}

func generateMaze(grid engine.Grid, rng *rand.Rand, cfg config.ModesConfig) *engine.ModeRules {
	spacing := cfg.MazeSpacing
	if spacing <= 0 {
		spacing = 5
	}
	gap := cfg.MazeGap
	if gap <= 0 {
		gap = 5
	}
	pairs := cfg.PortalPairs
	if pairs <= 0 {
		pairs = 2
	}

	rules := &engine.ModeRules{
		ID:        "maze",
		Title:     "Maze Runner",
		MazeWalls: make(map[engine.Point]bool),
	}

	// Solid border ring.
	for x := 0; x < grid.Width; x++ {
		rules.MazeWalls[engine.Point{X: x, Y: 0}] = true
		rules.MazeWalls[engine.Point{X: x, Y: grid.Height - 1}] = true
	}
	for y := 0; y < grid.Height; y++ {
		rules.MazeWalls[engine.Point{X: 0, Y: y}] = true
		rules.MazeWalls[engine.Point{X: grid.Width - 1, Y: y}] = true
	}

	// Interior partitions every spacing cells, each pierced by one
	// gap-wide opening at a random offset.
	for y := spacing; y < grid.Height-spacing; y += spacing {
		gapStart := spacing + rng.Intn(maxOf(1, grid.Width-2*spacing))
		for x := 1; x < grid.Width-1; x++ {
			if x >= gapStart && x < gapStart+gap {
				continue
			}
			rules.MazeWalls[engine.Point{X: x, Y: y}] = true
		}
	}
	for x := spacing; x < grid.Width-spacing; x += spacing {
		gapStart := spacing + rng.Intn(maxOf(1, grid.Height-2*spacing))
		for y := 1; y < grid.Height-1; y++ {
			if y >= gapStart && y < gapStart+gap {
				continue
			}
			rules.MazeWalls[engine.Point{X: x, Y: y}] = true
		}
	}

	rules.Portals = placePortals(grid, rng, rules, pairs)
	return rules
}

// placePortals draws endpoint pairs from open interior cells. Endpoints
// never overlap walls or each other; if the board is too cramped to place
// a pair after a bounded number of attempts, fewer pairs are returned.
func placePortals(grid engine.Grid, rng *rand.Rand, rules *engine.ModeRules, pairs int) []engine.PortalPair {
	taken := make(map[engine.Point]bool)
	pick := func() (engine.Point, bool) {
		for attempt := 0; attempt < 200; attempt++ {
			p := engine.Point{
				X: 2 + rng.Intn(maxOf(1, grid.Width-4)),
				Y: 2 + rng.Intn(maxOf(1, grid.Height-4)),
			}
			if rules.MazeWalls[p] || taken[p] {
				continue
			}
			taken[p] = true
			return p, true
		}
		return engine.Point{}, false
	}

	result := make([]engine.PortalPair, 0, pairs)
	for i := 0; i < pairs; i++ {
		a, ok := pick()
		if !ok {
			break
		}
		b, ok := pick()
		if !ok {
			break
		}
		result = append(result, engine.PortalPair{A: a, B: b})
	}
	return result
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
