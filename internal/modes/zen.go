package modes

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

func init() {
	Register(Definition{
		ID:          "zen",
		Title:       "Zen",
		Description: "No deaths, no pressure. Walls wrap and collisions pass through.",
		Generate:    generateZen,
	})
}

func generateZen(_ engine.Grid, _ *rand.Rand, _ config.ModesConfig) *engine.ModeRules {
	return &engine.ModeRules{
		ID:      "zen",
		Title:   "Zen",
		NoDeath: true,
	}
}
