package modes

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

func init() {
	Register(Definition{
		ID:          "classic",
		Title:       "Classic",
		Description: "Plain board, no terrain. Survive and score.",
		Generate:    generateClassic,
	})
}

func generateClassic(_ engine.Grid, _ *rand.Rand, _ config.ModesConfig) *engine.ModeRules {
	return &engine.ModeRules{
		ID:    "classic",
		Title: "Classic",
	}
}
