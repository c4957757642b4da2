package modes

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

func init() {
	Register(Definition{
		ID:          "timetrial",
		Title:       "Time Trial",
		Description: "Score as much as possible before the clock runs out.",
		Generate:    generateTimeTrial,
	})
}

func generateTimeTrial(_ engine.Grid, _ *rand.Rand, cfg config.ModesConfig) *engine.ModeRules {
	limit := cfg.TimeLimit
	if limit <= 0 {
		limit = 60
	}
	return &engine.ModeRules{
		ID:        "timetrial",
		Title:     "Time Trial",
		TimeLimit: limit,
	}
}
