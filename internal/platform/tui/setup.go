package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
	"github.com/vovakirdan/tui-serpent/internal/modes"
)

// EngineConfig translates the file-level configuration and a difficulty
// preset into simulation parameters.
func EngineConfig(file config.File, difficulty string) (engine.Config, error) {
	diff, err := file.Difficulty(difficulty)
	if err != nil {
		return engine.Config{}, err
	}

	cfg := engine.Config{
		MoveDelay:       diff.MoveDelay,
		PowerUpInterval: diff.PowerUpInterval,
		ScoreMultiplier: diff.ScoreMultiplier,
		StartLength:     file.Snake.StartLength,
		MagnetMin:       file.Magnet.MinRange,
		MagnetMax:       file.Magnet.MaxRange,
	}

	for _, t := range file.Food.Tiers {
		tier, ok := foodTierByName(t.Name)
		if !ok {
			return engine.Config{}, fmt.Errorf("config: unknown food tier %q", t.Name)
		}
		cfg.FoodTiers = append(cfg.FoodTiers, engine.TierSpec{
			Tier:   tier,
			Value:  t.Value,
			Weight: t.Weight,
		})
	}

	for name, p := range file.PowerUps {
		et, ok := effectTypeByName(name)
		if !ok {
			return engine.Config{}, fmt.Errorf("config: unknown power-up %q", name)
		}
		cfg.PowerUps[et] = engine.PowerUpSpec{
			Duration: p.Duration,
			Strength: p.Strength,
			Weight:   p.Weight,
		}
	}

	return cfg, nil
}

func foodTierByName(name string) (engine.FoodTier, bool) {
	for _, t := range []engine.FoodTier{engine.FoodCommon, engine.FoodBonus, engine.FoodRare} {
		if t.String() == name {
			return t, true
		}
	}
	return engine.FoodCommon, false
}

func effectTypeByName(name string) (engine.EffectType, bool) {
	for et := engine.EffectType(0); et < engine.EffectCount; et++ {
		if et.String() == name {
			return et, true
		}
	}
	return 0, false
}

// BuildEngine creates a fully configured engine for the given mode and
// difficulty. The grid size comes from the configuration file; seed 0 means
// derive one from the wall clock.
func BuildEngine(file config.File, modeID, difficulty string, seed int64) (*engine.Engine, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := engine.Grid{Width: file.Board.Width, Height: file.Board.Height}
	eng := engine.New(grid, seed)

	cfg, err := EngineConfig(file, difficulty)
	if err != nil {
		return nil, err
	}

	diff, err := file.Difficulty(difficulty)
	if err != nil {
		return nil, err
	}

	// Terrain generation uses its own stream so mode layouts do not
	// perturb the in-game RNG sequence.
	terrainRNG := rand.New(rand.NewSource(seed + 1))
	rules, err := modes.Create(modeID, grid, terrainRNG, file.Modes)
	if err != nil {
		return nil, err
	}
	rules.WallCollision = diff.WallCollision

	if err := eng.Configure(rules, cfg); err != nil {
		return nil, err
	}
	return eng, nil
}
