package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML fails to parse.
func Default() File {
	return File{
		Board: BoardConfig{Width: 40, Height: 30},
		Snake: SnakeConfig{StartLength: 3},
		Difficulties: map[string]DifficultyConfig{
			DifficultyEasy: {
				MoveDelay:       0.12,
				PowerUpInterval: 12.0,
				ScoreMultiplier: 1.5,
				WallCollision:   false,
				Description:     "Slower snake, wraparound walls",
			},
			DifficultyMedium: {
				MoveDelay:       0.10,
				PowerUpInterval: 15.0,
				ScoreMultiplier: 1.0,
				WallCollision:   true,
				Description:     "Standard speed, wall collisions",
			},
			DifficultyHard: {
				MoveDelay:       0.08,
				PowerUpInterval: 20.0,
				ScoreMultiplier: 0.8,
				WallCollision:   true,
				Description:     "Faster snake, fewer power-ups",
			},
			DifficultyExtreme: {
				MoveDelay:       0.06,
				PowerUpInterval: 30.0,
				ScoreMultiplier: 0.5,
				WallCollision:   true,
				Description:     "Very fast snake, rare power-ups",
			},
		},
		Food: FoodConfig{
			Tiers: []FoodTierConfig{
				{Name: "common", Value: 10, Weight: 70},
				{Name: "bonus", Value: 25, Weight: 25},
				{Name: "rare", Value: 50, Weight: 5},
			},
		},
		PowerUps: map[string]PowerUpConfig{
			"speed_boost":   {Duration: 5.0, Strength: 1.5, Weight: 20},
			"slow_motion":   {Duration: 5.0, Strength: 0.5, Weight: 15},
			"ghost":         {Duration: 4.0, Strength: 1.0, Weight: 10},
			"double_points": {Duration: 7.0, Strength: 2.0, Weight: 20},
			"magnet":        {Duration: 6.0, Strength: 1.0, Weight: 15},
			"shrink":        {Duration: 8.0, Strength: 0.5, Weight: 10},
		},
		Magnet: MagnetConfig{MinRange: 2, MaxRange: 8},
		Modes: ModesConfig{
			ObstacleCount: 15,
			TimeLimit:     60.0,
			PortalPairs:   2,
			MazeSpacing:   5,
			MazeGap:       5,
		},
	}
}
