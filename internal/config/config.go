// Package config provides YAML-based configuration loading and difficulty
// presets for the serpent simulation.
package config

import "fmt"

// File is the full configuration document.
type File struct {
	Board        BoardConfig                 `yaml:"board"`
	Snake        SnakeConfig                 `yaml:"snake"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
	Food         FoodConfig                  `yaml:"food"`
	PowerUps     map[string]PowerUpConfig    `yaml:"powerups"`
	Magnet       MagnetConfig                `yaml:"magnet"`
	Modes        ModesConfig                 `yaml:"modes"`
}

// BoardConfig defines the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the initial body.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// DifficultyConfig is one named difficulty preset.
type DifficultyConfig struct {
	MoveDelay       float64 `yaml:"move_delay"`       // Base seconds per move
	PowerUpInterval float64 `yaml:"powerup_interval"` // Seconds between spawn attempts
	ScoreMultiplier float64 `yaml:"score_multiplier"` // Applied to food values
	WallCollision   bool    `yaml:"wall_collision"`   // Boundary death; off means wraparound
	Description     string  `yaml:"description"`
}

// FoodConfig holds the weighted food tier table.
type FoodConfig struct {
	Tiers []FoodTierConfig `yaml:"tiers"`
}

// FoodTierConfig is one food tier: name, point value and spawn weight.
type FoodTierConfig struct {
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Weight int    `yaml:"weight"`
}

// PowerUpConfig configures one power-up type.
type PowerUpConfig struct {
	Duration float64 `yaml:"duration"` // Effect seconds after pickup
	Strength float64 `yaml:"strength"` // Multiplier for speed/score types
	Weight   int     `yaml:"weight"`   // Relative spawn chance
}

// MagnetConfig bounds the distance band of the magnet effect.
type MagnetConfig struct {
	MinRange int `yaml:"min_range"`
	MaxRange int `yaml:"max_range"`
}

// ModesConfig holds the per-mode generation parameters.
type ModesConfig struct {
	ObstacleCount int     `yaml:"obstacle_count"`
	TimeLimit     float64 `yaml:"time_limit"`   // Seconds, time trial mode
	PortalPairs   int     `yaml:"portal_pairs"` // Portal pairs in maze mode
	MazeSpacing   int     `yaml:"maze_spacing"` // Cells between interior walls
	MazeGap       int     `yaml:"maze_gap"`     // Carved gap length per wall
}

// Difficulty preset names.
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyExtreme = "extreme"
)

// DifficultyNames lists the presets in ascending order.
func DifficultyNames() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme}
}

// Difficulty looks up a preset by name. Unknown names are rejected at this
// boundary so a caller keeps its previous configuration.
func (f File) Difficulty(name string) (DifficultyConfig, error) {
	d, ok := f.Difficulties[name]
	if !ok {
		return DifficultyConfig{}, fmt.Errorf("config: unknown difficulty %q", name)
	}
	return d, nil
}
