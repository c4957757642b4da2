package engine

import "math/rand"

// FoodTier classifies a food item by rarity and point value.
type FoodTier int

const (
	FoodCommon FoodTier = iota
	FoodBonus
	FoodRare
)

func (t FoodTier) String() string {
	switch t {
	case FoodCommon:
		return "common"
	case FoodBonus:
		return "bonus"
	case FoodRare:
		return "rare"
	default:
		return "unknown"
	}
}

// TierSpec configures one food tier: its base point value and its relative
// weight in the spawn draw.
type TierSpec struct {
	Tier   FoodTier
	Value  int
	Weight int
}

// Food is the single active food item on the board.
type Food struct {
	Pos    Point
	Tier   FoodTier
	Value  int
	Active bool
}

// Spawner finds valid spawn cells on the grid. It performs an exhaustive
// scan and picks uniformly among the free cells, so it terminates whenever
// at least one valid cell exists and never biases toward sparse regions the
// way rejection sampling does on a nearly full board.
type Spawner struct {
	grid  Grid
	rng   *rand.Rand
	tiers []TierSpec
}

// NewSpawner creates a spawner over the given grid.
func NewSpawner(grid Grid, rng *rand.Rand, tiers []TierSpec) *Spawner {
	return &Spawner{grid: grid, rng: rng, tiers: tiers}
}

// Spawn returns a uniformly random cell for which blocked returns false.
// The second return is false when the board is exhausted; the caller treats
// that as a no-op, not a failure.
func (sp *Spawner) Spawn(blocked func(Point) bool) (Point, bool) {
	free := make([]Point, 0, sp.grid.Cells())
	for y := 0; y < sp.grid.Height; y++ {
		for x := 0; x < sp.grid.Width; x++ {
			p := Point{X: x, Y: y}
			if !blocked(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[sp.rng.Intn(len(free))], true
}

// RollTier draws a food tier by weighted random selection.
func (sp *Spawner) RollTier() TierSpec {
	total := 0
	for _, t := range sp.tiers {
		if t.Weight > 0 {
			total += t.Weight
		}
	}
	if total <= 0 {
		return sp.tiers[0]
	}
	roll := sp.rng.Intn(total)
	cumulative := 0
	for _, t := range sp.tiers {
		if t.Weight <= 0 {
			continue
		}
		cumulative += t.Weight
		if roll < cumulative {
			return t
		}
	}
	return sp.tiers[0]
}
