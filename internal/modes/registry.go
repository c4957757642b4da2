// Package modes provides a global registry of game mode definitions. Modes
// register themselves in init() functions, allowing the platform to list
// and instantiate them without hardcoded dependencies.
package modes

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

// Definition describes one game mode: its identity and the terrain
// generator invoked when the mode is selected. Generation runs once per
// configuration; the produced rule sets are immutable for the episode.
type Definition struct {
	ID          string
	Title       string
	Description string
	Generate    func(grid engine.Grid, rng *rand.Rand, cfg config.ModesConfig) *engine.ModeRules
}

var (
	definitions = make(map[string]Definition)
	mu          sync.RWMutex
)

// Register adds a mode definition to the registry.
// Typically called from a mode file's init() function.
// Panics if a mode with the same ID is already registered.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := definitions[def.ID]; exists {
		panic(fmt.Sprintf("modes: mode %q already registered", def.ID))
	}
	definitions[def.ID] = def
}

// List returns all registered mode definitions, sorted by ID.
func List() []Definition {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Definition, 0, len(definitions))
	for _, def := range definitions {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create generates fresh mode rules for the given mode ID.
// Returns an error for an unknown ID so the caller retains its previous
// configuration.
func Create(id string, grid engine.Grid, rng *rand.Rand, cfg config.ModesConfig) (*engine.ModeRules, error) {
	mu.RLock()
	def, ok := definitions[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("modes: unknown mode %q", id)
	}
	return def.Generate(grid, rng, cfg), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := definitions[id]
	return ok
}
