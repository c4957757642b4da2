package engine

import "math/rand"

// PowerUpSpec configures one power-up type: effect duration and strength on
// pickup, and its relative weight in the spawn draw.
type PowerUpSpec struct {
	Duration float64
	Strength float64
	Weight   int
}

// PowerUp is a spawned pickup waiting on the grid. At most one exists at a
// time; collecting it turns it into an ActiveEffect on the stack.
type PowerUp struct {
	Type EffectType
	Pos  Point
}

// PowerUpManager owns the pickup lifecycle: a fixed interval timer gates
// spawn attempts, the type is drawn by normalized spawn-chance weights, and
// head contact on a tick boundary collects the pickup.
type PowerUpManager struct {
	rng      *rand.Rand
	specs    [EffectCount]PowerUpSpec
	interval float64
	timer    float64
	current  *PowerUp
}

// NewPowerUpManager creates a manager with the given per-type specs and
// spawn interval in seconds.
func NewPowerUpManager(rng *rand.Rand, specs [EffectCount]PowerUpSpec, interval float64) *PowerUpManager {
	return &PowerUpManager{rng: rng, specs: specs, interval: interval}
}

// Reset clears the pending pickup and restarts the spawn timer.
func (pm *PowerUpManager) Reset() {
	pm.timer = 0
	pm.current = nil
}

// Current returns the uncollected pickup on the grid, or nil.
func (pm *PowerUpManager) Current() *PowerUp {
	return pm.current
}

// Spec returns the configuration for an effect type.
func (pm *PowerUpManager) Spec(t EffectType) PowerUpSpec {
	return pm.specs[t]
}

// Update advances the spawn timer by dt. When the interval elapses and no
// pickup is on the grid, a free cell is drawn from the spawner; a
// spawn-exhausted board leaves the timer primed so the attempt retries on
// the next tick.
func (pm *PowerUpManager) Update(dt float64, spawner *Spawner, blocked func(Point) bool) {
	pm.timer += dt
	if pm.current != nil || pm.timer < pm.interval {
		return
	}
	pos, ok := spawner.Spawn(blocked)
	if !ok {
		return
	}
	pm.timer = 0
	pm.current = &PowerUp{Type: pm.rollType(), Pos: pos}
}

// Collect removes and returns the pickup if it sits on p.
func (pm *PowerUpManager) Collect(p Point) (EffectType, PowerUpSpec, bool) {
	if pm.current == nil || pm.current.Pos != p {
		return 0, PowerUpSpec{}, false
	}
	t := pm.current.Type
	pm.current = nil
	return t, pm.specs[t], true
}

// rollType draws a power-up type by weighted random selection. Weights are
// relative; normalization happens implicitly through the cumulative walk.
func (pm *PowerUpManager) rollType() EffectType {
	total := 0
	for t := EffectType(0); t < EffectCount; t++ {
		if w := pm.specs[t].Weight; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return EffectSpeedBoost
	}
	roll := pm.rng.Intn(total)
	cumulative := 0
	for t := EffectType(0); t < EffectCount; t++ {
		w := pm.specs[t].Weight
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return t
		}
	}
	return EffectSpeedBoost
}
