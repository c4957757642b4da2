package engine

// EffectType identifies a power-up and the effect it grants on pickup.
type EffectType int

const (
	EffectSpeedBoost EffectType = iota
	EffectSlowMotion
	EffectGhost
	EffectDoublePoints
	EffectMagnet
	EffectShrink
	EffectCount // Sentinel for counting types
)

func (e EffectType) String() string {
	switch e {
	case EffectSpeedBoost:
		return "speed_boost"
	case EffectSlowMotion:
		return "slow_motion"
	case EffectGhost:
		return "ghost"
	case EffectDoublePoints:
		return "double_points"
	case EffectMagnet:
		return "magnet"
	case EffectShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for the effect's pickup.
func (e EffectType) Glyph() rune {
	switch e {
	case EffectSpeedBoost:
		return '»'
	case EffectSlowMotion:
		return '«'
	case EffectGhost:
		return '◌'
	case EffectDoublePoints:
		return '$'
	case EffectMagnet:
		return 'U'
	case EffectShrink:
		return '✂'
	default:
		return '?'
	}
}

// ActiveEffect is a collected power-up counting down to expiry.
// Shrink is one-shot: its body mutation fires once at activation and
// Consumed is set so it never re-fires while the entry remains in the stack
// for HUD countdown display.
type ActiveEffect struct {
	Type      EffectType
	Remaining float64 // Seconds until expiry
	Duration  float64 // Full duration, for HUD progress bars
	Strength  float64 // Multiplier for speed/score types
	Consumed  bool    // One-shot effects only
}

// EffectStack holds all currently active effects and composes them into
// effective speed, score and collision behavior. At most one effect per
// type is active: collecting a type that is already running refreshes its
// countdown instead of stacking a duplicate.
type EffectStack struct {
	effects []*ActiveEffect
}

// NewEffectStack creates an empty stack.
func NewEffectStack() *EffectStack {
	return &EffectStack{}
}

// Reset drops all active effects.
func (st *EffectStack) Reset() {
	st.effects = st.effects[:0]
}

// Activate adds an effect of the given type, or refreshes the countdown of
// an already-active one. Returns the live entry.
func (st *EffectStack) Activate(t EffectType, duration, strength float64) *ActiveEffect {
	for _, e := range st.effects {
		if e.Type == t {
			e.Remaining = duration
			e.Duration = duration
			e.Strength = strength
			return e
		}
	}
	e := &ActiveEffect{Type: t, Remaining: duration, Duration: duration, Strength: strength}
	st.effects = append(st.effects, e)
	return e
}

// Advance decrements all countdowns by dt seconds and removes expired
// effects using a copy-and-filter pass. Returns the expired types.
func (st *EffectStack) Advance(dt float64) []EffectType {
	var expired []EffectType
	retained := st.effects[:0]
	for _, e := range st.effects {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			expired = append(expired, e.Type)
			continue
		}
		retained = append(retained, e)
	}
	st.effects = retained
	return expired
}

// Has reports whether an effect of the given type is active.
func (st *EffectStack) Has(t EffectType) bool {
	return st.Get(t) != nil
}

// Get returns the active effect of the given type, or nil.
func (st *EffectStack) Get(t EffectType) *ActiveEffect {
	for _, e := range st.effects {
		if e.Type == t {
			return e
		}
	}
	return nil
}

// SpeedMultiplier composes all speed-type strengths multiplicatively:
// simultaneous boost (1.5) and slow-motion (0.5) partially cancel to 0.75.
func (st *EffectStack) SpeedMultiplier() float64 {
	m := 1.0
	for _, e := range st.effects {
		if e.Type == EffectSpeedBoost || e.Type == EffectSlowMotion {
			m *= e.Strength
		}
	}
	return m
}

// ScoreMultiplier composes all score-type strengths multiplicatively.
// Applied at the moment food is consumed, never retroactively.
func (st *EffectStack) ScoreMultiplier() float64 {
	m := 1.0
	for _, e := range st.effects {
		if e.Type == EffectDoublePoints {
			m *= e.Strength
		}
	}
	return m
}

// Ghost reports whether any wall/self-collision bypass effect is active.
func (st *EffectStack) Ghost() bool {
	return st.Has(EffectGhost)
}

// Active returns a snapshot copy of the active effects, for the HUD.
func (st *EffectStack) Active() []ActiveEffect {
	out := make([]ActiveEffect, len(st.effects))
	for i, e := range st.effects {
		out[i] = *e
	}
	return out
}
