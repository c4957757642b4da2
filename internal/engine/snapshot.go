package engine

// Snapshot captures the dynamic simulation state for rendering and for
// determinism testing. The terrain sets live on ModeRules and are immutable
// for the episode, so they are not repeated here.
type Snapshot struct {
	Tick          uint64
	Clock         float64
	Score         int
	ModeID        string
	Dir           Direction
	Body          []Point // Head first
	GrowthPending int

	Food        Food
	PowerUp     *PowerUp // nil when nothing is on the grid
	Effects     []ActiveEffect
	SpeedFactor float64

	TimeRemaining float64 // Seconds left in countdown modes, 0 otherwise
	Terminal      bool
	Reason        TerminalReason
}

// Snapshot returns a read-only copy of the current state. The caller owns
// the returned slices; mutating them never touches the simulation.
func (e *Engine) Snapshot() Snapshot {
	var pu *PowerUp
	if cur := e.powerups.Current(); cur != nil {
		c := *cur
		pu = &c
	}
	modeID := ""
	timeLeft := 0.0
	if e.rules != nil {
		modeID = e.rules.ID
		timeLeft = e.rules.TimeRemaining()
	}
	return Snapshot{
		Tick:          e.ticks,
		Clock:         e.clock,
		Score:         e.score,
		ModeID:        modeID,
		Dir:           e.snake.Direction(),
		Body:          e.snake.Body(),
		GrowthPending: e.snake.GrowthPending(),
		Food:          e.food,
		PowerUp:       pu,
		Effects:       e.effects.Active(),
		SpeedFactor:   e.effects.SpeedMultiplier(),
		TimeRemaining: timeLeft,
		Terminal:      e.terminal,
		Reason:        e.reason,
	}
}
