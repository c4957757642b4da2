package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// TerminalReason explains why an episode ended.
type TerminalReason string

const (
	ReasonNone     TerminalReason = ""
	ReasonWall     TerminalReason = "wall"     // Left the board with wall collision on
	ReasonObstacle TerminalReason = "obstacle" // Hit an obstacle or maze wall
	ReasonSelf     TerminalReason = "self"     // Ran into the body
	ReasonTimeUp   TerminalReason = "time_up"  // Countdown reached zero
)

// Outcome is the immutable record emitted after each Advance call. When
// Ticked is false the elapsed time did not reach the move interval and the
// state is unchanged. The event flags (AteFood, Teleported, PowerUpPicked,
// Terminal) are advisory for the presentation and audio layers.
type Outcome struct {
	Ticked        bool
	Head          Point
	AteFood       bool
	FoodTier      FoodTier
	ScoreDelta    int
	Teleported    bool
	PowerUpPicked bool
	PowerUpType   EffectType
	Terminal      bool
	Reason        TerminalReason
}

// Config carries the difficulty- and file-derived simulation parameters.
// It is plain data so the config package stays decoupled from the engine.
type Config struct {
	// MoveDelay is the base seconds per snake move before speed effects.
	MoveDelay float64
	// PowerUpInterval is seconds between power-up spawn attempts.
	PowerUpInterval float64
	// ScoreMultiplier is the difficulty multiplier applied to food values.
	ScoreMultiplier float64
	// StartLength is the initial body length.
	StartLength int
	// FoodTiers is the weighted food table; must be non-empty.
	FoodTiers []TierSpec
	// PowerUps configures duration/strength/weight per effect type.
	PowerUps [EffectCount]PowerUpSpec
	// MagnetMin/MagnetMax bound the Chebyshev band in which an active
	// magnet pulls food toward the head (exclusive on both ends).
	MagnetMin int
	MagnetMax int
}

// Validate rejects configurations the resolver cannot run with.
func (c Config) Validate() error {
	if c.MoveDelay <= 0 {
		return fmt.Errorf("engine: move delay must be positive, got %v", c.MoveDelay)
	}
	if c.PowerUpInterval <= 0 {
		return fmt.Errorf("engine: power-up interval must be positive, got %v", c.PowerUpInterval)
	}
	if c.ScoreMultiplier <= 0 {
		return fmt.Errorf("engine: score multiplier must be positive, got %v", c.ScoreMultiplier)
	}
	if len(c.FoodTiers) == 0 {
		return errors.New("engine: at least one food tier required")
	}
	if c.MagnetMin < 0 || c.MagnetMax <= c.MagnetMin {
		return fmt.Errorf("engine: invalid magnet band (%d, %d)", c.MagnetMin, c.MagnetMax)
	}
	return nil
}

// Engine is the tick resolver: the sole mutator of the snake, the food, the
// effect stack and the countdown. It advances only when accumulated elapsed
// time exceeds the effective move interval; every mutation happens inside
// one atomic resolved tick. Presentation layers read snapshots and outcome
// records, never live references.
type Engine struct {
	grid  Grid
	rng   *rand.Rand
	cfg   Config
	rules *ModeRules

	snake    *Snake
	food     Food
	spawner  *Spawner
	effects  *EffectStack
	powerups *PowerUpManager

	pendingDir Direction
	moveTimer  float64
	sinceTick  float64
	clock      float64
	ticks      uint64
	score      int

	configured bool
	terminal   bool
	reason     TerminalReason
}

// New creates an engine over the given grid with a seeded RNG. Configure
// must be called before the first Reset.
func New(grid Grid, seed int64) *Engine {
	return &Engine{
		grid:    grid,
		rng:     rand.New(rand.NewSource(seed)),
		effects: NewEffectStack(),
	}
}

// Configure installs mode rules and simulation parameters, then starts a
// fresh episode. It must only be called between episodes (before the first
// Reset or after a terminal outcome). Invalid input is rejected and the
// previous configuration is retained.
func (e *Engine) Configure(rules *ModeRules, cfg Config) error {
	if rules == nil {
		return errors.New("engine: nil mode rules")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.configured && !e.terminal {
		return errors.New("engine: configure called mid-episode")
	}
	e.rules = rules
	e.cfg = cfg
	e.configured = true
	e.Reset()
	return nil
}

// Grid returns the board dimensions.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Rules returns the active mode rules for read-only terrain drawing.
func (e *Engine) Rules() *ModeRules {
	return e.rules
}

// Reset re-initializes the snake, food, effects, power-ups and countdown
// for a new episode. The RNG sequence continues, so consecutive episodes
// within one process differ while the whole run stays seed-deterministic.
func (e *Engine) Reset() {
	e.snake = e.placeSnake()
	e.pendingDir = e.snake.Direction()
	e.effects.Reset()
	specs := e.cfg.PowerUps
	interval := e.cfg.PowerUpInterval
	e.powerups = NewPowerUpManager(e.rng, specs, interval)
	e.spawner = NewSpawner(e.grid, e.rng, e.cfg.FoodTiers)
	e.rules.ResetCountdown()
	e.moveTimer = 0
	e.sinceTick = 0
	e.clock = 0
	e.ticks = 0
	e.score = 0
	e.terminal = false
	e.reason = ReasonNone
	e.food = Food{}
	e.respawnFood()
}

// placeSnake finds a clear starting row for the initial body: the board
// center first, then random candidates. Falls back to the center when the
// terrain is too dense to find a clear row quickly.
func (e *Engine) placeSnake() *Snake {
	length := e.cfg.StartLength
	if length < minSnakeLen {
		length = minSnakeLen
	}
	center := Point{X: e.grid.Width / 2, Y: e.grid.Height / 2}
	start := center
	for attempt := 0; attempt < 100; attempt++ {
		if e.rowClear(start, length) {
			return NewSnake(start, length, DirRight)
		}
		start = Point{
			X: length + e.rng.Intn(maxInt(1, e.grid.Width-length-1)),
			Y: 1 + e.rng.Intn(maxInt(1, e.grid.Height-2)),
		}
	}
	return NewSnake(center, length, DirRight)
}

// rowClear reports whether the body row ending at start fits on the grid
// without touching terrain or a portal endpoint.
func (e *Engine) rowClear(start Point, length int) bool {
	for i := 0; i < length; i++ {
		p := Point{X: start.X - i, Y: start.Y}
		if !e.grid.Contains(p) || e.rules.IsBlocked(p) || e.rules.IsPortal(p) {
			return false
		}
	}
	return true
}

// SetDirection buffers the direction for the next resolved tick. A reversal
// onto the snake's own neck is silently ignored, per the input contract.
func (e *Engine) SetDirection(d Direction) {
	if d == e.snake.Direction().Opposite() {
		return
	}
	e.pendingDir = d
}

// Terminal reports whether the current episode has ended.
func (e *Engine) Terminal() bool {
	return e.terminal
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Ticks returns the number of resolved ticks this episode.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Advance accumulates dt seconds of elapsed time and resolves at most one
// tick. The effective move interval is the base delay divided by the
// composed speed multiplier, so active speed effects rescale the cadence
// itself. After a terminal outcome Advance is a no-op until Reset.
func (e *Engine) Advance(dt float64) Outcome {
	if !e.configured || e.terminal {
		return Outcome{}
	}
	e.moveTimer += dt
	e.sinceTick += dt
	delay := e.cfg.MoveDelay / e.effects.SpeedMultiplier()
	if e.moveTimer < delay {
		return Outcome{}
	}
	e.moveTimer = 0
	stepDt := e.sinceTick
	e.sinceTick = 0
	return e.resolveTick(stepDt)
}

// resolveTick is the single atomic simulation step. The order is fixed:
// timers, move, portal, food, power-up pickup, collisions, countdown.
func (e *Engine) resolveTick(dt float64) Outcome {
	e.clock += dt
	e.ticks++
	out := Outcome{Ticked: true}

	// 1. Timers: expire effects, run the power-up spawn gate, retry a
	// previously exhausted food spawn, and let an active magnet pull food.
	e.effects.Advance(dt)
	e.powerups.Update(dt, e.spawner, e.spawnBlocked)
	if !e.food.Active {
		e.respawnFood()
	}
	e.applyMagnet()

	// 2. Move one cell using the buffered direction. Ghost and no-death
	// turn a boundary hit into a wrap instead of leaving the head off-grid.
	dir := e.pendingDir
	wrap := !e.rules.WallCollision || e.rules.NoDeath || e.effects.Ghost()
	next, outOfBounds := e.grid.Step(e.snake.Head(), dir, wrap)
	if outOfBounds {
		e.terminal = true
		e.reason = ReasonWall
		out.Head = e.snake.Head()
		out.Terminal = true
		out.Reason = ReasonWall
		return out
	}
	e.snake.Advance(next, dir)

	// 3. Portal teleport relocates the head without consuming a tick.
	if exit, ok := e.rules.PortalExit(e.snake.Head()); ok {
		e.snake.Relocate(exit)
		out.Teleported = true
	}

	// 4. Food consumption.
	if e.food.Active && e.snake.Head() == e.food.Pos {
		out.AteFood = true
		out.FoodTier = e.food.Tier
		out.ScoreDelta = int(float64(e.food.Value) * e.cfg.ScoreMultiplier * e.effects.ScoreMultiplier())
		e.score += out.ScoreDelta
		e.snake.Grow(1)
		e.respawnFood()
	}

	// 5. Power-up pickup, independent of food. The shrink body mutation is
	// deferred until after the tail trim so the halving acts on the settled
	// length and the three-segment floor holds.
	shrinkPending := false
	if t, spec, ok := e.powerups.Collect(e.snake.Head()); ok {
		out.PowerUpPicked = true
		out.PowerUpType = t
		eff := e.effects.Activate(t, spec.Duration, spec.Strength)
		if t == EffectShrink && !eff.Consumed {
			shrinkPending = true
			eff.Consumed = true
		}
	}

	// 6. Terminal collisions, each short-circuited by no-death and ghost.
	// Self-collision is tested before the tail trim so a head landing on
	// any pre-existing segment, the tail included, is caught.
	bypass := e.rules.NoDeath || e.effects.Ghost()
	switch {
	case !bypass && e.rules.IsBlocked(e.snake.Head()):
		e.terminal = true
		e.reason = ReasonObstacle
	case !bypass && e.snake.SelfCollides():
		e.terminal = true
		e.reason = ReasonSelf
	}
	if e.terminal {
		out.Head = e.snake.Head()
		out.Terminal = true
		out.Reason = e.reason
		return out
	}
	e.snake.CompleteMove()
	if shrinkPending {
		e.snake.ShrinkBy(e.snake.Len() / 2)
	}

	// 7. Countdown modes end on an empty clock regardless of collisions.
	if e.rules.TickCountdown(dt) {
		e.terminal = true
		e.reason = ReasonTimeUp
		out.Terminal = true
		out.Reason = ReasonTimeUp
	}

	out.Head = e.snake.Head()
	return out
}

// spawnBlocked is the blocked-cell predicate for food and power-up spawns:
// static terrain, portal endpoints, the snake body, the active food and the
// pending power-up.
func (e *Engine) spawnBlocked(p Point) bool {
	if !e.rules.IsValidSpawn(p, nil) {
		return true
	}
	if e.snake.Occupies(p) {
		return true
	}
	if e.food.Active && e.food.Pos == p {
		return true
	}
	if pu := e.powerups.Current(); pu != nil && pu.Pos == p {
		return true
	}
	return false
}

// respawnFood draws a fresh position and tier. On an exhausted board the
// food goes inactive and the spawn retries on following ticks as cells
// free up; the tick itself proceeds as a no-op for spawning.
func (e *Engine) respawnFood() {
	pos, ok := e.spawner.Spawn(e.spawnBlocked)
	if !ok {
		e.food.Active = false
		return
	}
	tier := e.spawner.RollTier()
	e.food = Food{Pos: pos, Tier: tier.Tier, Value: tier.Value, Active: true}
}

// applyMagnet nudges the food one cell toward the head along its dominant
// axis when an active magnet holds it inside the configured distance band.
// The food never moves onto a blocked or occupied cell.
func (e *Engine) applyMagnet() {
	if !e.effects.Has(EffectMagnet) || !e.food.Active {
		return
	}
	head := e.snake.Head()
	dist := e.grid.Chebyshev(head, e.food.Pos)
	if dist <= e.cfg.MagnetMin || dist >= e.cfg.MagnetMax {
		return
	}
	dx := head.X - e.food.Pos.X
	dy := head.Y - e.food.Pos.Y
	next := e.food.Pos
	if absInt(dx) >= absInt(dy) {
		next.X += signInt(dx)
	} else {
		next.Y += signInt(dy)
	}
	if !e.grid.Contains(next) || e.spawnBlocked(next) {
		return
	}
	e.food.Pos = next
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func signInt(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
