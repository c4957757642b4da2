package engine

import (
	"math/rand"
	"testing"
)

func testEngineConfig() Config {
	return Config{
		MoveDelay:       0.1,
		PowerUpInterval: 15,
		ScoreMultiplier: 1.0,
		StartLength:     3,
		FoodTiers:       testTiers(),
		PowerUps:        testPowerUpSpecs(),
		MagnetMin:       2,
		MagnetMax:       8,
	}
}

func classicRules() *ModeRules {
	return &ModeRules{ID: "classic", Title: "Classic", WallCollision: true}
}

func newTestEngine(t *testing.T, rules *ModeRules, seed int64) *Engine {
	t.Helper()
	eng := New(Grid{Width: 20, Height: 15}, seed)
	if err := eng.Configure(rules, testEngineConfig()); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	return eng
}

// tick advances exactly one resolved tick at the base cadence.
func tick(e *Engine) Outcome {
	return e.Advance(0.1)
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and inputs produce identical snapshots
	e1 := newTestEngine(t, classicRules(), 12345)
	e2 := newTestEngine(t, classicRules(), 12345)

	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 200; i++ {
		if i%17 == 0 {
			d := dirs[(i/17)%len(dirs)]
			e1.SetDirection(d)
			e2.SetDirection(d)
		}
		e1.Advance(0.033)
		e2.Advance(0.033)
		if e1.Terminal() {
			break
		}
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Tick != s2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", s1.Tick, s2.Tick)
	}
	if s1.Score != s2.Score {
		t.Errorf("Score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Dir != s2.Dir {
		t.Errorf("Direction mismatch: %v vs %v", s1.Dir, s2.Dir)
	}
	if len(s1.Body) != len(s2.Body) {
		t.Fatalf("Body length mismatch: %d vs %d", len(s1.Body), len(s2.Body))
	}
	for i := range s1.Body {
		if s1.Body[i] != s2.Body[i] {
			t.Errorf("Body segment %d mismatch: %v vs %v", i, s1.Body[i], s2.Body[i])
		}
	}
	if s1.Food.Pos != s2.Food.Pos || s1.Food.Tier != s2.Food.Tier {
		t.Errorf("Food mismatch: %+v vs %+v", s1.Food, s2.Food)
	}
}

func TestEatGrowsOnFollowingTick(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)

	head := eng.snake.Head()
	eng.food = Food{Pos: Point{head.X + 1, head.Y}, Tier: FoodCommon, Value: 10, Active: true}

	out := tick(eng)
	if !out.AteFood {
		t.Fatal("Expected the food to be eaten")
	}
	if out.ScoreDelta != 10 {
		t.Errorf("ScoreDelta = %d, want 10", out.ScoreDelta)
	}
	if eng.snake.Len() != 3 {
		t.Errorf("Length on the eat tick = %d, want 3", eng.snake.Len())
	}

	tick(eng)
	if eng.snake.Len() != 4 {
		t.Errorf("Length on the following tick = %d, want 4", eng.snake.Len())
	}
}

func TestDoublePointsApplied(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.effects.Activate(EffectDoublePoints, 7, 2.0)

	head := eng.snake.Head()
	eng.food = Food{Pos: Point{head.X + 1, head.Y}, Tier: FoodCommon, Value: 10, Active: true}

	out := tick(eng)
	if out.ScoreDelta != 20 {
		t.Errorf("ScoreDelta with double points = %d, want 20", out.ScoreDelta)
	}
	if eng.Score() != 20 {
		t.Errorf("Score = %d, want 20", eng.Score())
	}
}

func TestSpeedBoostShortensInterval(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.effects.Activate(EffectSpeedBoost, 5, 1.5)

	// Base delay 0.1, boosted delay ~0.0667
	out := eng.Advance(0.07)
	if !out.Ticked {
		t.Error("Boosted engine should tick at 0.07s")
	}

	eng2 := newTestEngine(t, classicRules(), 1)
	out = eng2.Advance(0.07)
	if out.Ticked {
		t.Error("Unboosted engine should not tick at 0.07s")
	}
}

func TestWallCollisionTerminal(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{19, 5}, 3, DirRight)
	eng.pendingDir = DirRight

	out := tick(eng)
	if !out.Terminal || out.Reason != ReasonWall {
		t.Fatalf("Outcome = %+v, want terminal wall", out)
	}
	if eng.snake.Head() != (Point{19, 5}) {
		t.Errorf("Head moved off-grid to %v", eng.snake.Head())
	}

	// Terminal engines ignore further time
	if out := eng.Advance(1.0); out.Ticked {
		t.Error("Advance after terminal should be a no-op")
	}
}

func TestWrapWithoutWallCollision(t *testing.T) {
	rules := &ModeRules{ID: "classic", WallCollision: false}
	eng := newTestEngine(t, rules, 1)
	eng.snake = NewSnake(Point{19, 5}, 3, DirRight)
	eng.pendingDir = DirRight

	out := tick(eng)
	if out.Terminal {
		t.Fatal("Wrapping board should not end on the boundary")
	}
	if eng.snake.Head() != (Point{0, 5}) {
		t.Errorf("Head at %v, want wrapped (0,5)", eng.snake.Head())
	}
}

func TestGhostWrapsDeadlyBoundary(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{19, 5}, 3, DirRight)
	eng.pendingDir = DirRight
	eng.effects.Activate(EffectGhost, 10, 0)

	out := tick(eng)
	if out.Terminal {
		t.Fatal("Ghost should bypass boundary death")
	}
	if eng.snake.Head() != (Point{0, 5}) {
		t.Errorf("Head at %v, want wrapped (0,5)", eng.snake.Head())
	}
}

func TestSelfCollisionTerminal(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = &Snake{
		body: []Point{{5, 5}, {4, 5}, {4, 4}, {5, 4}, {6, 4}},
		dir:  DirRight,
	}
	eng.pendingDir = DirUp

	out := tick(eng)
	if !out.Terminal || out.Reason != ReasonSelf {
		t.Fatalf("Outcome = %+v, want terminal self", out)
	}
}

func TestGhostBypassesSelfCollision(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = &Snake{
		body: []Point{{5, 5}, {4, 5}, {4, 4}, {5, 4}, {6, 4}},
		dir:  DirRight,
	}
	eng.pendingDir = DirUp
	eng.effects.Activate(EffectGhost, 10, 0)

	out := tick(eng)
	if out.Terminal {
		t.Error("Ghost should pass through the body")
	}
}

func TestObstacleTerminal(t *testing.T) {
	rules := classicRules()
	rules.Obstacles = map[Point]bool{}
	eng := newTestEngine(t, rules, 1)

	head := eng.snake.Head()
	rules.Obstacles[Point{head.X + 1, head.Y}] = true

	out := tick(eng)
	if !out.Terminal || out.Reason != ReasonObstacle {
		t.Fatalf("Outcome = %+v, want terminal obstacle", out)
	}
}

func TestNoDeathNeverTerminal(t *testing.T) {
	rules := &ModeRules{ID: "zen", NoDeath: true}
	eng := newTestEngine(t, rules, 99)

	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			eng.SetDirection(dirs[rng.Intn(len(dirs))])
		}
		out := tick(eng)
		if out.Terminal {
			t.Fatalf("Terminal outcome %v on tick %d in no-death mode", out.Reason, i)
		}
	}
}

func TestCountdownTerminal(t *testing.T) {
	rules := &ModeRules{ID: "timetrial", TimeLimit: 1.0}
	eng := newTestEngine(t, rules, 1)

	var out Outcome
	for i := 0; i < 15 && !eng.Terminal(); i++ {
		out = tick(eng)
	}

	if !out.Terminal || out.Reason != ReasonTimeUp {
		t.Fatalf("Outcome = %+v, want terminal time_up", out)
	}
	if rem := eng.Snapshot().TimeRemaining; rem != 0 {
		t.Errorf("TimeRemaining = %v after expiry, want 0", rem)
	}
}

func TestPortalTeleport(t *testing.T) {
	rules := classicRules()
	rules.Portals = []PortalPair{{A: Point{11, 7}, B: Point{3, 3}}}
	eng := newTestEngine(t, rules, 1)
	eng.snake = NewSnake(Point{10, 7}, 3, DirRight)
	eng.pendingDir = DirRight

	out := tick(eng)
	if !out.Teleported {
		t.Fatal("Expected a teleport")
	}
	if eng.snake.Head() != (Point{3, 3}) {
		t.Errorf("Head at %v, want the paired endpoint (3,3)", eng.snake.Head())
	}
	if eng.snake.Len() != 3 {
		t.Errorf("Teleport changed length to %d", eng.snake.Len())
	}
}

func TestShrinkFiresOnce(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{12, 7}, 10, DirRight)
	eng.pendingDir = DirRight
	eng.powerups.current = &PowerUp{Type: EffectShrink, Pos: Point{13, 7}}

	out := tick(eng)
	if !out.PowerUpPicked || out.PowerUpType != EffectShrink {
		t.Fatalf("Outcome = %+v, want shrink pickup", out)
	}
	if eng.snake.Len() != 5 {
		t.Errorf("Length after shrink = %d, want 5", eng.snake.Len())
	}
	eff := eng.effects.Get(EffectShrink)
	if eff == nil || !eff.Consumed {
		t.Fatal("Shrink effect missing or not marked consumed")
	}

	// A second shrink while the first is still active refreshes the timer
	// but must not halve the body again.
	eng.powerups.current = &PowerUp{Type: EffectShrink, Pos: Point{14, 7}}
	tick(eng)
	if eng.snake.Len() != 5 {
		t.Errorf("Length after refreshed shrink = %d, want 5", eng.snake.Len())
	}
}

func TestShrinkFloorOnShortSnake(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{12, 7}, 5, DirRight)
	eng.pendingDir = DirRight
	eng.powerups.current = &PowerUp{Type: EffectShrink, Pos: Point{13, 7}}

	out := tick(eng)
	if !out.PowerUpPicked || out.PowerUpType != EffectShrink {
		t.Fatalf("Outcome = %+v, want shrink pickup", out)
	}
	if eng.snake.Len() != 3 {
		t.Errorf("Length after shrink on a 5-long snake = %d, want 3", eng.snake.Len())
	}
}

func TestShrinkAtFloorIsNoOp(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{12, 7}, 3, DirRight)
	eng.pendingDir = DirRight
	eng.powerups.current = &PowerUp{Type: EffectShrink, Pos: Point{13, 7}}

	tick(eng)
	if eng.snake.Len() != 3 {
		t.Errorf("Length after shrink at the floor = %d, want 3", eng.snake.Len())
	}
}

func TestMagnetPullsFood(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{10, 7}, 3, DirRight)
	eng.pendingDir = DirRight
	eng.effects.Activate(EffectMagnet, 10, 0)
	eng.food = Food{Pos: Point{15, 7}, Tier: FoodCommon, Value: 10, Active: true}

	tick(eng)
	if eng.food.Pos != (Point{14, 7}) {
		t.Errorf("Food at %v, want pulled to (14,7)", eng.food.Pos)
	}
}

func TestMagnetRespectsBand(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	eng.snake = NewSnake(Point{10, 7}, 3, DirRight)
	eng.pendingDir = DirDown // Keep the head off the food's row
	eng.effects.Activate(EffectMagnet, 10, 0)

	// Distance 2 is at the inner bound: no pull
	eng.food = Food{Pos: Point{12, 7}, Tier: FoodCommon, Value: 10, Active: true}
	tick(eng)
	if eng.food.Pos != (Point{12, 7}) {
		t.Errorf("Food inside the inner bound moved to %v", eng.food.Pos)
	}

	// Distance 8 is at the outer bound: no pull
	eng.food.Pos = Point{2, 7}
	tick(eng)
	if eng.food.Pos != (Point{2, 7}) {
		t.Errorf("Food outside the outer bound moved to %v", eng.food.Pos)
	}
}

func TestReversalIgnored(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)

	eng.SetDirection(DirLeft) // Opposite of the initial heading
	if eng.pendingDir != DirRight {
		t.Errorf("pendingDir = %v after reversal attempt, want right", eng.pendingDir)
	}

	eng.SetDirection(DirUp)
	if eng.pendingDir != DirUp {
		t.Errorf("pendingDir = %v, want up", eng.pendingDir)
	}
}

func TestConfigureMidEpisodeRejected(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	tick(eng)

	next := testEngineConfig()
	next.MoveDelay = 0.2
	if err := eng.Configure(classicRules(), next); err == nil {
		t.Fatal("Configure mid-episode should be rejected")
	}
	if eng.cfg.MoveDelay != 0.1 {
		t.Errorf("MoveDelay = %v after rejected configure, want previous 0.1", eng.cfg.MoveDelay)
	}
}

func TestConfigureValidation(t *testing.T) {
	eng := New(Grid{Width: 20, Height: 15}, 1)

	bad := testEngineConfig()
	bad.MoveDelay = 0
	if err := eng.Configure(classicRules(), bad); err == nil {
		t.Error("Zero move delay should be rejected")
	}

	bad = testEngineConfig()
	bad.FoodTiers = nil
	if err := eng.Configure(classicRules(), bad); err == nil {
		t.Error("Empty food table should be rejected")
	}

	if err := eng.Configure(nil, testEngineConfig()); err == nil {
		t.Error("Nil rules should be rejected")
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	rules := classicRules()
	rules.Obstacles = map[Point]bool{{3, 3}: true, {4, 3}: true}
	eng := newTestEngine(t, rules, 77)

	rng := rand.New(rand.NewSource(5))
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 300 && !eng.Terminal(); i++ {
		if rng.Intn(3) == 0 {
			eng.SetDirection(dirs[rng.Intn(len(dirs))])
		}
		tick(eng)

		if !eng.food.Active {
			continue
		}
		p := eng.food.Pos
		if !eng.grid.Contains(p) {
			t.Fatalf("Food out of bounds at %v", p)
		}
		if rules.IsBlocked(p) {
			t.Fatalf("Food on blocked cell %v", p)
		}
		if eng.snake.Occupies(p) {
			t.Fatalf("Food on snake body at %v", p)
		}
	}
}

func TestTinyBoardEpisode(t *testing.T) {
	// Full eat-grow-respawn cycle on a 5x5 board, end to end.
	eng := New(Grid{Width: 5, Height: 5}, 9)
	if err := eng.Configure(classicRules(), testEngineConfig()); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	wantBody := []Point{{2, 2}, {1, 2}, {0, 2}}
	body := eng.snake.Body()
	if len(body) != len(wantBody) {
		t.Fatalf("Initial body length = %d, want %d", len(body), len(wantBody))
	}
	for i := range wantBody {
		if body[i] != wantBody[i] {
			t.Fatalf("Initial body = %v, want %v", body, wantBody)
		}
	}

	eng.food = Food{Pos: Point{3, 2}, Tier: FoodCommon, Value: 10, Active: true}

	out := tick(eng)
	if !out.AteFood || out.ScoreDelta != 10 {
		t.Fatalf("Eat tick outcome = %+v, want AteFood with ScoreDelta 10", out)
	}
	if eng.snake.Len() != 3 {
		t.Errorf("Length on the eat tick = %d, want 3", eng.snake.Len())
	}
	if !eng.food.Active {
		t.Fatal("Food did not respawn on a board with free cells")
	}
	for _, p := range []Point{{3, 2}, {2, 2}, {1, 2}} {
		if eng.food.Pos == p {
			t.Fatalf("Food respawned on an occupied cell %v", p)
		}
	}

	tick(eng)
	if eng.snake.Len() != 4 {
		t.Errorf("Length on the tick after eating = %d, want 4", eng.snake.Len())
	}
}

func TestPlaceSnakeAvoidsTerrain(t *testing.T) {
	// Center cell blocked, so placement must move to a validated row.
	rules := classicRules()
	rules.Obstacles = map[Point]bool{{10, 7}: true}
	eng := newTestEngine(t, rules, 21)

	for _, p := range eng.snake.Body() {
		if !eng.grid.Contains(p) {
			t.Fatalf("Body segment %v off the grid", p)
		}
		if rules.IsBlocked(p) {
			t.Fatalf("Body segment %v on an obstacle", p)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)
	tick(eng)

	snap := eng.Snapshot()
	if len(snap.Body) == 0 {
		t.Fatal("Empty snapshot body")
	}
	snap.Body[0] = Point{-99, -99}

	if eng.snake.Head() == (Point{-99, -99}) {
		t.Error("Mutating the snapshot changed the live snake")
	}
}

func TestAdvanceBelowInterval(t *testing.T) {
	eng := newTestEngine(t, classicRules(), 1)

	out := eng.Advance(0.05)
	if out.Ticked {
		t.Error("Half the interval should not tick")
	}
	out = eng.Advance(0.06)
	if !out.Ticked {
		t.Error("Accumulated time past the interval should tick")
	}
	if eng.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", eng.Ticks())
	}
}
