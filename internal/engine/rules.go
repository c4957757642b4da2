package engine

// PortalPair is two grid cells that teleport the snake head to each other.
type PortalPair struct {
	A, B Point
}

// ModeRules is the per-mode static configuration: terrain sets generated
// once when the mode is selected, the collision flags, and an optional
// countdown. The terrain sets are read-only after generation; only the
// countdown mutates, and only through TickCountdown.
type ModeRules struct {
	ID    string
	Title string

	// WallCollision enables boundary death. Disabled boards wrap.
	WallCollision bool
	// NoDeath permanently suppresses every terminal collision.
	NoDeath bool

	Obstacles map[Point]bool
	MazeWalls map[Point]bool
	Portals   []PortalPair

	// TimeLimit is the episode budget in seconds; 0 means untimed.
	TimeLimit float64

	remaining float64
}

// ResetCountdown restores the full time budget for a new episode.
func (r *ModeRules) ResetCountdown() {
	r.remaining = r.TimeLimit
}

// TimeRemaining returns the seconds left on the countdown, 0 for untimed
// modes.
func (r *ModeRules) TimeRemaining() float64 {
	return r.remaining
}

// TickCountdown decrements the countdown by dt and reports whether the time
// budget has expired. Untimed modes never expire.
func (r *ModeRules) TickCountdown(dt float64) bool {
	if r.TimeLimit <= 0 {
		return false
	}
	r.remaining -= dt
	if r.remaining <= 0 {
		r.remaining = 0
		return true
	}
	return false
}

// IsBlocked reports whether p is occupied by an obstacle or a maze wall.
func (r *ModeRules) IsBlocked(p Point) bool {
	return r.Obstacles[p] || r.MazeWalls[p]
}

// PortalExit returns the paired endpoint for a portal cell. Teleport is
// symmetric: entering either endpoint emits the other.
func (r *ModeRules) PortalExit(p Point) (Point, bool) {
	for _, pair := range r.Portals {
		if p == pair.A {
			return pair.B, true
		}
		if p == pair.B {
			return pair.A, true
		}
	}
	return Point{}, false
}

// IsPortal reports whether p is a portal endpoint.
func (r *ModeRules) IsPortal(p Point) bool {
	_, ok := r.PortalExit(p)
	return ok
}

// IsValidSpawn combines all static blockers with the snake body: food and
// power-ups may never appear on the snake, an obstacle, a maze wall or a
// portal endpoint.
func (r *ModeRules) IsValidSpawn(p Point, body []Point) bool {
	if r.IsBlocked(p) || r.IsPortal(p) {
		return false
	}
	for _, seg := range body {
		if seg == p {
			return false
		}
	}
	return true
}
