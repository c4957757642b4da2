package engine

// minSnakeLen is the floor below which the body never shrinks.
const minSnakeLen = 3

// Snake is the ordered body of the player: head at index 0, tail at the last
// index. Moves happen in two phases so the resolver can examine the board at
// the instant after head insertion and before tail removal:
//
//	Advance(newHead) prepends the head and latches whether the tail is kept.
//	CompleteMove() trims the tail unless growth was latched.
//
// Growth added between the two phases (eating food mid-tick) is consumed on
// the next move, so an eat tick leaves the length unchanged and the
// following tick grows the body by one.
type Snake struct {
	body          []Point
	dir           Direction
	growthPending int
	keepTail      bool
}

// NewSnake creates a snake of the given length with its head at start,
// facing dir, body trailing in the opposite direction.
func NewSnake(start Point, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Delta()
	body := make([]Point, length)
	for i := range body {
		body[i] = Point{X: start.X + back.X*i, Y: start.Y + back.Y*i}
	}
	return &Snake{body: body, dir: dir}
}

// Head returns the current head position.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the direction of the last committed move.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Advance prepends newHead and records the facing direction. If growth is
// pending, one unit is consumed and the tail is kept on CompleteMove.
// The caller is responsible for rejecting reversals before calling this.
func (s *Snake) Advance(newHead Point, dir Direction) {
	s.dir = dir
	s.body = append([]Point{newHead}, s.body...)
	if s.growthPending > 0 {
		s.growthPending--
		s.keepTail = true
	} else {
		s.keepTail = false
	}
}

// Relocate moves the head to p without touching the rest of the body.
// Used for portal teleports between Advance and CompleteMove.
func (s *Snake) Relocate(p Point) {
	s.body[0] = p
}

// CompleteMove removes the tail segment unless Advance latched growth.
func (s *Snake) CompleteMove() {
	if s.keepTail {
		return
	}
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow defers n tail removals, lengthening the snake over the next n moves.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growthPending += n
	}
}

// GrowthPending returns the number of deferred tail removals.
func (s *Snake) GrowthPending() int {
	return s.growthPending
}

// SelfCollides reports whether the head position appears elsewhere in the
// body. Meaningful between Advance and CompleteMove, when a head moved onto
// any pre-existing segment (the tail included) still overlaps it.
func (s *Snake) SelfCollides() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// ShrinkBy removes up to n segments from the tail end, never going below
// three segments. Returns the number of segments actually removed. The
// caller guards against re-application (the shrink effect marks itself
// consumed).
func (s *Snake) ShrinkBy(n int) int {
	if n <= 0 {
		return 0
	}
	keep := len(s.body) - n
	if keep < minSnakeLen {
		keep = minSnakeLen
	}
	if keep >= len(s.body) {
		return 0
	}
	removed := len(s.body) - keep
	s.body = s.body[:keep]
	return removed
}
