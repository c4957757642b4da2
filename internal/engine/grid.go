// Package engine implements the snake simulation: a discrete-time world of
// a growing snake, spawned food, transient power-ups and mode terrain,
// resolved tick by tick into a deterministic next state.
//
// The package is pure logic: no Bubble Tea, no clocks, no I/O. Time is
// threaded in explicitly as elapsed seconds, which keeps every run with the
// same seed and the same inputs bit-identical.
package engine

// Point represents a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the immutable coordinate space of the board. All positions are
// integer pairs in [0,Width) x [0,Height). Grid itself holds no state; it
// only provides bounds and wraparound arithmetic.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap reduces each axis of p modulo the corresponding dimension.
func (g Grid) Wrap(p Point) Point {
	p.X = ((p.X % g.Width) + g.Width) % g.Width
	p.Y = ((p.Y % g.Height) + g.Height) % g.Height
	return p
}

// Step moves one cell from p in direction d. With wrap enabled the result is
// reduced modulo the grid dimensions. Without wrap, leaving the bounds
// returns outOfBounds=true and p unmodified; the caller treats that as a
// terminal condition.
func (g Grid) Step(p Point, d Direction, wrap bool) (Point, bool) {
	delta := d.Delta()
	next := Point{X: p.X + delta.X, Y: p.Y + delta.Y}
	if g.Contains(next) {
		return next, false
	}
	if wrap {
		return g.Wrap(next), false
	}
	return p, true
}

// Chebyshev returns the Chebyshev (chessboard) distance between a and b.
func (g Grid) Chebyshev(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
