package engine

import "testing"

func TestNewSnakeBody(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)

	want := []Point{{5, 5}, {4, 5}, {3, 5}}
	body := s.Body()
	if len(body) != 3 {
		t.Fatalf("Expected length 3, got %d", len(body))
	}
	for i, p := range want {
		if body[i] != p {
			t.Errorf("Segment %d = %v, want %v", i, body[i], p)
		}
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)

	for i := 0; i < 10; i++ {
		s.Advance(Point{6 + i, 5}, DirRight)
		s.CompleteMove()
		if s.Len() != 3 {
			t.Fatalf("Length changed to %d after move %d", s.Len(), i)
		}
	}
	if s.Head() != (Point{15, 5}) {
		t.Errorf("Head at %v, want (15,5)", s.Head())
	}
}

func TestGrowthConsumedOnNextMove(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)

	// Growth added mid-tick (after Advance, before CompleteMove) does not
	// lengthen the current move.
	s.Advance(Point{6, 5}, DirRight)
	s.Grow(1)
	s.CompleteMove()
	if s.Len() != 3 {
		t.Errorf("Length after eat move = %d, want 3", s.Len())
	}
	if s.GrowthPending() != 1 {
		t.Errorf("GrowthPending = %d, want 1", s.GrowthPending())
	}

	// The following move keeps the tail.
	s.Advance(Point{7, 5}, DirRight)
	s.CompleteMove()
	if s.Len() != 4 {
		t.Errorf("Length after growth move = %d, want 4", s.Len())
	}
	if s.GrowthPending() != 0 {
		t.Errorf("GrowthPending = %d, want 0", s.GrowthPending())
	}
}

func TestGrowMultiple(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)
	s.Grow(3)

	for i := 0; i < 3; i++ {
		s.Advance(Point{6 + i, 5}, DirRight)
		s.CompleteMove()
	}
	if s.Len() != 6 {
		t.Errorf("Length after consuming 3 growth units = %d, want 6", s.Len())
	}
}

func TestSelfCollidesIncludesTail(t *testing.T) {
	// Closed loop: head about to enter the cell the tail still occupies.
	s := &Snake{
		body: []Point{{1, 1}, {0, 1}, {0, 0}, {1, 0}},
		dir:  DirRight,
	}

	s.Advance(Point{1, 0}, DirUp)
	if !s.SelfCollides() {
		t.Error("Head on the pre-trim tail cell should collide")
	}
}

func TestSelfCollidesFalseAfterTailVacates(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)
	s.Advance(Point{6, 5}, DirRight)
	if s.SelfCollides() {
		t.Error("Straight move should not self-collide")
	}
}

func TestShrinkBy(t *testing.T) {
	s := NewSnake(Point{20, 5}, 10, DirRight)

	removed := s.ShrinkBy(5)
	if removed != 5 {
		t.Errorf("ShrinkBy(5) removed %d, want 5", removed)
	}
	if s.Len() != 5 {
		t.Errorf("Length = %d, want 5", s.Len())
	}

	// Never below the minimum
	removed = s.ShrinkBy(10)
	if removed != 2 {
		t.Errorf("ShrinkBy(10) removed %d, want 2", removed)
	}
	if s.Len() != minSnakeLen {
		t.Errorf("Length = %d, want %d", s.Len(), minSnakeLen)
	}

	// Already at the floor
	if removed = s.ShrinkBy(1); removed != 0 {
		t.Errorf("ShrinkBy at minimum removed %d, want 0", removed)
	}
}

func TestRelocate(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)
	s.Advance(Point{6, 5}, DirRight)
	s.Relocate(Point{12, 8})
	s.CompleteMove()

	if s.Head() != (Point{12, 8}) {
		t.Errorf("Head at %v after relocate, want (12,8)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Length = %d after relocate, want 3", s.Len())
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(Point{5, 5}, 3, DirRight)

	if !s.Occupies(Point{4, 5}) {
		t.Error("Expected body cell to be occupied")
	}
	if s.Occupies(Point{6, 5}) {
		t.Error("Cell ahead of head should not be occupied")
	}
}
