package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '@', ColorGreen)
	cell := s.GetCell(3, 4)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorGreen", cell.Color)
	}

	// Out of bounds GetCell returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", blank)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be blank default cells now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(0, 0, "abc", ColorCyan)

	for i := 0; i < 3; i++ {
		cell := s.GetCell(i, 0)
		if cell.Color != ColorCyan {
			t.Errorf("DrawTextColored: expected ColorCyan at (%d, 0), got %v", i, cell.Color)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars wide, so it should start at x=9
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered: expected \"Hi\" at x=9, row is %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	// Outside the rect should remain spaces
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(0, 0, 5, 4))

	if s.Get(0, 0) != '┌' {
		t.Errorf("Expected '┌' at top-left, got %q", s.Get(0, 0))
	}
	if s.Get(4, 0) != '┐' {
		t.Errorf("Expected '┐' at top-right, got %q", s.Get(4, 0))
	}
	if s.Get(0, 3) != '└' {
		t.Errorf("Expected '└' at bottom-left, got %q", s.Get(0, 3))
	}
	if s.Get(4, 3) != '┘' {
		t.Errorf("Expected '┘' at bottom-right, got %q", s.Get(4, 3))
	}
	if s.Get(2, 0) != '─' {
		t.Errorf("Expected '─' on top edge, got %q", s.Get(2, 0))
	}
	if s.Get(0, 2) != '│' {
		t.Errorf("Expected '│' on left edge, got %q", s.Get(0, 2))
	}
	// Interior should be untouched
	if s.Get(2, 2) != ' ' {
		t.Errorf("Expected box interior to be empty, got %q", s.Get(2, 2))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 3, 4, '=')

	for x := 2; x < 6; x++ {
		if s.Get(x, 3) != '=' {
			t.Errorf("DrawHLine: expected '=' at (%d, 3), got %q", x, 3)
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(6, 3) != ' ' {
		t.Error("DrawHLine should not draw past its length")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(8, 8, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("After Resize, got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	// Content inside the new bounds should survive
	if s.Get(2, 2) != 'A' {
		t.Errorf("Resize should preserve content, got %q at (2, 2)", s.Get(2, 2))
	}

	// Growing back should not resurrect clipped content
	s.Resize(10, 10)
	if s.Get(8, 8) != ' ' {
		t.Error("Content outside the shrunken bounds should be lost")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("Line 0 = %q, expected \"a  \"", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("Line 1 = %q, expected \"  b\"", lines[1])
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 1, "abcd")

	if s.Row(1) != "abcd" {
		t.Errorf("Row(1) = %q, expected \"abcd\"", s.Row(1))
	}
	// Out of bounds rows come back as blank
	if s.Row(-1) != "    " {
		t.Errorf("Row(-1) = %q, expected blank row", s.Row(-1))
	}
	if s.Row(5) != "    " {
		t.Errorf("Row(5) = %q, expected blank row", s.Row(5))
	}
}
