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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColored(1, 1, '●', ColorYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow ●", cell)
	}

	s.DrawTextColored(0, 0, "ab", ColorRed)
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("DrawTextColored should color every rune")
	}

	s.Clear()
	if s.GetCell(1, 1) != blankCell {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// Multi-byte runes advance one cell each
	s.DrawText(0, 2, "═█")
	if s.Get(1, 2) != '█' {
		t.Errorf("DrawText with multi-byte runes: got %q at (1, 2)", s.Get(1, 2))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != '#' || cell.Color != ColorGreen) {
				t.Errorf("Expected green '#' at (%d, %d), got %+v", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("Expected space at (%d, %d), got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "A  " || lines[1] != "  B" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(1) != "  B" {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  B")
	}
	if s.Row(5) != "   " {
		t.Errorf("Row(5) should be blank, got %q", s.Row(5))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')

	s.Resize(10, 3)
	if s.Width() != 10 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d, expected 10x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
	s.Set(9, 2, 'Z')
	if s.Get(9, 2) != 'Z' {
		t.Error("Resized screen should accept writes in the new bounds")
	}
}
