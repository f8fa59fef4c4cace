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
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 2, Cell{Rune: '#', Color: ColorSnake})
	got := s.GetCell(1, 2)
	if got.Rune != '#' || got.Color != ColorSnake {
		t.Errorf("GetCell(1, 2) = %+v, expected '#' in snake color", got)
	}

	// Set keeps the existing color
	s.Set(1, 2, '@')
	if c := s.GetCell(1, 2); c.Color != ColorSnake || c.Rune != '@' {
		t.Errorf("Set should keep color, got %+v", c)
	}

	if c := s.GetCell(9, 9); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Out of bounds GetCell should be a default blank, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(Cell{Rune: 'X', Color: ColorTreat})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorText)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorText {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), Cell{Rune: ' ', Color: ColorField})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Color != ColorField {
				t.Errorf("FillRect: expected field color at (%d, %d)", x, y)
			}
		}
	}

	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("FillRect should not affect outside area")
	}
	if s.GetCell(5, 5).Color != ColorDefault {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorText)
	s.DrawText(0, 1, "BBBBB", ColorText)
	s.DrawText(0, 2, "CCCCC", ColorText)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorText)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
