package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(30, 20)

	if s.Width() != 30 {
		t.Errorf("Width() = %d, expected 30", s.Width())
	}
	if s.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", s.Height())
	}

	// Check that it's initialized with default-colored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || !c.FG.IsDefault() || !c.BG.IsDefault() {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	s.SetCell(-1, -1, Cell{Rune: 'A'})

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', RGB(255, 0, 0))
	s.PaintBackground(NewRect(0, 0, 10, 10), RGB(0, 0, 255))

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenFillRectKeepsBackground(t *testing.T) {
	s := NewScreen(10, 10)
	bg := RGB(10, 80, 10)
	fg := RGB(200, 40, 40)

	s.PaintBackground(NewRect(0, 0, 10, 10), bg)
	s.FillRect(NewRect(2, 2, 3, 3), '#', fg)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '#' || c.FG != fg || c.BG != bg {
				t.Errorf("FillRect: unexpected cell %+v at (%d, %d)", c, x, y)
			}
		}
	}

	// Outside is untouched apart from the background
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.BG != bg || !c.FG.IsDefault() {
		t.Errorf("FillRect should not affect outside area, got %+v", c)
	}
}

func TestScreenFillRectClipsNegative(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(-3, -3, 5, 5), '#', RGB(1, 2, 3))

	if s.GetCell(0, 0).Rune != '#' || s.GetCell(1, 1).Rune != '#' {
		t.Error("FillRect should draw the visible part of a clipped rect")
	}
	if s.GetCell(2, 2).Rune != ' ' {
		t.Error("FillRect drew beyond the rect")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "◀▶x")

	if s.GetCell(0, 0).Rune != '◀' || s.GetCell(1, 0).Rune != '▶' || s.GetCell(2, 0).Rune != 'x' {
		t.Errorf("DrawText should advance one cell per rune, got %q", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, expected #ff8000", got)
	}
	if got := ColorDefault.Hex(); got != "" {
		t.Errorf("default Hex() = %q, expected empty", got)
	}
	if RGB(0, 0, 0).IsDefault() {
		t.Error("black should not be the default color")
	}
}
