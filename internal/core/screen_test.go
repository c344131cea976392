package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", s.Width())
	}
	if s.Height() != 4 {
		t.Errorf("Height() = %d, expected 4", s.Height())
	}

	blank := strings.Repeat(" ", 12)
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != blank {
			t.Errorf("New screen row %d = %q, expected all spaces", y, s.Row(y))
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetCell(3, 4, '*', ColorBrightRed)
	cell := s.GetCell(3, 4)
	if cell.Rune != '*' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorBrightRed", cell.Color)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(6, 3)

	// Writes outside the screen are ignored, not panics
	s.Set(-1, 0, 'A')
	s.Set(6, 0, 'A')
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 3, 'A', ColorRed)

	for y := 0; y < 3; y++ {
		if s.Row(y) != "      " {
			t.Errorf("Out of bounds writes leaked into row %d: %q", y, s.Row(y))
		}
	}

	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	oob := s.GetCell(99, 0)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", oob)
	}
	if s.Row(-1) != "      " || s.Row(3) != "      " {
		t.Error("Out of bounds Row should be all spaces")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			s.SetCell(x, y, '#', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		if s.Row(y) != "        " {
			t.Errorf("After Clear, row %d = %q, expected spaces", y, s.Row(y))
		}
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset cell colors to default")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "Hello")
	if s.Row(1) != "  Hello   " {
		t.Errorf("Row(1) = %q, expected text at x=2", s.Row(1))
	}

	// Text running off the right edge is clipped
	s.DrawText(8, 0, "Hello")
	if s.Row(0) != "        He" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "Hi", ColorYellow)

	if s.GetCell(0, 0).Color != ColorYellow || s.GetCell(1, 0).Color != ColorYellow {
		t.Error("DrawTextColored should color every cell of the text")
	}
	if s.GetCell(2, 0).Color != ColorDefault {
		t.Error("DrawTextColored should not color cells past the text")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Row(1) != "    abc    " {
		t.Errorf("Row(1) = %q, expected centered text", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawRect(NewRect(2, 1, 3, 2), '#')

	want := []string{
		"        ",
		"  ###   ",
		"  ###   ",
		"        ",
		"        ",
	}
	for y, row := range want {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	want := []string{
		"        ",
		" ┌───┐  ",
		" │   │  ",
		" └───┘  ",
		"        ",
	}
	for y, row := range want {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '─')

	if s.Row(1) != "  ─────   " {
		t.Errorf("Row(1) = %q, expected a 5-cell line at x=2", s.Row(1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.SetCell(1, 1, '*', ColorBrightRed)
	s.DrawText(0, 5, "World")

	// Shrinking keeps the top-left region
	s.Resize(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Errorf("After resize, dimensions should be 7x3, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "Hello  " {
		t.Errorf("Row(0) = %q, expected preserved content", s.Row(0))
	}
	if s.GetCell(1, 1).Color != ColorBrightRed {
		t.Error("Resize should preserve cell colors")
	}

	// Growing keeps existing content and blanks the new cells
	s.Resize(12, 5)
	if s.Row(0) != "Hello       " {
		t.Errorf("Row(0) = %q, expected preserved content after growing", s.Row(0))
	}
	if s.Row(4) != strings.Repeat(" ", 12) {
		t.Errorf("Row(4) = %q, expected blank new row", s.Row(4))
	}
}
