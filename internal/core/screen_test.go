package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetStyled(t *testing.T) {
	s := NewScreen(10, 10)
	st := Style{FG: ColorRed, BG: ColorDarkGreen}

	s.SetStyled(5, 5, 'X', st)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Style != st {
		t.Errorf("GetCell(5, 5) = %+v, expected X with %+v", cell, st)
	}

	// Set keeps the existing style
	s.Set(5, 5, 'Y')
	if s.GetCell(5, 5).Style != st {
		t.Error("Set should not change the cell style")
	}

	// SetFG keeps the background
	s.SetFG(5, 5, 'Z', ColorYellow)
	cell = s.GetCell(5, 5)
	if cell.Style.BG != ColorDarkGreen || cell.Style.FG != ColorYellow {
		t.Errorf("SetFG produced %+v", cell.Style)
	}

	// Out of bounds should be silent
	s.SetStyled(-1, 0, 'A', st)
	s.SetStyled(100, 0, 'A', st)
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("Row(1) = %q, expected Hello at column 2", s.Row(1))
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "•ab")

	if s.Get(1, 0) != 'a' {
		t.Errorf("multibyte rune should occupy one cell, got %q at 1", s.Get(1, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), Style{})

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}

func TestInputFrameMovesKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionRestart)
	f.Set(ActionUp)

	if len(f.Moves) != 3 {
		t.Fatalf("expected 3 queued moves, got %d", len(f.Moves))
	}
	if f.Moves[0] != ActionUp || f.Moves[1] != ActionLeft || f.Moves[2] != ActionUp {
		t.Errorf("moves out of order: %v", f.Moves)
	}
	if !f.Has(ActionRestart) {
		t.Error("restart should be recorded")
	}

	f.Clear()
	if len(f.Moves) != 0 || f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
}
