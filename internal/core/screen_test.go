package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"board sized", 80, 24, 80, 24},
		{"empty", 0, 0, 0, 0},
		{"negative clamps to zero", -3, -1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.wantW || s.Height() != tc.wantH {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.wantW, tc.wantH)
			}
			for y, ny := 0, s.Height(); y < ny; y++ {
				for x, nx := 0, s.Width(); x < nx; x++ {
					if c := s.GetCell(x, y); c != blankCell {
						t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestScreenSetColorAndBounds(t *testing.T) {
	s := NewScreen(9, 9)
	s.SetColor(4, 4, '3', ColorRed)

	if c := s.GetCell(4, 4); c.Rune != '3' || c.Color != ColorRed {
		t.Errorf("GetCell(4, 4) = %+v, expected red '3'", c)
	}

	// Set drops an earlier color
	s.Set(4, 4, 'F')
	if c := s.GetCell(4, 4); c.Rune != 'F' || c.Color != ColorDefault {
		t.Errorf("Set should write an uncolored cell, got %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {9, 0}, {0, -1}, {0, 9}} {
		s.SetColor(p[0], p[1], '*', ColorNavy)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("out of bounds GetCell%v = %+v, expected blank", p, c)
		}
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawTextColor(0, 1, "1234", ColorBlue)

	s.Fill('#')
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorDefault {
				t.Fatalf("Fill should leave uncolored '#', got %+v at (%d, %d)", c, x, y)
			}
		}
	}

	s.SetColor(2, 2, '*', ColorDarkRed)
	s.Clear()
	if s.String() != "    \n    \n    " {
		t.Errorf("Clear should blank the screen, got %q", s.String())
	}
	if c := s.GetCell(2, 2); c != blankCell {
		t.Errorf("Clear should reset colors, got %+v", c)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		color Color
		want  string
	}{
		{"ascii", 1, "12", ColorBlue, " 12       "},
		{"clipped right", 8, "999", ColorRed, "        99"},
		{"clipped left", -1, "ok", ColorGreen, "k         "},
		{"multibyte runes take one cell", 0, "⚑·⚑", ColorOrange, "⚑·⚑       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColor(tc.x, 0, tc.text, tc.color)

			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
			for x, r := range []rune(tc.want) {
				want := ColorDefault
				if r != ' ' {
					want = tc.color
				}
				if c := s.GetCell(x, 0); c.Color != want {
					t.Errorf("color at %d = %v, expected %v", x, c.Color, want)
				}
			}
		})
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "★ WIN ★")

	if got := s.Row(0); got != "  ★ WIN ★  " {
		t.Errorf("Row(0) = %q, expected the title centered by rune count", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '▒')

	want := "      \n ▒▒▒  \n ▒▒▒  \n      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColor(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐ ",
		"│   │ ",
		"│   │ ",
		"└───┘ ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}

	for _, p := range [][2]int{{0, 0}, {2, 0}, {4, 3}, {0, 2}, {4, 1}} {
		if c := s.GetCell(p[0], p[1]); c.Color != ColorGray {
			t.Errorf("border cell %v color = %v, expected gray", p, c.Color)
		}
	}
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("box interior should stay blank, got %+v", c)
	}

	// DrawBox is the uncolored form
	s.DrawBox(NewRect(0, 0, 5, 4))
	if c := s.GetCell(0, 0); c.Rune != '┌' || c.Color != ColorDefault {
		t.Errorf("DrawBox corner = %+v, expected uncolored '┌'", c)
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 4), NewRect(0, 0, 4, 1)} {
		s := NewScreen(5, 5)
		s.DrawBoxColor(r, ColorRed)
		if strings.TrimSpace(s.String()) != "" {
			t.Errorf("box %+v should draw nothing, got %q", r, s.String())
		}
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "12*", ColorBlue)
	s.SetColor(2, 0, '*', ColorDarkRed)
	s.DrawText(0, 9, "lost")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "12*" {
		t.Errorf("Row(0) = %q, expected %q", got, "12*")
	}
	if c := s.GetCell(2, 0); c.Color != ColorDarkRed {
		t.Errorf("resize should keep colors, got %v", c.Color)
	}

	s.Resize(5, 3)
	if got := s.Row(0); got != "12*  " {
		t.Errorf("enlarging should keep content and pad with blanks, got %q", got)
	}
	if got := s.Row(2); got != "     " {
		t.Errorf("rows cut by shrinking should come back blank, got %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to zero, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "flag")

	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
	if got := s.Row(1); got != "flag" {
		t.Errorf("Row(1) = %q, expected %q", got, "flag")
	}
}
