package core

import (
	"strings"
	"testing"
)

// row reads back one screen row as text.
func row(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      " {
		t.Errorf("String() = %q, expected blank rows", got)
	}

	neg := NewScreen(-3, -1)
	if neg.Width() != 0 || neg.Height() != 0 || neg.String() != "" {
		t.Errorf("negative sizes should give an empty screen")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "2048", ColorOrange)

	if c := s.GetCell(1, 1); c.Rune != '2' || c.Color != ColorOrange {
		t.Errorf("GetCell(1, 1) = %+v, expected '2' in orange", c)
	}

	s.DrawText(1, 1, "x")
	if c := s.GetCell(1, 1); c.Rune != 'x' || c.Color != ColorDefault {
		t.Errorf("DrawText should reset the cell color, got %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("out of bounds GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blank {
		t.Errorf("Clear should drop runes and colors, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "abc", " abc  "},
		{"clipped right", 4, "abc", "    ab"},
		{"clipped left", -2, "abc", "c     "},
		{"multibyte", 0, "┌─┐", "┌─┐   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := row(s, 0); got != tc.want {
				t.Errorf("row = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextCentered(0, "Hi")

	if got := row(s, 0); got != "   Hi   " {
		t.Errorf("row = %q, expected centered text", got)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(6, 4)
	for y := 0; y < 4; y++ {
		s.DrawText(0, y, "######")
	}

	box := NewRect(0, 0, 6, 4)
	s.DrawRect(box, ' ')
	s.DrawBoxColored(box, ColorYellow)

	want := []string{"┌────┐", "│    │", "│    │", "└────┘"}
	for y, w := range want {
		if got := row(s, y); got != w {
			t.Errorf("row %d = %q, expected %q", y, got, w)
		}
	}
	if c := s.GetCell(5, 2); c.Color != ColorYellow {
		t.Errorf("right edge color = %v, expected yellow", c.Color)
	}
	if c := s.GetCell(2, 2); c.Color != ColorDefault {
		t.Errorf("interior color = %v, expected default", c.Color)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(4, 2)
	if got := row(s, 0); got != "abcd" {
		t.Errorf("same-size Resize should keep content, row = %q", got)
	}

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "   \n   \n   " {
		t.Errorf("String() = %q, expected a cleared screen", got)
	}
}
