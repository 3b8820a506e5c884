package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 9x9 grid of 2-wide cells drawn inside a border at (3, 2)
	grid := NewRect(4, 3, 18, 9)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first cell", 4, 3, true},
		{"second column of first cell", 5, 3, true},
		{"last cell", 21, 11, true},
		{"left border", 3, 5, false},
		{"right border", 22, 5, false},
		{"top border", 10, 2, false},
		{"bottom border", 10, 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEmptyContainsNothing(t *testing.T) {
	for _, r := range []Rect{{}, NewRect(5, 5, 0, 3), NewRect(5, 5, 3, 0)} {
		if r.Contains(r.X, r.Y) {
			t.Errorf("%+v should contain no points", r)
		}
	}
}

func TestRectEdges(t *testing.T) {
	tests := []struct {
		r                Rect
		right, bottom    int
		centerX, centerY int
	}{
		{NewRect(3, 2, 20, 11), 23, 13, 13, 7},
		{NewRect(0, 0, 1, 1), 1, 1, 0, 0},
		{NewRect(-4, -2, 8, 4), 4, 2, 0, 0},
	}

	for _, tc := range tests {
		if tc.r.Right() != tc.right || tc.r.Bottom() != tc.bottom {
			t.Errorf("%+v edges = (%d, %d), expected (%d, %d)", tc.r, tc.r.Right(), tc.r.Bottom(), tc.right, tc.bottom)
		}
		if cx, cy := tc.r.Center(); cx != tc.centerX || cy != tc.centerY {
			t.Errorf("%+v Center() = (%d, %d), expected (%d, %d)", tc.r, cx, cy, tc.centerX, tc.centerY)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name                  string
		val, lo, hi, expected int
	}{
		{"inside board", 4, 0, 8, 4},
		{"above first row", -1, 0, 8, 0},
		{"past last column", 9, 0, 8, 8},
		{"at lo", 0, 0, 8, 0},
		{"at hi", 8, 0, 8, 8},
		{"single cell board", 3, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}
