package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(4, 2, 5, 6)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left cell", 4, 2, true},
		{"last cell", 8, 7, true},
		{"right edge is exclusive", 9, 2, false},
		{"bottom edge is exclusive", 4, 8, false},
		{"left of box", 3, 4, false},
		{"above box", 6, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(4, 2, 5, 6)

	if r.Right() != 9 || r.Bottom() != 8 {
		t.Errorf("edges = (%d, %d), want (9, 8)", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 6 || y != 5 {
		t.Errorf("Center() = (%d, %d), want (6, 5)", x, y)
	}
}

func TestRectExtend(t *testing.T) {
	r := NewRect(4, 2, 5, 6).Extend(2, 1)

	if r != NewRect(4, 0, 5, 9) {
		t.Errorf("Extend = %+v", r)
	}
	if !r.Contains(4, 0) || !r.Contains(4, 8) || r.Contains(4, 9) {
		t.Error("extended rows not covered")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{-1, 0, 5, 0},
		{0, 0, 5, 0},
		{3, 0, 5, 3},
		{5, 0, 5, 5},
		{9, 0, 5, 5},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
