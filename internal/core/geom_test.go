package core

import "testing"

func TestRectTouches(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"shared right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), true},
		{"shared corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 5, 5), true},
		{"gap", NewRect(0, 0, 10, 10), NewRect(11, 0, 5, 5), false},
		{"above", NewRect(0, 20, 10, 10), NewRect(0, 0, 10, 5), false},
		{"contained", NewRect(0, 0, 100, 100), NewRect(40, 40, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Touches(tt.b); got != tt.want {
				t.Errorf("Touches() = %v, expected %v", got, tt.want)
			}
			if got := tt.b.Touches(tt.a); got != tt.want {
				t.Errorf("Touches() reversed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 6, 10, 10), NewRect(5, 6, 5, 4)},
		{"inside", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), NewRect(10, 0, 0, 5)},
		{"apart", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), NewRect(20, 20, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %+v, expected %+v", got, tt.want)
			}
			if got.Empty() != (tt.want.W == 0 || tt.want.H == 0) {
				t.Errorf("Empty() = %v for %+v", got.Empty(), got)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 4, 4)
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{9, 12, false},
		{12, 15, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectTranslateCenter(t *testing.T) {
	r := NewRect(2, 4, 6, 8).Translate(10, -4)
	if r != NewRect(12, 0, 6, 8) {
		t.Errorf("Translate() = %+v, expected {12 0 6 8}", r)
	}
	if x, y := r.Center(); x != 15 || y != 4 {
		t.Errorf("Center() = (%d, %d), expected (15, 4)", x, y)
	}
	if r.Right() != 18 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 18/8", r.Right(), r.Bottom())
	}
}
