package interp

import (
	"testing"

	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

func TestSetBoundaryHold(t *testing.T) {
	s := NewSet().Add(0, 10, nil).Add(1, 20, nil)

	tests := []struct {
		name     string
		at       float64
		expected float64
	}{
		{"before first", -0.5, 10},
		{"at first", 0, 10},
		{"at last", 1, 20},
		{"after last", 1.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Value(tt.at); got != tt.expected {
				t.Errorf("Value(%v) = %v, expected %v", tt.at, got, tt.expected)
			}
		})
	}

	mid := s.Value(0.5)
	if mid <= 10 || mid >= 20 {
		t.Errorf("Value(0.5) = %v, expected strictly between 10 and 20", mid)
	}
}

func TestSetSortsKeyframes(t *testing.T) {
	s := NewSet().Add(1, 0, nil).Add(0, 100, nil).Add(0.5, 50, nil)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	if got := s.Value(0.25); got != 75 {
		t.Errorf("Value(0.25) = %v, expected 75", got)
	}
	if got := s.Value(0.75); got != 25 {
		t.Errorf("Value(0.75) = %v, expected 25", got)
	}
}

func TestSetUsesEndKeyframeCurve(t *testing.T) {
	s := NewSet().
		Add(0, 0, nil).
		Add(1, 100, easing.InQuad).
		Add(2, 0, easing.OutQuad)

	if got := s.Value(0.5); got != 25 {
		t.Errorf("Value(0.5) = %v, expected 25 from InQuad", got)
	}
	seg := s.Get(1.5)
	if seg.Start != 1 || seg.End != 2 || seg.From != 100 || seg.To != 0 {
		t.Errorf("Get(1.5) = %+v, expected segment [1,2] 100->0", seg)
	}
	if got := s.Value(1.5); got != 25 {
		t.Errorf("Value(1.5) = %v, expected 25 from OutQuad", got)
	}
}

func TestEmptySet(t *testing.T) {
	s := NewSet()
	if got := s.Value(0.3); got != 0 {
		t.Errorf("Value() on empty set = %v, expected 0", got)
	}
}

func TestColorSet(t *testing.T) {
	a := mathx.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := mathx.RGBA{R: 200, G: 100, B: 0, A: 55}
	s := NewColorSet().Add(0, a, nil).Add(1, b, nil)

	tests := []struct {
		name     string
		at       float64
		expected mathx.RGBA
	}{
		{"before", -1, a},
		{"start", 0, a},
		{"middle", 0.5, mathx.RGBA{R: 100, G: 100, B: 100, A: 155}},
		{"end", 1, b},
		{"after", 3, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Value(tt.at); got != tt.expected {
				t.Errorf("Value(%v) = %+v, expected %+v", tt.at, got, tt.expected)
			}
		})
	}
}
