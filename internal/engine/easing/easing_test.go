package easing

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		f, _ := ByName(name)
		t.Run(name, func(t *testing.T) {
			// Expo curves only approach their endpoints.
			tol := 1e-9
			if name == "inExpo" || name == "outExpo" || name == "inOutExpo" {
				tol = 0.01
			}
			if got := f(0, 10, 20, 2); math.Abs(got-10) > tol {
				t.Errorf("%s(0) = %v, expected 10", name, got)
			}
			if got := f(2, 10, 20, 2); math.Abs(got-30) > tol {
				t.Errorf("%s(d) = %v, expected 30", name, got)
			}
		})
	}
}

func TestTimeIsClamped(t *testing.T) {
	for _, name := range Names() {
		f, _ := ByName(name)
		t.Run(name, func(t *testing.T) {
			if got, want := f(-5, 1, 4, 1), f(0, 1, 4, 1); got != want {
				t.Errorf("%s(-5) = %v, expected %v", name, got, want)
			}
			if got, want := f(7, 1, 4, 1), f(1, 1, 4, 1); got != want {
				t.Errorf("%s(7) = %v, expected %v", name, got, want)
			}
		})
	}
}

func TestMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		f        Func
		expected float64
	}{
		{"linear", Linear, 50},
		{"inQuad", InQuad, 25},
		{"outQuad", OutQuad, 75},
		{"inOutQuad", InOutQuad, 50},
		{"inCubic", InCubic, 12.5},
		{"outCubic", OutCubic, 87.5},
		{"inOutSine", InOutSine, 50},
		{"inOutCirc", InOutCirc, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(0.5, 0, 100, 1); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("%s(0.5) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestByNameFallback(t *testing.T) {
	f, ok := ByName("bouncy")
	if ok {
		t.Error("ByName(bouncy) reported ok")
	}
	if got := f(0.5, 0, 10, 1); got != 5 {
		t.Errorf("fallback(0.5) = %v, expected linear 5", got)
	}
	if len(Names()) != 22 {
		t.Errorf("Names() has %d entries, expected 22", len(Names()))
	}
}
