package mathx

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(3.0, 4.0)
	b := Vec(1.0, -2.0)

	if got := a.Add(b); got != Vec(4.0, 2.0) {
		t.Errorf("Add() = %v, expected (4,2)", got)
	}
	if got := a.Sub(b); got != Vec(2.0, 6.0) {
		t.Errorf("Sub() = %v, expected (2,6)", got)
	}
	if got := a.Mul(2); got != Vec(6.0, 8.0) {
		t.Errorf("Mul() = %v, expected (6,8)", got)
	}
	if got := a.Div(2); got != Vec(1.5, 2.0) {
		t.Errorf("Div() = %v, expected (1.5,2)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, expected 5", got)
	}
}

func TestVectorInPlace(t *testing.T) {
	v := Vec(1, 1)
	v.AddAssign(Vec(2, 3))
	if v != Vec(3, 4) {
		t.Errorf("AddAssign() = %v, expected (3,4)", v)
	}
	v.SubAssign(Vec(3, 4))
	if v != (Vec2i{}) {
		t.Errorf("SubAssign() = %v, expected zero", v)
	}
}

func TestVectorDivByZero(t *testing.T) {
	if got := Vec(5, 5).Div(0); got != (Vec2i{}) {
		t.Errorf("Div(0) = %v, expected zero vector", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2f
		expected float64
	}{
		{"axis", Vec(10.0, 0.0), 1},
		{"diagonal", Vec(3.0, 4.0), 1},
		{"zero", Vec2f{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize().Length()
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Normalize().Length() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp() = %v, expected 3", got)
	}
	if got := Clamp(-1.5, 0, 3); got != 0 {
		t.Errorf("Clamp() = %v, expected 0", got)
	}
	if got := ClampMax(900, 700); got != 700 {
		t.Errorf("ClampMax() = %v, expected 700", got)
	}
	if got := ClampMin(-10, 0); got != 0 {
		t.Errorf("ClampMin() = %v, expected 0", got)
	}
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs() = %v, expected 7", got)
	}
}
