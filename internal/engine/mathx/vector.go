// Package mathx holds the small numeric toolkit shared by the engine:
// a generic 2D vector, clamping helpers, angle math and colour conversion.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type a Vector2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector2 is a 2D vector value.
type Vector2[T Number] struct {
	X, Y T
}

// Vec2f is the float vector used for world positions and velocities.
type Vec2f = Vector2[float64]

// Vec2i is the integer vector used for pixel positions.
type Vec2i = Vector2[int]

// Vec creates a vector from its components.
func Vec[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Add returns v+o.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// Div divides v by s. Division by zero yields the zero vector.
func (v Vector2[T]) Div(s T) Vector2[T] {
	if s == 0 {
		return Vector2[T]{}
	}
	return Vector2[T]{X: v.X / s, Y: v.Y / s}
}

// AddAssign adds o to v in place.
func (v *Vector2[T]) AddAssign(o Vector2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign subtracts o from v in place.
func (v *Vector2[T]) SubAssign(o Vector2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// Dot returns the dot product of v and o.
func (v Vector2[T]) Dot(o Vector2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns the squared length.
func (v Vector2[T]) LengthSq() float64 {
	x, y := float64(v.X), float64(v.Y)
	return x*x + y*y
}

// Length returns the euclidean length.
func (v Vector2[T]) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize returns v scaled to unit length. A zero vector is returned as is.
func (v Vector2[T]) Normalize() Vector2[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2[T]{X: T(float64(v.X) / l), Y: T(float64(v.Y) / l)}
}

// Float converts v to a float vector.
func (v Vector2[T]) Float() Vec2f {
	return Vec2f{X: float64(v.X), Y: float64(v.Y)}
}

// Int truncates a float vector to integer components.
func Int(v Vec2f) Vec2i {
	return Vec2i{X: int(v.X), Y: int(v.Y)}
}
