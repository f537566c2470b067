package mathx

import "golang.org/x/exp/constraints"

// Clamp returns f limited to [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// ClampMax returns the smaller of x and limit.
func ClampMax[T constraints.Ordered](x, limit T) T {
	if x < limit {
		return x
	}
	return limit
}

// ClampMin returns the larger of x and limit.
func ClampMin[T constraints.Ordered](x, limit T) T {
	if x > limit {
		return x
	}
	return limit
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
