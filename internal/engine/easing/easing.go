// Package easing implements the classic Penner easing curves.
//
// Every function has the signature f(t, b, c, d) where t is the current time,
// b the start value, c the change in value (end - start) and d the duration.
// t is clamped to [0, d] before evaluation. Callers must not pass d == 0.
package easing

import (
	"math"
	"sort"
)

// Func is an easing curve.
type Func func(t, b, c, d float64) float64

func clampTime(t, d float64) float64 {
	if t < 0 {
		return 0
	}
	if t > d {
		return d
	}
	return t
}

// Linear is simple linear tweening with no acceleration.
func Linear(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return c*t/d + b
}

// InQuad accelerates from zero velocity.
func InQuad(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return c*t*t + b
}

// OutQuad decelerates to zero velocity.
func OutQuad(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return -c*t*(t-2) + b
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func InCubic(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return c*t*t*t + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = clampTime(t, d)/d - 1
	return c*(t*t*t+1) + b
}

func InOutCubic(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func InQuart(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return c*t*t*t*t + b
}

func OutQuart(t, b, c, d float64) float64 {
	t = clampTime(t, d)/d - 1
	return -c*(t*t*t*t-1) + b
}

func InOutQuart(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func InQuint(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return c*t*t*t*t*t + b
}

func OutQuint(t, b, c, d float64) float64 {
	t = clampTime(t, d)/d - 1
	return c*(t*t*t*t*t+1) + b
}

func InOutQuint(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// InSine is a sinusoidal ease in.
func InSine(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func OutSine(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func InOutSine(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

// InExpo is an exponential ease in. It does not reach b exactly at t == 0.
func InExpo(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func OutExpo(t, b, c, d float64) float64 {
	t = clampTime(t, d)
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func InOutExpo(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

// InCirc is a circular ease in.
func InCirc(t, b, c, d float64) float64 {
	t = clampTime(t, d) / d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func OutCirc(t, b, c, d float64) float64 {
	t = clampTime(t, d)/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func InOutCirc(t, b, c, d float64) float64 {
	t = clampTime(t, d) / (d / 2)
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

var byName = map[string]Func{
	"linear":     Linear,
	"inQuad":     InQuad,
	"outQuad":    OutQuad,
	"inOutQuad":  InOutQuad,
	"inCubic":    InCubic,
	"outCubic":   OutCubic,
	"inOutCubic": InOutCubic,
	"inQuart":    InQuart,
	"outQuart":   OutQuart,
	"inOutQuart": InOutQuart,
	"inQuint":    InQuint,
	"outQuint":   OutQuint,
	"inOutQuint": InOutQuint,
	"inSine":     InSine,
	"outSine":    OutSine,
	"inOutSine":  InOutSine,
	"inExpo":     InExpo,
	"outExpo":    OutExpo,
	"inOutExpo":  InOutExpo,
	"inCirc":     InCirc,
	"outCirc":    OutCirc,
	"inOutCirc":  InOutCirc,
}

// ByName looks up a curve by its configuration name (e.g. "outCirc").
// Unknown names fall back to Linear and report ok == false.
func ByName(name string) (f Func, ok bool) {
	f, ok = byName[name]
	if !ok {
		return Linear, false
	}
	return f, true
}

// Names returns all known curve names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
