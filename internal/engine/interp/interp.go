// Package interp provides keyframed value tracks evaluated with easing curves.
//
// A track holds (time, value, curve) keyframes sorted by time. Evaluating it
// at time t finds the first keyframe whose time exceeds t; that keyframe's
// value and curve form the end of the segment, and the keyframe before it
// (or the first keyframe) forms the start. Outside the keyed range the track
// holds its first or last value.
package interp

import (
	"math"
	"sort"

	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

type keyframe[V any] struct {
	time  float64
	value V
	curve easing.Func
}

// Segment is the pair of keyframes bracketing a query time.
type Segment[V any] struct {
	Start, End float64
	From, To   V
	Curve      easing.Func
}

// Duration returns End - Start.
func (s Segment[V]) Duration() float64 {
	return s.End - s.Start
}

type track[V any] struct {
	keys     []keyframe[V]
	minPoint float64
	maxPoint float64
}

func (tr *track[V]) add(t float64, v V, f easing.Func) {
	tr.keys = append(tr.keys, keyframe[V]{time: t, value: v, curve: f})
	sort.SliceStable(tr.keys, func(i, j int) bool {
		return tr.keys[i].time < tr.keys[j].time
	})
	if t < tr.minPoint {
		tr.minPoint = t
	}
	if t > tr.maxPoint {
		tr.maxPoint = t
	}
}

// segment never mutates the track, so concurrent readers are safe once the
// keyframes are built.
func (tr *track[V]) segment(t float64) Segment[V] {
	var seg Segment[V]
	if len(tr.keys) == 0 {
		seg.Curve = easing.Linear
		return seg
	}
	seg.Start, seg.End = tr.minPoint, tr.maxPoint
	seg.From, seg.To = tr.keys[0].value, tr.keys[len(tr.keys)-1].value
	for _, k := range tr.keys {
		if k.time > t {
			seg.End = k.time
			seg.To = k.value
			seg.Curve = k.curve
			break
		}
		seg.Start = k.time
		seg.From = k.value
	}
	if seg.Curve == nil {
		seg.Curve = easing.Linear
	}
	return seg
}

func (tr *track[V]) len() int {
	return len(tr.keys)
}

// Set is a keyframed float track.
type Set struct {
	track[float64]
}

// NewSet creates an empty track.
func NewSet() *Set {
	return &Set{}
}

// Add inserts a keyframe. A nil curve means linear.
func (s *Set) Add(t, value float64, curve easing.Func) *Set {
	s.add(t, value, curve)
	return s
}

// Get returns the segment bracketing t.
func (s *Set) Get(t float64) Segment[float64] {
	return s.segment(t)
}

// Len returns the number of keyframes.
func (s *Set) Len() int {
	return s.len()
}

// Value evaluates the track at t. A zero-length segment yields its end value.
func (s *Set) Value(t float64) float64 {
	seg := s.segment(t)
	d := seg.Duration()
	if d <= 0 {
		return seg.To
	}
	return seg.Curve(t-seg.Start, seg.From, seg.To-seg.From, d)
}

// ColorSet is a keyframed RGBA track. Channels are eased independently.
type ColorSet struct {
	track[mathx.RGBA]
}

// NewColorSet creates an empty colour track.
func NewColorSet() *ColorSet {
	return &ColorSet{}
}

// Add inserts a keyframe. A nil curve means linear.
func (s *ColorSet) Add(t float64, c mathx.RGBA, curve easing.Func) *ColorSet {
	s.add(t, c, curve)
	return s
}

// Get returns the segment bracketing t.
func (s *ColorSet) Get(t float64) Segment[mathx.RGBA] {
	return s.segment(t)
}

// Len returns the number of keyframes.
func (s *ColorSet) Len() int {
	return s.len()
}

// Value evaluates the track at t. A zero-length segment yields its start colour.
func (s *ColorSet) Value(t float64) mathx.RGBA {
	seg := s.segment(t)
	d := seg.Duration()
	if d <= 0 {
		return seg.From
	}
	lt := t - seg.Start
	ch := func(a, b uint8) uint8 {
		v := seg.Curve(lt, float64(a), float64(b)-float64(a), d)
		return uint8(mathx.Clamp(math.Round(v), 0, 255))
	}
	return mathx.RGBA{
		R: ch(seg.From.R, seg.To.R),
		G: ch(seg.From.G, seg.To.G),
		B: ch(seg.From.B, seg.To.B),
		A: ch(seg.From.A, seg.To.A),
	}
}
