// Package collision provides stateless overlap tests between rectangles,
// circles, points and pixel masks.
package collision

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Circle is a circle in world coordinates.
type Circle struct {
	Center mathx.Vec2f
	Radius float64
}

// Rects reports whether two rectangles overlap.
// Touching edges count as a collision.
func Rects(a, b core.Rect) bool {
	return a.Touches(b)
}

// Circles reports whether the centre distance is strictly less than the
// sum of the radii.
func Circles(a, b Circle) bool {
	return a.Center.Sub(b.Center).Length() < a.Radius+b.Radius
}

// CirclePoint reports whether p lies strictly inside c.
func CirclePoint(c Circle, p mathx.Vec2f) bool {
	return c.Center.Sub(p).Length() < c.Radius
}

// RectPoint reports whether p lies inside r, edges included.
func RectPoint(r core.Rect, p mathx.Vec2i) bool {
	return r.Contains(p.X, p.Y)
}

// Masks tests two pixel masks placed with their top-left corners at posA and
// posB. The bounding boxes are checked first; when they overlap, hit is the
// overlap rectangle in world space and the pixels inside it are scanned in
// three interleaved passes. The result is true on the first pixel that is
// opaque in both masks.
func Masks(a *Mask, posA mathx.Vec2i, b *Mask, posB mathx.Vec2i) (hit core.Rect, ok bool) {
	if a == nil || b == nil {
		return core.Rect{}, false
	}
	ra := core.NewRect(posA.X, posA.Y, a.w, a.h)
	rb := core.NewRect(posB.X, posB.Y, b.w, b.h)
	if !Rects(ra, rb) {
		return core.Rect{}, false
	}

	hit = ra.Intersect(rb)

	for offset := 0; offset < 3; offset++ {
		for y := hit.Y; y < hit.Bottom(); y++ {
			for x := hit.X + (y+offset)%3; x < hit.Right(); x += 3 {
				if !a.Opaque(x-posA.X, y-posA.Y) {
					continue
				}
				if !b.Opaque(x-posB.X, y-posB.Y) {
					continue
				}
				return hit, true
			}
		}
	}
	return hit, false
}
