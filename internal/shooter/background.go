package shooter

import (
	"math"

	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// scrollSpeed is how fast the camera climbs, in world pixels per second.
const scrollSpeed = -250

// layer is a vertically tiled field of points. A layer with speed n moves
// at 1/n of the camera speed.
type layer struct {
	points []mathx.Vec2i
	tileH  int
	speed  float64
	color  mathx.RGBA
}

// Background scrolls parallax layers behind or above the planes.
type Background struct {
	entity.Entity

	layers  []layer
	screenW int
	screenH int
}

func newBackground(id uint64, w, h int, layers ...layer) *Background {
	b := &Background{layers: layers, screenW: w, screenH: h}
	b.Reset(id)
	b.Speed = mathx.Vec2f{Y: scrollSpeed}
	return b
}

func scatter(rnd *engine.Random, n, w, h int) []mathx.Vec2i {
	pts := make([]mathx.Vec2i, n)
	for i := range pts {
		pts[i] = mathx.Vec2i{X: rnd.Intn(w), Y: rnd.Intn(h)}
	}
	return pts
}

// clump scatters points around a few centres so they read as clouds.
func clump(rnd *engine.Random, clouds, per, w, h int) []mathx.Vec2i {
	pts := make([]mathx.Vec2i, 0, clouds*per)
	for range clouds {
		cx, cy := rnd.Intn(w), rnd.Intn(h)
		for range per {
			pts = append(pts, mathx.Vec2i{
				X: mathx.Clamp(cx+rnd.Range(-60, 60), 0, w-1),
				Y: mathx.Clamp(cy+rnd.Range(-12, 12), 0, h-1),
			})
		}
	}
	return pts
}

// NewSky is the distant layer: a starfield around the moon, drawn under
// everything else.
func NewSky(ctx *engine.Context, w, h int) *Background {
	return newBackground(ctx.IDs.Next(), w, h, layer{
		points: scatter(ctx.Rand, 60, w, h),
		tileH:  h,
		speed:  8,
		color:  mathx.RGBA{R: 180, G: 190, B: 220, A: 90},
	})
}

// NewClouds is the near layers, drawn over the planes.
func NewClouds(ctx *engine.Context, w, h int) *Background {
	return newBackground(ctx.IDs.Next(), w, h,
		layer{
			points: clump(ctx.Rand, 3, 14, w, h),
			tileH:  h,
			speed:  4,
			color:  mathx.RGBA{R: 200, G: 200, B: 210, A: 60},
		},
		layer{
			points: clump(ctx.Rand, 2, 18, w, h),
			tileH:  h,
			speed:  1,
			color:  mathx.RGBA{R: 230, G: 230, B: 235, A: 110},
		},
	)
}

func (b *Background) Update(dt, _ float64) {
	b.Pos.AddAssign(b.Speed.Mul(dt))
}

// tileStart returns the y of the first tile so that tiles cover the screen.
func (l layer) tileStart(posY float64) int {
	y := int(math.Mod(-posY/l.speed, float64(l.tileH)))
	if y > 0 {
		y -= l.tileH
	}
	return y
}

func (b *Background) Render(r engine.Renderer) {
	for _, l := range b.layers {
		if l.tileH <= 0 {
			continue
		}
		for y := l.tileStart(b.Pos.Y); y < b.screenH; y += l.tileH {
			for _, p := range l.points {
				py := y + p.Y
				if py >= 0 && py < b.screenH {
					r.DrawPixel(p.X, py, l.color)
				}
			}
		}
	}
}
