package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
)

// Explosion plays the blast animation once and dies on its last frame.
type Explosion struct {
	entity.Entity

	Frame   int
	time    float64
	fps     int
	screenW int
	screenH int
}

// Spawn resets a pooled explosion to start at frame, playing at fps.
func (x *Explosion) Spawn(id uint64, pos mathx.Vec2f, frame, fps int, w, h int) {
	x.Reset(id)
	x.Pos = pos
	x.fps = max(fps, 1)
	x.screenW, x.screenH = w, h
	x.SetFrame(frame)
}

// SetFrame seeks the animation.
func (x *Explosion) SetFrame(frame int) {
	x.Frame = frame
	x.time = float64(frame) / float64(x.fps)
}

// Burst fires the particle flash that accompanies the blast.
func (x *Explosion) Burst(ps *particle.System) {
	ps.FireParticles(x.Pos, 100, 0)
}

func (x *Explosion) Update(dt, _ float64) {
	x.time += dt
	x.Frame = int(x.time * float64(x.fps))
	if x.Frame >= explosionFrames {
		x.SetDead(true)
	}
}

func (x *Explosion) Render(r engine.Renderer) {
	s := SpriteSize(SpriteExplosion)
	px, py := x.X()-s.W/2, x.Y()-s.H/2
	if px < -s.W || px > x.screenW+s.W || py < -s.H || py > x.screenH+s.H {
		return
	}
	r.DrawSprite(SpriteExplosion, x.Frame, px, py)
}
