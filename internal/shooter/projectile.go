package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Projectile is a bullet. Its health is the damage it deals and Owner is
// the id of the entity that fired it.
type Projectile struct {
	entity.Entity

	Sprite  int
	size    Size
	screenW int
	screenH int
}

// Spawn resets a pooled projectile.
func (p *Projectile) Spawn(id, owner uint64, sprite int, pos, speed mathx.Vec2f, damage int, w, h int) {
	p.size = SpriteSize(sprite)
	p.Bounds = core.NewRect(0, 0, p.size.W, p.size.H)
	p.Reset(id)
	p.Owner = owner
	p.Sprite = sprite
	p.Pos = pos
	p.Speed = speed
	p.SetHealth(damage)
	p.screenW, p.screenH = w, h
	p.UpdateBoundingBox()
}

// UpdateBoundingBox moves the collision box to the current position.
func (p *Projectile) UpdateBoundingBox() {
	p.SetBoundingBoxPos(p.X()-p.size.W/2, p.Y()-p.size.H/2)
}

// Offscreen reports whether the projectile has left the world.
func (p *Projectile) Offscreen() bool {
	x, y := p.X(), p.Y()
	return y < -p.size.H || y > p.screenH+p.size.H || x < -p.size.W || x > p.screenW+p.size.W
}

func (p *Projectile) Update(dt, _ float64) {
	p.Pos.AddAssign(p.Speed.Mul(dt))
	if p.Offscreen() {
		p.SetDead(true)
	}
	p.UpdateBoundingBox()
}

func (p *Projectile) Render(r engine.Renderer) {
	r.DrawSprite(p.Sprite, 0, p.X()-p.size.W/2, p.Y()-p.size.H/2)
}
