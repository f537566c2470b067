package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Banking animation frames: 0 hard left, 2 level, 4 hard right.
const (
	frameLevel  = 2
	framesCount = 5
)

// Player is the player's plane. Its position is the sprite centre.
// Movement runs on wall time so bullet time slows everything but the
// player.
type Player struct {
	entity.Entity

	Frame    int
	hitTimer float64

	minSpeed float64
	maxSpeed float64
	screenW  int
	screenH  int
}

// NewPlayer creates a player at the centre of a w x h world.
func NewPlayer(id uint64, w, h int, health int, minSpeed, maxSpeed float64) *Player {
	p := &Player{minSpeed: minSpeed, maxSpeed: maxSpeed, screenW: w, screenH: h}
	p.Bounds = core.NewRect(3, 4, 36, 56)
	p.Reset(id)
	p.Pos = mathx.Vec2f{X: float64(w / 2), Y: float64(h / 2)}
	p.SetHealth(health)
	p.Frame = frameLevel
	p.UpdateBoundingBox()
	return p
}

// Hit flashes the plane for a tenth of a second.
func (p *Player) Hit() { p.hitTimer = 0.1 }

// Flashing reports whether the hit flash is showing.
func (p *Player) Flashing() bool { return p.hitTimer > 0 }

// UpdateBoundingBox moves the collision box to the current position.
func (p *Player) UpdateBoundingBox() {
	s := SpriteSize(SpritePlayer)
	p.SetBoundingBoxPos(p.X()-s.W/2, p.Y()-s.H/2)
}

func (p *Player) Update(dt, dtReal float64) {
	// Not accelerating: brake towards a stop.
	if !p.MovingX {
		p.Acc.X = -p.Speed.X
	}
	if !p.MovingY {
		p.Acc.Y = -p.Speed.Y
	}
	p.Speed.AddAssign(p.Acc.Mul(dtReal))

	if !p.MovingX && mathx.Abs(p.Speed.X) < p.minSpeed {
		p.Speed.X = 0
	}
	if !p.MovingY && mathx.Abs(p.Speed.Y) < p.minSpeed {
		p.Speed.Y = 0
	}
	p.Speed.X = mathx.Clamp(p.Speed.X, -p.maxSpeed, p.maxSpeed)
	p.Speed.Y = mathx.Clamp(p.Speed.Y, -p.maxSpeed, p.maxSpeed)

	p.Pos.AddAssign(p.Speed.Mul(dtReal))
	p.UpdateBoundingBox()

	if p.hitTimer > 0 {
		p.hitTimer = max(p.hitTimer-dt, 0)
	}
}

func (p *Player) Render(r engine.Renderer) {
	sprite := SpritePlayer
	if p.Flashing() {
		sprite = SpritePlayerHit
	}
	s := SpriteSize(SpritePlayer)
	x, y := p.X()-s.W/2, p.Y()-s.H/2
	r.DrawSprite(sprite, p.Frame, x, y)

	// Mirror across the wrapping edge.
	switch {
	case p.X() < s.W/2:
		r.DrawSprite(sprite, p.Frame, x+p.screenW, y)
	case p.X() > p.screenW-s.W/2:
		r.DrawSprite(sprite, p.Frame, x-p.screenW, y)
	}
}
