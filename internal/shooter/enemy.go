package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
)

// Enemy types.
const (
	EnemyEasy = 0
	EnemyHard = 1
)

// Enemy is an enemy plane flying down the screen. Damaged planes trail
// smoke in proportion to the damage taken.
type Enemy struct {
	entity.Entity

	Type int

	time     float64
	cooldown float64
	hitTimer float64

	smoke   *particle.System
	screenW int
	screenH int
}

// Spawn resets a pooled enemy.
func (e *Enemy) Spawn(id uint64, kind int, pos, speed mathx.Vec2f, health int, smoke *particle.System, w, h int) {
	e.Bounds = core.NewRect(3, 3, 53, 37)
	e.Reset(id)
	e.Type = kind
	e.Pos = pos
	e.Speed = speed
	e.SetHealth(health)
	e.time, e.cooldown, e.hitTimer = 0, 0, 0
	e.smoke = smoke
	e.screenW, e.screenH = w, h
	e.UpdateBoundingBox()
}

// Cooldown returns the game seconds since the last shot.
func (e *Enemy) Cooldown() float64 { return e.time - e.cooldown }

// Fire restarts the cooldown.
func (e *Enemy) Fire() { e.cooldown = e.time }

// Hit flashes the plane for a tenth of a second.
func (e *Enemy) Hit() { e.hitTimer = 0.1 }

// Flashing reports whether the hit flash is showing.
func (e *Enemy) Flashing() bool { return e.hitTimer > 0 }

// UpdateBoundingBox moves the collision box to the current position.
func (e *Enemy) UpdateBoundingBox() {
	s := SpriteSize(SpriteEnemyGreen)
	e.SetBoundingBoxPos(e.X()-s.W/2, e.Y()-s.H/2)
}

// DamageLevel is 0 for a fresh plane and approaches 1 as it is shot down.
func (e *Enemy) DamageLevel() float64 {
	if e.MaxHealth() <= 0 {
		return 0
	}
	return 1 - float64(e.Health())/float64(e.MaxHealth())
}

func (e *Enemy) Update(dt, _ float64) {
	e.time += dt
	e.Pos.AddAssign(e.Speed.Mul(dt))

	if dmg := e.DamageLevel(); dmg > 0 && e.smoke != nil {
		e.smoke.FireParticles(e.Pos, int(2+dmg*2), 10)
	}
	e.UpdateBoundingBox()

	if e.hitTimer > 0 {
		e.hitTimer = max(e.hitTimer-dt, 0)
	}
}

func (e *Enemy) sprite() int {
	switch {
	case e.Type == EnemyEasy && e.Flashing():
		return SpriteEnemyGreenHit
	case e.Type == EnemyEasy:
		return SpriteEnemyGreen
	case e.Flashing():
		return SpriteEnemyRedHit
	default:
		return SpriteEnemyRed
	}
}

func (e *Enemy) Render(r engine.Renderer) {
	s := SpriteSize(SpriteEnemyGreen)
	x, y := e.X()-s.W/2, e.Y()-s.H/2
	if x < -s.W*2 || x > e.screenW+s.W || y < -s.H*2 || y > e.screenH+s.H {
		return
	}
	r.DrawSprite(e.sprite(), 0, x, y)
}
