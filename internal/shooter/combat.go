package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/collision"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

const (
	explosionFPS = 30
	bulletSpread = 12
	spawnWidth   = 65
)

// shape is what collision tests look at: the box, and the pixel mask
// placed at the sprite's top-left corner.
type shape struct {
	box  core.Rect
	mask *collision.Mask
	at   mathx.Vec2i
}

func topLeft(x, y int, s Size) mathx.Vec2i {
	return mathx.Vec2i{X: x - s.W/2, Y: y - s.H/2}
}

func (l *Level) playerShape() shape {
	p := l.player
	return shape{
		box:  p.BoundingBox(),
		mask: l.res.Masks.Get(SpritePlayer, p.Frame),
		at:   topLeft(p.X(), p.Y(), SpriteSize(SpritePlayer)),
	}
}

func (l *Level) enemyShape(e *Enemy) shape {
	sprite := SpriteEnemyGreen
	if e.Type != EnemyEasy {
		sprite = SpriteEnemyRed
	}
	return shape{
		box:  e.BoundingBox(),
		mask: l.res.Masks.Get(sprite, 0),
		at:   topLeft(e.X(), e.Y(), SpriteSize(sprite)),
	}
}

func (l *Level) bulletShape(b *Projectile) shape {
	return shape{
		box:  b.BoundingBox(),
		mask: l.res.Masks.Get(b.Sprite, 0),
		at:   topLeft(b.X(), b.Y(), SpriteSize(b.Sprite)),
	}
}

// collides tests boxes and, when pixel collision is on, the masks.
func (l *Level) collides(a, b shape) bool {
	if !collision.Rects(a.box, b.box) {
		return false
	}
	if !l.cfg.Game.PixelCollision || a.mask == nil || b.mask == nil {
		return true
	}
	_, ok := collision.Masks(a.mask, a.at, b.mask, b.at)
	return ok
}

func (l *Level) spawnBullet(owner uint64, sprite int, x, y int, speed mathx.Vec2f, damage int) *Projectile {
	b := l.bullets.Spawn()
	b.Spawn(l.ctx.IDs.Next(), owner, sprite, mathx.Vec2f{X: float64(x), Y: float64(y)}, speed, damage, l.screenW, l.screenH)
	return b
}

func (l *Level) spawnPlayerBullet(x, y int, speed mathx.Vec2f) {
	l.spawnBullet(l.player.ID, SpritePlayerBullet, x, y, speed, l.cfg.Player.BulletDamage)
	l.firedTotal++
}

// playerFire shoots the spread for the current level: one bullet up to
// level 2, two from level 3, two more angled ones past level 8 and, past
// level 12, a guided shot every few volleys.
func (l *Level) playerFire() {
	if l.player.Dead() {
		return
	}
	l.fireCount++
	l.res.Sound.Play(audio.PlayerFire)

	x, y := l.player.X(), l.player.Y()
	up := mathx.Vec2f{Y: float64(-300 - mathx.ClampMax(l.level*100, 700))}

	if l.level <= 2 {
		l.spawnPlayerBullet(x, y-5, up)
	} else {
		l.spawnPlayerBullet(x-bulletSpread, y-5, up)
		l.spawnPlayerBullet(x+bulletSpread, y-5, up)
	}

	if l.level > 8 {
		l.spawnPlayerBullet(x-bulletSpread, y-5, mathx.Vec2f{X: -350, Y: -1000})
		l.spawnPlayerBullet(x+bulletSpread, y-5, mathx.Vec2f{X: 350, Y: -1000})
	}

	if l.level > 12 {
		l.fireGuided(x, y)
	}
}

// fireGuided aims at where the nearest visible enemy will be when the
// shot arrives.
func (l *Level) fireGuided(x, y int) {
	var target *Enemy
	nearest := 99999.0
	l.enemies.Each(func(e *Enemy) bool {
		if e.Y() > 0 && !e.Dead() {
			if d := mathx.Distance(float64(x), float64(y), float64(e.X()), float64(e.Y())); d < nearest {
				nearest = d
				target = e
			}
		}
		return true
	})
	if target == nil || l.fireCount%(10-mathx.ClampMax(l.level-12, 5)) != 0 {
		return
	}

	speed := 300 + float64(mathx.ClampMax((l.level-12)*10, 500))
	flight := nearest / speed
	tx := float64(target.X()) + target.Speed.X*flight
	ty := float64(target.Y()) + target.Speed.Y*flight
	deg := mathx.AngleForLine(float64(x), float64(y+5), tx, ty)

	l.spawnBullet(l.player.ID, SpriteGuidedBullet, x, y+5, mathx.Heading(deg, speed), l.cfg.Player.GuidedDamage)
	l.firedTotal++
}

// enemyFire shoots at the player. Easy planes fire straight down on the
// first levels and later lead the target with some scatter; hard planes
// fire faster and more accurately.
func (l *Level) enemyFire(e *Enemy) {
	if e.Dead() || l.player.Dead() {
		return
	}
	l.res.Sound.Play(audio.EnemyFire)

	ex, ey := e.X(), e.Y()+3
	var speed, deg float64
	sprite := SpriteEnemyBulletSlow

	if e.Type == EnemyEasy {
		speed = 100 + float64(mathx.ClampMax(l.level*10, 300))
		deg = 180
		if l.level >= 3 {
			deg = l.leadAngle(ex, ey, speed) + l.scatter(45-mathx.ClampMax(l.level*2, 44))
			// Only shoot forward.
			if deg < 90 || deg > 270 {
				deg = 180
			}
		}
	} else {
		sprite = SpriteEnemyBulletFast
		speed = 300 + float64(mathx.ClampMax(l.level*10, 100))
		deg = l.leadAngle(ex, ey, speed) + l.scatter(20-mathx.ClampMax(l.level*2, 19))
	}

	l.spawnBullet(e.ID, sprite, ex, ey, mathx.Heading(deg, speed), l.cfg.Player.BulletDamage)
}

// leadAngle aims from (x, y) at the player's predicted position. A
// prediction off the side of the screen aims at the player instead.
func (l *Level) leadAngle(x, y int, speed float64) float64 {
	p := l.player
	px, py := float64(p.X()), float64(p.Y())
	flight := mathx.Distance(float64(x), float64(y), px, py) / speed
	tx := int(px + mathx.ClampMax(p.Speed.X, 250)*flight)
	ty := int(py + mathx.ClampMax(p.Speed.Y, 250)*flight)
	if tx < 0 || tx > l.screenW-1 {
		tx, ty = p.X(), p.Y()
	}
	return mathx.AngleForLine(float64(x), float64(y), float64(tx), float64(ty))
}

// scatter returns a random offset in [-spread/2, spread/2).
func (l *Level) scatter(spread int) float64 {
	return float64(-spread/2 + l.ctx.Rand.Intn(spread))
}

// topmostEnemy returns the smallest enemy y, capped at -2 plane heights.
func (l *Level) topmostEnemy() int {
	top := -spawnWidth * 2
	l.enemies.Each(func(e *Enemy) bool {
		top = min(top, e.Y())
		return true
	})
	return top
}

func (l *Level) spawnX() float64 {
	return float64(l.ctx.Rand.Intn(l.screenW-spawnWidth) + spawnWidth/2)
}

// deployEnemy queues a new plane above the topmost one. Every few
// deployments, more often as levels go by, it is a hard one.
func (l *Level) deployEnemy() {
	l.deployedTotal++
	top := l.topmostEnemy()

	kind := EnemyEasy
	if l.deployedTotal%l.diff.HardEnemyEvery(l.level) == 0 {
		kind = EnemyHard
	}
	pos := mathx.Vec2f{X: l.spawnX(), Y: float64(top - spawnWidth*3)}
	speed := mathx.Vec2f{Y: 25 + float64(l.ctx.Rand.Intn(50)+kind*50) + mathx.ClampMax(float64(l.level)*5, 100)}

	e := l.enemies.Spawn()
	e.Spawn(l.ctx.IDs.Next(), kind, pos, speed, l.diff.EnemyHealth(kind, l.level), l.smoke, l.screenW, l.screenH)
}

// spawnTarget parks an easy plane near the top of the screen.
func (l *Level) spawnTarget() {
	e := l.enemies.Spawn()
	pos := mathx.Vec2f{X: float64(l.screenW / 2), Y: 64}
	e.Spawn(l.ctx.IDs.Next(), EnemyEasy, pos, mathx.Vec2f{}, l.cfg.Enemy.Health, l.smoke, l.screenW, l.screenH)
}

// enemyAI wraps planes that flew past the bottom and lets them shoot.
func (l *Level) enemyAI() {
	l.enemies.Each(func(e *Enemy) bool {
		if e.Y() <= 0 || e.Dead() {
			return true
		}
		if e.Y() > l.screenH+spawnWidth {
			if l.player.Dead() {
				e.SetDead(true)
			} else {
				e.Pos = mathx.Vec2f{X: l.spawnX(), Y: float64(l.topmostEnemy() - spawnWidth*2)}
				e.UpdateBoundingBox()
			}
		}
		if l.level > 1 && e.Cooldown() >= l.diff.EnemyCooldown(e.Type, l.level) {
			e.Fire()
			l.enemyFire(e)
		}
		return true
	})
}

// explosion starts a blast animation with its particle flash.
func (l *Level) explosion(x, y, frame, fps int) {
	ex := l.explosions.Spawn()
	ex.Spawn(l.ctx.IDs.Next(), mathx.Vec2f{X: float64(x), Y: float64(y)}, frame, fps, l.screenW, l.screenH)
	ex.Burst(l.blast)
}

func (l *Level) jitter(n int) int {
	return l.ctx.Rand.Intn(n) - n/2
}

// destroyEnemy blows up a plane and credits the kill.
func (l *Level) destroyEnemy(e *Enemy) {
	x, y := e.X(), e.Y()
	l.explosion(x, y, 0, explosionFPS)
	for _, frame := range []int{8, 8, 14, 14} {
		l.explosion(x+l.jitter(50), y+l.jitter(50), frame, explosionFPS)
	}
	e.SetDead(true)
	l.killed++
	l.killedTotal++
	l.score += l.cfg.Enemy.Score
}

// killPlayer blows up the player's plane and records the session stats.
func (l *Level) killPlayer() {
	p := l.player
	p.SetDead(true)

	x, y := p.X(), p.Y()
	l.explosion(x, y, 0, 15)
	for range 3 {
		l.explosion(x+l.jitter(50), y+l.jitter(50), 8, 15)
	}
	for range 3 {
		l.explosion(x+l.jitter(30), y+l.jitter(30), 4, 6)
	}
	l.res.Sound.Play(audio.Explosion1)

	props := l.ctx.Props
	props.Set(propPlayer, "Score", l.score)
	props.Set(propPlayer, "Fired", l.firedTotal)
	props.Set(propPlayer, "Kills", l.killedTotal)
	props.Set(propPlayer, "Accuracy", l.Accuracy())
	props.Set(propPlayer, "Level", l.level)
	l.ctx.Log.Info("player killed", "score", l.score, "level", l.level, "accuracy", l.Accuracy())
}

// resolveCollisions checks bullets against bullets, enemies and the
// player, then planes against the player.
func (l *Level) resolveCollisions() {
	l.bullets.Each(func(b *Projectile) bool {
		if b.Dead() {
			return true
		}
		if b.Owner == l.player.ID {
			l.playerBulletHits(b)
		} else {
			l.enemyBulletHits(b)
		}
		return true
	})

	l.enemies.Each(func(e *Enemy) bool {
		if e.Y() <= 0 || e.Dead() || l.player.Dead() {
			return true
		}
		if l.collides(l.enemyShape(e), l.playerShape()) {
			l.ram(e)
		}
		return true
	})
}

func (l *Level) playerBulletHits(b *Projectile) {
	bs := l.bulletShape(b)

	l.bullets.Each(func(o *Projectile) bool {
		if o.Owner == l.player.ID || o.Dead() {
			return true
		}
		if l.collides(bs, l.bulletShape(o)) {
			b.SetDead(true)
			o.SetDead(true)
			l.blast.FireParticles(b.Pos, 4, 0)
			l.blast.FireParticles(o.Pos, 4, 0)
			return false
		}
		return true
	})
	if b.Dead() {
		return
	}

	l.enemies.Each(func(e *Enemy) bool {
		if e.Y() <= 0 || e.Dead() {
			return true
		}
		if !l.collides(l.enemyShape(e), bs) {
			return true
		}
		b.SetDead(true)
		l.explosion(b.X(), b.Y(), 10, explosionFPS)
		l.res.Sound.Play(audio.Explosion2)
		e.Hit()
		l.hitTotal++
		if e.Damage(b.Health()) {
			l.destroyEnemy(e)
			l.res.Sound.Play(audio.Explosion1)
		}
		return false
	})
}

func (l *Level) enemyBulletHits(b *Projectile) {
	if l.player.Dead() || !l.collides(l.playerShape(), l.bulletShape(b)) {
		return
	}
	b.SetDead(true)
	l.explosion(b.X(), b.Y(), 10, explosionFPS)
	l.res.Sound.Play(audio.Explosion2)
	l.player.Hit()
	if !l.immortal && l.player.Damage(b.Health()) {
		l.killPlayer()
	}
}

// ram handles a plane flying into the player. Both sides take contact
// damage.
func (l *Level) ram(e *Enemy) {
	l.res.Sound.Play(audio.Explosion1)
	l.player.Hit()
	e.Hit()

	if e.Damage(l.cfg.Player.ContactDamage) {
		l.destroyEnemy(e)
	}
	if l.immortal {
		return
	}
	if l.player.Damage(l.cfg.Enemy.ContactDamage) {
		l.killPlayer()
	} else {
		l.explosion(l.player.X(), l.player.Y(), 0, explosionFPS)
	}
}
