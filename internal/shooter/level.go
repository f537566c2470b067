package shooter

import (
	"time"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// Level scene states.
const (
	LevelStart scene.State = iota
	LevelFadeIn
	LevelGame
	LevelFadeOut
	LevelEnd = scene.StateEnd
)

const (
	fadeSeconds   = 1.0
	bannerSeconds = 5.0

	bankHoldMS   = 700
	bankReturnMS = 100
)

// Level is the gameplay scene.
type Level struct {
	*scene.Base

	ctx  *engine.Context
	res  *Resources
	cfg  config.ShooterConfig
	diff *config.DifficultyManager

	screenW int
	screenH int

	player     *Player
	enemies    *pool[Enemy, *Enemy]
	bullets    *pool[Projectile, *Projectile]
	explosions *pool[Explosion, *Explosion]
	blast      *particle.System
	smoke      *particle.System
	sky        *Background
	clouds     *Background

	level        int
	killed       int
	levelStarted bool
	immortal     bool

	score         int
	fireCount     int
	firedTotal    int
	hitTotal      int
	killedTotal   int
	deployedTotal int

	keyLeft, keyRight, keyUp, keyDown bool
	keySpace, keyZ, fire              bool

	cooldownTick int64
	turnTick     int64
	bt           *bulletTime

	alpha       float64
	fade        *engine.Timer
	banner      *engine.Timer
	bannerCurve *interp.Set
	bannerLevel int
	bannerInfo  string
}

// NewLevel creates the gameplay scene.
func NewLevel(ctx *engine.Context, res *Resources) *Level {
	l := &Level{
		ctx:     ctx,
		res:     res,
		cfg:     res.Config,
		diff:    res.Difficulty,
		screenW: res.Config.Video.Width,
		screenH: res.Config.Video.Height,
		fade:    engine.NewTimer(ctx.Clock),
		banner:  engine.NewTimer(ctx.Clock),
	}
	l.bannerCurve = levelStartCurve(l.screenH)
	l.Base = scene.New(ctx, l)
	return l
}

// Load builds the pools, the player and the backdrop and resets the game.
func (l *Level) Load() error {
	l.blast = l.res.Systems.Get(psExplosion)
	l.smoke = l.res.Systems.Get(psSmoke)
	l.enemies = newPool[Enemy](32)
	l.bullets = newPool[Projectile](128)
	l.explosions = newPool[Explosion](64)
	l.sky = NewSky(l.ctx, l.screenW, l.screenH)
	l.clouds = NewClouds(l.ctx, l.screenW, l.screenH)
	l.player = NewPlayer(l.ctx.IDs.Next(), l.screenW, l.screenH, l.cfg.Player.Health,
		l.cfg.Player.MinSpeed, l.cfg.Player.MaxSpeed)

	l.Add(scene.PassPre, l.sky.ID, l.sky)
	l.Add(scene.PassMain, l.player.ID, l.player)
	l.Add(scene.PassMain, l.ctx.IDs.Next(), l.enemies)
	l.Add(scene.PassMain, l.ctx.IDs.Next(), l.bullets)
	l.Add(scene.PassMain, l.ctx.IDs.Next(), l.explosions)
	l.Add(scene.PassMain, l.ctx.IDs.Next(), l.smoke)
	l.Add(scene.PassMain, l.ctx.IDs.Next(), l.blast)
	l.Add(scene.PassPost, l.clouds.ID, l.clouds)

	l.reset()
	return nil
}

// Unload drops the pools. The scene's collections are cleared by the base.
func (l *Level) Unload() {
	l.enemies.Clear()
	l.bullets.Clear()
	l.explosions.Clear()
	l.player = nil
}

func (l *Level) reset() {
	l.SetState(LevelStart)
	l.alpha = 0
	l.SetAlpha(0)

	l.score = 0
	l.level = l.diff.StartLevel()
	l.bannerLevel = -1
	l.levelStarted = false
	l.immortal = l.cfg.Game.Immortal

	l.killed = 0
	l.killedTotal = 0
	l.fireCount = 0
	l.deployedTotal = 0
	l.firedTotal = 0
	l.hitTotal = 0

	l.ctx.Props.Set(propGame, "Speed", 1.0)
	l.bt = newBulletTime(l.cfg.BulletTime)

	l.cooldownTick = 0
	l.keyLeft, l.keyRight, l.keyUp, l.keyDown = false, false, false, false
	l.keySpace, l.keyZ, l.fire = false, false, false
}

// OnEnter checks the scene starts from a clean slate.
func (l *Level) OnEnter() {
	if l.enemies != nil && (l.enemies.Len() > 0 || l.bullets.Len() > 0 || l.explosions.Len() > 0) {
		l.ctx.Log.Warn("level entered with live objects",
			"enemies", l.enemies.Len(), "bullets", l.bullets.Len(), "explosions", l.explosions.Len())
	}
}

// OnExit restores normal speed in case the player died in slow motion.
func (l *Level) OnExit() {
	l.ctx.Props.Set(propGame, "Speed", 1.0)
}

// Score returns the current score.
func (l *Level) Score() int { return l.score }

// Level returns the current level number.
func (l *Level) Level() int { return l.level }

// Player returns the player's plane.
func (l *Level) Player() *Player { return l.player }

// Accuracy is the percentage of player bullets that hit.
func (l *Level) Accuracy() int {
	if l.firedTotal > 0 && l.hitTotal > 0 {
		return int(float64(l.hitTotal) / float64(l.firedTotal) * 100)
	}
	return 0
}

func (l *Level) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUpdate:
		l.update(c.State)
	case scene.HookKeyDown:
		if c.State == LevelGame {
			l.keyPressed(c.Event.Key)
		}
	case scene.HookKeyUp:
		if c.State == LevelGame {
			l.keyReleased(c.Event.Key)
		}
	case scene.HookPostRender:
		l.postRender(c.State, c.Renderer)
	}
}

func (l *Level) update(state scene.State) {
	switch state {
	case LevelStart:
		l.SetState(LevelFadeIn)
		l.fade.Reset()

	case LevelFadeIn:
		l.fade.Update()
		l.alpha = easing.Linear(l.fade.PassedTimeReal(), 0, 255, fadeSeconds)
		if l.alpha >= 255 {
			l.alpha = 255
			if engine.Value(l.ctx.Props, propGame, "Music", true) {
				l.res.Sound.FadeInMusic(2 * time.Second)
			}
			l.SetState(LevelGame)
		}
		l.SetAlpha(uint8(l.alpha))

	case LevelFadeOut:
		l.fade.Update()
		l.alpha = easing.Linear(l.fade.PassedTimeReal(), 255, -255, fadeSeconds)
		if l.alpha <= 0 {
			l.alpha = 0
			l.SetState(LevelEnd)
		}
		l.SetAlpha(uint8(l.alpha))

	case LevelGame:
		l.step()
	}
}

// step runs one frame of gameplay. Collisions are resolved against the
// positions of the previous frame, before anything moves.
func (l *Level) step() {
	now := l.ctx.Ticks()

	if (l.keySpace || l.fire) && float64(now-l.cooldownTick) >= l.diff.PlayerCooldown(l.level) {
		l.fire = false
		l.playerFire()
		l.cooldownTick = now
	}

	if speed, ok := l.bt.update(now, &l.keyZ); ok {
		l.ctx.Props.Set(propGame, "Speed", speed)
	}

	l.enemyAI()
	l.resolveCollisions()

	l.bullets.Sweep()
	l.enemies.Sweep()
	if l.levelStarted {
		if l.enemies.Len() < l.level-l.killed {
			l.deployEnemy()
		}
		if l.enemies.Len() == 0 {
			l.nextLevel()
		}
	}
	l.explosions.Sweep()

	if l.player.Dead() && l.explosions.Len() == 0 {
		l.SetState(LevelFadeOut)
		l.fade.Reset()
	}

	l.steer(now)
	l.updateBanner()
}

// nextLevel advances the difficulty after a cleared wave.
func (l *Level) nextLevel() {
	l.level = l.diff.NextLevel(l.level)
	l.killed = 0
	l.levelStarted = false
	l.bt.raise()
	l.player.Heal(l.cfg.Player.LevelUpHeal)
	l.ctx.Log.Debug("next level", "level", l.level, "score", l.score)
}

// steer keeps the player on screen, applies the arrow keys and picks the
// banking frame.
func (l *Level) steer(now int64) {
	p := l.player
	x, y := p.X(), p.Y()

	if x < 0 {
		p.Pos.X = float64(l.screenW - 1)
	}
	if x > l.screenW-1 {
		p.Pos.X = 0
	}

	margin := l.cfg.Player.YMargin
	if y < margin {
		p.Pos.Y = float64(margin)
		p.MovingY = false
		p.Speed.Y, p.Acc.Y = 0, 0
		l.keyUp = false
	}
	if y > l.screenH-margin-1 {
		p.Pos.Y = float64(l.screenH - margin - 1)
		p.MovingY = false
		p.Speed.Y, p.Acc.Y = 0, 0
		l.keyDown = false
	}

	if !l.keyLeft && !l.keyRight {
		p.MovingX = false
	}
	if !l.keyUp && !l.keyDown {
		p.MovingY = false
	}
	acc := l.cfg.Player.Acceleration
	if l.keyLeft {
		p.Acc.X = -acc
		p.MovingX = true
	}
	if l.keyRight {
		p.Acc.X = acc
		p.MovingX = true
	}
	if l.keyUp {
		p.Acc.Y = -acc
		p.MovingY = true
	}
	if l.keyDown {
		p.Acc.Y = acc
		p.MovingY = true
	}

	frame := p.Frame
	if p.MovingX {
		if p.Acc.X < 0 {
			if frame > frameLevel {
				frame = frameLevel - 1
				l.turnTick = now
			}
			if now-l.turnTick > bankHoldMS {
				if frame > 0 {
					frame--
				}
				l.turnTick = now
			}
		}
		if p.Acc.X > 0 {
			if frame < frameLevel {
				frame = frameLevel + 1
				l.turnTick = now
			}
			if now-l.turnTick > bankHoldMS {
				if frame < framesCount-1 {
					frame++
				}
				l.turnTick = now
			}
		}
	} else if frame != frameLevel && now-l.turnTick > bankReturnMS {
		if frame > frameLevel {
			frame--
		} else {
			frame++
		}
		l.turnTick = now
	}
	p.Frame = frame
}

func (l *Level) keyPressed(k core.Key) {
	switch k {
	case 'z', 'Z':
		l.keyZ = true
	case core.KeyUp:
		l.keyUp = true
	case core.KeyDown:
		l.keyDown = true
	case core.KeyLeft:
		l.keyLeft = true
	case core.KeyRight:
		l.keyRight = true
	case core.KeySpace:
		l.keySpace = true
		l.fire = true
	case core.KeyEscape:
		if !l.player.Dead() {
			l.killPlayer()
		}
	case 'n':
		l.enemies.Each(func(e *Enemy) bool {
			e.SetDead(true)
			return true
		})
		l.bullets.Each(func(b *Projectile) bool {
			b.SetDead(true)
			return true
		})
		l.nextLevel()
	case 'i':
		l.immortal = !l.immortal
		l.ctx.Log.Info("immortal toggled", "immortal", l.immortal)
	case 'm':
		music := !engine.Value(l.ctx.Props, propGame, "Music", true)
		l.ctx.Props.Set(propGame, "Music", music)
		if music {
			l.res.Sound.FadeInMusic(2 * time.Second)
		} else {
			l.res.Sound.FadeOutMusic(time.Second)
		}
		l.ctx.Log.Info("music toggled", "music", music)
	case 't':
		l.spawnTarget()
	case 'r':
		l.player.Acc.X, l.player.Acc.Y = 0, 0
	case 'd':
		l.ctx.Log.Info("resources",
			"systems", l.res.Systems.Count(),
			"enemies", l.enemies.Len(), "enemies_free", l.enemies.Free(),
			"bullets", l.bullets.Len(), "bullets_free", l.bullets.Free(),
			"explosions", l.explosions.Len(), "explosions_free", l.explosions.Free())
	}
}

func (l *Level) keyReleased(k core.Key) {
	switch k {
	case 'z', 'Z':
		l.keyZ = false
	case core.KeyUp:
		l.keyUp = false
	case core.KeyDown:
		l.keyDown = false
	case core.KeyLeft:
		l.keyLeft = false
	case core.KeyRight:
		l.keyRight = false
	case core.KeySpace:
		l.keySpace = false
	}
}
