package shooter

import (
	"fmt"
	"time"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
	"github.com/vovakirdan/space-attackers/internal/highscore"
)

// Game over scene states.
const (
	GameOverStart scene.State = iota
	GameOverFadeIn
	GameOverDisplay
	GameOverFadeOut
	GameOverEnd = scene.StateEnd
)

// panelSeconds is how long the stats panel takes to slide in.
const panelSeconds = 3.0

var colorScore = mathx.RGBA{R: 255, G: 255, B: 64, A: 255}

// GameOver shows the final stats and takes the player's name for the
// highscore table.
type GameOver struct {
	*scene.Base

	ctx *engine.Context
	res *Resources

	screenW int
	screenH int

	timer *engine.Timer
	alpha float64
	panelY float64

	name     string
	score    int
	level    int
	fired    int
	kills    int
	accuracy int
}

// NewGameOver creates the game over scene.
func NewGameOver(ctx *engine.Context, res *Resources) *GameOver {
	g := &GameOver{
		ctx:     ctx,
		res:     res,
		screenW: res.Config.Video.Width,
		screenH: res.Config.Video.Height,
		timer:   engine.NewTimer(ctx.Clock),
	}
	g.Base = scene.New(ctx, g)
	return g
}

// OnEnter reads the results the level left in the properties.
func (g *GameOver) OnEnter() {
	p := g.ctx.Props
	g.alpha = 0
	g.panelY = float64(g.screenH * 3)
	g.score = engine.Value(p, propPlayer, "Score", 0)
	g.level = engine.Value(p, propPlayer, "Level", 0)
	g.fired = engine.Value(p, propPlayer, "Fired", 0)
	g.kills = engine.Value(p, propPlayer, "Kills", 0)
	g.accuracy = engine.Value(p, propPlayer, "Accuracy", 0)
	g.name = engine.Value(p, propPlayer, "Name", "")
	g.SetState(GameOverStart)
}

// Name returns the name typed so far.
func (g *GameOver) Name() string { return g.name }

func (g *GameOver) music() bool {
	return engine.Value(g.ctx.Props, propGame, "Music", true)
}

func (g *GameOver) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUpdate:
		g.update(c.State)
	case scene.HookKeyDown:
		if c.State == GameOverDisplay {
			g.keyPressed(c.Event.Key)
		}
	case scene.HookPostRender:
		g.render(c.State, c.Renderer)
	}
}

func (g *GameOver) update(state scene.State) {
	switch state {
	case GameOverStart:
		if g.music() {
			g.res.Sound.HaltMusic()
			g.res.Sound.FadeInMusic(time.Second)
		}
		g.timer.Reset()
		g.SetState(GameOverFadeIn)

	case GameOverFadeIn:
		g.timer.Update()
		t := g.timer.PassedTimeReal()
		g.alpha = easing.Linear(t, 0, 255, fadeSeconds)
		g.panelY = easing.OutCirc(t, float64(g.screenH*3), -float64(g.screenH*3), panelSeconds)
		if g.alpha >= 255 && g.panelY <= 0 {
			g.alpha = 255
			g.panelY = 0
			g.SetState(GameOverDisplay)
		}

	case GameOverFadeOut:
		g.timer.Update()
		g.alpha = easing.Linear(g.timer.PassedTimeReal(), 255, -255, fadeSeconds)
		if g.alpha <= 0 {
			g.alpha = 0
			g.SetState(GameOverEnd)
		}
	}
	g.SetAlpha(uint8(mathx.Clamp(g.alpha, 0, 255)))
}

func (g *GameOver) keyPressed(k core.Key) {
	switch {
	case k == core.KeyEnter:
		g.submit()
		return
	case k == core.KeyBackspace:
		if n := len(g.name); n > 0 {
			g.name = g.name[:n-1]
		}
	case len(g.name) < highscore.MaxNameLen:
		if r, ok := nameRune(k); ok {
			g.name += string(r)
		}
	}
	g.ctx.Props.Set(propPlayer, "Name", g.name)
}

// nameRune maps a key to the character it adds to a name. Letters are
// upper-cased.
func nameRune(k core.Key) (rune, bool) {
	switch {
	case k >= 'a' && k <= 'z':
		return rune(k - 'a' + 'A'), true
	case k >= 'A' && k <= 'Z', k >= '0' && k <= '9', k == ' ', k == '-':
		return rune(k), true
	}
	return 0, false
}

func (g *GameOver) submit() {
	e := highscore.Entry{Name: g.name, Score: g.score, Level: g.level, Accuracy: g.accuracy}
	if err := g.res.Scores.AddEntry(e.Name, e.Score, e.Level, e.Accuracy); err != nil {
		g.ctx.Log.Error("cannot save highscores", "err", err)
	}
	if g.res.OnResult != nil {
		g.res.OnResult(e)
	}
	g.ctx.Log.Info("score recorded", "name", e.Name, "score", e.Score, "level", e.Level)

	if g.music() {
		g.res.Sound.HaltMusic()
	}
	g.timer.Reset()
	g.SetState(GameOverFadeOut)
}

func (g *GameOver) render(state scene.State, r engine.Renderer) {
	y := int(g.panelY)
	r.FillRect(core.NewRect(0, 200+y, g.screenW, 40*4+45), mathx.RGBA{A: 127})
	r.DrawText(200, 200+y, "Score:", colorText)
	r.DrawText(200+128, 200+y, fmt.Sprintf("%07d", g.score), colorScore)
	r.DrawText(200, 240+y, "Enter your name:", colorText)
	r.DrawText(200, 280+y, g.name, colorScore)
	if state == GameOverDisplay {
		g.timer.Update()
		if int(g.timer.PassedTimeReal()*6)%2 == 0 {
			r.DrawText(200+len(g.name)*glyphW, 280+y, "_", colorScore)
		}
	}
	r.DrawText(200, 320+y, fmt.Sprintf("Level: %d", g.level), colorText)
	r.DrawText(200, 340+y, fmt.Sprintf("Bullets fired: %d", g.fired), colorText)
	r.DrawText(200, 360+y, fmt.Sprintf("Enemies killed: %d", g.kills), colorText)
	r.DrawText(200, 380+y, fmt.Sprintf("Accuracy: %d%%", g.accuracy), colorText)
	if state == GameOverDisplay {
		r.DrawTextCentered(g.screenH-35, "type your name and press enter", colorInfo)
	}

	if shade := 255 - uint8(mathx.Clamp(g.alpha, 0, 255)); shade > 0 {
		r.FillRect(core.NewRect(0, 0, g.screenW, g.screenH), mathx.RGBA{A: shade})
	}
}
