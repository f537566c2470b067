package shooter

import (
	"context"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
	"github.com/vovakirdan/space-attackers/internal/highscore"
)

// Highscores scene states.
const (
	HighscoresStart scene.State = iota
	HighscoresFadeIn
	HighscoresDisplay
	HighscoresPreFadeOut
	HighscoresFadeOut
	HighscoresEnd = scene.StateEnd
)

const highscoreRows = 10

// Highscores lists the table with fireworks going off behind it.
type Highscores struct {
	*scene.Base

	ctx *engine.Context
	res *Resources

	screenW int
	screenH int

	timer     *engine.Timer
	alpha     float64
	listY     float64
	ps        *particle.System
	fireworks *Fireworks
	psID      uint64
}

// NewHighscores creates the highscores scene.
func NewHighscores(ctx *engine.Context, res *Resources) *Highscores {
	h := &Highscores{
		ctx:     ctx,
		res:     res,
		screenW: res.Config.Video.Width,
		screenH: res.Config.Video.Height,
		timer:   engine.NewTimer(ctx.Clock),
	}
	h.Base = scene.New(ctx, h)
	return h
}

func (h *Highscores) Load() error {
	h.ps = h.res.Systems.Get(psExplosion)
	h.fireworks = NewFireworks(h.ctx, h.ps, h.screenW, h.screenH)
	h.psID = h.ctx.IDs.Next()
	return nil
}

// OnEnter puts the shared explosion system on screen.
func (h *Highscores) OnEnter() {
	h.alpha = 0
	h.listY = float64(h.screenH)
	h.Add(scene.PassMain, h.psID, h.ps)
	h.SetState(HighscoresStart)
}

// OnExit takes the system off screen and waits for the worker.
func (h *Highscores) OnExit() {
	h.Clear()
	if h.fireworks.Running() {
		h.fireworks.Stop()
	}
}

// Unload stops the worker if the scene is dropped mid-display.
func (h *Highscores) Unload() {
	if h.fireworks != nil && h.fireworks.Running() {
		h.fireworks.Stop()
	}
}

// Fireworks returns the ambient worker.
func (h *Highscores) Fireworks() *Fireworks { return h.fireworks }

func (h *Highscores) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUpdate:
		h.update(c.State)
	case scene.HookKeyDown:
		if c.State == HighscoresDisplay {
			switch c.Event.Key {
			case core.KeySpace, core.KeyEnter, core.KeyEscape:
				h.SetState(HighscoresPreFadeOut)
			}
		}
	case scene.HookRender:
		h.render(c.State, c.Renderer)
	case scene.HookPostRender:
		if shade := 255 - uint8(mathx.Clamp(h.alpha, 0, 255)); shade > 0 {
			r := c.Renderer
			r.FillRect(core.NewRect(0, 0, h.screenW, h.screenH), mathx.RGBA{A: shade})
		}
	}
}

func (h *Highscores) update(state scene.State) {
	switch state {
	case HighscoresStart:
		h.timer.Reset()
		h.SetState(HighscoresFadeIn)

	case HighscoresFadeIn:
		h.timer.Update()
		t := h.timer.PassedTimeReal()
		h.alpha = easing.Linear(t, 0, 255, fadeSeconds)
		h.listY = easing.OutCirc(t, float64(h.screenH), -float64(h.screenH), fadeSeconds)
		if h.alpha >= 255 {
			h.alpha = 255
			h.listY = 0
			h.SetState(HighscoresDisplay)
			h.fireworks.Start(context.Background())
		}

	case HighscoresPreFadeOut:
		h.fireworks.Stop()
		h.timer.Reset()
		h.SetState(HighscoresFadeOut)

	case HighscoresFadeOut:
		h.timer.Update()
		t := h.timer.PassedTimeReal()
		h.alpha = easing.Linear(t, 255, -255, fadeSeconds)
		h.listY = easing.InCirc(t, 0, float64(h.screenH), fadeSeconds)
		if h.alpha <= 0 {
			h.alpha = 0
			h.SetState(HighscoresEnd)
		}
	}
	h.SetAlpha(uint8(mathx.Clamp(h.alpha, 0, 255)))
}

func (h *Highscores) render(state scene.State, r engine.Renderer) {
	y := int(h.listY)
	r.DrawTextCentered(30+y, "H I G H S C O R E S", colorTitle)
	for i, e := range h.res.Scores.Top(highscoreRows) {
		c := mathx.RGBA{R: 255, G: 255, B: uint8(i * 25), A: 255}
		r.DrawText(16, 86+i*35+y, highscore.Format(e), c)
	}
	if state == HighscoresDisplay {
		r.DrawTextCentered(h.screenH-35, "press space to continue", colorInfo)
	}
}
