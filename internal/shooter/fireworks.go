package shooter

import (
	"context"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
	"github.com/vovakirdan/space-attackers/internal/engine/render"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
	"github.com/vovakirdan/space-attackers/internal/registry"
)

// FireworksID is the registry id of the fireworks demo.
const FireworksID = "fireworks"

const sceneShow = 1

// show is the demo's only scene: the explosion system with the
// fireworks worker bursting it.
type show struct {
	*scene.Base

	ctx       *engine.Context
	ps        *particle.System
	fireworks *Fireworks
	h         int
}

func (s *show) Load() error {
	s.Add(scene.PassMain, s.ctx.IDs.Next(), s.ps)
	return nil
}

func (s *show) OnEnter() {
	s.fireworks.Start(context.Background())
}

func (s *show) OnExit() {
	s.fireworks.Stop()
}

func (s *show) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookKeyDown:
		switch c.Event.Key {
		case core.KeyEscape, core.KeyEnter, 'q':
			s.SetState(scene.StateEnd)
		}
	case scene.HookPostRender:
		r := c.Renderer
		r.DrawTextCentered(20, "F I R E W O R K S", colorTitle)
		r.DrawTextCentered(s.h-35, "press esc to leave", colorInfo)
	}
}

// showScript ends the demo when its scene does.
type showScript struct {
	game *scene.Game
}

func (g *showScript) Handle(c scene.Call) {
	if c.Hook != scene.HookUserEvent || c.State == scene.AnyState {
		return
	}
	if c.Event.Code == engine.SceneEvent && c.Event.Data2 == sceneShow && scene.State(c.Event.Data1) == scene.StateEnd {
		g.game.SetRunning(false)
	}
}

// FireworksDemo runs the ambient explosion worker on its own.
type FireworksDemo struct {
	env        registry.Env
	configured bool
	clock      engine.Clock

	ctx    *engine.Context
	game   *scene.Game
	show   *show
	screen *render.Screen
	over   bool
}

// NewFireworksDemo creates the demo.
func NewFireworksDemo() *FireworksDemo {
	return &FireworksDemo{}
}

func (d *FireworksDemo) ID() string    { return FireworksID }
func (d *FireworksDemo) Title() string { return "Fireworks" }

// Configure supplies the logger and configuration.
func (d *FireworksDemo) Configure(env registry.Env) {
	d.env = env
	d.configured = true
}

// Reset starts the show.
func (d *FireworksDemo) Reset(rc core.RuntimeConfig) {
	d.Close()
	cfg := config.DefaultShooterConfig()
	if d.configured {
		cfg = d.env.Config
	}
	d.ctx = engine.NewContext(engine.Options{Seed: rc.Seed, Clock: d.clock, Logger: d.env.Log})
	w, h := cfg.Video.Width, cfg.Video.Height

	d.show = &show{
		ctx: d.ctx,
		ps:  NewExplosionSystem(d.ctx, cfg.Effects.ExplosionCapacity, cfg.Effects.Trails),
		h:   h,
	}
	d.show.fireworks = NewFireworks(d.ctx, d.show.ps, w, h)
	d.show.Base = scene.New(d.ctx, d.show)

	d.screen = render.NewScreen(w, h, rc.ScreenW, rc.ScreenH, NewSheet(cfg.Sprites.Charset))
	script := &showScript{}
	d.game = scene.NewGame(d.ctx, script, d.screen)
	script.game = d.game
	d.over = false
	if err := d.game.AddScene(sceneShow, d.show.Base); err != nil {
		d.game.Fail(err)
		d.over = true
		return
	}
	if err := d.game.LoadAndRunScene(sceneShow); err != nil {
		d.game.Fail(err)
		d.over = true
	}
}

// Step runs one frame.
func (d *FireworksDemo) Step(in core.InputFrame) core.StepResult {
	if d.game == nil || d.over {
		return core.StepResult{State: d.State()}
	}
	for _, k := range in.Keys {
		if k.Up {
			d.ctx.Events.Push(engine.KeyUp(k.Key))
		} else {
			d.ctx.Events.Push(engine.KeyDown(k.Key))
		}
	}
	if in.Has(core.ActionQuit) {
		d.ctx.Events.Push(engine.Event{Type: engine.EventQuit})
	}
	running, _ := d.game.Execute()
	if !running {
		d.over = true
		d.Close()
	}
	return core.StepResult{State: d.State()}
}

// Render copies the last frame into dst.
func (d *FireworksDemo) Render(dst *core.Screen) {
	if d.screen == nil {
		return
	}
	d.screen.Resize(dst.Width(), dst.Height())
	d.screen.Snapshot(dst)
}

// State reports whether the show is over; it never scores.
func (d *FireworksDemo) State() core.GameState {
	return core.GameState{GameOver: d.over}
}

// Err returns the error that stopped the show, if any.
func (d *FireworksDemo) Err() error {
	if d.game == nil {
		return nil
	}
	return d.game.Err()
}

// Running reports whether the worker goroutine is active.
func (d *FireworksDemo) Running() bool {
	return d.show != nil && d.show.fireworks.Running()
}

// Close stops the worker.
func (d *FireworksDemo) Close() error {
	if d.show != nil && d.show.fireworks.Running() {
		d.show.fireworks.Stop()
	}
	return nil
}
