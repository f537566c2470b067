package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/space-attackers/internal/engine"
)

// ErrSceneNotFound is returned for scene ids that were never added.
var ErrSceneNotFound = errors.New("scene: not found")

// Game owns the scenes, the frame timer and the top-level state machine.
// Input events reach the game script first and then every running scene.
type Game struct {
	ctx      *engine.Context
	script   Script
	renderer engine.Renderer
	timer    *engine.Timer

	scenes map[int]*Base
	ids    []int

	state       State
	running     bool
	initialized bool
	err         error

	time     float64
	realTime float64
}

// NewGame creates a game drawing through r. The default properties are
// stored unless already present.
func NewGame(ctx *engine.Context, script Script, r engine.Renderer) *Game {
	ctx.Props.Property("Game", "Quit", false)
	ctx.Props.Property("Game", "Running", true)
	ctx.Props.Property("Game", "Speed", 1.0)
	ctx.Props.Property("Game", "Music", true)
	ctx.Props.Property("Video", "Width", 640)
	ctx.Props.Property("Video", "Height", 480)

	return &Game{
		ctx:      ctx,
		script:   script,
		renderer: r,
		timer:    engine.NewTimer(ctx.Clock),
		scenes:   make(map[int]*Base),
		running:  true,
	}
}

// Context returns the engine context.
func (g *Game) Context() *engine.Context { return g.ctx }

// Renderer returns the render target.
func (g *Game) Renderer() engine.Renderer { return g.renderer }

// State returns the game state.
func (g *Game) State() State { return g.state }

// SetState switches the game state.
func (g *Game) SetState(s State) {
	g.ctx.Log.Debug("game state", "from", g.state, "to", s)
	g.state = s
}

// Running reports whether the loop should continue.
func (g *Game) Running() bool { return g.running }

// SetRunning stops or resumes the loop.
func (g *Game) SetRunning(running bool) {
	g.running = running
	g.ctx.Props.Set("Game", "Running", running)
}

// Fail stops the game with err. Execute returns the first failure.
func (g *Game) Fail(err error) {
	if err == nil {
		return
	}
	g.ctx.Log.Error("game failed", "err", err)
	if g.err == nil {
		g.err = err
	}
	g.SetRunning(false)
}

// Err returns the failure that stopped the game, if any.
func (g *Game) Err() error { return g.err }

// Time returns the accumulated scaled game time in seconds.
func (g *Game) Time() float64 { return g.time }

// RealTime returns the accumulated wall time in seconds.
func (g *Game) RealTime() float64 { return g.realTime }

// Timer returns the frame timer.
func (g *Game) Timer() *engine.Timer { return g.timer }

// Initialize runs the game script's setup once.
func (g *Game) Initialize() error {
	if g.initialized {
		return nil
	}
	if i, ok := g.script.(Initializer); ok {
		if err := i.Initialize(); err != nil {
			return fmt.Errorf("game: cannot initialize: %w", err)
		}
	}
	g.initialized = true
	g.timer.Reset()
	return nil
}

// AddScene registers s under id, initializing it first.
func (g *Game) AddScene(id int, s *Base) error {
	if !s.Initialized() {
		if err := s.Initialize(); err != nil {
			return fmt.Errorf("game: cannot initialize scene %d: %w", id, err)
		}
	}
	s.SetID(id)
	if _, ok := g.scenes[id]; !ok {
		g.ids = append(g.ids, id)
		sort.Ints(g.ids)
	}
	g.scenes[id] = s
	return nil
}

// GetScene looks up a scene.
func (g *Game) GetScene(id int) (*Base, error) {
	s, ok := g.scenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSceneNotFound, id)
	}
	return s, nil
}

func (g *Game) load(id int) (*Base, error) {
	s, err := g.GetScene(id)
	if err != nil {
		return nil, err
	}
	if !s.Loaded() {
		if err := s.Load(); err != nil {
			return nil, fmt.Errorf("game: cannot load scene %d: %w", id, err)
		}
	}
	return s, nil
}

// LoadScene loads a scene and resets it to state 0 without running it.
func (g *Game) LoadScene(id int) error {
	s, err := g.load(id)
	if err != nil {
		return err
	}
	s.SetState(0)
	return nil
}

// LoadAndRunScene loads a scene, resets it to state 0 and runs it.
func (g *Game) LoadAndRunScene(id int) error {
	s, err := g.load(id)
	if err != nil {
		return err
	}
	s.SetState(0)
	s.SetRunning(true)
	return nil
}

// StartScene runs a scene in whatever state it is in.
func (g *Game) StartScene(id int) error {
	s, err := g.load(id)
	if err != nil {
		return err
	}
	s.SetRunning(true)
	return nil
}

// StopScene stops a scene without unloading it.
func (g *Game) StopScene(id int) error {
	s, err := g.GetScene(id)
	if err != nil {
		return err
	}
	s.SetRunning(false)
	return nil
}

// SetSceneState changes the state of a scene.
func (g *Game) SetSceneState(id int, state State) error {
	s, err := g.GetScene(id)
	if err != nil {
		return err
	}
	s.SetState(state)
	return nil
}

// StopAndUnloadScene stops a scene and releases its resources.
func (g *Game) StopAndUnloadScene(id int) error {
	s, err := g.GetScene(id)
	if err != nil {
		return err
	}
	s.SetRunning(false)
	if s.Loaded() {
		s.Unload()
	}
	return nil
}

// UnloadScene releases a scene's resources.
func (g *Game) UnloadScene(id int) error {
	s, err := g.GetScene(id)
	if err != nil {
		return err
	}
	if s.Loaded() {
		s.Unload()
	}
	return nil
}

// SendCustomEvent queues an application event not tied to a scene.
func (g *Game) SendCustomEvent(code int) {
	g.ctx.Events.PushUser(engine.CustomEvent, code, -1)
}

func (g *Game) handle(c Call) {
	dispatch(g.script, c, g.state)
}

func (g *Game) eachRunning(fn func(s *Base)) {
	for _, id := range g.ids {
		if s := g.scenes[id]; s.Running() {
			fn(s)
		}
	}
}

// HandleEvents drains the event queue.
func (g *Game) HandleEvents() {
	var ev engine.Event
	for g.ctx.Events.Poll(&ev) {
		var hook Hook
		switch ev.Type {
		case engine.EventKeyDown:
			hook = HookKeyDown
		case engine.EventKeyUp:
			hook = HookKeyUp
		case engine.EventMouseMotion:
			hook = HookMouseMotion
		case engine.EventMousePress:
			hook = HookMousePress
		case engine.EventMouseRelease:
			hook = HookMouseRelease
		case engine.EventQuit:
			g.ctx.Props.Set("Game", "Quit", true)
			g.SetRunning(false)
			hook = HookQuit
		case engine.EventUser:
			e := ev
			g.handle(Call{Hook: HookUserEvent, Event: &e})
			continue
		default:
			continue
		}
		e := ev
		c := Call{Hook: hook, Event: &e}
		g.handle(c)
		g.eachRunning(func(s *Base) { s.Handle(c) })
	}
}

// Update advances game time and runs the update hooks of the game and of
// every running scene, followed by the scenes' updatables.
func (g *Game) Update() {
	g.timer.SetSpeed(engine.Value(g.ctx.Props, "Game", "Speed", 1.0))
	g.timer.Update()
	dt := g.timer.PassedTime()
	dtReal := g.timer.PassedTimeReal()
	g.time += dt
	g.realTime += dtReal

	g.handle(Call{Hook: HookUpdate})
	g.eachRunning(func(s *Base) {
		s.Handle(Call{Hook: HookUpdate})
		s.Update(dt, dtReal)
	})
	g.timer.Reset()
}

// Render draws one frame.
func (g *Game) Render() {
	r := g.renderer
	r.Begin()
	r.ClearScreen()
	g.handle(Call{Hook: HookPreRender, Renderer: r})
	g.handle(Call{Hook: HookRender, Renderer: r})
	g.eachRunning(func(s *Base) {
		s.Handle(Call{Hook: HookRender, Renderer: r})
		s.RenderPasses(r)
		s.Handle(Call{Hook: HookPostRender, Renderer: r})
	})
	g.handle(Call{Hook: HookPostRender, Renderer: r})
	r.End()
}

// Execute runs one frame and reports whether the game is still running.
// The error is the first failure recorded by Fail or initialization.
func (g *Game) Execute() (bool, error) {
	if !g.initialized {
		if err := g.Initialize(); err != nil {
			g.Fail(err)
			return false, err
		}
	}
	g.HandleEvents()
	g.Update()
	g.Render()
	return g.running, g.err
}
