// Package scene implements scenes and the game loop that drives them.
//
// Scenes and the game own a small state machine each. Behaviour lives in a
// Script whose Handle method switches on the hook and the state being
// dispatched. Every hook is dispatched twice: once for the current state
// and once for AnyState, the wildcard.
package scene

import (
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
)

// State is a scene or game state. Applications define their own values.
type State int

const (
	// StateEnd stops the scene when entered.
	StateEnd State = 999
	// AnyState is the wildcard dispatched after the current state.
	AnyState State = 9999
)

// Hook names the event a script is asked to handle.
type Hook int

const (
	HookUpdate Hook = iota
	HookPreRender
	HookRender
	HookPostRender
	HookKeyDown
	HookKeyUp
	HookMouseMotion
	HookMousePress
	HookMouseRelease
	HookUserEvent
	HookQuit
)

func (h Hook) String() string {
	switch h {
	case HookUpdate:
		return "Update"
	case HookPreRender:
		return "PreRender"
	case HookRender:
		return "Render"
	case HookPostRender:
		return "PostRender"
	case HookKeyDown:
		return "KeyDown"
	case HookKeyUp:
		return "KeyUp"
	case HookMouseMotion:
		return "MouseMotion"
	case HookMousePress:
		return "MousePress"
	case HookMouseRelease:
		return "MouseRelease"
	case HookUserEvent:
		return "UserEvent"
	case HookQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Call is one hook invocation.
type Call struct {
	Hook  Hook
	State State
	// Event is set for input, user and quit hooks.
	Event *engine.Event
	// Renderer is set for render hooks.
	Renderer engine.Renderer
}

// Script supplies the behaviour of a scene or a game.
type Script interface {
	Handle(c Call)
}

// Optional lifecycle interfaces a Script may implement.
type (
	Initializer interface{ Initialize() error }
	Loader      interface{ Load() error }
	Unloader    interface{ Unload() }
	Enterer     interface{ OnEnter() }
	Exiter      interface{ OnExit() }
)

// Pass selects one of the three render layers.
type Pass int

const (
	PassPre Pass = iota
	PassMain
	PassPost
)

func dispatch(s Script, c Call, state State) {
	c.State = state
	s.Handle(c)
	c.State = AnyState
	s.Handle(c)
}

// Base is the scene machinery: lifecycle flags, the state machine and the
// updatable and renderable collections.
type Base struct {
	ctx    *engine.Context
	script Script

	id          int
	state       State
	alpha       uint8
	running     bool
	loaded      bool
	initialized bool

	passes     [3]*Layer[entity.Renderable]
	updatables *Layer[entity.Updatable]
}

// New creates a scene driven by script.
func New(ctx *engine.Context, script Script) *Base {
	b := &Base{
		ctx:        ctx,
		script:     script,
		alpha:      255,
		updatables: NewLayer[entity.Updatable](),
	}
	for i := range b.passes {
		b.passes[i] = NewLayer[entity.Renderable]()
	}
	return b
}

// Context returns the engine context.
func (b *Base) Context() *engine.Context { return b.ctx }

// ID returns the id assigned by Game.AddScene.
func (b *Base) ID() int { return b.id }

// SetID assigns the scene id.
func (b *Base) SetID(id int) { b.id = id }

// State returns the current state.
func (b *Base) State() State { return b.state }

// SetState switches state and announces it on the event queue. Entering
// StateEnd stops the scene.
func (b *Base) SetState(s State) {
	b.ctx.Log.Debug("scene state", "scene", b.id, "from", b.state, "to", s)
	b.state = s
	b.ctx.Events.PushUser(engine.SceneEvent, int(s), b.id)
	if s == StateEnd {
		b.SetRunning(false)
	}
}

// SendCustomEvent queues an application event tagged with this scene's id.
func (b *Base) SendCustomEvent(code int) {
	b.ctx.Events.PushUser(engine.CustomEvent, code, b.id)
}

// Running reports whether the scene takes part in the frame.
func (b *Base) Running() bool { return b.running }

// SetRunning starts or stops the scene. OnEnter and OnExit fire only when
// the flag actually changes.
func (b *Base) SetRunning(running bool) {
	if b.running == running {
		return
	}
	b.running = running
	if running {
		if e, ok := b.script.(Enterer); ok {
			e.OnEnter()
		}
		return
	}
	if e, ok := b.script.(Exiter); ok {
		e.OnExit()
	}
}

// Alpha returns the scene's fade level.
func (b *Base) Alpha() uint8 { return b.alpha }

// SetAlpha sets the fade level.
func (b *Base) SetAlpha(a uint8) { b.alpha = a }

// Initialized reports whether Initialize has run.
func (b *Base) Initialized() bool { return b.initialized }

// Initialize runs the script's one-time setup.
func (b *Base) Initialize() error {
	if b.initialized {
		return nil
	}
	if i, ok := b.script.(Initializer); ok {
		if err := i.Initialize(); err != nil {
			return err
		}
	}
	b.initialized = true
	return nil
}

// Loaded reports whether the scene's resources are loaded.
func (b *Base) Loaded() bool { return b.loaded }

// Load acquires the scene's resources.
func (b *Base) Load() error {
	if l, ok := b.script.(Loader); ok {
		if err := l.Load(); err != nil {
			return err
		}
	}
	b.loaded = true
	return nil
}

// Unload releases the scene's resources and empties its collections.
func (b *Base) Unload() {
	if u, ok := b.script.(Unloader); ok {
		u.Unload()
	}
	b.Clear()
	b.loaded = false
}

// AddUpdatable registers an object for the update pass.
func (b *Base) AddUpdatable(id uint64, u entity.Updatable) {
	b.updatables.Add(id, u)
}

// AddRenderable registers an object for a render pass.
func (b *Base) AddRenderable(p Pass, id uint64, r entity.Renderable) {
	b.passes[p].Add(id, r)
}

// Add registers obj for updates and for the given render pass.
func (b *Base) Add(p Pass, id uint64, obj interface {
	entity.Updatable
	entity.Renderable
}) {
	b.AddUpdatable(id, obj)
	b.AddRenderable(p, id, obj)
}

// Remove drops id from every collection.
func (b *Base) Remove(id uint64) {
	b.updatables.Remove(id)
	for _, l := range b.passes {
		l.Remove(id)
	}
}

// Updatables returns the update collection.
func (b *Base) Updatables() *Layer[entity.Updatable] { return b.updatables }

// Renderables returns the collection for a render pass.
func (b *Base) Renderables(p Pass) *Layer[entity.Renderable] { return b.passes[p] }

// Empty reports whether all collections are empty.
func (b *Base) Empty() bool {
	if b.updatables.Len() > 0 {
		return false
	}
	for _, l := range b.passes {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}

// Clear empties every collection.
func (b *Base) Clear() {
	b.updatables.Clear()
	for _, l := range b.passes {
		l.Clear()
	}
}

// Handle dispatches a hook for the current state and the wildcard.
func (b *Base) Handle(c Call) {
	dispatch(b.script, c, b.state)
}

// Update advances every updatable.
func (b *Base) Update(dt, dtReal float64) {
	b.updatables.Each(func(_ uint64, u entity.Updatable) {
		u.Update(dt, dtReal)
	})
}

// RenderPasses draws the pre, main and post layers in order.
func (b *Base) RenderPasses(r engine.Renderer) {
	for _, l := range b.passes {
		l.Each(func(_ uint64, obj entity.Renderable) {
			obj.Render(r)
		})
	}
}
