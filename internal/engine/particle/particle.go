// Package particle implements a fixed-capacity particle pool with optional
// trail particles. Particles move between an alive list and a dead list and
// are never allocated after Initialize.
package particle

import (
	"sync"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Particle is one pooled particle.
type Particle struct {
	ID              uint32
	Pos             mathx.Vec2f
	PosLast         mathx.Vec2f
	Velocity        mathx.Vec2f
	InitialVelocity mathx.Vec2f
	Energy          float64
	Time            float64
	Size            float64
	Color           mathx.RGBA
}

// Primitive selects how particles without a sprite are drawn.
type Primitive int

const (
	Pixel Primitive = iota
	Line
	Box
	Star
)

// trailInterval spawns a trail particle for every Nth alive particle per pass.
const trailInterval = 20

// Emission describes one FireParticles call to the emitter hooks.
type Emission struct {
	Origin   mathx.Vec2f
	Index    int
	Count    int
	Fraction float64 // Index/Count, in [0,1)
}

// Emitter initialises freshly activated particles.
// Hooks run with the system lock held and must not call back into it.
type Emitter interface {
	InitVelocity(p *Particle, e Emission)
	InitPosition(p *Particle, e Emission)
	InitEnergy(p *Particle, e Emission)
}

// Tracks are the over-lifetime curves. Each is indexed by Time/Duration.
// Nil tracks use the defaults: velocity scale 1, gravity 0, white, opaque,
// size 1.
type Tracks struct {
	Velocity   *interp.Set
	Gravity    *interp.Set
	Alpha      *interp.Set
	Size       *interp.Set
	Color      *interp.ColorSet
	TrailColor *interp.ColorSet
	TrailAlpha *interp.Set
}

// Options configure a System.
type Options struct {
	Capacity        int
	TrailCapacity   int
	Duration        float64
	EnergyDecrement float64
	Primitive       Primitive
	TrailPrimitive  Primitive
	Trails          bool
	Sprite          int // sprite id drawn instead of primitives when > 0
	Tracks          Tracks
}

// DefaultOptions returns a 500 particle pool with a one second lifetime.
func DefaultOptions() Options {
	return Options{
		Capacity:        500,
		Duration:        1.0,
		EnergyDecrement: 1.0,
	}
}

// System is a pool of particles driven by an Emitter.
//
// FireParticles may be called from any goroutine. Update and Render share the
// same lock so a particle is never observed halfway between lists.
type System struct {
	mu      sync.Mutex
	emitter Emitter
	opts    Options

	alive      []*Particle
	dead       []*Particle
	trails     []*Particle
	deadTrails []*Particle

	time        float64
	maxTime     float64
	lastAddTime float64
	lastAmount  int
	initialized bool
}

// New creates a system. The pool is allocated lazily on first use unless
// Initialize is called explicitly.
func New(e Emitter, opts Options) *System {
	return &System{emitter: e, opts: opts}
}

// Initialize (re)allocates the pools and resets all counters.
func (s *System) Initialize(capacity, trailCapacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(capacity, trailCapacity)
}

func (s *System) initialize(capacity, trailCapacity int) {
	if s.opts.EnergyDecrement == 0 {
		s.opts.EnergyDecrement = 1.0
	}
	s.opts.Capacity = capacity
	s.opts.TrailCapacity = trailCapacity

	s.alive = make([]*Particle, 0, capacity)
	s.dead = make([]*Particle, 0, capacity)
	for i := 0; i < capacity; i++ {
		s.dead = append(s.dead, &Particle{ID: uint32(i + 1)})
	}
	s.trails = make([]*Particle, 0, trailCapacity)
	s.deadTrails = make([]*Particle, 0, trailCapacity)
	for i := 0; i < trailCapacity; i++ {
		s.deadTrails = append(s.deadTrails, &Particle{ID: uint32(capacity + i + 1)})
	}

	s.maxTime = s.opts.Duration
	if s.maxTime <= 0 {
		s.maxTime = 1.0
	}
	s.time, s.lastAddTime, s.lastAmount = 0, 0, 0
	s.initialized = true
}

func (s *System) ensureInit() {
	if !s.initialized {
		capacity := s.opts.Capacity
		if capacity <= 0 {
			capacity = 500
		}
		s.initialize(capacity, s.opts.TrailCapacity)
	}
}

// FireParticles activates up to n particles at the origin. The count is
// clamped to the free capacity. When maxPerSecond > 0 and the previous call's
// spawn rate exceeded it, nothing is spawned. Returns the number activated.
func (s *System) FireParticles(origin mathx.Vec2f, n, maxPerSecond int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()

	n = min(n, len(s.dead))
	if n < 0 {
		n = 0
	}

	if maxPerSecond > 0 {
		diff := s.time - s.lastAddTime
		if diff > 0.1 && float64(s.lastAmount)/diff > float64(maxPerSecond) {
			n = 0
		}
		s.lastAddTime = s.time
		s.lastAmount = n
	}

	for i := 0; i < n; i++ {
		last := len(s.dead) - 1
		p := s.dead[last]
		s.dead = s.dead[:last]
		s.reset(p)
		s.alive = append(s.alive, p)

		e := Emission{Origin: origin, Index: i, Count: n, Fraction: float64(i) / float64(n)}
		s.emitter.InitVelocity(p, e)
		s.emitter.InitPosition(p, e)
		s.emitter.InitEnergy(p, e)
		p.PosLast = p.Pos
	}
	return n
}

func (s *System) reset(p *Particle) {
	id := p.ID
	*p = Particle{ID: id, Size: 1, Color: mathx.White}
}

func (s *System) fireTrail(src *Particle) {
	if len(s.deadTrails) == 0 {
		return
	}
	last := len(s.deadTrails) - 1
	p := s.deadTrails[last]
	s.deadTrails = s.deadTrails[:last]
	s.trails = append(s.trails, p)

	p.Time = src.Time
	p.Energy = 0.1
	p.Pos = src.Pos
	p.PosLast = src.PosLast
	p.Velocity = mathx.Vec2f{}
	p.Size = src.Size
	p.Color = src.Color
}

// Update advances every particle by dt seconds of game time.
func (s *System) Update(dt, _ float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInit()

	s.time += dt

	kept := s.trails[:0]
	for _, p := range s.trails {
		if p.Energy > 0 {
			p.Time += dt
			p.Energy -= s.opts.EnergyDecrement * dt
			s.updateTrailColor(p)
			kept = append(kept, p)
		} else {
			s.deadTrails = append(s.deadTrails, p)
		}
	}
	clear(s.trails[len(kept):])
	s.trails = kept

	alive := s.alive[:0]
	for i, p := range s.alive {
		if p.Energy > 0 {
			if s.opts.Trails && i%trailInterval == 0 {
				s.fireTrail(p)
			}
			p.Time += dt
			p.PosLast = p.Pos
			s.updateVelocity(p)
			p.Pos.AddAssign(p.Velocity.Mul(dt))
			p.Energy -= s.opts.EnergyDecrement * dt
			s.updateColor(p)
			s.updateSize(p)
		}
		if p.Energy <= 0 {
			s.dead = append(s.dead, p)
			continue
		}
		alive = append(alive, p)
	}
	clear(s.alive[len(alive):])
	s.alive = alive
}

func (s *System) lifetime(p *Particle) float64 {
	return p.Time / s.maxTime
}

func (s *System) updateVelocity(p *Particle) {
	t := s.lifetime(p)
	gravity := 0.0
	if s.opts.Tracks.Gravity != nil {
		gravity = s.opts.Tracks.Gravity.Value(t)
	}
	v := 1.0
	if s.opts.Tracks.Velocity != nil {
		v = s.opts.Tracks.Velocity.Value(t)
	}
	p.Velocity = p.InitialVelocity.Mul(v).Add(mathx.Vec2f{Y: gravity * p.Time})
}

func (s *System) updateColor(p *Particle) {
	t := s.lifetime(p)
	c := mathx.White
	if s.opts.Tracks.Color != nil {
		c = s.opts.Tracks.Color.Value(t)
	}
	c.A = 255
	if s.opts.Tracks.Alpha != nil {
		c.A = alphaByte(s.opts.Tracks.Alpha.Value(t))
	}
	p.Color = c
}

func (s *System) updateTrailColor(p *Particle) {
	t := s.lifetime(p)
	c := p.Color
	if s.opts.Tracks.TrailColor != nil {
		c = s.opts.Tracks.TrailColor.Value(t)
	}
	if s.opts.Tracks.TrailAlpha != nil {
		c.A = alphaByte(s.opts.Tracks.TrailAlpha.Value(t))
	} else {
		c.A = uint8(max(int(p.Color.A)-25, 0))
	}
	p.Color = c
}

func (s *System) updateSize(p *Particle) {
	p.Size = 1.0
	if s.opts.Tracks.Size != nil {
		p.Size = s.opts.Tracks.Size.Value(s.lifetime(p))
	}
}

func alphaByte(f float64) uint8 {
	return uint8(mathx.Clamp(255*f, 0, 255))
}

// IsAlive reports whether any main particle is active.
func (s *System) IsAlive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alive) > 0
}

// Counts returns the alive and dead pool sizes.
func (s *System) Counts() (alive, dead int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alive), len(s.dead)
}

// TrailCounts returns the alive and dead trail pool sizes.
func (s *System) TrailCounts() (alive, dead int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trails), len(s.deadTrails)
}

// Capacity returns the main pool size.
func (s *System) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Capacity
}

// Duration is the lifetime used to normalise the over-time tracks.
func (s *System) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxTime
}

// Snapshot copies the alive particles into dst and returns it.
func (s *System) Snapshot(dst []Particle) []Particle {
	s.mu.Lock()
	defer s.mu.Unlock()
	dst = dst[:0]
	for _, p := range s.alive {
		dst = append(dst, *p)
	}
	return dst
}

// Render draws trail particles first, then the main particles.
func (s *System) Render(r engine.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.trails {
		s.draw(r, p, s.opts.TrailPrimitive)
	}
	for _, p := range s.alive {
		s.draw(r, p, s.opts.Primitive)
	}
}

func (s *System) draw(r engine.Renderer, p *Particle, prim Primitive) {
	if p.Color.A == 0 {
		return
	}
	x, y := int(p.Pos.X), int(p.Pos.Y)
	if s.opts.Sprite > 0 {
		r.DrawSprite(s.opts.Sprite, 0, x, y)
		return
	}
	half := int(p.Size / 2)
	switch prim {
	case Line:
		r.DrawLine(x, y, int(p.PosLast.X), int(p.PosLast.Y), p.Color)
	case Box:
		r.FillRect(core.NewRect(x-half, y-half, 2*half+1, 2*half+1), p.Color)
	case Star:
		r.DrawLine(x-half, y, x+half, y, p.Color)
		r.DrawLine(x, y-half, x, y+half, p.Color)
	default:
		r.DrawPixel(x, y, p.Color)
	}
}
