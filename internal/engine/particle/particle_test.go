package particle

import (
	"sync"
	"testing"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

type burst struct {
	energy float64
}

func (b burst) InitVelocity(p *Particle, e Emission) {
	p.InitialVelocity = mathx.Vec(10*e.Fraction, -10)
}

func (b burst) InitPosition(p *Particle, e Emission) {
	p.Pos = e.Origin
}

func (b burst) InitEnergy(p *Particle, e Emission) {
	p.Energy = b.energy
}

func newSystem(capacity, trails int) *System {
	opts := DefaultOptions()
	opts.Capacity = capacity
	opts.TrailCapacity = trails
	s := New(burst{energy: 1}, opts)
	s.Initialize(capacity, trails)
	return s
}

func checkConservation(t *testing.T, s *System) {
	t.Helper()
	alive, dead := s.Counts()
	if alive+dead != s.Capacity() {
		t.Fatalf("alive %d + dead %d != capacity %d", alive, dead, s.Capacity())
	}
}

func TestFireClampsToCapacity(t *testing.T) {
	s := newSystem(10, 0)

	if got := s.FireParticles(mathx.Vec(0.0, 0.0), 15, -1); got != 10 {
		t.Errorf("FireParticles(15) = %d, expected 10", got)
	}
	checkConservation(t, s)
	if got := s.FireParticles(mathx.Vec(0.0, 0.0), 5, -1); got != 0 {
		t.Errorf("FireParticles() on a full pool = %d, expected 0", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newSystem(10, 0)
	s.FireParticles(mathx.Vec(5.0, 5.0), 15, -1)

	for i := 0; i < 4; i++ {
		if !s.IsAlive() {
			t.Fatalf("system died early after %d updates", i)
		}
		s.Update(0.25, 0.25)
		checkConservation(t, s)
	}

	alive, dead := s.Counts()
	if alive != 0 || dead != 10 {
		t.Errorf("Counts() = %d/%d, expected 0/10", alive, dead)
	}
	if s.IsAlive() {
		t.Error("IsAlive() = true after the full duration")
	}
}

func TestUpdateMovesAndAppliesTracks(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 1
	opts.Tracks = Tracks{
		Velocity: interp.NewSet().Add(0, 1, nil).Add(1, 0, nil),
		Alpha:    interp.NewSet().Add(0, 1, nil).Add(1, 0, nil),
		Size:     interp.NewSet().Add(0, 3, nil).Add(1, 1, nil),
	}
	s := New(burst{energy: 1}, opts)
	s.FireParticles(mathx.Vec(100.0, 100.0), 1, -1)

	s.Update(0.5, 0.5)
	ps := s.Snapshot(nil)
	if len(ps) != 1 {
		t.Fatalf("Snapshot() returned %d particles", len(ps))
	}
	p := ps[0]
	// velocity scale at t=0.5 is 0.5 -> (0, -5) for 0.5s
	if p.Pos != mathx.Vec(100.0, 97.5) {
		t.Errorf("Pos = %v, expected (100, 97.5)", p.Pos)
	}
	if p.PosLast != mathx.Vec(100.0, 100.0) {
		t.Errorf("PosLast = %v, expected origin", p.PosLast)
	}
	if p.Size != 2 {
		t.Errorf("Size = %v, expected 2", p.Size)
	}
	if p.Color.A != 127 {
		t.Errorf("alpha = %d, expected 127", p.Color.A)
	}
	if p.Energy != 0.5 {
		t.Errorf("Energy = %v, expected 0.5", p.Energy)
	}
}

func TestGravity(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 1
	opts.Tracks.Gravity = interp.NewSet().Add(0, 10, nil).Add(1, 10, nil)
	s := New(burst{energy: 1}, opts)
	s.FireParticles(mathx.Vec(0.0, 0.0), 1, -1)
	s.Update(0.5, 0.5)

	p := s.Snapshot(nil)[0]
	// initial (0,-10) + gravity 10*0.5
	if p.Velocity != mathx.Vec(0.0, -5.0) {
		t.Errorf("Velocity = %v, expected (0, -5)", p.Velocity)
	}
}

func TestThrottle(t *testing.T) {
	s := newSystem(100, 0)

	if got := s.FireParticles(mathx.Vec(0.0, 0.0), 50, 10); got != 50 {
		t.Fatalf("first FireParticles() = %d, expected 50", got)
	}
	s.Update(0.5, 0.5)
	// 50 particles over 0.5s is 100/s, above the 10/s limit
	if got := s.FireParticles(mathx.Vec(0.0, 0.0), 5, 10); got != 0 {
		t.Errorf("throttled FireParticles() = %d, expected 0", got)
	}
	// the skipped call recorded zero particles, so the next one passes
	s.Update(0.25, 0.25)
	if got := s.FireParticles(mathx.Vec(0.0, 0.0), 5, 10); got != 5 {
		t.Errorf("FireParticles() after quiet period = %d, expected 5", got)
	}
}

func TestTrails(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 40
	opts.TrailCapacity = 4
	opts.Trails = true
	s := New(burst{energy: 1}, opts)
	s.FireParticles(mathx.Vec(0.0, 0.0), 40, -1)

	s.Update(0.05, 0.05)
	alive, dead := s.TrailCounts()
	// indices 0 and 20 spawn a trail
	if alive != 2 || dead != 2 {
		t.Errorf("TrailCounts() = %d/%d, expected 2/2", alive, dead)
	}

	// trail energy 0.1 runs out after two more 0.05s passes plus the sweep
	for i := 0; i < 3; i++ {
		s.Update(0.05, 0.05)
		alive, dead = s.TrailCounts()
		if alive+dead != 4 {
			t.Fatalf("trail pool not conserved: %d/%d", alive, dead)
		}
	}
}

type recorder struct {
	pixels, lines, rects int
}

func (r *recorder) Begin() {}
func (r *recorder) End() {}
func (r *recorder) ClearScreen() {}
func (r *recorder) ScreenSize() (int, int) { return 640, 480 }
func (r *recorder) DrawSprite(id, frame, x, y int) {}
func (r *recorder) DrawPixel(x, y int, c mathx.RGBA) { r.pixels++ }
func (r *recorder) DrawLine(x1, y1, x2, y2 int, c mathx.RGBA) { r.lines++ }
func (r *recorder) FillRect(rc core.Rect, c mathx.RGBA) { r.rects++ }
func (r *recorder) DrawRect(rc core.Rect, c mathx.RGBA) {}
func (r *recorder) DrawText(x, y int, text string, c mathx.RGBA) {}
func (r *recorder) DrawTextCentered(y int, text string, c mathx.RGBA) {}

func TestRenderPrimitives(t *testing.T) {
	tests := []struct {
		name                 string
		prim                 Primitive
		pixels, lines, rects int
	}{
		{"pixel", Pixel, 3, 0, 0},
		{"line", Line, 0, 3, 0},
		{"box", Box, 0, 0, 3},
		{"star", Star, 0, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Capacity = 3
			opts.Primitive = tt.prim
			s := New(burst{energy: 1}, opts)
			s.FireParticles(mathx.Vec(1.0, 1.0), 3, -1)
			s.Update(0.1, 0.1)

			r := &recorder{}
			s.Render(r)
			if r.pixels != tt.pixels || r.lines != tt.lines || r.rects != tt.rects {
				t.Errorf("Render() = %+v, expected %d/%d/%d", *r, tt.pixels, tt.lines, tt.rects)
			}
		})
	}
}

func TestConcurrentFireAndUpdate(t *testing.T) {
	s := newSystem(200, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.FireParticles(mathx.Vec(0.0, 0.0), 7, -1)
		}
	}()
	for i := 0; i < 200; i++ {
		s.Update(0.01, 0.01)
		s.Render(&recorder{})
	}
	wg.Wait()
	checkConservation(t, s)
}
