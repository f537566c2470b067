package shooter

import (
	"context"
	"time"

	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
)

// Fireworks fires random bursts from a particle system on a background
// goroutine. Each burst holds the MutexMainApp lock until its particles
// have died, so two bursts never overlap.
type Fireworks struct {
	ctx    *engine.Context
	ps     *particle.System
	w, h   int
	poll   time.Duration
	worker engine.Worker
}

// NewFireworks creates a stopped worker bursting ps over a w x h world.
func NewFireworks(ctx *engine.Context, ps *particle.System, w, h int) *Fireworks {
	return &Fireworks{ctx: ctx, ps: ps, w: w, h: h, poll: 10 * time.Millisecond}
}

// Start launches the worker unless it is already running.
func (f *Fireworks) Start(parent context.Context) {
	if f.worker.Running() {
		return
	}
	f.ctx.Log.Info("fireworks started")
	f.worker.Start(parent, f.run)
}

// Stop cancels the worker and waits for it to return.
func (f *Fireworks) Stop() {
	f.worker.Stop()
	f.worker.Wait()
	f.ctx.Log.Info("fireworks stopped")
}

// Running reports whether the worker goroutine is active.
func (f *Fireworks) Running() bool { return f.worker.Running() }

func (f *Fireworks) run(ctx context.Context) {
	rnd := f.ctx.Rand
	mu := f.ctx.Mutexes.Get(MutexMainApp)
	for {
		delay := time.Duration(500+rnd.SafeIntn(300)) * time.Millisecond
		if !engine.Sleep(ctx, delay) {
			return
		}

		mu.Lock()
		origin := mathx.Vec2f{X: float64(rnd.SafeIntn(f.w)), Y: float64(rnd.SafeIntn(f.h))}
		f.ps.FireParticles(origin, 100+rnd.SafeIntn(100), 0)
		for f.ps.IsAlive() {
			if !engine.Sleep(ctx, f.poll) {
				mu.Unlock()
				return
			}
		}
		mu.Unlock()
	}
}
