package shooter

import (
	"math"

	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/particle"
)

const (
	explosionDuration = 1.0
	smokeDuration     = 0.5
)

// Emitters may run on the ambient worker, so they use the guarded random
// source.

type explosionEmitter struct {
	rand *engine.Random
}

func (e explosionEmitter) InitVelocity(p *particle.Particle, _ particle.Emission) {
	angle := e.rand.SafeFloat64() * 2 * math.Pi
	speed := 1 + 4*e.rand.SafeFloat64()
	p.InitialVelocity = mathx.Vec2f{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

func (e explosionEmitter) InitPosition(p *particle.Particle, em particle.Emission) {
	p.Pos = em.Origin
}

func (e explosionEmitter) InitEnergy(p *particle.Particle, _ particle.Emission) {
	p.Energy = explosionDuration
}

type smokeEmitter struct {
	rand *engine.Random
}

func (e smokeEmitter) InitVelocity(p *particle.Particle, em particle.Emission) {
	v := easing.OutCirc(em.Fraction, 0, 10, 2) + float64(e.rand.SafeIntn(2))
	rad := mathx.DegToRad(float64(e.rand.SafeIntn(360)))
	p.InitialVelocity = mathx.Vec2f{X: v * math.Cos(rad), Y: v * math.Sin(rad)}
	p.Time = float64(e.rand.SafeIntn(35)) / 100
}

func (e smokeEmitter) InitPosition(p *particle.Particle, em particle.Emission) {
	p.Pos = em.Origin
}

func (e smokeEmitter) InitEnergy(p *particle.Particle, _ particle.Emission) {
	p.Energy = smokeDuration
}

// NewExplosionSystem creates the flame burst used by explosions and the
// ambient worker.
func NewExplosionSystem(ctx *engine.Context, capacity int, trails bool) *particle.System {
	if capacity <= 0 {
		capacity = 500
	}
	return particle.New(explosionEmitter{rand: ctx.Rand}, particle.Options{
		Capacity:       capacity,
		TrailCapacity:  trailCapacity(capacity, trails),
		Duration:       explosionDuration,
		Primitive:      particle.Box,
		TrailPrimitive: particle.Pixel,
		Trails:         trails,
		Tracks: particle.Tracks{
			Velocity: interp.NewSet().
				Add(0, 20, nil).
				Add(0.7, 10.5, easing.OutCirc),
			Alpha: interp.NewSet().
				Add(0, 1, nil).
				Add(1, 0, easing.Linear),
			Size: interp.NewSet().
				Add(0, 3, nil).
				Add(1, 1, easing.Linear),
			Color: interp.NewColorSet().
				Add(0.0, mathx.HSV(41, 0.84, 1.0), nil).
				Add(0.2, mathx.HSV(43, 0.70, 1.0), nil).
				Add(0.4, mathx.HSV(63, 0.37, 0.97), nil).
				Add(0.6, mathx.HSV(30, 0.85, 1.0), nil).
				Add(0.8, mathx.HSV(17, 0.95, 0.73), nil),
		},
	})
}

// NewSmokeSystem creates the trail left by damaged enemies.
func NewSmokeSystem(ctx *engine.Context, capacity int) *particle.System {
	if capacity <= 0 {
		capacity = 300
	}
	return particle.New(smokeEmitter{rand: ctx.Rand}, particle.Options{
		Capacity:  capacity,
		Duration:  smokeDuration,
		Primitive: particle.Box,
		Tracks: particle.Tracks{
			Velocity: interp.NewSet().
				Add(0, 15, nil).
				Add(1, 0, easing.Linear),
			Alpha: interp.NewSet().
				Add(0, 0.5, nil).
				Add(1, 0.1, easing.InCirc),
			Size: interp.NewSet().
				Add(0, 1, nil).
				Add(1, 3, easing.Linear),
			Color: interp.NewColorSet().
				Add(0.0, mathx.HSV(226, 0.25, 0.16), nil).
				Add(0.3, mathx.HSV(235, 0.07, 0.34), nil).
				Add(0.6, mathx.HSV(40, 0.08, 0.41), nil).
				Add(1.0, mathx.HSV(43, 0.15, 0.53), nil),
		},
	})
}

func trailCapacity(capacity int, trails bool) int {
	if !trails {
		return 0
	}
	return capacity / 2
}
