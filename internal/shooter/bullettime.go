package shooter

import "github.com/vovakirdan/space-attackers/internal/config"

type bulletTimeState int

const (
	btNormal bulletTimeState = iota
	btSlowingDown
	btSlow
	btSpeedingUp
)

const (
	slowDownMS = 500
	speedUpMS  = 1000
	slowSpeed  = 0.05
)

// bulletTime is the slow-motion budget. Energy is in milliseconds of
// slow motion and is paced by wall clock ticks, not by frame time, so the
// transitions take the same time however slow the game runs.
type bulletTime struct {
	state  bulletTimeState
	active bool
	energy int
	max    int
	min    int
	cap    int
	adder  int
	old    int
	start  int64
}

func newBulletTime(cfg config.BulletTimeConfig) *bulletTime {
	return &bulletTime{max: cfg.Initial, min: cfg.Min, cap: cfg.Max, adder: cfg.Adder, old: -1}
}

// raise grows the budget after a cleared level.
func (b *bulletTime) raise() {
	b.max = min(b.max+b.adder, b.cap)
}

// update advances the machine at now. want is the slow-motion key; the
// machine clears it when the budget runs dry. ok reports whether speed
// should be applied to the game clock.
func (b *bulletTime) update(now int64, want *bool) (speed float64, ok bool) {
	b.active = *want
	elapsed := int(now - b.start)

	switch b.state {
	case btNormal:
		if b.active && b.energy-b.min > 0 {
			b.start = now
			b.old = b.energy
			b.state = btSlowingDown
			return 0, false
		}
		if b.old == -1 {
			b.start = now
			b.old = b.energy
			elapsed = 0
		}
		b.energy = b.old + elapsed/2
		if b.energy > b.max {
			b.energy = b.max
			b.old = b.energy
			b.start = now
		}
		return 0, false

	case btSlowingDown:
		if elapsed < slowDownMS {
			b.energy = b.old - elapsed
			return max(1-float64(elapsed)/slowDownMS, slowSpeed), true
		}
		b.energy = b.old - b.min
		b.state = btSlow
		b.start = now
		b.old = b.energy
		return slowSpeed, true

	case btSlow:
		if b.old-elapsed > 0 {
			b.energy = b.old - elapsed
		} else {
			b.active = false
			b.energy = 0
			*want = false
		}
		if !b.active {
			b.state = btSpeedingUp
			b.start = now
			b.old = b.energy
		}
		return 0, false

	default:
		if elapsed < speedUpMS {
			b.energy = min(b.old+elapsed/2, b.max)
			return max(float64(elapsed)/speedUpMS, slowSpeed), true
		}
		b.state = btNormal
		return 1, true
	}
}
