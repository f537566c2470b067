package engine

import (
	"sync"
	"time"
)

// Clock is a millisecond tick source.
type Clock interface {
	Ticks() int64
}

// SystemClock counts wall-clock milliseconds since creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a wall clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Ticks returns elapsed milliseconds.
func (c *SystemClock) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Used for deterministic simulation.
type ManualClock struct {
	mu sync.Mutex
	ms int64
}

// NewManualClock creates a clock at 0 ms.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Ticks returns the current time in milliseconds.
func (c *ManualClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.ms += d.Milliseconds()
	c.mu.Unlock()
}

// Timer measures the time between Reset and Update, scaled by a speed factor.
type Timer struct {
	clock    Clock
	current  int64
	previous int64
	speed    float64
}

// NewTimer creates a timer at speed 1.
func NewTimer(clock Clock) *Timer {
	t := &Timer{clock: clock, speed: 1}
	t.Reset()
	return t
}

// Update samples the clock.
func (t *Timer) Update() {
	t.current = t.clock.Ticks()
}

// Reset starts a new measurement.
func (t *Timer) Reset() {
	t.current = t.clock.Ticks()
	t.previous = t.current
}

// SetSpeed sets the game time scale.
func (t *Timer) SetSpeed(s float64) {
	t.speed = s
}

// Speed returns the game time scale.
func (t *Timer) Speed() float64 {
	return t.speed
}

// PassedTime returns scaled seconds.
func (t *Timer) PassedTime() float64 {
	return t.PassedTimeReal() * t.speed
}

// PassedTimeReal returns unscaled seconds.
func (t *Timer) PassedTimeReal() float64 {
	return float64(t.current-t.previous) * 0.001
}

// PassedTimeMS returns scaled milliseconds.
func (t *Timer) PassedTimeMS() int64 {
	return int64(float64(t.current-t.previous) * t.speed)
}
