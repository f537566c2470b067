package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the shared random source. Every draw takes the lock, so the
// main loop and background workers can use it at the same time.
type Random struct {
	mu   sync.Mutex
	r    *rand.Rand
	seed int64
}

// NewRandom creates a source. A zero seed uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed in use.
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

// Float64 returns a value in [0, 1).
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// Range returns a value in [lo, hi].
func (r *Random) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// SafeIntn is Intn, kept for the worker call sites.
func (r *Random) SafeIntn(n int) int {
	return r.Intn(n)
}

// SafeFloat64 is Float64, kept for the worker call sites.
func (r *Random) SafeFloat64() float64 {
	return r.Float64()
}
