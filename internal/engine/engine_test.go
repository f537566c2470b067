package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/space-attackers/internal/core"
)

func TestProperties(t *testing.T) {
	p := NewProperties()

	if got := p.Property("Game", "Speed", 1.0); got != 1.0 {
		t.Errorf("Property() = %v, expected default 1.0", got)
	}
	if !p.Exists("Game", "Speed") {
		t.Error("Property() did not store the default")
	}

	p.Set("Game", "Speed", 0.25)
	if got := Value(p, "Game", "Speed", 1.0); got != 0.25 {
		t.Errorf("Value() = %v, expected 0.25", got)
	}

	// wrong type falls back without overwriting
	if got := Value(p, "Game", "Speed", "fast"); got != "fast" {
		t.Errorf("Value() with mismatched type = %v, expected default", got)
	}
	if got := Value(p, "Game", "Speed", 1.0); got != 0.25 {
		t.Errorf("mismatched read overwrote value: %v", got)
	}

	p.Set("Player", "Score", 10)
	p.Set("Player", "Name", "ACE")
	keys := p.Keys("Player")
	if len(keys) != 2 || keys[0] != "Name" || keys[1] != "Score" {
		t.Errorf("Keys() = %v, expected [Name Score]", keys)
	}
	if _, err := p.Lookup("Nope", "Nope"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Lookup() error = %v, expected ErrUnknownKey", err)
	}
	if _, ok := p.Get("Nope", "Nope"); ok {
		t.Error("Get() on a missing key reported ok")
	}
}

func TestRegistryLazyCreate(t *testing.T) {
	calls := 0
	r := NewRegistry(func(k int) string {
		calls++
		return "res"
	})

	if _, ok := r.Lookup(1); ok {
		t.Error("Lookup() created an entry")
	}
	r.Get(1)
	r.Get(1)
	r.Initialize(2)
	if calls != 2 {
		t.Errorf("factory called %d times, expected 2", calls)
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", r.Count())
	}
}

func TestSyncRegistryConcurrent(t *testing.T) {
	var calls atomic.Int32
	r := NewSyncRegistry(func(k int) *sync.Mutex {
		calls.Add(1)
		return &sync.Mutex{}
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Get(7)
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("factory called %d times, expected 1", calls.Load())
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if a.Intn(0) != 0 || a.SafeIntn(-3) != 0 {
		t.Error("Intn() with non-positive n should return 0")
	}
	for i := 0; i < 100; i++ {
		if v := a.Range(5, 7); v < 5 || v > 7 {
			t.Fatalf("Range(5, 7) = %d", v)
		}
	}
	if NewRandom(0).Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestRandomConcurrentDraws(t *testing.T) {
	r := NewRandom(9)
	var wg sync.WaitGroup
	var bad atomic.Int32
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if v := r.Intn(10); v < 0 || v >= 10 {
					bad.Add(1)
				}
				if v := r.SafeFloat64(); v < 0 || v >= 1 {
					bad.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	if n := bad.Load(); n != 0 {
		t.Errorf("out of range draws = %d, expected 0", n)
	}
}

func TestEventsFIFO(t *testing.T) {
	q := NewEvents()
	q.Push(KeyDown(core.KeyLeft))
	q.PushUser(SceneEvent, 3, 10)
	q.Push(KeyUp(core.KeyLeft))

	var ev Event
	expected := []EventType{EventKeyDown, EventUser, EventKeyUp}
	for i, want := range expected {
		if !q.Poll(&ev) {
			t.Fatalf("Poll() #%d returned false", i)
		}
		if ev.Type != want {
			t.Errorf("event #%d type = %v, expected %v", i, ev.Type, want)
		}
		if ev.Type == EventUser && (ev.Code != SceneEvent || ev.Data1 != 3 || ev.Data2 != 10) {
			t.Errorf("user event = %+v", ev)
		}
	}
	if q.Poll(&ev) || q.Len() != 0 {
		t.Error("queue should be empty")
	}
}

func TestTimer(t *testing.T) {
	clock := NewManualClock()
	timer := NewTimer(clock)

	clock.Advance(20 * time.Millisecond)
	timer.SetSpeed(0.5)
	timer.Update()

	if got := timer.PassedTimeReal(); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("PassedTimeReal() = %v, expected 0.02", got)
	}
	if got := timer.PassedTime(); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("PassedTime() = %v, expected 0.01", got)
	}
	if got := timer.PassedTimeMS(); got != 10 {
		t.Errorf("PassedTimeMS() = %v, expected 10", got)
	}

	timer.Reset()
	timer.Update()
	if got := timer.PassedTime(); got != 0 {
		t.Errorf("PassedTime() after Reset = %v, expected 0", got)
	}
}

func TestWorkerStopWakesSleep(t *testing.T) {
	var w Worker
	var loops atomic.Int32

	w.Start(context.Background(), func(ctx context.Context) {
		for Sleep(ctx, time.Hour) {
			loops.Add(1)
		}
	})
	if !w.Running() {
		t.Fatal("Running() = false after Start")
	}

	w.Stop()
	done := make(chan struct{})
	go func() {
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not return after Stop")
	}

	if w.Running() {
		t.Error("Running() = true after Wait")
	}
	if loops.Load() != 0 {
		t.Errorf("loop ran %d times, expected 0", loops.Load())
	}
}

func TestIDSource(t *testing.T) {
	var ids IDSource
	if ids.Next() != 1 || ids.Next() != 2 {
		t.Error("Next() should count from 1")
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext(Options{Seed: 7, Clock: NewManualClock()})
	if ctx.Rand.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", ctx.Rand.Seed())
	}
	if ctx.Mutexes.Get(1) != ctx.Mutexes.Get(1) {
		t.Error("Mutexes.Get() should return the same mutex")
	}
	if ctx.SessionID.String() == "" {
		t.Error("SessionID not set")
	}
	if ctx.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", ctx.Ticks())
	}
}
