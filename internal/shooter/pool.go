package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/entity"
)

// object is what a pool holds.
type object interface {
	entity.Updatable
	entity.Renderable
	Dead() bool
}

// pool keeps the live objects of one kind together with their recycled
// instances. It is registered with the scene as a single updatable and
// renderable; dead objects are skipped until Sweep returns them to the
// free list.
type pool[T any, P interface {
	*T
	object
}] struct {
	arena *entity.Arena[T]
}

func newPool[T any, P interface {
	*T
	object
}](capacity int) *pool[T, P] {
	return &pool[T, P]{arena: entity.NewArena[T](capacity)}
}

// Spawn returns an object for reuse. Its previous state is still there and
// the caller must reset it.
func (p *pool[T, P]) Spawn() P {
	_, v := p.arena.Spawn()
	return P(v)
}

// Each visits live objects, dead ones included, until fn returns false.
func (p *pool[T, P]) Each(fn func(P) bool) {
	p.arena.Each(func(_ entity.Handle, v *T) bool {
		return fn(P(v))
	})
}

// Alive counts objects not yet marked dead.
func (p *pool[T, P]) Alive() int {
	n := 0
	p.Each(func(o P) bool {
		if !o.Dead() {
			n++
		}
		return true
	})
	return n
}

// Len returns the number of objects not yet swept.
func (p *pool[T, P]) Len() int { return p.arena.Len() }

// Free returns the number of recycled objects.
func (p *pool[T, P]) Free() int { return p.arena.Free() }

// Sweep moves dead objects to the free list and returns how many moved.
func (p *pool[T, P]) Sweep() int {
	n := 0
	p.arena.Each(func(h entity.Handle, v *T) bool {
		if P(v).Dead() && p.arena.Release(h) {
			n++
		}
		return true
	})
	return n
}

// Clear drops every object.
func (p *pool[T, P]) Clear() { p.arena.Clear() }

func (p *pool[T, P]) Update(dt, dtReal float64) {
	p.Each(func(o P) bool {
		if !o.Dead() {
			o.Update(dt, dtReal)
		}
		return true
	})
}

func (p *pool[T, P]) Render(r engine.Renderer) {
	p.Each(func(o P) bool {
		if !o.Dead() {
			o.Render(r)
		}
		return true
	})
}
