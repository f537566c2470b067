// Package entity provides the shared game object state, the capability
// interfaces scenes iterate over, and a generation-counted arena for pooling.
package entity

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Updatable advances with game time (dt) and wall time (dtReal), in seconds.
type Updatable interface {
	Update(dt, dtReal float64)
}

// Renderable draws itself during the render pass.
type Renderable interface {
	Render(r engine.Renderer)
}

// Entity is the state common to every game object. Concrete objects embed it
// and implement Updatable and Renderable themselves.
type Entity struct {
	ID      uint64
	Owner   uint64
	Pos     mathx.Vec2f
	Speed   mathx.Vec2f
	Acc     mathx.Vec2f
	MovingX bool
	MovingY bool

	// Bounds is the collision box relative to the sprite's top-left corner.
	Bounds core.Rect

	box       core.Rect
	health    int
	maxHealth int
	dead      bool
}

// Reset returns the entity to a fresh, alive state with a new id.
// Bounds are kept since they describe the sprite, not the instance.
func (e *Entity) Reset(id uint64) {
	bounds := e.Bounds
	*e = Entity{ID: id, Bounds: bounds, health: 1, maxHealth: 1}
}

// Dead reports whether the entity has been killed.
func (e *Entity) Dead() bool { return e.dead }

// SetDead marks the entity dead or alive.
func (e *Entity) SetDead(dead bool) { e.dead = dead }

// SetHealth sets both the current and the maximum health.
func (e *Entity) SetHealth(h int) {
	e.health = h
	e.maxHealth = h
}

// Health returns the current health.
func (e *Entity) Health() int { return e.health }

// MaxHealth returns the health the entity was spawned with.
func (e *Entity) MaxHealth() int { return e.maxHealth }

// Heal adds health, capped at the maximum.
func (e *Entity) Heal(h int) {
	e.health = min(e.health+h, e.maxHealth)
}

// Damage subtracts health and reports whether it reached zero.
func (e *Entity) Damage(amount int) bool {
	if e.health-amount <= 0 {
		e.health = 0
		return true
	}
	e.health -= amount
	return false
}

// SetBoundingBoxPos places the collision box for a sprite drawn at (x, y).
func (e *Entity) SetBoundingBoxPos(x, y int) {
	e.box = e.Bounds.Translate(x, y)
}

// BoundingBox returns the collision box in world space.
func (e *Entity) BoundingBox() core.Rect { return e.box }

// X returns the integer x position.
func (e *Entity) X() int { return int(e.Pos.X) }

// Y returns the integer y position.
func (e *Entity) Y() int { return int(e.Pos.Y) }
