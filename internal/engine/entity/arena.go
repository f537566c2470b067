package entity

// Handle is a stable reference into an Arena. A handle goes stale when its
// slot is released; stale handles never resolve to the slot's next occupant.
type Handle struct {
	Index uint32
	Gen   uint32
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  *T
}

// Arena stores pooled objects. Released slots go on a free list and their
// objects are reused by the next Spawn without reallocating.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an arena with room for capacity objects before growing.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Spawn returns a live slot, reusing a released one when possible. The
// returned object may hold state from its previous life; callers reset it.
func (a *Arena[T]) Spawn() (Handle, *T) {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{val: new(T)})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.live = true
	a.live++
	return Handle{Index: idx, Gen: s.gen}, s.val
}

// Get resolves a handle. It fails for stale or released handles.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil, false
	}
	return s.val, true
}

// Release returns the slot to the free list. Releasing a stale handle is a
// no-op and reports false, so a slot is never freed twice.
func (a *Arena[T]) Release(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	s := &a.slots[h.Index]
	s.live = false
	s.gen++
	a.free = append(a.free, h.Index)
	a.live--
	return true
}

// Each visits live objects in slot order until fn returns false.
func (a *Arena[T]) Each(fn func(h Handle, v *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(Handle{Index: uint32(i), Gen: s.gen}, s.val) {
			return
		}
	}
}

// Len returns the number of live objects.
func (a *Arena[T]) Len() int { return a.live }

// Free returns the number of pooled objects awaiting reuse.
func (a *Arena[T]) Free() int { return len(a.free) }

// Clear releases every live object.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.Release(Handle{Index: uint32(i), Gen: a.slots[i].gen})
		}
	}
}
