package scene

// Layer is an id-keyed collection that iterates in insertion order, so
// update and draw order never depend on map iteration.
type Layer[T any] struct {
	index map[uint64]int
	ids   []uint64
	items []T
}

// NewLayer creates an empty layer.
func NewLayer[T any]() *Layer[T] {
	return &Layer[T]{index: make(map[uint64]int)}
}

// Add inserts v under id. An existing entry keeps its position.
func (l *Layer[T]) Add(id uint64, v T) {
	if i, ok := l.index[id]; ok {
		l.items[i] = v
		return
	}
	l.index[id] = len(l.items)
	l.ids = append(l.ids, id)
	l.items = append(l.items, v)
}

// Remove deletes id and reports whether it was present.
func (l *Layer[T]) Remove(id uint64) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	delete(l.index, id)
	copy(l.ids[i:], l.ids[i+1:])
	copy(l.items[i:], l.items[i+1:])
	l.ids = l.ids[:len(l.ids)-1]
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	for j := i; j < len(l.ids); j++ {
		l.index[l.ids[j]] = j
	}
	return true
}

// Get returns the entry for id.
func (l *Layer[T]) Get(id uint64) (T, bool) {
	i, ok := l.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Has reports whether id is present.
func (l *Layer[T]) Has(id uint64) bool {
	_, ok := l.index[id]
	return ok
}

// Len returns the number of entries.
func (l *Layer[T]) Len() int { return len(l.items) }

// Each visits entries in insertion order. fn must not modify the layer.
func (l *Layer[T]) Each(fn func(id uint64, v T)) {
	for i, v := range l.items {
		fn(l.ids[i], v)
	}
}

// Clear removes every entry.
func (l *Layer[T]) Clear() {
	clear(l.index)
	clear(l.items)
	l.ids = l.ids[:0]
	l.items = l.items[:0]
}
