package engine

import "sync"

// Registry lazily creates and caches resources by key. Entries are never
// evicted. It is not safe for concurrent use; see SyncRegistry.
type Registry[K comparable, V any] struct {
	items   map[K]V
	factory func(K) V
}

// NewRegistry creates a registry that builds missing entries with factory.
func NewRegistry[K comparable, V any](factory func(K) V) *Registry[K, V] {
	return &Registry[K, V]{items: make(map[K]V), factory: factory}
}

// Get returns the entry for k, creating it on first use.
func (r *Registry[K, V]) Get(k K) V {
	if v, ok := r.items[k]; ok {
		return v
	}
	v := r.factory(k)
	r.items[k] = v
	return v
}

// Initialize creates the entry for k if it does not exist yet.
func (r *Registry[K, V]) Initialize(k K) {
	r.Get(k)
}

// Set stores v under k.
func (r *Registry[K, V]) Set(k K, v V) {
	r.items[k] = v
}

// Lookup returns the entry without creating it.
func (r *Registry[K, V]) Lookup(k K) (V, bool) {
	v, ok := r.items[k]
	return v, ok
}

// Count returns the number of entries.
func (r *Registry[K, V]) Count() int {
	return len(r.items)
}

// SyncRegistry is a Registry guarded by a mutex, for resources shared with
// background workers.
type SyncRegistry[K comparable, V any] struct {
	mu sync.Mutex
	r  *Registry[K, V]
}

// NewSyncRegistry creates a concurrency-safe registry.
func NewSyncRegistry[K comparable, V any](factory func(K) V) *SyncRegistry[K, V] {
	return &SyncRegistry[K, V]{r: NewRegistry(factory)}
}

// Get returns the entry for k, creating it on first use.
func (s *SyncRegistry[K, V]) Get(k K) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Get(k)
}

// Initialize creates the entry for k if it does not exist yet.
func (s *SyncRegistry[K, V]) Initialize(k K) {
	s.Get(k)
}

// Set stores v under k.
func (s *SyncRegistry[K, V]) Set(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Set(k, v)
}

// Lookup returns the entry without creating it.
func (s *SyncRegistry[K, V]) Lookup(k K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Lookup(k)
}

// Count returns the number of entries.
func (s *SyncRegistry[K, V]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Count()
}
