package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownKey is returned by Lookup when a property was never set.
var ErrUnknownKey = errors.New("engine: unknown property")

// Properties is a section/key store of loosely typed values for
// cross-cutting knobs such as "Game"/"Speed" or "Player"/"Score".
type Properties struct {
	mu       sync.RWMutex
	sections map[string]map[string]any
}

// NewProperties creates an empty store.
func NewProperties() *Properties {
	return &Properties{sections: make(map[string]map[string]any)}
}

// Set stores a value, replacing any previous one.
func (p *Properties) Set(section, key string, v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sections[section]
	if !ok {
		s = make(map[string]any)
		p.sections[section] = s
	}
	s[key] = v
}

// Get returns the raw value.
func (p *Properties) Get(section, key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.sections[section][key]
	return v, ok
}

// Lookup is Get with an error naming the missing key.
func (p *Properties) Lookup(section, key string) (any, error) {
	v, ok := p.Get(section, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownKey, section, key)
	}
	return v, nil
}

// Exists reports whether a key is set.
func (p *Properties) Exists(section, key string) bool {
	_, ok := p.Get(section, key)
	return ok
}

// Property returns the stored value, storing and returning def when absent.
func (p *Properties) Property(section, key string, def any) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sections[section]
	if !ok {
		s = make(map[string]any)
		p.sections[section] = s
	}
	if v, ok := s[key]; ok {
		return v
	}
	s[key] = def
	return def
}

// Keys lists the keys of a section, sorted.
func (p *Properties) Keys(section string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.sections[section]))
	for k := range p.sections[section] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value is the typed form of Property. A stored value of another type
// yields def without overwriting it.
func Value[T any](p *Properties, section, key string, def T) T {
	v, ok := p.Property(section, key, def).(T)
	if !ok {
		return def
	}
	return v
}
