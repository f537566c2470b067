package engine

import "sync/atomic"

// IDSource hands out unique, monotonically increasing ids starting at 1.
type IDSource struct {
	last atomic.Uint64
}

// Next returns a fresh id.
func (s *IDSource) Next() uint64 {
	return s.last.Add(1)
}
