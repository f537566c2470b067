// Package engine holds the runtime services shared by scenes and entities:
// the explicit engine Context, properties, randomness, resource registries,
// the event queue, frame timing and the background worker.
package engine

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Context is created once per game session and passed to every component
// that needs shared services. Nothing in the engine reaches for globals.
type Context struct {
	Props     *Properties
	Rand      *Random
	Log       *log.Logger
	Events    *Events
	Clock     Clock
	Mutexes   *SyncRegistry[int, *sync.Mutex]
	IDs       *IDSource
	SessionID uuid.UUID
}

// Options configure NewContext. Zero values pick sensible defaults.
type Options struct {
	Seed   int64 // 0 seeds from the clock
	Clock  Clock
	Logger *log.Logger
}

// NewContext builds a Context.
func NewContext(opts Options) *Context {
	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(io.Discard, log.InfoLevel)
	}
	return &Context{
		Props:  NewProperties(),
		Rand:   NewRandom(opts.Seed),
		Log:    logger,
		Events: NewEvents(),
		Clock:  clock,
		Mutexes: NewSyncRegistry(func(int) *sync.Mutex {
			return &sync.Mutex{}
		}),
		IDs:       &IDSource{},
		SessionID: uuid.New(),
	}
}

// Ticks returns the context clock in milliseconds.
func (c *Context) Ticks() int64 {
	return c.Clock.Ticks()
}
