package engine

import (
	"sync"

	"github.com/vovakirdan/space-attackers/internal/core"
)

// EventType classifies queued events.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventMouseMotion
	EventMousePress
	EventMouseRelease
	EventQuit
	EventUser
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseMotion:
		return "MouseMotion"
	case EventMousePress:
		return "MousePress"
	case EventMouseRelease:
		return "MouseRelease"
	case EventQuit:
		return "Quit"
	case EventUser:
		return "User"
	default:
		return "Unknown"
	}
}

// User event codes.
const (
	// SceneEvent reports a scene state change: Data1 is the new state,
	// Data2 the scene id.
	SceneEvent = 1
	// CustomEvent carries an application code: Data1 is the code,
	// Data2 the sending scene id.
	CustomEvent = 2
)

// Event is a queued input or application event.
type Event struct {
	Type  EventType
	Key   core.Key
	X, Y  int
	Code  int
	Data1 int
	Data2 int
}

// KeyDown builds a key press event.
func KeyDown(k core.Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp builds a key release event.
func KeyUp(k core.Key) Event { return Event{Type: EventKeyUp, Key: k} }

// UserEvent builds an application event.
func UserEvent(code, data1, data2 int) Event {
	return Event{Type: EventUser, Code: code, Data1: data1, Data2: data2}
}

// Events is a FIFO queue safe for producers on any goroutine.
type Events struct {
	mu    sync.Mutex
	queue []Event
}

// NewEvents creates an empty queue.
func NewEvents() *Events {
	return &Events{}
}

// Push appends an event.
func (q *Events) Push(ev Event) {
	q.mu.Lock()
	q.queue = append(q.queue, ev)
	q.mu.Unlock()
}

// PushUser appends an application event.
func (q *Events) PushUser(code, data1, data2 int) {
	q.Push(UserEvent(code, data1, data2))
}

// Poll removes the oldest event into ev. It returns false when empty.
func (q *Events) Poll(ev *Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.queue) == 0 {
		return false
	}
	*ev = q.queue[0]
	q.queue = q.queue[1:]
	return true
}

// Len returns the number of queued events.
func (q *Events) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
