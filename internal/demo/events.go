package demo

import "github.com/go-gl/glfw/v3.3/glfw"

type EventType int

const (
	EventQuit    EventType = iota // window close request or termination signal
	EventKeyDown                  // key pressed, or held with key-repeat on
)

type Event struct {
	Type   EventType
	Key    glfw.Key
	Repeat bool // set on auto-repeat key-downs
}

// EventQueue buffers platform events between polls. Several events can
// arrive in one frame; all of them are kept, in arrival order.
type EventQueue struct {
	pending []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]Event, 0, 8)}
}

func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

func (q *EventQueue) Len() int { return len(q.pending) }

// Drain appends every pending event to dst, empties the queue and returns
// the extended slice.
func (q *EventQueue) Drain(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}
