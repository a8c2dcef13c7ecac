package engine

import (
	"github.com/lixenwraith/ballista/component"
	"github.com/lixenwraith/ballista/constant"
)

// EventType identifies a session event
type EventType int

const (
	// EventLaunched fires on release; Value = launch speed
	EventLaunched EventType = iota
	// EventTargetHit fires when a target is awarded; Value = points
	EventTargetHit
	// EventObstacleHit fires on a spinning bar strike
	EventObstacleHit
	// EventPlatformHit fires on any rectangle strike; Value = number of sides struck
	EventPlatformHit
	// EventShotResolved fires when the ball leaves the playfield
	EventShotResolved
	// EventSessionOver fires once, on the frame the session turns terminal
	EventSessionOver
)

var eventNames = [...]string{
	EventLaunched:     "launched",
	EventTargetHit:    "target-hit",
	EventObstacleHit:  "obstacle-hit",
	EventPlatformHit:  "platform-hit",
	EventShotResolved: "shot-resolved",
	EventSessionOver:  "session-over",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent records something observable that happened during a frame
type GameEvent struct {
	Type    EventType
	Frame   uint64
	Entity  component.EntityID
	Score   int
	Chances int
	Value   float64
}

// EventQueue buffers events produced during frames until the driver consumes them
// Single-threaded: produced and consumed on the frame loop goroutine
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, constant.EventQueueSize)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns a copy of pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
