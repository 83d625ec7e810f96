package systems

import (
	"bsp-rogue/gamemap"
)

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Event type constants
const (
	EventMovement     EventType = "movement"
	EventMoveBlocked  EventType = "move_blocked"
	EventCameraUpdate EventType = "camera_update"
)

// MoveCause says what made the player move
type MoveCause string

const (
	MoveByClick MoveCause = "click"
	MoveByStep  MoveCause = "step"
)

// PlayerMoveEvent is emitted after the player changed location
type PlayerMoveEvent struct {
	From, To gamemap.Coordinate
	Cause    MoveCause
}

func (e PlayerMoveEvent) Type() EventType { return EventMovement }

// MoveBlockedEvent is emitted when a move would end on an occupied tile
type MoveBlockedEvent struct {
	At    gamemap.Coordinate
	Cause MoveCause
}

func (e MoveBlockedEvent) Type() EventType { return EventMoveBlocked }

// CameraUpdateEvent is emitted when the view offset changes
type CameraUpdateEvent struct {
	X, Y int
}

func (e CameraUpdateEvent) Type() EventType { return EventCameraUpdate }

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Emit dispatches an event to all subscribed handlers, in subscription order
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
