package events

import (
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
)

// EventType identifies what happened during a generation run
type EventType string

const (
	EventTypeLayoutReset     EventType = "layout.reset"
	EventTypeRoomCreated     EventType = "layout.room_created"
	EventTypeCorridorCreated EventType = "layout.corridor_created"
	EventTypeLayoutCompleted EventType = "layout.completed"
)

// Event is the base interface for all generation events
type Event interface {
	GetType() EventType
}

// BaseEvent provides the common implementation for all events
type BaseEvent struct {
	Type EventType
}

func (e *BaseEvent) GetType() EventType { return e.Type }

// LayoutResetEvent is emitted after prior geometry has been released
type LayoutResetEvent struct {
	BaseEvent
	Released int
}

// RoomCreatedEvent is emitted once a room is materialized and stored
type RoomCreatedEvent struct {
	BaseEvent
	Room  *layout.Room
	Index int
}

// CorridorCreatedEvent is emitted once a corridor is materialized and stored
type CorridorCreatedEvent struct {
	BaseEvent
	Corridor *layout.Corridor
	Index    int
}

// LayoutCompletedEvent is emitted when the run reaches DONE
type LayoutCompletedEvent struct {
	BaseEvent
	Rooms     int
	Corridors int
	Truncated bool
}

func NewLayoutResetEvent(released int) *LayoutResetEvent {
	return &LayoutResetEvent{
		BaseEvent: BaseEvent{Type: EventTypeLayoutReset},
		Released:  released,
	}
}

func NewRoomCreatedEvent(room *layout.Room, index int) *RoomCreatedEvent {
	return &RoomCreatedEvent{
		BaseEvent: BaseEvent{Type: EventTypeRoomCreated},
		Room:      room,
		Index:     index,
	}
}

func NewCorridorCreatedEvent(corridor *layout.Corridor, index int) *CorridorCreatedEvent {
	return &CorridorCreatedEvent{
		BaseEvent: BaseEvent{Type: EventTypeCorridorCreated},
		Corridor:  corridor,
		Index:     index,
	}
}

func NewLayoutCompletedEvent(rooms, corridors int, truncated bool) *LayoutCompletedEvent {
	return &LayoutCompletedEvent{
		BaseEvent: BaseEvent{Type: EventTypeLayoutCompleted},
		Rooms:     rooms,
		Corridors: corridors,
		Truncated: truncated,
	}
}
