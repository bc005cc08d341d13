package layout

import (
	"math"
	"time"
)

// Layout is the finished output of one generation run
type Layout struct {
	ID        string      `json:"id"`
	Seed      int64       `json:"seed"`
	Config    *Config     `json:"config"`
	Rooms     []*Room     `json:"rooms"`
	Corridors []*Corridor `json:"corridors"`

	// Truncated is set when growth stopped before MaxRooms because no room
	// with a free side was found. It is a normal result, not a failure.
	Truncated bool `json:"truncated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Layout) RoomCount() int {
	return len(l.Rooms)
}

func (l *Layout) CorridorCount() int {
	return len(l.Corridors)
}

// Clone deep copies the layout. Render handles are not carried over.
func (l *Layout) Clone() *Layout {
	if l == nil {
		return nil
	}

	out := *l
	out.Config = l.Config.Clone()

	out.Rooms = make([]*Room, len(l.Rooms))
	for i, r := range l.Rooms {
		room := *r
		room.Handle = nil
		out.Rooms[i] = &room
	}

	out.Corridors = make([]*Corridor, len(l.Corridors))
	for i, c := range l.Corridors {
		corridor := *c
		corridor.Handle = nil
		corridor.StartingRoom = nil
		out.Corridors[i] = &corridor
	}
	out.Relink()

	return &out
}

// Relink restores corridor back references from their stored indexes
func (l *Layout) Relink() {
	for _, c := range l.Corridors {
		if c.StartingRoomIndex >= 0 && c.StartingRoomIndex < len(l.Rooms) {
			c.StartingRoom = l.Rooms[c.StartingRoomIndex]
		}
	}
}

// Entities returns rooms then corridors as renderer payloads
func (l *Layout) Entities() []*Entity {
	entities := make([]*Entity, 0, len(l.Rooms)+len(l.Corridors))
	for _, r := range l.Rooms {
		entities = append(entities, r.Entity())
	}
	for _, c := range l.Corridors {
		entities = append(entities, c.Entity())
	}
	return entities
}

// Bounds returns the bounding box of every room and corridor
func (l *Layout) Bounds() (minX, minY, maxX, maxY float64) {
	entities := l.Entities()
	if len(entities) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, e := range entities {
		x0, y0, x1, y1 := e.Bounds()
		minX = math.Min(minX, x0)
		minY = math.Min(minY, y0)
		maxX = math.Max(maxX, x1)
		maxY = math.Max(maxY, y1)
	}
	return minX, minY, maxX, maxY
}
