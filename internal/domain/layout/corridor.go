package layout

const (
	// DefaultCorridorWidth is the narrow side of every corridor
	DefaultCorridorWidth = 0.5
	// DefaultCorridorLength is the gap a corridor spans between two rooms
	DefaultCorridorLength = 5.0
)

// Corridor joins a starting room to the room grown from it
type Corridor struct {
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
	Width     float64   `json:"width"`
	Length    float64   `json:"length"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`

	// StartingRoom is a non-owning back reference; StartingRoomIndex survives encoding
	StartingRoom      *Room `json:"-"`
	StartingRoomIndex int   `json:"starting_room_index"`

	Handle Handle `json:"-"`
}

// PlaceCorridor creates a corridor flush against the starting room's edge on
// side d, centred on the perpendicular axis.
func PlaceCorridor(startingRoom *Room, d Direction, width, length float64) *Corridor {
	c := &Corridor{
		Direction:    d,
		Width:        width,
		Length:       length,
		StartingRoom: startingRoom,
	}
	c.X, c.Y = CorridorPosition(startingRoom, d, length)
	return c
}

// CorridorPosition is the centre of a corridor of the given length leaving room by d
func CorridorPosition(room *Room, d Direction, length float64) (x, y float64) {
	offset := d.Sign() * (room.HalfExtent(d) + length/2)
	if d.Vertical() {
		return room.X, room.Y + offset
	}
	return room.X + offset, room.Y
}

// Footprint is the rendered size: Length runs along the direction of travel
func (c *Corridor) Footprint() (width, height float64) {
	if c.Direction.Vertical() {
		return c.Width, c.Length
	}
	return c.Length, c.Width
}

func (c *Corridor) Entity() *Entity {
	w, h := c.Footprint()
	return &Entity{
		Kind:   KindCorridor,
		Name:   c.Name,
		X:      c.X,
		Y:      c.Y,
		Width:  w,
		Height: h,
	}
}
