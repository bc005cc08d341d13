package layout

// Handle is an opaque reference to geometry owned by the rendering collaborator
type Handle any

// Openings tracks which sides of a room can still receive a corridor
type Openings struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// Room is a positioned rectangle centred on (X, Y)
type Room struct {
	Name     string   `json:"name"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Openings Openings `json:"openings"`

	// Handle is set by the renderer and never read by generation
	Handle Handle `json:"-"`
}

// NewRoom creates a room with every side open
func NewRoom(x, y, width, height float64) *Room {
	return &Room{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Openings: Openings{
			North: true,
			South: true,
			East:  true,
			West:  true,
		},
	}
}

// IsOpen reports whether a corridor can still leave through d
func (r *Room) IsOpen(d Direction) bool {
	switch d {
	case North:
		return r.Openings.North
	case South:
		return r.Openings.South
	case East:
		return r.Openings.East
	case West:
		return r.Openings.West
	default:
		return false
	}
}

// CloseOpening marks side d as used. Openings never reopen.
func (r *Room) CloseOpening(d Direction) {
	switch d {
	case North:
		r.Openings.North = false
	case South:
		r.Openings.South = false
	case East:
		r.Openings.East = false
	case West:
		r.Openings.West = false
	}
}

// AllClosed reports whether no side is left for a corridor
func (r *Room) AllClosed() bool {
	o := r.Openings
	return !o.North && !o.South && !o.East && !o.West
}

// ClosedCount returns how many sides are already connected
func (r *Room) ClosedCount() int {
	n := 0
	for _, d := range AllDirections() {
		if !r.IsOpen(d) {
			n++
		}
	}
	return n
}

// HalfExtent is half the room's size along the axis d travels on
func (r *Room) HalfExtent(d Direction) float64 {
	if d.Vertical() {
		return r.Height / 2
	}
	return r.Width / 2
}

// Entity returns the creation event payload for the renderer
func (r *Room) Entity() *Entity {
	return &Entity{
		Kind:   KindRoom,
		Name:   r.Name,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Intersects reports whether two rooms overlap (touching edges do not count)
func (r *Room) Intersects(other *Room) bool {
	return r.X-r.Width/2 < other.X+other.Width/2 &&
		r.X+r.Width/2 > other.X-other.Width/2 &&
		r.Y-r.Height/2 < other.Y+other.Height/2 &&
		r.Y+r.Height/2 > other.Y-other.Height/2
}
