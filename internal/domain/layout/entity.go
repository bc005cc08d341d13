package layout

// EntityKind distinguishes the two kinds of geometry a renderer materializes
type EntityKind string

const (
	KindRoom     EntityKind = "room"
	KindCorridor EntityKind = "corridor"
)

// Entity is the geometry announced to the renderer when a room or corridor is created
type Entity struct {
	Kind   EntityKind
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds returns the entity's min/max corners
func (e *Entity) Bounds() (minX, minY, maxX, maxY float64) {
	return e.X - e.Width/2, e.Y - e.Height/2, e.X + e.Width/2, e.Y + e.Height/2
}
