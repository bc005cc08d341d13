package layout

import (
	"encoding/json"
	"fmt"
)

// Direction is a cardinal direction a corridor can leave a room by
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections returns the four directions in draw order
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the direction is one of the four cardinals
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the side a room reached through d arrives on
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Sign is -1 for directions that decrease their axis (NORTH, WEST) and +1 otherwise.
// NORTH decreases Y, SOUTH increases Y, EAST increases X, WEST decreases X.
func (d Direction) Sign() float64 {
	if d == North || d == West {
		return -1
	}
	return 1
}

// Vertical reports whether the direction moves along the Y axis
func (d Direction) Vertical() bool {
	return d == North || d == South
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseDirection(s)
	if !ok {
		return fmt.Errorf("unknown direction %q", s)
	}
	*d = parsed
	return nil
}

// ParseDirection maps a direction name back to its value
func ParseDirection(s string) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
