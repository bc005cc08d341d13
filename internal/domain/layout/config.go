package layout

import (
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// Config holds the parameters for one generation run
type Config struct {
	MaxRooms  int     `json:"max_rooms"`
	StartX    float64 `json:"start_x"`
	StartY    float64 `json:"start_y"`
	WidthMin  int     `json:"width_min"`
	WidthMax  int     `json:"width_max"`
	HeightMin int     `json:"height_min"`
	HeightMax int     `json:"height_max"`
	Branching bool    `json:"branching"`

	// Zero means DefaultCorridorWidth / DefaultCorridorLength
	CorridorWidth  float64 `json:"corridor_width,omitempty"`
	CorridorLength float64 `json:"corridor_length,omitempty"`
}

// DefaultConfig returns the parameters a fresh generator form starts with
func DefaultConfig() *Config {
	return &Config{
		MaxRooms:  10,
		WidthMin:  1,
		WidthMax:  5,
		HeightMin: 1,
		HeightMax: 5,
		Branching: true,
	}
}

// Validate rejects parameters that would make sampling undefined
func (c *Config) Validate() error {
	if c == nil {
		return dnderr.InvalidConfiguration("config cannot be nil")
	}
	if c.MaxRooms <= 0 {
		return dnderr.InvalidConfiguration("max rooms must be positive").
			WithMeta("max_rooms", c.MaxRooms)
	}
	if c.WidthMin <= 0 || c.HeightMin <= 0 {
		return dnderr.InvalidConfiguration("room sizes must be positive").
			WithMeta("width_min", c.WidthMin).
			WithMeta("height_min", c.HeightMin)
	}
	if c.WidthMin > c.WidthMax {
		return dnderr.InvalidConfigurationf("width range is inverted: %d > %d", c.WidthMin, c.WidthMax).
			WithMeta("width_min", c.WidthMin).
			WithMeta("width_max", c.WidthMax)
	}
	if c.HeightMin > c.HeightMax {
		return dnderr.InvalidConfigurationf("height range is inverted: %d > %d", c.HeightMin, c.HeightMax).
			WithMeta("height_min", c.HeightMin).
			WithMeta("height_max", c.HeightMax)
	}
	if c.CorridorWidth < 0 || c.CorridorLength < 0 {
		return dnderr.InvalidConfiguration("corridor dimensions cannot be negative")
	}
	return nil
}

// Corridor returns the effective corridor width and length
func (c *Config) Corridor() (width, length float64) {
	width, length = c.CorridorWidth, c.CorridorLength
	if width == 0 {
		width = DefaultCorridorWidth
	}
	if length == 0 {
		length = DefaultCorridorLength
	}
	return width, length
}

// Clone returns an independent copy
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
