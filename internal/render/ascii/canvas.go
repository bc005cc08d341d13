// Package ascii materializes layout geometry onto a character grid.
package ascii

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
)

const (
	// MaxCells bounds the rasterized grid on either axis
	MaxCells = 400

	cellEmpty    = ' '
	cellWall     = '#'
	cellFloor    = '.'
	cellVertical = '|'
	cellLevel    = '='
)

// Canvas is a Renderer that keeps materialized entities until they are released
type Canvas struct {
	mu       sync.Mutex
	scale    float64
	entities []*layout.Entity
	live     mapset.Set[int]
}

// NewCanvas creates a canvas drawing scale cells per layout unit
func NewCanvas(scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		scale: scale,
		live:  mapset.New[int](),
	}
}

// Materialize records the entity and returns its integer handle
func (c *Canvas) Materialize(_ context.Context, entity *layout.Entity) (layout.Handle, error) {
	if entity == nil {
		return nil, fmt.Errorf("entity cannot be nil")
	}
	if entity.Width <= 0 || entity.Height <= 0 {
		return nil, fmt.Errorf("entity %s has no area", entity.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := *entity
	c.entities = append(c.entities, &stored)
	id := len(c.entities)
	c.live.Put(id)

	return id, nil
}

// Release drops the given handles; unknown or already released handles are an error
func (c *Canvas) Release(_ context.Context, handles []layout.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range handles {
		id, ok := h.(int)
		if !ok || !c.live.Has(id) {
			return fmt.Errorf("unknown handle %v", h)
		}
		c.live.Remove(id)
	}
	return nil
}

// Live returns how many entities are currently materialized
func (c *Canvas) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live.Size()
}

// Scale returns cells per layout unit
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Render rasterizes the live entities, rooms first, with NORTH at the top
func (c *Canvas) Render() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var rooms, corridors []*layout.Entity
	for i, e := range c.entities {
		if !c.live.Has(i + 1) {
			continue
		}
		if e.Kind == layout.KindRoom {
			rooms = append(rooms, e)
		} else {
			corridors = append(corridors, e)
		}
	}
	if len(rooms)+len(corridors) == 0 {
		return "", nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range append(append([]*layout.Entity{}, rooms...), corridors...) {
		x0, y0, x1, y1 := e.Bounds()
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}

	cols := int(math.Ceil((maxX - minX) * c.scale))
	rows := int(math.Ceil((maxY - minY) * c.scale))
	if cols > MaxCells || rows > MaxCells {
		return "", fmt.Errorf("canvas of %dx%d cells exceeds %d; lower the scale", cols, rows, MaxCells)
	}

	grid := make([][]rune, max(rows, 1))
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(cellEmpty), max(cols, 1)))
	}

	for _, e := range rooms {
		c0, r0, c1, r1 := c.span(e, minX, minY, cols, rows)
		for r := r0; r <= r1; r++ {
			for col := c0; col <= c1; col++ {
				if r == r0 || r == r1 || col == c0 || col == c1 {
					grid[r][col] = cellWall
				} else {
					grid[r][col] = cellFloor
				}
			}
		}
	}

	for _, e := range corridors {
		mark := cellLevel
		if e.Height > e.Width {
			mark = cellVertical
		}
		c0, r0, c1, r1 := c.span(e, minX, minY, cols, rows)
		for r := r0; r <= r1; r++ {
			for col := c0; col <= c1; col++ {
				if grid[r][col] == cellEmpty {
					grid[r][col] = mark
				}
			}
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), string(cellEmpty))
	}
	return strings.Join(lines, "\n"), nil
}

// span maps an entity to inclusive cell ranges, always at least one cell thick
func (c *Canvas) span(e *layout.Entity, minX, minY float64, cols, rows int) (c0, r0, c1, r1 int) {
	x0, y0, x1, y1 := e.Bounds()

	c0 = clamp(int(math.Floor((x0-minX)*c.scale)), 0, cols-1)
	c1 = clamp(int(math.Ceil((x1-minX)*c.scale))-1, c0, cols-1)
	r0 = clamp(int(math.Floor((y0-minY)*c.scale)), 0, rows-1)
	r1 = clamp(int(math.Ceil((y1-minY)*c.scale))-1, r0, rows-1)
	return c0, r0, c1, r1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

// RenderLayout draws a finished (for example persisted) layout
func RenderLayout(ctx context.Context, l *layout.Layout, scale float64) (string, error) {
	canvas := NewCanvas(scale)
	for _, e := range l.Entities() {
		if _, err := canvas.Materialize(ctx, e); err != nil {
			return "", err
		}
	}
	return canvas.Render()
}
