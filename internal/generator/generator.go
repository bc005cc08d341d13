package generator

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/KirkDiggler/dungeon-layout/internal/dice"
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/events"
)

// DefaultRetryBudget is how many times a fully closed room is re-picked
// before growth gives up
const DefaultRetryBudget = 10

// State is the phase of the current generation run
type State string

const (
	StateIdle  State = "idle"
	StateReset State = "reset"
	StateSeed  State = "seed"
	StateGrow  State = "grow"
	StateDone  State = "done"
)

// Config holds the collaborators for a Generator
type Config struct {
	Roller      dice.Roller // Required
	Renderer    Renderer    // Optional (geometry is not materialized if nil)
	EventBus    *events.Bus // Optional
	RetryBudget int         // Optional (defaults to DefaultRetryBudget)
}

// Generator grows a layout outward from a start room, one corridor and room at a time.
// A Generator runs one generation at a time; callers must not overlap runs.
type Generator struct {
	roller      dice.Roller
	renderer    Renderer
	bus         *events.Bus
	retryBudget int
	running     atomic.Bool

	params *layout.Config
	state  State

	cursorX, cursorY float64
	active           *layout.Room
	pending          layout.Direction
	hasPending       bool

	roomCount     int
	corridorCount int
	rooms         []*layout.Room
	corridors     []*layout.Corridor
	roomIndex     map[*layout.Room]int
	truncated     bool
}

// NewGenerator creates a generator
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	g := &Generator{
		roller:      cfg.Roller,
		renderer:    cfg.Renderer,
		bus:         cfg.EventBus,
		retryBudget: cfg.RetryBudget,
		state:       StateIdle,
		roomIndex:   make(map[*layout.Room]int),
	}

	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.retryBudget <= 0 {
		g.retryBudget = DefaultRetryBudget
	}

	return g
}

// Configure validates and stores the parameters for subsequent runs.
// A rejected config leaves the generator untouched.
func (g *Generator) Configure(params *layout.Config) error {
	if err := params.Validate(); err != nil {
		return err
	}
	g.params = params.Clone()
	return nil
}

// Generate runs RESET, SEED and GROW to completion and returns the finished
// layout. Fewer rooms than MaxRooms with Truncated set is a successful result.
func (g *Generator) Generate(ctx context.Context) (*layout.Layout, error) {
	if g.params == nil {
		return nil, dnderr.InvalidConfiguration("generator has not been configured")
	}
	if !g.running.CompareAndSwap(false, true) {
		return nil, dnderr.Internal("generation already in progress")
	}
	defer g.running.Store(false)

	if err := g.reset(ctx); err != nil {
		return nil, err
	}

	if err := g.seed(ctx); err != nil {
		return nil, err
	}

	if err := g.grow(ctx); err != nil {
		return nil, err
	}

	g.state = StateDone
	if err := g.emit(events.NewLayoutCompletedEvent(g.roomCount, g.corridorCount, g.truncated)); err != nil {
		return nil, err
	}

	return &layout.Layout{
		Config:    g.params.Clone(),
		Rooms:     g.Rooms(),
		Corridors: g.Corridors(),
		Truncated: g.truncated,
	}, nil
}

// Reset releases all geometry from the previous run and clears working state
func (g *Generator) Reset(ctx context.Context) error {
	return g.reset(ctx)
}

// Rooms returns the rooms in creation order
func (g *Generator) Rooms() []*layout.Room {
	rooms := make([]*layout.Room, len(g.rooms))
	copy(rooms, g.rooms)
	return rooms
}

// Corridors returns the corridors in creation order
func (g *Generator) Corridors() []*layout.Corridor {
	corridors := make([]*layout.Corridor, len(g.corridors))
	copy(corridors, g.corridors)
	return corridors
}

func (g *Generator) State() State {
	return g.state
}

func (g *Generator) RoomCount() int {
	return g.roomCount
}

func (g *Generator) CorridorCount() int {
	return g.corridorCount
}

func (g *Generator) reset(ctx context.Context) error {
	g.state = StateReset

	var handles []layout.Handle
	for _, r := range g.rooms {
		if r.Handle != nil {
			handles = append(handles, r.Handle)
		}
	}
	for _, c := range g.corridors {
		if c.Handle != nil {
			handles = append(handles, c.Handle)
		}
	}

	if len(handles) > 0 {
		if err := g.renderer.Release(ctx, handles); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to release previous layout").
				WithMeta("handles", len(handles))
		}
	}

	g.rooms = nil
	g.corridors = nil
	g.roomIndex = make(map[*layout.Room]int)
	g.roomCount = 0
	g.corridorCount = 0
	g.active = nil
	g.hasPending = false
	g.truncated = false

	return g.emit(events.NewLayoutResetEvent(len(handles)))
}

func (g *Generator) seed(ctx context.Context) error {
	g.state = StateSeed
	g.cursorX, g.cursorY = g.params.StartX, g.params.StartY

	width, height, err := g.sampleSize()
	if err != nil {
		return err
	}

	return g.placeRoom(ctx, width, height)
}

func (g *Generator) grow(ctx context.Context) error {
	g.state = StateGrow

	for g.roomCount < g.params.MaxRooms {
		active, err := g.selectActiveRoom()
		if err != nil {
			return err
		}
		if active == nil {
			g.truncated = true
			log.Printf("Generator: growth stopped at %d of %d rooms, no room with a free side after %d attempts",
				g.roomCount, g.params.MaxRooms, g.retryBudget)
			return nil
		}

		direction, ok, err := g.pickDirection(active)
		if err != nil {
			return err
		}
		if !ok {
			// Unreachable after selectActiveRoom, kept so growth can never spin
			g.truncated = true
			return nil
		}

		width, height, err := g.sampleSize()
		if err != nil {
			return err
		}

		if err := g.attachCorridor(ctx, active, direction); err != nil {
			return err
		}

		g.advanceCursor(active, direction, width, height)

		if err := g.placeRoom(ctx, width, height); err != nil {
			return err
		}
	}

	return nil
}

// selectActiveRoom returns nil when the retry budget runs out
func (g *Generator) selectActiveRoom() (*layout.Room, error) {
	candidate, err := g.pickRoom()
	if err != nil {
		return nil, err
	}

	attempts := 0
	for candidate.AllClosed() {
		attempts++
		if attempts > g.retryBudget {
			g.active = nil
			return nil, nil
		}
		candidate, err = g.pickRoom()
		if err != nil {
			return nil, err
		}
	}

	g.active = candidate
	return candidate, nil
}

func (g *Generator) pickRoom() (*layout.Room, error) {
	if !g.params.Branching {
		return g.rooms[len(g.rooms)-1], nil
	}

	idx, err := g.roller.Intn(len(g.rooms))
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick a room")
	}
	return g.rooms[idx], nil
}

// pickDirection draws directions without replacement until an open side turns up
func (g *Generator) pickDirection(room *layout.Room) (layout.Direction, bool, error) {
	remaining := layout.AllDirections()

	for len(remaining) > 0 {
		i, err := g.roller.Intn(len(remaining))
		if err != nil {
			return 0, false, dnderr.Wrap(err, "failed to pick a direction")
		}

		d := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)

		if room.IsOpen(d) {
			return d, true, nil
		}
	}

	return 0, false, nil
}

func (g *Generator) sampleSize() (width, height int, err error) {
	width, err = g.roller.Between(g.params.WidthMin, g.params.WidthMax)
	if err != nil {
		return 0, 0, dnderr.Wrap(err, "failed to sample room width")
	}
	height, err = g.roller.Between(g.params.HeightMin, g.params.HeightMax)
	if err != nil {
		return 0, 0, dnderr.Wrap(err, "failed to sample room height")
	}
	return width, height, nil
}

func (g *Generator) attachCorridor(ctx context.Context, from *layout.Room, d layout.Direction) error {
	width, length := g.params.Corridor()

	corridor := layout.PlaceCorridor(from, d, width, length)
	corridor.Name = fmt.Sprintf("Corridor%d", g.corridorCount+1)
	corridor.StartingRoomIndex = g.roomIndex[from]

	handle, err := g.renderer.Materialize(ctx, corridor.Entity())
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to materialize corridor").
			WithMeta("name", corridor.Name)
	}
	corridor.Handle = handle

	g.corridors = append(g.corridors, corridor)
	g.corridorCount++
	g.pending = d
	g.hasPending = true

	return g.emit(events.NewCorridorCreatedEvent(corridor, len(g.corridors)-1))
}

// advanceCursor moves the cursor from the active room to the centre of the
// room about to be grown on side d
func (g *Generator) advanceCursor(from *layout.Room, d layout.Direction, width, height int) {
	_, length := g.params.Corridor()

	next := float64(width) / 2
	if d.Vertical() {
		next = float64(height) / 2
	}
	offset := d.Sign() * (from.HalfExtent(d) + length + next)

	g.cursorX, g.cursorY = from.X, from.Y
	if d.Vertical() {
		g.cursorY += offset
	} else {
		g.cursorX += offset
	}
}

func (g *Generator) placeRoom(ctx context.Context, width, height int) error {
	room := layout.NewRoom(g.cursorX, g.cursorY, float64(width), float64(height))
	room.Name = fmt.Sprintf("Room%d", g.roomCount+1)

	if g.active != nil && g.hasPending {
		g.active.CloseOpening(g.pending)
		room.CloseOpening(g.pending.Opposite())
	}
	g.hasPending = false

	handle, err := g.renderer.Materialize(ctx, room.Entity())
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to materialize room").
			WithMeta("name", room.Name)
	}
	room.Handle = handle

	g.roomIndex[room] = len(g.rooms)
	g.rooms = append(g.rooms, room)
	g.roomCount++
	g.active = room

	return g.emit(events.NewRoomCreatedEvent(room, len(g.rooms)-1))
}

func (g *Generator) emit(event events.Event) error {
	if g.bus == nil {
		return nil
	}
	if err := g.bus.Emit(event); err != nil {
		return dnderr.Wrapf(err, "failed to announce %s", event.GetType())
	}
	return nil
}
