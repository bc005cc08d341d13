package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dungeon-layout/internal/dice"
	mockdice "github.com/KirkDiggler/dungeon-layout/internal/dice/mock"
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/events"
	"github.com/KirkDiggler/dungeon-layout/internal/generator"
	mockgenerator "github.com/KirkDiggler/dungeon-layout/internal/generator/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedConfig(maxRooms int, branching bool) *layout.Config {
	return &layout.Config{
		MaxRooms:  maxRooms,
		WidthMin:  2,
		WidthMax:  2,
		HeightMin: 2,
		HeightMax: 2,
		Branching: branching,
	}
}

func newGenerator(t *testing.T, cfg *generator.Config, params *layout.Config) *generator.Generator {
	t.Helper()
	g := generator.NewGenerator(cfg)
	require.NoError(t, g.Configure(params))
	return g
}

func TestGenerate_AlwaysNorthChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()
	roller.EXPECT().Intn(4).Return(0, nil).AnyTimes()

	g := newGenerator(t, &generator.Config{Roller: roller}, fixedConfig(3, false))

	result, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Rooms, 3)
	require.Len(t, result.Corridors, 2)
	assert.False(t, result.Truncated)

	wantRoomY := []float64{0, -7, -14}
	for i, room := range result.Rooms {
		assert.Equal(t, 0.0, room.X)
		assert.Equal(t, wantRoomY[i], room.Y)
	}

	// Corridors sit flush between the 2-unit rooms: edge at -1, half length 2.5
	assert.Equal(t, -3.5, result.Corridors[0].Y)
	assert.Equal(t, -10.5, result.Corridors[1].Y)
	for _, c := range result.Corridors {
		assert.Equal(t, 0.0, c.X)
		assert.Equal(t, layout.North, c.Direction)
	}

	assert.False(t, result.Rooms[0].Openings.North)
	assert.True(t, result.Rooms[0].Openings.South)
	assert.False(t, result.Rooms[1].Openings.South)
	assert.False(t, result.Rooms[1].Openings.North)
	assert.False(t, result.Rooms[2].Openings.South)
	assert.True(t, result.Rooms[2].Openings.North)

	assert.Equal(t, generator.StateDone, g.State())
	assert.Equal(t, 3, g.RoomCount())
	assert.Equal(t, 2, g.CorridorCount())
}

func TestGenerate_SingleRoomStaysOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 4).Return(3, nil)
	roller.EXPECT().Between(1, 1).Return(1, nil)

	params := &layout.Config{MaxRooms: 1, StartX: 5, StartY: -2, WidthMin: 2, WidthMax: 4, HeightMin: 1, HeightMax: 1, Branching: true}
	g := newGenerator(t, &generator.Config{Roller: roller}, params)

	result, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Rooms, 1)
	assert.Empty(t, result.Corridors)
	room := result.Rooms[0]
	assert.Equal(t, 5.0, room.X)
	assert.Equal(t, -2.0, room.Y)
	assert.Equal(t, 3.0, room.Width)
	assert.Equal(t, 0, room.ClosedCount())
	assert.Equal(t, "Room1", room.Name)
}

func TestGenerate_DirectionsDrawnWithoutReplacement(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{
		2, 2, // seed size
		2,    // EAST from Room1
		2, 2, // Room2 size
		3,    // WEST from Room2, closed (arrival side)
		2,    // EAST from the remaining [NORTH SOUTH EAST]
		2, 2, // Room3 size
	})

	g := newGenerator(t, &generator.Config{Roller: roller}, fixedConfig(3, false))

	result, err := g.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Rooms, 3)
	assert.Equal(t, 7.0, result.Rooms[1].X)
	assert.Equal(t, 14.0, result.Rooms[2].X)
	assert.Equal(t, layout.East, result.Corridors[1].Direction)
	assert.Equal(t, 0, roller.Remaining())
}

func TestGenerate_RetryExhaustionTruncates(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	rolls := []int{
		2, 2, // seed size
		0, 0, 2, 2, // Room1, NORTH
		0, 1, 2, 2, // Room1, SOUTH
		0, 2, 2, 2, // Room1, EAST
		0, 3, 2, 2, // Room1, WEST
	}
	// Room1 is now closed on every side; keep picking it past the retry budget
	for i := 0; i <= generator.DefaultRetryBudget; i++ {
		rolls = append(rolls, 0)
	}
	roller.SetRolls(rolls)

	g := newGenerator(t, &generator.Config{Roller: roller}, fixedConfig(10, true))

	result, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Truncated)
	assert.Len(t, result.Rooms, 5)
	assert.Len(t, result.Corridors, 4)
	assert.Less(t, len(result.Rooms), result.Config.MaxRooms)
	assert.True(t, result.Rooms[0].AllClosed())
	assert.Equal(t, 0, roller.Remaining())

	for _, c := range result.Corridors {
		assert.Same(t, result.Rooms[0], c.StartingRoom)
		assert.Equal(t, 0, c.StartingRoomIndex)
	}

	assert.Equal(t, -7.0, result.Rooms[1].Y)
	assert.Equal(t, 7.0, result.Rooms[2].Y)
	assert.Equal(t, 7.0, result.Rooms[3].X)
	assert.Equal(t, -7.0, result.Rooms[4].X)
}

func TestGenerate_RetryBudgetIsConfigurable(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	rolls := []int{
		2, 2,
		0, 0, 2, 2,
		0, 1, 2, 2,
		0, 2, 2, 2,
		0, 3, 2, 2,
		0, 0, 0, // initial pick plus two retries
	}
	roller.SetRolls(rolls)

	g := newGenerator(t, &generator.Config{Roller: roller, RetryBudget: 2}, fixedConfig(10, true))

	result, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Equal(t, 0, roller.Remaining())
}

func TestGenerate_ChainWithoutBranching(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := newGenerator(t, &generator.Config{Roller: dice.NewRandomRoller(seed)}, &layout.Config{
			MaxRooms: 5, WidthMin: 1, WidthMax: 4, HeightMin: 1, HeightMax: 4,
		})

		result, err := g.Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, result.Rooms, 5, "seed %d", seed)
		require.Len(t, result.Corridors, 4)

		for i, c := range result.Corridors {
			assert.Same(t, result.Rooms[i], c.StartingRoom, "corridor %d must leave the newest room", i)
		}

		last := len(result.Rooms) - 1
		for i, room := range result.Rooms {
			switch i {
			case 0, last:
				assert.Equal(t, 1, room.ClosedCount(), "seed %d room %d", seed, i)
			default:
				assert.Equal(t, 2, room.ClosedCount(), "seed %d room %d", seed, i)
			}
		}
	}
}

func TestGenerate_BranchingProperties(t *testing.T) {
	params := &layout.Config{
		MaxRooms: 12, StartX: 3, StartY: 4,
		WidthMin: 1, WidthMax: 6, HeightMin: 2, HeightMax: 3,
		Branching: true,
	}

	for seed := int64(1); seed <= 50; seed++ {
		g := newGenerator(t, &generator.Config{Roller: dice.NewRandomRoller(seed)}, params)

		result, err := g.Generate(context.Background())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(result.Rooms), 1)
		assert.LessOrEqual(t, len(result.Rooms), params.MaxRooms)
		assert.Len(t, result.Corridors, len(result.Rooms)-1)
		assert.Equal(t, len(result.Rooms) < params.MaxRooms, result.Truncated)

		inLayout := make(map[*layout.Room]bool, len(result.Rooms))
		closed := 0
		for _, room := range result.Rooms {
			inLayout[room] = true
			closed += room.ClosedCount()
			assert.GreaterOrEqual(t, room.ClosedCount(), 1, "every room connects to something")
			assert.GreaterOrEqual(t, room.Width, 1.0)
			assert.LessOrEqual(t, room.Width, 6.0)
			assert.GreaterOrEqual(t, room.Height, 2.0)
			assert.LessOrEqual(t, room.Height, 3.0)
		}
		assert.Equal(t, 2*len(result.Corridors), closed)

		for _, c := range result.Corridors {
			assert.True(t, inLayout[c.StartingRoom], "seed %d corridor %s has a foreign starting room", seed, c.Name)
			assert.Same(t, result.Rooms[c.StartingRoomIndex], c.StartingRoom)
			assert.False(t, c.StartingRoom.IsOpen(c.Direction))
		}
	}
}

func TestGenerate_SameSeedSameLayout(t *testing.T) {
	params := layout.DefaultConfig()

	first, err := newGenerator(t, &generator.Config{Roller: dice.NewRandomRoller(1234)}, params).
		Generate(context.Background())
	require.NoError(t, err)

	second, err := newGenerator(t, &generator.Config{Roller: dice.NewRandomRoller(1234)}, params).
		Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Rooms, second.Rooms)
	assert.Equal(t, first.Corridors, second.Corridors)
}

func TestGenerate_RunTwiceReleasesPreviousGeometry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()
	roller.EXPECT().Intn(4).Return(0, nil).AnyTimes()

	renderer := mockgenerator.NewMockRenderer(ctrl)
	renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *layout.Entity) (layout.Handle, error) {
			return e.Name, nil
		}).Times(10)

	var released []layout.Handle
	renderer.EXPECT().Release(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, handles []layout.Handle) error {
			released = handles
			return nil
		}).Times(1)

	g := newGenerator(t, &generator.Config{Roller: roller, Renderer: renderer}, fixedConfig(3, false))

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Room2", first.Rooms[1].Handle)
	assert.Equal(t, "Corridor1", first.Corridors[0].Handle)

	second, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []layout.Handle{"Room1", "Room2", "Room3", "Corridor1", "Corridor2"}, released)
	assert.Len(t, second.Rooms, 3)
	assert.Len(t, second.Corridors, 2)
	assert.Len(t, g.Rooms(), 3)
	assert.Equal(t, 3, g.RoomCount())

	for i := range first.Rooms {
		assert.Equal(t, first.Rooms[i].X, second.Rooms[i].X)
		assert.Equal(t, first.Rooms[i].Y, second.Rooms[i].Y)
		assert.Equal(t, first.Rooms[i].Openings, second.Rooms[i].Openings)
	}
}

func TestGenerate_RendererFailureAbortsAndNextRunCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()
	roller.EXPECT().Intn(4).Return(0, nil).AnyTimes()

	renderer := mockgenerator.NewMockRenderer(ctrl)
	gomock.InOrder(
		renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return("room-1", nil),
		renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return("corridor-1", nil),
		renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return(nil, errors.New("scene locked")),
		renderer.EXPECT().Release(gomock.Any(), []layout.Handle{"room-1", "corridor-1"}).Return(nil),
		renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return("room-1b", nil),
	)

	g := newGenerator(t, &generator.Config{Roller: roller, Renderer: renderer}, fixedConfig(1, false))
	require.NoError(t, g.Configure(fixedConfig(3, false)))

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(err))
	assert.Equal(t, "Room2", dnderr.GetMeta(err)["name"])

	require.NoError(t, g.Configure(fixedConfig(1, false)))
	result, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Rooms, 1)
	assert.Equal(t, "room-1b", result.Rooms[0].Handle)
}

func TestGenerate_ReleaseFailureKeepsPreviousState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()

	renderer := mockgenerator.NewMockRenderer(ctrl)
	renderer.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return("room-1", nil)
	renderer.EXPECT().Release(gomock.Any(), []layout.Handle{"room-1"}).Return(errors.New("scene gone"))

	g := newGenerator(t, &generator.Config{Roller: roller, Renderer: renderer}, fixedConfig(1, false))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	err = g.Reset(context.Background())
	require.Error(t, err)
	assert.Len(t, g.Rooms(), 1)
}

func TestGenerate_RollerFailure(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2})

	g := newGenerator(t, &generator.Config{Roller: roller}, fixedConfig(3, false))

	_, err := g.Generate(context.Background())
	assert.Error(t, err)
}

func TestConfigure_RejectsInvalidAndKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()

	g := generator.NewGenerator(&generator.Config{Roller: roller})

	_, err := g.Generate(context.Background())
	assert.True(t, dnderr.IsInvalidConfiguration(err))

	require.NoError(t, g.Configure(fixedConfig(1, false)))

	bad := fixedConfig(0, false)
	assert.True(t, dnderr.IsInvalidConfiguration(g.Configure(bad)))

	inverted := fixedConfig(3, false)
	inverted.WidthMin = 4
	assert.True(t, dnderr.IsInvalidConfiguration(g.Configure(inverted)))

	result, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Rooms, 1)
	assert.Equal(t, generator.StateDone, g.State())
}

func TestGenerate_AnnouncesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Between(2, 2).Return(2, nil).AnyTimes()
	roller.EXPECT().Intn(4).Return(1, nil).AnyTimes()

	bus := events.NewBus()
	var seen []events.EventType
	var completed *events.LayoutCompletedEvent
	bus.SubscribeAll(&events.ListenerFunc{
		Name: "recorder",
		Callback: func(e events.Event) error {
			seen = append(seen, e.GetType())
			if c, ok := e.(*events.LayoutCompletedEvent); ok {
				completed = c
			}
			return nil
		},
	})

	g := newGenerator(t, &generator.Config{Roller: roller, EventBus: bus}, fixedConfig(2, false))

	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []events.EventType{
		events.EventTypeLayoutReset,
		events.EventTypeRoomCreated,
		events.EventTypeCorridorCreated,
		events.EventTypeRoomCreated,
		events.EventTypeLayoutCompleted,
	}, seen)
	require.NotNil(t, completed)
	assert.Equal(t, 2, completed.Rooms)
	assert.Equal(t, 1, completed.Corridors)
	assert.False(t, completed.Truncated)
}

func TestNewGenerator_RequiresRoller(t *testing.T) {
	assert.Panics(t, func() {
		generator.NewGenerator(&generator.Config{})
	})
}
