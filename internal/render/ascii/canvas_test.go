package ascii_test

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/dungeon-layout/internal/dice"
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/generator"
	"github.com/KirkDiggler/dungeon-layout/internal/render/ascii"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_SingleRoom(t *testing.T) {
	canvas := ascii.NewCanvas(1)

	_, err := canvas.Materialize(context.Background(), layout.NewRoom(0, 0, 4, 3).Entity())
	require.NoError(t, err)

	out, err := canvas.Render()
	require.NoError(t, err)
	assert.Equal(t, "####\n#..#\n####", out)
}

func TestCanvas_NorthChain(t *testing.T) {
	first := layout.NewRoom(0, 0, 2, 2)
	second := layout.NewRoom(0, -7, 2, 2)
	corridor := layout.PlaceCorridor(first, layout.North, 0.5, 5)

	out, err := ascii.RenderLayout(context.Background(), &layout.Layout{
		Rooms:     []*layout.Room{first, second},
		Corridors: []*layout.Corridor{corridor},
	}, 1)
	require.NoError(t, err)

	want := strings.Join([]string{
		"##",
		"##",
		"||",
		"||",
		"||",
		"||",
		"||",
		"##",
		"##",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestCanvas_ReleaseRemovesGeometry(t *testing.T) {
	ctx := context.Background()
	canvas := ascii.NewCanvas(1)

	h1, err := canvas.Materialize(ctx, layout.NewRoom(0, 0, 2, 2).Entity())
	require.NoError(t, err)
	h2, err := canvas.Materialize(ctx, layout.NewRoom(10, 0, 2, 2).Entity())
	require.NoError(t, err)
	assert.Equal(t, 2, canvas.Live())

	require.NoError(t, canvas.Release(ctx, []layout.Handle{h1}))
	assert.Equal(t, 1, canvas.Live())

	out, err := canvas.Render()
	require.NoError(t, err)
	assert.Equal(t, "##\n##", out)

	assert.Error(t, canvas.Release(ctx, []layout.Handle{h1}), "double release")
	assert.Error(t, canvas.Release(ctx, []layout.Handle{"Room1"}), "foreign handle")
	require.NoError(t, canvas.Release(ctx, []layout.Handle{h2}))

	out, err = canvas.Render()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCanvas_RejectsEmptyEntities(t *testing.T) {
	canvas := ascii.NewCanvas(0)
	assert.Equal(t, 1.0, canvas.Scale())

	_, err := canvas.Materialize(context.Background(), nil)
	assert.Error(t, err)

	_, err = canvas.Materialize(context.Background(), &layout.Entity{Kind: layout.KindRoom, Name: "flat", Width: 0, Height: 2})
	assert.Error(t, err)
}

func TestCanvas_TooLarge(t *testing.T) {
	canvas := ascii.NewCanvas(10)
	_, err := canvas.Materialize(context.Background(), layout.NewRoom(0, 0, 100, 2).Entity())
	require.NoError(t, err)

	_, err = canvas.Render()
	assert.Error(t, err)
}

func TestCanvas_AsGeneratorRenderer(t *testing.T) {
	canvas := ascii.NewCanvas(1)
	g := generator.NewGenerator(&generator.Config{
		Roller:   dice.NewRandomRoller(3),
		Renderer: canvas,
	})
	require.NoError(t, g.Configure(layout.DefaultConfig()))

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.RoomCount()+first.CorridorCount(), canvas.Live())

	second, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.RoomCount()+second.CorridorCount(), canvas.Live(), "previous run must be released")

	out, err := canvas.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "#")
}

func TestPalette_Apply(t *testing.T) {
	out := ascii.DefaultPalette().Apply("#.|=\n x")
	assert.Equal(t, "#.|=\n x", color.ClearCode(out), "styling never changes the glyphs")
}
