package discord

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	layoutsvc "github.com/KirkDiggler/dungeon-layout/internal/services/layout"
	mocklayout "github.com/KirkDiggler/dungeon-layout/internal/services/layout/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func boolOpt(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: v,
	}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func command(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) discordgo.ApplicationCommandInteractionData {
	return discordgo.ApplicationCommandInteractionData{
		Name: CommandName,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			},
		},
	}
}

// northPair is two 2x2 rooms joined by a corridor running north
func northPair(id string) *layout.Layout {
	first := layout.NewRoom(0, 0, 2, 2)
	second := layout.NewRoom(0, -7, 2, 2)
	corridor := layout.PlaceCorridor(first, layout.North, 0.5, 5)
	params := layout.DefaultConfig()
	params.MaxRooms = 2

	return &layout.Layout{
		ID:        id,
		Seed:      12,
		Config:    params,
		Rooms:     []*layout.Room{first, second},
		Corridors: []*layout.Corridor{corridor},
	}
}

func TestHandler_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	svc.EXPECT().CreateLayout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *layoutsvc.CreateLayoutInput) (*layout.Layout, error) {
			assert.Equal(t, 2, input.Config.MaxRooms)
			assert.Equal(t, 2, input.Config.WidthMax)
			assert.False(t, input.Config.Branching)
			require.NotNil(t, input.Seed)
			assert.Equal(t, int64(12), *input.Seed)
			return northPair("layout-1"), nil
		})

	content, err := h.Execute(context.Background(), command("generate",
		intOpt("rooms", 2),
		intOpt("width_max", 2),
		boolOpt("branching", false),
		intOpt("seed", 12),
	))
	require.NoError(t, err)

	assert.Contains(t, content, "`layout-1`")
	assert.Contains(t, content, "2 rooms, 1 corridors, seed 12")
	assert.Contains(t, content, "```\n##\n##\n||")
	assert.NotContains(t, content, "Growth stopped")
}

func TestHandler_GenerateRejectsBadOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	_, err := h.Execute(context.Background(), command("generate", intOpt("width_min", 9)))
	assert.True(t, dnderr.IsInvalidConfiguration(err))

	_, err = h.Execute(context.Background(), command("generate", intOpt("rooms", 500)))
	assert.True(t, dnderr.IsInvalidConfiguration(err))
}

func TestHandler_ShowTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	stored := northPair("layout-1")
	stored.Config.MaxRooms = 10
	stored.Truncated = true
	svc.EXPECT().GetLayout(gomock.Any(), "layout-1").Return(stored, nil)

	content, err := h.Execute(context.Background(), command("show", strOpt("id", "layout-1")))
	require.NoError(t, err)
	assert.Contains(t, content, "Growth stopped at 2 of 10 rooms")
}

func TestHandler_ShowNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	svc.EXPECT().GetLayout(gomock.Any(), "nope").Return(nil, dnderr.NotFound("layout nope not found"))

	_, err := h.Execute(context.Background(), command("show", strOpt("id", "nope")))
	require.Error(t, err)
	assert.Equal(t, "That layout doesn't exist.", userMessage(err))
}

func TestHandler_Regenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	svc.EXPECT().RegenerateLayout(gomock.Any(), "layout-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, input *layoutsvc.RegenerateLayoutInput) (*layout.Layout, error) {
			assert.Nil(t, input.Seed)
			return northPair("layout-1"), nil
		})

	content, err := h.Execute(context.Background(), command("regenerate", strOpt("id", "layout-1")))
	require.NoError(t, err)
	assert.Contains(t, content, "`layout-1`")
}

func TestHandler_DeleteAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocklayout.NewMockService(ctrl)
	h := NewHandler(&HandlerConfig{LayoutService: svc})

	svc.EXPECT().DeleteLayout(gomock.Any(), "layout-1").Return(nil)
	content, err := h.Execute(context.Background(), command("delete", strOpt("id", "layout-1")))
	require.NoError(t, err)
	assert.Contains(t, content, "layout-1")

	svc.EXPECT().ListLayouts(gomock.Any()).Return(nil, nil)
	content, err = h.Execute(context.Background(), command("list"))
	require.NoError(t, err)
	assert.Contains(t, content, "No layouts stored yet")

	svc.EXPECT().ListLayouts(gomock.Any()).Return([]*layout.Layout{northPair("a"), northPair("b")}, nil)
	content, err = h.Execute(context.Background(), command("list"))
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(content, "\n")))
}

func TestHandler_UnknownSubcommand(t *testing.T) {
	h := NewHandler(&HandlerConfig{LayoutService: mocklayout.NewMockService(gomock.NewController(t))})

	_, err := h.Execute(context.Background(), command("explode"))
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = h.Execute(context.Background(), discordgo.ApplicationCommandInteractionData{Name: CommandName})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestFormatLayout_TooLargeFallsBackToSummary(t *testing.T) {
	l := northPair("big")
	l.Rooms[1] = layout.NewRoom(0, -30, 60, 40)

	content := formatLayout(context.Background(), l, 1)
	assert.NotContains(t, content, "```")
	assert.Contains(t, content, "too large")
}

func TestCommand_Definition(t *testing.T) {
	cmd := Command()
	assert.Equal(t, "layout", cmd.Name)

	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{"generate", "show", "regenerate", "delete", "list"}, names)
}
