package discord

import (
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	layoutsvc "github.com/KirkDiggler/dungeon-layout/internal/services/layout"
	"github.com/bwmarrin/discordgo"
)

// CommandName is the top level slash command
const CommandName = "layout"

const maxRoomsOption = 60

// Command describes /layout and its subcommands
func Command() *discordgo.ApplicationCommand {
	one := 1.0

	sizeOption := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        name,
			Description: description,
			MinValue:    &one,
			MaxValue:    20,
		}
	}
	idOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Layout ID",
		Required:    true,
	}
	seedOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "seed",
		Description: "Seed to reproduce a layout (random if omitted)",
	}

	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Generate dungeon floor plans",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "generate",
				Description: "Grow a new layout",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "rooms",
						Description: "How many rooms to grow",
						MinValue:    &one,
						MaxValue:    maxRoomsOption,
					},
					sizeOption("width_min", "Smallest room width"),
					sizeOption("width_max", "Largest room width"),
					sizeOption("height_min", "Smallest room height"),
					sizeOption("height_max", "Largest room height"),
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "branching",
						Description: "Grow from any room instead of only the newest one",
					},
					seedOption,
				},
			},
			{
				Name:        "show",
				Description: "Show a stored layout",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{idOption},
			},
			{
				Name:        "regenerate",
				Description: "Regrow a stored layout with its original settings",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{idOption, seedOption},
			},
			{
				Name:        "delete",
				Description: "Delete a stored layout",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     []*discordgo.ApplicationCommandOption{idOption},
			},
			{
				Name:        "list",
				Description: "List stored layouts",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

// parseGenerate overlays the given options on the defaults
func parseGenerate(opts []*discordgo.ApplicationCommandInteractionDataOption, defaults *layout.Config) (*layoutsvc.CreateLayoutInput, error) {
	params := defaults.Clone()
	if params == nil {
		params = layout.DefaultConfig()
	}
	input := &layoutsvc.CreateLayoutInput{Config: params}

	for _, opt := range opts {
		switch opt.Name {
		case "rooms":
			params.MaxRooms = int(opt.IntValue())
		case "width_min":
			params.WidthMin = int(opt.IntValue())
		case "width_max":
			params.WidthMax = int(opt.IntValue())
		case "height_min":
			params.HeightMin = int(opt.IntValue())
		case "height_max":
			params.HeightMax = int(opt.IntValue())
		case "branching":
			params.Branching = opt.BoolValue()
		case "seed":
			seed := opt.IntValue()
			input.Seed = &seed
		}
	}

	if params.MaxRooms > maxRoomsOption {
		return nil, dnderr.InvalidConfigurationf("at most %d rooms fit in a message", maxRoomsOption).
			WithMeta("max_rooms", params.MaxRooms)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return input, nil
}

func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func seedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) *int64 {
	for _, opt := range opts {
		if opt.Name == "seed" {
			seed := opt.IntValue()
			return &seed
		}
	}
	return nil
}
