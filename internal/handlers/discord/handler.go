package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	layoutsvc "github.com/KirkDiggler/dungeon-layout/internal/services/layout"
	"github.com/bwmarrin/discordgo"
)

// Handler handles /layout interactions
type Handler struct {
	layoutService layoutsvc.Service
	defaults      *layout.Config
	scale         float64
	limiter       *rateLimiter
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	LayoutService layoutsvc.Service // Required
	Defaults      *layout.Config    // Optional (layout.DefaultConfig if nil)
	Scale         float64           // Optional (1 cell per unit)
	RateLimit     *RateLimitConfig  // Optional (unlimited if nil)
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.LayoutService == nil {
		panic("layout service is required")
	}

	h := &Handler{
		layoutService: cfg.LayoutService,
		defaults:      cfg.Defaults.Clone(),
		scale:         cfg.Scale,
		limiter:       newRateLimiter(cfg.RateLimit),
	}
	if h.defaults == nil {
		h.defaults = layout.DefaultConfig()
	}
	if h.scale <= 0 {
		h.scale = 1
	}

	return h
}

// RegisterCommands registers the slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	cmd := Command()
	if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
	}
	log.Printf("Registered command: %s", cmd.Name)
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return
	}

	ctx := context.Background()
	if !h.limiter.allow(ctx, interactionUserID(i)) {
		respondWithError(s, i, "You're generating layouts too fast, please wait a moment.")
		return
	}

	content, err := h.Execute(ctx, data)
	if err != nil {
		log.Printf("Error handling /%s: %v", CommandName, err)
		respondWithError(s, i, userMessage(err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to /%s: %v", CommandName, err)
	}
}

// Execute runs a /layout subcommand and returns the message to post
func (h *Handler) Execute(ctx context.Context, data discordgo.ApplicationCommandInteractionData) (string, error) {
	if len(data.Options) == 0 {
		return "", dnderr.InvalidArgument("a subcommand is required")
	}

	sub := data.Options[0]
	switch sub.Name {
	case "generate":
		input, err := parseGenerate(sub.Options, h.defaults)
		if err != nil {
			return "", err
		}
		l, err := h.layoutService.CreateLayout(ctx, input)
		if err != nil {
			return "", err
		}
		return formatLayout(ctx, l, h.scale), nil

	case "show":
		l, err := h.layoutService.GetLayout(ctx, stringOption(sub.Options, "id"))
		if err != nil {
			return "", err
		}
		return formatLayout(ctx, l, h.scale), nil

	case "regenerate":
		l, err := h.layoutService.RegenerateLayout(ctx, stringOption(sub.Options, "id"), &layoutsvc.RegenerateLayoutInput{
			Seed: seedOption(sub.Options),
		})
		if err != nil {
			return "", err
		}
		return formatLayout(ctx, l, h.scale), nil

	case "delete":
		id := stringOption(sub.Options, "id")
		if err := h.layoutService.DeleteLayout(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("🗑️ Deleted layout `%s`", id), nil

	case "list":
		all, err := h.layoutService.ListLayouts(ctx)
		if err != nil {
			return "", err
		}
		return formatList(all), nil
	}

	return "", dnderr.InvalidArgument(fmt.Sprintf("unknown subcommand %q", sub.Name))
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func userMessage(err error) string {
	switch {
	case dnderr.IsNotFound(err):
		return "That layout doesn't exist."
	case dnderr.IsInvalidConfiguration(err), dnderr.IsInvalidArgument(err):
		return err.Error()
	default:
		return "Something went wrong, please try again."
	}
}
