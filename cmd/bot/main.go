package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-layout/internal/config"
	"github.com/KirkDiggler/dungeon-layout/internal/handlers/discord"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layouts"
	layoutsvc "github.com/KirkDiggler/dungeon-layout/internal/services/layout"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	var redisClient *redis.Client
	var repo layouts.Repository

	if cfg.Redis.URL != "" {
		log.Println("Connecting to Redis")

		opts, parseErr := cfg.Redis.Options()
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repository")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repository")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Using Redis for persistence")
				repo = layouts.NewRedisRepository(&layouts.RedisRepoConfig{Client: redisClient})
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repository")
	}

	if repo == nil {
		repo = layouts.NewInMemoryRepository(nil)
	}

	service := layoutsvc.NewService(&layoutsvc.ServiceConfig{
		Repository:  repo,
		Defaults:    cfg.Generation.Layout,
		RetryBudget: cfg.Generation.RetryBudget,
	})

	rateLimit := &discord.RateLimitConfig{
		MaxRequests: cfg.Discord.RateLimit,
		Window:      time.Minute,
	}
	if redisClient != nil {
		rateLimit.Store = discord.NewRedisRateLimitStore(redisClient)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		LayoutService: service,
		Defaults:      cfg.Generation.Layout,
		RateLimit:     rateLimit,
	})

	dg.AddHandler(discord.RecoverMiddleware("layout", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// Empty guild ID registers global commands
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
}
