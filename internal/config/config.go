package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/generator"
	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the application
type Config struct {
	Discord    DiscordConfig
	Redis      RedisConfig
	Generation GenerationConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands

	// RateLimit is how many /layout commands one user may run per minute; 0 disables it
	RateLimit int
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr when set.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// GenerationConfig holds the defaults used when a request doesn't name its own parameters
type GenerationConfig struct {
	Layout      *layout.Config
	RetryBudget int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			AppID:     os.Getenv("DISCORD_APP_ID"),
			GuildID:   os.Getenv("DISCORD_GUILD_ID"),
			RateLimit: getEnvAsIntOrDefault("DISCORD_RATE_LIMIT", 5),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Generation: loadGeneration(),
	}

	if err := cfg.Generation.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid LAYOUT_* settings: %w", err)
	}

	return cfg, nil
}

func loadGeneration() GenerationConfig {
	defaults := layout.DefaultConfig()

	return GenerationConfig{
		Layout: &layout.Config{
			MaxRooms:       getEnvAsIntOrDefault("LAYOUT_MAX_ROOMS", defaults.MaxRooms),
			StartX:         getEnvAsFloatOrDefault("LAYOUT_START_X", defaults.StartX),
			StartY:         getEnvAsFloatOrDefault("LAYOUT_START_Y", defaults.StartY),
			WidthMin:       getEnvAsIntOrDefault("LAYOUT_WIDTH_MIN", defaults.WidthMin),
			WidthMax:       getEnvAsIntOrDefault("LAYOUT_WIDTH_MAX", defaults.WidthMax),
			HeightMin:      getEnvAsIntOrDefault("LAYOUT_HEIGHT_MIN", defaults.HeightMin),
			HeightMax:      getEnvAsIntOrDefault("LAYOUT_HEIGHT_MAX", defaults.HeightMax),
			Branching:      getEnvAsBoolOrDefault("LAYOUT_BRANCHING", defaults.Branching),
			CorridorWidth:  getEnvAsFloatOrDefault("LAYOUT_CORRIDOR_WIDTH", layout.DefaultCorridorWidth),
			CorridorLength: getEnvAsFloatOrDefault("LAYOUT_CORRIDOR_LENGTH", layout.DefaultCorridorLength),
		},
		RetryBudget: getEnvAsIntOrDefault("LAYOUT_RETRY_BUDGET", generator.DefaultRetryBudget),
	}
}

// RequireDiscord checks the fields the bot cannot start without
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

// Options builds go-redis options from REDIS_URL, or from the address fields
func (r RedisConfig) Options() (*redis.Options, error) {
	if r.URL != "" {
		opts, err := redis.ParseURL(r.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
