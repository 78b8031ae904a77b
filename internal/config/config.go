// Package config loads process configuration from the environment once at
// startup. Values are immutable for the process lifetime.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration
type Config struct {
	// DiscordToken authenticates the bot with Discord
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// CommandPrefix marks command messages
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!au"`

	// CodeLength is the join code length
	CodeLength int `env:"CODE_LENGTH" envDefault:"6"`

	// MaxCodeAttempts is how many code collisions to tolerate per create
	MaxCodeAttempts int `env:"MAX_CODE_ATTEMPTS" envDefault:"10"`

	// StoreBackend selects the snapshot store: "file" or "redis"
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`

	// StatePath is where the file backend keeps the snapshot
	StatePath string `env:"STATE_PATH" envDefault:"state.json"`

	// RedisAddr is the redis backend address
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the redis backend password, if any
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load reads an optional .env file, then parses the environment
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
