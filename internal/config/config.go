// Package config loads bot configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-pro"`

	// Conversation memory and reengagement.
	MemoryDepth         int           `env:"MEMORY_DEPTH" envDefault:"5"`
	InteractionCooldown time.Duration `env:"INTERACTION_COOLDOWN" envDefault:"5m"`
	ReengageInterval    time.Duration `env:"REENGAGE_INTERVAL" envDefault:"1m"`
	GenerateTimeout     time.Duration `env:"GENERATE_TIMEOUT" envDefault:"15s"`
	ReactionChance      float64       `env:"REACTION_CHANCE" envDefault:"0.1"`

	// Moderation word lists, comma separated, matched case-insensitively.
	BannedWords  []string `env:"BANNED_WORDS" envDefault:"badword1,badword2"`
	HostileWords []string `env:"HOSTILE_WORDS" envDefault:"stupid,dumb,hate,bad,ugly,shut up,annoying"`

	// Logging.
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty    bool   `env:"LOG_PRETTY" envDefault:"false"`
	LogFile      string `env:"LOG_FILE"`
	LogMaxSizeMB int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`

	// Register slash commands on startup. Disable when iterating locally
	// to avoid hitting the command registration rate limit.
	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New loads the configuration. A missing required variable is returned as
// an error so main can abort before any network connection is attempted.
func New() (*Config, error) {
	// Not an error when absent, system environment is enough.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.MemoryDepth < 1 {
		return nil, fmt.Errorf("config: MEMORY_DEPTH must be at least 1, got %d", cfg.MemoryDepth)
	}
	return cfg, nil
}
