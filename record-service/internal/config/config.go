package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/socialmedia/records/record-service/internal/store"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"3000"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`

	// LOG_LEVEL: debug, info, warn or error
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// An empty JWT_SECRET disables login tokens.
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// PASSWORD_HASHING: bcrypt, or plain for plaintext comparison
	PasswordHashing string `envconfig:"PASSWORD_HASHING" default:"bcrypt"`

	// An empty REDIS_ADDR disables event publishing.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	EventStream   string `envconfig:"EVENT_STREAM" default:"record.events"`

	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"false"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if _, err := store.NewPasswordHasher(cfg.PasswordHashing); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}
