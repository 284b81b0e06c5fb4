package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	EventStream   string `envconfig:"EVENT_STREAM" default:"record.events"`

	ConsumerGroup string `envconfig:"CONSUMER_GROUP" default:"audit-service-group"`
	ConsumerName  string `envconfig:"CONSUMER_NAME" default:"audit-consumer-1"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("config error: REDIS_ADDR must not be empty")
	}
	return cfg, nil
}
