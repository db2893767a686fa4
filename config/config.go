package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	APIToken      string
	Debug         bool
	LogLevel      string
	Port          string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		APIToken:      v.GetString("API_TOKEN"),
		Debug:         v.GetBool("DEBUG"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Port:          v.GetString("PORT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.APIToken == "" && !cfg.Debug {
		return nil, errors.New("API_TOKEN must be set unless DEBUG is enabled")
	}
	return cfg, nil
}
