package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/playmixer/scoring-api/internal/adapters/api/rest"
	"github.com/playmixer/scoring-api/internal/adapters/storage"
)

// Config конфигурация сервиса.
type Config struct {
	API      rest.Config
	Cache    storage.Config
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"LOG_PATH"`
}

// Init инициализирует конфигурацию сервиса.
func Init() (*Config, error) {
	cfg := Config{
		API:   rest.Config{},
		Cache: storage.Config{},
	}

	_ = godotenv.Load(".env")

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parse config %w", err)
	}

	return &cfg, nil
}
