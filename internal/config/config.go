package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	API      API    `envPrefix:"API_"`
	State    State  `envPrefix:"STATE_"`
	Server   Server `envPrefix:"SERVER_"`
}

// API contains backend connection parameters.
type API struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ProbeInterval  time.Duration `env:"PROBE_INTERVAL" envDefault:"30s"`
}

// State contains client-local persistence parameters.
type State struct {
	FilePath string `env:"FILE_PATH" envDefault:".classdesk_state.json"`
}

// Server contains demo server parameters.
type Server struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"devsecret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
