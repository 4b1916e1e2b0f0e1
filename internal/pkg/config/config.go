package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration loaded from the environment.
type Config struct {
	Spanner  SpannerConfig  `envPrefix:"SPANNER_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Category CategoryConfig `envPrefix:"CATEGORY_"`
	Catalog  CatalogConfig  `envPrefix:"CATALOG_"`
	Server   ServerConfig
}

// SpannerConfig points at the catalog database.
type SpannerConfig struct {
	Database string `env:"DATABASE" envDefault:"projects/test-project/instances/dev-instance/databases/product-catalog-db"`
}

// ServerConfig holds the listener ports and the per-request deadline.
type ServerConfig struct {
	GRPCPort       string        `env:"GRPC_PORT" envDefault:"9090"`
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// LogConfig sets the zap level.
type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// CategoryConfig bounds descendant expansion.
type CategoryConfig struct {
	MaxDepth int `env:"MAX_DEPTH" envDefault:"4"`
	MaxIDs   int `env:"MAX_IDS" envDefault:"1000"`
}

// CatalogConfig caps how many products one catalog read may return.
type CatalogConfig struct {
	MaxFetch int64 `env:"MAX_FETCH" envDefault:"5000"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Spanner.Database == "" {
		return fmt.Errorf("SPANNER_DATABASE must not be empty")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.Category.MaxDepth < 1 || c.Category.MaxIDs < 1 {
		return fmt.Errorf("category limits must be positive")
	}
	if c.Catalog.MaxFetch < 1 {
		return fmt.Errorf("CATALOG_MAX_FETCH must be positive, got %d", c.Catalog.MaxFetch)
	}
	return nil
}
