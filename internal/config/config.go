package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the generation service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"artminds-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"ARTMINDS_API_PORT" envDefault:"8290"`
	LogLevel        string        `env:"ARTMINDS_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Account Store Backend Selection
	AccountStoreBackend string `env:"ACCOUNT_STORE_BACKEND" envDefault:"postgres"` // Options: "postgres" or "memory"

	// Database (required for the postgres backend)
	DatabaseURL    string        `env:"DB_POSTGRESQL_DSN"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Image-generation provider
	GenerationAPIURL  string        `env:"GENERATION_API_URL" envDefault:"https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0"`
	GenerationAPIKey  string        `env:"GENERATION_API_KEY,notEmpty"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`

	// Image-hosting provider
	HostingAPIURL  string        `env:"HOSTING_API_URL" envDefault:"https://api.imgbb.com/1/upload"`
	HostingAPIKey  string        `env:"HOSTING_API_KEY,notEmpty"`
	HostingTimeout time.Duration `env:"HOSTING_TIMEOUT" envDefault:"30s"`
}

// Load parses environment variables into Config. A missing provider
// credential is a startup error, never a per-request one.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.GenerationAPIURL = strings.TrimSpace(cfg.GenerationAPIURL)
	cfg.GenerationAPIKey = strings.TrimSpace(cfg.GenerationAPIKey)
	cfg.HostingAPIURL = strings.TrimSpace(cfg.HostingAPIURL)
	cfg.HostingAPIKey = strings.TrimSpace(cfg.HostingAPIKey)

	if cfg.GenerationAPIKey == "" {
		return nil, fmt.Errorf("GENERATION_API_KEY is required")
	}
	if cfg.HostingAPIKey == "" {
		return nil, fmt.Errorf("HOSTING_API_KEY is required")
	}
	if cfg.IsPostgresStore() && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DB_POSTGRESQL_DSN is required when ACCOUNT_STORE_BACKEND is postgres")
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsMemoryStore returns true if the in-memory account store is configured.
func (c *Config) IsMemoryStore() bool {
	return strings.ToLower(strings.TrimSpace(c.AccountStoreBackend)) == "memory"
}

// IsPostgresStore returns true if the postgres account store is configured.
func (c *Config) IsPostgresStore() bool {
	backend := strings.ToLower(strings.TrimSpace(c.AccountStoreBackend))
	return backend == "" || backend == "postgres"
}
