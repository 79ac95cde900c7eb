package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the blog front-end.
//
// Variables are read with the BLOGFRONT_ prefix. Each one also falls back to
// its bare name, which is how VITE_API_BASE_URL keeps working unprefixed.
type Config struct {
	// Upstream API
	APIBaseURL string        `envconfig:"VITE_API_BASE_URL" default:"http://localhost:3000"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	AuthToken  string        `envconfig:"AUTH_TOKEN" default:""`

	// ProxyAPI forwards /api/* to APIBaseURL so browser code can call the
	// API on the site's own origin.
	ProxyAPI bool `envconfig:"PROXY_API" default:"true"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Upstream health
	HealthInterval     time.Duration `envconfig:"HEALTH_INTERVAL" default:"30s"`
	HealthCheckTimeout time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s"`
	WaitForUpstream    bool          `envconfig:"WAIT_FOR_UPSTREAM" default:"false"`
	StartupTimeout     time.Duration `envconfig:"STARTUP_TIMEOUT" default:"60s"`
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid VITE_API_BASE_URL: %q", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be > 0, got %s", c.APITimeout)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("unsupported HTTP_PORT: %d", c.HTTPPort)
	}
	if c.HealthInterval <= 0 || c.HealthCheckTimeout <= 0 {
		return fmt.Errorf("health interval and check timeout must be > 0")
	}
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with BLOGFRONT_
// Example: BLOGFRONT_HTTP_PORT, BLOGFRONT_AUTH_TOKEN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BLOGFRONT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Dur("api_timeout", cfg.APITimeout).
		Bool("proxy_api", cfg.ProxyAPI).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("auth_token_present", func() string {
			if cfg.AuthToken != "" {
				return "true"
			}
			return "false"
		}()).
		Bool("wait_for_upstream", cfg.WaitForUpstream).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		APIBaseURL:         "http://localhost:3000",
		APITimeout:         10 * time.Second,
		ProxyAPI:           true,
		Environment:        EnvTesting,
		LogLevel:           "debug",
		HTTPPort:           8080,
		HealthInterval:     time.Second,
		HealthCheckTimeout: time.Second,
		StartupTimeout:     5 * time.Second,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Level returns the configured zerolog level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
