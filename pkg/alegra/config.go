package alegra

import (
	"fmt"
	"strings"
	"time"
)

// Environment selects which upstream deployment the client talks to.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// Base URLs per environment.
const (
	sandboxBaseURL    = "https://sandbox-api.alegra.com/e-provider/col/v1"
	productionBaseURL = "https://api.alegra.com/e-provider/col/v1"
)

// Config holds everything needed to build a client.
//
// APIKey and Environment are required; everything else is optional. Per-call
// cancellation should be driven through the context passed to client methods,
// while HTTPTimeout caps the total time of any single request at the
// transport boundary. Retries are off unless RetryMax is set: the resource
// layer itself never retries.
type Config struct {
	// APIKey is sent as a Bearer token on every request.
	APIKey string
	// Environment must be sandbox or production.
	Environment Environment
	// BaseURL overrides the environment-derived URL. Intended for tests and
	// self-hosted proxies.
	BaseURL string

	// HTTPTimeout is the per-request deadline applied by the transport.
	// Defaults to 30 seconds.
	HTTPTimeout time.Duration
	// RetryMax enables transport-level retries for 429/5xx/connection
	// failures when greater than zero.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives structured log events from the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Validate checks the configuration, returning a configuration-kind error on
// the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return NewConfigurationError("API key cannot be empty")
	}

	switch c.Environment {
	case EnvironmentSandbox, EnvironmentProduction:
	default:
		return NewConfigurationError(fmt.Sprintf(
			"Invalid environment %q. Must be one of: sandbox, production", c.Environment))
	}

	return nil
}

// ResolveBaseURL returns the effective base URL for this configuration.
func (c *Config) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}

	if c.Environment == EnvironmentProduction {
		return productionBaseURL
	}

	return sandboxBaseURL
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
