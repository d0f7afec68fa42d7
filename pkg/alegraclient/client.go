// Package alegraclient provides the main entry point for creating Alegra
// e-provider API clients.
package alegraclient

import (
	"fmt"

	"github.com/einvoice-io/alegra-client/internal/client"
	"github.com/einvoice-io/alegra-client/pkg/alegra"
)

// New creates a new API client from a configuration. The configuration is
// validated up front; an invalid one fails with a configuration-kind error
// before any network activity.
func New(config *alegra.Config) (alegra.Client, error) {
	if config == nil {
		return nil, alegra.NewConfigurationError("config is required")
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewSandbox creates a sandbox client with just an API key.
func NewSandbox(apiKey string) (alegra.Client, error) {
	return New(&alegra.Config{
		APIKey:      apiKey,
		Environment: alegra.EnvironmentSandbox,
	})
}

// NewProduction creates a production client with just an API key.
func NewProduction(apiKey string) (alegra.Client, error) {
	return New(&alegra.Config{
		APIKey:      apiKey,
		Environment: alegra.EnvironmentProduction,
	})
}
