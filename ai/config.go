// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Provider identifiers accepted by Config.
const (
	ProviderCohere = "cohere"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// Config holds configuration for embedding providers.
type Config struct {
	// Provider selects the embedding implementation.
	// One of "cohere", "openai", "mock".
	Provider string

	// Host is the base URL for the embedding service API.
	// Example: "https://api.cohere.ai" or "http://localhost:11434/v1"
	// for a local OpenAI-compatible server.
	Host string

	// Model is the model identifier to use for text embeddings.
	// Example: "embed-english-v3.0", "text-embedding-3-small"
	Model string

	// APIKey authenticates with the embedding service. Optional for local
	// OpenAI-compatible services.
	APIKey string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider selects the embedding provider implementation.
func WithProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the embedding service API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// DefaultConfig returns a Config with sensible defaults for the hosted
// Cohere embedding API, which is what the interactive query path uses.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderCohere,
		Host:     "https://api.cohere.ai",
		Model:    "embed-english-v3.0",
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithProvider(ai.ProviderOpenAI),
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It strips a trailing slash from the host so providers can append paths.
func (c *Config) Normalize() {
	c.Host = strings.TrimSuffix(c.Host, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Provider {
	case ProviderCohere, ProviderOpenAI, ProviderMock:
	default:
		return errors.New("ai config: unknown provider " + c.Provider)
	}
	if c.Provider == ProviderMock {
		return nil
	}
	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Provider == ProviderCohere && c.APIKey == "" {
		return errors.New("ai config: APIKey is required for the cohere provider")
	}
	return nil
}
