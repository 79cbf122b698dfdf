package gemini

import (
	"fmt"
	"net/http"
	"os"

	"github.com/randalmurphal/promptpager/provider"
)

// ProviderName is the registry name of this provider.
const ProviderName = "gemini"

// DefaultModel is used when a request does not name a model.
const DefaultModel = "gemini-2.5-flash"

// Config holds configuration for a Gemini client.
// Zero values use sensible defaults where noted.
type Config struct {
	// APIKey is the Gemini API key.
	// Required.
	APIKey string `json:"api_key" yaml:"api_key"`

	// Model is used for requests that leave the model empty.
	// Default: "gemini-2.5-flash"
	Model string `json:"model" yaml:"model"`

	// BaseURL overrides the Gemini API endpoint.
	// Default: the genai SDK default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIVersion selects the API version path segment.
	// Default: the genai SDK default ("v1beta").
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`

	// HTTPClient replaces the SDK's HTTP client. Optional.
	HTTPClient *http.Client `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		Model: DefaultModel,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use GEMINI_ prefix and take precedence over existing values.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_VERSION"); v != "" {
		c.APIVersion = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini api key: %w", provider.ErrCredentialsNotFound)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}

// configFromProvider maps a provider.Config onto the Gemini defaults.
func configFromProvider(pc provider.Config) Config {
	cfg := DefaultConfig()
	cfg.APIKey = pc.APIKey
	cfg.BaseURL = pc.BaseURL
	cfg.APIVersion = pc.GetStringOption("api_version", "")
	if m := pc.GetStringOption("default_model", ""); m != "" {
		cfg.Model = m
	}
	return cfg
}
