package provider

import (
	"fmt"
	"maps"
)

// DefaultProvider is the provider used when none is configured.
const DefaultProvider = "gemini"

// Config holds configuration for creating a provider Generator.
type Config struct {
	// Provider is the registered name of the provider to use.
	// Required. Default: "gemini".
	Provider string `json:"name" yaml:"name" toml:"name" jsonschema:"default=gemini"`

	// APIKey is the credential sent to the provider.
	// Required.
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`

	// BaseURL overrides the provider endpoint (proxies, test servers).
	// Optional.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url,omitempty"`

	// Options holds provider-specific configuration.
	//
	// Gemini:
	//   - "api_version": string (default "v1beta")
	//   - "default_model": string (default "gemini-2.5-flash")
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// DefaultConfig returns a Config selecting the default provider.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		Provider: DefaultProvider,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s api_key: %w", c.Provider, ErrCredentialsNotFound)
	}
	return nil
}

// WithOption returns a copy of the config with the specified option set.
func (c Config) WithOption(key string, value any) Config {
	opts := make(map[string]any, len(c.Options)+1)
	maps.Copy(opts, c.Options)
	opts[key] = value
	c.Options = opts
	return c
}

// GetStringOption retrieves a string option, returning defaultVal if not set.
func (c Config) GetStringOption(key, defaultVal string) string {
	if c.Options == nil {
		return defaultVal
	}
	if v, ok := c.Options[key].(string); ok {
		return v
	}
	return defaultVal
}
