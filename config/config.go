package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/randalmurphal/promptpager/gemini"
	"github.com/randalmurphal/promptpager/processor"
	"github.com/randalmurphal/promptpager/provider"
	"github.com/randalmurphal/promptpager/tokens"

	// Register every provider so Validate and Build can resolve them.
	_ "github.com/randalmurphal/promptpager/providers"
)

// Default values.
const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the complete promptpager configuration.
type Config struct {
	// Provider selects the registered generation provider.
	// Default: "gemini"
	Provider string `json:"provider" yaml:"provider" toml:"provider" jsonschema:"default=gemini,description=Registered generation provider"`

	// APIKey is the provider credential. Required.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" toml:"api_key,omitempty" jsonschema:"description=Provider API key; usually supplied as GEMINI_API_KEY"`

	// Model is passed on every request. Empty selects the provider default.
	Model string `json:"model,omitempty" yaml:"model,omitempty" toml:"model,omitempty" jsonschema:"description=Model identifier; empty selects the provider default"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url,omitempty" jsonschema:"description=Provider endpoint override"`

	// APIVersion overrides the provider API version.
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty" toml:"api_version,omitempty"`

	Limits tokens.Limits `json:"limits" yaml:"limits" toml:"limits"`
	Server ServerConfig  `json:"server" yaml:"server" toml:"server"`
	Log    LogConfig     `json:"log" yaml:"log" toml:"log"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address.
	// Default: ":8080"
	Addr string `json:"addr" yaml:"addr" toml:"addr" jsonschema:"default=:8080"`

	// CORSOrigins enables CORS for these origins. "*" allows all.
	CORSOrigins []string `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty" toml:"cors_origins,omitempty"`
}

// LogConfig configures the process-wide slog handler.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `json:"format" yaml:"format" toml:"format" jsonschema:"enum=text,enum=json,default=text"`
}

// DefaultConfig returns a Config with sensible defaults.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		Provider: provider.DefaultProvider,
		Limits:   tokens.DefaultLimits(),
		Server:   ServerConfig{Addr: DefaultAddr},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables take precedence over existing values.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("PROMPTPAGER_PROVIDER"); v != "" {
		c.Provider = v
	}
	c.loadGeminiEnv()
	if v := os.Getenv("PROMPTPAGER_MAX_INPUT_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &processor.ConfigurationError{Field: "PROMPTPAGER_MAX_INPUT_TOKENS", Err: err}
		}
		c.Limits.Input = n
	}
	if v := os.Getenv("PROMPTPAGER_MAX_OUTPUT_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &processor.ConfigurationError{Field: "PROMPTPAGER_MAX_OUTPUT_TOKENS", Err: err}
		}
		c.Limits.Output = n
	}
	if v := os.Getenv("PROMPTPAGER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PROMPTPAGER_CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("PROMPTPAGER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PROMPTPAGER_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

// loadGeminiEnv applies the GEMINI_ variables through the gemini package.
func (c *Config) loadGeminiEnv() {
	g := gemini.Config{
		APIKey:     c.APIKey,
		Model:      c.Model,
		BaseURL:    c.BaseURL,
		APIVersion: c.APIVersion,
	}
	g.LoadFromEnv()

	c.APIKey = g.APIKey
	c.Model = g.Model
	c.BaseURL = g.BaseURL
	c.APIVersion = g.APIVersion
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	err := cfg.LoadFromEnv()
	return cfg, err
}

// Validate checks everything needed to serve requests.
// Failures are returned as *processor.ConfigurationError.
func (c *Config) Validate() error {
	if err := c.ValidateOffline(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return &processor.ConfigurationError{
			Field: "api_key",
			Err:   fmt.Errorf("set GEMINI_API_KEY: %w", provider.ErrCredentialsNotFound),
		}
	}
	return nil
}

// ValidateOffline checks everything except the provider credential.
// It covers commands that never call the provider.
func (c *Config) ValidateOffline() error {
	if c.Provider == "" {
		return &processor.ConfigurationError{Field: "provider", Err: errors.New("provider is required")}
	}
	if !provider.IsRegistered(c.Provider) {
		return &processor.ConfigurationError{
			Field: "provider",
			Err:   fmt.Errorf("%w: %s (available: %v)", provider.ErrUnknownProvider, c.Provider, provider.Available()),
		}
	}
	if err := c.Limits.Validate(); err != nil {
		return &processor.ConfigurationError{Field: "limits", Err: err}
	}
	if c.Server.Addr == "" {
		return &processor.ConfigurationError{Field: "server.addr", Err: errors.New("listen address is required")}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return &processor.ConfigurationError{Field: "log.level", Err: err}
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return &processor.ConfigurationError{
			Field: "log.format",
			Err:   fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format),
		}
	}
	return nil
}

// ProviderConfig returns the provider registry configuration.
func (c Config) ProviderConfig() provider.Config {
	pc := provider.Config{
		Provider: c.Provider,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
	}
	if c.APIVersion != "" {
		pc = pc.WithOption("api_version", c.APIVersion)
	}
	return pc
}

// ProcessorConfig returns the processor configuration.
func (c Config) ProcessorConfig() processor.Config {
	return processor.Config{
		Model:  c.Model,
		Limits: c.Limits,
	}
}

// Build validates the configuration, creates the provider through the
// registry and returns a ready Processor. Every failure is a
// *processor.ConfigurationError.
func (c Config) Build() (*processor.Processor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	gen, err := provider.New(c.Provider, c.ProviderConfig())
	if err != nil {
		return nil, &processor.ConfigurationError{Field: "provider", Err: err}
	}

	return processor.New(gen, c.ProcessorConfig())
}
